package config

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/nathoo/roadsaga/engine/state"
)

// Tuning overrides the starting numbers of a new game. Fields missing from
// the file keep their defaults; a vendor entry replaces the default entry
// for that cargo as a whole.
type Tuning struct {
	Cash    int                     `yaml:"cash"`
	Clock   int                     `yaml:"clock"` // minutes since the start of day 1
	Truck   TruckTuning             `yaml:"truck"`
	Vendors map[string]VendorTuning `yaml:"vendors"`
}

type TruckTuning struct {
	Fuel           int `yaml:"fuel"`
	Space          int `yaml:"space"`
	AvgSpeed       int `yaml:"avg_speed"`
	AvgConsumption int `yaml:"avg_consumption"`
}

type VendorTuning struct {
	Offer int `yaml:"offer"`
	Price int `yaml:"price"`
}

// DefaultTuning mirrors state.DefaultOptions.
func DefaultTuning() Tuning {
	opts := state.DefaultOptions()
	t := Tuning{
		Cash:  opts.Cash,
		Clock: opts.Clock,
		Truck: TruckTuning{
			Fuel:           opts.Fuel,
			Space:          opts.Space,
			AvgSpeed:       opts.AvgSpeed,
			AvgConsumption: opts.AvgConsumption,
		},
		Vendors: make(map[string]VendorTuning, len(opts.Vendors)),
	}
	for kind, v := range opts.Vendors {
		t.Vendors[string(kind)] = VendorTuning{Offer: v.Offer, Price: v.Price}
	}
	return t
}

// LoadTuning reads a tuning file on top of the defaults. An empty path
// returns the defaults.
func LoadTuning(path string) (Tuning, error) {
	t := DefaultTuning()
	if path == "" {
		return t, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return Tuning{}, fmt.Errorf("reading tuning: %w", err)
	}
	if err := yaml.Unmarshal(b, &t); err != nil {
		return Tuning{}, fmt.Errorf("parsing tuning %s: %w", path, err)
	}
	if err := t.Validate(); err != nil {
		return Tuning{}, fmt.Errorf("tuning %s: %w", path, err)
	}
	return t, nil
}

// Validate rejects numbers the engine cannot start from.
func (t Tuning) Validate() error {
	switch {
	case t.Cash < 0:
		return fmt.Errorf("cash %d is negative", t.Cash)
	case t.Clock < 0:
		return fmt.Errorf("clock %d is negative", t.Clock)
	case t.Truck.Fuel < 0 || t.Truck.Fuel > state.MaxStat:
		return fmt.Errorf("truck.fuel %d outside 0..%d", t.Truck.Fuel, state.MaxStat)
	case t.Truck.Space <= 0:
		return fmt.Errorf("truck.space must be positive")
	case t.Truck.AvgSpeed <= 0:
		return fmt.Errorf("truck.avg_speed must be positive")
	case t.Truck.AvgConsumption <= 0:
		return fmt.Errorf("truck.avg_consumption must be positive")
	}

	names := make([]string, 0, len(t.Vendors))
	for name := range t.Vendors {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if !knownCargo(state.Cargo(name)) {
			return fmt.Errorf("vendor %q is not a cargo kind", name)
		}
		if v := t.Vendors[name]; v.Offer < 0 || v.Price <= 0 {
			return fmt.Errorf("vendor %q needs offer >= 0 and price > 0", name)
		}
	}
	return nil
}

// Options converts the tuning into engine start options.
func (t Tuning) Options() state.Options {
	opts := state.DefaultOptions()
	opts.Cash = t.Cash
	opts.Clock = t.Clock
	opts.Fuel = t.Truck.Fuel
	opts.Space = t.Truck.Space
	opts.AvgSpeed = t.Truck.AvgSpeed
	opts.AvgConsumption = t.Truck.AvgConsumption
	opts.Vendors = make(map[state.Cargo]state.VendorOptions, len(t.Vendors))
	for name, v := range t.Vendors {
		opts.Vendors[state.Cargo(name)] = state.VendorOptions{Offer: v.Offer, Price: v.Price}
	}
	return opts
}

func knownCargo(kind state.Cargo) bool {
	for _, k := range state.CargoKinds {
		if k == kind {
			return true
		}
	}
	return false
}
