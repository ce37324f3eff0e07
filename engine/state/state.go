// Package state holds the mutable game state: world, hero, truck, vendors
// and the option visibility sets.
package state

// StartLocation is where every new game begins.
const StartLocation = "Start"

// MaxStat is the upper bound for health, fatigue, hunger and truck gauges.
const MaxStat = 100

// Cargo is a kind of freight the truck can carry.
type Cargo string

const (
	Coal  Cargo = "coal"
	Corn  Cargo = "corn"
	Scrap Cargo = "scrap"
)

// CargoKinds lists every cargo kind in display order.
var CargoKinds = []Cargo{Coal, Corn, Scrap}

// World holds global game state: time, navigation and vendors.
type World struct {
	Clock           int // minutes since the start of day 0, never decreases
	Location        string
	EncounterActive bool
	Deferred        string // destination to resume after the active encounter
	TripFrom        string // where the interrupted trip started
	BikerMood       int    // 0 hostile .. 4 accepted
	Vendors         map[Cargo]*Vendor
}

// Passenger occupies the truck's single passenger slot.
type Passenger struct {
	Name        string
	Route       string
	Origin      string
	Destination string
}

// Hero is the player character.
type Hero struct {
	Health     int
	Fatigue    int
	Hunger     int
	Cash       int
	Ammo       int
	GangMember bool
	Swims      int
	LastJobDay int // day of the last gang job, -1 when none
}

// Truck is the player's vehicle.
type Truck struct {
	Condition      int
	Fuel           int
	Space          int // free cargo space
	Cargo          map[Cargo]int
	AvgSpeed       int
	AvgConsumption int
	ExtendedTrunk  bool
	WheelBlades    bool
	Passenger      *Passenger
}

// State is the complete mutable game state.
type State struct {
	World World
	Hero  Hero
	Truck Truck

	// Hidden holds ids that are used up or locked until something unlocks them.
	Hidden map[string]bool
	// EncounterHidden holds ids suppressed for the current encounter only.
	EncounterHidden map[string]bool
}

// VendorOptions configures one vendor's starting stock and price.
type VendorOptions struct {
	Offer int
	Price int
}

// Options holds the initial values of a new game.
type Options struct {
	Cash           int
	Clock          int
	Fuel           int
	Space          int
	AvgSpeed       int
	AvgConsumption int
	Vendors        map[Cargo]VendorOptions
	Hidden         []string
}

// DefaultOptions returns the standard starting values.
func DefaultOptions() Options {
	return Options{
		Cash:           20,
		Clock:          408,
		Fuel:           100,
		Space:          10,
		AvgSpeed:       70,
		AvgConsumption: 10,
		Vendors: map[Cargo]VendorOptions{
			Corn:  {Offer: 35, Price: 25},
			Coal:  {Offer: 50, Price: 15},
			Scrap: {Offer: 20, Price: 8},
		},
		Hidden: []string{"biker_fuel", "biker_job"},
	}
}

// NewState creates a fresh game state.
func NewState(opts Options) *State {
	vendors := make(map[Cargo]*Vendor, len(opts.Vendors))
	for kind, v := range opts.Vendors {
		vendors[kind] = &Vendor{Kind: kind, Offer: v.Offer, Price: v.Price}
	}
	cargo := make(map[Cargo]int, len(CargoKinds))
	for _, kind := range CargoKinds {
		cargo[kind] = 0
	}
	hidden := make(map[string]bool, len(opts.Hidden))
	for _, id := range opts.Hidden {
		hidden[id] = true
	}
	return &State{
		World: World{
			Clock:    opts.Clock,
			Location: StartLocation,
			Vendors:  vendors,
		},
		Hero: Hero{
			Health:     MaxStat,
			Fatigue:    MaxStat,
			Hunger:     MaxStat,
			Cash:       opts.Cash,
			LastJobDay: -1,
		},
		Truck: Truck{
			Condition:      MaxStat,
			Fuel:           opts.Fuel,
			Space:          opts.Space,
			Cargo:          cargo,
			AvgSpeed:       opts.AvgSpeed,
			AvgConsumption: opts.AvgConsumption,
		},
		Hidden:          hidden,
		EncounterHidden: map[string]bool{},
	}
}

// Clone returns a deep copy of the state.
func (s *State) Clone() *State {
	c := *s
	c.World.Vendors = make(map[Cargo]*Vendor, len(s.World.Vendors))
	for k, v := range s.World.Vendors {
		vv := *v
		c.World.Vendors[k] = &vv
	}
	c.Truck.Cargo = make(map[Cargo]int, len(s.Truck.Cargo))
	for k, v := range s.Truck.Cargo {
		c.Truck.Cargo[k] = v
	}
	if s.Truck.Passenger != nil {
		p := *s.Truck.Passenger
		c.Truck.Passenger = &p
	}
	c.Hidden = copySet(s.Hidden)
	c.EncounterHidden = copySet(s.EncounterHidden)
	return &c
}

func copySet(m map[string]bool) map[string]bool {
	out := make(map[string]bool, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// IsHidden reports whether an option id is suppressed persistently or for
// the current encounter.
func (s *State) IsHidden(id string) bool {
	return s.Hidden[id] || s.EncounterHidden[id]
}

// Hide suppresses ids until Unhide is called.
func (s *State) Hide(ids ...string) {
	for _, id := range ids {
		s.Hidden[id] = true
	}
}

// Unhide removes ids from the persistent hidden set.
func (s *State) Unhide(ids ...string) {
	for _, id := range ids {
		delete(s.Hidden, id)
	}
}

// HideForEncounter suppresses ids until the current encounter concludes.
func (s *State) HideForEncounter(ids ...string) {
	for _, id := range ids {
		s.EncounterHidden[id] = true
	}
}

// ClearEncounter resets all encounter bookkeeping.
func (s *State) ClearEncounter() {
	s.World.EncounterActive = false
	s.World.Deferred = ""
	s.World.TripFrom = ""
	s.EncounterHidden = map[string]bool{}
}

// Load returns the total carried cargo.
func (t *Truck) Load() int {
	load := 0
	for _, n := range t.Cargo {
		load += n
	}
	return load
}

// Stranded reports whether the truck has run its tank below empty.
func (t *Truck) Stranded() bool {
	return t.Fuel < 0
}

// SeatFree reports whether the passenger slot is empty.
func (t *Truck) SeatFree() bool {
	return t.Passenger == nil
}

// AddCargo moves n units into (n > 0) or out of (n < 0) the cargo hold,
// adjusting free space by the same amount.
func (t *Truck) AddCargo(kind Cargo, n int) {
	t.Cargo[kind] += n
	t.Space -= n
}

// ClampStat caps v at MaxStat. There is no lower bound.
func ClampStat(v int) int {
	if v > MaxStat {
		return MaxStat
	}
	return v
}
