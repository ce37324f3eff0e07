// Package effects implements the effect engine: it applies a declarative
// bundle of deltas to the game state. No game rules live here.
package effects

import (
	"math"

	"github.com/nathoo/roadsaga/engine/events"
	"github.com/nathoo/roadsaga/engine/state"
	"github.com/nathoo/roadsaga/types"
)

// IdleMinutes is the clock advance for a selection that carries no effects.
const IdleMinutes = 1

// Per ton of cargo the truck burns 0.2 l/100km more and drives 2 km/h slower.
const (
	fuelPerTon  = 0.2
	speedPerTon = 2
)

// Apply mutates s according to eff, in this fixed order: idle tick, distance,
// time, cash, health, fatigue, hunger. Returns the events it caused.
func Apply(s *state.State, eff types.Effects) []types.Event {
	if len(eff) == 0 {
		s.World.Advance(IdleMinutes)
		return []types.Event{clockEvent(IdleMinutes)}
	}

	var evs []types.Event

	if d, ok := eff[types.EffDistance]; ok {
		fuel, minutes := Drive(s, d)
		evs = append(evs,
			events.New(events.FuelUsed, "liters", fuel, "distance", d),
			clockEvent(minutes),
		)
	}

	if t, ok := eff[types.EffTime]; ok {
		s.World.Advance(t)
		evs = append(evs, clockEvent(t))
	}

	if c, ok := eff[types.EffCash]; ok {
		s.Hero.Cash += c
		evs = append(evs, statEvent("cash", c, s.Hero.Cash))
	}

	// Stats are capped at 100 only; callers decide what a negative value means.
	if v, ok := eff[types.EffHealth]; ok {
		s.Hero.Health = state.ClampStat(s.Hero.Health + v)
		evs = append(evs, statEvent("health", v, s.Hero.Health))
	}
	if v, ok := eff[types.EffFatigue]; ok {
		s.Hero.Fatigue = state.ClampStat(s.Hero.Fatigue + v)
		evs = append(evs, statEvent("fatigue", v, s.Hero.Fatigue))
	}
	if v, ok := eff[types.EffHunger]; ok {
		s.Hero.Hunger = state.ClampStat(s.Hero.Hunger + v)
		evs = append(evs, statEvent("hunger", v, s.Hero.Hunger))
	}

	return evs
}

// Drive simulates a trip of distance km. Fuel use and travel time depend on
// the cargo load. Fuel is not clamped: a negative tank means the truck is
// stranded. Returns liters used and minutes spent.
func Drive(s *state.State, distance int) (fuel, minutes int) {
	load := s.Truck.Load()

	consumption := float64(s.Truck.AvgConsumption) + float64(load)*fuelPerTon
	fuel = int(math.RoundToEven(float64(distance) / 100 * consumption))
	s.Truck.Fuel -= fuel

	minutes = TripMinutes(s, distance)
	s.World.Advance(minutes)

	return fuel, minutes
}

// TripMinutes returns how long a trip would take without applying it.
func TripMinutes(s *state.State, distance int) int {
	speed := s.Truck.AvgSpeed - s.Truck.Load()*speedPerTon
	if speed < 1 {
		speed = 1
	}
	return int(math.RoundToEven(float64(distance) / float64(speed) * 60))
}

func clockEvent(minutes int) types.Event {
	return events.New(events.ClockAdvanced, "minutes", minutes)
}

func statEvent(stat string, delta, value int) types.Event {
	return events.New(events.StatChanged, "stat", stat, "delta", delta, "value", value)
}
