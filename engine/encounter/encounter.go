// Package encounter decides whether a trip is interrupted by a detour and
// brings the truck back on its way once the detour is over.
package encounter

import (
	"github.com/nathoo/roadsaga/engine/dice"
	"github.com/nathoo/roadsaga/engine/rules"
	"github.com/nathoo/roadsaga/engine/state"
	"github.com/nathoo/roadsaga/types"
)

// Eligible reports whether enc may start in the current state, before the
// chance roll.
func Eligible(enc types.Encounter, s *state.State) bool {
	if s.World.EncounterActive {
		return false
	}
	if enc.NeedsEmptySeat && !s.Truck.SeatFree() {
		return false
	}
	if enc.SkipGang && s.Hero.GangMember {
		return false
	}
	return rules.Contains(enc.Window, s)
}

// Resolve picks where a trip to opt.Destination actually ends. Encounters
// are tried in order and the first to fire wins. When one starts, the
// original destination is deferred and the encounter location is returned.
// The state's location is updated in either case.
func Resolve(s *state.State, opt types.Option, src dice.Source) (dest string, started bool) {
	for _, enc := range opt.Encounters {
		if !Eligible(enc, s) {
			continue
		}
		if !dice.Chance(src, enc.Chance) {
			continue
		}
		s.World.Deferred = opt.Destination
		s.World.TripFrom = s.World.Location
		s.World.EncounterActive = true
		s.World.Location = enc.Location
		return enc.Location, true
	}
	s.World.Location = opt.Destination
	return opt.Destination, false
}

// Resume ends the active encounter and moves to the deferred destination.
// The second result is false when no encounter was active.
func Resume(s *state.State) (string, bool) {
	if !s.World.EncounterActive {
		return "", false
	}
	dest := s.World.Deferred
	s.ClearEncounter()
	s.World.Location = dest
	return dest, true
}

// Abandon ends the active encounter without resuming the trip.
func Abandon(s *state.State) {
	s.ClearEncounter()
}
