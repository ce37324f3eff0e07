package actions

import (
	"fmt"

	"github.com/nathoo/roadsaga/engine/state"
)

// Route is a passenger quest: who rides, where to, and what they pay.
type Route struct {
	Name        string
	Destination string
	Cash        int
	Ammo        int
	OneTime     bool // the pickup option disappears after the first ride
}

// Routes lists every passenger quest by route id.
var Routes = map[string]Route{
	"hitchhiker": {Name: "Hitchhiker", Destination: "Farm", Cash: 25},
	"miner":      {Name: "Miner", Destination: "Mine", Cash: 40},
	"policeman":  {Name: "Policeman", Destination: "Outpost", Ammo: 5, OneTime: true},
}

// PickupID returns the option id that starts a route.
func PickupID(route string) string {
	return "take_" + route
}

// DeliveryID returns the option id that completes a route.
func DeliveryID(route string) string {
	return route + "_delivered"
}

// CanDeliver reports whether the passenger on board rides route and the
// truck has reached its destination.
func CanDeliver(s *state.State, route string) bool {
	p := s.Truck.Passenger
	return p != nil && p.Route == route && p.Destination == s.World.Location
}

func takePassenger(s *state.State, route string) Outcome {
	r, ok := Routes[route]
	if !ok || !s.Truck.SeatFree() {
		return Outcome{}
	}
	origin := s.World.Location
	if s.World.EncounterActive {
		origin = s.World.TripFrom
	}
	s.Truck.Passenger = &state.Passenger{
		Name:        r.Name,
		Route:       route,
		Origin:      origin,
		Destination: r.Destination,
	}
	if r.OneTime {
		s.Hide(PickupID(route))
	}
	return Outcome{
		Changed: true,
		Message: fmt.Sprintf("The %s climbs into the cab. Destination: %s.", r.Name, r.Destination),
	}
}

func deliver(s *state.State, route string) (Outcome, error) {
	if !CanDeliver(s, route) {
		return Outcome{}, fmt.Errorf("%w: %s at %s", ErrPassengerMismatch, route, s.World.Location)
	}
	r := Routes[route]
	s.Hero.Cash += r.Cash
	s.Hero.Ammo += r.Ammo
	s.Truck.Passenger = nil

	msg := fmt.Sprintf("The %s thanks you", r.Name)
	switch {
	case r.Cash > 0:
		msg += fmt.Sprintf(" and pays $%d.", r.Cash)
	case r.Ammo > 0:
		msg += fmt.Sprintf(" and leaves you %d rounds of ammunition.", r.Ammo)
	default:
		msg += "."
	}
	return Outcome{Changed: true, Message: msg}, nil
}
