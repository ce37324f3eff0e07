package actions

import (
	"fmt"

	"github.com/nathoo/roadsaga/engine/state"
)

// SellPrices is what the markets pay per unit of cargo.
var SellPrices = map[state.Cargo]int{
	state.Corn: 40,
	state.Coal: 30,
}

// BikerFuelLiters is what the gang pours into a member's tank.
const BikerFuelLiters = 30

func buy(s *state.State, kind state.Cargo, amount int) Outcome {
	v, ok := s.World.Vendors[kind]
	if !ok {
		return Outcome{}
	}
	if !v.Buy(amount, &s.Hero, &s.Truck) {
		return Outcome{}
	}
	return Outcome{
		Changed: true,
		Message: fmt.Sprintf("You load %d t of %s for $%d.", amount, kind, amount*v.Price),
	}
}

func sell(s *state.State, kind state.Cargo) Outcome {
	n := s.Truck.Cargo[kind]
	price, ok := SellPrices[kind]
	if !ok || n <= 0 {
		return Outcome{}
	}
	s.Hero.Cash += n * price
	s.Truck.AddCargo(kind, -n)
	return Outcome{
		Changed: true,
		Message: fmt.Sprintf("You unload %d t of %s and pocket $%d.", n, kind, n*price),
	}
}

// CanRefuel reports whether amount liters fit in the tank.
func CanRefuel(s *state.State, amount int) bool {
	return amount > 0 && s.Truck.Fuel+amount <= state.MaxStat
}

func refuel(s *state.State, amount int) Outcome {
	if !CanRefuel(s, amount) {
		return Outcome{}
	}
	s.Truck.Fuel += amount
	return Outcome{Changed: true, Message: fmt.Sprintf("The tank takes %d liters.", amount)}
}
