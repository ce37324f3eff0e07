package actions

import (
	"fmt"

	"github.com/nathoo/roadsaga/engine/state"
)

// Garage and junkyard numbers.
const (
	RepairAmount    = 25
	BladesScrapCost = 3
	TrunkScrapCost  = 5
	TrunkExtraSpace = 5
)

// CanRepair reports whether the truck needs work.
func CanRepair(s *state.State) bool {
	return s.Truck.Condition < state.MaxStat
}

func repair(s *state.State) Outcome {
	if !CanRepair(s) {
		return Outcome{}
	}
	s.Truck.Condition = minInt(s.Truck.Condition+RepairAmount, state.MaxStat)
	return Outcome{Changed: true, Message: fmt.Sprintf("The mechanic gets the truck to %d%%.", s.Truck.Condition)}
}

func installBlades(s *state.State) Outcome {
	if s.Truck.WheelBlades {
		return Outcome{}
	}
	s.Truck.AddCargo(state.Scrap, -BladesScrapCost)
	s.Truck.WheelBlades = true
	s.Hide(IDInstallBlades)
	return Outcome{Changed: true, Message: "You weld scrap blades onto the wheel hubs."}
}

func extendTrunk(s *state.State) Outcome {
	if s.Truck.ExtendedTrunk {
		return Outcome{}
	}
	s.Truck.AddCargo(state.Scrap, -TrunkScrapCost)
	s.Truck.Space += TrunkExtraSpace
	s.Truck.ExtendedTrunk = true
	s.Hide(IDExtendTrunk)
	return Outcome{Changed: true, Message: fmt.Sprintf("The trunk now holds %d t more.", TrunkExtraSpace)}
}

// UpgradeCost returns the scrap an upgrade option needs, or 0 if id is not
// an upgrade.
func UpgradeCost(id string) int {
	switch id {
	case IDInstallBlades:
		return BladesScrapCost
	case IDExtendTrunk:
		return TrunkScrapCost
	}
	return 0
}
