package actions

import (
	"fmt"

	"github.com/nathoo/roadsaga/engine/dice"
	"github.com/nathoo/roadsaga/engine/state"
)

// Lake mini-quest.
const (
	SwimsForWallet = 3
	WalletCash     = 50
	SwimMinFatigue = 20
)

// City exploration outcomes, in draw order.
const (
	ExploreFound = iota
	ExploreScrap
	ExplorePickpocket
	ExploreNothing
)

// ExploreWeights are the draw weights for each exploration outcome.
var ExploreWeights = []int{30, 20, 20, 30}

const (
	exploreFoundCash = 10
	pickpocketLoss   = 10
)

// Rumours is what a hitchhiker knows about the road.
var Rumours = []string{
	"\"Bikers hang around the crossroads after dark. Keep some cash for the toll.\"",
	"\"The farmer pays well for a ride, and sells corn cheap in the morning.\"",
	"\"Folks at the mine say a wallet went into the lake last summer.\"",
	"\"The junkyard guy can fit blades on your wheels if you bring him scrap.\"",
	"\"Casino opens at eight. Don't bet what you can't lose.\"",
}

// LowFuel is the level under which the fuel tip becomes a warning.
const LowFuel = 30

func swim(s *state.State) Outcome {
	if s.IsHidden(IDSwim) {
		return Outcome{}
	}
	s.Hero.Swims++
	if s.Hero.Swims < SwimsForWallet {
		return Outcome{Changed: true, Message: "The water is cold and clear. Something glints near the bottom."}
	}
	s.Hero.Cash += WalletCash
	s.Hide(IDSwim)
	return Outcome{
		Changed: true,
		Message: fmt.Sprintf("You dive deep and come up with a waterlogged wallet: $%d inside.", WalletCash),
	}
}

func explore(s *state.State, src dice.Source) Outcome {
	switch src.WeightedSelect(ExploreWeights) {
	case ExploreFound:
		s.Hero.Cash += exploreFoundCash
		return Outcome{Changed: true, Message: fmt.Sprintf("You find $%d in a gutter.", exploreFoundCash)}
	case ExploreScrap:
		if s.Truck.Space <= 0 {
			return Outcome{Changed: true, Message: "You spot some scrap but the truck is full."}
		}
		s.Truck.AddCargo(state.Scrap, 1)
		return Outcome{Changed: true, Message: "You haul a piece of scrap metal back to the truck."}
	case ExplorePickpocket:
		loss := minInt(maxInt(s.Hero.Cash, 0), pickpocketLoss)
		s.Hero.Cash -= loss
		return Outcome{Changed: true, Message: fmt.Sprintf("A pickpocket lifts $%d from you.", loss)}
	default:
		return Outcome{Changed: true, Message: "You wander the streets. Nothing happens."}
	}
}

func askNews(s *state.State, src dice.Source) Outcome {
	i := src.Roll(len(Rumours)) - 1
	if i < 0 || i >= len(Rumours) {
		i = 0
	}
	s.HideForEncounter(IDAskNews)
	return Outcome{Changed: true, Message: Rumours[i]}
}

func askFuel(s *state.State) Outcome {
	s.HideForEncounter(IDAskFuel)
	if s.Truck.Fuel < LowFuel {
		return Outcome{
			Changed: true,
			Message: "\"You're running on fumes. The gas station in Town is your best bet.\"",
		}
	}
	return Outcome{
		Changed: true,
		Message: "\"Gas in Town is cheaper than out here. Fill up before the long runs.\"",
	}
}
