package rules

import (
	"strings"

	"github.com/nathoo/roadsaga/engine/actions"
	"github.com/nathoo/roadsaga/engine/state"
	"github.com/nathoo/roadsaga/types"
)

// Visible reports whether an option is offered at all in the current state.
// Hidden sets are checked by Evaluate; this covers the transient predicates.
func Visible(opt types.Option, s *state.State) bool {
	if !Contains(WindowFor(opt.ID), s) {
		return false
	}

	switch opt.ID {
	case actions.IDCutThrough:
		return s.Truck.WheelBlades
	}

	if cmd, ok := actions.Parse(opt.ID); ok && cmd.Kind == actions.KindDeliver {
		return actions.CanDeliver(s, cmd.Route)
	}
	return true
}

// Enabled reports whether a visible option can be selected right now.
func Enabled(opt types.Option, s *state.State) bool {
	if cost := -opt.Effects[types.EffCash]; cost > 0 && s.Hero.Cash < cost {
		return false
	}

	switch {
	case strings.HasPrefix(opt.ID, "eat_"):
		if s.Hero.Hunger >= state.MaxStat {
			return false
		}
	case strings.HasPrefix(opt.ID, "sleep_"):
		if s.Hero.Fatigue >= state.MaxStat {
			return false
		}
	}

	cmd, ok := actions.Parse(opt.ID)
	if !ok {
		return true
	}

	switch cmd.Kind {
	case actions.KindBuy:
		v, ok := s.World.Vendors[cmd.Cargo]
		return ok && v.CanBuy(cmd.Amount, &s.Hero, &s.Truck)
	case actions.KindSell:
		return s.Truck.Cargo[cmd.Cargo] > 0
	case actions.KindRefuel:
		return actions.CanRefuel(s, cmd.Amount)
	case actions.KindTakePassenger:
		return s.Truck.SeatFree()
	case actions.KindShoot, actions.KindAmbushShoot:
		return s.Hero.Ammo > 0
	case actions.KindBikerJob:
		return actions.CanTakeBikerJob(s)
	case actions.KindRepair:
		return actions.CanRepair(s)
	case actions.KindUpgradeBlades, actions.KindExtendTrunk:
		return s.Truck.Cargo[state.Scrap] >= actions.UpgradeCost(opt.ID)
	case actions.KindSwim:
		return s.Hero.Fatigue >= actions.SwimMinFatigue
	}
	return true
}
