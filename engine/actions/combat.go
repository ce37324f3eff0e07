package actions

import (
	"fmt"

	"github.com/nathoo/roadsaga/engine/dice"
	"github.com/nathoo/roadsaga/engine/state"
)

// VictoryMood is the biker mood at which the gang accepts the hero.
const VictoryMood = 4

// Counter-attack damage, by d2 draw.
const (
	PunchDamage  = 10
	BottleDamage = 25
)

// Biker job and ambush numbers.
const (
	BikerJobPay      = 60
	AmbushHealthLoss = 30
	AmbushCashLoss   = 20
	AmbushAmmoLoot   = 2
	AmbushWinChance  = 50
)

// gangOnly are unlocked by victory; fightOptions are hidden by it.
var (
	gangOnly     = []string{IDBikerFuel, IDBikerJob}
	fightOptions = []string{IDApproachBikers, IDHitStomach, IDHitFace, IDShootBikers}
)

func hit(s *state.State, blow int, src dice.Source) Outcome {
	if s.Hero.GangMember || s.World.BikerMood >= VictoryMood || blow <= 0 {
		return Outcome{}
	}
	s.World.BikerMood = minInt(s.World.BikerMood+blow, VictoryMood)
	if s.World.BikerMood >= VictoryMood {
		return victory(s, "The biker goes down. The gang roars with laughter and buys you a drink.")
	}

	var msg string
	switch src.Roll(2) {
	case 1:
		s.Hero.Health -= PunchDamage
		msg = "He takes it and punches you square in the jaw."
	default:
		s.Hero.Health -= BottleDamage
		msg = "He staggers, grabs a bottle and smashes it over your head."
	}
	return Outcome{Changed: true, Message: msg}
}

func shootBikers(s *state.State) Outcome {
	if s.Hero.GangMember || s.Hero.Ammo <= 0 {
		return Outcome{}
	}
	s.Hero.Ammo--
	s.World.BikerMood = VictoryMood
	return victory(s, "One shot into the ceiling. The bar goes quiet, then the leader grins.")
}

// victory runs once, when the mood first reaches VictoryMood.
func victory(s *state.State, lead string) Outcome {
	s.Hero.GangMember = true
	for _, id := range gangOnly {
		s.Unhide(id)
	}
	for _, id := range fightOptions {
		s.Hide(id)
	}
	return Outcome{Changed: true, Message: lead + " You're one of the gang now."}
}

// CanTakeBikerJob reports whether a gang member has not yet worked today.
func CanTakeBikerJob(s *state.State) bool {
	return s.Hero.GangMember && s.Hero.LastJobDay != s.World.Day()
}

func bikerJob(s *state.State) Outcome {
	if !CanTakeBikerJob(s) {
		return Outcome{}
	}
	s.Hero.Cash += BikerJobPay
	s.Hero.LastJobDay = s.World.Day()
	return Outcome{
		Changed: true,
		Message: fmt.Sprintf("You run a package across the county line. The gang pays $%d.", BikerJobPay),
	}
}

func fightAmbush(s *state.State, src dice.Source) Outcome {
	if dice.Chance(src, AmbushWinChance) {
		s.Hero.Ammo += AmbushAmmoLoot
		return Outcome{
			Changed: true,
			Message: fmt.Sprintf("You fight them off and pick up %d shells they dropped.", AmbushAmmoLoot),
		}
	}
	loss := minInt(maxInt(s.Hero.Cash, 0), AmbushCashLoss)
	s.Hero.Health -= AmbushHealthLoss
	s.Hero.Cash -= loss
	return Outcome{
		Changed: true,
		Message: fmt.Sprintf("They beat you up and take $%d.", loss),
	}
}

func shootAmbush(s *state.State) Outcome {
	if s.Hero.Ammo <= 0 {
		return Outcome{}
	}
	s.Hero.Ammo--
	return Outcome{Changed: true, Message: "A single shot and the bikers scatter."}
}
