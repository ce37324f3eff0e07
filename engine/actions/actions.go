// Package actions is the action registry: the fixed set of option ids whose
// behaviour cannot be expressed as a plain effect bundle. Option ids are
// parsed into a closed Command value and dispatched through a single switch.
package actions

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/nathoo/roadsaga/engine/dice"
	"github.com/nathoo/roadsaga/engine/state"
)

// ErrPassengerMismatch is returned by a delivery when the passenger slot does
// not hold that route or the truck is not at the route's destination.
// Callers are expected to check the match first; no state is changed.
var ErrPassengerMismatch = errors.New("passenger does not match this delivery")

// ErrUnknownCommand is returned for a Command with an unrecognised Kind.
var ErrUnknownCommand = errors.New("unknown command")

// Kind enumerates every action the registry knows.
type Kind int

const (
	KindNone Kind = iota
	KindBuy
	KindSell
	KindRefuel
	KindTakePassenger
	KindDeliver
	KindHit
	KindShoot
	KindBikerJob
	KindAmbushFight
	KindAmbushShoot
	KindSpin
	KindRepair
	KindUpgradeBlades
	KindExtendTrunk
	KindSwim
	KindExplore
	KindAskNews
	KindAskFuel
)

var kindNames = map[Kind]string{
	KindNone:          "none",
	KindBuy:           "buy",
	KindSell:          "sell",
	KindRefuel:        "refuel",
	KindTakePassenger: "take_passenger",
	KindDeliver:       "deliver",
	KindHit:           "hit",
	KindShoot:         "shoot",
	KindBikerJob:      "biker_job",
	KindAmbushFight:   "ambush_fight",
	KindAmbushShoot:   "ambush_shoot",
	KindSpin:          "spin",
	KindRepair:        "repair",
	KindUpgradeBlades: "upgrade_blades",
	KindExtendTrunk:   "extend_trunk",
	KindSwim:          "swim",
	KindExplore:       "explore",
	KindAskNews:       "ask_news",
	KindAskFuel:       "ask_fuel",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Command is a parsed action. Only the fields relevant to Kind are set.
type Command struct {
	Kind   Kind
	Cargo  state.Cargo
	Amount int
	Route  string
	Blow   int // mood gained by a hit
}

// Outcome describes what an action did, for narration and display.
type Outcome struct {
	Kind    Kind
	Changed bool   // false when the guard failed and nothing was mutated
	Message string // narration, empty when there is nothing to tell
	Reels   []int  // slot machine draw
	Payout  int    // slot machine winnings
}

// Option ids with fixed meanings.
const (
	IDApproachBikers = "approach_bikers"
	IDHitStomach     = "hit_stomach"
	IDHitFace        = "hit_face"
	IDShootBikers    = "shoot_bikers"
	IDBikerFuel      = "biker_fuel"
	IDBikerJob       = "biker_job"
	IDFightAmbush    = "fight_ambush"
	IDShootAmbush    = "shoot_ambush"
	IDPlaySlots      = "play_slots"
	IDSpinSlots      = "spin_slots"
	IDRepairTruck    = "repair_truck"
	IDInstallBlades  = "install_blades"
	IDExtendTrunk    = "extend_trunk"
	IDCutThrough     = "cut_through"
	IDSwim           = "swim"
	IDExploreCity    = "explore_city"
	IDAskNews        = "ask_news"
	IDAskFuel        = "ask_fuel"
)

var fixed = map[string]Command{
	IDHitStomach:    {Kind: KindHit, Blow: 1},
	IDHitFace:       {Kind: KindHit, Blow: 2},
	IDShootBikers:   {Kind: KindShoot},
	IDBikerFuel:     {Kind: KindRefuel, Amount: BikerFuelLiters},
	IDBikerJob:      {Kind: KindBikerJob},
	IDFightAmbush:   {Kind: KindAmbushFight},
	IDShootAmbush:   {Kind: KindAmbushShoot},
	IDSpinSlots:     {Kind: KindSpin},
	IDRepairTruck:   {Kind: KindRepair},
	IDInstallBlades: {Kind: KindUpgradeBlades},
	IDExtendTrunk:   {Kind: KindExtendTrunk},
	IDSwim:          {Kind: KindSwim},
	IDExploreCity:   {Kind: KindExplore},
	IDAskNews:       {Kind: KindAskNews},
	IDAskFuel:       {Kind: KindAskFuel},
}

// Parse maps an option id to its command. The second result is false for
// ids that are plain content (effects and navigation only).
func Parse(id string) (Command, bool) {
	if cmd, ok := fixed[id]; ok {
		return cmd, true
	}

	switch {
	case strings.HasPrefix(id, "buy_fuel_"):
		n, err := strconv.Atoi(strings.TrimPrefix(id, "buy_fuel_"))
		if err != nil || n <= 0 {
			return Command{}, false
		}
		return Command{Kind: KindRefuel, Amount: n}, true

	case strings.HasPrefix(id, "buy_"):
		rest := strings.TrimPrefix(id, "buy_")
		i := strings.LastIndex(rest, "_")
		if i < 0 {
			return Command{}, false
		}
		kind := state.Cargo(rest[:i])
		n, err := strconv.Atoi(rest[i+1:])
		if err != nil || n <= 0 || !knownCargo(kind) {
			return Command{}, false
		}
		return Command{Kind: KindBuy, Cargo: kind, Amount: n}, true

	case strings.HasPrefix(id, "sell_"):
		kind := state.Cargo(strings.TrimPrefix(id, "sell_"))
		if _, ok := SellPrices[kind]; !ok {
			return Command{}, false
		}
		return Command{Kind: KindSell, Cargo: kind}, true

	case strings.HasPrefix(id, "take_"):
		route := strings.TrimPrefix(id, "take_")
		if _, ok := Routes[route]; !ok {
			return Command{}, false
		}
		return Command{Kind: KindTakePassenger, Route: route}, true

	case strings.HasSuffix(id, "_delivered"):
		route := strings.TrimSuffix(id, "_delivered")
		if _, ok := Routes[route]; !ok {
			return Command{}, false
		}
		return Command{Kind: KindDeliver, Route: route}, true
	}

	return Command{}, false
}

// LooksLikeCommand reports whether id uses one of the command prefixes or
// suffixes. The loader uses it to reject misspelled action ids.
func LooksLikeCommand(id string) bool {
	for _, p := range []string{"buy_", "sell_", "take_"} {
		if strings.HasPrefix(id, p) {
			return true
		}
	}
	return strings.HasSuffix(id, "_delivered")
}

// Run performs cmd against s. Guard failures are silent no-ops reported via
// Outcome.Changed. The only error is a caller contract violation.
func Run(cmd Command, s *state.State, src dice.Source) (Outcome, error) {
	var out Outcome
	var err error

	switch cmd.Kind {
	case KindBuy:
		out = buy(s, cmd.Cargo, cmd.Amount)
	case KindSell:
		out = sell(s, cmd.Cargo)
	case KindRefuel:
		out = refuel(s, cmd.Amount)
	case KindTakePassenger:
		out = takePassenger(s, cmd.Route)
	case KindDeliver:
		out, err = deliver(s, cmd.Route)
	case KindHit:
		out = hit(s, cmd.Blow, src)
	case KindShoot:
		out = shootBikers(s)
	case KindBikerJob:
		out = bikerJob(s)
	case KindAmbushFight:
		out = fightAmbush(s, src)
	case KindAmbushShoot:
		out = shootAmbush(s)
	case KindSpin:
		out = spin(s, src)
	case KindRepair:
		out = repair(s)
	case KindUpgradeBlades:
		out = installBlades(s)
	case KindExtendTrunk:
		out = extendTrunk(s)
	case KindSwim:
		out = swim(s)
	case KindExplore:
		out = explore(s, src)
	case KindAskNews:
		out = askNews(s, src)
	case KindAskFuel:
		out = askFuel(s)
	default:
		return Outcome{Kind: cmd.Kind}, fmt.Errorf("%w: %s", ErrUnknownCommand, cmd.Kind)
	}

	out.Kind = cmd.Kind
	return out, err
}

func knownCargo(kind state.Cargo) bool {
	for _, k := range state.CargoKinds {
		if k == kind {
			return true
		}
	}
	return false
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
