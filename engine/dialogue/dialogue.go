// Package dialogue generates the dynamic descriptions of locations and
// options: vendor quotes, combat narration and time-gated venue text.
package dialogue

import (
	"fmt"

	"github.com/nathoo/roadsaga/engine/actions"
	"github.com/nathoo/roadsaga/engine/state"
)

// Context is what a generator may look at.
type Context struct {
	State   *state.State
	Outcome *actions.Outcome // action run in this step, nil when none
}

// Generator produces a description from the current context.
type Generator func(ctx Context) string

var generators = map[string]Generator{
	"Start": func(ctx Context) string {
		return fmt.Sprintf("Day %d, %s. The engine ticks as it cools. Somewhere out there is a living to be made.",
			ctx.State.World.Day()+1, ctx.State.World.ClockString())
	},
	"Town": func(ctx Context) string {
		if night(ctx.State) {
			return "Town at night. Neon over the casino, bikes lined up outside the bar. Everything else is shut."
		}
		return "Main street is busy. The market, the diner and the garage are open for business."
	},

	"corn_stall":  vendorQuote(state.Corn, "The farmer leans on a pile of sacks"),
	"coal_office": vendorQuote(state.Coal, "The foreman taps the price board"),
	"scrap_pile":  vendorQuote(state.Scrap, "The junkyard owner kicks a heap of metal"),

	"gas_station": func(ctx Context) string {
		return narrated(ctx, fmt.Sprintf("The pump attendant looks at your gauge: %d liters left.", ctx.State.Truck.Fuel))
	},
	"garage": func(ctx Context) string {
		return narrated(ctx, fmt.Sprintf("The mechanic walks around the truck. Condition: %d%%.", ctx.State.Truck.Condition))
	},
	"casino": func(ctx Context) string {
		return fmt.Sprintf("Smoke, bells and blinking lights. You have $%d. A spin costs $5.", ctx.State.Hero.Cash)
	},
	"biker_bar": func(ctx Context) string {
		return narrated(ctx, barScene(ctx.State))
	},
	"approach_bikers": func(ctx Context) string {
		return "The biggest of them stands up and blocks your way. \"Lost, trucker?\""
	},
	"lake_shore": func(ctx Context) string {
		return narrated(ctx, fmt.Sprintf("The water is calm. You have been in %d times.", ctx.State.Hero.Swims))
	},
}

func night(s *state.State) bool {
	t := s.World.TimeOfDay()
	return t >= state.HM(22, 0) || t < state.HM(6, 0)
}

func barScene(s *state.State) string {
	switch {
	case s.Hero.GangMember:
		return "The gang waves you over to their table."
	case s.World.BikerMood == 0:
		return "Bikers fill the bar. Nobody looks at you, everybody watches you."
	default:
		return "The big biker wipes blood from his lip and glares at you."
	}
}

func vendorQuote(kind state.Cargo, lead string) Generator {
	return func(ctx Context) string {
		v, ok := ctx.State.World.Vendors[kind]
		if !ok || v.Offer <= 0 {
			return narrated(ctx, lead+". \"Sold out, come back later.\"")
		}
		return narrated(ctx, fmt.Sprintf("%s. \"%d t of %s, $%d a ton.\"", lead, v.Offer, kind, v.Price))
	}
}

// narrated prefixes text with the message of the action run in this step.
func narrated(ctx Context, text string) string {
	if ctx.Outcome == nil || ctx.Outcome.Message == "" {
		return text
	}
	return ctx.Outcome.Message + "\n\n" + text
}

// HasGenerator reports whether key has a dynamic description. Every action
// id has one: it narrates the action's outcome.
func HasGenerator(key string) bool {
	if _, ok := generators[key]; ok {
		return true
	}
	_, ok := actions.Parse(key)
	return ok
}

// Describe returns the dynamic description for key, or "" when there is none.
func Describe(key string, ctx Context) string {
	if gen, ok := generators[key]; ok {
		return gen(ctx)
	}
	if _, ok := actions.Parse(key); ok && ctx.Outcome != nil {
		return ctx.Outcome.Message
	}
	return ""
}
