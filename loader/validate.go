package loader

import (
	"fmt"
	"sort"
	"strings"

	"github.com/nathoo/roadsaga/engine/actions"
	"github.com/nathoo/roadsaga/engine/dialogue"
	"github.com/nathoo/roadsaga/types"
)

// ValidationError collects all validation errors and warnings.
type ValidationError struct {
	Errors   []string
	Warnings []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed with %d error(s):\n  %s",
		len(e.Errors), strings.Join(e.Errors, "\n  "))
}

// Known effect keys.
var validEffectKeys = map[string]bool{
	types.EffDistance: true,
	types.EffTime:     true,
	types.EffCash:     true,
	types.EffHealth:   true,
	types.EffFatigue:  true,
	types.EffHunger:   true,
}

// validate checks the compiled graph for referential integrity. It returns
// the warnings and, when there are errors, a *ValidationError.
func validate(g *types.Graph) ([]string, error) {
	ve := &ValidationError{}

	if g.Game.Title == "" {
		ve.Errors = append(ve.Errors, "Game.Title is required")
	}

	if g.Game.Start == "" {
		ve.Errors = append(ve.Errors, "Game.Start is required")
	} else if _, ok := g.Locations[g.Game.Start]; !ok {
		ve.Errors = append(ve.Errors, fmt.Sprintf(
			"start location %q not found in defined locations", g.Game.Start))
	}

	// Deterministic message order.
	names := make([]string, 0, len(g.Locations))
	for name := range g.Locations {
		names = append(names, name)
	}
	sort.Strings(names)

	encounterLocations := map[string]bool{}
	for _, name := range names {
		walkOptions(g.Locations[name].Options, func(opt types.Option) {
			for _, enc := range opt.Encounters {
				encounterLocations[enc.Location] = true
			}
		})
	}

	for _, name := range names {
		loc := g.Locations[name]
		switch loc.Description.Kind {
		case types.DescNone:
			ve.Warnings = append(ve.Warnings, fmt.Sprintf("location %q has no description", name))
		case types.DescDynamic:
			if !dialogue.HasGenerator(name) {
				ve.Errors = append(ve.Errors, fmt.Sprintf(
					"location %q has a dynamic description but no generator", name))
			}
		}
		walkOptions(loc.Options, func(opt types.Option) {
			validateOption(g, name, opt, encounterLocations[name], ve)
		})
	}

	if len(ve.Errors) > 0 {
		return ve.Warnings, ve
	}
	return ve.Warnings, nil
}

func validateOption(g *types.Graph, locName string, opt types.Option, isEncounter bool, ve *ValidationError) {
	where := fmt.Sprintf("location %q option %q", locName, opt.ID)

	if opt.Text == "" {
		ve.Errors = append(ve.Errors, where+": text is required")
	}

	switch dest := opt.Destination; {
	case dest == "":
	case dest == types.ResumeTravel:
		if !isEncounter {
			ve.Warnings = append(ve.Warnings, where+": resumes travel outside an encounter location")
		}
	default:
		if _, ok := g.Locations[dest]; !ok {
			ve.Errors = append(ve.Errors, fmt.Sprintf("%s: destination %q not found", where, dest))
		}
	}
	if opt.Destination != "" && len(opt.Options) > 0 {
		ve.Warnings = append(ve.Warnings, where+": has both nested options and a destination; nested options win")
	}

	if opt.Description.Kind == types.DescDynamic && !dialogue.HasGenerator(opt.ID) {
		ve.Errors = append(ve.Errors, fmt.Sprintf("%s: dynamic description but no generator", where))
	}

	keys := make([]string, 0, len(opt.Effects))
	for k := range opt.Effects {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if !validEffectKeys[k] {
			ve.Errors = append(ve.Errors, fmt.Sprintf("%s: unknown effect %q", where, k))
		}
	}

	if actions.LooksLikeCommand(opt.ID) {
		if _, ok := actions.Parse(opt.ID); !ok {
			ve.Errors = append(ve.Errors, fmt.Sprintf("%s: not a recognised action id", where))
		}
	}

	for _, enc := range opt.Encounters {
		if _, ok := g.Locations[enc.Location]; !ok {
			ve.Errors = append(ve.Errors, fmt.Sprintf("%s: encounter location %q not found", where, enc.Location))
		}
		if enc.Chance < 0 || enc.Chance > 100 {
			ve.Errors = append(ve.Errors, fmt.Sprintf("%s: encounter chance %d outside 0..100", where, enc.Chance))
		}
	}
	if len(opt.Encounters) > 0 && opt.Destination == "" {
		ve.Warnings = append(ve.Warnings, where+": encounters without a destination never fire")
	}
}

// walkOptions calls fn for every option in the tree, depth first.
func walkOptions(opts []types.Option, fn func(types.Option)) {
	for _, opt := range opts {
		fn(opt)
		walkOptions(opt.Options, fn)
	}
}
