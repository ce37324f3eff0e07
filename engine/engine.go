// Package engine provides the navigation controller that wires together
// availability, effects, actions and encounters into a single selection.
package engine

import (
	"errors"
	"io"
	"log/slog"

	"github.com/nathoo/roadsaga/engine/actions"
	"github.com/nathoo/roadsaga/engine/dialogue"
	"github.com/nathoo/roadsaga/engine/dice"
	"github.com/nathoo/roadsaga/engine/effects"
	"github.com/nathoo/roadsaga/engine/encounter"
	"github.com/nathoo/roadsaga/engine/events"
	"github.com/nathoo/roadsaga/engine/rules"
	"github.com/nathoo/roadsaga/engine/state"
	"github.com/nathoo/roadsaga/types"
)

// frame is one level of the navigation stack.
type frame struct {
	option types.Option
}

// Engine holds the content graph, the mutable state and the navigation stack.
type Engine struct {
	Graph  *types.Graph
	State  *state.State
	Source dice.Source

	log   *slog.Logger
	stack []frame
	text  string
}

// Opt configures an Engine.
type Opt func(*Engine)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *slog.Logger) Opt {
	return func(e *Engine) {
		if l != nil {
			e.log = l
		}
	}
}

// New creates an engine positioned at the root of the state's location. If
// that location is not in the graph the game's start location is used.
func New(g *types.Graph, s *state.State, src dice.Source, opts ...Opt) *Engine {
	e := &Engine{
		Graph:  g,
		State:  s,
		Source: src,
		log:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, o := range opts {
		o(e)
	}
	if _, ok := g.Locations[s.World.Location]; !ok && g.Game.Start != "" {
		s.World.Location = g.Game.Start
	}
	e.text = e.levelText(nil)
	return e
}

// CurrentText returns the body text of the current level.
func (e *Engine) CurrentText() string {
	return e.text
}

// CurrentOptions returns the options offered at the current level.
func (e *Engine) CurrentOptions() []types.OptionView {
	return rules.Evaluate(e.levelOptions(), e.State)
}

// Location returns the current location name.
func (e *Engine) Location() string {
	return e.State.World.Location
}

// Depth returns how many nested levels deep the player is.
func (e *Engine) Depth() int {
	return len(e.stack)
}

// Path returns the option ids descended into from the location root.
func (e *Engine) Path() []string {
	ids := make([]string, len(e.stack))
	for i, f := range e.stack {
		ids[i] = f.option.ID
	}
	return ids
}

// Select processes one option. Unknown, hidden and disabled options are
// no-ops and leave Result.Selected false.
func (e *Engine) Select(id string) types.Result {
	opt, ok := e.lookup(id)
	if !ok {
		e.log.Debug("select ignored", "id", id, "reason", "not offered")
		return types.Result{}
	}
	if visible, enabled := rules.Available(opt, e.State); !visible || !enabled {
		e.log.Debug("select ignored", "id", id, "reason", "unavailable")
		return types.Result{}
	}
	if !e.reachable(opt) {
		e.log.Warn("select ignored", "id", id, "reason", "unknown destination", "destination", opt.Destination)
		return types.Result{}
	}

	if id == types.BackID {
		return e.back()
	}

	e.log.Debug("select", "id", id, "location", e.Location(), "depth", e.Depth())
	res := types.Result{Selected: true}
	res.Events = append(res.Events, events.New(events.OptionSelected, "id", id, "location", e.Location()))
	res.Events = append(res.Events, effects.Apply(e.State, opt.Effects)...)

	outcome := e.runAction(id, &res)

	switch {
	case len(opt.Options) > 0:
		e.stack = append(e.stack, frame{option: opt})
		res.Events = append(res.Events, events.New(events.LevelEntered, "id", id, "depth", e.Depth()))
		e.text = e.levelText(outcome)

	case opt.Destination != "":
		e.travel(opt, outcome, &res)

	default:
		if t := e.describe(opt.ID, opt.Description, outcome); t != "" {
			e.text = t
		} else {
			e.text = e.levelText(outcome)
		}
	}

	if e.State.Truck.Stranded() {
		e.log.Info("truck stranded", "fuel", e.State.Truck.Fuel)
		res.Events = append(res.Events, events.New(events.Stranded, "fuel", e.State.Truck.Fuel))
	}
	return res
}

func (e *Engine) back() types.Result {
	if len(e.stack) == 0 {
		return types.Result{}
	}
	top := e.stack[len(e.stack)-1]
	e.stack = e.stack[:len(e.stack)-1]
	// The parent is described afresh: state may have moved while nested.
	e.text = e.levelText(nil)
	e.log.Debug("back", "from", top.option.ID, "depth", e.Depth())
	return types.Result{
		Selected: true,
		Events:   []types.Event{events.New(events.LevelLeft, "id", top.option.ID, "depth", e.Depth())},
	}
}

func (e *Engine) runAction(id string, res *types.Result) *actions.Outcome {
	cmd, ok := actions.Parse(id)
	if !ok {
		return nil
	}
	out, err := actions.Run(cmd, e.State, e.Source)
	if err != nil {
		if errors.Is(err, actions.ErrPassengerMismatch) {
			e.log.Warn("delivery without matching passenger", "id", id, "location", e.Location())
		} else {
			e.log.Error("action failed", "id", id, "error", err)
		}
		return nil
	}
	res.Events = append(res.Events, events.New(events.ActionRun, "kind", out.Kind.String(), "changed", out.Changed))
	switch cmd.Kind {
	case actions.KindTakePassenger, actions.KindDeliver:
		e.log.Info("quest", "kind", cmd.Kind.String(), "route", cmd.Route, "location", e.Location())
	}
	return &out
}

func (e *Engine) travel(opt types.Option, outcome *actions.Outcome, res *types.Result) {
	from := e.Location()

	if opt.Destination == types.ResumeTravel {
		dest, ok := encounter.Resume(e.State)
		if !ok {
			e.text = e.levelText(outcome)
			return
		}
		e.log.Info("encounter ended", "location", from, "destination", dest)
		res.Events = append(res.Events, events.New(events.EncounterEnded, "location", from, "destination", dest))
	} else {
		if e.State.World.EncounterActive {
			e.log.Info("encounter abandoned", "location", from, "deferred", e.State.World.Deferred)
			encounter.Abandon(e.State)
			res.Events = append(res.Events, events.New(events.EncounterEnded, "location", from, "abandoned", true))
		}
		dest, started := encounter.Resolve(e.State, opt, e.Source)
		if started {
			e.log.Info("encounter started", "encounter", dest, "deferred", e.State.World.Deferred)
			res.Events = append(res.Events, events.New(events.EncounterStarted, "encounter", dest, "deferred", e.State.World.Deferred))
		}
	}

	e.stack = nil
	res.Events = append(res.Events, events.New(events.Travelled, "from", from, "to", e.Location()))

	e.text = e.levelText(nil)
	if outcome != nil && outcome.Message != "" {
		e.text = outcome.Message + "\n\n" + e.text
	}
}

// reachable reports whether a destination, if any, can be reached.
func (e *Engine) reachable(opt types.Option) bool {
	if opt.Destination == "" || opt.Destination == types.ResumeTravel || len(opt.Options) > 0 {
		return true
	}
	_, ok := e.Graph.Locations[opt.Destination]
	return ok
}

func (e *Engine) lookup(id string) (types.Option, bool) {
	for _, opt := range e.levelOptions() {
		if opt.ID == id {
			return opt, true
		}
	}
	return types.Option{}, false
}

func (e *Engine) levelOptions() []types.Option {
	if n := len(e.stack); n > 0 {
		return e.stack[n-1].option.Options
	}
	return e.Graph.Locations[e.Location()].Options
}

// levelText builds the text of the current level: the location description
// overridden by each stacked option's description, root to top. The outcome
// of this step's action reaches only the top level.
func (e *Engine) levelText(outcome *actions.Outcome) string {
	loc := e.Graph.Locations[e.Location()]
	var locOutcome *actions.Outcome
	if len(e.stack) == 0 {
		locOutcome = outcome
	}
	text := e.describe(loc.Name, loc.Description, locOutcome)

	for i, f := range e.stack {
		var out *actions.Outcome
		if i == len(e.stack)-1 {
			out = outcome
		}
		if t := e.describe(f.option.ID, f.option.Description, out); t != "" {
			text = t
		}
	}
	return text
}

func (e *Engine) describe(key string, d types.Description, outcome *actions.Outcome) string {
	switch d.Kind {
	case types.DescLiteral:
		return d.Text
	case types.DescDynamic:
		return dialogue.Describe(key, dialogue.Context{State: e.State, Outcome: outcome})
	}
	return ""
}
