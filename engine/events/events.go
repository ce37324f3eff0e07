// Package events defines the trace events emitted while a selection is
// processed. Events are informational: nothing in the engine reacts to them.
package events

import (
	"fmt"
	"sort"
	"strings"

	"github.com/nathoo/roadsaga/types"
)

// Event types.
const (
	ClockAdvanced    = "clock_advanced"
	FuelUsed         = "fuel_used"
	StatChanged      = "stat_changed"
	OptionSelected   = "option_selected"
	ActionRun        = "action_run"
	LevelEntered     = "level_entered"
	LevelLeft        = "level_left"
	Travelled        = "travelled"
	EncounterStarted = "encounter_started"
	EncounterEnded   = "encounter_ended"
	Stranded         = "stranded"
)

// New builds an event from alternating key/value pairs.
func New(typ string, kv ...any) types.Event {
	ev := types.Event{Type: typ}
	if len(kv) == 0 {
		return ev
	}
	ev.Data = make(map[string]any, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		key, ok := kv[i].(string)
		if !ok {
			key = fmt.Sprint(kv[i])
		}
		ev.Data[key] = kv[i+1]
	}
	return ev
}

// Filter returns the events of the given type, in order.
func Filter(evs []types.Event, typ string) []types.Event {
	var out []types.Event
	for _, ev := range evs {
		if ev.Type == typ {
			out = append(out, ev)
		}
	}
	return out
}

// Format renders an event as a single trace line with sorted keys.
func Format(ev types.Event) string {
	if len(ev.Data) == 0 {
		return ev.Type
	}
	keys := make([]string, 0, len(ev.Data))
	for k := range ev.Data {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString(ev.Type)
	for _, k := range keys {
		fmt.Fprintf(&b, " %s=%v", k, ev.Data[k])
	}
	return b.String()
}
