package rules

import (
	"strings"

	"github.com/nathoo/roadsaga/engine/actions"
	"github.com/nathoo/roadsaga/engine/state"
	"github.com/nathoo/roadsaga/types"
)

// InWindow reports whether minute (since midnight) falls in [start, end).
// When start > end the window wraps past midnight.
func InWindow(minute, start, end int) bool {
	if start <= end {
		return minute >= start && minute < end
	}
	return minute >= start || minute < end
}

// Contains reports whether the time of day of s is inside w. A nil window
// is always open.
func Contains(w *types.Window, s *state.State) bool {
	if w == nil {
		return true
	}
	return InWindow(s.World.TimeOfDay(), w.Start, w.End)
}

// Opening hours by option id.
var windows = map[string]types.Window{
	actions.IDPlaySlots: {Start: state.HM(20, 0), End: state.HM(4, 0)},
	"talk_farmer":       {Start: state.HM(9, 0), End: state.HM(23, 59)},
	actions.IDBikerJob:  {Start: state.HM(18, 0), End: state.HM(2, 0)},
}

// Opening hours by option id prefix.
var prefixWindows = map[string]types.Window{
	"eat_": {Start: state.HM(7, 0), End: state.HM(22, 0)},
}

// WindowFor returns the opening hours of an option, or nil when it is
// always available.
func WindowFor(id string) *types.Window {
	if w, ok := windows[id]; ok {
		return &w
	}
	for prefix, w := range prefixWindows {
		if strings.HasPrefix(id, prefix) {
			return &w
		}
	}
	return nil
}
