// Package rules is the availability evaluator: it decides which options of a
// level are shown and which of those can be selected.
package rules

import (
	"github.com/nathoo/roadsaga/engine/state"
	"github.com/nathoo/roadsaga/types"
)

// Evaluate returns the views of the options offered in the current state,
// in content order. Options in either hidden set or failing Visible are
// omitted. Back is always offered and enabled.
func Evaluate(options []types.Option, s *state.State) []types.OptionView {
	var views []types.OptionView
	for _, opt := range options {
		visible, enabled := Available(opt, s)
		if !visible {
			continue
		}
		views = append(views, types.OptionView{
			ID:      opt.ID,
			Label:   opt.Text,
			Enabled: enabled,
		})
	}
	return views
}

// Available reports visibility and enablement of a single option.
func Available(opt types.Option, s *state.State) (visible, enabled bool) {
	if opt.ID == types.BackID {
		return true, true
	}
	if s.IsHidden(opt.ID) || !Visible(opt, s) {
		return false, false
	}
	return true, Enabled(opt, s)
}
