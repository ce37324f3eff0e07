package resolve

import (
	"errors"
	"testing"

	"github.com/nathoo/roadsaga/types"
)

func testOptions() []types.OptionView {
	return []types.OptionView{
		{ID: "go_town", Label: "Drive to Town", Enabled: true},
		{ID: "go_farm", Label: "Drive to the Farm", Enabled: true},
		{ID: "buy_fuel_10", Label: "Buy 10 liters of fuel", Enabled: false},
		{ID: "swim", Label: "Swim in the lake", Enabled: true},
		{ID: types.BackID, Label: "Back", Enabled: true},
	}
}

func TestResolve_Number(t *testing.T) {
	id, err := Resolve("2", testOptions())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != "go_farm" {
		t.Errorf("got %q, want go_farm", id)
	}
}

func TestResolve_NumberOutOfRange(t *testing.T) {
	for _, in := range []string{"0", "6", "-1"} {
		_, err := Resolve(in, testOptions())
		var nf *NotFoundError
		if !errors.As(err, &nf) {
			t.Errorf("Resolve(%q): expected NotFoundError, got %v", in, err)
		}
	}
}

func TestResolve_ExactIDAndLabel(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"swim", "swim"},
		{"BACK", types.BackID},
		{"buy_fuel_10", "buy_fuel_10"},
		{"drive to town", "go_town"},
	}
	for _, tt := range tests {
		id, err := Resolve(tt.in, testOptions())
		if err != nil {
			t.Errorf("Resolve(%q): unexpected error: %v", tt.in, err)
			continue
		}
		if id != tt.want {
			t.Errorf("Resolve(%q) = %q, want %q", tt.in, id, tt.want)
		}
	}
}

func TestResolve_LabelWords(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"farm", "go_farm"},
		{"the lake", "swim"},
		{"fuel", "buy_fuel_10"},
	}
	for _, tt := range tests {
		id, err := Resolve(tt.in, testOptions())
		if err != nil {
			t.Errorf("Resolve(%q): unexpected error: %v", tt.in, err)
			continue
		}
		if id != tt.want {
			t.Errorf("Resolve(%q) = %q, want %q", tt.in, id, tt.want)
		}
	}
}

func TestResolve_Ambiguous(t *testing.T) {
	_, err := Resolve("drive", testOptions())

	var amb *AmbiguityError
	if !errors.As(err, &amb) {
		t.Fatalf("expected AmbiguityError, got %v", err)
	}
	if len(amb.Candidates) != 2 {
		t.Errorf("candidates = %v, want 2", amb.Candidates)
	}
}

func TestResolve_Misspelling(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"swimm", "swim"},
		{"drive to twon", "go_town"},
	}
	for _, tt := range tests {
		id, err := Resolve(tt.in, testOptions())
		if err != nil {
			t.Errorf("Resolve(%q): unexpected error: %v", tt.in, err)
			continue
		}
		if id != tt.want {
			t.Errorf("Resolve(%q) = %q, want %q", tt.in, id, tt.want)
		}
	}
}

func TestResolve_NotFound(t *testing.T) {
	for _, in := range []string{"", "   ", "fly", "the"} {
		_, err := Resolve(in, testOptions())
		var nf *NotFoundError
		if !errors.As(err, &nf) {
			t.Errorf("Resolve(%q): expected NotFoundError, got %v", in, err)
		}
	}
}

func TestErrorMessages(t *testing.T) {
	nf := &NotFoundError{Input: "fly"}
	if nf.Error() != `there is no "fly" here` {
		t.Errorf("NotFoundError = %q", nf.Error())
	}
	amb := &AmbiguityError{Input: "drive", Candidates: []string{"go_town", "go_farm"}}
	if amb.Error() != `which one, "drive"? (go_town, go_farm)` {
		t.Errorf("AmbiguityError = %q", amb.Error())
	}
}
