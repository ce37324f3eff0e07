package dialogue

import (
	"strings"
	"testing"

	"github.com/nathoo/roadsaga/engine/actions"
	"github.com/nathoo/roadsaga/engine/state"
)

func testSetup() *state.State {
	return state.NewState(state.DefaultOptions())
}

func TestHasGenerator(t *testing.T) {
	tests := []struct {
		key  string
		want bool
	}{
		{"Town", true},
		{"corn_stall", true},
		{"spin_slots", true}, // action narration
		{"buy_corn_5", true},
		{"Farm", false},
		{"go_town", false},
	}
	for _, tt := range tests {
		if got := HasGenerator(tt.key); got != tt.want {
			t.Errorf("HasGenerator(%q) = %v, want %v", tt.key, got, tt.want)
		}
	}
}

func TestDescribe_VendorQuoteTracksStock(t *testing.T) {
	s := testSetup()
	text := Describe("corn_stall", Context{State: s})
	if !strings.Contains(text, "35 t of corn, $25 a ton") {
		t.Errorf("quote = %q", text)
	}

	s.World.Vendors[state.Corn].Offer = 0
	text = Describe("corn_stall", Context{State: s})
	if !strings.Contains(text, "Sold out") {
		t.Errorf("sold out quote = %q", text)
	}
}

func TestDescribe_NarratesOutcome(t *testing.T) {
	s := testSetup()
	out := &actions.Outcome{Message: "The tank takes 10 liters."}

	text := Describe("gas_station", Context{State: s, Outcome: out})
	if !strings.HasPrefix(text, out.Message) {
		t.Errorf("text %q does not start with the outcome", text)
	}
	if !strings.Contains(text, "100 liters left") {
		t.Errorf("text %q misses the gauge", text)
	}
}

func TestDescribe_ActionWithoutOutcome(t *testing.T) {
	s := testSetup()
	if got := Describe("spin_slots", Context{State: s}); got != "" {
		t.Errorf("Describe without outcome = %q, want empty", got)
	}
	out := &actions.Outcome{Message: "[1] [1] [1] Jackpot! You win $100."}
	if got := Describe("spin_slots", Context{State: s, Outcome: out}); got != out.Message {
		t.Errorf("Describe = %q, want %q", got, out.Message)
	}
}

func TestDescribe_TownByTimeOfDay(t *testing.T) {
	s := testSetup()
	s.World.Clock = state.HM(12, 0)
	day := Describe("Town", Context{State: s})

	s.World.Clock = state.HM(23, 0)
	nightText := Describe("Town", Context{State: s})

	if day == nightText {
		t.Error("town text does not change at night")
	}
}

func TestDescribe_BarFollowsMood(t *testing.T) {
	s := testSetup()
	calm := Describe("biker_bar", Context{State: s})

	s.World.BikerMood = 2
	angry := Describe("biker_bar", Context{State: s})

	s.Hero.GangMember = true
	member := Describe("biker_bar", Context{State: s})

	if calm == angry || angry == member || calm == member {
		t.Errorf("bar scenes not distinct: %q / %q / %q", calm, angry, member)
	}
}
