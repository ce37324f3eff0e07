package events

import (
	"testing"

	"github.com/nathoo/roadsaga/types"
)

func TestNew_PairsBecomeData(t *testing.T) {
	ev := New(Travelled, "from", "Start", "to", "Town")

	if ev.Type != Travelled {
		t.Errorf("type = %q, want %q", ev.Type, Travelled)
	}
	if ev.Data["from"] != "Start" || ev.Data["to"] != "Town" {
		t.Errorf("data = %v", ev.Data)
	}
}

func TestNew_NoData(t *testing.T) {
	ev := New(LevelLeft)
	if ev.Data != nil {
		t.Errorf("data = %v, want nil", ev.Data)
	}
}

func TestNew_OddPairDropped(t *testing.T) {
	ev := New(StatChanged, "stat", "cash", "delta")
	if len(ev.Data) != 1 {
		t.Errorf("data = %v, want one key", ev.Data)
	}
}

func TestFilter(t *testing.T) {
	evs := []types.Event{
		New(ClockAdvanced, "minutes", 1),
		New(StatChanged, "stat", "cash"),
		New(ClockAdvanced, "minutes", 60),
	}

	got := Filter(evs, ClockAdvanced)

	if len(got) != 2 {
		t.Fatalf("got %d events, want 2", len(got))
	}
	if got[1].Data["minutes"] != 60 {
		t.Errorf("order not kept: %v", got)
	}
	if Filter(evs, Travelled) != nil {
		t.Error("expected nil for missing type")
	}
}

func TestFormat_SortsKeys(t *testing.T) {
	tests := []struct {
		ev   types.Event
		want string
	}{
		{New(LevelLeft), "level_left"},
		{New(FuelUsed, "liters", 10, "distance", 100), "fuel_used distance=100 liters=10"},
		{New(Travelled, "to", "Town", "from", "Start"), "travelled from=Start to=Town"},
	}
	for _, tt := range tests {
		if got := Format(tt.ev); got != tt.want {
			t.Errorf("Format() = %q, want %q", got, tt.want)
		}
	}
}
