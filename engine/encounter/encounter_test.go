package encounter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nathoo/roadsaga/engine/dice"
	"github.com/nathoo/roadsaga/engine/state"
	"github.com/nathoo/roadsaga/types"
)

func testSetup() *state.State {
	return state.NewState(state.DefaultOptions())
}

func trip(encounters ...types.Encounter) types.Option {
	return types.Option{ID: "go_town", Destination: "Town", Encounters: encounters}
}

func TestResolve_NoEncounterFires(t *testing.T) {
	s := testSetup()
	src := dice.NewSequence(16)

	dest, started := Resolve(s, trip(types.Encounter{Location: "Ambush", Chance: 15}), src)

	assert.False(t, started)
	assert.Equal(t, "Town", dest)
	assert.Equal(t, "Town", s.World.Location)
	assert.False(t, s.World.EncounterActive)
}

func TestResolve_StartsAndDefers(t *testing.T) {
	s := testSetup()
	src := dice.NewSequence(15)

	dest, started := Resolve(s, trip(types.Encounter{Location: "Ambush", Chance: 15}), src)

	assert.True(t, started)
	assert.Equal(t, "Ambush", dest)
	assert.Equal(t, "Ambush", s.World.Location)
	assert.Equal(t, "Town", s.World.Deferred)
	assert.Equal(t, "Start", s.World.TripFrom)
	assert.True(t, s.World.EncounterActive)
}

func TestResolve_FirstEligibleWins(t *testing.T) {
	s := testSetup()
	s.Truck.Passenger = &state.Passenger{Route: "miner"}
	// Hitchhiker is skipped without a roll; the ambush roll misses, the
	// obstacle roll hits.
	src := dice.NewSequence(90, 5)

	dest, started := Resolve(s, trip(
		types.Encounter{Location: "Hitchhiker", Chance: 100, NeedsEmptySeat: true},
		types.Encounter{Location: "Ambush", Chance: 15},
		types.Encounter{Location: "Obstacle", Chance: 10},
	), src)

	assert.True(t, started)
	assert.Equal(t, "Obstacle", dest)
	assert.Equal(t, 0, src.Remaining())
}

func TestEligible(t *testing.T) {
	night := &types.Window{Start: state.HM(20, 0), End: state.HM(6, 0)}
	tests := []struct {
		name  string
		enc   types.Encounter
		setup func(s *state.State)
		want  bool
	}{
		{"plain", types.Encounter{Chance: 10}, func(s *state.State) {}, true},
		{"already active", types.Encounter{Chance: 10}, func(s *state.State) { s.World.EncounterActive = true }, false},
		{"seat taken", types.Encounter{NeedsEmptySeat: true}, func(s *state.State) { s.Truck.Passenger = &state.Passenger{} }, false},
		{"gang member", types.Encounter{SkipGang: true}, func(s *state.State) { s.Hero.GangMember = true }, false},
		{"outside window", types.Encounter{Window: night}, func(s *state.State) { s.World.Clock = state.HM(12, 0) }, false},
		{"inside window", types.Encounter{Window: night}, func(s *state.State) { s.World.Clock = state.HM(23, 0) }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := testSetup()
			tt.setup(s)
			assert.Equal(t, tt.want, Eligible(tt.enc, s))
		})
	}
}

func TestResume_ClearsEncounter(t *testing.T) {
	s := testSetup()
	Resolve(s, trip(types.Encounter{Location: "Hitchhiker", Chance: 100}), dice.NewSequence(1))
	s.HideForEncounter("ask_news")

	dest, ok := Resume(s)

	require.True(t, ok)
	assert.Equal(t, "Town", dest)
	assert.Equal(t, "Town", s.World.Location)
	assert.False(t, s.World.EncounterActive)
	assert.Empty(t, s.World.Deferred)
	assert.Empty(t, s.World.TripFrom)
	assert.False(t, s.IsHidden("ask_news"))
}

func TestResume_WithoutEncounter(t *testing.T) {
	s := testSetup()
	_, ok := Resume(s)
	assert.False(t, ok)
	assert.Equal(t, state.StartLocation, s.World.Location)
}

// At most one encounter is ever active, whatever the rolls.
func TestResolve_SingleEncounterAtATime(t *testing.T) {
	s := testSetup()
	rng := dice.NewRNG(7)
	opt := trip(
		types.Encounter{Location: "Ambush", Chance: 60},
		types.Encounter{Location: "Obstacle", Chance: 60},
	)

	for i := 0; i < 500; i++ {
		wasActive := s.World.EncounterActive
		deferred := s.World.Deferred

		_, started := Resolve(s, opt, rng)

		if wasActive {
			require.False(t, started, "step %d: encounter started while one was active", i)
			assert.Equal(t, deferred, s.World.Deferred)
		}
		if i%3 == 2 {
			Resume(s)
		}
	}
}
