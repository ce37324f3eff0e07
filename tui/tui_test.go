package tui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nathoo/roadsaga/engine"
	"github.com/nathoo/roadsaga/engine/dice"
	"github.com/nathoo/roadsaga/engine/state"
	"github.com/nathoo/roadsaga/types"
)

func TestDisplayName(t *testing.T) {
	tests := []struct {
		id   string
		want string
	}{
		{"Town", "Town"},
		{"gas_station", "Gas Station"},
		{"play_slots", "Play Slots"},
		{"biker_bar", "Biker Bar"},
	}
	for _, tt := range tests {
		got := displayName(tt.id)
		if got != tt.want {
			t.Errorf("displayName(%q) = %q, want %q", tt.id, got, tt.want)
		}
	}
}

func TestBreadcrumb(t *testing.T) {
	got := breadcrumb("Town", []string{"casino", "play_slots"})
	if got != "Town > Casino > Play Slots" {
		t.Errorf("breadcrumb = %q", got)
	}
}

func TestClassifyLine(t *testing.T) {
	tests := []struct {
		line string
		want lineKind
	}{
		{"  1. Drive to Town", kindOption},
		{"  12. Buy 5 t of corn (unavailable)", kindDisabled},
		{"[Copied to clipboard.]", kindSystem},
		{"[trace] Events: 2", kindTrace},
		{"Main street is busy.", kindNarrative},
		{"1. not indented", kindNarrative},
		{"", kindNarrative},
		{`The biggest of them stands up. "Lost, trucker?"`, kindDialogue},
	}
	for _, tt := range tests {
		got := classifyLine(tt.line)
		if got != tt.want {
			t.Errorf("classifyLine(%q) = %v, want %v", tt.line, got, tt.want)
		}
	}
}

func TestContainsQuotedSpeech(t *testing.T) {
	tests := []struct {
		line string
		want bool
	}{
		{`"Toll road, trucker. Twenty bucks."`, true},
		{`A "big" truck.`, false}, // short quote segment
		{"No quotes here.", false},
		{`"Hi"`, false},
		{`He says "sold out, come back later."`, true},
	}
	for _, tt := range tests {
		got := containsQuotedSpeech(tt.line)
		if got != tt.want {
			t.Errorf("containsQuotedSpeech(%q) = %v, want %v", tt.line, got, tt.want)
		}
	}
}

func TestWordWrap(t *testing.T) {
	tests := []struct {
		text  string
		width int
		want  string
	}{
		{"short", 80, "short"},
		{"hello world", 5, "hello\nworld"},
		{"", 80, ""},
		{"one", 80, "one"},
		{"no width", 0, "no width"},
	}
	for _, tt := range tests {
		got := wordWrap(tt.text, tt.width)
		if got != tt.want {
			t.Errorf("wordWrap(%q, %d) =\n  %q\nwant:\n  %q", tt.text, tt.width, got, tt.want)
		}
	}
}

func TestHistory_OlderAndNewer(t *testing.T) {
	h := NewHistory(5)
	h.Add("market")
	h.Add("drive to town")
	h.Add("buy corn")

	for _, want := range []string{"buy corn", "drive to town", "market", "market"} {
		got, ok := h.Older()
		if !ok || got != want {
			t.Errorf("Older() = %q, %v; want %q", got, ok, want)
		}
	}

	for _, want := range []string{"drive to town", "buy corn"} {
		got, ok := h.Newer()
		if !ok || got != want {
			t.Errorf("Newer() = %q, %v; want %q", got, ok, want)
		}
	}
	if _, ok := h.Newer(); ok {
		t.Error("expected false past the newest entry")
	}
}

func TestHistory_Empty(t *testing.T) {
	h := NewHistory(5)
	if _, ok := h.Older(); ok {
		t.Error("Older on empty history")
	}
	if _, ok := h.Newer(); ok {
		t.Error("Newer on empty history")
	}
}

func TestHistory_SkipsNumbersRepeatsAndMeta(t *testing.T) {
	h := NewHistory(5)
	for _, line := range []string{"3", "again", "G", "/state", "  ", "sell coal"} {
		h.Add(line)
	}

	if len(h.entries) != 1 || h.entries[0] != "sell coal" {
		t.Errorf("entries = %q, want only the typed choice", h.entries)
	}
}

func TestHistory_RepeatMovesToNewest(t *testing.T) {
	h := NewHistory(5)
	h.Add("market")
	h.Add("drive to town")
	h.Add("Market")

	want := []string{"drive to town", "Market"}
	if len(h.entries) != len(want) || h.entries[0] != want[0] || h.entries[1] != want[1] {
		t.Errorf("entries = %q, want %q", h.entries, want)
	}
}

func TestHistory_Limit(t *testing.T) {
	h := NewHistory(2)
	h.Add("market")
	h.Add("garage")
	h.Add("diner")

	got, _ := h.Older()
	if got != "diner" {
		t.Errorf("newest = %q, want diner", got)
	}
	got, _ = h.Older()
	if got != "garage" {
		t.Errorf("oldest = %q, want garage", got)
	}
	got, _ = h.Older()
	if got != "garage" {
		t.Errorf("market should be evicted, got %q", got)
	}
}

func TestHistory_AddRewinds(t *testing.T) {
	h := NewHistory(5)
	h.Add("market")
	h.Add("drive to town")
	h.Older()
	h.Older()

	// A skipped line still ends browsing.
	h.Add("2")

	got, ok := h.Older()
	if !ok || got != "drive to town" {
		t.Errorf("Older() after Add = %q, want drive to town", got)
	}
}

func TestUpKey_RecallsTypedChoice(t *testing.T) {
	m := ready(t, newTestModel())
	m = submit(t, m, "market")
	m = submit(t, m, "1")

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m = next.(Model)

	if m.input.Value() != "market" {
		t.Errorf("input = %q, want market", m.input.Value())
	}
}

// testGraph returns a minimal content graph for TUI testing.
func testGraph() *types.Graph {
	return &types.Graph{
		Game: types.GameDef{
			Title:   "Test Game",
			Author:  "Test",
			Version: "1.0",
			Start:   "Start",
			Intro:   "Welcome to the test.",
		},
		Locations: map[string]types.Location{
			"Start": {
				Name:        "Start",
				Description: types.Description{Kind: types.DescLiteral, Text: "A gravel lot."},
				Options: []types.Option{
					{
						ID:          "market",
						Text:        "Walk to the market",
						Description: types.Description{Kind: types.DescLiteral, Text: "Stalls line the road."},
						Options:     []types.Option{{ID: types.BackID, Text: "Back"}},
					},
					{ID: "go_town", Text: "Drive to Town", Destination: "Town", Effects: types.Effects{types.EffDistance: 70}},
				},
			},
			"Town": {
				Name:        "Town",
				Description: types.Description{Kind: types.DescLiteral, Text: "Main street."},
			},
		},
	}
}

func newTestModel() Model {
	g := testGraph()
	eng := engine.New(g, state.NewState(state.DefaultOptions()), dice.NewSequence())
	return New(eng, g)
}

// ready sizes the model so the viewport exists.
func ready(t *testing.T, m Model) Model {
	t.Helper()
	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	return next.(Model)
}

func submit(t *testing.T, m Model, input string) Model {
	t.Helper()
	m.input.SetValue(input)
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	return next.(Model)
}

func transcript(m Model) string {
	var b strings.Builder
	for _, rl := range m.rawLines {
		b.WriteString(rl.text)
		b.WriteString("\n")
	}
	return b.String()
}

func TestInitialOutput(t *testing.T) {
	m := newTestModel()
	msg := m.initialOutput()().(gameOutputMsg)

	joined := strings.Join(msg.lines, "\n")
	for _, want := range []string{"Test Game v1.0 by Test", "Welcome to the test.", "A gravel lot.", "  2. Drive to Town"} {
		if !strings.Contains(joined, want) {
			t.Errorf("expected %q in initial output:\n%s", want, joined)
		}
	}
}

func TestEnter_SelectsOption(t *testing.T) {
	m := ready(t, newTestModel())
	m = submit(t, m, "market")

	if m.engine.Depth() != 1 {
		t.Fatalf("depth = %d, want 1", m.engine.Depth())
	}
	if !strings.Contains(transcript(m), "Stalls line the road.") {
		t.Error("expected market text in transcript")
	}
	if m.input.Value() != "" {
		t.Error("input should be cleared after enter")
	}

	m = submit(t, m, "1")
	if m.engine.Depth() != 0 {
		t.Errorf("depth = %d after back, want 0", m.engine.Depth())
	}
}

func TestEnter_NotFound(t *testing.T) {
	m := ready(t, newTestModel())
	m = submit(t, m, "fly to the moon")

	if !strings.Contains(transcript(m), "Type a number or /help") {
		t.Errorf("expected not-found hint:\n%s", transcript(m))
	}
}

func TestEnter_AgainRepeats(t *testing.T) {
	m := ready(t, newTestModel())
	m = submit(t, m, "market")
	m = submit(t, m, "back")
	m = submit(t, m, "g")

	if m.engine.Depth() != 0 {
		t.Errorf("depth = %d, want 0 after repeating back", m.engine.Depth())
	}
	if m.history.entries[len(m.history.entries)-1] != "g" {
		t.Error("history keeps what was typed")
	}
}

func TestEnter_Trace(t *testing.T) {
	m := ready(t, newTestModel())
	m = submit(t, m, "/trace")
	m = submit(t, m, "go_town")

	out := transcript(m)
	if !strings.Contains(out, "[trace]   travelled") {
		t.Errorf("expected travel trace:\n%s", out)
	}
}

func TestCtrlY_CopiesCurrentText(t *testing.T) {
	m := ready(t, newTestModel())
	var copied string
	m.copyText = func(s string) error {
		copied = s
		return nil
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyCtrlY})
	m = next.(Model)

	if copied != "A gravel lot." {
		t.Errorf("copied %q", copied)
	}
	if !strings.Contains(transcript(m), "Copied to clipboard.") {
		t.Error("expected copy confirmation")
	}
}

func TestCtrlY_ReportsFailure(t *testing.T) {
	m := ready(t, newTestModel())
	m.copyText = func(string) error { return errors.New("no clipboard") }

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyCtrlY})
	m = next.(Model)

	if !strings.Contains(transcript(m), "Copy failed: no clipboard") {
		t.Errorf("expected failure message:\n%s", transcript(m))
	}
}

func TestView_StatusBar(t *testing.T) {
	m := ready(t, newTestModel())
	m = submit(t, m, "market")

	view := m.View()
	if !strings.Contains(view, "Start > Market") {
		t.Errorf("expected breadcrumb in view:\n%s", view)
	}
	// The market step has no effects and ticks the clock one minute.
	if !strings.Contains(view, "Day 1 06:49") {
		t.Errorf("expected clock in view:\n%s", view)
	}
}

func TestHandleMeta_Quit(t *testing.T) {
	m := newTestModel()

	_, quit := m.handleMeta("/quit")
	if !quit {
		t.Error("expected quit=true for /quit")
	}

	_, quit = m.handleMeta("/exit")
	if !quit {
		t.Error("expected quit=true for /exit")
	}
}

func TestHandleMeta_Help(t *testing.T) {
	m := newTestModel()

	output, quit := m.handleMeta("/help")
	if quit {
		t.Error("help should not quit")
	}

	joined := strings.Join(output, "\n")
	for _, expected := range []string{"/quit", "/state", "/look", "Ctrl+Y"} {
		if !strings.Contains(joined, expected) {
			t.Errorf("expected %q in help output", expected)
		}
	}
}

func TestHandleMeta_Trace(t *testing.T) {
	m := newTestModel()

	output, _ := m.handleMeta("/trace")
	if !m.trace {
		t.Error("expected trace to be enabled")
	}
	if len(output) == 0 || !strings.Contains(output[0], "enabled") {
		t.Errorf("expected enabled message, got %v", output)
	}

	output, _ = m.handleMeta("/trace")
	if m.trace {
		t.Error("expected trace to be disabled")
	}
	if len(output) == 0 || !strings.Contains(output[0], "disabled") {
		t.Errorf("expected disabled message, got %v", output)
	}
}

func TestHandleMeta_Unknown(t *testing.T) {
	m := newTestModel()

	output, quit := m.handleMeta("/bogus")
	if quit {
		t.Error("unknown command should not quit")
	}
	if len(output) == 0 || !strings.Contains(output[0], "Unknown command") {
		t.Errorf("expected unknown command message, got %v", output)
	}
}

func TestHandleMeta_State(t *testing.T) {
	m := newTestModel()

	output, quit := m.handleMeta("/state")
	if quit {
		t.Error("state should not quit")
	}

	joined := strings.Join(output, "\n")
	if !strings.Contains(joined, "Location: Start") {
		t.Error("expected location in state output")
	}
	if !strings.Contains(joined, "Clock: 408") {
		t.Error("expected clock in state output")
	}
}
