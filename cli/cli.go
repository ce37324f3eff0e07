// Package cli provides terminal I/O, output formatting, and meta-command
// dispatch for the Road Saga engine.
package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/muesli/reflow/wordwrap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/nathoo/roadsaga/engine"
	"github.com/nathoo/roadsaga/engine/events"
	"github.com/nathoo/roadsaga/engine/resolve"
	"github.com/nathoo/roadsaga/engine/state"
	"github.com/nathoo/roadsaga/types"
)

// DefaultWidth is the wrap width for narrative text.
const DefaultWidth = 78

var title = cases.Title(language.English)

// CLI handles terminal interaction with the player.
type CLI struct {
	Engine    *engine.Engine
	Graph     *types.Graph
	In        io.Reader
	Out       io.Writer
	Width     int
	Trace     bool
	EchoInput bool   // echo each input line after the prompt (for script playback)
	lastCmd   string // for "again"/"g" repeat
}

// New creates a CLI wired to the given engine.
func New(eng *engine.Engine, g *types.Graph) *CLI {
	return &CLI{
		Engine: eng,
		Graph:  g,
		In:     os.Stdin,
		Out:    os.Stdout,
		Width:  DefaultWidth,
	}
}

// Run starts the game loop. It shows the intro and the first level, then
// loops: prompt, input, resolve, select, output.
func (c *CLI) Run() {
	if c.Graph.Game.Intro != "" {
		c.printLine(c.wrap(c.Graph.Game.Intro))
		c.printLine("")
	}
	c.show()

	scanner := bufio.NewScanner(c.In)
	for {
		c.print("> ")
		if !scanner.Scan() {
			break
		}
		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}
		// Skip comment lines (for script files).
		if strings.HasPrefix(input, "#") {
			continue
		}
		if c.EchoInput {
			c.printLine(input)
		}

		if strings.HasPrefix(input, "/") {
			if c.handleMeta(input) {
				return // /quit
			}
			continue
		}

		lower := strings.ToLower(input)
		if lower == "again" || lower == "g" {
			if c.lastCmd == "" {
				c.printLine("Nothing to repeat.")
				continue
			}
			input = c.lastCmd
		} else {
			c.lastCmd = input
		}

		c.step(input)
	}
}

// step resolves one line of input against the current options and selects it.
func (c *CLI) step(input string) {
	id, err := resolve.Resolve(input, c.Engine.CurrentOptions())
	if err != nil {
		var amb *resolve.AmbiguityError
		if errors.As(err, &amb) {
			c.printSystem(capitalize(err.Error()))
		} else {
			c.printSystem(capitalize(err.Error()) + ". Type a number or /help.")
		}
		return
	}

	result := c.Engine.Select(id)
	if !result.Selected {
		c.printSystem("You can't do that right now.")
		return
	}
	c.printLine("")
	c.show()

	if c.Trace {
		c.printTrace(result)
	}
}

// handleMeta dispatches meta-commands. Returns true if the game should exit.
func (c *CLI) handleMeta(input string) bool {
	cmd := strings.Fields(input)[0]

	switch cmd {
	case "/quit", "/exit":
		c.printSystem("Goodbye.")
		return true

	case "/help":
		c.cmdHelp()

	case "/state":
		for _, line := range StateLines(c.Engine) {
			c.printSystem(line)
		}

	case "/look":
		c.show()

	case "/trace":
		c.Trace = !c.Trace
		if c.Trace {
			c.printSystem("Trace output enabled.")
		} else {
			c.printSystem("Trace output disabled.")
		}

	default:
		c.printSystem(fmt.Sprintf("Unknown command: %s. Type /help for available commands.", cmd))
	}

	return false
}

func (c *CLI) cmdHelp() {
	help := []string{
		"System:",
		"  /quit    Exit game",
		"  /help    Show this help",
		"  /look    Show the current text and options again",
		"  /state   Debug: dump current state",
		"  /trace   Toggle debug trace output",
		"",
		"Playing:",
		"  Type an option number, its label, or a few words of it.",
		"  again (g) repeats your last choice.",
	}
	for _, line := range help {
		c.printLine(line)
	}
}

// show prints the current text, the numbered options and the status line.
func (c *CLI) show() {
	if text := c.Engine.CurrentText(); text != "" {
		c.printLine(c.wrap(text))
		c.printLine("")
	}
	for _, line := range OptionLines(c.Engine.CurrentOptions()) {
		c.printLine(line)
	}
	c.printLine(StatusLine(c.Engine.State))
}

func (c *CLI) printTrace(result types.Result) {
	c.printSystem(fmt.Sprintf("[trace] Events: %d", len(result.Events)))
	for _, e := range result.Events {
		c.printSystem("[trace]   " + events.Format(e))
	}
}

func (c *CLI) wrap(text string) string {
	if c.Width <= 0 {
		return text
	}
	return wordwrap.String(text, c.Width)
}

func (c *CLI) printLine(text string) {
	fmt.Fprintln(c.Out, text)
}

func (c *CLI) print(text string) {
	fmt.Fprint(c.Out, text)
}

func (c *CLI) printSystem(text string) {
	fmt.Fprintf(c.Out, "[%s]\n", text)
}

// OptionLines renders options as a numbered menu. Disabled options keep
// their number so typed numbers stay stable.
func OptionLines(opts []types.OptionView) []string {
	lines := make([]string, len(opts))
	for i, o := range opts {
		line := fmt.Sprintf("  %d. %s", i+1, o.Label)
		if !o.Enabled {
			line += " (unavailable)"
		}
		lines[i] = line
	}
	return lines
}

// StatusLine summarises the hero and the truck on one line.
func StatusLine(s *state.State) string {
	parts := []string{
		fmt.Sprintf("Day %d %s", s.World.Day()+1, s.World.ClockString()),
		fmt.Sprintf("$%d", s.Hero.Cash),
		fmt.Sprintf("Fuel %d", s.Truck.Fuel),
		fmt.Sprintf("HP %d", s.Hero.Health),
		fmt.Sprintf("Fatigue %d", s.Hero.Fatigue),
		fmt.Sprintf("Hunger %d", s.Hero.Hunger),
	}
	if cargo := CargoSummary(s.Truck.Cargo); cargo != "" {
		parts = append(parts, cargo)
	}
	if p := s.Truck.Passenger; p != nil {
		parts = append(parts, fmt.Sprintf("%s to %s", title.String(p.Route), p.Destination))
	}
	return strings.Join(parts, " | ")
}

// CargoSummary lists non-empty cargo holds in display order, e.g. "Corn 5t".
func CargoSummary(cargo map[state.Cargo]int) string {
	var parts []string
	for _, kind := range state.CargoKinds {
		if n := cargo[kind]; n > 0 {
			parts = append(parts, fmt.Sprintf("%s %dt", title.String(string(kind)), n))
		}
	}
	return strings.Join(parts, ", ")
}

// StateLines dumps the engine state for the /state command.
func StateLines(eng *engine.Engine) []string {
	s := eng.State
	lines := []string{
		fmt.Sprintf("Location: %s %v", eng.Location(), eng.Path()),
		fmt.Sprintf("Clock: %d (day %d, %s)", s.World.Clock, s.World.Day()+1, s.World.ClockString()),
		fmt.Sprintf("Hero: health=%d fatigue=%d hunger=%d cash=%d ammo=%d gang=%t swims=%d",
			s.Hero.Health, s.Hero.Fatigue, s.Hero.Hunger, s.Hero.Cash, s.Hero.Ammo, s.Hero.GangMember, s.Hero.Swims),
		fmt.Sprintf("Truck: condition=%d fuel=%d space=%d blades=%t trunk=%t",
			s.Truck.Condition, s.Truck.Fuel, s.Truck.Space, s.Truck.WheelBlades, s.Truck.ExtendedTrunk),
		fmt.Sprintf("Cargo: %v", s.Truck.Cargo),
		fmt.Sprintf("Biker mood: %d", s.World.BikerMood),
	}
	if p := s.Truck.Passenger; p != nil {
		lines = append(lines, fmt.Sprintf("Passenger: %s (%s -> %s)", p.Name, p.Origin, p.Destination))
	}
	if s.World.EncounterActive {
		lines = append(lines, fmt.Sprintf("Encounter: resumes to %s", s.World.Deferred))
	}
	if hidden := sortedKeys(s.Hidden); len(hidden) > 0 {
		lines = append(lines, fmt.Sprintf("Hidden: %s", strings.Join(hidden, ", ")))
	}
	return lines
}

func sortedKeys(m map[string]bool) []string {
	keys := make([]string, 0, len(m))
	for k, v := range m {
		if v {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
