// Package types defines the shared data structures for the Road Saga engine.
// This package contains only type definitions and constants, no logic.
package types

// Effect keys understood by the effect engine.
const (
	EffDistance = "distance"
	EffTime     = "time"
	EffCash     = "cash"
	EffHealth   = "health"
	EffFatigue  = "fatigue"
	EffHunger   = "hunger"
)

// ResumeTravel is the destination sentinel used by encounter options to
// continue the interrupted trip.
const ResumeTravel = "@resume"

// BackID is the option id that ascends one level of the navigation stack.
const BackID = "back"

// Effects is a declarative bundle of named deltas. A nil or empty bundle
// means "no effects" and advances the clock by one minute.
type Effects map[string]int

// DescKind tags an option's description override.
type DescKind int

const (
	DescNone    DescKind = iota // keep the text of the parent level
	DescLiteral                 // use Text verbatim
	DescDynamic                 // ask the dialogue generator for this option id
)

// Description is a tagged description override.
type Description struct {
	Kind DescKind
	Text string
}

// Encounter is a detour that may interrupt a trip.
type Encounter struct {
	Location       string // encounter location reached instead of the destination
	Chance         int    // percent, tested with a d100
	NeedsEmptySeat bool   // only offered when the passenger slot is empty
	SkipGang       bool   // never triggers for gang members
	Window         *Window
}

// Window is a [Start, End) interval in minutes since midnight. When Start > End
// the window crosses midnight.
type Window struct {
	Start int
	End   int
}

// Option is a selectable choice in the content graph.
type Option struct {
	ID          string
	Text        string
	Effects     Effects
	Options     []Option // nested sub-menu, descended into on selection
	Destination string   // location name or ResumeTravel
	Description Description
	Encounters  []Encounter
}

// Location is a node in the content graph.
type Location struct {
	Name        string
	Description Description
	Options     []Option
}

// GameDef holds game metadata from Lua.
type GameDef struct {
	Title   string
	Author  string
	Version string
	Start   string // starting location name
	Intro   string
}

// Graph is the read-only content graph, loaded once.
type Graph struct {
	Game      GameDef
	Locations map[string]Location
}

// OptionView is what the presentation layer renders for one option.
type OptionView struct {
	ID      string
	Label   string
	Enabled bool
}

// Event is emitted by the engine while processing a selection.
type Event struct {
	Type string
	Data map[string]any
}

// Result is the output of a single Select call.
type Result struct {
	Selected bool // false when the selection was a no-op
	Events   []Event
}
