// Package loader loads Lua game content into Go structs at startup.
// The Lua VM is discarded after loading, so no Lua runs during play.
package loader

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	lua "github.com/yuin/gopher-lua"

	"github.com/nathoo/roadsaga/types"
)

// rawLocation holds a location table before compilation.
type rawLocation struct {
	name  string
	table *lua.LTable
}

// effectAliases maps alternative effect keys to their canonical names.
var effectAliases = map[string]string{
	"hanger": types.EffHunger,
}

// getString returns a string field from a Lua table, or "" if missing.
func getString(tbl *lua.LTable, key string) string {
	v := tbl.RawGetString(key)
	if s, ok := v.(lua.LString); ok {
		return string(s)
	}
	return ""
}

// getBool returns a bool field from a Lua table, or the default if missing.
func getBool(tbl *lua.LTable, key string, def bool) bool {
	v := tbl.RawGetString(key)
	if b, ok := v.(lua.LBool); ok {
		return bool(b)
	}
	return def
}

// getInt returns an int field from a Lua table, or 0 if missing.
func getInt(tbl *lua.LTable, key string) int {
	v := tbl.RawGetString(key)
	if n, ok := v.(lua.LNumber); ok {
		return int(n)
	}
	return 0
}

// getTable returns a table field from a Lua table, or nil if missing.
func getTable(tbl *lua.LTable, key string) *lua.LTable {
	v := tbl.RawGetString(key)
	if t, ok := v.(*lua.LTable); ok {
		return t
	}
	return nil
}

// compile converts all collected Lua data into a Graph.
func compile(coll *collector) (*types.Graph, error) {
	if coll.game == nil {
		return nil, fmt.Errorf("no Game{} definition found")
	}
	g := &types.Graph{
		Game:      compileGame(coll.game),
		Locations: map[string]types.Location{},
	}

	for _, raw := range coll.locations {
		if _, dup := g.Locations[raw.name]; dup {
			return nil, fmt.Errorf("location %s defined twice", raw.name)
		}
		loc, err := compileLocation(raw)
		if err != nil {
			return nil, fmt.Errorf("compiling location %s: %w", raw.name, err)
		}
		g.Locations[loc.Name] = loc
	}

	return g, nil
}

func compileGame(tbl *lua.LTable) types.GameDef {
	return types.GameDef{
		Title:   getString(tbl, "title"),
		Author:  getString(tbl, "author"),
		Version: getString(tbl, "version"),
		Start:   getString(tbl, "start"),
		Intro:   getString(tbl, "intro"),
	}
}

func compileLocation(raw rawLocation) (types.Location, error) {
	opts, err := compileOptions(getTable(raw.table, "options"))
	if err != nil {
		return types.Location{}, err
	}
	return types.Location{
		Name:        raw.name,
		Description: compileDescription(raw.table.RawGetString("description")),
		Options:     opts,
	}, nil
}

// compileDescription maps nil to DescNone, the Dynamic sentinel to
// DescDynamic and any other string to a literal.
func compileDescription(v lua.LValue) types.Description {
	s, ok := v.(lua.LString)
	if !ok {
		return types.Description{}
	}
	if string(s) == dynamicDescription {
		return types.Description{Kind: types.DescDynamic}
	}
	return types.Description{Kind: types.DescLiteral, Text: string(s)}
}

// compileOptions compiles an array of option tables, keeping content order.
func compileOptions(tbl *lua.LTable) ([]types.Option, error) {
	if tbl == nil {
		return nil, nil
	}
	var opts []types.Option
	seen := map[string]bool{}
	for i := 1; i <= tbl.MaxN(); i++ {
		ot, ok := tbl.RawGetInt(i).(*lua.LTable)
		if !ok {
			return nil, fmt.Errorf("option #%d is not a table", i)
		}
		opt, err := compileOption(ot)
		if err != nil {
			return nil, err
		}
		if seen[opt.ID] {
			return nil, fmt.Errorf("option %s appears twice in the same menu", opt.ID)
		}
		seen[opt.ID] = true
		opts = append(opts, opt)
	}
	return opts, nil
}

func compileOption(tbl *lua.LTable) (types.Option, error) {
	id := getString(tbl, "id")
	if id == "" {
		return types.Option{}, fmt.Errorf("option without id (use Option \"id\" { ... })")
	}

	effects, err := compileEffects(getTable(tbl, "effects"))
	if err != nil {
		return types.Option{}, fmt.Errorf("option %s: %w", id, err)
	}
	nested, err := compileOptions(getTable(tbl, "options"))
	if err != nil {
		return types.Option{}, fmt.Errorf("option %s: %w", id, err)
	}
	encounters, err := compileEncounters(getTable(tbl, "encounters"))
	if err != nil {
		return types.Option{}, fmt.Errorf("option %s: %w", id, err)
	}

	return types.Option{
		ID:          id,
		Text:        getString(tbl, "text"),
		Effects:     effects,
		Options:     nested,
		Destination: getString(tbl, "destination"),
		Description: compileDescription(tbl.RawGetString("description")),
		Encounters:  encounters,
	}, nil
}

// compileEffects reads { distance = 120, cash = -5 } into an Effects bundle.
// Values must be whole numbers.
func compileEffects(tbl *lua.LTable) (types.Effects, error) {
	if tbl == nil {
		return nil, nil
	}
	eff := types.Effects{}
	var err error
	tbl.ForEach(func(k, v lua.LValue) {
		if err != nil {
			return
		}
		key, ok := k.(lua.LString)
		if !ok {
			err = fmt.Errorf("effect key %v is not a name", k)
			return
		}
		n, ok := v.(lua.LNumber)
		if !ok || float64(n) != math.Trunc(float64(n)) {
			err = fmt.Errorf("effect %s must be a whole number, got %v", key, v)
			return
		}
		name := string(key)
		if alias, ok := effectAliases[name]; ok {
			name = alias
		}
		eff[name] += int(n)
	})
	if err != nil {
		return nil, err
	}
	return eff, nil
}

func compileEncounters(tbl *lua.LTable) ([]types.Encounter, error) {
	if tbl == nil {
		return nil, nil
	}
	var encs []types.Encounter
	for i := 1; i <= tbl.MaxN(); i++ {
		et, ok := tbl.RawGetInt(i).(*lua.LTable)
		if !ok {
			return nil, fmt.Errorf("encounter #%d is not a table", i)
		}
		enc := types.Encounter{
			Location:       getString(et, "location"),
			Chance:         getInt(et, "chance"),
			NeedsEmptySeat: getBool(et, "empty_seat", false),
			SkipGang:       getBool(et, "skip_gang", false),
		}
		if wt := getTable(et, "window"); wt != nil {
			w, err := compileWindow(wt)
			if err != nil {
				return nil, fmt.Errorf("encounter %s: %w", enc.Location, err)
			}
			enc.Window = &w
		}
		encs = append(encs, enc)
	}
	return encs, nil
}

func compileWindow(tbl *lua.LTable) (types.Window, error) {
	start, err := parseClock(getString(tbl, "from"))
	if err != nil {
		return types.Window{}, err
	}
	end, err := parseClock(getString(tbl, "to"))
	if err != nil {
		return types.Window{}, err
	}
	return types.Window{Start: start, End: end}, nil
}

// parseClock converts "HH:MM" to minutes since midnight.
func parseClock(s string) (int, error) {
	hh, mm, ok := strings.Cut(s, ":")
	if !ok {
		return 0, fmt.Errorf("time %q is not HH:MM", s)
	}
	h, err := strconv.Atoi(hh)
	if err != nil || h < 0 || h > 23 {
		return 0, fmt.Errorf("time %q has a bad hour", s)
	}
	m, err := strconv.Atoi(mm)
	if err != nil || m < 0 || m > 59 {
		return 0, fmt.Errorf("time %q has a bad minute", s)
	}
	return h*60 + m, nil
}

// sortedLuaFiles returns .lua files in a directory, with game.lua first
// and the rest sorted alphabetically.
func sortedLuaFiles(files []string) []string {
	var gameFile string
	var others []string
	for _, f := range files {
		if f == "game.lua" {
			gameFile = f
		} else {
			others = append(others, f)
		}
	}
	sort.Strings(others)
	if gameFile != "" {
		return append([]string{gameFile}, others...)
	}
	return others
}
