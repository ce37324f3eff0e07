package loader

import (
	lua "github.com/yuin/gopher-lua"

	"github.com/nathoo/roadsaga/types"
)

// Description sentinel accepted in content files.
const dynamicDescription = "dynamic"

// registerAPI registers all Lua constructors and helpers as globals.
func registerAPI(L *lua.LState, coll *collector) {
	registerConstructors(L, coll)
	registerHelpers(L)
}

func registerConstructors(L *lua.LState, coll *collector) {
	// Game { title = "...", ... }
	L.SetGlobal("Game", L.NewFunction(func(L *lua.LState) int {
		tbl := L.CheckTable(1)
		coll.game = tbl
		return 0
	}))

	// Location "Name" { ... }, curried: Location("Name") returns a function that takes a table.
	L.SetGlobal("Location", L.NewFunction(func(L *lua.LState) int {
		name := L.CheckString(1)
		L.Push(L.NewFunction(func(L *lua.LState) int {
			tbl := L.CheckTable(1)
			coll.locations = append(coll.locations, rawLocation{name: name, table: tbl})
			return 0
		}))
		return 1
	}))

	// Option "id" { ... }, curried, returns the table with its id filled in.
	L.SetGlobal("Option", L.NewFunction(func(L *lua.LState) int {
		id := L.CheckString(1)
		L.Push(L.NewFunction(func(L *lua.LState) int {
			tbl := L.CheckTable(1)
			tbl.RawSetString("id", lua.LString(id))
			L.Push(tbl)
			return 1
		}))
		return 1
	}))
}

func registerHelpers(L *lua.LState) {
	L.SetGlobal("Dynamic", lua.LString(dynamicDescription))
	L.SetGlobal("Resume", lua.LString(types.ResumeTravel))

	// Back() or Back("label")
	L.SetGlobal("Back", L.NewFunction(func(L *lua.LState) int {
		text := L.OptString(1, "Back")
		tbl := L.NewTable()
		tbl.RawSetString("id", lua.LString(types.BackID))
		tbl.RawSetString("text", lua.LString(text))
		L.Push(tbl)
		return 1
	}))

	// Window("20:00", "04:00")
	L.SetGlobal("Window", L.NewFunction(func(L *lua.LState) int {
		from := L.CheckString(1)
		to := L.CheckString(2)
		tbl := L.NewTable()
		tbl.RawSetString("from", lua.LString(from))
		tbl.RawSetString("to", lua.LString(to))
		L.Push(tbl)
		return 1
	}))

	// Encounter("Ambush", 15, { empty_seat = true, skip_gang = true, window = Window(...) })
	L.SetGlobal("Encounter", L.NewFunction(func(L *lua.LState) int {
		location := L.CheckString(1)
		chance := L.CheckNumber(2)
		tbl := L.OptTable(3, L.NewTable())
		tbl.RawSetString("location", lua.LString(location))
		tbl.RawSetString("chance", chance)
		L.Push(tbl)
		return 1
	}))

	// Hours(2) returns minutes, for time effects.
	L.SetGlobal("Hours", L.NewFunction(func(L *lua.LState) int {
		h := L.CheckNumber(1)
		L.Push(lua.LNumber(float64(h) * 60))
		return 1
	}))
}
