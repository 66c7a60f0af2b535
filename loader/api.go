package loader

import (
	lua "github.com/yuin/gopher-lua"
)

// Kinds tagged onto pass-through tables so compile can reject a Weapon
// placed in a doors list.
const (
	kindDoor   = "door"
	kindEnemy  = "enemy"
	kindWeapon = "weapon"
	kindField  = "__kind"
)

// registerAPI registers all Lua constructors as globals.
func registerAPI(L *lua.LState, coll *collector) {
	// Player { location = "...", health = n, keys = n, weapons = {...} }
	L.SetGlobal("Player", L.NewFunction(func(L *lua.LState) int {
		coll.player = L.CheckTable(1)
		return 0
	}))

	// Room "id" { ... } is curried: Room("id") returns a function that takes a table.
	L.SetGlobal("Room", L.NewFunction(func(L *lua.LState) int {
		id := L.CheckString(1)
		L.Push(L.NewFunction(func(L *lua.LState) int {
			tbl := L.CheckTable(1)
			coll.rooms = append(coll.rooms, rawRoom{id: id, table: tbl})
			return 0
		}))
		return 1
	}))

	// Door { direction = "UP", to = "SWORD", locked = false }
	L.SetGlobal("Door", tagged(L, kindDoor))
	// Enemy { name = "BLOB", id = "BLOB", health = 30, strength = 15, crit = 10 }
	L.SetGlobal("Enemy", tagged(L, kindEnemy))
	// Weapon { name = "SWORD", id = "SWORD", strength = 20, crit = 5 }
	L.SetGlobal("Weapon", tagged(L, kindWeapon))
}

// tagged returns a pass-through constructor that marks its table with kind.
func tagged(L *lua.LState, kind string) *lua.LFunction {
	return L.NewFunction(func(L *lua.LState) int {
		tbl := L.CheckTable(1)
		tbl.RawSetString(kindField, lua.LString(kind))
		L.Push(tbl)
		return 1
	})
}
