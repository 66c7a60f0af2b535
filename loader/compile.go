// Package loader compiles Lua dungeon scripts into the room graph at load
// time. The Lua VM is discarded after loading; zero Lua at runtime.
package loader

import (
	"fmt"
	"math"
	"path/filepath"
	"sort"

	lua "github.com/yuin/gopher-lua"

	"github.com/nathoo/crawlcore/engine/world"
)

// rawRoom holds a room table before compilation.
type rawRoom struct {
	id    string
	table *lua.LTable
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

// getUint returns a non-negative integer field, or def if missing.
func getUint(tbl *lua.LTable, key string, def uint) (uint, error) {
	v := tbl.RawGetString(key)
	if v == lua.LNil {
		return def, nil
	}
	n, ok := v.(lua.LNumber)
	if !ok {
		return 0, fmt.Errorf("%s must be a number, got %s", key, v.Type())
	}
	f := float64(n)
	if f < 0 || f != math.Trunc(f) || f > math.MaxUint32 {
		return 0, fmt.Errorf("%s must be a non-negative integer, got %v", key, f)
	}
	return uint(f), nil
}

// getTable returns a table field from a Lua table, or nil if missing.
func getTable(tbl *lua.LTable, key string) *lua.LTable {
	v := tbl.RawGetString(key)
	if t, ok := v.(*lua.LTable); ok {
		return t
	}
	return nil
}

// eachTagged walks the array part of a list field, requiring every element
// to be a table built by the constructor for kind.
func eachTagged(tbl *lua.LTable, key, kind string, fn func(i int, entry *lua.LTable) error) error {
	list := getTable(tbl, key)
	if list == nil {
		return nil
	}
	for i := 1; i <= list.MaxN(); i++ {
		entry, ok := list.RawGetInt(i).(*lua.LTable)
		if !ok || getString(entry, kindField) != kind {
			return fmt.Errorf("%s[%d] is not a %s", key, i, kind)
		}
		if err := fn(i, entry); err != nil {
			return fmt.Errorf("%s[%d]: %w", key, i, err)
		}
	}
	return nil
}

// compile converts the collected Lua data into rooms and an optional player.
func compile(coll *collector) (*Dungeon, error) {
	if len(coll.rooms) == 0 {
		return nil, ErrNoRooms
	}

	d := &Dungeon{}
	for _, raw := range coll.rooms {
		room, err := compileRoom(raw)
		if err != nil {
			return nil, fmt.Errorf("room %s: %w", raw.id, err)
		}
		d.Rooms = append(d.Rooms, room)
	}

	if coll.player != nil {
		p, err := compilePlayer(coll.player, d.Rooms[0].ShortID())
		if err != nil {
			return nil, fmt.Errorf("player: %w", err)
		}
		d.Player = p
	}
	return d, nil
}

func compileRoom(raw rawRoom) (*world.Room, error) {
	tbl := raw.table
	name := getString(tbl, "name")
	if name == "" {
		name = raw.id
	}

	var doors []world.Door
	err := eachTagged(tbl, "doors", kindDoor, func(_ int, t *lua.LTable) error {
		door, err := world.NewDoor(getString(t, "direction"), getString(t, "to"), getBool(t, "locked", false))
		doors = append(doors, door)
		return err
	})
	if err != nil {
		return nil, err
	}

	var enemies []world.Enemy
	err = eachTagged(tbl, "enemies", kindEnemy, func(_ int, t *lua.LTable) error {
		e, err := compileEnemy(t)
		enemies = append(enemies, e)
		return err
	})
	if err != nil {
		return nil, err
	}

	weapons, err := compileWeapons(tbl)
	if err != nil {
		return nil, err
	}

	keys, err := getUint(tbl, "keys", 0)
	if err != nil {
		return nil, err
	}

	return world.NewRoom(name, raw.id, doors, enemies, weapons, keys)
}

func compileEnemy(tbl *lua.LTable) (world.Enemy, error) {
	stats, err := uints(tbl, "health", "strength", "crit")
	if err != nil {
		return world.Enemy{}, err
	}
	return world.NewEnemy(getString(tbl, "name"), shortID(tbl), stats[0], stats[1], stats[2])
}

func compileWeapons(tbl *lua.LTable) ([]world.Weapon, error) {
	var weapons []world.Weapon
	err := eachTagged(tbl, "weapons", kindWeapon, func(_ int, t *lua.LTable) error {
		stats, err := uints(t, "strength", "crit")
		if err != nil {
			return err
		}
		w, err := world.NewWeapon(getString(t, "name"), shortID(t), stats[0], stats[1])
		weapons = append(weapons, w)
		return err
	})
	return weapons, err
}

func compilePlayer(tbl *lua.LTable, firstRoom string) (*world.Player, error) {
	location := getString(tbl, "location")
	if location == "" {
		location = firstRoom
	}
	health, err := getUint(tbl, "health", world.DefaultMaxHealth)
	if err != nil {
		return nil, err
	}
	keys, err := getUint(tbl, "keys", 0)
	if err != nil {
		return nil, err
	}
	weapons, err := compileWeapons(tbl)
	if err != nil {
		return nil, err
	}
	return world.NewPlayer(location, health, keys, weapons)
}

// shortID reads the id field, falling back to the name.
func shortID(tbl *lua.LTable) string {
	if id := getString(tbl, "id"); id != "" {
		return id
	}
	return getString(tbl, "name")
}

func uints(tbl *lua.LTable, keys ...string) ([]uint, error) {
	out := make([]uint, len(keys))
	for i, k := range keys {
		n, err := getUint(tbl, k, 0)
		if err != nil {
			return nil, err
		}
		out[i] = n
	}
	return out, nil
}

// sortedLuaFiles returns .lua paths with dungeon.lua first and the rest
// sorted alphabetically.
func sortedLuaFiles(paths []string) []string {
	var first string
	var others []string
	for _, p := range paths {
		if filepath.Base(p) == "dungeon.lua" {
			first = p
		} else {
			others = append(others, p)
		}
	}
	sort.Strings(others)
	if first != "" {
		return append([]string{first}, others...)
	}
	return others
}
