package loader

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	lua "github.com/yuin/gopher-lua"

	"github.com/nathoo/crawlcore/engine/dungeon"
	"github.com/nathoo/crawlcore/engine/world"
)

// ErrNoRooms is returned when the scripts declare no Room.
var ErrNoRooms = errors.New("no Room definitions found")

// Dungeon is the compiled output of a set of dungeon scripts.
type Dungeon struct {
	Rooms    []*world.Room
	Player   *world.Player // nil unless a Player{} block was declared
	Warnings []string
}

// collector accumulates Lua definitions during file execution.
type collector struct {
	player *lua.LTable
	rooms  []rawRoom
}

// Load reads all .lua files from dir, compiles them into rooms in
// declaration order and validates the door graph. dungeon.lua runs first;
// the rest run alphabetically. The Lua VM is discarded after loading.
func Load(dir string) (*Dungeon, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading dungeon directory %s: %w", dir, err)
	}

	var luaFiles []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".lua") {
			luaFiles = append(luaFiles, filepath.Join(dir, e.Name()))
		}
	}
	if len(luaFiles) == 0 {
		return nil, fmt.Errorf("no .lua files found in %s", dir)
	}

	return run(sortedLuaFiles(luaFiles))
}

// LoadFile compiles a single dungeon script.
func LoadFile(path string) (*Dungeon, error) {
	return run([]string{path})
}

// LoadString compiles a dungeon script held in memory.
func LoadString(src string) (*Dungeon, error) {
	return execute(func(L *lua.LState) error {
		if err := L.DoString(src); err != nil {
			return fmt.Errorf("executing script: %w", err)
		}
		return nil
	})
}

func run(paths []string) (*Dungeon, error) {
	return execute(func(L *lua.LState) error {
		for _, path := range paths {
			if err := L.DoFile(path); err != nil {
				return fmt.Errorf("executing %s: %w", filepath.Base(path), err)
			}
		}
		return nil
	})
}

// execute runs scripts in a fresh sandboxed VM, then compiles and validates
// what they declared.
func execute(scripts func(L *lua.LState) error) (*Dungeon, error) {
	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	defer L.Close()

	openSafeLibs(L)
	sandbox(L)

	coll := &collector{}
	registerAPI(L, coll)

	if err := scripts(L); err != nil {
		return nil, err
	}

	d, err := compile(coll)
	if err != nil {
		return nil, fmt.Errorf("compiling dungeon: %w", err)
	}

	warnings, err := dungeon.Validate(d.Rooms)
	if err != nil {
		return nil, err
	}
	d.Warnings = warnings
	return d, nil
}

// openSafeLibs opens only the safe subset of Lua standard libraries.
func openSafeLibs(L *lua.LState) {
	// Base library (print, type, tostring, tonumber, pairs, ipairs, etc.)
	lua.OpenBase(L)
	// Table library (table.insert, table.sort, etc.)
	lua.OpenTable(L)
	// String library (string.format, string.sub, etc.)
	lua.OpenString(L)
	// Math library (math.floor, math.max, etc.)
	lua.OpenMath(L)
}

// sandbox removes dangerous globals and functions.
func sandbox(L *lua.LState) {
	dangerous := []string{
		"dofile", "loadfile", "load", "loadstring",
		"rawset", "rawget", "rawequal",
		"collectgarbage", "require",
	}
	for _, name := range dangerous {
		L.SetGlobal(name, lua.LNil)
	}

	// Scripts must not reseed; generated dungeons stay reproducible.
	if mathTbl := L.GetGlobal("math"); mathTbl != lua.LNil {
		if tbl, ok := mathTbl.(*lua.LTable); ok {
			tbl.RawSetString("randomseed", lua.LNil)
		}
	}
}
