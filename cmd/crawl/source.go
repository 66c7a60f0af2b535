package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/nathoo/crawlcore/engine/dungeon"
	"github.com/nathoo/crawlcore/engine/world"
	"github.com/nathoo/crawlcore/loader"
)

// loadDungeon picks the dungeon source from path: the built-in dungeon when
// empty, Lua for a directory or .lua file, the text format otherwise. Text
// dungeons, and Lua dungeons without a Player block, use the default profile.
func loadDungeon(path string, log *slog.Logger) (*world.Player, []*world.Room, error) {
	if path == "" {
		rooms, err := dungeon.Default()
		if err != nil {
			return nil, nil, err
		}
		return world.DefaultPlayer(), rooms, nil
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, nil, fmt.Errorf("opening dungeon: %w", err)
	}

	if info.IsDir() || strings.EqualFold(filepath.Ext(path), ".lua") {
		var d *loader.Dungeon
		if info.IsDir() {
			d, err = loader.Load(path)
		} else {
			d, err = loader.LoadFile(path)
		}
		if err != nil {
			return nil, nil, err
		}
		logWarnings(log, path, d.Warnings)
		player := d.Player
		if player == nil {
			player = startingPlayer(d.Rooms)
		}
		return player, d.Rooms, nil
	}

	rooms, err := dungeon.ParseFile(path)
	if err != nil {
		return nil, nil, err
	}
	warnings, err := dungeon.Validate(rooms)
	if err != nil {
		return nil, nil, err
	}
	logWarnings(log, path, warnings)
	return startingPlayer(rooms), rooms, nil
}

// startingPlayer is the default profile, moved to the first room when the
// dungeon has no room with the default location.
func startingPlayer(rooms []*world.Room) *world.Player {
	p := world.DefaultPlayer()
	for _, r := range rooms {
		if r.ShortID() == p.Location() {
			return p
		}
	}
	if len(rooms) > 0 {
		p.SetLocation(rooms[0].ShortID())
	}
	return p
}

func logWarnings(log *slog.Logger, path string, warnings []string) {
	for _, w := range warnings {
		log.Warn("dungeon warning", "path", path, "warning", w)
	}
}
