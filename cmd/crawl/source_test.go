package main

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/nathoo/crawlcore/engine/dungeon"
	"github.com/nathoo/crawlcore/engine/world"
)

var discard = slog.New(slog.DiscardHandler)

func TestLoadDungeon_Default(t *testing.T) {
	player, rooms, err := loadDungeon("", discard)
	if err != nil {
		t.Fatalf("loadDungeon: %v", err)
	}
	if player.Location() != world.DefaultLocation {
		t.Errorf("location = %q, want %q", player.Location(), world.DefaultLocation)
	}
	if rooms[0].ShortID() != "ENTRN" {
		t.Errorf("first room = %q, want ENTRN", rooms[0].ShortID())
	}
}

func TestLoadDungeon_Text(t *testing.T) {
	player, rooms, err := loadDungeon(filepath.Join("..", "..", "engine", "dungeon", "testdata", "test.txt"), discard)
	if err != nil {
		t.Fatalf("loadDungeon: %v", err)
	}
	if len(rooms) != 5 {
		t.Errorf("rooms = %d, want 5", len(rooms))
	}
	if player.Health() != world.DefaultMaxHealth {
		t.Errorf("health = %d, want %d", player.Health(), world.DefaultMaxHealth)
	}
}

func TestLoadDungeon_TextRelocatesPlayer(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cellar.txt")
	src := "DUNGEON_LOAD_FINAL_PROJECT\n[\n    {\n      CELLAR\n      CELLR\n      []\n      []\n      []\n      0\n    }\n]\n"
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}

	player, _, err := loadDungeon(path, discard)
	if err != nil {
		t.Fatalf("loadDungeon: %v", err)
	}
	if player.Location() != "CELLR" {
		t.Errorf("location = %q, want CELLR", player.Location())
	}
}

func TestLoadDungeon_LuaDirectory(t *testing.T) {
	player, rooms, err := loadDungeon(filepath.Join("..", "..", "loader", "testdata", "crypt"), discard)
	if err != nil {
		t.Fatalf("loadDungeon: %v", err)
	}
	if player.Health() != 200 || player.Keys() != 1 {
		t.Errorf("player = health %d keys %d, want 200 and 1", player.Health(), player.Keys())
	}
	if rooms[len(rooms)-1].ShortID() != "TOMB" {
		t.Errorf("last room = %q, want TOMB", rooms[len(rooms)-1].ShortID())
	}
}

func TestLoadDungeon_Errors(t *testing.T) {
	if _, _, err := loadDungeon(filepath.Join(t.TempDir(), "missing.txt"), discard); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file: got %v, want os.ErrNotExist", err)
	}

	bad := filepath.Join(t.TempDir(), "bad.txt")
	if err := os.WriteFile(bad, []byte("NOT A DUNGEON\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, _, err := loadDungeon(bad, discard); !errors.Is(err, dungeon.ErrInvalidFormat) {
		t.Errorf("bad header: got %v, want ErrInvalidFormat", err)
	}
}
