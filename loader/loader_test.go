package loader

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nathoo/crawlcore/engine/dungeon"
)

func TestLoad_Crypt(t *testing.T) {
	d, err := Load("testdata/crypt")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	var ids []string
	for _, r := range d.Rooms {
		ids = append(ids, r.ShortID())
	}
	if strings.Join(ids, ",") != "ENTRN,SIDE,TOMB" {
		t.Errorf("rooms in declaration order = %v", ids)
	}

	tomb := d.Rooms[len(d.Rooms)-1]
	if tomb.Name() != "TOMB" {
		t.Errorf("tomb name = %q", tomb.Name())
	}
	enemies := tomb.Enemies()
	if len(enemies) != 3 {
		t.Fatalf("expected 3 enemies, got %d", len(enemies))
	}
	if enemies[1].ShortID() != "RAT2" || enemies[2].ShortID() != "LICH" {
		t.Errorf("unexpected enemies %s, %s", enemies[1].ShortID(), enemies[2].ShortID())
	}

	if d.Player == nil {
		t.Fatal("expected the declared player")
	}
	if d.Player.Health() != 200 || d.Player.Keys() != 1 {
		t.Errorf("player health=%d keys=%d", d.Player.Health(), d.Player.Keys())
	}
	if len(d.Warnings) != 0 {
		t.Errorf("unexpected warnings %v", d.Warnings)
	}
}

func TestLoadFile_NoPlayer(t *testing.T) {
	path := filepath.Join(t.TempDir(), "one.lua")
	if err := os.WriteFile(path, []byte(`Room "ENTRN" { keys = 3 }`), 0o644); err != nil {
		t.Fatal(err)
	}

	d, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if d.Player != nil {
		t.Error("expected no player")
	}
	if len(d.Rooms) != 1 || d.Rooms[0].Keys() != 3 {
		t.Errorf("unexpected rooms %+v", d.Rooms)
	}
}

func TestLoadString_UnreachableWarning(t *testing.T) {
	d, err := LoadString(`
		Room "A" { doors = { Door { direction = "UP", to = "B" } } }
		Room "B" {}
		Room "C" { doors = { Door { direction = "UP", to = "A" } } }
	`)
	if err != nil {
		t.Fatalf("LoadString failed: %v", err)
	}
	if len(d.Warnings) != 1 || !strings.Contains(d.Warnings[0], `"C"`) {
		t.Errorf("expected one warning about C, got %v", d.Warnings)
	}
}

func TestLoadString_DanglingDoor(t *testing.T) {
	_, err := LoadString(`Room "A" { doors = { Door { direction = "UP", to = "GHOST" } } }`)
	var ve *dungeon.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected *dungeon.ValidationError, got %T: %v", err, err)
	}
	if len(ve.Errors) != 1 {
		t.Errorf("expected 1 error, got %v", ve.Errors)
	}
}

func TestLoadString_NoRooms(t *testing.T) {
	_, err := LoadString(`Player {}`)
	if !errors.Is(err, ErrNoRooms) {
		t.Errorf("expected ErrNoRooms, got %v", err)
	}
}

func TestLoadString_ScriptError(t *testing.T) {
	_, err := LoadString(`Room "A" {`)
	if err == nil || !strings.Contains(err.Error(), "executing script") {
		t.Errorf("expected script error, got %v", err)
	}
}

func TestLoad_Sandboxed(t *testing.T) {
	for _, src := range []string{
		`dofile("x.lua")`,
		`os.exit(1)`,
		`io.open("x")`,
		`math.randomseed(1)`,
	} {
		if _, err := LoadString(src + "\nRoom \"A\" {}"); err == nil {
			t.Errorf("%q should fail in the sandbox", src)
		}
	}
}

func TestLoad_MissingDir(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Error("expected error for missing directory")
	}
}

func TestLoad_EmptyDir(t *testing.T) {
	_, err := Load(t.TempDir())
	if err == nil || !strings.Contains(err.Error(), "no .lua files") {
		t.Errorf("expected no .lua files error, got %v", err)
	}
}
