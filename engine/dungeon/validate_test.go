package dungeon

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nathoo/crawlcore/engine/world"
)

func room(t *testing.T, id string, doors ...world.Door) *world.Room {
	t.Helper()
	r, err := world.NewRoom(id, id, doors, nil, nil, 0)
	require.NoError(t, err)
	return r
}

func door(t *testing.T, dir, target string) world.Door {
	t.Helper()
	d, err := world.NewDoor(dir, target, false)
	require.NoError(t, err)
	return d
}

func TestValidate_TestDungeon(t *testing.T) {
	rooms, err := ParseFile(filepath.Join("testdata", "test.txt"))
	require.NoError(t, err)

	warnings, err := Validate(rooms)
	require.NoError(t, err)
	assert.Empty(t, warnings)
}

func TestValidate_Errors(t *testing.T) {
	rooms := []*world.Room{
		room(t, "A", door(t, "UP", "B"), door(t, "DOWN", "GHOST")),
		room(t, "B"),
		room(t, "B"),
	}

	_, err := Validate(rooms)
	require.Error(t, err)

	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
	require.Len(t, ve.Errors, 2)
	assert.Contains(t, ve.Errors[0], `duplicate room id "B"`)
	assert.Contains(t, ve.Errors[1], `undefined room "GHOST"`)
}

func TestValidate_UnreachableWarning(t *testing.T) {
	rooms := []*world.Room{
		room(t, "A", door(t, "UP", "B")),
		room(t, "B"),
		room(t, "C", door(t, "UP", "A")),
	}

	warnings, err := Validate(rooms)
	require.NoError(t, err)
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], `"C"`)
}

func TestValidate_Empty(t *testing.T) {
	_, err := Validate(nil)
	require.Error(t, err)
}

func TestReachable(t *testing.T) {
	rooms := []*world.Room{
		room(t, "A", door(t, "UP", "B")),
		room(t, "B", door(t, "UP", "C"), door(t, "DOWN", "A")),
		room(t, "C"),
		room(t, "D"),
	}

	got := Reachable(rooms, "A")
	assert.Equal(t, 3, got.Size())
	assert.True(t, got.Has("C"))
	assert.False(t, got.Has("D"))

	assert.Equal(t, 0, Reachable(rooms, "NOWHERE").Size())
}
