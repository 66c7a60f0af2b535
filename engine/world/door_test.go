package world

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDoor(t *testing.T) {
	d, err := NewDoor("UP", "SWORD", false)
	require.NoError(t, err)
	assert.Equal(t, "UP", d.Direction())
	assert.Equal(t, "SWORD", d.AdjacentRoom())
	assert.False(t, d.IsLocked())

	_, err = NewDoor("", "SWORD", false)
	require.ErrorIs(t, err, ErrInvalidArgument)

	_, err = NewDoor("UP", "", true)
	require.ErrorIs(t, err, ErrInvalidArgument)

	_, err = NewDoor("UP", "SWORDS", true)
	require.ErrorIs(t, err, ErrInvalidArgument)
	assert.Contains(t, err.Error(), "ADJACENT ROOM TOO LONG")
}

func TestDoor_SwitchLock(t *testing.T) {
	d := mustDoor(t, "LEFT", "BAT", true)
	d.SwitchLock()
	assert.False(t, d.IsLocked())
	d.SwitchLock()
	assert.True(t, d.IsLocked())
}
