package world

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// scriptedRoller replays a fixed sequence of rolls, cycling when exhausted.
type scriptedRoller struct {
	rolls []int
	calls int
}

func rolls(r ...int) *scriptedRoller { return &scriptedRoller{rolls: r} }

func (s *scriptedRoller) Intn(n int) int {
	v := s.rolls[s.calls%len(s.rolls)]
	s.calls++
	return v % n
}

func mustWeapon(t *testing.T, name, shortID string, strength, crit uint) Weapon {
	t.Helper()
	w, err := NewWeapon(name, shortID, strength, crit)
	require.NoError(t, err)
	return w
}

func mustEnemy(t *testing.T, name, shortID string, health, strength, crit uint) Enemy {
	t.Helper()
	e, err := NewEnemy(name, shortID, health, strength, crit)
	require.NoError(t, err)
	return e
}

func mustDoor(t *testing.T, direction, adjacent string, locked bool) Door {
	t.Helper()
	d, err := NewDoor(direction, adjacent, locked)
	require.NoError(t, err)
	return d
}
