package world

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPlayer(t *testing.T, health, keys uint, weapons ...Weapon) *Player {
	t.Helper()
	p, err := NewPlayer("ENTRN", health, keys, weapons)
	require.NoError(t, err)
	return p
}

func TestNewPlayer(t *testing.T) {
	p := newPlayer(t, 100, 2, mustWeapon(t, "SPELL", "SPELL", 5, 5))
	assert.Equal(t, "ENTRN", p.Location())
	assert.Equal(t, uint(100), p.Health())
	assert.Equal(t, uint(100), p.MaxHealth())
	assert.Equal(t, uint(2), p.Keys())
	assert.Len(t, p.Weapons(), 1)

	_, err := NewPlayer("", 100, 0, nil)
	require.ErrorIs(t, err, ErrInvalidArgument)
	_, err = NewPlayer("ENTRANCE", 100, 0, nil)
	require.ErrorIs(t, err, ErrInvalidArgument)
	_, err = NewPlayer("ENTRN", 0, 0, nil)
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestDefaultPlayer(t *testing.T) {
	p := DefaultPlayer()
	assert.Equal(t, "ENTRN", p.Location())
	assert.Equal(t, uint(1000), p.Health())
	assert.Equal(t, uint(1000), p.MaxHealth())
	assert.Equal(t, uint(0), p.Keys())
	require.Len(t, p.Weapons(), 1)
	sword := p.Weapons()[0]
	assert.Equal(t, "SWORD", sword.Name())
	assert.Equal(t, uint(15), sword.Strength())
	assert.Equal(t, uint(15), sword.CriticalChance())
}

func TestPlayer_RegenerateHealth(t *testing.T) {
	p := newPlayer(t, 100, 0)

	p.TakeDamage(5)
	p.RegenerateHealth()
	assert.Equal(t, uint(100), p.Health(), "capped at max")

	p.TakeDamage(50)
	p.RegenerateHealth()
	assert.Equal(t, uint(55), p.Health())

	small := newPlayer(t, 19, 0)
	small.TakeDamage(10)
	small.RegenerateHealth()
	assert.Equal(t, uint(9), small.Health(), "19/20 rounds down to zero")
}

func TestPlayer_TakeDamage(t *testing.T) {
	p := newPlayer(t, 5, 0)
	p.TakeDamage(6)
	assert.Equal(t, uint(0), p.Health())
	assert.False(t, p.IsAlive())
}

func TestPlayer_Keys(t *testing.T) {
	p := newPlayer(t, 10, 0)
	p.DecrementKeys()
	assert.Equal(t, uint(0), p.Keys())
	p.IncrementKeys()
	p.IncrementKeys()
	p.DecrementKeys()
	assert.Equal(t, uint(1), p.Keys())
}

func TestPlayer_Weapons(t *testing.T) {
	p := newPlayer(t, 10, 0)

	require.ErrorIs(t, p.RemoveWeapon("SPELL"), ErrEmptyCollection)

	require.NoError(t, p.AddWeapon(mustWeapon(t, "SPELL", "SPELL", 5, 5)))
	require.NoError(t, p.AddWeapon(mustWeapon(t, "TRINKET", "TRNKT", 5, 5)))
	require.NoError(t, p.AddWeapon(mustWeapon(t, "DAGGER", "DGR", 5, 5)))
	require.ErrorIs(t, p.AddWeapon(mustWeapon(t, "DAGGER", "DAG", 9, 9)), ErrDuplicateItem)

	w, err := p.RetrieveWeapon("TRNKT")
	require.NoError(t, err)
	assert.Equal(t, "TRINKET", w.Name())

	_, err = p.RetrieveWeapon("")
	require.ErrorIs(t, err, ErrInvalidArgument)
	_, err = p.RetrieveWeapon("AXE")
	require.ErrorIs(t, err, ErrNotFound)

	require.ErrorIs(t, p.RemoveWeapon("AXE"), ErrNotFound)
	require.NoError(t, p.RemoveWeapon("TRINKET"))

	names := []string{}
	for _, w := range p.Weapons() {
		names = append(names, w.Name())
	}
	assert.Equal(t, []string{"SPELL", "DAGGER"}, names)
}

func TestPlayer_DealDamage(t *testing.T) {
	t.Run("strongest weapon, first wins ties", func(t *testing.T) {
		p := newPlayer(t, 10, 0,
			mustWeapon(t, "STICK", "STICK", 3, 0),
			mustWeapon(t, "AXE", "AXE", 20, 0),
			mustWeapon(t, "MAUL", "MAUL", 20, 100),
		)
		w, ok := p.StrongestWeapon()
		require.True(t, ok)
		assert.Equal(t, "AXE", w.Name())
		assert.Equal(t, uint(20), p.DealDamage(rolls(50)))
		assert.Equal(t, uint(40), p.DealDamage(rolls(0)))
	})

	t.Run("unarmed deals nothing", func(t *testing.T) {
		p := newPlayer(t, 10, 0)
		_, ok := p.StrongestWeapon()
		assert.False(t, ok)
		assert.Equal(t, uint(0), p.DealDamage(rolls(0)))
	})
}

func TestPlayer_Clone(t *testing.T) {
	p := newPlayer(t, 10, 1, mustWeapon(t, "SPELL", "SPELL", 5, 5))
	c := p.Clone()
	require.NoError(t, c.RemoveWeapon("SPELL"))
	c.SetLocation("BOW")
	assert.Len(t, p.Weapons(), 1)
	assert.Equal(t, "ENTRN", p.Location())
}
