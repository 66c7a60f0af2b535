package engine

import (
	"github.com/nathoo/crawlcore/engine/world"
	"github.com/nathoo/crawlcore/types"
)

// melee trades blows between the player and enemy until one of them is
// down. Every round is a player strike then an enemy strike, so a dying
// enemy still lands its blow. It returns the number of rounds fought.
//
// The loop terminates because every living enemy deals at least its
// strength, which is never zero.
func (e *Engine) melee(enemy *world.Enemy) int {
	rounds := 0
	for enemy.IsAlive() && e.player.IsAlive() {
		rounds++

		dealt := e.player.DealDamage(e.roller)
		enemy.TakeDamage(dealt)
		e.emit(types.EventEnemyHit, map[string]any{
			"enemy":  enemy.ShortID(),
			"damage": dealt,
			"health": enemy.Health(),
		})

		taken := enemy.DealDamage(e.roller)
		e.player.TakeDamage(taken)
		e.emit(types.EventPlayerHit, map[string]any{
			"enemy":  enemy.ShortID(),
			"damage": taken,
			"health": e.player.Health(),
		})
	}
	return rounds
}
