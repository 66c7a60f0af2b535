// Package world defines the dungeon entities: weapons, enemies, doors,
// rooms and the player. Constructors validate eagerly and never return a
// partially built entity.
package world

import "errors"

// Precondition failures. Gameplay outcomes are never reported through these.
var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrDuplicateItem   = errors.New("duplicate item")
	ErrNotFound        = errors.New("not found")
	ErrEmptyCollection = errors.New("empty collection")
)
