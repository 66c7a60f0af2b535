// Package types defines the shared data structures for the crawl engine.
// This package contains only type definitions, no logic.
package types

// Action names one of the four engine verbs.
type Action string

const (
	Fight Action = "FIGHT"
	Take  Action = "TAKE"
	Drop  Action = "DROP"
	Go    Action = "GO"
)

// Actions lists the verbs in presentation order.
var Actions = []Action{Fight, Take, Drop, Go}

// Intent is the parsed representation of a typed player command.
type Intent struct {
	Verb   string
	Object string // optional
}

// Command is one engine turn: a verb plus the qualifier it acts on.
type Command struct {
	Action    Action
	Qualifier string
}

// Event records something that happened during a turn.
type Event struct {
	Type string
	Data map[string]any
}

// Result is the output of a single engine step.
type Result struct {
	Message string
	Events  []Event
}

// Event types emitted by the engine.
const (
	EventPlayerMoved    = "player_moved"
	EventDoorUnlocked   = "door_unlocked"
	EventKeyTaken       = "key_taken"
	EventWeaponTaken    = "weapon_taken"
	EventKeyDropped     = "key_dropped"
	EventWeaponDropped  = "weapon_dropped"
	EventEnemyHit       = "enemy_hit"
	EventPlayerHit      = "player_hit"
	EventEnemyDefeated  = "enemy_defeated"
	EventPlayerDefeated = "player_defeated"
	EventGameWon        = "game_won"
)
