// Package engine holds the player and the room graph and resolves the four
// action verbs against them, one turn at a time.
package engine

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/nathoo/crawlcore/engine/dungeon"
	"github.com/nathoo/crawlcore/engine/world"
	"github.com/nathoo/crawlcore/types"
)

// MaxWeapons is the number of weapons a player may carry.
const MaxWeapons = 4

// KeyQualifier selects a key instead of a weapon for Take and Drop.
const KeyQualifier = "KEY"

// Messages reported to the presentation layer.
const (
	MsgPrompt        = "WHAT WILL YOU DO?"
	MsgNoDoors       = "THERE ARE NO DOORS IN THIS ROOM"
	MsgUnlocked      = "YOU UNLOCKED THE DOOR"
	MsgNoKey         = "YOU DO NOT HAVE A KEY"
	MsgWent          = "YOU WENT "
	MsgNoRoomItems   = "THERE ARE NO ITEMS IN THIS ROOM"
	MsgTooMany       = "YOU ARE CARRYING TOO MANY WEAPONS"
	MsgTookKey       = "YOU TOOK A KEY"
	MsgTook          = "YOU TOOK THE "
	MsgNoPersonItems = "THERE ARE NO ITEMS ON YOUR PERSON"
	MsgDroppedKey    = "YOU DROPPED A KEY"
	MsgDropped       = "YOU DROPPED THE "
	MsgNoEnemies     = "THERE ARE NO ENEMIES IN THIS ROOM"
	MsgLose          = "YOU LOSE"
	MsgWin           = "YOU WIN"
	MsgFought        = "YOU FOUGHT THE "
)

// ErrEmptyDungeon is returned when an engine is built without rooms.
var ErrEmptyDungeon = errors.New("DUNGEON MAP HAS NO ROOMS")

// ErrUnknownAction is returned by Step for a command with no verb.
var ErrUnknownAction = errors.New("unknown action")

// Engine holds the player, the ordered room graph and the turn state.
// It is the only mutator of either.
type Engine struct {
	player    *world.Player
	rooms     []*world.Room
	index     map[string]int
	qualifier string
	message   string
	roller    world.Roller
	log       *slog.Logger
	events    []types.Event
}

// Option configures an Engine.
type Option func(*Engine)

// WithRoller sets the randomness source for critical hits.
func WithRoller(r world.Roller) Option {
	return func(e *Engine) { e.roller = r }
}

// WithSeed seeds a fresh RNG for critical hits.
func WithSeed(seed int64) Option {
	return func(e *Engine) { e.roller = NewRNG(seed) }
}

// WithLogger sets the logger for turn diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) { e.log = l }
}

// New creates an engine owning player and rooms. Both are mutated in place
// for the life of the session.
func New(player *world.Player, rooms []*world.Room, opts ...Option) (*Engine, error) {
	if len(rooms) == 0 {
		return nil, ErrEmptyDungeon
	}
	if player == nil {
		return nil, fmt.Errorf("%w: PLAYER NOT SPECIFIED", world.ErrInvalidArgument)
	}

	e := &Engine{
		player: player,
		rooms:  rooms,
		index:  make(map[string]int, len(rooms)),
		roller: NewRNG(1),
		log:    slog.New(slog.DiscardHandler),
	}
	for i, r := range rooms {
		if _, dup := e.index[r.ShortID()]; !dup {
			e.index[r.ShortID()] = i
		}
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// NewDefault creates an engine for the default player in the built-in dungeon.
func NewDefault(opts ...Option) (*Engine, error) {
	rooms, err := dungeon.Default()
	if err != nil {
		return nil, fmt.Errorf("loading default dungeon: %w", err)
	}
	return New(world.DefaultPlayer(), rooms, opts...)
}

// Player returns a snapshot of the player.
func (e *Engine) Player() *world.Player { return e.player.Clone() }

// Rooms returns a snapshot of the room graph in discovery order.
func (e *Engine) Rooms() []*world.Room {
	out := make([]*world.Room, len(e.rooms))
	for i, r := range e.rooms {
		out[i] = r.Clone()
	}
	return out
}

// Message returns the status text left by the last verb.
func (e *Engine) Message() string { return e.message }

// SetMessage replaces the status text.
func (e *Engine) SetMessage(msg string) { e.message = msg }

// Qualifier returns the pending qualifier.
func (e *Engine) Qualifier() string { return e.qualifier }

// SetQualifier sets the target of the next verb.
func (e *Engine) SetQualifier(q string) { e.qualifier = q }

// GameOver reports whether the last fight ended the game.
func (e *Engine) GameOver() bool {
	return e.message == MsgWin || e.message == MsgLose
}

// RetrieveRoom returns a snapshot of the room with the given short id.
func (e *Engine) RetrieveRoom(shortID string) (*world.Room, error) {
	r, err := e.room(shortID)
	if err != nil {
		return nil, err
	}
	return r.Clone(), nil
}

// CurrentRoom returns a snapshot of the room the player stands in.
func (e *Engine) CurrentRoom() (*world.Room, error) {
	return e.RetrieveRoom(e.player.Location())
}

func (e *Engine) room(shortID string) (*world.Room, error) {
	if shortID == "" {
		return nil, fmt.Errorf("%w: ROOM NAME NOT SPECIFIED", world.ErrInvalidArgument)
	}
	i, ok := e.index[shortID]
	if !ok {
		return nil, fmt.Errorf("%w: ROOM NOT FOUND", world.ErrNotFound)
	}
	return e.rooms[i], nil
}

// Step sets the qualifier and runs exactly one verb. Gameplay outcomes are
// reported in the result message; only data errors are returned.
func (e *Engine) Step(cmd types.Command) (types.Result, error) {
	e.qualifier = cmd.Qualifier

	var err error
	switch cmd.Action {
	case types.Fight:
		err = e.Fight()
	case types.Take:
		err = e.Take()
	case types.Drop:
		err = e.Drop()
	case types.Go:
		err = e.Go()
	default:
		return types.Result{}, fmt.Errorf("%w: %q", ErrUnknownAction, cmd.Action)
	}

	return types.Result{Message: e.message, Events: e.events}, err
}

// Go moves through the door named by the qualifier, or unlocks it if it is
// locked and the player has a key.
func (e *Engine) Go() error {
	here, err := e.begin()
	if err != nil {
		return err
	}

	if len(here.Doors()) == 0 {
		return e.finish(types.Go, MsgNoDoors)
	}

	door, err := here.RetrieveDoor(e.qualifier)
	if err != nil {
		return err
	}

	if door.IsLocked() {
		if e.player.Keys() == 0 {
			return e.finish(types.Go, MsgNoKey)
		}
		if _, err := e.room(door.AdjacentRoom()); err != nil {
			return err
		}
		if err := here.SwitchDoorLock(door.Direction()); err != nil {
			return err
		}
		e.player.DecrementKeys()
		e.emit(types.EventDoorUnlocked, map[string]any{"room": here.ShortID(), "direction": door.Direction()})
		e.player.RegenerateHealth()
		return e.finish(types.Go, MsgUnlocked)
	}

	e.player.SetLocation(door.AdjacentRoom())
	e.emit(types.EventPlayerMoved, map[string]any{"from": here.ShortID(), "to": door.AdjacentRoom()})
	e.player.RegenerateHealth()
	return e.finish(types.Go, MsgWent+e.qualifier)
}

// Take picks up a key or the weapon named by the qualifier.
func (e *Engine) Take() error {
	here, err := e.begin()
	if err != nil {
		return err
	}

	if here.Keys() == 0 && len(here.Weapons()) == 0 {
		return e.finish(types.Take, MsgNoRoomItems)
	}
	if len(e.player.Weapons()) >= MaxWeapons {
		return e.finish(types.Take, MsgTooMany)
	}

	msg := MsgTookKey
	if e.qualifier == KeyQualifier {
		e.player.IncrementKeys()
		here.DecrementKeys()
		e.emit(types.EventKeyTaken, map[string]any{"room": here.ShortID()})
	} else {
		w, err := here.RetrieveWeapon(e.qualifier)
		if err != nil {
			return err
		}
		if err := e.player.AddWeapon(w); err != nil {
			return err
		}
		if err := here.RemoveWeapon(w.Name()); err != nil {
			return err
		}
		e.emit(types.EventWeaponTaken, map[string]any{"room": here.ShortID(), "weapon": w.ShortID()})
		msg = MsgTook + e.qualifier
	}

	e.player.RegenerateHealth()
	return e.finish(types.Take, msg)
}

// Drop leaves a key or the weapon named by the qualifier in the current room.
func (e *Engine) Drop() error {
	here, err := e.begin()
	if err != nil {
		return err
	}

	if e.player.Keys() == 0 && len(e.player.Weapons()) == 0 {
		return e.finish(types.Drop, MsgNoPersonItems)
	}

	msg := MsgDroppedKey
	if e.qualifier == KeyQualifier {
		e.player.DecrementKeys()
		here.IncrementKeys()
		e.emit(types.EventKeyDropped, map[string]any{"room": here.ShortID()})
	} else {
		w, err := e.player.RetrieveWeapon(e.qualifier)
		if err != nil {
			return err
		}
		if err := here.AddWeapon(w); err != nil {
			return err
		}
		if err := e.player.RemoveWeapon(w.Name()); err != nil {
			return err
		}
		e.emit(types.EventWeaponDropped, map[string]any{"room": here.ShortID(), "weapon": w.ShortID()})
		msg = MsgDropped + e.qualifier
	}

	e.player.RegenerateHealth()
	return e.finish(types.Drop, msg)
}

// Fight runs the enemy named by the qualifier and the player against each
// other until one of them falls.
func (e *Engine) Fight() error {
	here, err := e.begin()
	if err != nil {
		return err
	}

	if len(here.Enemies()) == 0 {
		return e.finish(types.Fight, MsgNoEnemies)
	}

	enemy, err := here.RetrieveEnemy(e.qualifier)
	if err != nil {
		return err
	}

	rounds := e.melee(&enemy)
	if err := here.UpdateEnemy(enemy); err != nil {
		return err
	}
	e.log.Debug("fight resolved",
		"enemy", enemy.ShortID(),
		"rounds", rounds,
		"player_health", e.player.Health(),
		"enemy_health", enemy.Health())

	switch {
	case !e.player.IsAlive():
		e.emit(types.EventPlayerDefeated, map[string]any{"enemy": enemy.ShortID()})
		e.log.Info("player defeated", "room", here.ShortID(), "enemy", enemy.ShortID())
		return e.finish(types.Fight, MsgLose)

	case here.ShortID() == e.rooms[len(e.rooms)-1].ShortID():
		// The final enemy stays in the room at zero health.
		e.emit(types.EventEnemyDefeated, map[string]any{"enemy": enemy.ShortID()})
		e.emit(types.EventGameWon, map[string]any{"room": here.ShortID()})
		e.log.Info("dungeon cleared", "room", here.ShortID(), "enemy", enemy.ShortID())
		return e.finish(types.Fight, MsgWin)

	default:
		if err := here.RemoveEnemy(enemy.Name()); err != nil {
			return err
		}
		e.emit(types.EventEnemyDefeated, map[string]any{"enemy": enemy.ShortID()})
		return e.finish(types.Fight, MsgFought+e.qualifier)
	}
}

// begin clears the previous turn's events and resolves the player's room.
func (e *Engine) begin() (*world.Room, error) {
	e.events = nil
	return e.room(e.player.Location())
}

func (e *Engine) emit(eventType string, data map[string]any) {
	e.events = append(e.events, types.Event{Type: eventType, Data: data})
}

// finish records the verb's message. It always returns nil so verbs can end
// with it.
func (e *Engine) finish(action types.Action, msg string) error {
	e.message = msg
	attrs := []any{
		"action", string(action),
		"qualifier", e.qualifier,
		"message", msg,
		"room", e.player.Location(),
		"health", e.player.Health(),
	}
	if rng, ok := e.roller.(*RNG); ok {
		attrs = append(attrs, "rng_position", rng.Position())
	}
	e.log.Debug("turn", attrs...)
	return nil
}
