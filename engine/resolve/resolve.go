// Package resolve derives the qualifiers each action can take in the
// player's current situation and maps typed names onto them.
package resolve

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/nathoo/crawlcore/engine/world"
	"github.com/nathoo/crawlcore/types"
)

// KeyQualifier selects a key for Take and Drop.
const KeyQualifier = "KEY"

// Option is one selectable target of an action.
type Option struct {
	Qualifier string   // passed to the engine
	Label     string   // display name
	Info      []string // detail lines for the selection panel
}

// AmbiguityError indicates multiple options matched a name.
type AmbiguityError struct {
	Name       string
	Candidates []string
}

func (e *AmbiguityError) Error() string {
	names := strings.Join(e.Candidates, ", ")
	return fmt.Sprintf("which %s? (%s)", e.Name, names)
}

// NotFoundError indicates no option matched a name.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("you don't see %q here", e.Name)
}

// Options lists the targets of action for a player standing in room, in
// room storage order. Keys come last and are offered once however many
// there are. An empty result means the engine should be asked anyway so it
// can report why nothing is possible.
func Options(action types.Action, player *world.Player, room *world.Room) []Option {
	var opts []Option
	switch action {
	case types.Fight:
		for _, e := range room.Enemies() {
			opts = append(opts, Option{
				Qualifier: e.ShortID(),
				Label:     e.Name(),
				Info: []string{
					"NAME: " + e.Name(),
					"HP: " + strconv.FormatUint(uint64(e.Health()), 10),
					"STR: " + strconv.FormatUint(uint64(e.Strength()), 10),
					"CRIT: " + strconv.FormatUint(uint64(e.CriticalChance()), 10),
				},
			})
		}

	case types.Take:
		opts = weaponOptions(room.Weapons())
		if room.Keys() > 0 {
			opts = append(opts, keyOption(room.Keys()))
		}

	case types.Drop:
		opts = weaponOptions(player.Weapons())
		if player.Keys() > 0 {
			opts = append(opts, keyOption(player.Keys()))
		}

	case types.Go:
		for _, d := range room.Doors() {
			opts = append(opts, Option{
				Qualifier: d.Direction(),
				Label:     d.Direction(),
				Info: []string{
					"ROOM: " + d.AdjacentRoom(),
					"LOCKED: " + strings.ToUpper(strconv.FormatBool(d.IsLocked())),
				},
			})
		}
	}
	return opts
}

func weaponOptions(weapons []world.Weapon) []Option {
	opts := make([]Option, 0, len(weapons)+1)
	for _, w := range weapons {
		opts = append(opts, Option{
			Qualifier: w.ShortID(),
			Label:     w.Name(),
			Info: []string{
				"NAME: " + w.Name(),
				"STR: " + strconv.FormatUint(uint64(w.Strength()), 10),
				"CRIT: " + strconv.FormatUint(uint64(w.CriticalChance()), 10),
			},
		})
	}
	return opts
}

func keyOption(count uint) Option {
	return Option{
		Qualifier: KeyQualifier,
		Label:     KeyQualifier,
		Info:      []string{"COUNT: " + strconv.FormatUint(uint64(count), 10)},
	}
}

// Match maps a typed name onto one of opts, case-insensitively. An exact
// qualifier or label wins outright; otherwise a unique qualifier or label
// prefix is accepted.
func Match(opts []Option, name string) (Option, error) {
	query := strings.ToUpper(strings.Join(strings.Fields(name), ""))
	if query == "" {
		return Option{}, &NotFoundError{Name: name}
	}

	for _, o := range opts {
		if o.Qualifier == query || strings.ToUpper(o.Label) == query {
			return o, nil
		}
	}

	var matches []Option
	for _, o := range opts {
		if strings.HasPrefix(o.Qualifier, query) || strings.HasPrefix(strings.ToUpper(o.Label), query) {
			matches = append(matches, o)
		}
	}

	switch len(matches) {
	case 0:
		return Option{}, &NotFoundError{Name: name}
	case 1:
		return matches[0], nil
	default:
		candidates := make([]string, len(matches))
		for i, m := range matches {
			candidates[i] = m.Qualifier
		}
		return Option{}, &AmbiguityError{Name: name, Candidates: candidates}
	}
}
