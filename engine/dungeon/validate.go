package dungeon

import (
	"fmt"
	"strings"

	"github.com/zyedidia/generic/mapset"

	"github.com/nathoo/crawlcore/engine/world"
)

// ValidationError collects all validation errors and warnings.
type ValidationError struct {
	Errors   []string
	Warnings []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed with %d error(s):\n  %s",
		len(e.Errors), strings.Join(e.Errors, "\n  "))
}

// Validate checks a parsed dungeon for referential integrity. Duplicate room
// ids and doors leading nowhere are errors; rooms that cannot be reached
// from the first room are warnings. Warnings are returned whether or not
// err is nil; err is a *ValidationError.
func Validate(rooms []*world.Room) (warnings []string, err error) {
	ve := &ValidationError{}

	if len(rooms) == 0 {
		ve.Errors = append(ve.Errors, "dungeon has no rooms")
		return nil, ve
	}

	ids := mapset.New[string]()
	for _, r := range rooms {
		if ids.Has(r.ShortID()) {
			ve.Errors = append(ve.Errors, fmt.Sprintf("duplicate room id %q", r.ShortID()))
			continue
		}
		ids.Put(r.ShortID())
	}

	for _, r := range rooms {
		for _, d := range r.Doors() {
			if !ids.Has(d.AdjacentRoom()) {
				ve.Errors = append(ve.Errors, fmt.Sprintf(
					"room %q door %q points to undefined room %q",
					r.ShortID(), d.Direction(), d.AdjacentRoom()))
			}
		}
	}

	reachable := Reachable(rooms, rooms[0].ShortID())
	for _, r := range rooms {
		if !reachable.Has(r.ShortID()) {
			ve.Warnings = append(ve.Warnings, fmt.Sprintf(
				"room %q is unreachable from %q", r.ShortID(), rooms[0].ShortID()))
		}
	}

	if len(ve.Errors) > 0 {
		return ve.Warnings, ve
	}
	return ve.Warnings, nil
}

// Reachable returns the ids of every room reachable from start through any
// door, locked or not. Doors to unknown rooms are ignored.
func Reachable(rooms []*world.Room, start string) mapset.Set[string] {
	byID := make(map[string]*world.Room, len(rooms))
	for _, r := range rooms {
		if _, ok := byID[r.ShortID()]; !ok {
			byID[r.ShortID()] = r
		}
	}

	seen := mapset.New[string]()
	if _, ok := byID[start]; !ok {
		return seen
	}
	queue := []string{start}
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		if seen.Has(id) {
			continue
		}
		seen.Put(id)
		for _, d := range byID[id].Doors() {
			if _, ok := byID[d.AdjacentRoom()]; ok && !seen.Has(d.AdjacentRoom()) {
				queue = append(queue, d.AdjacentRoom())
			}
		}
	}
	return seen
}
