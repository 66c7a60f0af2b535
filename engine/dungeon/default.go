package dungeon

import (
	_ "embed"

	"github.com/nathoo/crawlcore/engine/world"
)

//go:embed default.txt
var defaultDungeon string

// Default parses the built-in dungeon. Its first room is the default
// player location and its last room is the throne.
func Default() ([]*world.Room, error) {
	return ParseString(defaultDungeon)
}
