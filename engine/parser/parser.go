// Package parser converts typed command strings into Intent structs.
// Intentionally dumb: no NLP, just pattern matching.
package parser

import (
	"strings"

	"github.com/nathoo/crawlcore/types"
)

var directionExpansions = map[string]string{
	"u": "up",
	"d": "down",
	"r": "right",
	"n": "north",
	"s": "south",
	"e": "east",
	"w": "west",
}

// Direction names that are standalone shortcuts for "go <dir>".
var directionNames = map[string]bool{
	"up": true, "down": true, "left": true, "right": true,
	"north": true, "south": true, "east": true, "west": true,
}

var verbAliases = map[string]string{
	// Look
	"l":       "look",
	"examine": "look",
	"x":       "look",

	// Movement
	"walk":  "go",
	"run":   "go",
	"move":  "go",
	"head":  "go",
	"enter": "go",
	"open":  "go",

	// Take
	"get":   "take",
	"grab":  "take",
	"carry": "take",

	// Drop
	"discard": "drop",
	"leave":   "drop",

	// Fight
	"attack": "fight",
	"hit":    "fight",
	"strike": "fight",
	"kill":   "fight",

	// Miscellaneous
	"inv": "inventory",
	"i":   "inventory",
	"?":   "help",
}

var articles = map[string]bool{
	"the": true, "a": true, "an": true,
}

// Parse converts a raw command string into an Intent.
func Parse(input string) types.Intent {
	input = strings.TrimSpace(input)
	if input == "" {
		return types.Intent{}
	}

	words := strings.Fields(strings.ToLower(input))

	// Direction shortcut: bare "u", "left", etc. → go <direction>
	if len(words) == 1 {
		if dir, ok := directionExpansions[words[0]]; ok {
			return types.Intent{Verb: "go", Object: dir}
		}
		if directionNames[words[0]] {
			return types.Intent{Verb: "go", Object: words[0]}
		}
	}

	words = expandMultiWordVerbs(words)

	if alias, ok := verbAliases[words[0]]; ok {
		words[0] = alias
	}

	verb := words[0]
	rest := stripArticles(words[1:])

	// "go u" expands like a bare direction.
	if verb == "go" && len(rest) == 1 {
		if dir, ok := directionExpansions[rest[0]]; ok {
			rest[0] = dir
		}
	}

	return types.Intent{
		Verb:   verb,
		Object: strings.Join(rest, " "),
	}
}

// Command maps an intent for one of the engine verbs onto a command.
// The qualifier is upper-cased to match dungeon identifiers. ok is false for
// any other verb.
func Command(intent types.Intent) (cmd types.Command, ok bool) {
	var action types.Action
	switch intent.Verb {
	case "fight":
		action = types.Fight
	case "take":
		action = types.Take
	case "drop":
		action = types.Drop
	case "go":
		action = types.Go
	default:
		return types.Command{}, false
	}
	return types.Command{Action: action, Qualifier: strings.ToUpper(intent.Object)}, true
}

// expandMultiWordVerbs handles "pick up", "put down", "look around".
func expandMultiWordVerbs(words []string) []string {
	if len(words) < 2 {
		return words
	}

	switch words[0] {
	case "look":
		if words[1] == "around" {
			return append([]string{"look"}, words[2:]...)
		}
	case "pick":
		if words[1] == "up" {
			return append([]string{"take"}, words[2:]...)
		}
	case "put", "set":
		if words[1] == "down" {
			return append([]string{"drop"}, words[2:]...)
		}
	case "go", "walk", "move":
		if words[1] == "through" || words[1] == "to" {
			return append([]string{"go"}, words[2:]...)
		}
	}

	return words
}

// stripArticles removes articles ("the", "a", "an") from the word list.
func stripArticles(words []string) []string {
	result := make([]string, 0, len(words))
	for _, w := range words {
		if !articles[w] {
			result = append(result, w)
		}
	}
	return result
}
