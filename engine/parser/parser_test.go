package parser

import (
	"testing"

	"github.com/nathoo/crawlcore/types"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  types.Intent
	}{
		// Empty / whitespace
		{
			name:  "empty string",
			input: "",
			want:  types.Intent{},
		},
		{
			name:  "whitespace only",
			input: "   ",
			want:  types.Intent{},
		},

		// Basic verbs (no object)
		{
			name:  "look",
			input: "look",
			want:  types.Intent{Verb: "look"},
		},
		{
			name:  "look around",
			input: "look around",
			want:  types.Intent{Verb: "look"},
		},
		{
			name:  "inventory",
			input: "inventory",
			want:  types.Intent{Verb: "inventory"},
		},

		// Verb aliases
		{
			name:  "l → look",
			input: "l",
			want:  types.Intent{Verb: "look"},
		},
		{
			name:  "i → inventory",
			input: "i",
			want:  types.Intent{Verb: "inventory"},
		},
		{
			name:  "? → help",
			input: "?",
			want:  types.Intent{Verb: "help"},
		},
		{
			name:  "get key → take key",
			input: "get key",
			want:  types.Intent{Verb: "take", Object: "key"},
		},
		{
			name:  "attack blob → fight blob",
			input: "attack blob",
			want:  types.Intent{Verb: "fight", Object: "blob"},
		},
		{
			name:  "discard bow → drop bow",
			input: "discard bow",
			want:  types.Intent{Verb: "drop", Object: "bow"},
		},

		// Direction shortcuts
		{
			name:  "u → go up",
			input: "u",
			want:  types.Intent{Verb: "go", Object: "up"},
		},
		{
			name:  "d → go down",
			input: "d",
			want:  types.Intent{Verb: "go", Object: "down"},
		},
		{
			name:  "r → go right",
			input: "r",
			want:  types.Intent{Verb: "go", Object: "right"},
		},
		{
			name:  "left → go left",
			input: "left",
			want:  types.Intent{Verb: "go", Object: "left"},
		},
		{
			name:  "n → go north",
			input: "n",
			want:  types.Intent{Verb: "go", Object: "north"},
		},

		// Explicit go
		{
			name:  "go up",
			input: "go up",
			want:  types.Intent{Verb: "go", Object: "up"},
		},
		{
			name:  "go u",
			input: "go u",
			want:  types.Intent{Verb: "go", Object: "up"},
		},
		{
			name:  "walk through left",
			input: "walk through left",
			want:  types.Intent{Verb: "go", Object: "left"},
		},

		// Multi-word verbs and articles
		{
			name:  "pick up the key",
			input: "pick up the key",
			want:  types.Intent{Verb: "take", Object: "key"},
		},
		{
			name:  "put down a sword",
			input: "put down a sword",
			want:  types.Intent{Verb: "drop", Object: "sword"},
		},
		{
			name:  "fight the blob",
			input: "fight the blob",
			want:  types.Intent{Verb: "fight", Object: "blob"},
		},

		// Case and spacing
		{
			name:  "upper case",
			input: "TAKE SWORD",
			want:  types.Intent{Verb: "take", Object: "sword"},
		},
		{
			name:  "extra spaces",
			input: "  fight    blob  ",
			want:  types.Intent{Verb: "fight", Object: "blob"},
		},

		// Unknown verbs pass through
		{
			name:  "unknown verb",
			input: "dance wildly",
			want:  types.Intent{Verb: "dance", Object: "wildly"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.input)
			if got != tt.want {
				t.Errorf("Parse(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestCommand(t *testing.T) {
	tests := []struct {
		input  string
		want   types.Command
		wantOK bool
	}{
		{"fight blob", types.Command{Action: types.Fight, Qualifier: "BLOB"}, true},
		{"take key", types.Command{Action: types.Take, Qualifier: "KEY"}, true},
		{"drop sword", types.Command{Action: types.Drop, Qualifier: "SWORD"}, true},
		{"u", types.Command{Action: types.Go, Qualifier: "UP"}, true},
		{"take", types.Command{Action: types.Take}, true},
		{"look", types.Command{}, false},
		{"", types.Command{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := Command(Parse(tt.input))
			if ok != tt.wantOK {
				t.Fatalf("Command(%q) ok = %v, want %v", tt.input, ok, tt.wantOK)
			}
			if got != tt.want {
				t.Errorf("Command(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}
