// Package cli provides line-oriented terminal I/O, output formatting and
// meta-command dispatch for the crawl engine.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/gookit/color"
	"github.com/leonelquinteros/gotext"

	"github.com/nathoo/crawlcore/engine"
	"github.com/nathoo/crawlcore/engine/parser"
	"github.com/nathoo/crawlcore/engine/resolve"
	"github.com/nathoo/crawlcore/engine/world"
	"github.com/nathoo/crawlcore/types"
)

var (
	colorTitle   = color.Style{color.FgCyan, color.OpBold}
	colorAction  = color.Style{color.FgMagenta}
	colorDenied  = color.Style{color.FgRed, color.OpBold}
	colorItem    = color.Style{color.FgGreen, color.OpBold}
	colorSubtle  = color.Style{color.FgGray}
	colorVictory = color.Style{color.FgYellow, color.OpBold}
)

// denied are the engine messages that report a refused action.
var denied = map[string]bool{
	engine.MsgNoDoors:       true,
	engine.MsgNoKey:         true,
	engine.MsgNoRoomItems:   true,
	engine.MsgTooMany:       true,
	engine.MsgNoPersonItems: true,
	engine.MsgNoEnemies:     true,
	engine.MsgLose:          true,
}

// CLI handles terminal interaction with the player.
type CLI struct {
	Engine    *engine.Engine
	In        io.Reader
	Out       io.Writer
	Log       *slog.Logger
	Trace     bool
	EchoInput bool   // echo each input line after the prompt (for script playback)
	Color     bool   // style output with ANSI colours
	lastCmd   string // for "again"/"g" repeat
}

// New creates a CLI wired to the given engine.
func New(eng *engine.Engine) *CLI {
	return &CLI{
		Engine: eng,
		In:     os.Stdin,
		Out:    os.Stdout,
		Log:    slog.New(slog.DiscardHandler),
	}
}

// Run starts the game loop. It shows the prompt message, describes the
// starting room, then loops: prompt → input → dispatch → output. It returns
// when input ends, on /quit, or when the game is over.
func (c *CLI) Run() {
	c.Engine.SetMessage(engine.MsgPrompt)
	c.printMessage(c.Engine.Message())
	c.describeRoom()

	scanner := bufio.NewScanner(c.In)
	for {
		c.print("> ")
		if !scanner.Scan() {
			c.printLine("")
			break
		}
		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}
		// Skip comment lines (for script files).
		if strings.HasPrefix(input, "#") {
			continue
		}
		if c.EchoInput {
			c.printLine(input)
		}

		// Meta-commands start with '/'.
		if strings.HasPrefix(input, "/") {
			if c.handleMeta(input) {
				return // /quit
			}
			continue
		}

		// "again" / "g" repeats the last game command.
		lower := strings.ToLower(input)
		if lower == "again" || lower == "g" {
			if c.lastCmd == "" {
				c.printLine(gotext.Get("NOTHING_TO_REPEAT"))
				continue
			}
			input = c.lastCmd
		} else {
			c.lastCmd = input
		}

		c.handleInput(input)

		if c.Engine.GameOver() {
			c.printGameOver()
			return
		}
	}
}

// handleInput dispatches one typed game command.
func (c *CLI) handleInput(input string) {
	intent := parser.Parse(input)

	switch intent.Verb {
	case "look":
		c.describeRoom()
		return
	case "inventory":
		c.describePlayer()
		return
	case "help":
		c.cmdHelp()
		return
	}

	cmd, ok := parser.Command(intent)
	if !ok {
		c.printLine(gotext.Get("UNKNOWN_VERB", input))
		return
	}

	cmd, ok = c.qualify(cmd)
	if !ok {
		return
	}

	from := c.Engine.Player().Location()
	result, err := c.Engine.Step(cmd)
	if err != nil {
		c.Log.Warn("command failed", "action", string(cmd.Action), "qualifier", cmd.Qualifier, "error", err)
		c.printSystem(gotext.Get("ERROR", err))
		return
	}
	c.printMessage(result.Message)

	if c.Trace {
		c.printTrace(cmd, result)
	}
	if c.Engine.Player().Location() != from {
		c.describeRoom()
	}
}

// qualify resolves the typed qualifier against the current options. With no
// options the engine is asked anyway so it can say why.
func (c *CLI) qualify(cmd types.Command) (types.Command, bool) {
	room, err := c.Engine.CurrentRoom()
	if err != nil {
		c.printSystem(gotext.Get("ERROR", err))
		return cmd, false
	}

	opts := resolve.Options(cmd.Action, c.Engine.Player(), room)
	if len(opts) == 0 {
		return cmd, true
	}

	if cmd.Qualifier == "" {
		if len(opts) == 1 {
			cmd.Qualifier = opts[0].Qualifier
			return cmd, true
		}
		c.printLine(gotext.Get("ACTION_WHAT", cmd.Action, strings.Join(qualifiers(opts), ", ")))
		return cmd, false
	}

	opt, err := resolve.Match(opts, cmd.Qualifier)
	if err != nil {
		c.printLine(err.Error())
		return cmd, false
	}
	cmd.Qualifier = opt.Qualifier
	return cmd, true
}

// handleMeta dispatches meta-commands. Returns true if the game should exit.
func (c *CLI) handleMeta(input string) bool {
	parts := strings.Fields(input)
	cmd := parts[0]

	switch cmd {
	case "/quit", "/exit":
		c.printSystem(gotext.Get("GOODBYE"))
		return true

	case "/help":
		c.cmdHelp()

	case "/map":
		c.cmdMap()

	case "/trace":
		c.Trace = !c.Trace
		if c.Trace {
			c.printSystem(gotext.Get("TRACE_ON"))
		} else {
			c.printSystem(gotext.Get("TRACE_OFF"))
		}

	default:
		c.printSystem(gotext.Get("UNKNOWN_META", cmd))
	}

	return false
}

func (c *CLI) cmdHelp() {
	help := []string{
		gotext.Get("HELP_SYSTEM"),
		gotext.Get("HELP_QUIT"),
		gotext.Get("HELP_HELP"),
		gotext.Get("HELP_MAP"),
		gotext.Get("HELP_TRACE"),
		"",
		gotext.Get("HELP_GAME"),
		gotext.Get("HELP_LOOK"),
		gotext.Get("HELP_INVENTORY"),
		gotext.Get("HELP_FIGHT"),
		gotext.Get("HELP_TAKE"),
		gotext.Get("HELP_DROP"),
		gotext.Get("HELP_GO"),
		gotext.Get("HELP_AGAIN"),
	}
	for _, line := range help {
		c.printLine(line)
	}
}

func (c *CLI) cmdMap() {
	here := c.Engine.Player().Location()
	for _, r := range c.Engine.Rooms() {
		marker := "  "
		if r.ShortID() == here {
			marker = "* "
		}
		var doors []string
		for _, d := range r.Doors() {
			doors = append(doors, doorText(d))
		}
		c.printLine(fmt.Sprintf("%s%-5s %s", marker, r.ShortID(), strings.Join(doors, ", ")))
	}
}

func (c *CLI) describeRoom() {
	room, err := c.Engine.CurrentRoom()
	if err != nil {
		c.printSystem(gotext.Get("ERROR", err))
		return
	}

	c.printLine(c.style(colorTitle, fmt.Sprintf("== %s (%s) ==", room.Name(), room.ShortID())))

	if doors := room.Doors(); len(doors) > 0 {
		var parts []string
		for _, d := range doors {
			parts = append(parts, doorText(d))
		}
		c.printLine(gotext.Get("ROOM_DOORS", strings.Join(parts, ", ")))
	}
	if enemies := room.Enemies(); len(enemies) > 0 {
		var parts []string
		for _, e := range enemies {
			parts = append(parts, fmt.Sprintf("%s [%s] HP %d", e.Name(), e.ShortID(), e.Health()))
		}
		c.printLine(c.style(colorDenied, gotext.Get("ROOM_ENEMIES", strings.Join(parts, ", "))))
	}
	if weapons := room.Weapons(); len(weapons) > 0 {
		c.printLine(c.style(colorItem, gotext.Get("WEAPON_LIST", weaponsText(weapons))))
	}
	if room.Keys() > 0 {
		c.printLine(c.style(colorItem, gotext.Get("KEY_COUNT", room.Keys())))
	}
}

func (c *CLI) describePlayer() {
	p := c.Engine.Player()
	c.printLine(gotext.Get("PLAYER_HEALTH", p.Health(), p.MaxHealth()))
	c.printLine(gotext.Get("KEY_COUNT", p.Keys()))
	if weapons := p.Weapons(); len(weapons) > 0 {
		c.printLine(gotext.Get("WEAPON_LIST", weaponsText(weapons)))
	} else {
		c.printLine(gotext.Get("UNARMED"))
	}
}

func (c *CLI) printTrace(cmd types.Command, result types.Result) {
	c.printSystem(fmt.Sprintf("[trace] %s %s", cmd.Action, cmd.Qualifier))
	for _, e := range result.Events {
		c.printLine(c.style(colorSubtle, fmt.Sprintf("[trace]   %s %s", e.Type, formatData(e.Data))))
	}
}

func (c *CLI) printMessage(msg string) {
	switch {
	case msg == engine.MsgWin:
		c.printLine(c.style(colorVictory, msg))
	case denied[msg]:
		c.printLine(c.style(colorDenied, msg))
	default:
		c.printLine(c.style(colorAction, msg))
	}
}

func (c *CLI) printGameOver() {
	c.printLine("")
	c.printLine(c.style(colorVictory, gotext.Get("GAME_OVER")))
	c.describePlayer()
}

func (c *CLI) style(s color.Style, text string) string {
	if !c.Color {
		return text
	}
	return s.Sprint(text)
}

func (c *CLI) printLine(text string) {
	fmt.Fprintln(c.Out, text)
}

func (c *CLI) print(text string) {
	fmt.Fprint(c.Out, text)
}

func (c *CLI) printSystem(text string) {
	fmt.Fprintf(c.Out, "[%s]\n", text)
}

func qualifiers(opts []resolve.Option) []string {
	out := make([]string, len(opts))
	for i, o := range opts {
		out[i] = o.Qualifier
	}
	return out
}

func doorText(d world.Door) string {
	s := d.Direction() + " → " + d.AdjacentRoom()
	if d.IsLocked() {
		s += " " + gotext.Get("DOOR_LOCKED")
	}
	return s
}

func weaponsText(weapons []world.Weapon) string {
	parts := make([]string, len(weapons))
	for i, w := range weapons {
		parts[i] = fmt.Sprintf("%s [%s] STR %d CRIT %d", w.Name(), w.ShortID(), w.Strength(), w.CriticalChance())
	}
	return strings.Join(parts, ", ")
}

// formatData renders event data with sorted keys for stable output.
func formatData(data map[string]any) string {
	keys := make([]string, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = k + "=" + valueText(data[k])
	}
	return strings.Join(parts, " ")
}

func valueText(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case uint:
		return strconv.FormatUint(uint64(val), 10)
	default:
		return fmt.Sprint(val)
	}
}
