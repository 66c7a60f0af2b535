package tui

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/leonelquinteros/gotext"

	"github.com/nathoo/crawlcore/engine"
	"github.com/nathoo/crawlcore/engine/resolve"
	"github.com/nathoo/crawlcore/engine/world"
	"github.com/nathoo/crawlcore/types"
)

// dynamicGet translates keys only known at run time, such as action names.
var dynamicGet = gotext.Get

// chromeHeight is the number of rows below the turn log: message, buttons
// (3), sub-panel (up to 7) and the status bar.
const chromeHeight = 12

// Model is the Bubble Tea model for the crawl TUI.
type Model struct {
	engine *engine.Engine
	log    *slog.Logger
	keys   KeyMap

	viewport viewport.Model
	history  *History

	action  int              // selected button in types.Actions
	options []resolve.Option // open sub-panel; nil when closed
	option  int              // selected entry in options

	width    int
	height   int
	ready    bool
	quitting bool
}

// New creates a TUI model wired to the given engine and seeds the prompt.
func New(eng *engine.Engine, log *slog.Logger) Model {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	eng.SetMessage(engine.MsgPrompt)
	return Model{
		engine:  eng,
		log:     log,
		keys:    DefaultKeyMap(),
		history: NewHistory(200),
	}
}

// Run starts the Bubble Tea program.
func Run(eng *engine.Engine, log *slog.Logger) error {
	m := New(eng, log)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func (m Model) Init() tea.Cmd { return nil }

// Update handles key presses and window resizes.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		vpHeight := m.height - chromeHeight - roomHeight
		if vpHeight < 1 {
			vpHeight = 1
		}

		if !m.ready {
			m.viewport = viewport.New(m.width, vpHeight)
			m.viewport.KeyMap = viewportKeyMap()
			m.ready = true
		} else {
			m.viewport.Width = m.width
			m.viewport.Height = vpHeight
		}
		m.refreshViewport()
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case m.engine.GameOver():
			if key.Matches(msg, m.keys.Select, m.keys.Back) {
				m.quitting = true
				return m, tea.Quit
			}
			return m, nil

		case key.Matches(msg, m.keys.Left):
			m.move(-1)
			return m, nil

		case key.Matches(msg, m.keys.Right):
			m.move(1)
			return m, nil

		case key.Matches(msg, m.keys.Select):
			return m.selectCurrent(), nil

		case key.Matches(msg, m.keys.Back):
			if m.options != nil {
				m.options = nil
				m.option = 0
				return m, nil
			}
			m.quitting = true
			return m, tea.Quit
		}

		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	return m, nil
}

// move steps the selection of whichever row has focus, wrapping at both ends.
func (m *Model) move(delta int) {
	if m.options != nil {
		m.option = wrap(m.option+delta, len(m.options))
		return
	}
	m.action = wrap(m.action+delta, len(types.Actions))
}

func wrap(i, n int) int {
	return ((i % n) + n) % n
}

// Action returns the action of the selected button.
func (m Model) Action() types.Action { return types.Actions[m.action] }

// Options returns the open sub-panel entries, nil when the panel is closed.
func (m Model) Options() []resolve.Option { return m.options }

// selectCurrent opens the sub-panel for the selected action or, when the
// panel is open, runs the action with the selected target. An action with
// no targets runs straight away so the engine can explain why.
func (m Model) selectCurrent() Model {
	action := m.Action()

	if m.options != nil {
		qualifier := m.options[m.option].Qualifier
		m.options = nil
		m.option = 0
		return m.execute(action, qualifier)
	}

	room, err := m.engine.CurrentRoom()
	if err != nil {
		return m.execute(action, "")
	}
	opts := resolve.Options(action, m.engine.Player(), room)
	if len(opts) == 0 {
		return m.execute(action, "")
	}
	m.options = opts
	m.option = 0
	return m
}

func (m Model) execute(action types.Action, qualifier string) Model {
	result, err := m.engine.Step(types.Command{Action: action, Qualifier: qualifier})
	if err != nil {
		m.log.Warn("command failed", "action", string(action), "qualifier", qualifier, "error", err)
	}
	m.history.Push(Entry{Action: action, Qualifier: qualifier, Message: result.Message, Err: err})
	m.refreshViewport()
	return m
}

// refreshViewport re-renders the turn log at the current width.
func (m *Model) refreshViewport() {
	if !m.ready {
		return
	}

	width := m.width
	if width < 10 {
		width = 10
	}

	var lines []string
	for _, e := range m.history.Entries() {
		lines = append(lines, styleInfo.Render(wordWrap("> "+strings.TrimSpace(string(e.Action)+" "+e.Qualifier), width)))
		if e.Err != nil {
			lines = append(lines, styledSystemMsg(wordWrap(gotext.Get("ERROR", e.Err), width)))
			continue
		}
		lines = append(lines, renderMessage(wordWrap(e.Message, width)))
	}

	m.viewport.SetContent(strings.Join(lines, "\n"))
	m.viewport.GotoBottom()
}

// wordWrap wraps text to fit within the given width, breaking at word
// boundaries.
func wordWrap(text string, width int) string {
	if width <= 0 || len(text) <= width {
		return text
	}

	var result strings.Builder
	lineLen := 0
	for i, word := range strings.Fields(text) {
		switch {
		case i == 0:
			lineLen = len(word)
		case lineLen+1+len(word) > width:
			result.WriteString("\n")
			lineLen = len(word)
		default:
			result.WriteString(" ")
			lineLen += 1 + len(word)
		}
		result.WriteString(word)
	}
	return result.String()
}

// roomHeight is the rendered height of the room box.
const roomHeight = 7

// View renders the full TUI layout.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return gotext.Get("LOADING")
	}

	sections := []string{m.viewport.View(), m.renderRoom()}
	if m.engine.GameOver() {
		sections = append(sections, m.renderGameOver())
	} else {
		sections = append(sections, renderMessage(m.engine.Message()), m.renderButtons())
		if m.options != nil {
			sections = append(sections, m.renderPanel())
		}
	}
	sections = append(sections, m.renderStatusBar())
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderRoom() string {
	room, err := m.engine.CurrentRoom()
	if err != nil {
		return styledSystemMsg(gotext.Get("ERROR", err))
	}

	var doors, enemies []string
	for _, d := range room.Doors() {
		s := d.Direction() + "→" + d.AdjacentRoom()
		if d.IsLocked() {
			s += "*"
		}
		doors = append(doors, s)
	}
	for _, e := range room.Enemies() {
		enemies = append(enemies, fmt.Sprintf("%s(%d)", e.ShortID(), e.Health()))
	}

	body := []string{
		styleRoomTitle.Render(room.Name()),
		gotext.Get("PANEL_DOORS", listOrDash(doors)),
		gotext.Get("PANEL_ENEMIES", listOrDash(enemies)),
		gotext.Get("PANEL_WEAPONS", listOrDash(weaponNames(room.Weapons()))),
		gotext.Get("PANEL_KEYS", room.Keys()),
	}
	return styleRoom.Render(strings.Join(body, "\n"))
}

func (m Model) renderButtons() string {
	buttons := make([]string, len(types.Actions))
	for i, a := range types.Actions {
		style := styleButton
		if i == m.action && m.options == nil {
			style = styleButtonActive
		}
		buttons[i] = style.Render(dynamicGet(string(a)))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, buttons...)
}

func (m Model) renderPanel() string {
	labels := make([]string, len(m.options))
	for i, o := range m.options {
		if i == m.option {
			labels[i] = styleButtonActive.Render(o.Qualifier)
		} else {
			labels[i] = styleButton.Render(o.Qualifier)
		}
	}
	row := lipgloss.JoinHorizontal(lipgloss.Top, labels...)
	info := styleInfo.Render(strings.Join(m.options[m.option].Info, "  "))
	return stylePanel.Render(lipgloss.JoinVertical(lipgloss.Left, row, info))
}

func (m Model) renderGameOver() string {
	msg := m.engine.Message()
	banner := styleBanner.BorderForeground(lipgloss.Color("196"))
	if msg == engine.MsgWin {
		banner = styleBanner.BorderForeground(lipgloss.Color("220"))
	}
	return banner.Render(renderMessage(msg) + "\n\n" + styleInfo.Render(gotext.Get("EXIT_HINT")))
}

func listOrDash(items []string) string {
	if len(items) == 0 {
		return "-"
	}
	return strings.Join(items, " ")
}

// weaponNames lists the short ids of weapons.
func weaponNames(weapons []world.Weapon) []string {
	names := make([]string, len(weapons))
	for i, w := range weapons {
		names[i] = w.ShortID()
	}
	return names
}
