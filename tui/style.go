package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/nathoo/crawlcore/engine"
)

// Styles used throughout the TUI.
var (
	styleStatusBar = lipgloss.NewStyle().
			Background(lipgloss.Color("236")).
			Foreground(lipgloss.Color("252")).
			Bold(true)

	styleRoom = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Padding(0, 1)

	styleRoomTitle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("81")).
			Bold(true)

	styleButton = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 2)

	styleButtonActive = styleButton.
				BorderForeground(lipgloss.Color("34")).
				Foreground(lipgloss.Color("34")).
				Bold(true)

	stylePanel = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("34")).
			Padding(0, 1)

	styleInfo = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243"))

	styleMessage = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255")).
			Bold(true)

	styleDenied = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	styleWin = lipgloss.NewStyle().
			Foreground(lipgloss.Color("220")).
			Bold(true)

	styleSystem = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243"))

	styleBanner = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			Padding(1, 4).
			Bold(true)
)

// messageKind identifies the type of an engine message for styling.
type messageKind int

const (
	kindNormal messageKind = iota
	kindDenied
	kindWin
	kindLose
)

// classifyMessage determines what kind of engine message this is.
func classifyMessage(msg string) messageKind {
	switch msg {
	case engine.MsgWin:
		return kindWin
	case engine.MsgLose:
		return kindLose
	case engine.MsgNoDoors, engine.MsgNoKey, engine.MsgNoRoomItems,
		engine.MsgTooMany, engine.MsgNoPersonItems, engine.MsgNoEnemies:
		return kindDenied
	default:
		return kindNormal
	}
}

// renderMessage applies the style for a message's kind.
func renderMessage(msg string) string {
	switch classifyMessage(msg) {
	case kindWin:
		return styleWin.Render(msg)
	case kindDenied, kindLose:
		return styleDenied.Render(msg)
	default:
		return styleMessage.Render(msg)
	}
}

// styledSystemMsg renders a system message in gray with brackets.
func styledSystemMsg(text string) string {
	return styleSystem.Render("[" + text + "]")
}
