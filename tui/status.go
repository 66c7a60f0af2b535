package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/leonelquinteros/gotext"

	"github.com/nathoo/crawlcore/engine"
)

// renderStatusBar produces a full-width inverted status line showing the
// current room, health, keys and carried weapons.
func (m Model) renderStatusBar() string {
	p := m.engine.Player()

	left := " " + p.Location()
	if room, err := m.engine.CurrentRoom(); err == nil {
		left = fmt.Sprintf(" %s [%s]", room.Name(), room.ShortID())
	}

	weapons := p.Weapons()
	right := fmt.Sprintf("%s %d/%d | %s %d | %s %d/%d ",
		gotext.Get("STATUS_HP"), p.Health(), p.MaxHealth(),
		gotext.Get("STATUS_KEYS"), p.Keys(),
		gotext.Get("STATUS_WEAPONS"), len(weapons), engine.MaxWeapons)

	// Show weapon names if they fit.
	if len(weapons) > 0 {
		candidate := strings.Join(weaponNames(weapons), ",") + " | " + right
		if lipgloss.Width(left)+lipgloss.Width(candidate)+2 < m.width {
			right = candidate
		}
	}

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}

	bar := left + strings.Repeat(" ", gap) + right
	return styleStatusBar.Width(m.width).Render(bar)
}
