package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/bureaucrat/internal/state"
)

var helpSectionTitles = []string{"Levels", "Cases", "Scrolling", "General"}

// helpOverlay lists every key binding grouped by section.
type helpOverlay struct {
	keys   keyMap
	glyphs glyphSet
}

func (h helpOverlay) View(theme Theme, width, height int) string {
	return placeOverlay(theme, h.glyphs, h.layout(theme).view, width, height)
}

func (h helpOverlay) HitTest(x, y, width, height int) state.ClickTarget {
	return h.layout(Theme{}).hitTest(x, y, width, height)
}

func (h helpOverlay) layout(theme Theme) panelLayout {
	styles := theme.Styles()
	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Warning)).
		Width(12)

	var b strings.Builder
	b.WriteString(styles.Heading.Render("Keyboard Shortcuts"))
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render(strings.Repeat("-", 30)))
	b.WriteString("\n")

	for i, group := range h.keys.FullHelp() {
		title := ""
		if i < len(helpSectionTitles) {
			title = helpSectionTitles[i]
		}
		b.WriteString("\n")
		b.WriteString(styles.SecondaryText.Bold(true).Render(title))
		for _, binding := range group {
			b.WriteString("\n")
			b.WriteString(renderBinding(binding, keyStyle, styles.Text))
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(styles.MutedText.Render("Themes: " + strings.Join(ThemeNames(), ", ")))
	b.WriteString("\n\n")
	b.WriteString(styles.FaintText.Render("Press any key to close"))

	panel := panelStyle(theme, 40).Render(b.String())
	return panelLayout{
		view:   panel,
		width:  lipgloss.Width(panel),
		height: lipgloss.Height(panel),
	}
}

func renderBinding(b key.Binding, keyStyle, descStyle lipgloss.Style) string {
	h := b.Help()
	return keyStyle.Render(h.Key) + descStyle.Render(h.Desc)
}
