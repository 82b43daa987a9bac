package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/bureaucrat/internal/cases"
	"github.com/five82/bureaucrat/internal/content"
	"github.com/five82/bureaucrat/internal/state"
)

// Modal is the interface for overlays drawn centred over a dimmed backdrop.
// HitTest classifies a screen click against the overlay's panel.
type Modal interface {
	View(theme Theme, width, height int) string
	HitTest(x, y, width, height int) state.ClickTarget
}

// panelLayout is a rendered overlay panel and the position of its dismiss
// control relative to the panel's top-left corner.
type panelLayout struct {
	view     string
	width    int
	height   int
	closeRow int
	closeX   int
	closeW   int
}

// origin returns the top-left corner of the panel centred on a screen. A
// panel taller than the screen keeps only its last rows on screen, so its
// top sits above row 0.
func (p panelLayout) origin(width, height int) (int, int) {
	y := (height - p.height) / 2
	if p.height > height {
		y = height - p.height
	}
	return max(0, (width-p.width)/2), y
}

func (p panelLayout) hitTest(x, y, width, height int) state.ClickTarget {
	x0, y0 := p.origin(width, height)
	if x < x0 || x >= x0+p.width || y < y0 || y >= y0+p.height {
		return state.TargetBackdrop
	}
	if p.closeW > 0 && y == y0+p.closeRow && x >= x0+p.closeX && x < x0+p.closeX+p.closeW {
		return state.TargetDismiss
	}
	return state.TargetPanel
}

func placeOverlay(theme Theme, glyphs glyphSet, panel string, width, height int) string {
	return lipgloss.Place(
		width,
		height,
		lipgloss.Center,
		lipgloss.Center,
		panel,
		lipgloss.WithWhitespaceChars(glyphs.Shade),
		lipgloss.WithWhitespaceForeground(lipgloss.Color(theme.BorderMuted)),
	)
}

func panelStyle(theme Theme, width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.BorderFocus)).
		Padding(1, 2).
		Width(width)
}

// panelChrome is the number of case panel rows outside the body: borders,
// vertical padding, the gap line and the close button.
const panelChrome = 6

// clipLines keeps at most n lines of s, replacing the last kept line with
// more when anything was cut. n is at least 1.
func clipLines(s string, n int, more string) string {
	n = max(1, n)
	lines := strings.Split(s, "\n")
	if len(lines) <= n {
		return s
	}
	lines = lines[:n]
	lines[n-1] = more
	return strings.Join(lines, "\n")
}

// caseDetail is the detail overlay for a selected case.
type caseDetail struct {
	rec    cases.Record
	labels content.CaseLabels
	glyphs glyphSet
}

func (d caseDetail) View(theme Theme, width, height int) string {
	return placeOverlay(theme, d.glyphs, d.layout(theme, width, height).view, width, height)
}

// HitTest measures the panel without colors; the geometry does not depend
// on the theme.
func (d caseDetail) HitTest(x, y, width, height int) state.ClickTarget {
	return d.layout(Theme{}, width, height).hitTest(x, y, width, height)
}

// layout renders the panel for a screen. The body is cut to fit the screen
// height so the close button always stays on screen.
func (d caseDetail) layout(theme Theme, width, height int) panelLayout {
	styles := theme.Styles()
	pw := clamp(width-4, 24, overlayMaxWidth)
	inner := pw - 4

	parts := []string{styles.Heading.Width(inner).Render(d.rec.DisplayTitle())}
	if d.rec.Organization != "" {
		parts = append(parts, styles.MutedText.Width(inner).Render(d.rec.Organization))
	}
	if d.rec.Description != "" {
		parts = append(parts, "", styles.Text.Width(inner).Render(d.rec.Description))
	}
	parts = append(parts, "", d.facts(styles))
	top := clipLines(lipgloss.JoinVertical(lipgloss.Left, parts...), height-panelChrome, styles.FaintText.Render("..."))

	button := styles.Button.Render(d.glyphs.Close + " " + d.labels.Close)
	panel := panelStyle(theme, pw).Render(top + "\n\n" + button)

	return panelLayout{
		view:     panel,
		width:    lipgloss.Width(panel),
		height:   lipgloss.Height(panel),
		closeRow: 2 + lipgloss.Height(top) + 1,
		closeX:   3,
		closeW:   lipgloss.Width(button),
	}
}

func (d caseDetail) facts(styles Styles) string {
	status := d.rec.Status
	if status == "" {
		status = "-"
	}
	rows := [][2]string{
		{d.labels.Year, strconv.Itoa(d.rec.ImplementationYear)},
		{d.labels.Rules, d.rec.RulesLabel()},
		{d.labels.Efficiency, d.rec.EfficiencyLabel()},
		{d.labels.Staff, strconv.Itoa(d.rec.StaffCount)},
		{d.labels.Duration, fmt.Sprintf("%d %s", d.rec.DurationMonths, d.labels.DurationUnit)},
		{d.labels.Status, status},
	}

	labelW := 0
	for _, r := range rows {
		labelW = max(labelW, lipgloss.Width(r[0]))
	}
	lines := make([]string, len(rows))
	for i, r := range rows {
		lines[i] = styles.MutedText.Width(labelW+2).Render(r[0]) + styles.Text.Render(r[1])
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
