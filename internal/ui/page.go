package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/bureaucrat/internal/cases"
	"github.com/five82/bureaucrat/internal/content"
)

const cardGap = 2

// buildPage lays out every section of the landing page for a terminal of
// the given width. cursor is the highlighted case card, or -1 for none.
func (m Model) buildPage(termWidth, cursor int) *pageBuilder {
	cw := pageWidth(termWidth)
	b := newPageBuilder(pageMargin(termWidth))

	b.blank(1)
	b.block(m.renderHero(cw))

	b.blank(2)
	b.block(m.renderHeading(m.page.Architecture.Title, m.page.Architecture.Subtitle, cw))
	b.blank(1)
	m.layoutLevels(b, cw)

	b.blank(2)
	b.block(m.renderHeading(m.page.RuleGeneration.Title, m.page.RuleGeneration.Subtitle, cw))
	b.blank(1)
	m.layoutStages(b, cw)
	b.blank(1)
	b.block(m.renderKnowledgeBase(cw))

	b.blank(2)
	b.block(m.renderHeading(m.page.Features.Title, m.page.Features.Subtitle, cw))
	b.blank(1)
	m.layoutFeatures(b, cw)

	b.blank(2)
	b.block(m.renderHeading(m.page.Cases.Title, m.page.Cases.Subtitle, cw))
	b.blank(1)
	m.layoutGallery(b, cw, cursor)

	b.blank(2)
	b.block(m.renderCTA(cw))
	b.blank(1)

	return b
}

func centered(width int, s string) string {
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, s)
}

func (m Model) renderHero(cw int) string {
	styles := m.theme.Styles()
	hero := m.page.Hero

	lines := []string{
		centered(cw, styles.SecondaryText.Render(hero.Badge)),
		"",
		centered(cw, styles.Heading.Render(hero.Title)+" "+styles.PrimaryText.Render(hero.Highlight)),
		"",
		centered(cw, styles.MutedText.Width(min(cw, 70)).Align(lipgloss.Center).Render(oneLine(hero.Lead))),
	}

	if len(hero.Actions) > 0 {
		buttons := make([]string, 0, len(hero.Actions))
		for i, action := range hero.Actions {
			if i == 0 {
				buttons = append(buttons, styles.Button.Render(action))
			} else {
				buttons = append(buttons, "  ", styles.OutlineButton.Render(action))
			}
		}
		lines = append(lines, "", centered(cw, lipgloss.JoinHorizontal(lipgloss.Center, buttons...)))
	}

	return strings.Join(lines, "\n")
}

func (m Model) renderHeading(title, subtitle string, cw int) string {
	styles := m.theme.Styles()
	out := centered(cw, styles.Heading.Render(title))
	if subtitle != "" {
		out += "\n" + centered(cw, styles.MutedText.Render(subtitle))
	}
	return out
}

// layoutLevels renders one clickable row per architecture level with an
// arrow between consecutive levels. Only the active level fills its node dots.
func (m Model) layoutLevels(b *pageBuilder, cw int) {
	styles := m.theme.Styles()
	arch := m.page.Architecture
	active := m.selection.ActiveLevel()
	inner := cw - 4

	for i, lvl := range arch.Levels {
		if i > 0 {
			b.block(centered(cw, styles.FaintText.Render(m.glyphs.ArrowDown)))
		}

		isActive := i == active
		marker := " "
		dot := m.glyphs.EmptyDot
		nameStyle := styles.Text
		dotStyle := styles.FaintText
		card := styles.Card
		if isActive {
			marker = m.glyphs.Chevron
			dot = m.glyphs.Dot
			nameStyle = styles.PrimaryText
			dotStyle = styles.PrimaryText
			card = styles.FocusCard
		}

		left := nameStyle.Render(fmt.Sprintf("%s %d  %s", marker, i+1, lvl.Name))
		dots := make([]string, lvl.Nodes)
		for j := range dots {
			dots[j] = dot
		}
		right := dotStyle.Render(strings.Join(dots, " "))
		if arch.NodesLabel != "" && inner >= narrowWidth {
			right += styles.MutedText.Render(fmt.Sprintf("  %d %s", lvl.Nodes, arch.NodesLabel))
		}

		gap := max(1, inner-lipgloss.Width(left)-lipgloss.Width(right))
		row := card.Width(cw - 2).Render(left + strings.Repeat(" ", gap) + right)

		y := b.block(row)
		b.region(regionLevel, i, 0, y, lipgloss.Width(row), lipgloss.Height(row))
	}
}

func (m Model) stageIcon(status content.StageStatus) string {
	switch status {
	case content.StageCompleted:
		return m.glyphs.Check
	case content.StageActive:
		return m.spinner.View()
	default:
		return m.glyphs.Pending
	}
}

func (m Model) layoutStages(b *pageBuilder, cw int) {
	styles := m.theme.Styles()
	rg := m.page.RuleGeneration

	cols := 4
	switch {
	case cw < narrowWidth:
		cols = 1
	case cw < 80:
		cols = 2
	}
	cardW := (cw - cardGap*(cols-1)) / cols

	blocks := make([]string, 0, len(rg.Stages))
	for _, stage := range rg.Stages {
		icon := m.stageIcon(stage.Status)
		if stage.Status != content.StageActive {
			icon = lipgloss.NewStyle().Foreground(styles.StageColor(stage.Status)).Render(icon)
		}
		inner := lipgloss.JoinVertical(lipgloss.Left,
			icon+" "+styles.Heading.Render(truncate(stage.Name, cardW-6)),
			styles.SuccessText.Render(stage.RulesLabel())+" "+styles.MutedText.Render(truncate(rg.RulesLabel, cardW-8)),
		)
		blocks = append(blocks, styles.Card.
			BorderForeground(styles.StageColor(stage.Status)).
			Width(cardW-2).
			Render(inner))
	}

	for i, row := range chunk(blocks, cols) {
		if i > 0 {
			b.blank(1)
		}
		b.row(m.withStageArrows(row, styles), 0)
	}
}

// withStageArrows interleaves a chevron column between consecutive cards.
func (m Model) withStageArrows(row []string, styles Styles) []string {
	if len(row) == 0 {
		return row
	}
	arrow := styles.FaintText.
		Width(cardGap).
		Height(lipgloss.Height(row[0])).
		Align(lipgloss.Center, lipgloss.Center).
		Render(m.glyphs.Chevron)

	out := make([]string, 0, len(row)*2-1)
	for i, card := range row {
		if i > 0 {
			out = append(out, arrow)
		}
		out = append(out, card)
	}
	return out
}

func (m Model) renderKnowledgeBase(cw int) string {
	styles := m.theme.Styles()
	kb := m.page.RuleGeneration.KnowledgeBase
	inner := cw - 4

	parts := []string{
		styles.PrimaryText.Render(m.glyphs.icon("Database")) + " " + styles.Heading.Render(kb.Title),
		"",
		styles.MutedText.Width(inner).Render(oneLine(kb.Body)),
	}
	if len(kb.Counters) > 0 {
		counters := make([]string, len(kb.Counters))
		for i, c := range kb.Counters {
			counters[i] = styles.SecondaryText.Render(c)
		}
		parts = append(parts, "", strings.Join(counters, styles.FaintText.Render("  "+m.glyphs.Bullet+"  ")))
	}

	return styles.Card.Width(cw - 2).Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

func (m Model) layoutFeatures(b *pageBuilder, cw int) {
	styles := m.theme.Styles()
	cols := gridColumns(cw, 2)
	cardW := (cw - cardGap*(cols-1)) / cols
	inner := cardW - 4

	bodies := make([]string, 0, len(m.page.Features.Items))
	for _, f := range m.page.Features.Items {
		bodies = append(bodies, lipgloss.JoinVertical(lipgloss.Left,
			styles.PrimaryText.Render(m.glyphs.icon(f.Icon))+" "+styles.Heading.Render(truncate(f.Title, inner-2)),
			styles.MutedText.Width(inner).Render(oneLine(f.Description)),
		))
	}

	for i, row := range chunk(bodies, cols) {
		if i > 0 {
			b.blank(1)
		}
		height := 0
		for _, body := range row {
			height = max(height, lipgloss.Height(body))
		}
		cards := make([]string, len(row))
		for j, body := range row {
			cards[j] = styles.Card.Width(cardW - 2).Height(height).Render(body)
		}
		b.row(cards, cardGap)
	}
}

// layoutGallery renders the loading indicator, the empty state or one card
// per case. Each card records a hit region carrying its gallery index.
func (m Model) layoutGallery(b *pageBuilder, cw, cursor int) {
	styles := m.theme.Styles()
	text := m.page.Cases

	if m.gallery.Loading() {
		b.block(centered(cw, m.spinner.View()+" "+styles.MutedText.Render(text.Loading)))
		return
	}

	records := m.gallery.Cases()
	if len(records) == 0 {
		b.block(centered(cw, styles.FaintText.Render(text.Empty)))
		return
	}

	cols := gridColumns(cw, 3)
	cardW := (cw - cardGap*(cols-1)) / cols

	cards := make([]string, len(records))
	for i, rec := range records {
		cards[i] = m.renderCaseCard(rec, cardW, i == cursor)
	}

	for r, row := range chunk(cards, cols) {
		if r > 0 {
			b.blank(1)
		}
		y, xs, widths := b.row(row, cardGap)
		for j := range row {
			b.region(regionCase, r*cols+j, xs[j], y, widths[j], lipgloss.Height(row[j]))
		}
	}
}

func (m Model) renderCaseCard(rec cases.Record, cardW int, focused bool) string {
	styles := m.theme.Styles()
	labels := m.page.Cases.Labels
	inner := cardW - 4

	title := styles.Heading.Render(truncate(rec.DisplayTitle(), inner))
	org := styles.MutedText.Render(truncate(rec.Organization, inner))
	year := styles.FaintText.Render(truncate(fmt.Sprintf("%s: %d", labels.Year, rec.ImplementationYear), inner))
	stats := styles.SuccessText.Render(rec.RulesLabel()) +
		styles.FaintText.Render(" "+m.glyphs.Bullet+" ") +
		styles.SecondaryText.Render(rec.EfficiencyLabel())

	card := styles.Card
	if focused {
		card = styles.FocusCard
	}
	return card.Width(cardW - 2).Height(caseCardLines).
		Render(lipgloss.JoinVertical(lipgloss.Left, title, org, year, stats))
}

func (m Model) renderCTA(cw int) string {
	styles := m.theme.Styles()
	cta := m.page.CTA
	inner := cw - 4
	center := lipgloss.NewStyle().Width(inner).Align(lipgloss.Center)

	body := lipgloss.JoinVertical(lipgloss.Left,
		center.Render(styles.Heading.Render(cta.Title)),
		"",
		center.Render(styles.MutedText.Width(min(inner, 70)).Align(lipgloss.Center).Render(oneLine(cta.Lead))),
		"",
		center.Render(styles.Button.Render(cta.Action)),
	)
	return styles.Card.
		BorderForeground(lipgloss.Color(m.theme.Primary)).
		Padding(1, 1).
		Width(cw - 2).
		Render(body)
}

// renderHeader renders the top bar.
func (m Model) renderHeader() string {
	styles := m.theme.Styles()
	bg := NewBgStyle(m.theme.Surface)

	left := bg.Render(m.glyphs.Fallback+" ", styles.Logo) + bg.Render(m.page.Hero.Badge, styles.Heading)

	var status string
	switch {
	case m.gallery.Loading():
		status = m.page.Cases.Loading
	default:
		status = fmt.Sprintf("%s: %d", m.page.Cases.Title, m.gallery.Len())
	}
	right := bg.Join([]string{
		bg.Render(status, styles.MutedText),
		bg.Render(m.theme.Name, styles.FaintText),
	}, "  ")

	inner := m.width - 2
	gap := inner - lipgloss.Width(left) - lipgloss.Width(right)
	line := left
	if gap > 0 {
		line += bg.Spaces(gap) + right
	}
	return styles.Header.Width(m.width).MaxHeight(headerHeight).Render(truncateStyled(line, inner))
}

// renderFooter renders the key hints bar.
func (m Model) renderFooter() string {
	styles := m.theme.Styles()
	return styles.Footer.Width(m.width).MaxHeight(footerHeight).
		Render(m.help.ShortHelpView(m.keys.ShortHelp()))
}

func truncateStyled(s string, width int) string {
	if width <= 0 || lipgloss.Width(s) <= width {
		return s
	}
	return lipgloss.NewStyle().MaxWidth(width).Render(s)
}

// chunk splits items into rows of at most n.
func chunk(items []string, n int) [][]string {
	if n < 1 {
		n = 1
	}
	var rows [][]string
	for len(items) > 0 {
		k := min(n, len(items))
		rows = append(rows, items[:k])
		items = items[k:]
	}
	return rows
}
