package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/bureaucrat/internal/content"
)

// Theme defines colors for the UI.
type Theme struct {
	Name string

	// Base colors
	Background string // Outermost background and backdrop
	Surface    string // Header and footer bars
	SurfaceAlt string // Cards
	FocusBg    string // Active level row

	// Border colors
	Border      string
	BorderMuted string
	BorderFocus string

	// Text colors
	Text      string
	Muted     string
	Faint     string
	Primary   string
	Secondary string
	Success   string
	Warning   string
	Danger    string

	// Stage status colors
	StageColors map[content.StageStatus]string
}

// Styles returns Lipgloss styles for this theme.
func (t Theme) Styles() Styles {
	return Styles{
		Text: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Text)),

		MutedText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)),

		FaintText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Faint)),

		PrimaryText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Primary)).
			Bold(true),

		SecondaryText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Secondary)),

		SuccessText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Success)).
			Bold(true),

		Heading: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Text)).
			Bold(true),

		Header: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Text)).
			Padding(0, 1),

		Footer: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Muted)).
			Padding(0, 1),

		Logo: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Warning)).
			Bold(true),

		Button: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Background)).
			Background(lipgloss.Color(t.Primary)).
			Bold(true).
			Padding(0, 2),

		OutlineButton: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Secondary)).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.Secondary)).
			Padding(0, 1),

		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.Border)).
			Padding(0, 1),

		FocusCard: lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(lipgloss.Color(t.BorderFocus)).
			Padding(0, 1),

		stageColors: t.StageColors,
		background:  t.Background,
		muted:       t.Muted,
	}
}

// Styles contains pre-built Lipgloss styles for the theme.
type Styles struct {
	// Text
	Text          lipgloss.Style
	MutedText     lipgloss.Style
	FaintText     lipgloss.Style
	PrimaryText   lipgloss.Style
	SecondaryText lipgloss.Style
	SuccessText   lipgloss.Style
	Heading       lipgloss.Style

	// Components
	Header        lipgloss.Style
	Footer        lipgloss.Style
	Logo          lipgloss.Style
	Button        lipgloss.Style
	OutlineButton lipgloss.Style
	Card          lipgloss.Style
	FocusCard     lipgloss.Style

	stageColors map[content.StageStatus]string
	background  string
	muted       string
}

// StageColor returns the accent color for a stage status.
func (s Styles) StageColor(status content.StageStatus) lipgloss.Color {
	color := s.stageColors[status]
	if color == "" {
		color = s.muted
	}
	return lipgloss.Color(color)
}

// StageBadge returns a filled badge style for a stage status.
func (s Styles) StageBadge(status content.StageStatus) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(s.background)).
		Background(s.StageColor(status)).
		Padding(0, 1)
}

// Theme definitions

var themes = map[string]Theme{
	"Nightfox": nightfoxTheme(),
	"Kanagawa": kanagawaTheme(),
	"Slate":    slateTheme(),
}

var themeOrder = []string{"Slate", "Nightfox", "Kanagawa"}

// GetTheme returns a theme by name, defaulting to Slate.
func GetTheme(name string) Theme {
	if t, ok := themes[name]; ok {
		return t
	}
	return slateTheme()
}

// NextTheme returns the next theme name in the cycle.
func NextTheme(current string) string {
	for i, name := range themeOrder {
		if name == current {
			return themeOrder[(i+1)%len(themeOrder)]
		}
	}
	return themeOrder[0]
}

// ThemeNames returns available theme names.
func ThemeNames() []string {
	return themeOrder
}

func slateTheme() Theme {
	// Tailwind CSS Slate palette with violet/cyan accents
	return Theme{
		Name: "Slate",

		Background: "#020617", // slate-950
		Surface:    "#0f172a", // slate-900
		SurfaceAlt: "#1e293b", // slate-800
		FocusBg:    "#283548",

		Border:      "#334155", // slate-700
		BorderMuted: "#1e293b", // slate-800
		BorderFocus: "#8b5cf6", // violet-500

		Text:      "#f1f5f9", // slate-100
		Muted:     "#94a3b8", // slate-400
		Faint:     "#64748b", // slate-500
		Primary:   "#8b5cf6", // violet-500
		Secondary: "#06b6d4", // cyan-500
		Success:   "#22c55e", // green-500
		Warning:   "#f59e0b", // amber-500
		Danger:    "#ef4444", // red-500

		StageColors: map[content.StageStatus]string{
			content.StageCompleted: "#8b5cf6",
			content.StageActive:    "#06b6d4",
			content.StagePending:   "#64748b",
		},
	}
}

func nightfoxTheme() Theme {
	// Nightfox palette: https://github.com/EdenEast/nightfox.nvim
	return Theme{
		Name: "Nightfox",

		Background: "#131a24", // bg0
		Surface:    "#192330", // bg1
		SurfaceAlt: "#212e3f", // bg2
		FocusBg:    "#29394f", // bg3

		Border:      "#39506d", // bg4
		BorderMuted: "#212e3f", // bg2
		BorderFocus: "#719cd6", // blue

		Text:      "#cdcecf", // fg1
		Muted:     "#738091", // comment
		Faint:     "#71839b", // fg3
		Primary:   "#9d79d6", // magenta
		Secondary: "#63cdcf", // cyan
		Success:   "#81b29a", // green
		Warning:   "#dbc074", // yellow
		Danger:    "#c94f6d", // red

		StageColors: map[content.StageStatus]string{
			content.StageCompleted: "#9d79d6",
			content.StageActive:    "#63cdcf",
			content.StagePending:   "#738091",
		},
	}
}

func kanagawaTheme() Theme {
	// Kanagawa palette: https://github.com/rebelot/kanagawa.nvim
	return Theme{
		Name: "Kanagawa",

		Background: "#16161D", // sumiInk0
		Surface:    "#1F1F28", // sumiInk3
		SurfaceAlt: "#2A2A37", // sumiInk4
		FocusBg:    "#2A2A37", // sumiInk4

		Border:      "#54546D", // sumiInk6
		BorderMuted: "#2A2A37", // sumiInk4
		BorderFocus: "#7E9CD8", // crystalBlue

		Text:      "#DCD7BA", // fujiWhite
		Muted:     "#C8C093", // oldWhite
		Faint:     "#727169", // fujiGray
		Primary:   "#957FB8", // oniViolet
		Secondary: "#7FB4CA", // springBlue
		Success:   "#98BB6C", // springGreen
		Warning:   "#E6C384", // carpYellow
		Danger:    "#E46876", // waveRed

		StageColors: map[content.StageStatus]string{
			content.StageCompleted: "#957FB8",
			content.StageActive:    "#7FB4CA",
			content.StagePending:   "#727169",
		},
	}
}
