package ui

import (
	"context"
	"errors"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/five82/bureaucrat/internal/cases"
	"github.com/five82/bureaucrat/internal/content"
	"github.com/five82/bureaucrat/internal/prefs"
	"github.com/five82/bureaucrat/internal/state"
)

var errNoFetcher = errors.New("no cases fetcher configured")

// Options configures the UI.
type Options struct {
	Context   context.Context
	Fetcher   cases.Fetcher
	Content   *content.Page
	Logger    *zap.Logger
	ThemeName string
	ASCII     bool
	PrefsPath string
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx       context.Context
	fetcher   cases.Fetcher
	page      *content.Page
	logger    *zap.Logger
	prefsPath string
	ascii     bool

	// UI state
	theme    Theme
	glyphs   glyphSet
	keys     keyMap
	help     help.Model
	width    int
	height   int
	ready    bool
	showHelp bool

	// Page state
	gallery    *state.Gallery
	selection  *state.Selection
	caseCursor int

	// Rendering
	spinner  spinner.Model
	viewport viewport.Model
	regions  []hitRegion
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	page := opts.Content
	if page == nil {
		var err error
		if page, err = content.Default(); err != nil {
			page = &content.Page{}
		}
	}

	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = prefs.Defaults().Theme
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	glyphs := glyphsFor(opts.ASCII)
	m := Model{
		ctx:       ctx,
		fetcher:   opts.Fetcher,
		page:      page,
		logger:    logger,
		prefsPath: prefsPath,
		ascii:     opts.ASCII,
		glyphs:    glyphs,
		keys:      DefaultKeyMap(),
		help:      help.New(),
		gallery:   state.NewGallery(),
		selection: state.NewSelection(len(page.Architecture.Levels)),
		spinner:   spinner.New(spinner.WithSpinner(glyphs.Spinner)),
	}
	m.applyTheme(GetTheme(themeName))
	return m
}

// Init implements tea.Model. The mount fetch is issued here and nowhere else.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		fetchCasesCmd(m.ctx, m.fetcher),
		m.spinner.Tick,
	)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		vpHeight := max(1, m.height-headerHeight-footerHeight)
		if !m.ready {
			m.viewport = viewport.New(m.width, vpHeight)
			m.viewport.MouseWheelEnabled = false
		} else {
			m.viewport.Width = m.width
			m.viewport.Height = vpHeight
		}
		m.help.Width = m.width
		m.ready = true
		m.refreshPage()
		return m, nil

	case casesLoadedMsg:
		m.resolveCases(msg)
		m.refreshPage()
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		m.refreshPage()
		return m, cmd
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	if m.showHelp {
		return m.helpOverlay().View(m.theme, m.width, m.height)
	}
	if rec, ok := m.selection.SelectedCase(); ok {
		return m.caseOverlay(rec).View(m.theme, m.width, m.height)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		m.viewport.View(),
		m.renderFooter(),
	)
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		return m, tea.Quit
	}

	// Any other key closes help
	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil
	case key.Matches(msg, m.keys.CycleTheme):
		m.cycleTheme()
		return m, nil
	}

	// The overlay captures everything except dismissal.
	if m.selection.HasSelection() {
		if key.Matches(msg, m.keys.Dismiss) {
			m.selection.DismissCase()
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.SelectLevel):
		if m.selection.SelectLevel(int(msg.String()[0] - '1')) {
			m.refreshPage()
		}
	case key.Matches(msg, m.keys.PrevLevel):
		if m.selection.PrevLevel() {
			m.refreshPage()
		}
	case key.Matches(msg, m.keys.NextLevel):
		if m.selection.NextLevel() {
			m.refreshPage()
		}
	case key.Matches(msg, m.keys.NextCase):
		m.moveCaseCursor(1)
	case key.Matches(msg, m.keys.PrevCase):
		m.moveCaseCursor(-1)
	case key.Matches(msg, m.keys.OpenCase):
		m.openCase(m.caseCursor)
	case key.Matches(msg, m.keys.Up):
		m.viewport.ScrollUp(1)
	case key.Matches(msg, m.keys.Down):
		m.viewport.ScrollDown(1)
	case key.Matches(msg, m.keys.PageUp):
		m.viewport.PageUp()
	case key.Matches(msg, m.keys.PageDown):
		m.viewport.PageDown()
	case key.Matches(msg, m.keys.Top):
		m.viewport.GotoTop()
	case key.Matches(msg, m.keys.Bottom):
		m.viewport.GotoBottom()
	}

	return m, nil
}

// handleMouse routes wheel events to the viewport and left clicks to the
// overlay or the page hit regions.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if !m.ready {
		return m, nil
	}

	switch msg.Button {
	case tea.MouseButtonWheelUp:
		if !m.overlayOpen() {
			m.viewport.ScrollUp(3)
		}
		return m, nil
	case tea.MouseButtonWheelDown:
		if !m.overlayOpen() {
			m.viewport.ScrollDown(3)
		}
		return m, nil
	case tea.MouseButtonLeft:
	default:
		return m, nil
	}
	if msg.Action != tea.MouseActionPress {
		return m, nil
	}

	if m.showHelp {
		if m.helpOverlay().HitTest(msg.X, msg.Y, m.width, m.height) == state.TargetBackdrop {
			m.showHelp = false
		}
		return m, nil
	}

	if rec, ok := m.selection.SelectedCase(); ok {
		target := m.caseOverlay(rec).HitTest(msg.X, msg.Y, m.width, m.height)
		if m.selection.Click(target) {
			m.logger.Debug("case overlay closed", zap.Int64("case_id", rec.ID), zap.Stringer("target", target))
		}
		return m, nil
	}

	line := msg.Y - headerHeight
	if line < 0 || line >= m.viewport.Height {
		return m, nil
	}
	region, ok := hitTest(m.regions, msg.X, line+m.viewport.YOffset)
	if !ok {
		return m, nil
	}
	switch region.kind {
	case regionLevel:
		if m.selection.SelectLevel(region.index) {
			m.refreshPage()
		}
	case regionCase:
		m.caseCursor = region.index
		m.openCase(region.index)
		m.refreshPage()
	}
	return m, nil
}

func (m Model) overlayOpen() bool {
	return m.showHelp || m.selection.HasSelection()
}

// resolveCases settles the gallery with the mount fetch outcome. Failures
// are logged and rendered as an empty gallery.
func (m *Model) resolveCases(msg casesLoadedMsg) {
	if !m.gallery.Resolve(msg.records, msg.err) {
		m.logger.Debug("ignoring repeated cases result")
		return
	}
	if msg.err != nil {
		m.logger.Warn("cases unavailable, showing empty gallery", zap.Error(msg.err))
		return
	}
	if dups := cases.DuplicateIDs(msg.records); len(dups) > 0 {
		m.logger.Warn("duplicate case ids in response", zap.Int64s("ids", dups))
	}
	m.logger.Info("cases loaded", zap.Int("count", m.gallery.Len()))
}

// openCase shows the detail overlay for the case at gallery index i.
func (m *Model) openCase(i int) {
	rec, ok := m.gallery.At(i)
	if !ok {
		return
	}
	m.selection.OpenCase(rec)
	m.logger.Debug("case opened", zap.Int64("case_id", rec.ID))
}

// moveCaseCursor advances the gallery cursor, wrapping at both ends, and
// scrolls the card into view.
func (m *Model) moveCaseCursor(delta int) {
	n := m.gallery.Len()
	if n == 0 {
		return
	}
	m.caseCursor = ((m.caseCursor+delta)%n + n) % n
	m.refreshPage()

	r, ok := findRegion(m.regions, regionCase, m.caseCursor)
	if !ok {
		return
	}
	switch {
	case r.y0 < m.viewport.YOffset:
		m.viewport.SetYOffset(r.y0)
	case r.y1 > m.viewport.YOffset+m.viewport.Height:
		m.viewport.SetYOffset(r.y1 - m.viewport.Height)
	}
}

func (m *Model) cycleTheme() {
	m.applyTheme(GetTheme(NextTheme(m.theme.Name)))
	if m.prefsPath != "" {
		p := prefs.Prefs{Theme: m.theme.Name, ASCII: m.ascii}
		if err := prefs.Save(m.prefsPath, p); err != nil {
			m.logger.Warn("save prefs", zap.String("path", m.prefsPath), zap.Error(err))
		}
	}
	m.refreshPage()
}

func (m *Model) applyTheme(t Theme) {
	m.theme = t
	m.spinner.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(t.Secondary))
	m.help.Styles.ShortKey = lipgloss.NewStyle().Foreground(lipgloss.Color(t.Warning))
	m.help.Styles.ShortDesc = lipgloss.NewStyle().Foreground(lipgloss.Color(t.Muted))
	m.help.Styles.ShortSeparator = lipgloss.NewStyle().Foreground(lipgloss.Color(t.Faint))
}

// refreshPage re-lays out the page into the viewport and records the new
// hit regions.
func (m *Model) refreshPage() {
	if !m.ready {
		return
	}
	b := m.buildPage(m.width, m.caseCursor)
	m.regions = b.regions
	m.viewport.SetContent(b.String())
}

func (m Model) caseOverlay(rec cases.Record) caseDetail {
	return caseDetail{rec: rec, labels: m.page.Cases.Labels, glyphs: m.glyphs}
}

func (m Model) helpOverlay() helpOverlay {
	return helpOverlay{keys: m.keys, glyphs: m.glyphs}
}

// Messages

type casesLoadedMsg struct {
	records []cases.Record
	err     error
}

// Commands

func fetchCasesCmd(ctx context.Context, f cases.Fetcher) tea.Cmd {
	return func() tea.Msg {
		records, err := fetchCases(ctx, f)
		return casesLoadedMsg{records: records, err: err}
	}
}

func fetchCases(ctx context.Context, f cases.Fetcher) ([]cases.Record, error) {
	if f == nil {
		return nil, errNoFetcher
	}
	return f.Fetch(ctx)
}

// Run starts the Bubble Tea program and blocks until it exits. Cancelling
// the context stops the program; an in-flight fetch is abandoned.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(m.ctx),
	)
	_, err := p.Run()
	if err != nil && m.ctx.Err() != nil {
		return nil
	}
	return err
}
