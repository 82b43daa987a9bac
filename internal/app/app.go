package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/five82/bureaucrat/internal/cases"
	"github.com/five82/bureaucrat/internal/config"
	"github.com/five82/bureaucrat/internal/content"
	"github.com/five82/bureaucrat/internal/logging"
	"github.com/five82/bureaucrat/internal/prefs"
	"github.com/five82/bureaucrat/internal/ui"
)

// Options configure the bureaucrat application.
type Options struct {
	ConfigPath string
	PrefsPath  string    // empty uses default ~/.config/bureaucrat/prefs.toml
	CasesURL   string    // overrides cases_url from the config file
	Plain      bool      // render the page once instead of starting the TUI
	Width      int       // page width for plain output; zero uses the default
	Out        io.Writer // plain output destination; nil uses stdout
}

// Run boots the landing page until the user quits or the context is
// cancelled. In plain mode it renders the page once and returns.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if v := strings.TrimSpace(opts.CasesURL); v != "" {
		cfg.CasesURL = v
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}
	userPrefs, _ := prefs.Load(prefsPath)

	page, err := content.Load(cfg.ContentFile)
	if err != nil {
		return fmt.Errorf("load content: %w", err)
	}

	logger, err := logging.New(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	client, err := cases.NewClient(cfg.CasesURL,
		cases.WithTimeout(cfg.RequestTimeout),
		cases.WithLogger(logger),
	)
	if err != nil {
		return fmt.Errorf("init cases client: %w", err)
	}

	logger.Info("starting",
		zap.String("endpoint", client.Endpoint()),
		zap.Bool("plain", opts.Plain),
		zap.String("theme", userPrefs.Theme),
	)

	uiOpts := ui.Options{
		Context:   ctx,
		Fetcher:   client,
		Content:   page,
		Logger:    logger,
		ThemeName: userPrefs.Theme,
		ASCII:     userPrefs.ASCII,
		PrefsPath: prefsPath,
	}

	if opts.Plain {
		return renderPlain(ctx, uiOpts, opts)
	}
	return ui.Run(uiOpts)
}

func renderPlain(ctx context.Context, uiOpts ui.Options, opts Options) error {
	out, err := ui.RenderStatic(ctx, uiOpts, opts.Width)
	if err != nil {
		return fmt.Errorf("render page: %w", err)
	}
	w := opts.Out
	if w == nil {
		w = os.Stdout
	}
	if _, err := io.WriteString(w, out); err != nil {
		return fmt.Errorf("write page: %w", err)
	}
	return nil
}
