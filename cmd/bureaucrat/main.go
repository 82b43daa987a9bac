package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/five82/bureaucrat/internal/app"
	"github.com/five82/bureaucrat/internal/ui"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cmd := newRootCmd(app.Run, stdoutIsTerminal, os.Stdout)
	if err := cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "bureaucrat: %v\n", err)
		return 1
	}
	return 0
}

type runFunc func(context.Context, app.Options) error

func stdoutIsTerminal() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// newRootCmd builds the single bureaucrat command. Plain output is forced
// when stdout is not a terminal.
func newRootCmd(runApp runFunc, isTerminal func() bool, out io.Writer) *cobra.Command {
	var opts app.Options

	cmd := &cobra.Command{
		Use:           "bureaucrat",
		Short:         "Landing page for the bureaucratic systems architect",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !opts.Plain && !isTerminal() {
				opts.Plain = true
			}
			opts.Out = out
			return runApp(cmd.Context(), opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.ConfigPath, "config", "", "config file path (default ~/.config/bureaucrat/config.toml)")
	flags.StringVar(&opts.PrefsPath, "prefs", "", "preferences file path (default ~/.config/bureaucrat/prefs.toml)")
	flags.StringVar(&opts.CasesURL, "cases-url", "", "cases endpoint, overrides cases_url from the config")
	flags.BoolVar(&opts.Plain, "plain", false, "render the page once as plain text and exit")
	flags.IntVar(&opts.Width, "width", ui.DefaultStaticWidth, "page width for plain output")

	return cmd
}
