package ui

import (
	"context"
	"strings"
)

// DefaultStaticWidth is the page width used by RenderStatic when none is given.
const DefaultStaticWidth = 100

// RenderStatic renders the landing page once without a terminal program.
// The mount fetch runs synchronously first, so the gallery shows either the
// loaded cases or the empty state, never the loading indicator.
func RenderStatic(ctx context.Context, opts Options, width int) (string, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if width <= 0 {
		width = DefaultStaticWidth
	}
	opts.Context = ctx

	m := New(opts)
	records, err := fetchCases(ctx, m.fetcher)
	if ctxErr := ctx.Err(); ctxErr != nil {
		return "", ctxErr
	}
	m.resolveCases(casesLoadedMsg{records: records, err: err})
	m.width = width

	page := m.buildPage(width, -1).String()
	lines := strings.Split(page, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " ")
	}
	return strings.Join(lines, "\n") + "\n", nil
}
