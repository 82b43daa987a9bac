package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type regionKind int

const (
	regionLevel regionKind = iota
	regionCase
)

// hitRegion is a clickable rectangle in page coordinates (column, line).
// The end bounds are exclusive.
type hitRegion struct {
	kind   regionKind
	index  int
	x0, y0 int
	x1, y1 int
}

func (r hitRegion) contains(x, y int) bool {
	return x >= r.x0 && x < r.x1 && y >= r.y0 && y < r.y1
}

func hitTest(regions []hitRegion, x, y int) (hitRegion, bool) {
	for _, r := range regions {
		if r.contains(x, y) {
			return r, true
		}
	}
	return hitRegion{}, false
}

func findRegion(regions []hitRegion, kind regionKind, index int) (hitRegion, bool) {
	for _, r := range regions {
		if r.kind == kind && r.index == index {
			return r, true
		}
	}
	return hitRegion{}, false
}

// pageBuilder accumulates rendered page lines and the clickable regions laid
// out on them.
type pageBuilder struct {
	margin  string
	indent  int
	lines   []string
	regions []hitRegion
}

func newPageBuilder(indent int) *pageBuilder {
	return &pageBuilder{margin: strings.Repeat(" ", indent), indent: indent}
}

// blank appends n empty lines.
func (b *pageBuilder) blank(n int) {
	for i := 0; i < n; i++ {
		b.lines = append(b.lines, "")
	}
}

// block appends a rendered block and returns its first line.
func (b *pageBuilder) block(s string) int {
	start := len(b.lines)
	for _, line := range strings.Split(s, "\n") {
		b.lines = append(b.lines, b.margin+line)
	}
	return start
}

// region records a clickable rectangle; x is relative to the page column.
func (b *pageBuilder) region(kind regionKind, index, x, y, w, h int) {
	b.regions = append(b.regions, hitRegion{
		kind:  kind,
		index: index,
		x0:    b.indent + x,
		y0:    y,
		x1:    b.indent + x + w,
		y1:    y + h,
	})
}

// row appends blocks side by side separated by gap columns. It returns the
// first line and each block's x offset and width.
func (b *pageBuilder) row(blocks []string, gap int) (y int, xs []int, widths []int) {
	parts := make([]string, 0, len(blocks)*2)
	x := 0
	for i, blk := range blocks {
		if i > 0 && gap > 0 {
			parts = append(parts, strings.Repeat(" ", gap))
			x += gap
		}
		w := lipgloss.Width(blk)
		xs = append(xs, x)
		widths = append(widths, w)
		parts = append(parts, blk)
		x += w
	}
	return b.block(lipgloss.JoinHorizontal(lipgloss.Top, parts...)), xs, widths
}

func (b *pageBuilder) height() int {
	return len(b.lines)
}

func (b *pageBuilder) String() string {
	return strings.Join(b.lines, "\n")
}
