package ui

// Screen chrome.
const (
	// headerHeight is the number of rows above the page viewport.
	headerHeight = 1

	// footerHeight is the number of rows below the page viewport.
	footerHeight = 1
)

// Page width thresholds for responsive layouts.
const (
	// maxPageWidth caps the page column on wide terminals.
	maxPageWidth = 100

	// narrowWidth is the page width below which grids collapse to one column.
	narrowWidth = 60

	// wideWidth is the page width at which the case gallery uses three columns.
	wideWidth = 90

	// overlayMaxWidth caps the case detail panel.
	overlayMaxWidth = 72

	// caseCardLines is the fixed inner height of a case card.
	caseCardLines = 4
)

// pageWidth returns the width of the centred page column for a terminal width.
func pageWidth(termWidth int) int {
	w := termWidth - 4
	if w > maxPageWidth {
		w = maxPageWidth
	}
	if w < 20 {
		w = 20
	}
	return w
}

// pageMargin returns the left offset of the page column.
func pageMargin(termWidth int) int {
	m := (termWidth - pageWidth(termWidth)) / 2
	if m < 0 {
		return 0
	}
	return m
}

// gridColumns picks a column count for card grids.
func gridColumns(width, limit int) int {
	switch {
	case width < narrowWidth:
		return 1
	case width < wideWidth || limit < 3:
		return min(2, limit)
	default:
		return 3
	}
}
