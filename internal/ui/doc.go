// Package ui renders the bureaucrat landing page as a Bubble Tea program.
//
// The page is a single scrollable column: hero banner, architecture levels,
// rule-generation stages with the knowledge-base panel, the feature grid, the
// case gallery and the closing call to action. Level rows and case cards are
// clickable; each render records their rectangles so mouse presses can be
// mapped back to a level index or a gallery index.
//
// Page state lives in the state package. The Model owns one state.Gallery,
// settled exactly once by the fetch issued from Init, and one
// state.Selection holding the active level and the case shown in the detail
// overlay. While the overlay is open, clicks are classified as panel,
// dismiss control or backdrop and passed to Selection.Click.
//
// # Key Bindings
//
//   - 1-5: Select architecture level
//   - h/l or left/right: Previous/next level
//   - tab/shift+tab: Move the case cursor
//   - enter: Open the case under the cursor
//   - esc or x: Close the case overlay
//   - j/k, pgup/pgdown, g/G: Scroll
//   - T: Cycle theme
//   - ?: Toggle help
//   - q or ctrl+c: Quit
//
// RenderStatic produces the same page as plain text for non-interactive
// output.
package ui
