package state

import "github.com/five82/bureaucrat/internal/cases"

// ClickTarget classifies a pointer click while the case detail overlay is
// open.
type ClickTarget int

const (
	// TargetBackdrop is the dimmed area outside the detail panel.
	TargetBackdrop ClickTarget = iota
	// TargetPanel is anywhere inside the detail panel body. Clicks here are
	// consumed and never reach the backdrop.
	TargetPanel
	// TargetDismiss is the panel's close control.
	TargetDismiss
)

func (t ClickTarget) String() string {
	switch t {
	case TargetPanel:
		return "panel"
	case TargetDismiss:
		return "dismiss"
	default:
		return "backdrop"
	}
}

// Selection holds the two independent pieces of interaction state: the
// highlighted architecture level and the case shown in the detail overlay.
// Neither is persisted.
type Selection struct {
	levelCount  int
	activeLevel int
	selected    *cases.Record
}

// NewSelection starts at level 0 with no case selected.
func NewSelection(levelCount int) *Selection {
	if levelCount < 1 {
		levelCount = 1
	}
	return &Selection{levelCount: levelCount}
}

// ActiveLevel returns the highlighted level index.
func (s *Selection) ActiveLevel() int {
	return s.activeLevel
}

// LevelCount returns the number of selectable levels.
func (s *Selection) LevelCount() int {
	return s.levelCount
}

// SelectLevel highlights level i. Out-of-range indexes are ignored. Selecting
// the current level again is a no-op.
func (s *Selection) SelectLevel(i int) bool {
	if i < 0 || i >= s.levelCount || i == s.activeLevel {
		return false
	}
	s.activeLevel = i
	return true
}

// NextLevel moves the highlight down one level, stopping at the last.
func (s *Selection) NextLevel() bool {
	return s.SelectLevel(s.activeLevel + 1)
}

// PrevLevel moves the highlight up one level, stopping at the first.
func (s *Selection) PrevLevel() bool {
	return s.SelectLevel(s.activeLevel - 1)
}

// OpenCase shows rec in the detail overlay.
func (s *Selection) OpenCase(rec cases.Record) {
	dup := rec
	s.selected = &dup
}

// DismissCase closes the detail overlay.
func (s *Selection) DismissCase() bool {
	if s.selected == nil {
		return false
	}
	s.selected = nil
	return true
}

// Click routes a pointer click made while the overlay is open. Backdrop and
// dismiss clicks close it; panel clicks stop there and leave it open.
func (s *Selection) Click(target ClickTarget) bool {
	if s.selected == nil {
		return false
	}
	switch target {
	case TargetBackdrop, TargetDismiss:
		return s.DismissCase()
	default:
		return false
	}
}

// SelectedCase returns the case shown in the overlay, if any.
func (s *Selection) SelectedCase() (cases.Record, bool) {
	if s.selected == nil {
		return cases.Record{}, false
	}
	return *s.selected, true
}

// HasSelection reports whether the overlay is open.
func (s *Selection) HasSelection() bool {
	return s.selected != nil
}
