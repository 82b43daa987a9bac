package state

import (
	"time"

	"github.com/five82/bureaucrat/internal/cases"
)

// Snapshot is a copy of the gallery state handed to the renderer.
type Snapshot struct {
	Loading    bool
	Cases      []cases.Record
	Failed     bool // resolved from an error; never surfaced to the user
	ResolvedAt time.Time
}

// Gallery tracks the one case fetch issued when the page mounts. It starts
// loading and resolves exactly once.
type Gallery struct {
	snapshot Snapshot
	resolved bool
}

// NewGallery returns a gallery in the loading state.
func NewGallery() *Gallery {
	return &Gallery{snapshot: Snapshot{Loading: true, Cases: []cases.Record{}}}
}

// Resolve records the outcome of the mount fetch. A non-nil err resolves to
// an empty list. Only the first call has any effect; it reports whether the
// state changed.
func (g *Gallery) Resolve(records []cases.Record, err error) bool {
	if g.resolved {
		return false
	}
	g.resolved = true
	g.snapshot.Loading = false
	g.snapshot.ResolvedAt = time.Now()
	if err != nil {
		g.snapshot.Failed = true
		g.snapshot.Cases = []cases.Record{}
		return true
	}
	g.snapshot.Cases = cloneRecords(records)
	return true
}

// Loading reports whether the mount fetch is still outstanding.
func (g *Gallery) Loading() bool {
	return g.snapshot.Loading
}

// Failed reports whether the fetch resolved from an error.
func (g *Gallery) Failed() bool {
	return g.snapshot.Failed
}

// Len returns the number of loaded cases.
func (g *Gallery) Len() int {
	return len(g.snapshot.Cases)
}

// Cases returns a copy of the loaded cases in endpoint order.
func (g *Gallery) Cases() []cases.Record {
	return cloneRecords(g.snapshot.Cases)
}

// At returns the case at index i.
func (g *Gallery) At(i int) (cases.Record, bool) {
	if i < 0 || i >= len(g.snapshot.Cases) {
		return cases.Record{}, false
	}
	return g.snapshot.Cases[i], true
}

// Find returns the first case with the given id.
func (g *Gallery) Find(id int64) (cases.Record, bool) {
	for _, rec := range g.snapshot.Cases {
		if rec.ID == id {
			return rec, true
		}
	}
	return cases.Record{}, false
}

// Snapshot returns a copy of the current state.
func (g *Gallery) Snapshot() Snapshot {
	snap := g.snapshot
	snap.Cases = cloneRecords(g.snapshot.Cases)
	return snap
}

func cloneRecords(items []cases.Record) []cases.Record {
	dup := make([]cases.Record, len(items))
	copy(dup, items)
	return dup
}
