package state

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/five82/bureaucrat/internal/cases"
)

func TestGallery_StartsLoading(t *testing.T) {
	g := NewGallery()
	assert.True(t, g.Loading())
	assert.False(t, g.Failed())
	assert.Equal(t, 0, g.Len())
	assert.NotNil(t, g.Cases())
}

func TestGallery_ResolveSuccessKeepsOrder(t *testing.T) {
	g := NewGallery()
	records := []cases.Record{{ID: 2, Title: "b"}, {ID: 1, Title: "a"}}

	require.True(t, g.Resolve(records, nil))
	assert.False(t, g.Loading())
	assert.False(t, g.Failed())
	if diff := cmp.Diff(records, g.Cases()); diff != "" {
		t.Fatalf("Cases mismatch (-want +got):\n%s", diff)
	}
	assert.False(t, g.Snapshot().ResolvedAt.IsZero())
}

func TestGallery_ResolveNilRecordsIsEmpty(t *testing.T) {
	g := NewGallery()
	require.True(t, g.Resolve(nil, nil))
	assert.False(t, g.Loading())
	assert.NotNil(t, g.Cases())
	assert.Empty(t, g.Cases())
}

func TestGallery_ResolveErrorFailsSoft(t *testing.T) {
	g := NewGallery()
	require.True(t, g.Resolve([]cases.Record{{ID: 1}}, errors.New("connection refused")))
	assert.False(t, g.Loading())
	assert.True(t, g.Failed())
	assert.Empty(t, g.Cases())
}

func TestGallery_ResolvesOnlyOnce(t *testing.T) {
	g := NewGallery()
	require.True(t, g.Resolve([]cases.Record{{ID: 1}}, nil))

	assert.False(t, g.Resolve([]cases.Record{{ID: 5}, {ID: 6}}, nil))
	assert.False(t, g.Resolve(nil, errors.New("late failure")))
	assert.Equal(t, 1, g.Len())
	assert.False(t, g.Failed())
}

func TestGallery_CopiesAreIndependent(t *testing.T) {
	records := []cases.Record{{ID: 1, Title: "a"}}
	g := NewGallery()
	g.Resolve(records, nil)

	records[0].Title = "mutated"
	got := g.Cases()
	assert.Equal(t, "a", got[0].Title)

	got[0].Title = "also mutated"
	snap := g.Snapshot()
	assert.Equal(t, "a", snap.Cases[0].Title)
}

func TestGallery_AtAndFind(t *testing.T) {
	g := NewGallery()
	g.Resolve([]cases.Record{{ID: 10, Title: "x"}, {ID: 20, Title: "y"}}, nil)

	rec, ok := g.At(1)
	require.True(t, ok)
	assert.Equal(t, int64(20), rec.ID)
	_, ok = g.At(2)
	assert.False(t, ok)
	_, ok = g.At(-1)
	assert.False(t, ok)

	rec, ok = g.Find(10)
	require.True(t, ok)
	assert.Equal(t, "x", rec.Title)
	_, ok = g.Find(99)
	assert.False(t, ok)
}

func TestGallery_DuplicateIDsAreKept(t *testing.T) {
	g := NewGallery()
	g.Resolve([]cases.Record{{ID: 1, Title: "first"}, {ID: 1, Title: "second"}}, nil)
	assert.Equal(t, 2, g.Len())
	rec, ok := g.Find(1)
	require.True(t, ok)
	assert.Equal(t, "first", rec.Title)
}
