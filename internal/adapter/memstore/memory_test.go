package memstore

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lexstat/internal/adapter/store"
	"lexstat/internal/domain"
)

func TestMemoryStore_Runs(t *testing.T) {
	s := NewMemoryStore()
	base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	require.NoError(t, s.PutRun(domain.Run{ID: "a", StartedAt: base}))
	require.NoError(t, s.PutRun(domain.Run{ID: "b", StartedAt: base.Add(time.Hour)}))
	assert.Error(t, s.PutRun(domain.Run{}))

	runs, err := s.ListRuns()
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, "b", runs[0].ID)

	_, err = s.GetRun("missing")
	assert.ErrorIs(t, err, store.ErrRunNotFound)
}

func TestMemoryStore_CachedStats(t *testing.T) {
	s := NewMemoryStore()
	entry := domain.CachedStats{Path: "x", Hash: "h", Stats: domain.DocumentStatistics{Filename: "x", WordCount: 1}}
	require.NoError(t, s.PutCachedStats([]domain.CachedStats{entry}))

	got, ok, err := s.GetCachedStats("x")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, entry, got)
}
