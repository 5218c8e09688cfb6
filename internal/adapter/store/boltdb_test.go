package store

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lexstat/config"
	"lexstat/internal/domain"
)

func openStore(t *testing.T) *BoltStore {
	t.Helper()
	st, err := NewBoltStore(filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })
	return st
}

func TestRuns(t *testing.T) {
	st := openStore(t)

	older := domain.Run{
		ID:        "run-1",
		StartedAt: time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC),
		Folder:    "corpus",
		Documents: []domain.DocumentStatistics{{Filename: "a.txt", WordCount: 3, UniqueWordCount: 2, LineCount: 1, TTR: 0.667}},
	}
	newer := domain.Run{
		ID:         "run-2",
		StartedAt:  time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC),
		Folder:     "corpus",
		MostCommon: []domain.WordFrequency{{Word: "кот", Count: 2}},
	}
	require.NoError(t, st.PutRun(older))
	require.NoError(t, st.PutRun(newer))

	got, err := st.GetRun("run-1")
	require.NoError(t, err)
	assert.Equal(t, older.Documents, got.Documents)
	assert.True(t, older.StartedAt.Equal(got.StartedAt))

	runs, err := st.ListRuns()
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, "run-2", runs[0].ID)
	assert.Equal(t, "run-1", runs[1].ID)

	require.NoError(t, st.DeleteRun("run-1"))
	_, err = st.GetRun("run-1")
	assert.ErrorIs(t, err, ErrRunNotFound)
	assert.ErrorIs(t, st.DeleteRun("run-1"), ErrRunNotFound)
}

func TestPutRun_RequiresID(t *testing.T) {
	st := openStore(t)
	assert.Error(t, st.PutRun(domain.Run{}))
}

func TestCachedStats(t *testing.T) {
	st := openStore(t)

	_, found, err := st.GetCachedStats("/corpus/a.txt")
	require.NoError(t, err)
	assert.False(t, found)

	entry := domain.CachedStats{
		Path:  "/corpus/a.txt",
		Hash:  "abc",
		Stats: domain.DocumentStatistics{Filename: "a.txt", WordCount: 10, UniqueWordCount: 5, LineCount: 2, TTR: 0.5},
	}
	require.NoError(t, st.PutCachedStats([]domain.CachedStats{entry}))

	got, found, err := st.GetCachedStats("/corpus/a.txt")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, entry, got)

	require.NoError(t, st.ClearCache())
	_, found, err = st.GetCachedStats("/corpus/a.txt")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestMigration(t *testing.T) {
	st := openStore(t)
	cfg := config.DefaultConfig()

	result, err := st.CheckMigration(cfg)
	require.NoError(t, err)
	assert.True(t, result.NeedsMigration)
	assert.False(t, result.NeedsRebuild)

	require.NoError(t, st.Migrate(cfg))
	result, err = st.CheckMigration(cfg)
	require.NoError(t, err)
	assert.False(t, result.NeedsMigration)
	assert.False(t, result.NeedsRebuild)

	info, err := st.GetSchemaInfo()
	require.NoError(t, err)
	assert.Equal(t, CurrentSchemaVersion, info.Version)
	assert.Equal(t, ComputeConfigHash(cfg), info.ConfigHash)
}

func TestPrepare_ConfigChangeClearsCacheKeepsRuns(t *testing.T) {
	st := openStore(t)
	cfg := config.DefaultConfig()

	_, err := st.Prepare(cfg)
	require.NoError(t, err)
	require.NoError(t, st.PutRun(domain.Run{ID: "r", StartedAt: time.Now()}))
	require.NoError(t, st.PutCachedStats([]domain.CachedStats{{Path: "p", Hash: "h"}}))

	cfg.Corpus.Encoding = "windows-1251"
	reason, err := st.Prepare(cfg)
	require.NoError(t, err)
	assert.Equal(t, "corpus configuration changed", reason)

	_, found, err := st.GetCachedStats("p")
	require.NoError(t, err)
	assert.False(t, found)

	_, err = st.GetRun("r")
	assert.NoError(t, err)

	reason, err = st.Prepare(cfg)
	require.NoError(t, err)
	assert.Empty(t, reason)
}
