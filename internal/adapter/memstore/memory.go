package memstore

import (
	"fmt"
	"sort"
	"sync"

	"lexstat/internal/adapter/store"
	"lexstat/internal/domain"
	"lexstat/internal/port"
)

var _ port.RunStore = (*MemoryStore)(nil)

// MemoryStore keeps runs and cached statistics for the lifetime of the process.
type MemoryStore struct {
	mu    sync.RWMutex
	runs  map[string]domain.Run
	stats map[string]domain.CachedStats
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		runs:  make(map[string]domain.Run),
		stats: make(map[string]domain.CachedStats),
	}
}

func (s *MemoryStore) PutRun(run domain.Run) error {
	if run.ID == "" {
		return fmt.Errorf("run without id")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.runs[run.ID] = run
	return nil
}

func (s *MemoryStore) GetRun(id string) (domain.Run, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	run, ok := s.runs[id]
	if !ok {
		return domain.Run{}, fmt.Errorf("%w: %s", store.ErrRunNotFound, id)
	}
	return run, nil
}

func (s *MemoryStore) ListRuns() ([]domain.Run, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	runs := make([]domain.Run, 0, len(s.runs))
	for _, run := range s.runs {
		runs = append(runs, run)
	}
	sort.Slice(runs, func(i, j int) bool {
		if runs[i].StartedAt.Equal(runs[j].StartedAt) {
			return runs[i].ID < runs[j].ID
		}
		return runs[i].StartedAt.After(runs[j].StartedAt)
	})
	return runs, nil
}

func (s *MemoryStore) GetCachedStats(path string) (domain.CachedStats, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entry, ok := s.stats[path]
	return entry, ok, nil
}

func (s *MemoryStore) PutCachedStats(entries []domain.CachedStats) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, e := range entries {
		s.stats[e.Path] = e
	}
	return nil
}

func (s *MemoryStore) Close() error {
	return nil
}
