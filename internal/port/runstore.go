package port

import "lexstat/internal/domain"

// RunStore keeps analysis history and a statistics cache keyed by content hash.
type RunStore interface {
	PutRun(run domain.Run) error

	GetRun(id string) (domain.Run, error)

	// ListRuns returns runs newest first.
	ListRuns() ([]domain.Run, error)

	GetCachedStats(path string) (domain.CachedStats, bool, error)

	PutCachedStats(entries []domain.CachedStats) error

	Close() error
}
