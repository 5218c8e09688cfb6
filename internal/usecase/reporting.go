package usecase

import (
	"errors"
	"fmt"

	"lexstat/internal/adapter/fs"
	"lexstat/internal/adapter/tabular"
	"lexstat/internal/domain"
	"lexstat/internal/logger"
	"lexstat/internal/port"
)

// ReportUseCase loads statistics and metadata and renders the report.
type ReportUseCase struct {
	store port.RunStore
}

// NewReportUseCase creates a report use case. store may be nil when run
// history is disabled.
func NewReportUseCase(store port.RunStore) *ReportUseCase {
	return &ReportUseCase{store: store}
}

// ReportOutput is a rendered report with what it was built from.
type ReportOutput struct {
	Text           string
	Documents      int
	MetadataLoaded bool
}

// Empty reports whether the report holds no data.
func (o *ReportOutput) Empty() bool {
	return o.Documents == 0
}

// FromStatistics renders the report from a statistics table on disk.
func (u *ReportUseCase) FromStatistics(statsPath, metadataPath string) (*ReportOutput, error) {
	results, err := tabular.ReadStatistics(statsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load statistics: %w", err)
	}
	return u.render(results, metadataPath), nil
}

// FromRun renders the report from a recorded run.
func (u *ReportUseCase) FromRun(runID, metadataPath string) (*ReportOutput, error) {
	if u.store == nil {
		return nil, errors.New("run history is disabled")
	}
	run, err := u.store.GetRun(runID)
	if err != nil {
		return nil, err
	}
	return u.render(run.Documents, metadataPath), nil
}

// Latest returns the most recent run, or false when none is recorded.
func (u *ReportUseCase) Latest() (domain.Run, bool, error) {
	if u.store == nil {
		return domain.Run{}, false, nil
	}
	runs, err := u.store.ListRuns()
	if err != nil || len(runs) == 0 {
		return domain.Run{}, false, err
	}
	return runs[0], true, nil
}

func (u *ReportUseCase) render(results []domain.DocumentStatistics, metadataPath string) *ReportOutput {
	out := &ReportOutput{Documents: len(results)}

	var metadata []domain.Metadata
	if metadataPath != "" {
		var err error
		metadata, err = tabular.ReadMetadata(metadataPath)
		switch {
		case errors.Is(err, fs.ErrNotFound):
			logger.Warn("metadata file %s not found, report will have no titles", metadataPath)
		case err != nil:
			logger.Warn("metadata not loaded: %v", err)
		default:
			out.MetadataLoaded = len(metadata) > 0
		}
	}

	out.Text = BuildReport(results, metadata)
	return out
}
