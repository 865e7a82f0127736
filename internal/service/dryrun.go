package service

import (
	"context"
	"fmt"
	"log/slog"

	"billsync/internal/domain"
)

const previewLimit = 5

// DryRunService inspects what a sync would process. It has no store
// dependency, so a dry run cannot write.
type DryRunService struct {
	source BillSource
	logger *slog.Logger
}

func NewDryRunService(source BillSource, logger *slog.Logger) *DryRunService {
	return &DryRunService{
		source: source,
		logger: logger.With("component", "dry_run"),
	}
}

func (d *DryRunService) Preview(ctx context.Context, congressNum int) (*domain.Preview, error) {
	records, err := d.source.FetchRecentBills(ctx, congressNum, previewLimit, 0)
	if err != nil {
		return nil, fmt.Errorf("fetch bills: %w", err)
	}

	preview := &domain.Preview{
		Congress: congressNum,
		Count:    len(records),
	}
	if len(records) > 0 {
		preview.SampleTitle = records[0].Title
		if preview.SampleTitle == "" {
			preview.SampleTitle = "No title"
		}
	}

	d.logger.Info("dry run preview", "congress", congressNum, "count", preview.Count)
	return preview, nil
}
