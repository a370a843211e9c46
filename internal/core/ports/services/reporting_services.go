package services

import (
	"context"

	"github.com/SscSPs/ledger_core/internal/core/domain"
)

// ReportingSvc defines aggregation over transactions.
type ReportingSvc interface {
	// SummaryByType groups transactions by type, most frequent first.
	SummaryByType(ctx context.Context, dateRange domain.DateRange) ([]domain.TypeSummary, error)
}
