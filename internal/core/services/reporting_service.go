package services

import (
	"context"
	"sort"

	"github.com/SscSPs/ledger_core/internal/core/domain"
	portsrepo "github.com/SscSPs/ledger_core/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/ledger_core/internal/core/ports/services"
)

// reportingService implements the ReportingSvc interface
type reportingService struct {
	BaseService
	aggregator portsrepo.TransactionAggregator
}

// NewReportingService creates a new reporting service with the provided options
func NewReportingService(aggregator portsrepo.TransactionAggregator, options ...ServiceOption) portssvc.ReportingSvc {
	return &reportingService{
		BaseService: newBaseService(options...),
		aggregator:  aggregator,
	}
}

var _ portssvc.ReportingSvc = (*reportingService)(nil)

// SummaryByType counts transactions and sums their informational amount per type.
// The amounts are not reconciled against journal entries.
func (s *reportingService) SummaryByType(ctx context.Context, dateRange domain.DateRange) ([]domain.TypeSummary, error) {
	if err := validateDateRange(dateRange); err != nil {
		return nil, err
	}

	summaries, err := s.aggregator.SummarizeByType(ctx, dateRange)
	if err != nil {
		return nil, s.boundaryError(ctx, err, "failed to summarize transactions")
	}
	if summaries == nil {
		summaries = []domain.TypeSummary{}
	}

	sort.SliceStable(summaries, func(i, j int) bool {
		if summaries[i].Count != summaries[j].Count {
			return summaries[i].Count > summaries[j].Count
		}
		return summaries[i].Type < summaries[j].Type
	})
	return summaries, nil
}
