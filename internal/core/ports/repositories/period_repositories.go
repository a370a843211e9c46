package repositories

import (
	"context"

	"github.com/SscSPs/ledger_core/internal/core/domain"
)

type PeriodReader interface {
	FindPeriodByID(ctx context.Context, periodID string) (*domain.Period, error)
	// ListPeriods returns periods ordered by start date descending.
	ListPeriods(ctx context.Context) ([]domain.Period, error)
	// FindCurrentPeriod returns the period flagged current, the latest starting one if
	// several are, or apperrors.ErrNotFound.
	FindCurrentPeriod(ctx context.Context) (*domain.Period, error)
}

type PeriodWriter interface {
	SavePeriod(ctx context.Context, period domain.Period) error
}

type PeriodRepositoryFacade interface {
	PeriodReader
	PeriodWriter
}
