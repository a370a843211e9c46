package services

import (
	"context"

	"github.com/SscSPs/ledger_core/internal/core/domain"
)

type PeriodSvcFacade interface {
	CreatePeriod(ctx context.Context, period domain.Period) (*domain.Period, error)
	GetPeriod(ctx context.Context, periodID string) (*domain.Period, error)
	ListPeriods(ctx context.Context) ([]domain.Period, error)

	// GetCurrentPeriod returns the period flagged current, or apperrors.ErrNotFound.
	GetCurrentPeriod(ctx context.Context) (*domain.Period, error)

	// ClosePeriod marks the period closed and clears its current flag. It fails with
	// apperrors.ErrConflict while unbalanced transactions are booked into the period.
	// Closing a closed period returns it unchanged.
	ClosePeriod(ctx context.Context, periodID string) (*domain.Period, error)
}
