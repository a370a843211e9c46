package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/ledger_core/internal/apperrors"
	"github.com/SscSPs/ledger_core/internal/core/domain"
	portsrepo "github.com/SscSPs/ledger_core/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/ledger_core/internal/core/ports/services"
)

type periodService struct {
	BaseService
	periodRepo portsrepo.PeriodRepositoryFacade
	uow        portsrepo.UnitOfWork
}

func NewPeriodService(repo portsrepo.PeriodRepositoryFacade, uow portsrepo.UnitOfWork, options ...ServiceOption) portssvc.PeriodSvcFacade {
	return &periodService{
		BaseService: newBaseService(options...),
		periodRepo:  repo,
		uow:         uow,
	}
}

var _ portssvc.PeriodSvcFacade = (*periodService)(nil)

func (s *periodService) CreatePeriod(ctx context.Context, period domain.Period) (*domain.Period, error) {
	if period.Name == "" {
		return nil, fmt.Errorf("%w: period name is required", apperrors.ErrValidation)
	}
	if !period.PeriodType.IsValid() {
		return nil, fmt.Errorf("%w: unknown period type %q", apperrors.ErrValidation, period.PeriodType)
	}
	if period.StartDate.IsZero() || period.EndDate.IsZero() {
		return nil, fmt.Errorf("%w: period start and end dates are required", apperrors.ErrValidation)
	}
	if period.EndDate.Before(period.StartDate) {
		return nil, fmt.Errorf("%w: period ends before it starts", apperrors.ErrValidation)
	}

	now := s.Now()
	period.PeriodID = s.NewID()
	period.StartDate = period.StartDate.UTC()
	period.EndDate = period.EndDate.UTC()
	period.Status = domain.PeriodOpen
	period.CreatedAt = now
	period.LastUpdatedAt = now

	if err := s.periodRepo.SavePeriod(ctx, period); err != nil {
		return nil, s.boundaryError(ctx, err, "failed to create period", slog.String("name", period.Name))
	}
	s.LogInfo(ctx, "Period created", slog.String("period_id", period.PeriodID), slog.Bool("is_current", period.IsCurrent))
	return &period, nil
}

func (s *periodService) GetPeriod(ctx context.Context, periodID string) (*domain.Period, error) {
	period, err := s.periodRepo.FindPeriodByID(ctx, periodID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("period not found")
		}
		return nil, s.boundaryError(ctx, err, "failed to get period", slog.String("period_id", periodID))
	}
	return period, nil
}

func (s *periodService) ListPeriods(ctx context.Context) ([]domain.Period, error) {
	periods, err := s.periodRepo.ListPeriods(ctx)
	if err != nil {
		return nil, s.boundaryError(ctx, err, "failed to list periods")
	}
	return periods, nil
}

func (s *periodService) GetCurrentPeriod(ctx context.Context) (*domain.Period, error) {
	period, err := s.periodRepo.FindCurrentPeriod(ctx)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("no current period")
		}
		return nil, s.boundaryError(ctx, err, "failed to get current period")
	}
	return period, nil
}

// ClosePeriod locks the period, counts its unbalanced transactions and writes the
// new status in one unit of work, so no pending transaction can slip in between.
func (s *periodService) ClosePeriod(ctx context.Context, periodID string) (*domain.Period, error) {
	var closed *domain.Period
	err := s.uow.RunInTx(ctx, func(ctx context.Context, tx portsrepo.TxRepository) error {
		period, err := tx.LockPeriodByID(ctx, periodID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return apperrors.NewNotFoundError("period not found")
			}
			return err
		}
		if period.IsClosed() {
			closed = period
			return nil
		}

		pending, err := tx.CountUnbalancedInPeriod(ctx, periodID)
		if err != nil {
			return err
		}
		if pending > 0 {
			return fmt.Errorf("%w: period %s has %d unbalanced transactions", apperrors.ErrConflict, periodID, pending)
		}

		period.Status = domain.PeriodClosed
		period.IsCurrent = false
		period.LastUpdatedAt = s.Now()
		if err := tx.UpdatePeriodStatus(ctx, *period); err != nil {
			return err
		}
		closed = period
		return nil
	})
	if err != nil {
		return nil, s.boundaryError(ctx, err, "failed to close period", slog.String("period_id", periodID))
	}

	s.LogInfo(ctx, "Period closed", slog.String("period_id", periodID))
	return closed, nil
}
