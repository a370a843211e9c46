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
	"github.com/SscSPs/ledger_core/internal/utils/accounting"
)

type categoryService struct {
	BaseService
	categoryRepo portsrepo.CategoryRepositoryFacade
}

// NewCategoryService creates the subsidiary ledger record service.
func NewCategoryService(repo portsrepo.CategoryRepositoryFacade, options ...ServiceOption) portssvc.CategorySvcFacade {
	return &categoryService{
		BaseService:  newBaseService(options...),
		categoryRepo: repo,
	}
}

var _ portssvc.CategorySvcFacade = (*categoryService)(nil)

func (s *categoryService) RecordCategory(ctx context.Context, record domain.CategoryRecord) (*domain.CategoryRecord, []string, error) {
	validation := accounting.ValidateCategoryRecord(record)
	if !validation.IsValid {
		return nil, nil, apperrors.NewValidationError("invalid category record", validation.Errors, validation.Warnings)
	}

	now := s.Now()
	record.RecordID = s.NewID()
	record.CreatedAt = now
	record.LastUpdatedAt = now
	if record.Kind != domain.CategoryEquity {
		record.SharesOutstanding = nil
		record.ParValue = nil
	}

	if err := s.categoryRepo.SaveCategoryRecord(ctx, record); err != nil {
		return nil, nil, s.boundaryError(ctx, err, "failed to record category", slog.String("kind", string(record.Kind)))
	}
	s.LogInfo(ctx, "Category record created",
		slog.String("record_id", record.RecordID),
		slog.String("kind", string(record.Kind)),
		slog.Int("warning_count", len(validation.Warnings)))
	return &record, validation.Warnings, nil
}

func (s *categoryService) GetCategory(ctx context.Context, link domain.CategoryLink) (*domain.CategoryRecord, error) {
	if !link.Kind.IsValid() {
		return nil, fmt.Errorf("%w: unknown category kind %q", apperrors.ErrValidation, link.Kind)
	}
	record, err := s.categoryRepo.FindCategoryRecord(ctx, link)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("category record not found")
		}
		return nil, s.boundaryError(ctx, err, "failed to get category record", slog.String("record_id", link.RecordID))
	}
	return record, nil
}

func (s *categoryService) ListCategories(ctx context.Context, kind *domain.CategoryKind) ([]domain.CategoryRecord, error) {
	if kind != nil && !kind.IsValid() {
		return nil, fmt.Errorf("%w: unknown category kind %q", apperrors.ErrValidation, *kind)
	}
	records, err := s.categoryRepo.ListCategoryRecords(ctx, kind)
	if err != nil {
		return nil, s.boundaryError(ctx, err, "failed to list category records")
	}
	return records, nil
}
