package services

import (
	"context"

	"github.com/SscSPs/ledger_core/internal/core/domain"
)

// CategorySvcFacade manages subsidiary ledger records transactions may link to.
type CategorySvcFacade interface {
	// RecordCategory validates and stores a record. Warnings are returned alongside the record.
	RecordCategory(ctx context.Context, record domain.CategoryRecord) (*domain.CategoryRecord, []string, error)
	GetCategory(ctx context.Context, link domain.CategoryLink) (*domain.CategoryRecord, error)
	ListCategories(ctx context.Context, kind *domain.CategoryKind) ([]domain.CategoryRecord, error)
}
