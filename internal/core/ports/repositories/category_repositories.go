package repositories

import (
	"context"

	"github.com/SscSPs/ledger_core/internal/core/domain"
)

// CategoryReader reads subsidiary ledger records.
type CategoryReader interface {
	FindCategoryRecord(ctx context.Context, link domain.CategoryLink) (*domain.CategoryRecord, error)
	// ListCategoryRecords returns every record of kind, or all records when kind is nil.
	ListCategoryRecords(ctx context.Context, kind *domain.CategoryKind) ([]domain.CategoryRecord, error)
}

// CategoryWriter stores subsidiary ledger records. The ledger never changes them afterwards.
type CategoryWriter interface {
	SaveCategoryRecord(ctx context.Context, record domain.CategoryRecord) error
}

type CategoryRepositoryFacade interface {
	CategoryReader
	CategoryWriter
}
