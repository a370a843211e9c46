package repositories

import (
	"context"

	"github.com/SscSPs/ledger_core/internal/core/domain"
)

// TransactionReader defines read operations for transaction data.
// Returned transactions carry their entries in position order, each with its Account attached.
type TransactionReader interface {
	// FindTransactionByID returns apperrors.ErrNotFound when the id is unknown.
	FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)

	// ListTransactions returns one page ordered by date descending and the total number of matches.
	ListTransactions(ctx context.Context, filter domain.TransactionFilter, limit, offset int) ([]domain.Transaction, int, error)

	// ListUnbalancedTransactions returns every unbalanced transaction, newest first.
	ListUnbalancedTransactions(ctx context.Context) ([]domain.Transaction, error)
}

// JournalEntryReader reads entries of balanced transactions only.
type JournalEntryReader interface {
	ListBalancedEntries(ctx context.Context, filter domain.EntryFilter) ([]domain.JournalEntry, error)
}

// TransactionAggregator groups transactions by type: count and sum of the informational amount.
type TransactionAggregator interface {
	SummarizeByType(ctx context.Context, dateRange domain.DateRange) ([]domain.TypeSummary, error)
}

// TransactionRepositoryFacade combines the non-transactional transaction reads.
type TransactionRepositoryFacade interface {
	TransactionReader
	JournalEntryReader
	TransactionAggregator
}

// TxRepository is the view of storage available inside a UnitOfWork.
type TxRepository interface {
	// LockTransactionByID loads a transaction and holds it against concurrent writers until the unit ends.
	LockTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)
	FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)

	// InsertTransaction writes the transaction row and all of its entries.
	InsertTransaction(ctx context.Context, txn domain.Transaction) error
	// UpdateTransaction rewrites the transaction-level columns. Entries are untouched.
	UpdateTransaction(ctx context.Context, txn domain.Transaction) error
	// DeleteTransaction removes the transaction and cascades to its entries.
	DeleteTransaction(ctx context.Context, transactionID string) error

	FindAccountsByIDs(ctx context.Context, accountIDs []string) (map[string]domain.Account, error)
	FindPeriodByID(ctx context.Context, periodID string) (*domain.Period, error)
	// LockPeriodByID loads a period and holds it against concurrent writers until the unit ends.
	LockPeriodByID(ctx context.Context, periodID string) (*domain.Period, error)
	// UpdatePeriodStatus rewrites status, is_current and last_updated_at.
	UpdatePeriodStatus(ctx context.Context, period domain.Period) error
	// CountUnbalancedInPeriod counts the unbalanced transactions booked into the period.
	CountUnbalancedInPeriod(ctx context.Context, periodID string) (int, error)
	FindCategoryRecord(ctx context.Context, link domain.CategoryLink) (*domain.CategoryRecord, error)
}
