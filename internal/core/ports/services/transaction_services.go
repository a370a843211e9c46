package services

import (
	"context"

	"github.com/SscSPs/ledger_core/internal/core/domain"
)

// TransactionReaderSvc defines read operations for transactions.
type TransactionReaderSvc interface {
	// GetTransaction returns the transaction with entries, their accounts and any linked category record.
	GetTransaction(ctx context.Context, transactionID string) (*domain.Transaction, error)

	// ListTransactions returns a page ordered by date descending. Out-of-range page values are clamped.
	ListTransactions(ctx context.Context, page, pageSize int, filter domain.TransactionFilter) (*domain.TransactionPage, error)

	// GetUnbalancedTransactions returns the reconciliation queue, newest first.
	GetUnbalancedTransactions(ctx context.Context) ([]domain.Transaction, error)
}

// TransactionWriterSvc defines the lifecycle operations on transactions.
type TransactionWriterSvc interface {
	// CreateTransaction validates the entries and stores the transaction with them atomically.
	// Field and entry rules are reported together first; period, account and category
	// references are resolved only once those pass, and their failures are reported in a
	// second ValidationError.
	CreateTransaction(ctx context.Context, draft domain.TransactionDraft) (*domain.Transaction, error)

	// CreatePendingTransaction stores a structurally valid transaction as unbalanced,
	// for review before BalanceTransaction.
	CreatePendingTransaction(ctx context.Context, draft domain.TransactionDraft) (*domain.Transaction, error)

	// UpdateTransaction changes transaction-level fields of an unbalanced transaction.
	UpdateTransaction(ctx context.Context, transactionID string, update domain.TransactionUpdate) (*domain.Transaction, error)

	// DeleteTransaction removes an unbalanced transaction and its entries.
	DeleteTransaction(ctx context.Context, transactionID string) (bool, error)

	// BalanceTransaction re-validates the stored entries and marks the transaction balanced.
	BalanceTransaction(ctx context.Context, transactionID string) (*domain.Transaction, error)
}

// TransactionSvcFacade combines all transaction service interfaces.
type TransactionSvcFacade interface {
	TransactionReaderSvc
	TransactionWriterSvc
}
