package services

import (
	"context"
	"time"

	"github.com/SscSPs/ledger_core/internal/core/domain"
	"github.com/shopspring/decimal"
)

// BalanceSvcFacade derives balances and checks the accounting equation.
type BalanceSvcFacade interface {
	// AccountBalance folds debit minus credit over entries of balanced transactions.
	AccountBalance(ctx context.Context, accountID string, dateRange domain.DateRange) (decimal.Decimal, error)

	// ValidateAccountingEquation checks caller-supplied totals.
	ValidateAccountingEquation(totalAssets, totalLiabilities, totalEquity decimal.Decimal) domain.EquationResult

	// CheckCategoryEquation checks the equation against the stored category records.
	CheckCategoryEquation(ctx context.Context) (*domain.EquationResult, error)

	// CheckLedgerEquation checks the equation against balanced journal entries up to asOf.
	CheckLedgerEquation(ctx context.Context, asOf *time.Time) (*domain.EquationResult, error)
}
