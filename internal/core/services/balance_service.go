package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/SscSPs/ledger_core/internal/apperrors"
	"github.com/SscSPs/ledger_core/internal/core/domain"
	portsrepo "github.com/SscSPs/ledger_core/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/ledger_core/internal/core/ports/services"
	"github.com/SscSPs/ledger_core/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

type balanceService struct {
	BaseService
	entryRepo    portsrepo.JournalEntryReader
	accountRepo  portsrepo.AccountReader
	categoryRepo portsrepo.CategoryReader
}

// NewBalanceService creates the balance and accounting equation service.
func NewBalanceService(
	entryRepo portsrepo.JournalEntryReader,
	accountRepo portsrepo.AccountReader,
	categoryRepo portsrepo.CategoryReader,
	options ...ServiceOption,
) portssvc.BalanceSvcFacade {
	return &balanceService{
		BaseService:  newBaseService(options...),
		entryRepo:    entryRepo,
		accountRepo:  accountRepo,
		categoryRepo: categoryRepo,
	}
}

var _ portssvc.BalanceSvcFacade = (*balanceService)(nil)

// AccountBalance is debit minus credit over the account's entries in balanced transactions.
func (s *balanceService) AccountBalance(ctx context.Context, accountID string, dateRange domain.DateRange) (decimal.Decimal, error) {
	if err := validateDateRange(dateRange); err != nil {
		return decimal.Zero, err
	}
	if _, err := s.accountRepo.FindAccountByID(ctx, accountID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return decimal.Zero, apperrors.NewNotFoundError("account not found")
		}
		return decimal.Zero, s.boundaryError(ctx, err, "failed to calculate account balance", slog.String("account_id", accountID))
	}

	entries, err := s.entryRepo.ListBalancedEntries(ctx, domain.EntryFilter{AccountID: &accountID, DateRange: dateRange})
	if err != nil {
		return decimal.Zero, s.boundaryError(ctx, err, "failed to calculate account balance", slog.String("account_id", accountID))
	}

	balance := accounting.FoldAccountBalance(entries)
	s.LogDebug(ctx, "Account balance calculated",
		slog.String("account_id", accountID),
		slog.Int("entry_count", len(entries)),
		slog.String("balance", balance.String()))
	return balance, nil
}

func (s *balanceService) ValidateAccountingEquation(totalAssets, totalLiabilities, totalEquity decimal.Decimal) domain.EquationResult {
	return accounting.ValidateAccountingEquation(totalAssets, totalLiabilities, totalEquity)
}

// CheckCategoryEquation totals the subsidiary ledger records and checks the equation.
func (s *balanceService) CheckCategoryEquation(ctx context.Context) (*domain.EquationResult, error) {
	records, err := s.categoryRepo.ListCategoryRecords(ctx, nil)
	if err != nil {
		return nil, s.boundaryError(ctx, err, "failed to check accounting equation")
	}

	totals := accounting.TotalCategoryRecords(records)
	result := accounting.ValidateAccountingEquation(totals.Assets, totals.Liabilities, totals.Equity)
	s.logEquation(ctx, "category", result)
	return &result, nil
}

// CheckLedgerEquation derives totals from balanced entries up to asOf.
// Net income is folded into equity, since revenue and expense accounts are not closed.
func (s *balanceService) CheckLedgerEquation(ctx context.Context, asOf *time.Time) (*domain.EquationResult, error) {
	entries, err := s.entryRepo.ListBalancedEntries(ctx, domain.EntryFilter{DateRange: domain.DateRange{To: asOf}})
	if err != nil {
		return nil, s.boundaryError(ctx, err, "failed to check accounting equation")
	}

	totals, err := accounting.LedgerTotalsFromEntries(entries)
	if err != nil {
		return nil, s.boundaryError(ctx, err, "failed to check accounting equation")
	}

	result := accounting.ValidateAccountingEquation(totals.Assets, totals.Liabilities, totals.Equity.Add(totals.NetIncome()))
	s.logEquation(ctx, "ledger", result)
	return &result, nil
}

func (s *balanceService) logEquation(ctx context.Context, source string, result domain.EquationResult) {
	if result.IsValid {
		s.LogDebug(ctx, "Accounting equation holds", slog.String("source", source))
		return
	}
	s.GetLogger(ctx).Warn("Accounting equation does not hold",
		slog.String("source", source),
		slog.String("difference", result.Difference.String()))
}
