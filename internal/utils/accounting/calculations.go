package accounting

import (
	"fmt"

	"github.com/SscSPs/ledger_core/internal/core/domain"
	"github.com/shopspring/decimal"
)

// EquationTolerance is the absolute difference still accepted between
// assets and liabilities plus equity, in the ledger's base currency unit.
var EquationTolerance = decimal.New(1, -2)

// CalculateSignedAmount returns the entry's effect on the account's normal balance.
//
// DEBIT to ASSET/EXPENSE -> positive, CREDIT -> negative.
// CREDIT to LIABILITY/EQUITY/REVENUE -> positive, DEBIT -> negative.
func CalculateSignedAmount(entry domain.JournalEntry, accountType domain.AccountType) (decimal.Decimal, error) {
	net := entry.Net()
	switch accountType {
	case domain.Asset, domain.Expense:
		return net, nil
	case domain.Liability, domain.Equity, domain.Revenue:
		return net.Neg(), nil
	default:
		return decimal.Zero, fmt.Errorf("unknown account type '%s' encountered for account ID %s", accountType, entry.AccountID)
	}
}

// FoldAccountBalance sums debit minus credit over the given entries.
// The caller is responsible for passing only entries of balanced transactions.
func FoldAccountBalance(entries []domain.JournalEntry) decimal.Decimal {
	balance := decimal.Zero
	for _, e := range entries {
		balance = balance.Add(e.Net())
	}
	return balance
}

// ValidateAccountingEquation checks Assets = Liabilities + Equity within EquationTolerance.
// A difference of exactly the tolerance is valid.
func ValidateAccountingEquation(totalAssets, totalLiabilities, totalEquity decimal.Decimal) domain.EquationResult {
	rhs := totalLiabilities.Add(totalEquity)
	diff := totalAssets.Sub(rhs).Abs()

	result := domain.EquationResult{
		TotalAssets:      totalAssets,
		TotalLiabilities: totalLiabilities,
		TotalEquity:      totalEquity,
		Difference:       diff,
		IsValid:          diff.LessThanOrEqual(EquationTolerance),
		Errors:           []string{},
	}
	if !result.IsValid {
		result.Errors = append(result.Errors, fmt.Sprintf(
			"Accounting equation not balanced. Assets (%s) ≠ Liabilities + Equity (%s)",
			totalAssets.String(), rhs.String()))
	}
	return result
}

// LedgerTotalsFromEntries buckets balanced entries by their account's type on the normal side.
// Every entry must carry its Account.
func LedgerTotalsFromEntries(entries []domain.JournalEntry) (domain.LedgerTotals, error) {
	totals := domain.LedgerTotals{
		Assets:      decimal.Zero,
		Liabilities: decimal.Zero,
		Equity:      decimal.Zero,
		Revenue:     decimal.Zero,
		Expenses:    decimal.Zero,
	}
	for _, e := range entries {
		if e.Account == nil {
			return totals, fmt.Errorf("entry %s has no account attached", e.EntryID)
		}
		signed, err := CalculateSignedAmount(e, e.Account.AccountType)
		if err != nil {
			return totals, err
		}
		switch e.Account.AccountType {
		case domain.Asset:
			totals.Assets = totals.Assets.Add(signed)
		case domain.Liability:
			totals.Liabilities = totals.Liabilities.Add(signed)
		case domain.Equity:
			totals.Equity = totals.Equity.Add(signed)
		case domain.Revenue:
			totals.Revenue = totals.Revenue.Add(signed)
		case domain.Expense:
			totals.Expenses = totals.Expenses.Add(signed)
		}
	}
	return totals, nil
}

// TotalCategoryRecords sums category records per kind.
// Equity counts retained earnings plus par value times shares outstanding.
func TotalCategoryRecords(records []domain.CategoryRecord) domain.CategoryTotals {
	totals := domain.CategoryTotals{
		Assets:      decimal.Zero,
		Liabilities: decimal.Zero,
		Equity:      decimal.Zero,
		Revenue:     decimal.Zero,
		Expenses:    decimal.Zero,
	}
	for _, r := range records {
		switch r.Kind {
		case domain.CategoryAsset:
			totals.Assets = totals.Assets.Add(r.Amount)
		case domain.CategoryLiability:
			totals.Liabilities = totals.Liabilities.Add(r.Amount)
		case domain.CategoryEquity:
			totals.Equity = totals.Equity.Add(r.EquityValue())
		case domain.CategoryRevenue:
			totals.Revenue = totals.Revenue.Add(r.Amount)
		case domain.CategoryExpense:
			totals.Expenses = totals.Expenses.Add(r.Amount)
		}
	}
	return totals
}
