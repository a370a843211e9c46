package domain

import "github.com/shopspring/decimal"

// TypeSummary aggregates transactions of one type.
// TotalAmount sums the informational Transaction.Amount, not entry totals.
type TypeSummary struct {
	Type        TransactionType `json:"type"`
	Count       int             `json:"count"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
}

// LedgerTotals holds the normal-side balance of every account type, derived from balanced entries.
type LedgerTotals struct {
	Assets      decimal.Decimal `json:"assets"`
	Liabilities decimal.Decimal `json:"liabilities"`
	Equity      decimal.Decimal `json:"equity"`
	Revenue     decimal.Decimal `json:"revenue"`
	Expenses    decimal.Decimal `json:"expenses"`
}

// NetIncome is revenue less expenses.
func (t LedgerTotals) NetIncome() decimal.Decimal {
	return t.Revenue.Sub(t.Expenses)
}
