package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CategoryKind names the subsidiary ledger a category record belongs to.
type CategoryKind string

const (
	CategoryAsset     CategoryKind = "ASSET"
	CategoryLiability CategoryKind = "LIABILITY"
	CategoryEquity    CategoryKind = "EQUITY"
	CategoryRevenue   CategoryKind = "REVENUE"
	CategoryExpense   CategoryKind = "EXPENSE"
)

// IsValid reports whether k is a known category kind.
func (k CategoryKind) IsValid() bool {
	switch k {
	case CategoryAsset, CategoryLiability, CategoryEquity, CategoryRevenue, CategoryExpense:
		return true
	}
	return false
}

// CategoryLink points a transaction at one category record.
type CategoryLink struct {
	Kind     CategoryKind `json:"kind"`
	RecordID string       `json:"recordID"`
}

// CategoryRecord is a subsidiary ledger record (asset, liability, equity, revenue or expense).
//
// Amount holds the kind's monetary value: an asset's current value, a liability's amount owed,
// equity's retained earnings, or a revenue/expense amount. Label is the asset name, creditor,
// equity class, revenue source or expense category. Date is the acquisition, due or booking date.
// SharesOutstanding and ParValue are only meaningful for equity.
type CategoryRecord struct {
	RecordID          string           `json:"recordID"`
	Kind              CategoryKind     `json:"kind"`
	Label             string           `json:"label"`
	Amount            decimal.Decimal  `json:"amount"`
	Date              *time.Time       `json:"date,omitempty"`
	SharesOutstanding *int64           `json:"sharesOutstanding,omitempty"`
	ParValue          *decimal.Decimal `json:"parValue,omitempty"`
	IsRecurring       bool             `json:"isRecurring"`
	Description       string           `json:"description"`
	AuditFields
}

// Link returns the CategoryLink that references r.
func (r CategoryRecord) Link() CategoryLink {
	return CategoryLink{Kind: r.Kind, RecordID: r.RecordID}
}

// EquityValue is retained earnings plus paid-in capital (par value times shares outstanding).
func (r CategoryRecord) EquityValue() decimal.Decimal {
	total := r.Amount
	if r.ParValue != nil && r.SharesOutstanding != nil {
		total = total.Add(r.ParValue.Mul(decimal.NewFromInt(*r.SharesOutstanding)))
	}
	return total
}

// CategoryTotals sums category records per kind.
type CategoryTotals struct {
	Assets      decimal.Decimal `json:"assets"`
	Liabilities decimal.Decimal `json:"liabilities"`
	Equity      decimal.Decimal `json:"equity"`
	Revenue     decimal.Decimal `json:"revenue"`
	Expenses    decimal.Decimal `json:"expenses"`
}
