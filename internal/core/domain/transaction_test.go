package domain_test

import (
	"testing"
	"time"

	"github.com/SscSPs/ledger_core/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func decimalPtr(d decimal.Decimal) *decimal.Decimal {
	return &d
}

func stringPtr(s string) *string {
	return &s
}

func TestJournalEntry_Net(t *testing.T) {
	tests := []struct {
		name  string
		entry domain.JournalEntry
		want  decimal.Decimal
	}{
		{
			name:  "debit only",
			entry: domain.JournalEntry{Debit: decimalPtr(decimal.RequireFromString("5000.00"))},
			want:  decimal.RequireFromString("5000"),
		},
		{
			name:  "credit only",
			entry: domain.JournalEntry{Credit: decimalPtr(decimal.RequireFromString("12.34"))},
			want:  decimal.RequireFromString("-12.34"),
		},
		{
			name:  "neither side",
			entry: domain.JournalEntry{},
			want:  decimal.Zero,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, tt.want.Equal(tt.entry.Net()), "got %s", tt.entry.Net())
		})
	}
}

func TestTransactionUpdate_ApplyTo(t *testing.T) {
	original := domain.Transaction{
		TransactionID: "txn_1",
		Type:          domain.Sales,
		Description:   "invoice 42",
		Amount:        decimal.NewFromInt(100),
		PeriodID:      "p1",
	}

	newType := domain.Receipts
	newDate := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	update := domain.TransactionUpdate{
		Type:      &newType,
		Date:      &newDate,
		Reference: stringPtr("CHK-001"),
	}
	assert.False(t, update.IsEmpty())

	update.ApplyTo(&original)

	assert.Equal(t, domain.Receipts, original.Type)
	assert.Equal(t, "invoice 42", original.Description)
	assert.Equal(t, newDate, original.Date)
	assert.Equal(t, "CHK-001", *original.Reference)
	assert.True(t, decimal.NewFromInt(100).Equal(original.Amount))
	assert.True(t, domain.TransactionUpdate{}.IsEmpty())
}

func TestTransactionUpdate_ClearsOptionalLinks(t *testing.T) {
	original := domain.Transaction{
		Reference: stringPtr("INV-7"),
		Category:  &domain.CategoryLink{Kind: domain.CategoryRevenue, RecordID: "r1"},
		Linked:    &domain.CategoryRecord{RecordID: "r1"},
	}

	update := domain.TransactionUpdate{ClearReference: true, ClearCategory: true}
	assert.False(t, update.IsEmpty())

	update.ApplyTo(&original)

	assert.Nil(t, original.Reference)
	assert.Nil(t, original.Category)
	assert.Nil(t, original.Linked)
}

func TestTransaction_Drafts(t *testing.T) {
	txn := domain.Transaction{
		Entries: []domain.JournalEntry{
			{AccountID: "cash", Debit: decimalPtr(decimal.NewFromInt(10))},
			{AccountID: "sales", Credit: decimalPtr(decimal.NewFromInt(10)), Description: stringPtr("sale")},
		},
	}

	drafts := txn.Drafts()

	assert.Len(t, drafts, 2)
	assert.Equal(t, "cash", drafts[0].AccountID)
	assert.Nil(t, drafts[0].Credit)
	assert.Equal(t, "sale", *drafts[1].Description)
}

func TestDateRange_Contains(t *testing.T) {
	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)
	r := domain.DateRange{From: &from, To: &to}

	assert.True(t, r.Contains(from))
	assert.True(t, r.Contains(to))
	assert.True(t, r.Contains(from.AddDate(0, 0, 10)))
	assert.False(t, r.Contains(from.Add(-time.Second)))
	assert.False(t, r.Contains(to.Add(time.Second)))
	assert.True(t, domain.DateRange{}.Contains(to.AddDate(10, 0, 0)))
	assert.True(t, domain.DateRange{}.IsZero())
}

func TestEnums(t *testing.T) {
	assert.True(t, domain.Depreciation.IsValid())
	assert.False(t, domain.TransactionType("REFUNDS").IsValid())
	assert.True(t, domain.Revenue.IsValid())
	assert.False(t, domain.AccountType("INCOME").IsValid())
	assert.True(t, domain.Asset.IsDebitNormal())
	assert.True(t, domain.Expense.IsDebitNormal())
	assert.False(t, domain.Liability.IsDebitNormal())
	assert.True(t, domain.AccountArchived.IsValid())
	assert.True(t, domain.CategoryEquity.IsValid())
	assert.False(t, domain.PeriodType("WEEKLY").IsValid())
}

func TestCategoryRecord_EquityValue(t *testing.T) {
	shares := int64(1000)
	rec := domain.CategoryRecord{
		Kind:              domain.CategoryEquity,
		Amount:            decimal.RequireFromString("2500.50"),
		SharesOutstanding: &shares,
		ParValue:          decimalPtr(decimal.RequireFromString("1.25")),
	}
	assert.Equal(t, "3750.5", rec.EquityValue().String())

	rec.ParValue = nil
	assert.Equal(t, "2500.5", rec.EquityValue().String())
}
