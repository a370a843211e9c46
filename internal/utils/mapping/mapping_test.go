package mapping

import (
	"testing"
	"time"

	"github.com/SscSPs/ledger_core/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestTransactionMapping_CategoryLink(t *testing.T) {
	ref := "INV-9"
	d := domain.Transaction{
		TransactionID: "t1",
		Type:          domain.Sales,
		Amount:        decimal.NewFromInt(10),
		Date:          time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
		PeriodID:      "p1",
		Reference:     &ref,
		Category:      &domain.CategoryLink{Kind: domain.CategoryRevenue, RecordID: "r1"},
	}

	m := ToModelTransaction(d)
	assert.True(t, m.CategoryKind.Valid)
	assert.Equal(t, "REVENUE", m.CategoryKind.String)
	assert.Equal(t, "INV-9", m.Reference.String)

	back := ToDomainTransaction(m)
	assert.Equal(t, d.Category, back.Category)
	assert.Equal(t, "INV-9", *back.Reference)
	assert.NotNil(t, back.Entries)

	m.CategoryID.Valid = false
	assert.Nil(t, ToDomainTransaction(m).Category)
}

func TestJournalEntryMapping_NullSides(t *testing.T) {
	amt := decimal.RequireFromString("12.50")
	m := ToModelJournalEntry(domain.JournalEntry{EntryID: "e1", AccountID: "a1", Credit: &amt})

	assert.False(t, m.Debit.Valid)
	assert.True(t, m.Credit.Valid)
	assert.False(t, m.Description.Valid)

	d := ToDomainJournalEntry(m)
	assert.Nil(t, d.Debit)
	assert.True(t, amt.Equal(*d.Credit))
}

func TestCategoryRecordMapping_EquityFields(t *testing.T) {
	shares := int64(500)
	par := decimal.RequireFromString("0.10")
	m := ToModelCategoryRecord(domain.CategoryRecord{Kind: domain.CategoryEquity, SharesOutstanding: &shares, ParValue: &par})

	assert.True(t, m.SharesOutstanding.Valid)
	assert.False(t, m.RecordDate.Valid)

	d := ToDomainCategoryRecord(m)
	assert.Equal(t, int64(500), *d.SharesOutstanding)
	assert.Nil(t, d.Date)
}
