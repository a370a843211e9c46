package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType is the business category of a transaction.
type TransactionType string

const (
	Sales        TransactionType = "SALES"
	Purchases    TransactionType = "PURCHASES"
	Payments     TransactionType = "PAYMENTS"
	Receipts     TransactionType = "RECEIPTS"
	Adjustments  TransactionType = "ADJUSTMENTS"
	Depreciation TransactionType = "DEPRECIATION"
)

// IsValid reports whether t is a known transaction type.
func (t TransactionType) IsValid() bool {
	switch t {
	case Sales, Purchases, Payments, Receipts, Adjustments, Depreciation:
		return true
	}
	return false
}

// Transaction groups journal entries that move value between accounts.
// Amount is informational; the entries carry the authoritative amounts.
// Once IsBalanced is true the transaction can be neither updated nor deleted.
type Transaction struct {
	TransactionID string          `json:"transactionID"`
	Type          TransactionType `json:"type"`
	Description   string          `json:"description"`
	Amount        decimal.Decimal `json:"amount"`
	Date          time.Time       `json:"date"`
	PeriodID      string          `json:"periodID"`
	Reference     *string         `json:"reference,omitempty"`
	Category      *CategoryLink   `json:"category,omitempty"`
	IsBalanced    bool            `json:"isBalanced"`
	Entries       []JournalEntry  `json:"entries"`
	// Linked is the resolved category record, populated on single reads.
	Linked *CategoryRecord `json:"linked,omitempty"`
	AuditFields
}

// Drafts converts the persisted entries back into validator input.
func (t Transaction) Drafts() []JournalEntryDraft {
	drafts := make([]JournalEntryDraft, len(t.Entries))
	for i, e := range t.Entries {
		drafts[i] = JournalEntryDraft{
			AccountID:   e.AccountID,
			Debit:       e.Debit,
			Credit:      e.Credit,
			Description: e.Description,
		}
	}
	return drafts
}

// JournalEntry is one debit or credit line of a transaction.
// Exactly one of Debit and Credit is set.
type JournalEntry struct {
	EntryID       string           `json:"entryID"`
	TransactionID string           `json:"transactionID"`
	AccountID     string           `json:"accountID"`
	Debit         *decimal.Decimal `json:"debit,omitempty"`
	Credit        *decimal.Decimal `json:"credit,omitempty"`
	Description   *string          `json:"description,omitempty"`
	Position      int              `json:"position"`
	Account       *Account         `json:"account,omitempty"`
}

// Net returns debit minus credit for the entry, treating a missing side as zero.
func (e JournalEntry) Net() decimal.Decimal {
	net := decimal.Zero
	if e.Debit != nil {
		net = net.Add(*e.Debit)
	}
	if e.Credit != nil {
		net = net.Sub(*e.Credit)
	}
	return net
}

// JournalEntryDraft is a candidate entry submitted for validation.
type JournalEntryDraft struct {
	AccountID   string
	Debit       *decimal.Decimal
	Credit      *decimal.Decimal
	Description *string
}

// TransactionDraft is the input to transaction creation.
type TransactionDraft struct {
	Type        TransactionType
	Description string
	Amount      decimal.Decimal
	Date        time.Time
	PeriodID    string
	Reference   *string
	Category    *CategoryLink
	Entries     []JournalEntryDraft
}

// TransactionUpdate holds the transaction-level fields that may change while unbalanced.
// Nil means unchanged. The entry set is never updated in place.
// ClearReference and ClearCategory remove the optional links; they cannot be combined
// with a new value for the same field.
type TransactionUpdate struct {
	Type           *TransactionType
	Description    *string
	Amount         *decimal.Decimal
	Date           *time.Time
	PeriodID       *string
	Reference      *string
	Category       *CategoryLink
	ClearReference bool
	ClearCategory  bool
}

// IsEmpty reports whether the update changes nothing.
func (u TransactionUpdate) IsEmpty() bool {
	return u.Type == nil && u.Description == nil && u.Amount == nil && u.Date == nil &&
		u.PeriodID == nil && u.Reference == nil && u.Category == nil &&
		!u.ClearReference && !u.ClearCategory
}

// ApplyTo copies the set fields onto t.
func (u TransactionUpdate) ApplyTo(t *Transaction) {
	if u.Type != nil {
		t.Type = *u.Type
	}
	if u.Description != nil {
		t.Description = *u.Description
	}
	if u.Amount != nil {
		t.Amount = *u.Amount
	}
	if u.Date != nil {
		t.Date = *u.Date
	}
	if u.PeriodID != nil {
		t.PeriodID = *u.PeriodID
	}
	switch {
	case u.ClearReference:
		t.Reference = nil
	case u.Reference != nil:
		t.Reference = u.Reference
	}
	switch {
	case u.ClearCategory:
		t.Category = nil
		t.Linked = nil
	case u.Category != nil:
		t.Category = u.Category
	}
}

// TransactionFilter narrows ListTransactions. Filters combine with AND.
type TransactionFilter struct {
	Type       *TransactionType
	DateRange  DateRange
	IsBalanced *bool
}

// TransactionPage is one page of a filtered transaction listing.
type TransactionPage struct {
	Transactions []Transaction `json:"transactions"`
	Total        int           `json:"total"`
	Page         int           `json:"page"`
	PageSize     int           `json:"pageSize"`
	TotalPages   int           `json:"totalPages"`
}

// EntryFilter selects journal entries of balanced transactions.
type EntryFilter struct {
	AccountID *string
	DateRange DateRange
}
