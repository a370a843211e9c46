package models

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is the transactions table row.
type Transaction struct {
	TransactionID string          `db:"transaction_id"`
	Type          string          `db:"type"`
	Description   string          `db:"description"`
	Amount        decimal.Decimal `db:"amount"`
	Date          time.Time       `db:"transaction_date"`
	PeriodID      string          `db:"period_id"`
	Reference     sql.NullString  `db:"reference"`
	CategoryKind  sql.NullString  `db:"category_kind"`
	CategoryID    sql.NullString  `db:"category_record_id"`
	IsBalanced    bool            `db:"is_balanced"`
	AuditFields
}

// JournalEntry is the journal_entries table row.
// Exactly one of Debit and Credit is valid.
type JournalEntry struct {
	EntryID       string              `db:"entry_id"`
	TransactionID string              `db:"transaction_id"`
	AccountID     string              `db:"account_id"`
	Debit         decimal.NullDecimal `db:"debit"`
	Credit        decimal.NullDecimal `db:"credit"`
	Description   sql.NullString      `db:"description"`
	Position      int                 `db:"position"`
}
