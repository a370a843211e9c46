package models

import (
	"database/sql"

	"github.com/shopspring/decimal"
)

// CategoryRecord is the category_records table row.
type CategoryRecord struct {
	RecordID          string              `db:"record_id"`
	Kind              string              `db:"kind"`
	Label             string              `db:"label"`
	Amount            decimal.Decimal     `db:"amount"`
	RecordDate        sql.NullTime        `db:"record_date"`
	SharesOutstanding sql.NullInt64       `db:"shares_outstanding"`
	ParValue          decimal.NullDecimal `db:"par_value"`
	IsRecurring       bool                `db:"is_recurring"`
	Description       string              `db:"description"`
	AuditFields
}
