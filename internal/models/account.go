package models

import "database/sql"

// AccountType mirrors the account_type column.
type AccountType string

// AccountStatus mirrors the status column.
type AccountStatus string

// Account is the accounts table row.
type Account struct {
	AccountID       string         `db:"account_id"`
	Number          string         `db:"number"`
	Name            string         `db:"name"`
	AccountType     AccountType    `db:"account_type"`
	Status          AccountStatus  `db:"status"`
	ParentAccountID sql.NullString `db:"parent_account_id"`
	Description     string         `db:"description"`
	IsSystem        bool           `db:"is_system"`
	AuditFields
}
