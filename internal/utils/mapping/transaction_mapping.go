package mapping

import (
	"database/sql"

	"github.com/SscSPs/ledger_core/internal/core/domain"
	"github.com/SscSPs/ledger_core/internal/models"
)

// ToModelTransaction converts a domain Transaction to a model Transaction. Entries are mapped separately.
func ToModelTransaction(d domain.Transaction) models.Transaction {
	m := models.Transaction{
		TransactionID: d.TransactionID,
		Type:          string(d.Type),
		Description:   d.Description,
		Amount:        d.Amount,
		Date:          d.Date,
		PeriodID:      d.PeriodID,
		Reference:     toNullString(d.Reference),
		IsBalanced:    d.IsBalanced,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
	if d.Category != nil {
		m.CategoryKind = sql.NullString{String: string(d.Category.Kind), Valid: true}
		m.CategoryID = sql.NullString{String: d.Category.RecordID, Valid: true}
	}
	return m
}

// ToDomainTransaction converts a model Transaction to a domain Transaction without entries.
func ToDomainTransaction(m models.Transaction) domain.Transaction {
	d := domain.Transaction{
		TransactionID: m.TransactionID,
		Type:          domain.TransactionType(m.Type),
		Description:   m.Description,
		Amount:        m.Amount,
		Date:          m.Date,
		PeriodID:      m.PeriodID,
		Reference:     fromNullString(m.Reference),
		IsBalanced:    m.IsBalanced,
		Entries:       []domain.JournalEntry{},
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
	if m.CategoryKind.Valid && m.CategoryID.Valid {
		d.Category = &domain.CategoryLink{Kind: domain.CategoryKind(m.CategoryKind.String), RecordID: m.CategoryID.String}
	}
	return d
}

// ToModelJournalEntry converts a domain JournalEntry to a model JournalEntry
func ToModelJournalEntry(d domain.JournalEntry) models.JournalEntry {
	return models.JournalEntry{
		EntryID:       d.EntryID,
		TransactionID: d.TransactionID,
		AccountID:     d.AccountID,
		Debit:         toNullDecimal(d.Debit),
		Credit:        toNullDecimal(d.Credit),
		Description:   toNullString(d.Description),
		Position:      d.Position,
	}
}

// ToDomainJournalEntry converts a model JournalEntry to a domain JournalEntry
func ToDomainJournalEntry(m models.JournalEntry) domain.JournalEntry {
	return domain.JournalEntry{
		EntryID:       m.EntryID,
		TransactionID: m.TransactionID,
		AccountID:     m.AccountID,
		Debit:         fromNullDecimal(m.Debit),
		Credit:        fromNullDecimal(m.Credit),
		Description:   fromNullString(m.Description),
		Position:      m.Position,
	}
}
