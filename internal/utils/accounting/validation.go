package accounting

import (
	"fmt"

	"github.com/SscSPs/ledger_core/internal/core/domain"
	"github.com/shopspring/decimal"
)

const maxEntryDescriptionLength = 255

// ValidateJournalEntries checks a candidate entry set against the double-entry rules.
// Every violated rule is reported. The result is invalid whenever debits and credits differ.
func ValidateJournalEntries(entries []domain.JournalEntryDraft) domain.ValidationResult {
	result := ValidateEntryStructure(entries)
	if !result.IsBalanced {
		result.Errors = append(result.Errors, fmt.Sprintf("Transaction does not balance. Debits: %s, Credits: %s",
			result.TotalDebits.String(), result.TotalCredits.String()))
	}
	result.IsValid = len(result.Errors) == 0
	return result
}

// ValidateEntryStructure applies every rule except the debit/credit equality.
// IsBalanced and the totals are still computed.
func ValidateEntryStructure(entries []domain.JournalEntryDraft) domain.ValidationResult {
	result := domain.ValidationResult{
		TotalDebits:  decimal.Zero,
		TotalCredits: decimal.Zero,
		Errors:       []string{},
		Warnings:     []string{},
	}

	if len(entries) < 2 {
		result.Errors = append(result.Errors, "Transaction must have at least 2 entries")
	}

	seen := make(map[string]int, len(entries))
	for i, e := range entries {
		n := i + 1

		if e.AccountID == "" {
			result.Errors = append(result.Errors, fmt.Sprintf("Entry %d: account id is required", n))
		} else {
			seen[e.AccountID]++
			if seen[e.AccountID] == 2 {
				result.Errors = append(result.Errors, fmt.Sprintf("Duplicate account %s in transaction", e.AccountID))
			}
		}

		switch {
		case e.Debit != nil && e.Credit != nil:
			result.Errors = append(result.Errors, fmt.Sprintf("Entry %d: cannot have both debit and credit amounts", n))
		case e.Debit == nil && e.Credit == nil:
			result.Errors = append(result.Errors, fmt.Sprintf("Entry %d: must have either a debit or a credit amount", n))
		}

		if e.Debit != nil {
			if !e.Debit.IsPositive() {
				result.Errors = append(result.Errors, fmt.Sprintf("Entry %d: debit amount must be positive", n))
			}
			result.TotalDebits = result.TotalDebits.Add(*e.Debit)
		}
		if e.Credit != nil {
			if !e.Credit.IsPositive() {
				result.Errors = append(result.Errors, fmt.Sprintf("Entry %d: credit amount must be positive", n))
			}
			result.TotalCredits = result.TotalCredits.Add(*e.Credit)
		}

		if e.Description != nil && len(*e.Description) > maxEntryDescriptionLength {
			result.Warnings = append(result.Warnings, fmt.Sprintf("Entry %d: description exceeds %d characters", n, maxEntryDescriptionLength))
		}
	}

	result.IsBalanced = result.TotalDebits.Equal(result.TotalCredits)
	result.IsValid = len(result.Errors) == 0
	return result
}

// ValidateCategoryRecord checks a subsidiary ledger record before it is stored.
// Negative values are errors; zero amounts only warn.
func ValidateCategoryRecord(rec domain.CategoryRecord) domain.ValidationResult {
	result := domain.ValidationResult{
		TotalDebits:  decimal.Zero,
		TotalCredits: decimal.Zero,
		Errors:       []string{},
		Warnings:     []string{},
	}

	if !rec.Kind.IsValid() {
		result.Errors = append(result.Errors, fmt.Sprintf("Unknown category kind %q", rec.Kind))
	}
	if rec.Label == "" {
		result.Errors = append(result.Errors, "Label is required")
	}

	kind := string(rec.Kind)
	switch {
	case rec.Amount.IsNegative():
		result.Errors = append(result.Errors, fmt.Sprintf("%s amount cannot be negative", kind))
	case rec.Amount.IsZero():
		result.Warnings = append(result.Warnings, fmt.Sprintf("%s amount is zero", kind))
	}

	if rec.Kind == domain.CategoryEquity {
		if rec.SharesOutstanding != nil && *rec.SharesOutstanding < 0 {
			result.Errors = append(result.Errors, "Shares outstanding cannot be negative")
		}
		if rec.ParValue != nil && rec.ParValue.IsNegative() {
			result.Errors = append(result.Errors, "Par value cannot be negative")
		}
	} else if rec.SharesOutstanding != nil || rec.ParValue != nil {
		result.Warnings = append(result.Warnings, "Shares outstanding and par value are ignored outside equity")
	}

	result.IsBalanced = true
	result.IsValid = len(result.Errors) == 0
	return result
}
