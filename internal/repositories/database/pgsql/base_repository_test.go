package pgsql

import (
	"errors"
	"testing"
	"time"

	"github.com/SscSPs/ledger_core/internal/apperrors"
	"github.com/SscSPs/ledger_core/internal/core/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestTransactionConditions(t *testing.T) {
	typ := domain.Receipts
	balanced := false
	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	c := transactionConditions(domain.TransactionFilter{
		Type:       &typ,
		IsBalanced: &balanced,
		DateRange:  domain.DateRange{From: &from},
	})

	assert.Equal(t, " WHERE t.type = $1 AND t.is_balanced = $2 AND t.transaction_date >= $3", c.where())
	assert.Equal(t, []any{"RECEIPTS", false, from}, c.args)
	assert.Equal(t, 4, c.next())
}

func TestConditions_Empty(t *testing.T) {
	var c conditions
	assert.Equal(t, "", c.where())
	c.addRaw("t.is_balanced")
	assert.Equal(t, " WHERE t.is_balanced", c.where())
	assert.Equal(t, 1, c.next())
}

func TestErrorMapping(t *testing.T) {
	assert.ErrorIs(t, notFoundOr(pgx.ErrNoRows, "transaction"), apperrors.ErrNotFound)
	assert.NotErrorIs(t, notFoundOr(errors.New("conn closed"), "transaction"), apperrors.ErrNotFound)

	dup := duplicateOr(&pgconn.PgError{Code: uniqueViolation}, "account number 1000")
	assert.ErrorIs(t, dup, apperrors.ErrDuplicate)
	assert.NotErrorIs(t, duplicateOr(&pgconn.PgError{Code: "23503"}, "x"), apperrors.ErrDuplicate)
}
