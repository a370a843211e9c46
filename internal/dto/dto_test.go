package dto_test

import (
	"encoding/json"
	"testing"

	"github.com/SscSPs/ledger_core/internal/core/domain"
	"github.com/SscSPs/ledger_core/internal/dto"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateTransactionRequest_ToDraft(t *testing.T) {
	body := `{
		"type": "SALES",
		"description": "Invoice 1001",
		"amount": "5000.00",
		"date": "2024-06-15T00:00:00Z",
		"periodID": "2024-06",
		"category": {"kind": "REVENUE", "recordID": "rev-1"},
		"entries": [
			{"accountID": "cash", "debit": "5000.00"},
			{"accountID": "sales", "credit": 5000}
		]
	}`
	var req dto.CreateTransactionRequest
	require.NoError(t, json.Unmarshal([]byte(body), &req))

	draft := req.ToDraft()

	assert.Equal(t, domain.Sales, draft.Type)
	require.Len(t, draft.Entries, 2)
	assert.True(t, draft.Entries[0].Debit.Equal(decimal.NewFromInt(5000)))
	assert.Nil(t, draft.Entries[0].Credit)
	assert.True(t, draft.Entries[1].Credit.Equal(decimal.NewFromInt(5000)))
	require.NotNil(t, draft.Category)
	assert.Equal(t, "rev-1", draft.Category.RecordID)
}

func TestToTransactionResponse_Totals(t *testing.T) {
	d := decimal.RequireFromString("12.50")
	txn := &domain.Transaction{
		TransactionID: "t1",
		Entries: []domain.JournalEntry{
			{AccountID: "cash", Debit: &d, Account: &domain.Account{Number: "1000", Name: "Cash", AccountType: domain.Asset}},
			{AccountID: "sales", Credit: &d},
		},
	}

	res := dto.ToTransactionResponse(txn)

	assert.Equal(t, "12.5", res.TotalDebits.String())
	assert.Equal(t, "12.5", res.TotalCredits.String())
	assert.Equal(t, "Cash", res.Entries[0].AccountName)
	assert.Equal(t, "", res.Entries[1].AccountName)
}

func TestToAccountResponse_NormalBalance(t *testing.T) {
	assert.Equal(t, "DEBIT", dto.ToAccountResponse(&domain.Account{AccountType: domain.Expense}).NormalBalance)
	assert.Equal(t, "CREDIT", dto.ToAccountResponse(&domain.Account{AccountType: domain.Revenue}).NormalBalance)
}

func TestDecimalNonNegativeRule(t *testing.T) {
	v := validator.New()
	require.NoError(t, dto.RegisterValidators(v))

	type sample struct {
		Amount   decimal.Decimal  `validate:"decimal_nonneg"`
		Optional *decimal.Decimal `validate:"decimal_nonneg"`
	}
	neg := decimal.NewFromInt(-1)

	assert.NoError(t, v.Struct(sample{Amount: decimal.Zero}))
	assert.Error(t, v.Struct(sample{Amount: neg}))
	assert.Error(t, v.Struct(sample{Amount: decimal.NewFromInt(1), Optional: &neg}))
}
