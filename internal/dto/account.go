package dto

import (
	"time"

	"github.com/SscSPs/ledger_core/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateAccountRequest defines the data needed to create a new account.
type CreateAccountRequest struct {
	Number          string               `json:"number" binding:"required"`
	Name            string               `json:"name" binding:"required"`
	AccountType     domain.AccountType   `json:"accountType" binding:"required,oneof=ASSET LIABILITY EQUITY REVENUE EXPENSE"`
	Status          domain.AccountStatus `json:"status" binding:"omitempty,oneof=ACTIVE INACTIVE"`
	ParentAccountID *string              `json:"parentAccountID"` // Optional, use pointer for nullability
	Description     string               `json:"description"`
	IsSystem        bool                 `json:"isSystem"`
}

func (r CreateAccountRequest) ToDomain() domain.Account {
	return domain.Account{
		Number:          r.Number,
		Name:            r.Name,
		AccountType:     r.AccountType,
		Status:          r.Status,
		ParentAccountID: r.ParentAccountID,
		Description:     r.Description,
		IsSystem:        r.IsSystem,
	}
}

// UpdateAccountRequest defines the data allowed for updating an account.
type UpdateAccountRequest struct {
	Name        *string               `json:"name"`
	Description *string               `json:"description"`
	Status      *domain.AccountStatus `json:"status" binding:"omitempty,oneof=ACTIVE INACTIVE"`
}

func (r UpdateAccountRequest) ToDomain() domain.AccountUpdate {
	return domain.AccountUpdate{Name: r.Name, Description: r.Description, Status: r.Status}
}

// AccountResponse defines the data returned for an account.
type AccountResponse struct {
	AccountID       string               `json:"accountID"`
	Number          string               `json:"number"`
	Name            string               `json:"name"`
	AccountType     domain.AccountType   `json:"accountType"`
	NormalBalance   string               `json:"normalBalance"`
	Status          domain.AccountStatus `json:"status"`
	ParentAccountID string               `json:"parentAccountID"` // Note: Empty string if null in DB
	Description     string               `json:"description"`
	IsSystem        bool                 `json:"isSystem"`
	CreatedAt       time.Time            `json:"createdAt"`
	LastUpdatedAt   time.Time            `json:"lastUpdatedAt"`
}

// ToAccountResponse converts a domain.Account to AccountResponse DTO
func ToAccountResponse(acc *domain.Account) AccountResponse {
	res := AccountResponse{
		AccountID:     acc.AccountID,
		Number:        acc.Number,
		Name:          acc.Name,
		AccountType:   acc.AccountType,
		NormalBalance: "CREDIT",
		Status:        acc.Status,
		Description:   acc.Description,
		IsSystem:      acc.IsSystem,
		CreatedAt:     acc.CreatedAt,
		LastUpdatedAt: acc.LastUpdatedAt,
	}
	if acc.AccountType.IsDebitNormal() {
		res.NormalBalance = "DEBIT"
	}
	if acc.ParentAccountID != nil {
		res.ParentAccountID = *acc.ParentAccountID
	}
	return res
}

// ToListAccountResponse converts a slice of domain.Account to a slice of AccountResponse DTOs
func ToListAccountResponse(accounts []domain.Account) []AccountResponse {
	res := make([]AccountResponse, len(accounts))
	for i := range accounts {
		res[i] = ToAccountResponse(&accounts[i])
	}
	return res
}

// AccountBalanceResponse defines the data returned for an account balance query.
// Balance is debits minus credits over balanced transactions.
type AccountBalanceResponse struct {
	AccountID string          `json:"accountID"`
	Balance   decimal.Decimal `json:"balance"`
	From      *time.Time      `json:"from,omitempty"`
	To        *time.Time      `json:"to,omitempty"`
}
