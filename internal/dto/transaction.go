package dto

import (
	"time"

	"github.com/SscSPs/ledger_core/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CategoryLinkRequest points a transaction at a category record.
type CategoryLinkRequest struct {
	Kind     domain.CategoryKind `json:"kind" binding:"required,oneof=ASSET LIABILITY EQUITY REVENUE EXPENSE"`
	RecordID string              `json:"recordID" binding:"required"`
}

// JournalEntryRequest is one line of a transaction. Side and amount rules are
// checked by the ledger so that every violation is reported together.
type JournalEntryRequest struct {
	AccountID   string           `json:"accountID"`
	Debit       *decimal.Decimal `json:"debit"`
	Credit      *decimal.Decimal `json:"credit"`
	Description *string          `json:"description"`
}

// CreateTransactionRequest defines the data needed to record a transaction.
type CreateTransactionRequest struct {
	Type        domain.TransactionType `json:"type" binding:"required,oneof=SALES PURCHASES PAYMENTS RECEIPTS ADJUSTMENTS DEPRECIATION"`
	Description string                 `json:"description" binding:"required"`
	Amount      decimal.Decimal        `json:"amount" binding:"decimal_nonneg"`
	Date        time.Time              `json:"date" binding:"required"`
	PeriodID    string                 `json:"periodID" binding:"required"`
	Reference   *string                `json:"reference"`
	Category    *CategoryLinkRequest   `json:"category"`
	Entries     []JournalEntryRequest  `json:"entries"`
}

// ToDraft converts the request into a domain draft.
func (r CreateTransactionRequest) ToDraft() domain.TransactionDraft {
	draft := domain.TransactionDraft{
		Type:        r.Type,
		Description: r.Description,
		Amount:      r.Amount,
		Date:        r.Date,
		PeriodID:    r.PeriodID,
		Reference:   r.Reference,
		Entries:     make([]domain.JournalEntryDraft, len(r.Entries)),
	}
	if r.Category != nil {
		draft.Category = &domain.CategoryLink{Kind: r.Category.Kind, RecordID: r.Category.RecordID}
	}
	for i, e := range r.Entries {
		draft.Entries[i] = domain.JournalEntryDraft{
			AccountID:   e.AccountID,
			Debit:       e.Debit,
			Credit:      e.Credit,
			Description: e.Description,
		}
	}
	return draft
}

// UpdateTransactionRequest carries transaction-level changes. Entries cannot be edited.
// Use pointers to distinguish between zero-value updates and fields not provided.
type UpdateTransactionRequest struct {
	Type        *domain.TransactionType `json:"type" binding:"omitempty,oneof=SALES PURCHASES PAYMENTS RECEIPTS ADJUSTMENTS DEPRECIATION"`
	Description *string                 `json:"description"`
	Amount      *decimal.Decimal        `json:"amount" binding:"decimal_nonneg"`
	Date        *time.Time              `json:"date"`
	PeriodID    *string                 `json:"periodID"`
	Reference   *string                 `json:"reference"`
	Category    *CategoryLinkRequest    `json:"category"`
	// ClearReference and ClearCategory unset the optional links.
	ClearReference bool `json:"clearReference"`
	ClearCategory  bool `json:"clearCategory"`
}

func (r UpdateTransactionRequest) ToUpdate() domain.TransactionUpdate {
	update := domain.TransactionUpdate{
		Type:           r.Type,
		Description:    r.Description,
		Amount:         r.Amount,
		Date:           r.Date,
		PeriodID:       r.PeriodID,
		Reference:      r.Reference,
		ClearReference: r.ClearReference,
		ClearCategory:  r.ClearCategory,
	}
	if r.Category != nil {
		update.Category = &domain.CategoryLink{Kind: r.Category.Kind, RecordID: r.Category.RecordID}
	}
	return update
}

// JournalEntryResponse flattens the entry's account for display.
type JournalEntryResponse struct {
	EntryID       string           `json:"entryID"`
	AccountID     string           `json:"accountID"`
	AccountNumber string           `json:"accountNumber,omitempty"`
	AccountName   string           `json:"accountName,omitempty"`
	AccountType   string           `json:"accountType,omitempty"`
	Debit         *decimal.Decimal `json:"debit,omitempty"`
	Credit        *decimal.Decimal `json:"credit,omitempty"`
	Description   *string          `json:"description,omitempty"`
}

// TransactionResponse defines the data returned for a transaction.
type TransactionResponse struct {
	TransactionID string                 `json:"transactionID"`
	Type          domain.TransactionType `json:"type"`
	Description   string                 `json:"description"`
	Amount        decimal.Decimal        `json:"amount"`
	Date          time.Time              `json:"date"`
	PeriodID      string                 `json:"periodID"`
	Reference     *string                `json:"reference,omitempty"`
	Category      *domain.CategoryLink   `json:"category,omitempty"`
	Linked        *domain.CategoryRecord `json:"linked,omitempty"`
	IsBalanced    bool                   `json:"isBalanced"`
	TotalDebits   decimal.Decimal        `json:"totalDebits"`
	TotalCredits  decimal.Decimal        `json:"totalCredits"`
	Entries       []JournalEntryResponse `json:"entries"`
	CreatedAt     time.Time              `json:"createdAt"`
	LastUpdatedAt time.Time              `json:"lastUpdatedAt"`
}

// ToTransactionResponse converts a domain.Transaction to TransactionResponse DTO.
func ToTransactionResponse(txn *domain.Transaction) TransactionResponse {
	res := TransactionResponse{
		TransactionID: txn.TransactionID,
		Type:          txn.Type,
		Description:   txn.Description,
		Amount:        txn.Amount,
		Date:          txn.Date,
		PeriodID:      txn.PeriodID,
		Reference:     txn.Reference,
		Category:      txn.Category,
		Linked:        txn.Linked,
		IsBalanced:    txn.IsBalanced,
		TotalDebits:   decimal.Zero,
		TotalCredits:  decimal.Zero,
		Entries:       make([]JournalEntryResponse, len(txn.Entries)),
		CreatedAt:     txn.CreatedAt,
		LastUpdatedAt: txn.LastUpdatedAt,
	}
	for i, e := range txn.Entries {
		entry := JournalEntryResponse{
			EntryID:     e.EntryID,
			AccountID:   e.AccountID,
			Debit:       e.Debit,
			Credit:      e.Credit,
			Description: e.Description,
		}
		if e.Account != nil {
			entry.AccountNumber = e.Account.Number
			entry.AccountName = e.Account.Name
			entry.AccountType = string(e.Account.AccountType)
		}
		if e.Debit != nil {
			res.TotalDebits = res.TotalDebits.Add(*e.Debit)
		}
		if e.Credit != nil {
			res.TotalCredits = res.TotalCredits.Add(*e.Credit)
		}
		res.Entries[i] = entry
	}
	return res
}

// ToTransactionResponses converts a slice of domain.Transaction to []TransactionResponse.
func ToTransactionResponses(txns []domain.Transaction) []TransactionResponse {
	responses := make([]TransactionResponse, len(txns))
	for i := range txns {
		responses[i] = ToTransactionResponse(&txns[i])
	}
	return responses
}

// TransactionPageResponse is one page of transactions.
type TransactionPageResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Total        int                   `json:"total"`
	Page         int                   `json:"page"`
	PageSize     int                   `json:"pageSize"`
	TotalPages   int                   `json:"totalPages"`
}

func ToTransactionPageResponse(page *domain.TransactionPage) TransactionPageResponse {
	return TransactionPageResponse{
		Transactions: ToTransactionResponses(page.Transactions),
		Total:        page.Total,
		Page:         page.Page,
		PageSize:     page.PageSize,
		TotalPages:   page.TotalPages,
	}
}
