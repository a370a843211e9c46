package domain

// AccountType defines the fundamental accounting type of an account.
type AccountType string

const (
	Asset     AccountType = "ASSET"
	Liability AccountType = "LIABILITY"
	Equity    AccountType = "EQUITY"
	Revenue   AccountType = "REVENUE"
	Expense   AccountType = "EXPENSE"
)

// AccountTypes lists every account type in balance sheet order.
var AccountTypes = []AccountType{Asset, Liability, Equity, Revenue, Expense}

// IsValid reports whether t is a known account type.
func (t AccountType) IsValid() bool {
	switch t {
	case Asset, Liability, Equity, Revenue, Expense:
		return true
	}
	return false
}

// IsDebitNormal reports whether a debit increases accounts of this type.
func (t AccountType) IsDebitNormal() bool {
	return t == Asset || t == Expense
}

// AccountStatus is the lifecycle state of an account. Accounts are archived, never deleted.
type AccountStatus string

const (
	AccountActive   AccountStatus = "ACTIVE"
	AccountInactive AccountStatus = "INACTIVE"
	AccountArchived AccountStatus = "ARCHIVED"
)

// IsValid reports whether s is a known account status.
func (s AccountStatus) IsValid() bool {
	switch s {
	case AccountActive, AccountInactive, AccountArchived:
		return true
	}
	return false
}

// Account is a node in the chart of accounts.
// AccountType never changes after creation.
type Account struct {
	AccountID       string        `json:"accountID"`
	Number          string        `json:"number"`
	Name            string        `json:"name"`
	AccountType     AccountType   `json:"accountType"`
	Status          AccountStatus `json:"status"`
	ParentAccountID *string       `json:"parentAccountID,omitempty"`
	Description     string        `json:"description"`
	IsSystem        bool          `json:"isSystem"`
	AuditFields
}

// AccountFilter narrows ListAccounts. Nil fields match everything.
type AccountFilter struct {
	AccountType *AccountType
	Status      *AccountStatus
}

// AccountUpdate holds the mutable account fields; nil means unchanged.
type AccountUpdate struct {
	Name        *string
	Description *string
	Status      *AccountStatus
}
