package domain

import "github.com/shopspring/decimal"

// ValidationResult is the outcome of checking a set of journal entries.
// IsValid is true only when Errors is empty; Warnings never block.
type ValidationResult struct {
	IsValid      bool            `json:"isValid"`
	IsBalanced   bool            `json:"isBalanced"`
	TotalDebits  decimal.Decimal `json:"totalDebits"`
	TotalCredits decimal.Decimal `json:"totalCredits"`
	Errors       []string        `json:"errors"`
	Warnings     []string        `json:"warnings"`
}

// EquationResult is the outcome of checking Assets = Liabilities + Equity.
type EquationResult struct {
	TotalAssets      decimal.Decimal `json:"totalAssets"`
	TotalLiabilities decimal.Decimal `json:"totalLiabilities"`
	TotalEquity      decimal.Decimal `json:"totalEquity"`
	Difference       decimal.Decimal `json:"difference"`
	IsValid          bool            `json:"isValid"`
	Errors           []string        `json:"errors"`
}
