package dto

import (
	"time"

	"github.com/SscSPs/ledger_core/internal/core/domain"
	"github.com/shopspring/decimal"
)

// EquationCheckRequest carries caller-supplied totals for an equation check.
type EquationCheckRequest struct {
	TotalAssets      decimal.Decimal `json:"totalAssets"`
	TotalLiabilities decimal.Decimal `json:"totalLiabilities"`
	TotalEquity      decimal.Decimal `json:"totalEquity"`
}

// CreatePeriodRequest defines the data needed to open an accounting period.
type CreatePeriodRequest struct {
	Name       string            `json:"name" binding:"required"`
	PeriodType domain.PeriodType `json:"periodType" binding:"required,oneof=MONTHLY QUARTERLY ANNUAL"`
	StartDate  time.Time         `json:"startDate" binding:"required"`
	EndDate    time.Time         `json:"endDate" binding:"required"`
	IsCurrent  bool              `json:"isCurrent"`
}

func (r CreatePeriodRequest) ToDomain() domain.Period {
	return domain.Period{
		Name:       r.Name,
		PeriodType: r.PeriodType,
		StartDate:  r.StartDate,
		EndDate:    r.EndDate,
		IsCurrent:  r.IsCurrent,
	}
}

// CreateCategoryRecordRequest records a subsidiary ledger entry.
// Kind-specific value rules are checked by the ledger and may come back as warnings.
type CreateCategoryRecordRequest struct {
	Kind              domain.CategoryKind `json:"kind" binding:"required,oneof=ASSET LIABILITY EQUITY REVENUE EXPENSE"`
	Label             string              `json:"label"`
	Amount            decimal.Decimal     `json:"amount"`
	Date              *time.Time          `json:"date"`
	SharesOutstanding *int64              `json:"sharesOutstanding"`
	ParValue          *decimal.Decimal    `json:"parValue"`
	IsRecurring       bool                `json:"isRecurring"`
	Description       string              `json:"description"`
}

func (r CreateCategoryRecordRequest) ToDomain() domain.CategoryRecord {
	return domain.CategoryRecord{
		Kind:              r.Kind,
		Label:             r.Label,
		Amount:            r.Amount,
		Date:              r.Date,
		SharesOutstanding: r.SharesOutstanding,
		ParValue:          r.ParValue,
		IsRecurring:       r.IsRecurring,
		Description:       r.Description,
	}
}
