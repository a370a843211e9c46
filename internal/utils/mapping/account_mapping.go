package mapping

import (
	"github.com/SscSPs/ledger_core/internal/core/domain"
	"github.com/SscSPs/ledger_core/internal/models"
)

// ToModelAccount converts a domain Account to a model Account
func ToModelAccount(d domain.Account) models.Account {
	return models.Account{
		AccountID:       d.AccountID,
		Number:          d.Number,
		Name:            d.Name,
		AccountType:     models.AccountType(d.AccountType),
		Status:          models.AccountStatus(d.Status),
		ParentAccountID: toNullString(d.ParentAccountID),
		Description:     d.Description,
		IsSystem:        d.IsSystem,
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainAccount converts a model Account to a domain Account
func ToDomainAccount(m models.Account) domain.Account {
	return domain.Account{
		AccountID:       m.AccountID,
		Number:          m.Number,
		Name:            m.Name,
		AccountType:     domain.AccountType(m.AccountType),
		Status:          domain.AccountStatus(m.Status),
		ParentAccountID: fromNullString(m.ParentAccountID),
		Description:     m.Description,
		IsSystem:        m.IsSystem,
		AuditFields:     ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelPeriod converts a domain Period to a model Period
func ToModelPeriod(d domain.Period) models.Period {
	return models.Period{
		PeriodID:    d.PeriodID,
		Name:        d.Name,
		PeriodType:  string(d.PeriodType),
		StartDate:   d.StartDate,
		EndDate:     d.EndDate,
		IsCurrent:   d.IsCurrent,
		Status:      string(d.Status),
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainPeriod converts a model Period to a domain Period
func ToDomainPeriod(m models.Period) domain.Period {
	return domain.Period{
		PeriodID:    m.PeriodID,
		Name:        m.Name,
		PeriodType:  domain.PeriodType(m.PeriodType),
		StartDate:   m.StartDate,
		EndDate:     m.EndDate,
		IsCurrent:   m.IsCurrent,
		Status:      domain.PeriodStatus(m.Status),
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelCategoryRecord converts a domain CategoryRecord to a model CategoryRecord
func ToModelCategoryRecord(d domain.CategoryRecord) models.CategoryRecord {
	m := models.CategoryRecord{
		RecordID:    d.RecordID,
		Kind:        string(d.Kind),
		Label:       d.Label,
		Amount:      d.Amount,
		RecordDate:  toNullTime(d.Date),
		ParValue:    toNullDecimal(d.ParValue),
		IsRecurring: d.IsRecurring,
		Description: d.Description,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
	if d.SharesOutstanding != nil {
		m.SharesOutstanding.Int64 = *d.SharesOutstanding
		m.SharesOutstanding.Valid = true
	}
	return m
}

// ToDomainCategoryRecord converts a model CategoryRecord to a domain CategoryRecord
func ToDomainCategoryRecord(m models.CategoryRecord) domain.CategoryRecord {
	d := domain.CategoryRecord{
		RecordID:    m.RecordID,
		Kind:        domain.CategoryKind(m.Kind),
		Label:       m.Label,
		Amount:      m.Amount,
		Date:        fromNullTime(m.RecordDate),
		ParValue:    fromNullDecimal(m.ParValue),
		IsRecurring: m.IsRecurring,
		Description: m.Description,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
	if m.SharesOutstanding.Valid {
		shares := m.SharesOutstanding.Int64
		d.SharesOutstanding = &shares
	}
	return d
}
