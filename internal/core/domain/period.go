package domain

import "time"

// PeriodType is the length of an accounting period.
type PeriodType string

const (
	PeriodMonthly   PeriodType = "MONTHLY"
	PeriodQuarterly PeriodType = "QUARTERLY"
	PeriodAnnual    PeriodType = "ANNUAL"
)

// IsValid reports whether t is a known period type.
func (t PeriodType) IsValid() bool {
	switch t {
	case PeriodMonthly, PeriodQuarterly, PeriodAnnual:
		return true
	}
	return false
}

// PeriodStatus is the lifecycle state of a period. Periods open on creation
// and close once; a closed period accepts no new bookings.
type PeriodStatus string

const (
	PeriodOpen   PeriodStatus = "OPEN"
	PeriodClosed PeriodStatus = "CLOSED"
)

// Period is an accounting period every transaction is booked into.
// At most one period is current at a time; the ledger trusts but does not enforce this.
type Period struct {
	PeriodID   string       `json:"periodID"`
	Name       string       `json:"name"`
	PeriodType PeriodType   `json:"periodType"`
	StartDate  time.Time    `json:"startDate"`
	EndDate    time.Time    `json:"endDate"`
	IsCurrent  bool         `json:"isCurrent"`
	Status     PeriodStatus `json:"status"`
	AuditFields
}

// IsClosed reports whether the period has been closed.
func (p Period) IsClosed() bool {
	return p.Status == PeriodClosed
}
