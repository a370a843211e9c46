package models

import "time"

// Period is the periods table row.
type Period struct {
	PeriodID   string    `db:"period_id"`
	Name       string    `db:"name"`
	PeriodType string    `db:"period_type"`
	StartDate  time.Time `db:"start_date"`
	EndDate    time.Time `db:"end_date"`
	IsCurrent  bool      `db:"is_current"`
	Status     string    `db:"status"`
	AuditFields
}
