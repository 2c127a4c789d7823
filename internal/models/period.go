package models

import "time"

// PeriodStatus mirrors domain.PeriodStatus for DB storage.
type PeriodStatus string

// AccountingPeriod is the database representation of a fiscal period.
type AccountingPeriod struct {
	PeriodID  string       `db:"period_id"`
	Name      string       `db:"name"`
	StartDate time.Time    `db:"start_date"`
	EndDate   time.Time    `db:"end_date"`
	Status    PeriodStatus `db:"status"`
	ClosedAt  *time.Time   `db:"closed_at"`
	ClosedBy  string       `db:"closed_by"` // Nullable
	AuditFields
}
