package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntryStatus mirrors domain.EntryStatus for DB storage.
type EntryStatus string

// JournalEntry is the database representation of a journal entry header.
type JournalEntry struct {
	EntryID           string          `db:"entry_id"`
	EntryNumber       string          `db:"entry_number"`
	FiscalYear        int             `db:"fiscal_year"`
	SequenceNo        int64           `db:"sequence_no"`
	EntryDate         time.Time       `db:"entry_date"`
	Description       string          `db:"description"`
	Reference         string          `db:"reference"`
	SourceType        string          `db:"source_type"`
	SourceID          string          `db:"source_id"`
	Status            EntryStatus     `db:"status"`
	PeriodID          string          `db:"period_id"`
	TotalDebit        decimal.Decimal `db:"total_debit"`
	TotalCredit       decimal.Decimal `db:"total_credit"`
	ReversedByEntryID *string         `db:"reversed_by_entry_id"`
	ReversesEntryID   *string         `db:"reverses_entry_id"`
	PostedAt          *time.Time      `db:"posted_at"`
	AuditFields
}

// JournalLine is the database representation of a single entry line.
type JournalLine struct {
	EntryID      string          `db:"entry_id"`
	LineNumber   int             `db:"line_number"`
	AccountID    string          `db:"account_id"`
	SubAccountID string          `db:"sub_account_id"` // Nullable
	Debit        decimal.Decimal `db:"debit"`
	Credit       decimal.Decimal `db:"credit"`
	Description  string          `db:"description"`
	AuditFields
}
