package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// EntryStatus indicates the state of a journal entry.
type EntryStatus string

const (
	Draft    EntryStatus = "DRAFT"
	Posted   EntryStatus = "POSTED"
	Reversed EntryStatus = "REVERSED"
)

// JournalEntry represents a single, balanced financial event composed of
// two or more lines. Entries are numbered sequentially within a fiscal year.
type JournalEntry struct {
	EntryID     string      `json:"entryID"`
	EntryNumber string      `json:"entryNumber"` // e.g. "2024-000042"
	FiscalYear  int         `json:"fiscalYear"`
	SequenceNo  int64       `json:"sequenceNo"`
	EntryDate   time.Time   `json:"entryDate"`
	Description string      `json:"description"`
	Reference   string      `json:"reference"`  // Optional external reference
	SourceType  string      `json:"sourceType"` // Business event that produced the entry
	SourceID    string      `json:"sourceID"`
	Status      EntryStatus `json:"status"`
	PeriodID    string      `json:"periodID"`

	TotalDebit  decimal.Decimal `json:"totalDebit"`
	TotalCredit decimal.Decimal `json:"totalCredit"`

	// Reversal linkage. ReversedByEntryID is set on the original once it has
	// been reversed; ReversesEntryID is set on the reversing entry.
	ReversedByEntryID *string `json:"reversedByEntryID,omitempty"`
	ReversesEntryID   *string `json:"reversesEntryID,omitempty"`

	PostedAt *time.Time `json:"postedAt,omitempty"`

	Lines []JournalLine `json:"lines,omitempty"`
	AuditFields
}

// IsBalanced reports whether the entry's debit and credit totals match.
func (e JournalEntry) IsBalanced() bool {
	return e.TotalDebit.Round(2).Equal(e.TotalCredit.Round(2))
}

// JournalLine is a single line of a journal entry, affecting one account.
// Exactly one of Debit/Credit is positive, the other zero.
type JournalLine struct {
	EntryID      string          `json:"entryID"`
	LineNumber   int             `json:"lineNumber"`
	AccountID    string          `json:"accountID"`
	SubAccountID string          `json:"subAccountID,omitempty"` // Optional subsidiary ledger reference
	Debit        decimal.Decimal `json:"debit"`
	Credit       decimal.Decimal `json:"credit"`
	Description  string          `json:"description"`
	AuditFields
}

// FormatEntryNumber renders the year-scoped entry number, e.g. "2024-000042".
func FormatEntryNumber(fiscalYear int, sequence int64) string {
	return fmt.Sprintf("%d-%06d", fiscalYear, sequence)
}

// PostingDelta is the net debit/credit amount applied to one account when an
// entry is posted. Deltas are additive: an account's cached totals are the sum
// of every delta ever committed for it.
type PostingDelta struct {
	Debit  decimal.Decimal
	Credit decimal.Decimal
}
