package mapping

import (
	"github.com/shopstack/ledger-core/internal/core/domain"
	"github.com/shopstack/ledger-core/internal/models"
)

// ToModelJournalEntry converts a domain entry header to its DB model.
func ToModelJournalEntry(d domain.JournalEntry) models.JournalEntry {
	return models.JournalEntry{
		EntryID:           d.EntryID,
		EntryNumber:       d.EntryNumber,
		FiscalYear:        d.FiscalYear,
		SequenceNo:        d.SequenceNo,
		EntryDate:         d.EntryDate,
		Description:       d.Description,
		Reference:         d.Reference,
		SourceType:        d.SourceType,
		SourceID:          d.SourceID,
		Status:            models.EntryStatus(d.Status),
		PeriodID:          d.PeriodID,
		TotalDebit:        d.TotalDebit,
		TotalCredit:       d.TotalCredit,
		ReversedByEntryID: d.ReversedByEntryID,
		ReversesEntryID:   d.ReversesEntryID,
		PostedAt:          d.PostedAt,
		AuditFields:       ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainJournalEntry converts a DB model entry header to its domain form.
func ToDomainJournalEntry(m models.JournalEntry) domain.JournalEntry {
	return domain.JournalEntry{
		EntryID:           m.EntryID,
		EntryNumber:       m.EntryNumber,
		FiscalYear:        m.FiscalYear,
		SequenceNo:        m.SequenceNo,
		EntryDate:         m.EntryDate,
		Description:       m.Description,
		Reference:         m.Reference,
		SourceType:        m.SourceType,
		SourceID:          m.SourceID,
		Status:            domain.EntryStatus(m.Status),
		PeriodID:          m.PeriodID,
		TotalDebit:        m.TotalDebit,
		TotalCredit:       m.TotalCredit,
		ReversedByEntryID: m.ReversedByEntryID,
		ReversesEntryID:   m.ReversesEntryID,
		PostedAt:          m.PostedAt,
		AuditFields:       ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelJournalLine converts a domain line to its DB model.
func ToModelJournalLine(d domain.JournalLine) models.JournalLine {
	return models.JournalLine{
		EntryID:      d.EntryID,
		LineNumber:   d.LineNumber,
		AccountID:    d.AccountID,
		SubAccountID: d.SubAccountID,
		Debit:        d.Debit,
		Credit:       d.Credit,
		Description:  d.Description,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainJournalLine converts a DB model line to its domain form.
func ToDomainJournalLine(m models.JournalLine) domain.JournalLine {
	return domain.JournalLine{
		EntryID:      m.EntryID,
		LineNumber:   m.LineNumber,
		AccountID:    m.AccountID,
		SubAccountID: m.SubAccountID,
		Debit:        m.Debit,
		Credit:       m.Credit,
		Description:  m.Description,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainJournalLineSlice converts a slice of model lines.
func ToDomainJournalLineSlice(ms []models.JournalLine) []domain.JournalLine {
	ds := make([]domain.JournalLine, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainJournalLine(m)
	}
	return ds
}
