package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/shopstack/ledger-core/internal/core/domain"
)

// CreateEntryLineRequest is one line of a new journal entry. Exactly one of
// Debit/Credit must be positive; the service rejects ambiguous lines.
type CreateEntryLineRequest struct {
	AccountID    string          `json:"accountID" binding:"required"`
	SubAccountID string          `json:"subAccountID"`
	Debit        decimal.Decimal `json:"debit"`
	Credit       decimal.Decimal `json:"credit"`
	Description  string          `json:"description"`
}

// CreateEntryRequest defines the data needed to create a new draft entry.
type CreateEntryRequest struct {
	Date        time.Time                `json:"date" binding:"required"`
	Description string                   `json:"description" binding:"required"`
	Reference   string                   `json:"reference"`
	SourceType  string                   `json:"sourceType"`
	SourceID    string                   `json:"sourceID"`
	Lines       []CreateEntryLineRequest `json:"lines" binding:"required"`
}

// EntryLineResponse defines the data returned for a journal line.
type EntryLineResponse struct {
	LineNumber   int             `json:"lineNumber"`
	AccountID    string          `json:"accountID"`
	SubAccountID string          `json:"subAccountID,omitempty"`
	Debit        decimal.Decimal `json:"debit"`
	Credit       decimal.Decimal `json:"credit"`
	Description  string          `json:"description"`
}

// EntryResponse defines the data returned for a journal entry.
type EntryResponse struct {
	EntryID           string              `json:"entryID"`
	EntryNumber       string              `json:"entryNumber"`
	Date              time.Time           `json:"date"`
	Description       string              `json:"description"`
	Reference         string              `json:"reference,omitempty"`
	SourceType        string              `json:"sourceType,omitempty"`
	SourceID          string              `json:"sourceID,omitempty"`
	Status            domain.EntryStatus  `json:"status"`
	PeriodID          string              `json:"periodID"`
	TotalDebit        decimal.Decimal     `json:"totalDebit"`
	TotalCredit       decimal.Decimal     `json:"totalCredit"`
	IsBalanced        bool                `json:"isBalanced"`
	ReversedByEntryID *string             `json:"reversedByEntryID,omitempty"`
	ReversesEntryID   *string             `json:"reversesEntryID,omitempty"`
	PostedAt          *time.Time          `json:"postedAt,omitempty"`
	Lines             []EntryLineResponse `json:"lines,omitempty"`
	CreatedAt         time.Time           `json:"createdAt"`
	CreatedBy         string              `json:"createdBy"`
}

// ReverseEntryRequest carries the mandatory reason for a reversal.
type ReverseEntryRequest struct {
	Reason string `json:"reason" binding:"required"`
}

// BulkPostRequest identifies the draft entries to post as a batch.
type BulkPostRequest struct {
	EntryIDs []string `json:"entryIDs" binding:"required,min=1"`
}

// BulkPostItemResult reports the outcome of posting one entry of a batch.
type BulkPostItemResult struct {
	EntryID string `json:"entryID"`
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// BulkPostResponse wraps the per-entry outcomes of a bulk post.
type BulkPostResponse struct {
	Results []BulkPostItemResult `json:"results"`
}

// ListEntriesParams defines query parameters for listing entries.
type ListEntriesParams struct {
	Limit            int     `form:"limit,default=20"`
	NextToken        *string `form:"nextToken"`
	IncludeReversals bool    `form:"includeReversals,default=false"`
}

// ListEntriesResponse wraps a page of entries with its continuation token.
type ListEntriesResponse struct {
	Entries   []EntryResponse `json:"entries"`
	NextToken *string         `json:"nextToken,omitempty"`
}

// ToEntryLineResponse converts a domain.JournalLine to its DTO.
func ToEntryLineResponse(line *domain.JournalLine) EntryLineResponse {
	return EntryLineResponse{
		LineNumber:   line.LineNumber,
		AccountID:    line.AccountID,
		SubAccountID: line.SubAccountID,
		Debit:        line.Debit,
		Credit:       line.Credit,
		Description:  line.Description,
	}
}

// ToEntryResponse converts a domain.JournalEntry (with or without lines).
func ToEntryResponse(e *domain.JournalEntry) EntryResponse {
	var lines []EntryLineResponse
	if len(e.Lines) > 0 {
		lines = make([]EntryLineResponse, len(e.Lines))
		for i, line := range e.Lines {
			lines[i] = ToEntryLineResponse(&line)
		}
	}
	return EntryResponse{
		EntryID:           e.EntryID,
		EntryNumber:       e.EntryNumber,
		Date:              e.EntryDate,
		Description:       e.Description,
		Reference:         e.Reference,
		SourceType:        e.SourceType,
		SourceID:          e.SourceID,
		Status:            e.Status,
		PeriodID:          e.PeriodID,
		TotalDebit:        e.TotalDebit,
		TotalCredit:       e.TotalCredit,
		IsBalanced:        e.IsBalanced(),
		ReversedByEntryID: e.ReversedByEntryID,
		ReversesEntryID:   e.ReversesEntryID,
		PostedAt:          e.PostedAt,
		Lines:             lines,
		CreatedAt:         e.CreatedAt,
		CreatedBy:         e.CreatedBy,
	}
}

// ToEntryResponses converts a slice of entries.
func ToEntryResponses(entries []domain.JournalEntry) []EntryResponse {
	responses := make([]EntryResponse, len(entries))
	for i := range entries {
		responses[i] = ToEntryResponse(&entries[i])
	}
	return responses
}
