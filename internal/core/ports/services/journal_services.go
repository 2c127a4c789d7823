package services

import (
	"context"

	"github.com/shopstack/ledger-core/internal/core/domain"
	"github.com/shopstack/ledger-core/internal/dto"
)

// JournalService is the transactional heart of the ledger: it validates and
// commits journal entries against the chart of accounts and the period
// calendar. Entry lifecycle: draft -> posted -> reversed; drafts may also be
// discarded without trace.
type JournalService interface {
	// CreateEntry validates and persists a new draft entry with its lines,
	// assigning the next sequential entry number for the entry's fiscal year.
	CreateEntry(ctx context.Context, req dto.CreateEntryRequest, actorID string) (*domain.JournalEntry, error)

	// GetEntryByID retrieves an entry with its lines.
	GetEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error)

	// ListEntries retrieves a paginated list of entries.
	ListEntries(ctx context.Context, params dto.ListEntriesParams) (*dto.ListEntriesResponse, error)

	// PostEntry irreversibly commits a draft entry's effect into account
	// balances. The period is re-validated at posting time.
	PostEntry(ctx context.Context, entryID string, actorID string) (*domain.JournalEntry, error)

	// ReverseEntry creates and posts a new entry negating a posted entry
	// line-for-line, dated today, and links the two entries. The reason is
	// recorded in the reversing entry's description.
	ReverseEntry(ctx context.Context, entryID string, reason string, actorID string) (*domain.JournalEntry, error)

	// DeleteDraft discards a draft entry without trace.
	DeleteDraft(ctx context.Context, entryID string, actorID string) error

	// BulkPost posts a batch of entries, reporting success or failure per
	// entry. A failing entry never aborts the rest of the batch.
	BulkPost(ctx context.Context, entryIDs []string, actorID string) ([]dto.BulkPostItemResult, error)
}
