package repositories

import (
	"context"
	"time"

	"github.com/shopstack/ledger-core/internal/core/domain"
)

// JournalReader defines read operations for journal data.
type JournalReader interface {
	// FindEntryByID retrieves a journal entry header by its unique identifier.
	FindEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error)

	// FindLinesByEntryID retrieves all lines of an entry ordered by line number.
	FindLinesByEntryID(ctx context.Context, entryID string) ([]domain.JournalLine, error)

	// ListEntries retrieves a paginated list of entries ordered by entry date
	// descending, using token-based pagination. It returns the entries, a token
	// for the next page, and an error.
	ListEntries(ctx context.Context, limit int, nextToken *string, includeReversals bool) ([]domain.JournalEntry, *string, error)
}

// JournalWriter defines write operations for journal data. The multi-step
// operations (save, post, reverse) each run inside a single database
// transaction so that sequence assignment, balance updates and status flips
// commit or roll back as a unit.
type JournalWriter interface {
	// SaveEntry assigns the next sequence number for the entry's fiscal year
	// and persists the entry with its lines as a draft. The returned entry
	// carries the assigned sequence and entry number. The entry's period row
	// is share-locked until commit, so the draft cannot land inside a period
	// that a concurrent close has already swept for drafts;
	// apperrors.ErrPeriodClosed is returned if the period closed in the
	// meantime.
	SaveEntry(ctx context.Context, entry domain.JournalEntry, lines []domain.JournalLine) (*domain.JournalEntry, error)

	// PostEntry atomically applies the posting deltas to the referenced
	// accounts' cached totals and flips the entry from draft to posted.
	// The entry's period row is share-locked and re-checked inside the
	// transaction; apperrors.ErrPeriodClosed is returned if it closed in the
	// meantime, apperrors.ErrAlreadyPosted if the entry is no longer a draft.
	PostEntry(ctx context.Context, entryID string, periodID string, deltas map[string]domain.PostingDelta, postedAt time.Time, actorID string) error

	// SaveReversal persists the reversing entry as posted (sequence assignment
	// and balance deltas included), links it to the original entry in both
	// directions, and marks the original as reversed, all in one transaction.
	SaveReversal(ctx context.Context, reversing domain.JournalEntry, lines []domain.JournalLine, deltas map[string]domain.PostingDelta, originalEntryID string) (*domain.JournalEntry, error)

	// DeleteDraftEntry removes a draft entry and its lines without trace.
	// apperrors.ErrAlreadyPosted is returned when the entry is not a draft.
	DeleteDraftEntry(ctx context.Context, entryID string) error
}

// JournalRepository combines all journal repository interfaces.
type JournalRepository interface {
	JournalReader
	JournalWriter
}
