package pgsql

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/shopstack/ledger-core/internal/apperrors"
	"github.com/shopstack/ledger-core/internal/core/domain"
	portsrepo "github.com/shopstack/ledger-core/internal/core/ports/repositories"
	"github.com/shopstack/ledger-core/internal/models"
	"github.com/shopstack/ledger-core/internal/utils/mapping"
	"github.com/shopstack/ledger-core/internal/utils/pagination"
)

const entryColumns = `
	entry_id, entry_number, fiscal_year, sequence_no, entry_date, description,
	reference, source_type, source_id, status, period_id, total_debit, total_credit,
	reverses_entry_id, reversed_by_entry_id, posted_at,
	created_at, created_by, last_updated_at, last_updated_by`

type PgxJournalRepository struct {
	BaseRepository
	accountRepo *PgxAccountRepository
}

// newPgxJournalRepository creates a new repository for journal entry and line data.
func newPgxJournalRepository(pool *pgxpool.Pool, accountRepo *PgxAccountRepository) *PgxJournalRepository {
	return &PgxJournalRepository{
		BaseRepository: BaseRepository{Pool: pool},
		accountRepo:    accountRepo,
	}
}

// Ensure PgxJournalRepository implements portsrepo.JournalRepository
var _ portsrepo.JournalRepository = (*PgxJournalRepository)(nil)

// nextSequenceInTx claims the next entry sequence for a fiscal year. The
// upsert takes a row lock on the year's counter, so two concurrent saves for
// the same year serialize here and can never observe the same value.
func (r *PgxJournalRepository) nextSequenceInTx(ctx context.Context, tx pgx.Tx, fiscalYear int) (int64, error) {
	query := `
		INSERT INTO entry_sequences (fiscal_year, last_sequence)
		VALUES ($1, 1)
		ON CONFLICT (fiscal_year)
		DO UPDATE SET last_sequence = entry_sequences.last_sequence + 1
		RETURNING last_sequence;
	`
	var seq int64
	if err := tx.QueryRow(ctx, query, fiscalYear).Scan(&seq); err != nil {
		return 0, apperrors.NewAppError(500, "failed to claim entry sequence", err)
	}
	return seq, nil
}

func (r *PgxJournalRepository) insertEntryInTx(ctx context.Context, tx pgx.Tx, entry domain.JournalEntry) error {
	m := mapping.ToModelJournalEntry(entry)
	query := `
		INSERT INTO journal_entries (` + entryColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20);
	`
	_, err := tx.Exec(ctx, query,
		m.EntryID,
		m.EntryNumber,
		m.FiscalYear,
		m.SequenceNo,
		m.EntryDate,
		m.Description,
		m.Reference,
		m.SourceType,
		m.SourceID,
		m.Status,
		m.PeriodID,
		m.TotalDebit,
		m.TotalCredit,
		m.ReversesEntryID,
		m.ReversedByEntryID,
		m.PostedAt,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert journal entry "+m.EntryID, err)
	}
	return nil
}

func (r *PgxJournalRepository) insertLinesInTx(ctx context.Context, tx pgx.Tx, lines []domain.JournalLine) error {
	batch := &pgx.Batch{}
	query := `
		INSERT INTO journal_lines (
			entry_id, line_number, account_id, sub_account_id, debit, credit, description,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, NULLIF($4, ''), $5, $6, $7, $8, $9, $10, $11);
	`
	for _, line := range lines {
		m := mapping.ToModelJournalLine(line)
		batch.Queue(query,
			m.EntryID,
			m.LineNumber,
			m.AccountID,
			m.SubAccountID,
			m.Debit,
			m.Credit,
			m.Description,
			m.CreatedAt,
			m.CreatedBy,
			m.LastUpdatedAt,
			m.LastUpdatedBy,
		)
	}
	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		return apperrors.NewAppError(500, "failed to insert journal lines", err)
	}
	return nil
}

// sharePeriodInTx takes a share lock on the entry's period row and verifies it
// is still open. Posting holds the share lock until commit, which blocks a
// concurrent ClosePeriod (exclusive lock) from slipping between the check and
// the status flip.
func (r *PgxJournalRepository) sharePeriodInTx(ctx context.Context, tx pgx.Tx, periodID string) error {
	var status models.PeriodStatus
	query := `SELECT status FROM accounting_periods WHERE period_id = $1 FOR SHARE;`
	if err := tx.QueryRow(ctx, query, periodID).Scan(&status); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrPeriodNotFound
		}
		return apperrors.NewAppError(500, "failed to lock period "+periodID, err)
	}
	if domain.PeriodStatus(status) != domain.PeriodOpen {
		return apperrors.ErrPeriodClosed
	}
	return nil
}

// SaveEntry claims the next sequence number for the entry's fiscal year and
// persists the draft entry with its lines in one transaction.
func (r *PgxJournalRepository) SaveEntry(ctx context.Context, entry domain.JournalEntry, lines []domain.JournalLine) (*domain.JournalEntry, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	// Hold the period's share lock until commit so a concurrent close (which
	// locks the row exclusively and counts drafts) cannot interleave with
	// this insert.
	if err := r.sharePeriodInTx(ctx, tx, entry.PeriodID); err != nil {
		return nil, err
	}

	seq, err := r.nextSequenceInTx(ctx, tx, entry.FiscalYear)
	if err != nil {
		return nil, err
	}
	entry.SequenceNo = seq
	entry.EntryNumber = domain.FormatEntryNumber(entry.FiscalYear, seq)

	if err := r.insertEntryInTx(ctx, tx, entry); err != nil {
		return nil, err
	}
	if err := r.insertLinesInTx(ctx, tx, lines); err != nil {
		return nil, err
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	entry.Lines = lines
	return &entry, nil
}

// PostEntry applies the posting deltas to the referenced accounts' cached
// totals and flips the entry from draft to posted, atomically.
func (r *PgxJournalRepository) PostEntry(ctx context.Context, entryID string, periodID string, deltas map[string]domain.PostingDelta, postedAt time.Time, actorID string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if err := r.sharePeriodInTx(ctx, tx, periodID); err != nil {
		return err
	}

	accountIDs := make([]string, 0, len(deltas))
	for accountID := range deltas {
		accountIDs = append(accountIDs, accountID)
	}
	if _, err := r.accountRepo.findAccountsByIDsForUpdate(ctx, tx, accountIDs); err != nil {
		return err
	}
	if err := r.accountRepo.applyPostingDeltasInTx(ctx, tx, deltas, actorID, postedAt); err != nil {
		return err
	}

	// Guarded flip. Zero rows means another transaction posted (or deleted)
	// the entry first.
	flipQuery := `
		UPDATE journal_entries
		SET status = $2, posted_at = $3, last_updated_at = $3, last_updated_by = $4
		WHERE entry_id = $1 AND status = $5;
	`
	tag, err := tx.Exec(ctx, flipQuery, entryID, models.EntryStatus(domain.Posted), postedAt, actorID, models.EntryStatus(domain.Draft))
	if err != nil {
		return apperrors.NewAppError(500, "failed to post journal entry "+entryID, err)
	}
	if tag.RowsAffected() == 0 {
		var exists bool
		if err := tx.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM journal_entries WHERE entry_id = $1);`, entryID).Scan(&exists); err != nil {
			return apperrors.NewAppError(500, "failed to check journal entry "+entryID, err)
		}
		if !exists {
			return apperrors.ErrNotFound
		}
		return apperrors.ErrAlreadyPosted
	}

	return r.Commit(ctx, tx)
}

// SaveReversal persists the reversing entry as posted, applies its deltas to
// account totals, and marks the original entry as reversed, all in one
// transaction.
func (r *PgxJournalRepository) SaveReversal(ctx context.Context, reversing domain.JournalEntry, lines []domain.JournalLine, deltas map[string]domain.PostingDelta, originalEntryID string) (*domain.JournalEntry, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	if err := r.sharePeriodInTx(ctx, tx, reversing.PeriodID); err != nil {
		return nil, err
	}

	// Claim the reversal's mark on the original first; the guarded update
	// doubles as the AlreadyReversed check under concurrency.
	markQuery := `
		UPDATE journal_entries
		SET status = $2, reversed_by_entry_id = $3, last_updated_at = $4, last_updated_by = $5
		WHERE entry_id = $1 AND status = $6 AND reversed_by_entry_id IS NULL;
	`
	tag, err := tx.Exec(ctx, markQuery,
		originalEntryID,
		models.EntryStatus(domain.Reversed),
		reversing.EntryID,
		reversing.CreatedAt,
		reversing.CreatedBy,
		models.EntryStatus(domain.Posted),
	)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to mark journal entry "+originalEntryID+" as reversed", err)
	}
	if tag.RowsAffected() == 0 {
		return nil, apperrors.ErrAlreadyReversed
	}

	seq, err := r.nextSequenceInTx(ctx, tx, reversing.FiscalYear)
	if err != nil {
		return nil, err
	}
	reversing.SequenceNo = seq
	reversing.EntryNumber = domain.FormatEntryNumber(reversing.FiscalYear, seq)

	if err := r.insertEntryInTx(ctx, tx, reversing); err != nil {
		return nil, err
	}
	if err := r.insertLinesInTx(ctx, tx, lines); err != nil {
		return nil, err
	}

	accountIDs := make([]string, 0, len(deltas))
	for accountID := range deltas {
		accountIDs = append(accountIDs, accountID)
	}
	if _, err := r.accountRepo.findAccountsByIDsForUpdate(ctx, tx, accountIDs); err != nil {
		return nil, err
	}
	if err := r.accountRepo.applyPostingDeltasInTx(ctx, tx, deltas, reversing.CreatedBy, reversing.CreatedAt); err != nil {
		return nil, err
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	reversing.Lines = lines
	return &reversing, nil
}

// DeleteDraftEntry removes a draft entry and its lines without trace.
func (r *PgxJournalRepository) DeleteDraftEntry(ctx context.Context, entryID string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if _, err := tx.Exec(ctx, `DELETE FROM journal_lines WHERE entry_id = $1;`, entryID); err != nil {
		return apperrors.NewAppError(500, "failed to delete lines of journal entry "+entryID, err)
	}

	tag, err := tx.Exec(ctx, `DELETE FROM journal_entries WHERE entry_id = $1 AND status = $2;`, entryID, models.EntryStatus(domain.Draft))
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete journal entry "+entryID, err)
	}
	if tag.RowsAffected() == 0 {
		var exists bool
		if err := tx.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM journal_entries WHERE entry_id = $1);`, entryID).Scan(&exists); err != nil {
			return apperrors.NewAppError(500, "failed to check journal entry "+entryID, err)
		}
		if !exists {
			return apperrors.ErrNotFound
		}
		return apperrors.ErrAlreadyPosted
	}

	return r.Commit(ctx, tx)
}

// FindEntryByID retrieves a journal entry header by its ID.
func (r *PgxJournalRepository) FindEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error) {
	query := `SELECT ` + entryColumns + ` FROM journal_entries WHERE entry_id = $1;`
	m, err := scanEntry(r.Pool.QueryRow(ctx, query, entryID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find journal entry by ID "+entryID, err)
	}
	entry := mapping.ToDomainJournalEntry(m)
	return &entry, nil
}

func scanEntry(row pgx.Row) (models.JournalEntry, error) {
	var m models.JournalEntry
	err := row.Scan(
		&m.EntryID,
		&m.EntryNumber,
		&m.FiscalYear,
		&m.SequenceNo,
		&m.EntryDate,
		&m.Description,
		&m.Reference,
		&m.SourceType,
		&m.SourceID,
		&m.Status,
		&m.PeriodID,
		&m.TotalDebit,
		&m.TotalCredit,
		&m.ReversesEntryID,
		&m.ReversedByEntryID,
		&m.PostedAt,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// FindLinesByEntryID retrieves all lines of an entry ordered by line number.
func (r *PgxJournalRepository) FindLinesByEntryID(ctx context.Context, entryID string) ([]domain.JournalLine, error) {
	query := `
		SELECT entry_id, line_number, account_id, COALESCE(sub_account_id, ''), debit, credit, description,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM journal_lines
		WHERE entry_id = $1
		ORDER BY line_number;
	`
	rows, err := r.Pool.Query(ctx, query, entryID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query lines for journal entry "+entryID, err)
	}
	defer rows.Close()

	lines := []models.JournalLine{}
	for rows.Next() {
		var m models.JournalLine
		err := rows.Scan(
			&m.EntryID,
			&m.LineNumber,
			&m.AccountID,
			&m.SubAccountID,
			&m.Debit,
			&m.Credit,
			&m.Description,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan line row for journal entry "+entryID, err)
		}
		lines = append(lines, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "failed reading line rows", err)
	}
	return mapping.ToDomainJournalLineSlice(lines), nil
}

// ListEntries retrieves a page of entries ordered by entry date descending,
// breaking ties on creation time. The returned token resumes after the last
// row of the page; nil means the listing is exhausted.
func (r *PgxJournalRepository) ListEntries(ctx context.Context, limit int, nextToken *string, includeReversals bool) ([]domain.JournalEntry, *string, error) {
	query := `SELECT ` + entryColumns + ` FROM journal_entries`
	args := []any{}
	conds := []string{}

	if !includeReversals {
		conds = append(conds, `reverses_entry_id IS NULL`)
	}
	if nextToken != nil && *nextToken != "" {
		entryDate, createdAt, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid pagination token", err)
		}
		args = append(args, entryDate, createdAt)
		conds = append(conds, `(entry_date, created_at) < ($1, $2)`)
	}

	for i, cond := range conds {
		if i == 0 {
			query += ` WHERE ` + cond
		} else {
			query += ` AND ` + cond
		}
	}

	// Fetch one extra row to know whether a next page exists.
	args = append(args, limit+1)
	switch len(args) {
	case 1:
		query += ` ORDER BY entry_date DESC, created_at DESC LIMIT $1;`
	default:
		query += ` ORDER BY entry_date DESC, created_at DESC LIMIT $3;`
	}

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to query journal entries", err)
	}
	defer rows.Close()

	entries := []domain.JournalEntry{}
	for rows.Next() {
		m, err := scanEntry(rows)
		if err != nil {
			return nil, nil, apperrors.NewAppError(500, "failed to scan journal entry row", err)
		}
		entries = append(entries, mapping.ToDomainJournalEntry(m))
	}
	if err := rows.Err(); err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed reading journal entry rows", err)
	}

	var token *string
	if len(entries) > limit {
		entries = entries[:limit]
		last := entries[limit-1]
		t := pagination.EncodeToken(last.EntryDate, last.CreatedAt)
		token = &t
	}
	return entries, token, nil
}
