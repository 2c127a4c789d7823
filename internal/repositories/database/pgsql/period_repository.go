package pgsql

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/shopstack/ledger-core/internal/apperrors"
	"github.com/shopstack/ledger-core/internal/core/domain"
	portsrepo "github.com/shopstack/ledger-core/internal/core/ports/repositories"
	"github.com/shopstack/ledger-core/internal/models"
	"github.com/shopstack/ledger-core/internal/utils/mapping"
)

// Raised by the periods table's range exclusion constraint.
const pgExclusionViolation = "23P01"

const periodColumns = `
	period_id, name, start_date, end_date, status, closed_at, closed_by,
	created_at, created_by, last_updated_at, last_updated_by`

type PgxPeriodRepository struct {
	BaseRepository
}

// newPgxPeriodRepository creates a new repository for fiscal period data.
func newPgxPeriodRepository(pool *pgxpool.Pool) *PgxPeriodRepository {
	return &PgxPeriodRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxPeriodRepository implements portsrepo.PeriodRepository
var _ portsrepo.PeriodRepository = (*PgxPeriodRepository)(nil)

// SavePeriod inserts a new period. The table's exclusion constraint rejects
// any range overlapping an existing period.
func (r *PgxPeriodRepository) SavePeriod(ctx context.Context, period domain.AccountingPeriod) error {
	m := mapping.ToModelPeriod(period)
	query := `
		INSERT INTO accounting_periods (` + periodColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, NULLIF($7, ''), $8, $9, $10, $11);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.PeriodID,
		m.Name,
		m.StartDate,
		m.EndDate,
		m.Status,
		m.ClosedAt,
		m.ClosedBy,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgExclusionViolation {
			return apperrors.ErrPeriodOverlap
		}
		return apperrors.NewAppError(500, "failed to insert period "+m.PeriodID, err)
	}
	return nil
}

// FindPeriodByID retrieves a period by its ID.
func (r *PgxPeriodRepository) FindPeriodByID(ctx context.Context, periodID string) (*domain.AccountingPeriod, error) {
	query := `SELECT ` + periodColumns + ` FROM accounting_periods WHERE period_id = $1;`
	return r.scanOnePeriod(r.Pool.QueryRow(ctx, query, periodID), "failed to find period by ID "+periodID)
}

// FindPeriodByDate retrieves the period whose range contains the date. The
// columns are DATEs, so the lookup compares at day granularity; matching a
// raw timestamp instead would miss any time past midnight on the period's
// last day.
func (r *PgxPeriodRepository) FindPeriodByDate(ctx context.Context, date time.Time) (*domain.AccountingPeriod, error) {
	day := date.UTC().Format("2006-01-02")
	query := `SELECT ` + periodColumns + ` FROM accounting_periods WHERE daterange(start_date, end_date, '[]') @> $1::date;`
	return r.scanOnePeriod(r.Pool.QueryRow(ctx, query, day), "failed to find period covering date")
}

func (r *PgxPeriodRepository) scanOnePeriod(row pgx.Row, failMsg string) (*domain.AccountingPeriod, error) {
	m, err := scanPeriod(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, failMsg, err)
	}
	p := mapping.ToDomainPeriod(m)
	return &p, nil
}

func scanPeriod(row pgx.Row) (models.AccountingPeriod, error) {
	var m models.AccountingPeriod
	var closedBy *string
	err := row.Scan(
		&m.PeriodID,
		&m.Name,
		&m.StartDate,
		&m.EndDate,
		&m.Status,
		&m.ClosedAt,
		&closedBy,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return models.AccountingPeriod{}, err
	}
	if closedBy != nil {
		m.ClosedBy = *closedBy
	}
	return m, nil
}

// ListPeriods retrieves all periods ordered by start date.
func (r *PgxPeriodRepository) ListPeriods(ctx context.Context) ([]domain.AccountingPeriod, error) {
	query := `SELECT ` + periodColumns + ` FROM accounting_periods ORDER BY start_date ASC;`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query periods", err)
	}
	defer rows.Close()

	periods := []domain.AccountingPeriod{}
	for rows.Next() {
		m, err := scanPeriod(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan period row", err)
		}
		periods = append(periods, mapping.ToDomainPeriod(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "failed reading period rows", err)
	}
	return periods, nil
}

// ClosePeriod transitions a period to closed. The exclusive row lock makes
// close and posting mutually exclusive: a posting transaction share-locks the
// same row, so the close waits for in-flight postings and vice versa. The
// draft check runs only after the lock is held.
func (r *PgxPeriodRepository) ClosePeriod(ctx context.Context, periodID string, closedBy string, closedAt time.Time) (*domain.AccountingPeriod, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	lockQuery := `SELECT ` + periodColumns + ` FROM accounting_periods WHERE period_id = $1 FOR UPDATE;`
	m, err := scanPeriod(tx.QueryRow(ctx, lockQuery, periodID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to lock period "+periodID, err)
	}
	if domain.PeriodStatus(m.Status) == domain.PeriodClosed {
		return nil, apperrors.ErrPeriodAlreadyClosed
	}

	var draftCount int
	countQuery := `SELECT COUNT(*) FROM journal_entries WHERE period_id = $1 AND status = $2;`
	if err := tx.QueryRow(ctx, countQuery, periodID, models.EntryStatus(domain.Draft)).Scan(&draftCount); err != nil {
		return nil, apperrors.NewAppError(500, "failed to count draft entries in period "+periodID, err)
	}
	if draftCount > 0 {
		return nil, apperrors.ErrUnpostedEntriesExist
	}

	closeQuery := `
		UPDATE accounting_periods
		SET status = $2, closed_at = $3, closed_by = $4, last_updated_at = $3, last_updated_by = $4
		WHERE period_id = $1;
	`
	if _, err := tx.Exec(ctx, closeQuery, periodID, models.PeriodStatus(domain.PeriodClosed), closedAt, closedBy); err != nil {
		return nil, apperrors.NewAppError(500, "failed to close period "+periodID, err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}

	m.Status = models.PeriodStatus(domain.PeriodClosed)
	m.ClosedAt = &closedAt
	m.ClosedBy = closedBy
	m.LastUpdatedAt = closedAt
	m.LastUpdatedBy = closedBy
	p := mapping.ToDomainPeriod(m)
	return &p, nil
}
