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
)

type PgxReportingRepository struct {
	BaseRepository
}

// newPgxReportingRepository creates a new repository for report aggregation queries.
func newPgxReportingRepository(pool *pgxpool.Pool) *PgxReportingRepository {
	return &PgxReportingRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxReportingRepository implements portsrepo.ReportingRepository
var _ portsrepo.ReportingRepository = (*PgxReportingRepository)(nil)

// snapshotOpts gives report queries a stable view of committed data without
// blocking concurrent posting.
var snapshotOpts = pgx.TxOptions{
	IsoLevel:   pgx.RepeatableRead,
	AccessMode: pgx.ReadOnly,
}

// Reversed originals stay in activity sums; the reversing entry's lines
// offset them. Drafts never count.
const activityStatusFilter = `je.status IN ('POSTED', 'REVERSED')`

// GetAccountActivity returns posted debit/credit sums per account for all
// entries dated on or before asOf.
func (r *PgxReportingRepository) GetAccountActivity(ctx context.Context, asOf time.Time) ([]domain.AccountActivity, error) {
	query := `
		SELECT jl.account_id, COALESCE(SUM(jl.debit), 0), COALESCE(SUM(jl.credit), 0)
		FROM journal_lines jl
		JOIN journal_entries je ON je.entry_id = jl.entry_id
		WHERE ` + activityStatusFilter + ` AND je.entry_date <= $1
		GROUP BY jl.account_id;
	`
	return r.queryActivity(ctx, query, asOf)
}

// GetAccountActivityInRange returns posted debit/credit sums per account for
// entries dated within [from, to].
func (r *PgxReportingRepository) GetAccountActivityInRange(ctx context.Context, from, to time.Time) ([]domain.AccountActivity, error) {
	query := `
		SELECT jl.account_id, COALESCE(SUM(jl.debit), 0), COALESCE(SUM(jl.credit), 0)
		FROM journal_lines jl
		JOIN journal_entries je ON je.entry_id = jl.entry_id
		WHERE ` + activityStatusFilter + ` AND je.entry_date >= $1 AND je.entry_date <= $2
		GROUP BY jl.account_id;
	`
	return r.queryActivity(ctx, query, from, to)
}

func (r *PgxReportingRepository) queryActivity(ctx context.Context, query string, args ...any) ([]domain.AccountActivity, error) {
	tx, err := r.BeginTx(ctx, snapshotOpts)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	rows, err := tx.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query account activity", err)
	}
	defer rows.Close()

	activities := []domain.AccountActivity{}
	for rows.Next() {
		var a domain.AccountActivity
		if err := rows.Scan(&a.AccountID, &a.Debit, &a.Credit); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan account activity row", err)
		}
		activities = append(activities, a)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "failed reading account activity rows", err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return activities, nil
}

// GetActivityForAccount returns posted debit/credit sums for one account.
// A nil asOf means the full posted history.
func (r *PgxReportingRepository) GetActivityForAccount(ctx context.Context, accountID string, asOf *time.Time) (*domain.AccountActivity, error) {
	query := `
		SELECT COALESCE(SUM(jl.debit), 0), COALESCE(SUM(jl.credit), 0)
		FROM journal_lines jl
		JOIN journal_entries je ON je.entry_id = jl.entry_id
		WHERE ` + activityStatusFilter + ` AND jl.account_id = $1
	`
	args := []any{accountID}
	if asOf != nil {
		query += ` AND je.entry_date <= $2`
		args = append(args, *asOf)
	}

	activity := domain.AccountActivity{AccountID: accountID}
	err := r.Pool.QueryRow(ctx, query, args...).Scan(&activity.Debit, &activity.Credit)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Aggregate always returns a row, but keep the guard.
			return &activity, nil
		}
		return nil, apperrors.NewAppError(500, "failed to query activity for account "+accountID, err)
	}
	return &activity, nil
}
