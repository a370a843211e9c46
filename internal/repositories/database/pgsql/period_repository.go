package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/ledger_core/internal/apperrors"
	"github.com/SscSPs/ledger_core/internal/core/domain"
	portsrepo "github.com/SscSPs/ledger_core/internal/core/ports/repositories"
	"github.com/SscSPs/ledger_core/internal/models"
	"github.com/SscSPs/ledger_core/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const periodColumns = `period_id, name, period_type, start_date, end_date, is_current, status, created_at, last_updated_at`

type PgxPeriodRepository struct {
	BaseRepository
}

func newPgxPeriodRepository(pool *pgxpool.Pool) *PgxPeriodRepository {
	return &PgxPeriodRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.PeriodRepositoryFacade = (*PgxPeriodRepository)(nil)

func scanPeriod(row pgx.Row) (domain.Period, error) {
	var m models.Period
	if err := row.Scan(&m.PeriodID, &m.Name, &m.PeriodType, &m.StartDate, &m.EndDate, &m.IsCurrent, &m.Status, &m.CreatedAt, &m.LastUpdatedAt); err != nil {
		return domain.Period{}, err
	}
	return mapping.ToDomainPeriod(m), nil
}

func (r *PgxPeriodRepository) SavePeriod(ctx context.Context, period domain.Period) error {
	m := mapping.ToModelPeriod(period)
	query := `INSERT INTO periods (` + periodColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);`
	if _, err := r.Pool.Exec(ctx, query, m.PeriodID, m.Name, m.PeriodType, m.StartDate, m.EndDate, m.IsCurrent, m.Status, m.CreatedAt, m.LastUpdatedAt); err != nil {
		return duplicateOr(err, "period "+period.PeriodID)
	}
	return nil
}

func (r *PgxPeriodRepository) FindPeriodByID(ctx context.Context, periodID string) (*domain.Period, error) {
	return findPeriodByID(ctx, r.Pool, periodID, "")
}

func (r *PgxPeriodRepository) FindCurrentPeriod(ctx context.Context) (*domain.Period, error) {
	query := `SELECT ` + periodColumns + ` FROM periods WHERE is_current ORDER BY start_date DESC LIMIT 1;`
	p, err := scanPeriod(r.Pool.QueryRow(ctx, query))
	if err != nil {
		return nil, notFoundOr(err, "current period")
	}
	return &p, nil
}

func (r *PgxPeriodRepository) ListPeriods(ctx context.Context) ([]domain.Period, error) {
	rows, err := r.Pool.Query(ctx, `SELECT `+periodColumns+` FROM periods ORDER BY start_date DESC;`)
	if err != nil {
		return nil, fmt.Errorf("error querying periods: %w", err)
	}
	defer rows.Close()

	periods := []domain.Period{}
	for rows.Next() {
		p, err := scanPeriod(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning period row: %w", err)
		}
		periods = append(periods, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating period rows: %w", err)
	}
	return periods, nil
}

// lock is empty, "FOR SHARE" or "FOR UPDATE".
func findPeriodByID(ctx context.Context, q querier, periodID string, lock string) (*domain.Period, error) {
	query := `SELECT ` + periodColumns + ` FROM periods WHERE period_id = $1 ` + lock + `;`
	p, err := scanPeriod(q.QueryRow(ctx, query, periodID))
	if err != nil {
		return nil, notFoundOr(err, "period")
	}
	return &p, nil
}

func updatePeriodStatus(ctx context.Context, q querier, period domain.Period) error {
	m := mapping.ToModelPeriod(period)
	tag, err := q.Exec(ctx, `UPDATE periods SET status = $1, is_current = $2, last_updated_at = $3 WHERE period_id = $4;`,
		m.Status, m.IsCurrent, m.LastUpdatedAt, m.PeriodID)
	if err != nil {
		return fmt.Errorf("error updating period %s: %w", period.PeriodID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("period not found")
	}
	return nil
}

func countUnbalancedInPeriod(ctx context.Context, q querier, periodID string) (int, error) {
	var n int
	err := q.QueryRow(ctx, `SELECT COUNT(*) FROM transactions WHERE period_id = $1 AND NOT is_balanced;`, periodID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("error counting unbalanced transactions in period %s: %w", periodID, err)
	}
	return n, nil
}
