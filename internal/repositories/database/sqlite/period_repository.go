package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/SscSPs/ledger_core/internal/core/domain"
	portsrepo "github.com/SscSPs/ledger_core/internal/core/ports/repositories"
	"github.com/SscSPs/ledger_core/internal/models"
	"github.com/SscSPs/ledger_core/internal/utils/mapping"
)

const periodColumns = `period_id, name, period_type, start_date, end_date, is_current, status, created_at, last_updated_at`

type SQLitePeriodRepository struct {
	BaseRepository
}

func newSQLitePeriodRepository(db *sql.DB) *SQLitePeriodRepository {
	return &SQLitePeriodRepository{BaseRepository: BaseRepository{DB: db}}
}

var _ portsrepo.PeriodRepositoryFacade = (*SQLitePeriodRepository)(nil)

func scanPeriod(row scanner) (domain.Period, error) {
	var m models.Period
	if err := row.Scan(&m.PeriodID, &m.Name, &m.PeriodType, &m.StartDate, &m.EndDate, &m.IsCurrent, &m.Status, &m.CreatedAt, &m.LastUpdatedAt); err != nil {
		return domain.Period{}, err
	}
	return mapping.ToDomainPeriod(m), nil
}

func (r *SQLitePeriodRepository) SavePeriod(ctx context.Context, period domain.Period) error {
	m := mapping.ToModelPeriod(period)
	_, err := r.DB.ExecContext(ctx, `INSERT INTO periods (`+periodColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?);`,
		m.PeriodID, m.Name, m.PeriodType, m.StartDate.UTC(), m.EndDate.UTC(), m.IsCurrent, m.Status, m.CreatedAt.UTC(), m.LastUpdatedAt.UTC())
	if err != nil {
		return duplicateOr(err, "period "+period.PeriodID)
	}
	return nil
}

func (r *SQLitePeriodRepository) FindPeriodByID(ctx context.Context, periodID string) (*domain.Period, error) {
	return findPeriodByID(ctx, r.DB, periodID)
}

func (r *SQLitePeriodRepository) FindCurrentPeriod(ctx context.Context) (*domain.Period, error) {
	row := r.DB.QueryRowContext(ctx, `SELECT `+periodColumns+` FROM periods WHERE is_current ORDER BY start_date DESC LIMIT 1;`)
	p, err := scanPeriod(row)
	if err != nil {
		return nil, notFoundOr(err, "current period")
	}
	return &p, nil
}

func (r *SQLitePeriodRepository) ListPeriods(ctx context.Context) ([]domain.Period, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT `+periodColumns+` FROM periods ORDER BY start_date DESC;`)
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
	return periods, rows.Err()
}

func findPeriodByID(ctx context.Context, q querier, periodID string) (*domain.Period, error) {
	p, err := scanPeriod(q.QueryRowContext(ctx, `SELECT `+periodColumns+` FROM periods WHERE period_id = ?;`, periodID))
	if err != nil {
		return nil, notFoundOr(err, "period")
	}
	return &p, nil
}

func updatePeriodStatus(ctx context.Context, q querier, period domain.Period) error {
	m := mapping.ToModelPeriod(period)
	res, err := q.ExecContext(ctx, `UPDATE periods SET status = ?, is_current = ?, last_updated_at = ? WHERE period_id = ?;`,
		m.Status, m.IsCurrent, m.LastUpdatedAt.UTC(), m.PeriodID)
	if err != nil {
		return fmt.Errorf("error updating period %s: %w", period.PeriodID, err)
	}
	return affectedOrNotFound(res, "period")
}

func countUnbalancedInPeriod(ctx context.Context, q querier, periodID string) (int, error) {
	var n int
	err := q.QueryRowContext(ctx, `SELECT COUNT(*) FROM transactions WHERE period_id = ? AND NOT is_balanced;`, periodID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("error counting unbalanced transactions in period %s: %w", periodID, err)
	}
	return n, nil
}
