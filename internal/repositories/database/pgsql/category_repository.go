package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/ledger_core/internal/core/domain"
	portsrepo "github.com/SscSPs/ledger_core/internal/core/ports/repositories"
	"github.com/SscSPs/ledger_core/internal/models"
	"github.com/SscSPs/ledger_core/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const categoryColumns = `record_id, kind, label, amount, record_date, shares_outstanding, par_value, is_recurring, description, created_at, last_updated_at`

type PgxCategoryRepository struct {
	BaseRepository
}

func newPgxCategoryRepository(pool *pgxpool.Pool) *PgxCategoryRepository {
	return &PgxCategoryRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.CategoryRepositoryFacade = (*PgxCategoryRepository)(nil)

func scanCategoryRecord(row pgx.Row) (domain.CategoryRecord, error) {
	var m models.CategoryRecord
	err := row.Scan(
		&m.RecordID,
		&m.Kind,
		&m.Label,
		&m.Amount,
		&m.RecordDate,
		&m.SharesOutstanding,
		&m.ParValue,
		&m.IsRecurring,
		&m.Description,
		&m.CreatedAt,
		&m.LastUpdatedAt,
	)
	if err != nil {
		return domain.CategoryRecord{}, err
	}
	return mapping.ToDomainCategoryRecord(m), nil
}

func (r *PgxCategoryRepository) SaveCategoryRecord(ctx context.Context, record domain.CategoryRecord) error {
	m := mapping.ToModelCategoryRecord(record)
	query := `INSERT INTO category_records (` + categoryColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);`
	_, err := r.Pool.Exec(ctx, query,
		m.RecordID, m.Kind, m.Label, m.Amount, m.RecordDate, m.SharesOutstanding,
		m.ParValue, m.IsRecurring, m.Description, m.CreatedAt, m.LastUpdatedAt,
	)
	if err != nil {
		return duplicateOr(err, "category record "+record.RecordID)
	}
	return nil
}

func (r *PgxCategoryRepository) FindCategoryRecord(ctx context.Context, link domain.CategoryLink) (*domain.CategoryRecord, error) {
	return findCategoryRecord(ctx, r.Pool, link)
}

func (r *PgxCategoryRepository) ListCategoryRecords(ctx context.Context, kind *domain.CategoryKind) ([]domain.CategoryRecord, error) {
	var c conditions
	if kind != nil {
		c.add("kind = $%d", string(*kind))
	}
	rows, err := r.Pool.Query(ctx, `SELECT `+categoryColumns+` FROM category_records`+c.where()+` ORDER BY created_at, record_id;`, c.args...)
	if err != nil {
		return nil, fmt.Errorf("error querying category records: %w", err)
	}
	defer rows.Close()

	records := []domain.CategoryRecord{}
	for rows.Next() {
		rec, err := scanCategoryRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning category record row: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating category record rows: %w", err)
	}
	return records, nil
}

func findCategoryRecord(ctx context.Context, q querier, link domain.CategoryLink) (*domain.CategoryRecord, error) {
	query := `SELECT ` + categoryColumns + ` FROM category_records WHERE record_id = $1 AND kind = $2;`
	rec, err := scanCategoryRecord(q.QueryRow(ctx, query, link.RecordID, string(link.Kind)))
	if err != nil {
		return nil, notFoundOr(err, string(link.Kind)+" record")
	}
	return &rec, nil
}
