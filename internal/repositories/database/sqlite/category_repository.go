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

const categoryColumns = `record_id, kind, label, amount, record_date, shares_outstanding, par_value, is_recurring, description, created_at, last_updated_at`

type SQLiteCategoryRepository struct {
	BaseRepository
}

func newSQLiteCategoryRepository(db *sql.DB) *SQLiteCategoryRepository {
	return &SQLiteCategoryRepository{BaseRepository: BaseRepository{DB: db}}
}

var _ portsrepo.CategoryRepositoryFacade = (*SQLiteCategoryRepository)(nil)

func scanCategoryRecord(row scanner) (domain.CategoryRecord, error) {
	var m models.CategoryRecord
	err := row.Scan(&m.RecordID, &m.Kind, &m.Label, &m.Amount, &m.RecordDate, &m.SharesOutstanding,
		&m.ParValue, &m.IsRecurring, &m.Description, &m.CreatedAt, &m.LastUpdatedAt)
	if err != nil {
		return domain.CategoryRecord{}, err
	}
	return mapping.ToDomainCategoryRecord(m), nil
}

func (r *SQLiteCategoryRepository) SaveCategoryRecord(ctx context.Context, record domain.CategoryRecord) error {
	m := mapping.ToModelCategoryRecord(record)
	if m.RecordDate.Valid {
		m.RecordDate.Time = m.RecordDate.Time.UTC()
	}
	_, err := r.DB.ExecContext(ctx, `INSERT INTO category_records (`+categoryColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?);`,
		m.RecordID, m.Kind, m.Label, m.Amount.String(), m.RecordDate, m.SharesOutstanding,
		m.ParValue, m.IsRecurring, m.Description, m.CreatedAt.UTC(), m.LastUpdatedAt.UTC())
	if err != nil {
		return duplicateOr(err, "category record "+record.RecordID)
	}
	return nil
}

func (r *SQLiteCategoryRepository) FindCategoryRecord(ctx context.Context, link domain.CategoryLink) (*domain.CategoryRecord, error) {
	return findCategoryRecord(ctx, r.DB, link)
}

func (r *SQLiteCategoryRepository) ListCategoryRecords(ctx context.Context, kind *domain.CategoryKind) ([]domain.CategoryRecord, error) {
	var c conditions
	if kind != nil {
		c.add("kind = ?", string(*kind))
	}
	rows, err := r.DB.QueryContext(ctx, `SELECT `+categoryColumns+` FROM category_records`+c.where()+` ORDER BY created_at, record_id;`, c.args...)
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
	return records, rows.Err()
}

func findCategoryRecord(ctx context.Context, q querier, link domain.CategoryLink) (*domain.CategoryRecord, error) {
	row := q.QueryRowContext(ctx, `SELECT `+categoryColumns+` FROM category_records WHERE record_id = ? AND kind = ?;`,
		link.RecordID, string(link.Kind))
	rec, err := scanCategoryRecord(row)
	if err != nil {
		return nil, notFoundOr(err, string(link.Kind)+" record")
	}
	return &rec, nil
}
