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

const accountColumns = `account_id, number, name, account_type, status, parent_account_id, description, is_system, created_at, last_updated_at`

type scanner interface {
	Scan(dest ...any) error
}

type SQLiteAccountRepository struct {
	BaseRepository
}

func newSQLiteAccountRepository(db *sql.DB) *SQLiteAccountRepository {
	return &SQLiteAccountRepository{BaseRepository: BaseRepository{DB: db}}
}

var _ portsrepo.AccountRepositoryFacade = (*SQLiteAccountRepository)(nil)

func scanAccount(row scanner) (domain.Account, error) {
	var m models.Account
	err := row.Scan(&m.AccountID, &m.Number, &m.Name, &m.AccountType, &m.Status,
		&m.ParentAccountID, &m.Description, &m.IsSystem, &m.CreatedAt, &m.LastUpdatedAt)
	if err != nil {
		return domain.Account{}, err
	}
	return mapping.ToDomainAccount(m), nil
}

func (r *SQLiteAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	m := mapping.ToModelAccount(account)
	query := `INSERT INTO accounts (` + accountColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?);`
	_, err := r.DB.ExecContext(ctx, query,
		m.AccountID, m.Number, m.Name, string(m.AccountType), string(m.Status),
		m.ParentAccountID, m.Description, m.IsSystem, m.CreatedAt.UTC(), m.LastUpdatedAt.UTC(),
	)
	if err != nil {
		return duplicateOr(err, "account number "+account.Number)
	}
	return nil
}

func (r *SQLiteAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	acc, err := scanAccount(r.DB.QueryRowContext(ctx, `SELECT `+accountColumns+` FROM accounts WHERE account_id = ?;`, accountID))
	if err != nil {
		return nil, notFoundOr(err, "account")
	}
	return &acc, nil
}

func (r *SQLiteAccountRepository) FindAccountByNumber(ctx context.Context, number string) (*domain.Account, error) {
	acc, err := scanAccount(r.DB.QueryRowContext(ctx, `SELECT `+accountColumns+` FROM accounts WHERE number = ?;`, number))
	if err != nil {
		return nil, notFoundOr(err, "account")
	}
	return &acc, nil
}

func (r *SQLiteAccountRepository) ListAccounts(ctx context.Context, filter domain.AccountFilter) ([]domain.Account, error) {
	var c conditions
	if filter.AccountType != nil {
		c.add("account_type = ?", string(*filter.AccountType))
	}
	if filter.Status != nil {
		c.add("status = ?", string(*filter.Status))
	}
	rows, err := r.DB.QueryContext(ctx, `SELECT `+accountColumns+` FROM accounts`+c.where()+` ORDER BY number;`, c.args...)
	if err != nil {
		return nil, fmt.Errorf("error querying accounts: %w", err)
	}
	defer rows.Close()

	accounts := []domain.Account{}
	for rows.Next() {
		acc, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning account row: %w", err)
		}
		accounts = append(accounts, acc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating account rows: %w", err)
	}
	return accounts, nil
}

func (r *SQLiteAccountRepository) UpdateAccount(ctx context.Context, account domain.Account) error {
	m := mapping.ToModelAccount(account)
	res, err := r.DB.ExecContext(ctx,
		`UPDATE accounts SET name = ?, status = ?, description = ?, last_updated_at = ? WHERE account_id = ?;`,
		m.Name, string(m.Status), m.Description, m.LastUpdatedAt.UTC(), m.AccountID)
	if err != nil {
		return fmt.Errorf("error updating account %s: %w", account.AccountID, err)
	}
	return affectedOrNotFound(res, "account")
}

func findAccountsByIDs(ctx context.Context, q querier, accountIDs []string) (map[string]domain.Account, error) {
	accounts := make(map[string]domain.Account, len(accountIDs))
	if len(accountIDs) == 0 {
		return accounts, nil
	}
	in, args := inList(accountIDs)
	rows, err := q.QueryContext(ctx, `SELECT `+accountColumns+` FROM accounts WHERE account_id IN `+in+`;`, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying accounts by id: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		acc, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning account row: %w", err)
		}
		accounts[acc.AccountID] = acc
	}
	return accounts, rows.Err()
}
