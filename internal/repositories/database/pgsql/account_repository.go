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

const accountColumns = `account_id, number, name, account_type, status, parent_account_id, description, is_system, created_at, last_updated_at`

type PgxAccountRepository struct {
	BaseRepository
}

func newPgxAccountRepository(pool *pgxpool.Pool) *PgxAccountRepository {
	return &PgxAccountRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.AccountRepositoryFacade = (*PgxAccountRepository)(nil)

func scanAccount(row pgx.Row) (domain.Account, error) {
	var m models.Account
	err := row.Scan(
		&m.AccountID,
		&m.Number,
		&m.Name,
		&m.AccountType,
		&m.Status,
		&m.ParentAccountID,
		&m.Description,
		&m.IsSystem,
		&m.CreatedAt,
		&m.LastUpdatedAt,
	)
	if err != nil {
		return domain.Account{}, err
	}
	return mapping.ToDomainAccount(m), nil
}

func (r *PgxAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	m := mapping.ToModelAccount(account)
	query := `INSERT INTO accounts (` + accountColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);`
	_, err := r.Pool.Exec(ctx, query,
		m.AccountID, m.Number, m.Name, m.AccountType, m.Status,
		m.ParentAccountID, m.Description, m.IsSystem, m.CreatedAt, m.LastUpdatedAt,
	)
	if err != nil {
		return duplicateOr(err, "account number "+account.Number)
	}
	return nil
}

func (r *PgxAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE account_id = $1;`
	acc, err := scanAccount(r.Pool.QueryRow(ctx, query, accountID))
	if err != nil {
		return nil, notFoundOr(err, "account")
	}
	return &acc, nil
}

func (r *PgxAccountRepository) FindAccountByNumber(ctx context.Context, number string) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE number = $1;`
	acc, err := scanAccount(r.Pool.QueryRow(ctx, query, number))
	if err != nil {
		return nil, notFoundOr(err, "account")
	}
	return &acc, nil
}

func (r *PgxAccountRepository) ListAccounts(ctx context.Context, filter domain.AccountFilter) ([]domain.Account, error) {
	var c conditions
	if filter.AccountType != nil {
		c.add("account_type = $%d", string(*filter.AccountType))
	}
	if filter.Status != nil {
		c.add("status = $%d", string(*filter.Status))
	}
	query := `SELECT ` + accountColumns + ` FROM accounts` + c.where() + ` ORDER BY number;`

	rows, err := r.Pool.Query(ctx, query, c.args...)
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

// UpdateAccount rewrites the mutable columns. Number and type never change.
func (r *PgxAccountRepository) UpdateAccount(ctx context.Context, account domain.Account) error {
	m := mapping.ToModelAccount(account)
	query := `
		UPDATE accounts
		SET name = $1, status = $2, description = $3, last_updated_at = $4
		WHERE account_id = $5;
	`
	tag, err := r.Pool.Exec(ctx, query, m.Name, m.Status, m.Description, m.LastUpdatedAt, m.AccountID)
	if err != nil {
		return fmt.Errorf("error updating account %s: %w", account.AccountID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("account not found")
	}
	return nil
}

// findAccountsByIDs returns the accounts that exist, keyed by id.
func findAccountsByIDs(ctx context.Context, q querier, accountIDs []string) (map[string]domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE account_id = ANY($1);`
	rows, err := q.Query(ctx, query, accountIDs)
	if err != nil {
		return nil, fmt.Errorf("error querying accounts by id: %w", err)
	}
	defer rows.Close()

	accounts := make(map[string]domain.Account, len(accountIDs))
	for rows.Next() {
		acc, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning account row: %w", err)
		}
		accounts[acc.AccountID] = acc
	}
	return accounts, rows.Err()
}
