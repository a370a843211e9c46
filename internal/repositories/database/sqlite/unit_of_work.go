package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	"github.com/SscSPs/ledger_core/internal/core/domain"
	portsrepo "github.com/SscSPs/ledger_core/internal/core/ports/repositories"
	"github.com/SscSPs/ledger_core/internal/utils/mapping"
)

// SQLiteUnitOfWork runs each unit inside one IMMEDIATE transaction.
// SQLite has no row locks; the database write lock taken at BEGIN stands in for them.
type SQLiteUnitOfWork struct {
	BaseRepository
	mu sync.Mutex
}

func newSQLiteUnitOfWork(db *sql.DB) *SQLiteUnitOfWork {
	return &SQLiteUnitOfWork{BaseRepository: BaseRepository{DB: db}}
}

var _ portsrepo.UnitOfWork = (*SQLiteUnitOfWork)(nil)

func (u *SQLiteUnitOfWork) RunInTx(ctx context.Context, fn func(ctx context.Context, tx portsrepo.TxRepository) error) error {
	// in-process writers queue here instead of spinning on SQLITE_BUSY
	u.mu.Lock()
	defer u.mu.Unlock()

	tx, err := u.Begin(ctx)
	if err != nil {
		return err
	}
	defer u.Rollback(tx)

	if err := fn(ctx, &sqliteTxRepository{tx: tx}); err != nil {
		return err
	}
	return u.Commit(tx)
}

type sqliteTxRepository struct {
	tx *sql.Tx
}

var _ portsrepo.TxRepository = (*sqliteTxRepository)(nil)

func (r *sqliteTxRepository) LockTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	return findTransaction(ctx, r.tx, transactionID)
}

func (r *sqliteTxRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	return findTransaction(ctx, r.tx, transactionID)
}

func (r *sqliteTxRepository) InsertTransaction(ctx context.Context, txn domain.Transaction) error {
	m := mapping.ToModelTransaction(txn)
	_, err := r.tx.ExecContext(ctx, `
		INSERT INTO transactions (
			transaction_id, type, description, amount, transaction_date, period_id,
			reference, category_kind, category_record_id, is_balanced, created_at, last_updated_at
		)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?);`,
		m.TransactionID, m.Type, m.Description, m.Amount, m.Date.UTC(), m.PeriodID,
		m.Reference, m.CategoryKind, m.CategoryID, m.IsBalanced, m.CreatedAt.UTC(), m.LastUpdatedAt.UTC(),
	)
	if err != nil {
		return duplicateOr(err, "transaction "+txn.TransactionID)
	}

	stmt, err := r.tx.PrepareContext(ctx, `
		INSERT INTO journal_entries (entry_id, transaction_id, account_id, debit, credit, description, position)
		VALUES (?, ?, ?, ?, ?, ?, ?);`)
	if err != nil {
		return fmt.Errorf("error preparing journal entry insert: %w", err)
	}
	defer stmt.Close()

	for _, e := range txn.Entries {
		me := mapping.ToModelJournalEntry(e)
		if _, err := stmt.ExecContext(ctx, me.EntryID, me.TransactionID, me.AccountID, me.Debit, me.Credit, me.Description, me.Position); err != nil {
			return fmt.Errorf("error inserting journal entry %s: %w", me.EntryID, err)
		}
	}
	return nil
}

func (r *sqliteTxRepository) UpdateTransaction(ctx context.Context, txn domain.Transaction) error {
	m := mapping.ToModelTransaction(txn)
	res, err := r.tx.ExecContext(ctx, `
		UPDATE transactions
		SET type = ?, description = ?, amount = ?, transaction_date = ?, period_id = ?,
		    reference = ?, category_kind = ?, category_record_id = ?, is_balanced = ?, last_updated_at = ?
		WHERE transaction_id = ?;`,
		m.Type, m.Description, m.Amount, m.Date.UTC(), m.PeriodID,
		m.Reference, m.CategoryKind, m.CategoryID, m.IsBalanced, m.LastUpdatedAt.UTC(), m.TransactionID,
	)
	if err != nil {
		return fmt.Errorf("error updating transaction %s: %w", txn.TransactionID, err)
	}
	return affectedOrNotFound(res, "transaction")
}

// DeleteTransaction removes the entries explicitly so the delete holds even without foreign_keys.
func (r *sqliteTxRepository) DeleteTransaction(ctx context.Context, transactionID string) error {
	if _, err := r.tx.ExecContext(ctx, `DELETE FROM journal_entries WHERE transaction_id = ?;`, transactionID); err != nil {
		return fmt.Errorf("error deleting journal entries of %s: %w", transactionID, err)
	}
	res, err := r.tx.ExecContext(ctx, `DELETE FROM transactions WHERE transaction_id = ?;`, transactionID)
	if err != nil {
		return fmt.Errorf("error deleting transaction %s: %w", transactionID, err)
	}
	return affectedOrNotFound(res, "transaction")
}

func (r *sqliteTxRepository) FindAccountsByIDs(ctx context.Context, accountIDs []string) (map[string]domain.Account, error) {
	return findAccountsByIDs(ctx, r.tx, accountIDs)
}

func (r *sqliteTxRepository) FindPeriodByID(ctx context.Context, periodID string) (*domain.Period, error) {
	return findPeriodByID(ctx, r.tx, periodID)
}

func (r *sqliteTxRepository) LockPeriodByID(ctx context.Context, periodID string) (*domain.Period, error) {
	return findPeriodByID(ctx, r.tx, periodID)
}

func (r *sqliteTxRepository) UpdatePeriodStatus(ctx context.Context, period domain.Period) error {
	return updatePeriodStatus(ctx, r.tx, period)
}

func (r *sqliteTxRepository) CountUnbalancedInPeriod(ctx context.Context, periodID string) (int, error) {
	return countUnbalancedInPeriod(ctx, r.tx, periodID)
}

func (r *sqliteTxRepository) FindCategoryRecord(ctx context.Context, link domain.CategoryLink) (*domain.CategoryRecord, error) {
	return findCategoryRecord(ctx, r.tx, link)
}
