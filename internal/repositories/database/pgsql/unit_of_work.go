package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/ledger_core/internal/apperrors"
	"github.com/SscSPs/ledger_core/internal/core/domain"
	portsrepo "github.com/SscSPs/ledger_core/internal/core/ports/repositories"
	"github.com/SscSPs/ledger_core/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxUnitOfWork runs each unit inside one database transaction.
type PgxUnitOfWork struct {
	BaseRepository
}

func newPgxUnitOfWork(pool *pgxpool.Pool) *PgxUnitOfWork {
	return &PgxUnitOfWork{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.UnitOfWork = (*PgxUnitOfWork)(nil)

func (u *PgxUnitOfWork) RunInTx(ctx context.Context, fn func(ctx context.Context, tx portsrepo.TxRepository) error) error {
	tx, err := u.Begin(ctx)
	if err != nil {
		return err
	}
	// Will be ignored if transaction is committed successfully
	defer u.Rollback(ctx, tx)

	if err := fn(ctx, &pgxTxRepository{tx: tx}); err != nil {
		return err
	}
	return u.Commit(ctx, tx)
}

type pgxTxRepository struct {
	tx pgx.Tx
}

var _ portsrepo.TxRepository = (*pgxTxRepository)(nil)

// LockTransactionByID takes a row lock held until the unit of work ends.
func (r *pgxTxRepository) LockTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	return findTransaction(ctx, r.tx, transactionID, true)
}

func (r *pgxTxRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	return findTransaction(ctx, r.tx, transactionID, false)
}

func (r *pgxTxRepository) InsertTransaction(ctx context.Context, txn domain.Transaction) error {
	m := mapping.ToModelTransaction(txn)
	query := `
		INSERT INTO transactions (
			transaction_id, type, description, amount, transaction_date, period_id,
			reference, category_kind, category_record_id, is_balanced, created_at, last_updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	_, err := r.tx.Exec(ctx, query,
		m.TransactionID, m.Type, m.Description, m.Amount, m.Date, m.PeriodID,
		m.Reference, m.CategoryKind, m.CategoryID, m.IsBalanced, m.CreatedAt, m.LastUpdatedAt,
	)
	if err != nil {
		return duplicateOr(err, "transaction "+txn.TransactionID)
	}

	batch := &pgx.Batch{}
	entryQuery := `
		INSERT INTO journal_entries (entry_id, transaction_id, account_id, debit, credit, description, position)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	for _, e := range txn.Entries {
		me := mapping.ToModelJournalEntry(e)
		batch.Queue(entryQuery, me.EntryID, me.TransactionID, me.AccountID, me.Debit, me.Credit, me.Description, me.Position)
	}
	// Close surfaces the first failing insert
	if err := r.tx.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("error inserting journal entries for transaction %s: %w", txn.TransactionID, err)
	}
	return nil
}

func (r *pgxTxRepository) UpdateTransaction(ctx context.Context, txn domain.Transaction) error {
	m := mapping.ToModelTransaction(txn)
	query := `
		UPDATE transactions
		SET type = $1, description = $2, amount = $3, transaction_date = $4, period_id = $5,
		    reference = $6, category_kind = $7, category_record_id = $8, is_balanced = $9, last_updated_at = $10
		WHERE transaction_id = $11;
	`
	tag, err := r.tx.Exec(ctx, query,
		m.Type, m.Description, m.Amount, m.Date, m.PeriodID,
		m.Reference, m.CategoryKind, m.CategoryID, m.IsBalanced, m.LastUpdatedAt, m.TransactionID,
	)
	if err != nil {
		return fmt.Errorf("error updating transaction %s: %w", txn.TransactionID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("transaction not found")
	}
	return nil
}

// DeleteTransaction relies on ON DELETE CASCADE for the entries.
func (r *pgxTxRepository) DeleteTransaction(ctx context.Context, transactionID string) error {
	tag, err := r.tx.Exec(ctx, `DELETE FROM transactions WHERE transaction_id = $1;`, transactionID)
	if err != nil {
		return fmt.Errorf("error deleting transaction %s: %w", transactionID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("transaction not found")
	}
	return nil
}

func (r *pgxTxRepository) FindAccountsByIDs(ctx context.Context, accountIDs []string) (map[string]domain.Account, error) {
	return findAccountsByIDs(ctx, r.tx, accountIDs)
}

// FindPeriodByID takes a share lock so the period cannot close before the unit ends.
func (r *pgxTxRepository) FindPeriodByID(ctx context.Context, periodID string) (*domain.Period, error) {
	return findPeriodByID(ctx, r.tx, periodID, "FOR SHARE")
}

func (r *pgxTxRepository) LockPeriodByID(ctx context.Context, periodID string) (*domain.Period, error) {
	return findPeriodByID(ctx, r.tx, periodID, "FOR UPDATE")
}

func (r *pgxTxRepository) UpdatePeriodStatus(ctx context.Context, period domain.Period) error {
	return updatePeriodStatus(ctx, r.tx, period)
}

func (r *pgxTxRepository) CountUnbalancedInPeriod(ctx context.Context, periodID string) (int, error) {
	return countUnbalancedInPeriod(ctx, r.tx, periodID)
}

func (r *pgxTxRepository) FindCategoryRecord(ctx context.Context, link domain.CategoryLink) (*domain.CategoryRecord, error) {
	return findCategoryRecord(ctx, r.tx, link)
}
