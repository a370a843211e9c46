package memory

import (
	"context"

	"github.com/SscSPs/ledger_core/internal/core/domain"
	portsrepo "github.com/SscSPs/ledger_core/internal/core/ports/repositories"
)

// txRepo works on the private snapshot of one RunInTx call.
// The store's write lock is held for its whole life, so no extra locking is needed.
type txRepo struct {
	data *state
}

var _ portsrepo.TxRepository = (*txRepo)(nil)

func (r *txRepo) LockTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	return r.data.findTransaction(transactionID)
}

func (r *txRepo) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	return r.data.findTransaction(transactionID)
}

func (r *txRepo) InsertTransaction(ctx context.Context, txn domain.Transaction) error {
	return r.data.insertTransaction(txn)
}

func (r *txRepo) UpdateTransaction(ctx context.Context, txn domain.Transaction) error {
	return r.data.updateTransaction(txn)
}

func (r *txRepo) DeleteTransaction(ctx context.Context, transactionID string) error {
	return r.data.deleteTransaction(transactionID)
}

func (r *txRepo) FindAccountsByIDs(ctx context.Context, accountIDs []string) (map[string]domain.Account, error) {
	return r.data.findAccountsByIDs(accountIDs), nil
}

func (r *txRepo) FindPeriodByID(ctx context.Context, periodID string) (*domain.Period, error) {
	return r.data.findPeriod(periodID)
}

func (r *txRepo) LockPeriodByID(ctx context.Context, periodID string) (*domain.Period, error) {
	return r.data.findPeriod(periodID)
}

func (r *txRepo) UpdatePeriodStatus(ctx context.Context, period domain.Period) error {
	return r.data.updatePeriodStatus(period)
}

func (r *txRepo) CountUnbalancedInPeriod(ctx context.Context, periodID string) (int, error) {
	return r.data.countUnbalancedInPeriod(periodID), nil
}

func (r *txRepo) FindCategoryRecord(ctx context.Context, link domain.CategoryLink) (*domain.CategoryRecord, error) {
	return r.data.findCategory(link)
}
