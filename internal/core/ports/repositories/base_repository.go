package repositories

import "context"

// UnitOfWork runs fn inside one storage transaction.
// The transaction commits when fn returns nil and rolls back otherwise,
// so nothing fn wrote is visible unless the whole unit succeeds.
type UnitOfWork interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context, tx TxRepository) error) error
}
