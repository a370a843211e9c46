package pgsql

import (
	portsrepo "github.com/SscSPs/ledger_core/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		TransactionRepo: newPgxTransactionRepository(dbPool),
		AccountRepo:     newPgxAccountRepository(dbPool),
		PeriodRepo:      newPgxPeriodRepository(dbPool),
		CategoryRepo:    newPgxCategoryRepository(dbPool),
		UnitOfWork:      newPgxUnitOfWork(dbPool),
	}
}
