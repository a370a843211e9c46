package sqlite

import (
	"database/sql"

	portsrepo "github.com/SscSPs/ledger_core/internal/core/ports/repositories"
)

// NewRepositoryProvider builds the repositories on an already migrated database.
func NewRepositoryProvider(db *sql.DB) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		TransactionRepo: newSQLiteTransactionRepository(db),
		AccountRepo:     newSQLiteAccountRepository(db),
		PeriodRepo:      newSQLitePeriodRepository(db),
		CategoryRepo:    newSQLiteCategoryRepository(db),
		UnitOfWork:      newSQLiteUnitOfWork(db),
	}
}
