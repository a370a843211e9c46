package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// Every storage backend builds one of these.
type RepositoryProvider struct {
	TransactionRepo TransactionRepositoryFacade
	AccountRepo     AccountRepositoryFacade
	PeriodRepo      PeriodRepositoryFacade
	CategoryRepo    CategoryRepositoryFacade
	UnitOfWork      UnitOfWork
}
