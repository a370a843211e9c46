package services

import (
	portsrepo "github.com/SscSPs/ledger_core/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/ledger_core/internal/core/ports/services"
)

// NewServiceContainer wires every service to the repositories of one storage backend.
func NewServiceContainer(repos portsrepo.RepositoryProvider, options ...ServiceOption) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Transaction: NewTransactionService(repos.TransactionRepo, repos.CategoryRepo, repos.UnitOfWork, options...),
		Balance:     NewBalanceService(repos.TransactionRepo, repos.AccountRepo, repos.CategoryRepo, options...),
		Reporting:   NewReportingService(repos.TransactionRepo, options...),
		Account:     NewAccountService(repos.AccountRepo, options...),
		Period:      NewPeriodService(repos.PeriodRepo, repos.UnitOfWork, options...),
		Category:    NewCategoryService(repos.CategoryRepo, options...),
	}
}
