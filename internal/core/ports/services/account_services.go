package services

import (
	"context"

	"github.com/SscSPs/ledger_core/internal/core/domain"
)

type AccountReaderSvc interface {
	GetAccount(ctx context.Context, accountID string) (*domain.Account, error)
	ListAccounts(ctx context.Context, filter domain.AccountFilter) ([]domain.Account, error)
}

type AccountWriterSvc interface {
	// CreateAccount assigns an id and defaults the status to ACTIVE.
	CreateAccount(ctx context.Context, account domain.Account) (*domain.Account, error)
	// UpdateAccount never changes the account type.
	UpdateAccount(ctx context.Context, accountID string, update domain.AccountUpdate) (*domain.Account, error)
	// ArchiveAccount retires an account. System accounts cannot be archived.
	ArchiveAccount(ctx context.Context, accountID string) (*domain.Account, error)
}

// AccountSvcFacade combines all account service interfaces.
type AccountSvcFacade interface {
	AccountReaderSvc
	AccountWriterSvc
}
