package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/ledger_core/internal/apperrors"
	"github.com/SscSPs/ledger_core/internal/core/domain"
	portsrepo "github.com/SscSPs/ledger_core/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/ledger_core/internal/core/ports/services"
)

type accountService struct {
	BaseService
	accountRepo portsrepo.AccountRepositoryFacade
}

// NewAccountService creates the chart of accounts service.
func NewAccountService(repo portsrepo.AccountRepositoryFacade, options ...ServiceOption) portssvc.AccountSvcFacade {
	return &accountService{
		BaseService: newBaseService(options...),
		accountRepo: repo,
	}
}

var _ portssvc.AccountSvcFacade = (*accountService)(nil)

func (s *accountService) CreateAccount(ctx context.Context, account domain.Account) (*domain.Account, error) {
	if account.Number == "" {
		return nil, fmt.Errorf("%w: account number is required", apperrors.ErrValidation)
	}
	if account.Name == "" {
		return nil, fmt.Errorf("%w: account name is required", apperrors.ErrValidation)
	}
	if !account.AccountType.IsValid() {
		return nil, fmt.Errorf("%w: unknown account type %q", apperrors.ErrValidation, account.AccountType)
	}
	if account.Status == "" {
		account.Status = domain.AccountActive
	}
	if !account.Status.IsValid() {
		return nil, fmt.Errorf("%w: unknown account status %q", apperrors.ErrValidation, account.Status)
	}

	if account.ParentAccountID != nil {
		if _, err := s.accountRepo.FindAccountByID(ctx, *account.ParentAccountID); err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, fmt.Errorf("%w: parent account %s does not exist", apperrors.ErrValidation, *account.ParentAccountID)
			}
			return nil, s.boundaryError(ctx, err, "failed to create account")
		}
	}

	existing, err := s.accountRepo.FindAccountByNumber(ctx, account.Number)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, s.boundaryError(ctx, err, "failed to create account")
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: account number %s", apperrors.ErrDuplicate, account.Number)
	}

	now := s.Now()
	account.AccountID = s.NewID()
	account.CreatedAt = now
	account.LastUpdatedAt = now

	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		return nil, s.boundaryError(ctx, err, "failed to create account", slog.String("number", account.Number))
	}

	s.LogInfo(ctx, "Account created",
		slog.String("account_id", account.AccountID),
		slog.String("number", account.Number),
		slog.String("account_type", string(account.AccountType)))
	return &account, nil
}

func (s *accountService) GetAccount(ctx context.Context, accountID string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("account not found")
		}
		return nil, s.boundaryError(ctx, err, "failed to get account", slog.String("account_id", accountID))
	}
	return account, nil
}

func (s *accountService) ListAccounts(ctx context.Context, filter domain.AccountFilter) ([]domain.Account, error) {
	if filter.AccountType != nil && !filter.AccountType.IsValid() {
		return nil, fmt.Errorf("%w: unknown account type %q", apperrors.ErrValidation, *filter.AccountType)
	}
	if filter.Status != nil && !filter.Status.IsValid() {
		return nil, fmt.Errorf("%w: unknown account status %q", apperrors.ErrValidation, *filter.Status)
	}

	accounts, err := s.accountRepo.ListAccounts(ctx, filter)
	if err != nil {
		return nil, s.boundaryError(ctx, err, "failed to list accounts")
	}
	return accounts, nil
}

// UpdateAccount changes name, description or status. Archiving goes through ArchiveAccount.
func (s *accountService) UpdateAccount(ctx context.Context, accountID string, update domain.AccountUpdate) (*domain.Account, error) {
	if update.Name != nil && *update.Name == "" {
		return nil, fmt.Errorf("%w: account name cannot be empty", apperrors.ErrValidation)
	}
	if update.Status != nil {
		if !update.Status.IsValid() {
			return nil, fmt.Errorf("%w: unknown account status %q", apperrors.ErrValidation, *update.Status)
		}
		if *update.Status == domain.AccountArchived {
			return nil, fmt.Errorf("%w: use archive to retire an account", apperrors.ErrValidation)
		}
	}

	account, err := s.GetAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if account.Status == domain.AccountArchived {
		return nil, fmt.Errorf("%w: account %s is archived", apperrors.ErrConflict, accountID)
	}

	if update.Name != nil {
		account.Name = *update.Name
	}
	if update.Description != nil {
		account.Description = *update.Description
	}
	if update.Status != nil {
		account.Status = *update.Status
	}
	account.LastUpdatedAt = s.Now()

	if err := s.accountRepo.UpdateAccount(ctx, *account); err != nil {
		return nil, s.boundaryError(ctx, err, "failed to update account", slog.String("account_id", accountID))
	}
	return account, nil
}

// ArchiveAccount retires an account. It stays referenced by historical entries.
func (s *accountService) ArchiveAccount(ctx context.Context, accountID string) (*domain.Account, error) {
	account, err := s.GetAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if account.IsSystem {
		return nil, fmt.Errorf("%w: system account %s cannot be archived", apperrors.ErrConflict, account.Number)
	}
	if account.Status == domain.AccountArchived {
		return account, nil
	}

	account.Status = domain.AccountArchived
	account.LastUpdatedAt = s.Now()
	if err := s.accountRepo.UpdateAccount(ctx, *account); err != nil {
		return nil, s.boundaryError(ctx, err, "failed to archive account", slog.String("account_id", accountID))
	}

	s.LogInfo(ctx, "Account archived", slog.String("account_id", accountID))
	return account, nil
}
