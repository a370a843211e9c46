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
	"github.com/SscSPs/ledger_core/internal/utils/accounting"
	"github.com/SscSPs/ledger_core/internal/utils/pagination"
)

const (
	msgTransactionInvalid  = "transaction is invalid"
	msgCannotBalance       = "cannot balance transaction"
	msgTransactionNotFound = "transaction not found"
)

type transactionService struct {
	BaseService
	txnRepo      portsrepo.TransactionRepositoryFacade
	categoryRepo portsrepo.CategoryReader
	uow          portsrepo.UnitOfWork
}

// NewTransactionService creates the transaction lifecycle service.
func NewTransactionService(
	txnRepo portsrepo.TransactionRepositoryFacade,
	categoryRepo portsrepo.CategoryReader,
	uow portsrepo.UnitOfWork,
	options ...ServiceOption,
) portssvc.TransactionSvcFacade {
	return &transactionService{
		BaseService:  newBaseService(options...),
		txnRepo:      txnRepo,
		categoryRepo: categoryRepo,
		uow:          uow,
	}
}

var _ portssvc.TransactionSvcFacade = (*transactionService)(nil)

// CreateTransaction validates the draft and, only if every rule passes, stores the
// transaction and its entries in one unit of work.
//
// Validation runs in two stages. Field and entry rules are checked first and all of
// their violations are returned together. Only when none fail are the period, account
// and category references resolved inside the unit of work, so a draft that breaks a
// structural rule never reports unknown or archived references in the same response.
func (s *transactionService) CreateTransaction(ctx context.Context, draft domain.TransactionDraft) (*domain.Transaction, error) {
	validation := accounting.ValidateJournalEntries(draft.Entries)
	errs := append(validateDraftFields(draft), validation.Errors...)
	if len(errs) > 0 {
		s.LogDebug(ctx, "Rejected transaction draft", slog.Int("error_count", len(errs)))
		return nil, apperrors.NewValidationError(msgTransactionInvalid, errs, validation.Warnings)
	}
	return s.persist(ctx, draft, validation.IsBalanced)
}

// CreatePendingTransaction stores a structurally valid transaction as unbalanced,
// whether or not its entries sum equal. It joins the reconciliation queue until balanced.
func (s *transactionService) CreatePendingTransaction(ctx context.Context, draft domain.TransactionDraft) (*domain.Transaction, error) {
	validation := accounting.ValidateEntryStructure(draft.Entries)
	errs := append(validateDraftFields(draft), validation.Errors...)
	if len(errs) > 0 {
		return nil, apperrors.NewValidationError(msgTransactionInvalid, errs, validation.Warnings)
	}
	return s.persist(ctx, draft, false)
}

func (s *transactionService) persist(ctx context.Context, draft domain.TransactionDraft, isBalanced bool) (*domain.Transaction, error) {
	now := s.Now()
	txn := domain.Transaction{
		TransactionID: s.NewID(),
		Type:          draft.Type,
		Description:   draft.Description,
		Amount:        draft.Amount,
		Date:          draft.Date.UTC(),
		PeriodID:      draft.PeriodID,
		Reference:     draft.Reference,
		Category:      draft.Category,
		IsBalanced:    isBalanced,
		Entries:       make([]domain.JournalEntry, len(draft.Entries)),
		AuditFields:   domain.AuditFields{CreatedAt: now, LastUpdatedAt: now},
	}
	accountIDs := make([]string, len(draft.Entries))
	for i, e := range draft.Entries {
		txn.Entries[i] = domain.JournalEntry{
			EntryID:       s.NewID(),
			TransactionID: txn.TransactionID,
			AccountID:     e.AccountID,
			Debit:         e.Debit,
			Credit:        e.Credit,
			Description:   e.Description,
			Position:      i,
		}
		accountIDs[i] = e.AccountID
	}

	var created *domain.Transaction
	err := s.uow.RunInTx(ctx, func(ctx context.Context, tx portsrepo.TxRepository) error {
		refErrs, err := s.checkReferences(ctx, tx, txn.PeriodID, accountIDs, txn.Category)
		if err != nil {
			return err
		}
		if len(refErrs) > 0 {
			return apperrors.NewValidationError(msgTransactionInvalid, refErrs, nil)
		}

		if err := tx.InsertTransaction(ctx, txn); err != nil {
			return err
		}
		created, err = tx.FindTransactionByID(ctx, txn.TransactionID)
		return err
	})
	if err != nil {
		return nil, s.boundaryError(ctx, err, "failed to create transaction", slog.String("transaction_id", txn.TransactionID))
	}

	s.LogInfo(ctx, "Transaction created",
		slog.String("transaction_id", created.TransactionID),
		slog.Bool("is_balanced", created.IsBalanced),
		slog.Int("entry_count", len(created.Entries)))
	return created, nil
}

// checkReferences resolves the references a transaction points at. Empty or nil inputs are skipped.
// Unresolvable references and closed periods come back as messages; only storage failures are errors.
func (s *transactionService) checkReferences(
	ctx context.Context,
	tx portsrepo.TxRepository,
	periodID string,
	accountIDs []string,
	category *domain.CategoryLink,
) ([]string, error) {
	var msgs []string

	if periodID != "" {
		period, err := tx.FindPeriodByID(ctx, periodID)
		switch {
		case err == nil:
			if period.IsClosed() {
				msgs = append(msgs, fmt.Sprintf("Period %s is closed", periodID))
			}
		case errors.Is(err, apperrors.ErrNotFound):
			msgs = append(msgs, fmt.Sprintf("Period %s does not exist", periodID))
		default:
			return nil, err
		}
	}

	if len(accountIDs) > 0 {
		accounts, err := tx.FindAccountsByIDs(ctx, accountIDs)
		if err != nil {
			return nil, err
		}
		reported := make(map[string]bool, len(accountIDs))
		for _, id := range accountIDs {
			if reported[id] {
				continue
			}
			reported[id] = true
			acc, ok := accounts[id]
			switch {
			case !ok:
				msgs = append(msgs, fmt.Sprintf("Account %s does not exist", id))
			case acc.Status == domain.AccountArchived:
				msgs = append(msgs, fmt.Sprintf("Account %s is archived", id))
			}
		}
	}

	if category != nil {
		if _, err := tx.FindCategoryRecord(ctx, *category); err != nil {
			if !errors.Is(err, apperrors.ErrNotFound) {
				return nil, err
			}
			msgs = append(msgs, fmt.Sprintf("Linked %s record %s does not exist", category.Kind, category.RecordID))
		}
	}

	return msgs, nil
}

// GetTransaction returns the transaction with its entries and any linked category record.
func (s *transactionService) GetTransaction(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	txn, err := s.txnRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError(msgTransactionNotFound)
		}
		return nil, s.boundaryError(ctx, err, "failed to get transaction", slog.String("transaction_id", transactionID))
	}

	if txn.Category != nil {
		rec, err := s.categoryRepo.FindCategoryRecord(ctx, *txn.Category)
		switch {
		case err == nil:
			txn.Linked = rec
		case errors.Is(err, apperrors.ErrNotFound):
			s.GetLogger(ctx).Warn("Linked category record missing",
				slog.String("transaction_id", transactionID),
				slog.String("record_id", txn.Category.RecordID))
		default:
			return nil, s.boundaryError(ctx, err, "failed to get transaction", slog.String("transaction_id", transactionID))
		}
	}
	return txn, nil
}

// ListTransactions returns one page of transactions, newest date first.
func (s *transactionService) ListTransactions(ctx context.Context, page, pageSize int, filter domain.TransactionFilter) (*domain.TransactionPage, error) {
	if filter.Type != nil && !filter.Type.IsValid() {
		return nil, fmt.Errorf("%w: unknown transaction type %q", apperrors.ErrValidation, *filter.Type)
	}
	if err := validateDateRange(filter.DateRange); err != nil {
		return nil, err
	}

	params := pagination.Normalize(page, pageSize)
	txns, total, err := s.txnRepo.ListTransactions(ctx, filter, params.Limit(), params.Offset())
	if err != nil {
		return nil, s.boundaryError(ctx, err, "failed to list transactions")
	}

	return &domain.TransactionPage{
		Transactions: txns,
		Total:        total,
		Page:         params.Page,
		PageSize:     params.PageSize,
		TotalPages:   pagination.TotalPages(total, params.PageSize),
	}, nil
}

// UpdateTransaction applies transaction-level changes to an unbalanced transaction.
// The guard and the write happen under one lock.
func (s *transactionService) UpdateTransaction(ctx context.Context, transactionID string, update domain.TransactionUpdate) (*domain.Transaction, error) {
	if errs := validateUpdateFields(update); len(errs) > 0 {
		return nil, apperrors.NewValidationError(msgTransactionInvalid, errs, nil)
	}

	var updated *domain.Transaction
	err := s.uow.RunInTx(ctx, func(ctx context.Context, tx portsrepo.TxRepository) error {
		txn, err := s.lockUnbalanced(ctx, tx, transactionID, "update")
		if err != nil {
			return err
		}
		if update.IsEmpty() {
			updated = txn
			return nil
		}

		var periodID string
		if update.PeriodID != nil {
			periodID = *update.PeriodID
		}
		refErrs, err := s.checkReferences(ctx, tx, periodID, nil, update.Category)
		if err != nil {
			return err
		}
		if len(refErrs) > 0 {
			return apperrors.NewValidationError(msgTransactionInvalid, refErrs, nil)
		}

		update.ApplyTo(txn)
		txn.Date = txn.Date.UTC()
		txn.LastUpdatedAt = s.Now()
		if err := tx.UpdateTransaction(ctx, *txn); err != nil {
			return err
		}
		updated, err = tx.FindTransactionByID(ctx, transactionID)
		return err
	})
	if err != nil {
		return nil, s.boundaryError(ctx, err, "failed to update transaction", slog.String("transaction_id", transactionID))
	}

	s.LogInfo(ctx, "Transaction updated", slog.String("transaction_id", transactionID))
	return updated, nil
}

// DeleteTransaction removes an unbalanced transaction together with its entries.
func (s *transactionService) DeleteTransaction(ctx context.Context, transactionID string) (bool, error) {
	err := s.uow.RunInTx(ctx, func(ctx context.Context, tx portsrepo.TxRepository) error {
		if _, err := s.lockUnbalanced(ctx, tx, transactionID, "delete"); err != nil {
			return err
		}
		return tx.DeleteTransaction(ctx, transactionID)
	})
	if err != nil {
		return false, s.boundaryError(ctx, err, "failed to delete transaction", slog.String("transaction_id", transactionID))
	}

	s.LogInfo(ctx, "Transaction deleted", slog.String("transaction_id", transactionID))
	return true, nil
}

// BalanceTransaction re-validates the stored entries and marks the transaction balanced.
// Balancing an already balanced transaction returns it unchanged.
func (s *transactionService) BalanceTransaction(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	var balanced *domain.Transaction
	err := s.uow.RunInTx(ctx, func(ctx context.Context, tx portsrepo.TxRepository) error {
		txn, err := s.lockExisting(ctx, tx, transactionID)
		if err != nil {
			return err
		}
		if txn.IsBalanced {
			balanced = txn
			return nil
		}

		validation := accounting.ValidateJournalEntries(txn.Drafts())
		if !validation.IsValid {
			return apperrors.NewValidationError(msgCannotBalance, validation.Errors, validation.Warnings)
		}

		txn.IsBalanced = true
		txn.LastUpdatedAt = s.Now()
		if err := tx.UpdateTransaction(ctx, *txn); err != nil {
			return err
		}
		balanced, err = tx.FindTransactionByID(ctx, transactionID)
		return err
	})
	if err != nil {
		return nil, s.boundaryError(ctx, err, "failed to balance transaction", slog.String("transaction_id", transactionID))
	}

	s.LogInfo(ctx, "Transaction balanced", slog.String("transaction_id", transactionID))
	return balanced, nil
}

// GetUnbalancedTransactions returns the reconciliation queue, newest first.
func (s *transactionService) GetUnbalancedTransactions(ctx context.Context) ([]domain.Transaction, error) {
	txns, err := s.txnRepo.ListUnbalancedTransactions(ctx)
	if err != nil {
		return nil, s.boundaryError(ctx, err, "failed to list unbalanced transactions")
	}
	return txns, nil
}

func (s *transactionService) lockExisting(ctx context.Context, tx portsrepo.TxRepository, transactionID string) (*domain.Transaction, error) {
	txn, err := tx.LockTransactionByID(ctx, transactionID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError(msgTransactionNotFound)
		}
		return nil, err
	}
	return txn, nil
}

func (s *transactionService) lockUnbalanced(ctx context.Context, tx portsrepo.TxRepository, transactionID, action string) (*domain.Transaction, error) {
	txn, err := s.lockExisting(ctx, tx, transactionID)
	if err != nil {
		return nil, err
	}
	if txn.IsBalanced {
		return nil, fmt.Errorf("cannot %s a balanced transaction: %w", action, apperrors.ErrTransactionBalanced)
	}
	return txn, nil
}

func validateDraftFields(draft domain.TransactionDraft) []string {
	var errs []string
	if !draft.Type.IsValid() {
		errs = append(errs, fmt.Sprintf("Unknown transaction type %q", draft.Type))
	}
	if draft.Description == "" {
		errs = append(errs, "Description is required")
	}
	if draft.Amount.IsNegative() {
		errs = append(errs, "Amount cannot be negative")
	}
	if draft.Date.IsZero() {
		errs = append(errs, "Date is required")
	}
	if draft.PeriodID == "" {
		errs = append(errs, "Period is required")
	}
	if draft.Category != nil && !draft.Category.Kind.IsValid() {
		errs = append(errs, fmt.Sprintf("Unknown category kind %q", draft.Category.Kind))
	}
	return errs
}

func validateUpdateFields(update domain.TransactionUpdate) []string {
	var errs []string
	if update.Type != nil && !update.Type.IsValid() {
		errs = append(errs, fmt.Sprintf("Unknown transaction type %q", *update.Type))
	}
	if update.Description != nil && *update.Description == "" {
		errs = append(errs, "Description cannot be empty")
	}
	if update.Amount != nil && update.Amount.IsNegative() {
		errs = append(errs, "Amount cannot be negative")
	}
	if update.Date != nil && update.Date.IsZero() {
		errs = append(errs, "Date cannot be empty")
	}
	if update.PeriodID != nil && *update.PeriodID == "" {
		errs = append(errs, "Period cannot be empty")
	}
	if update.Category != nil && !update.Category.Kind.IsValid() {
		errs = append(errs, fmt.Sprintf("Unknown category kind %q", update.Category.Kind))
	}
	if update.ClearReference && update.Reference != nil {
		errs = append(errs, "Reference cannot be both set and cleared")
	}
	if update.ClearCategory && update.Category != nil {
		errs = append(errs, "Category cannot be both set and cleared")
	}
	return errs
}

func validateDateRange(r domain.DateRange) error {
	if r.From != nil && r.To != nil && r.From.After(*r.To) {
		return fmt.Errorf("%w: date range start is after its end", apperrors.ErrValidation)
	}
	return nil
}
