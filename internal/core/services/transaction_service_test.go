package services_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/SscSPs/ledger_core/internal/apperrors"
	"github.com/SscSPs/ledger_core/internal/core/domain"
	portssvc "github.com/SscSPs/ledger_core/internal/core/ports/services"
	"github.com/SscSPs/ledger_core/internal/core/services"
	"github.com/SscSPs/ledger_core/internal/repositories/memory"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

func dec(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func strPtr(s string) *string { return &s }

var saleDate = time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)

func saleDraft(debit, credit string) domain.TransactionDraft {
	return domain.TransactionDraft{
		Type:        domain.Sales,
		Description: "Invoice 1001",
		Amount:      decimal.RequireFromString("5000"),
		Date:        saleDate,
		PeriodID:    "2024-06",
		Entries: []domain.JournalEntryDraft{
			{AccountID: "cash", Debit: dec(debit)},
			{AccountID: "sales", Credit: dec(credit)},
		},
	}
}

// --- Lifecycle suite, backed by the in-memory store ---

type TransactionLifecycleTestSuite struct {
	suite.Suite
	ctx     context.Context
	store   *memory.Store
	service portssvc.TransactionSvcFacade
}

func (suite *TransactionLifecycleTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.store = memory.New()
	for _, acc := range []domain.Account{
		{AccountID: "cash", Number: "1000", Name: "Cash", AccountType: domain.Asset, Status: domain.AccountActive},
		{AccountID: "sales", Number: "4000", Name: "Sales", AccountType: domain.Revenue, Status: domain.AccountActive},
		{AccountID: "old", Number: "1999", Name: "Old Cash", AccountType: domain.Asset, Status: domain.AccountArchived},
	} {
		suite.Require().NoError(suite.store.SaveAccount(suite.ctx, acc))
	}
	suite.Require().NoError(suite.store.SavePeriod(suite.ctx, domain.Period{
		PeriodID:   "2024-06",
		Name:       "June 2024",
		PeriodType: domain.PeriodMonthly,
		StartDate:  time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		EndDate:    time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC),
	}))
	suite.service = services.NewTransactionService(suite.store, suite.store, suite.store, services.WithClock(fixedClock))
}

func (suite *TransactionLifecycleTestSuite) TestCreateTransaction_Balanced() {
	txn, err := suite.service.CreateTransaction(suite.ctx, saleDraft("5000.00", "5000.00"))

	suite.Require().NoError(err)
	suite.True(txn.IsBalanced)
	suite.NotEmpty(txn.TransactionID)
	suite.Equal(fixedNow, txn.CreatedAt)
	suite.Require().Len(txn.Entries, 2)
	suite.Equal("cash", txn.Entries[0].AccountID)
	suite.Equal(0, txn.Entries[0].Position)
	suite.Equal(1, txn.Entries[1].Position)
	suite.Require().NotNil(txn.Entries[1].Account)
	suite.Equal(domain.Revenue, txn.Entries[1].Account.AccountType)
}

func (suite *TransactionLifecycleTestSuite) TestCreateTransaction_UnbalancedStoresNothing() {
	txn, err := suite.service.CreateTransaction(suite.ctx, saleDraft("5000.00", "4000.00"))

	suite.Nil(txn)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Contains(err.Error(), "5000")
	suite.Contains(err.Error(), "4000")

	page, err := suite.service.ListTransactions(suite.ctx, 1, 10, domain.TransactionFilter{})
	suite.Require().NoError(err)
	suite.Equal(0, page.Total)
}

func (suite *TransactionLifecycleTestSuite) TestCreateTransaction_ReportsEveryViolation() {
	draft := saleDraft("5000", "5000")
	draft.Description = ""
	draft.Entries = []domain.JournalEntryDraft{
		{AccountID: "cash", Debit: dec("10")},
		{AccountID: "cash", Credit: dec("-10")},
	}

	_, err := suite.service.CreateTransaction(suite.ctx, draft)

	var vErr *apperrors.ValidationError
	suite.Require().True(errors.As(err, &vErr))
	suite.Contains(vErr.Errors, "Description is required")
	suite.Contains(vErr.Errors, "Duplicate account cash in transaction")
	suite.Contains(vErr.Errors, "Entry 2: credit amount must be positive")
}

func (suite *TransactionLifecycleTestSuite) TestCreateTransaction_UnknownAndArchivedAccounts() {
	draft := saleDraft("10", "10")
	draft.Entries[0].AccountID = "ghost"
	draft.Entries[1].AccountID = "old"

	_, err := suite.service.CreateTransaction(suite.ctx, draft)

	var vErr *apperrors.ValidationError
	suite.Require().True(errors.As(err, &vErr))
	suite.Equal([]string{"Account ghost does not exist", "Account old is archived"}, vErr.Errors)
}

func (suite *TransactionLifecycleTestSuite) TestCreateTransaction_UnknownPeriod() {
	draft := saleDraft("10", "10")
	draft.PeriodID = "1999-01"

	_, err := suite.service.CreateTransaction(suite.ctx, draft)

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Contains(err.Error(), "Period 1999-01 does not exist")
}

func (suite *TransactionLifecycleTestSuite) TestPendingTransaction_UpdateThenBalance() {
	pending, err := suite.service.CreatePendingTransaction(suite.ctx, saleDraft("5000", "4000"))
	suite.Require().NoError(err)
	suite.False(pending.IsBalanced)

	queue, err := suite.service.GetUnbalancedTransactions(suite.ctx)
	suite.Require().NoError(err)
	suite.Require().Len(queue, 1)
	suite.Equal(pending.TransactionID, queue[0].TransactionID)

	_, err = suite.service.BalanceTransaction(suite.ctx, pending.TransactionID)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Contains(err.Error(), "cannot balance transaction")

	updated, err := suite.service.UpdateTransaction(suite.ctx, pending.TransactionID, domain.TransactionUpdate{
		Description: strPtr("Invoice 1001 (corrected)"),
		Reference:   strPtr("INV-1001"),
	})
	suite.Require().NoError(err)
	suite.Equal("Invoice 1001 (corrected)", updated.Description)
	suite.Equal("INV-1001", *updated.Reference)
	suite.Len(updated.Entries, 2)
	suite.False(updated.IsBalanced)
}

func (suite *TransactionLifecycleTestSuite) TestUpdateTransaction_ClearsReferenceAndCategory() {
	suite.Require().NoError(suite.store.SaveCategoryRecord(suite.ctx, domain.CategoryRecord{
		RecordID: "r1", Kind: domain.CategoryRevenue, Label: "Consulting", Amount: decimal.NewFromInt(5000),
	}))
	draft := saleDraft("5000", "4000")
	draft.Reference = strPtr("INV-1001")
	draft.Category = &domain.CategoryLink{Kind: domain.CategoryRevenue, RecordID: "r1"}
	pending, err := suite.service.CreatePendingTransaction(suite.ctx, draft)
	suite.Require().NoError(err)
	suite.Require().NotNil(pending.Reference)
	suite.Require().NotNil(pending.Category)

	_, err = suite.service.UpdateTransaction(suite.ctx, pending.TransactionID, domain.TransactionUpdate{
		Reference:      strPtr("INV-1002"),
		ClearReference: true,
	})
	var vErr *apperrors.ValidationError
	suite.Require().True(errors.As(err, &vErr))
	suite.Equal([]string{"Reference cannot be both set and cleared"}, vErr.Errors)

	updated, err := suite.service.UpdateTransaction(suite.ctx, pending.TransactionID, domain.TransactionUpdate{
		ClearReference: true,
		ClearCategory:  true,
	})
	suite.Require().NoError(err)
	suite.Nil(updated.Reference)
	suite.Nil(updated.Category)

	got, err := suite.service.GetTransaction(suite.ctx, pending.TransactionID)
	suite.Require().NoError(err)
	suite.Nil(got.Reference)
	suite.Nil(got.Category)
	suite.Nil(got.Linked)
}

func (suite *TransactionLifecycleTestSuite) TestCreateTransaction_ReferencesCheckedAfterFieldRules() {
	draft := saleDraft("10", "10")
	draft.Description = ""
	draft.Entries[0].AccountID = "ghost"

	_, err := suite.service.CreateTransaction(suite.ctx, draft)

	var vErr *apperrors.ValidationError
	suite.Require().True(errors.As(err, &vErr))
	suite.Equal([]string{"Description is required"}, vErr.Errors)

	draft.Description = "Invoice 1001"
	_, err = suite.service.CreateTransaction(suite.ctx, draft)

	suite.Require().True(errors.As(err, &vErr))
	suite.Equal([]string{"Account ghost does not exist"}, vErr.Errors)
}

func (suite *TransactionLifecycleTestSuite) TestBalancedTransactionIsImmutable() {
	pending, err := suite.service.CreatePendingTransaction(suite.ctx, saleDraft("250.10", "250.10"))
	suite.Require().NoError(err)

	balanced, err := suite.service.BalanceTransaction(suite.ctx, pending.TransactionID)
	suite.Require().NoError(err)
	suite.True(balanced.IsBalanced)

	again, err := suite.service.BalanceTransaction(suite.ctx, pending.TransactionID)
	suite.Require().NoError(err)
	suite.True(again.IsBalanced)

	_, err = suite.service.UpdateTransaction(suite.ctx, pending.TransactionID, domain.TransactionUpdate{Description: strPtr("changed")})
	suite.ErrorIs(err, apperrors.ErrTransactionBalanced)

	deleted, err := suite.service.DeleteTransaction(suite.ctx, pending.TransactionID)
	suite.False(deleted)
	suite.ErrorIs(err, apperrors.ErrTransactionBalanced)

	stored, err := suite.service.GetTransaction(suite.ctx, pending.TransactionID)
	suite.Require().NoError(err)
	suite.Equal("Invoice 1001", stored.Description)

	queue, err := suite.service.GetUnbalancedTransactions(suite.ctx)
	suite.Require().NoError(err)
	suite.Empty(queue)
}

func (suite *TransactionLifecycleTestSuite) TestDeleteTransaction_RemovesEntries() {
	pending, err := suite.service.CreatePendingTransaction(suite.ctx, saleDraft("1", "2"))
	suite.Require().NoError(err)

	deleted, err := suite.service.DeleteTransaction(suite.ctx, pending.TransactionID)
	suite.Require().NoError(err)
	suite.True(deleted)

	_, err = suite.service.GetTransaction(suite.ctx, pending.TransactionID)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	entries, err := suite.store.ListBalancedEntries(suite.ctx, domain.EntryFilter{})
	suite.Require().NoError(err)
	suite.Empty(entries)
}

func (suite *TransactionLifecycleTestSuite) TestUnknownTransaction() {
	_, err := suite.service.UpdateTransaction(suite.ctx, "missing", domain.TransactionUpdate{Description: strPtr("x")})
	suite.ErrorIs(err, apperrors.ErrNotFound)

	_, err = suite.service.DeleteTransaction(suite.ctx, "missing")
	suite.ErrorIs(err, apperrors.ErrNotFound)

	_, err = suite.service.BalanceTransaction(suite.ctx, "missing")
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *TransactionLifecycleTestSuite) TestConcurrentBalanceAndDelete() {
	pending, err := suite.service.CreatePendingTransaction(suite.ctx, saleDraft("75", "75"))
	suite.Require().NoError(err)

	var wg sync.WaitGroup
	var balanceErr, deleteErr error
	wg.Add(2)
	go func() {
		defer wg.Done()
		_, balanceErr = suite.service.BalanceTransaction(suite.ctx, pending.TransactionID)
	}()
	go func() {
		defer wg.Done()
		_, deleteErr = suite.service.DeleteTransaction(suite.ctx, pending.TransactionID)
	}()
	wg.Wait()

	if balanceErr == nil {
		suite.ErrorIs(deleteErr, apperrors.ErrTransactionBalanced)
		stored, err := suite.service.GetTransaction(suite.ctx, pending.TransactionID)
		suite.Require().NoError(err)
		suite.True(stored.IsBalanced)
	} else {
		suite.ErrorIs(balanceErr, apperrors.ErrNotFound)
		suite.NoError(deleteErr)
	}
}

func (suite *TransactionLifecycleTestSuite) TestListTransactions_FiltersAndPages() {
	for i := 0; i < 3; i++ {
		_, err := suite.service.CreateTransaction(suite.ctx, saleDraft("10", "10"))
		suite.Require().NoError(err)
	}
	_, err := suite.service.CreatePendingTransaction(suite.ctx, saleDraft("10", "1"))
	suite.Require().NoError(err)

	balanced := true
	page, err := suite.service.ListTransactions(suite.ctx, 2, 2, domain.TransactionFilter{IsBalanced: &balanced})
	suite.Require().NoError(err)
	suite.Equal(3, page.Total)
	suite.Equal(2, page.TotalPages)
	suite.Len(page.Transactions, 1)

	bad := domain.TransactionType("REFUNDS")
	_, err = suite.service.ListTransactions(suite.ctx, 1, 10, domain.TransactionFilter{Type: &bad})
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func TestTransactionLifecycleTestSuite(t *testing.T) {
	suite.Run(t, new(TransactionLifecycleTestSuite))
}

// --- Mock-backed suite for storage failures ---

type TransactionServiceTestSuite struct {
	suite.Suite
	ctx          context.Context
	txnRepo      *MockTransactionRepository
	categoryRepo *MockCategoryRepository
	tx           *MockTxRepository
	service      portssvc.TransactionSvcFacade
}

func (suite *TransactionServiceTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.txnRepo = new(MockTransactionRepository)
	suite.categoryRepo = new(MockCategoryRepository)
	suite.tx = new(MockTxRepository)
	suite.service = services.NewTransactionService(suite.txnRepo, suite.categoryRepo, &MockUnitOfWork{Tx: suite.tx},
		services.WithClock(fixedClock),
		services.WithIDGenerator(func() string { return "id-1" }))
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_StorageFailureIsInternal() {
	suite.tx.On("FindPeriodByID", suite.ctx, "2024-06").Return(&domain.Period{PeriodID: "2024-06"}, nil).Once()
	suite.tx.On("FindAccountsByIDs", suite.ctx, []string{"cash", "sales"}).Return(map[string]domain.Account{
		"cash":  {AccountID: "cash", Status: domain.AccountActive},
		"sales": {AccountID: "sales", Status: domain.AccountActive},
	}, nil).Once()
	suite.tx.On("InsertTransaction", suite.ctx, mock.AnythingOfType("domain.Transaction")).
		Return(errors.New("connection reset by peer")).Once()

	txn, err := suite.service.CreateTransaction(suite.ctx, saleDraft("5000", "5000"))

	suite.Nil(txn)
	suite.ErrorIs(err, apperrors.ErrInternal)
	suite.NotContains(err.Error(), "connection reset")
	suite.tx.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_InvalidDraftSkipsStorage() {
	_, err := suite.service.CreateTransaction(suite.ctx, saleDraft("5000", "4000"))

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.tx.AssertNotCalled(suite.T(), "InsertTransaction", mock.Anything, mock.Anything)
	suite.tx.AssertNotCalled(suite.T(), "FindAccountsByIDs", mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_InsertedShape() {
	suite.tx.On("FindPeriodByID", suite.ctx, "2024-06").Return(&domain.Period{PeriodID: "2024-06"}, nil).Once()
	suite.tx.On("FindAccountsByIDs", suite.ctx, []string{"cash", "sales"}).Return(map[string]domain.Account{
		"cash":  {AccountID: "cash", Status: domain.AccountActive},
		"sales": {AccountID: "sales", Status: domain.AccountInactive},
	}, nil).Once()
	suite.tx.On("InsertTransaction", suite.ctx, mock.MatchedBy(func(txn domain.Transaction) bool {
		return txn.TransactionID == "id-1" &&
			txn.IsBalanced &&
			txn.CreatedAt.Equal(fixedNow) &&
			len(txn.Entries) == 2 &&
			txn.Entries[1].Position == 1 &&
			txn.Entries[1].TransactionID == "id-1"
	})).Return(nil).Once()
	suite.tx.On("FindTransactionByID", suite.ctx, "id-1").Return(&domain.Transaction{TransactionID: "id-1", IsBalanced: true}, nil).Once()

	txn, err := suite.service.CreateTransaction(suite.ctx, saleDraft("5000", "5000"))

	suite.Require().NoError(err)
	suite.Equal("id-1", txn.TransactionID)
	suite.tx.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestGetTransaction_ResolvesLinkedRecord() {
	link := domain.CategoryLink{Kind: domain.CategoryRevenue, RecordID: "rev-1"}
	suite.txnRepo.On("FindTransactionByID", suite.ctx, "t1").Return(&domain.Transaction{TransactionID: "t1", Category: &link}, nil).Once()
	suite.categoryRepo.On("FindCategoryRecord", suite.ctx, link).Return(&domain.CategoryRecord{RecordID: "rev-1", Label: "Consulting"}, nil).Once()

	txn, err := suite.service.GetTransaction(suite.ctx, "t1")

	suite.Require().NoError(err)
	suite.Require().NotNil(txn.Linked)
	suite.Equal("Consulting", txn.Linked.Label)
}

func (suite *TransactionServiceTestSuite) TestGetTransaction_MissingLinkedRecordIsTolerated() {
	link := domain.CategoryLink{Kind: domain.CategoryAsset, RecordID: "gone"}
	suite.txnRepo.On("FindTransactionByID", suite.ctx, "t1").Return(&domain.Transaction{TransactionID: "t1", Category: &link}, nil).Once()
	suite.categoryRepo.On("FindCategoryRecord", suite.ctx, link).Return(nil, apperrors.NewNotFoundError("gone")).Once()

	txn, err := suite.service.GetTransaction(suite.ctx, "t1")

	suite.Require().NoError(err)
	suite.Nil(txn.Linked)
}

func (suite *TransactionServiceTestSuite) TestListTransactions_ClampsPaging() {
	suite.txnRepo.On("ListTransactions", suite.ctx, domain.TransactionFilter{}, 100, 0).
		Return([]domain.Transaction{}, 250, nil).Once()

	page, err := suite.service.ListTransactions(suite.ctx, 0, 500, domain.TransactionFilter{})

	suite.Require().NoError(err)
	suite.Equal(1, page.Page)
	suite.Equal(100, page.PageSize)
	suite.Equal(3, page.TotalPages)
}

func (suite *TransactionServiceTestSuite) TestDeleteTransaction_LockFailureIsInternal() {
	suite.tx.On("LockTransactionByID", suite.ctx, "t1").Return(nil, errors.New("deadlock detected")).Once()

	deleted, err := suite.service.DeleteTransaction(suite.ctx, "t1")

	suite.False(deleted)
	suite.ErrorIs(err, apperrors.ErrInternal)
}

func (suite *TransactionServiceTestSuite) TestUpdateTransaction_UnchangedPeriodNotRechecked() {
	suite.tx.On("LockTransactionByID", suite.ctx, "t1").Return(&domain.Transaction{TransactionID: "t1", PeriodID: "2024-06"}, nil).Once()
	suite.tx.On("UpdateTransaction", suite.ctx, mock.MatchedBy(func(txn domain.Transaction) bool {
		return txn.Description == "new" && txn.LastUpdatedAt.Equal(fixedNow)
	})).Return(nil).Once()
	suite.tx.On("FindTransactionByID", suite.ctx, "t1").Return(&domain.Transaction{TransactionID: "t1", Description: "new"}, nil).Once()

	txn, err := suite.service.UpdateTransaction(suite.ctx, "t1", domain.TransactionUpdate{Description: strPtr("new")})

	suite.Require().NoError(err)
	suite.Equal("new", txn.Description)
	suite.tx.AssertNotCalled(suite.T(), "FindPeriodByID", mock.Anything, mock.Anything)
}

func TestTransactionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TransactionServiceTestSuite))
}
