// Package memory is a process-local storage backend. It keeps every table in maps
// behind one lock and gives units of work copy-on-write isolation.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/SscSPs/ledger_core/internal/apperrors"
	"github.com/SscSPs/ledger_core/internal/core/domain"
	portsrepo "github.com/SscSPs/ledger_core/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
)

// Store implements every repository port in memory.
type Store struct {
	mu      sync.RWMutex
	writeMu sync.Mutex
	data    *state
}

// New creates an empty Store.
func New() *Store {
	return &Store{data: newState()}
}

// NewRepositoryProvider exposes the store through the repository ports.
func NewRepositoryProvider(s *Store) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		TransactionRepo: s,
		AccountRepo:     s,
		PeriodRepo:      s,
		CategoryRepo:    s,
		UnitOfWork:      s,
	}
}

var (
	_ portsrepo.TransactionRepositoryFacade = (*Store)(nil)
	_ portsrepo.AccountRepositoryFacade     = (*Store)(nil)
	_ portsrepo.PeriodRepositoryFacade      = (*Store)(nil)
	_ portsrepo.CategoryRepositoryFacade    = (*Store)(nil)
	_ portsrepo.UnitOfWork                  = (*Store)(nil)
)

// RunInTx serializes writers. fn works on a private copy that replaces the
// shared state only when fn succeeds.
func (s *Store) RunInTx(ctx context.Context, fn func(ctx context.Context, tx portsrepo.TxRepository) error) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.RLock()
	working := s.data.clone()
	s.mu.RUnlock()

	if err := fn(ctx, &txRepo{data: working}); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	s.data = working
	s.mu.Unlock()
	return nil
}

// mutate applies a single-table write atomically.
func (s *Store) mutate(fn func(*state) error) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.data)
}

func (s *Store) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data.findTransaction(transactionID)
}

func (s *Store) ListTransactions(ctx context.Context, filter domain.TransactionFilter, limit, offset int) ([]domain.Transaction, int, error) {
	s.mu.RLock()
	all := s.data.listTransactions(filter)
	s.mu.RUnlock()

	total := len(all)
	if offset >= total {
		return []domain.Transaction{}, total, nil
	}
	end := offset + limit
	if end > total {
		end = total
	}
	return all[offset:end], total, nil
}

func (s *Store) ListUnbalancedTransactions(ctx context.Context) ([]domain.Transaction, error) {
	unbalanced := false
	s.mu.RLock()
	out := s.data.listTransactions(domain.TransactionFilter{IsBalanced: &unbalanced})
	s.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (s *Store) ListBalancedEntries(ctx context.Context, filter domain.EntryFilter) ([]domain.JournalEntry, error) {
	balanced := true
	s.mu.RLock()
	txns := s.data.listTransactions(domain.TransactionFilter{IsBalanced: &balanced, DateRange: filter.DateRange})
	s.mu.RUnlock()

	// oldest first
	entries := make([]domain.JournalEntry, 0)
	for i := len(txns) - 1; i >= 0; i-- {
		for _, e := range txns[i].Entries {
			if filter.AccountID == nil || e.AccountID == *filter.AccountID {
				entries = append(entries, e)
			}
		}
	}
	return entries, nil
}

func (s *Store) SummarizeByType(ctx context.Context, dateRange domain.DateRange) ([]domain.TypeSummary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	byType := make(map[domain.TransactionType]*domain.TypeSummary)
	for _, t := range s.data.transactions {
		if !dateRange.Contains(t.Date) {
			continue
		}
		sum, ok := byType[t.Type]
		if !ok {
			sum = &domain.TypeSummary{Type: t.Type, TotalAmount: decimal.Zero}
			byType[t.Type] = sum
		}
		sum.Count++
		sum.TotalAmount = sum.TotalAmount.Add(t.Amount)
	}

	out := make([]domain.TypeSummary, 0, len(byType))
	for _, sum := range byType {
		out = append(out, *sum)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Type < out[j].Type
	})
	return out, nil
}

func (s *Store) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	acc, ok := s.data.accounts[accountID]
	if !ok {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("account %s not found", accountID))
	}
	acc = copyAccount(acc)
	return &acc, nil
}

func (s *Store) FindAccountByNumber(ctx context.Context, number string) (*domain.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, acc := range s.data.accounts {
		if acc.Number == number {
			a := copyAccount(acc)
			return &a, nil
		}
	}
	return nil, apperrors.NewNotFoundError(fmt.Sprintf("account number %s not found", number))
}

func (s *Store) ListAccounts(ctx context.Context, filter domain.AccountFilter) ([]domain.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Account, 0, len(s.data.accounts))
	for _, acc := range s.data.accounts {
		if filter.AccountType != nil && acc.AccountType != *filter.AccountType {
			continue
		}
		if filter.Status != nil && acc.Status != *filter.Status {
			continue
		}
		out = append(out, copyAccount(acc))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Number < out[j].Number })
	return out, nil
}

func (s *Store) SaveAccount(ctx context.Context, account domain.Account) error {
	return s.mutate(func(st *state) error {
		if _, exists := st.accounts[account.AccountID]; exists {
			return fmt.Errorf("%w: account %s", apperrors.ErrDuplicate, account.AccountID)
		}
		for _, acc := range st.accounts {
			if acc.Number == account.Number {
				return fmt.Errorf("%w: account number %s", apperrors.ErrDuplicate, account.Number)
			}
		}
		st.accounts[account.AccountID] = copyAccount(account)
		return nil
	})
}

func (s *Store) UpdateAccount(ctx context.Context, account domain.Account) error {
	return s.mutate(func(st *state) error {
		existing, ok := st.accounts[account.AccountID]
		if !ok {
			return apperrors.NewNotFoundError(fmt.Sprintf("account %s not found", account.AccountID))
		}
		// type, number and creation time never change
		account.AccountType = existing.AccountType
		account.Number = existing.Number
		account.CreatedAt = existing.CreatedAt
		st.accounts[account.AccountID] = copyAccount(account)
		return nil
	})
}

func (s *Store) FindPeriodByID(ctx context.Context, periodID string) (*domain.Period, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data.findPeriod(periodID)
}

func (s *Store) ListPeriods(ctx context.Context) ([]domain.Period, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Period, 0, len(s.data.periods))
	for _, p := range s.data.periods {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartDate.After(out[j].StartDate) })
	return out, nil
}

func (s *Store) FindCurrentPeriod(ctx context.Context) (*domain.Period, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data.currentPeriod()
}

func (s *Store) SavePeriod(ctx context.Context, period domain.Period) error {
	return s.mutate(func(st *state) error {
		if _, exists := st.periods[period.PeriodID]; exists {
			return fmt.Errorf("%w: period %s", apperrors.ErrDuplicate, period.PeriodID)
		}
		st.periods[period.PeriodID] = period
		return nil
	})
}

func (s *Store) FindCategoryRecord(ctx context.Context, link domain.CategoryLink) (*domain.CategoryRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data.findCategory(link)
}

func (s *Store) ListCategoryRecords(ctx context.Context, kind *domain.CategoryKind) ([]domain.CategoryRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.CategoryRecord, 0, len(s.data.categories))
	for _, r := range s.data.categories {
		if kind == nil || r.Kind == *kind {
			out = append(out, copyCategoryRecord(r))
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].RecordID < out[j].RecordID
	})
	return out, nil
}

func (s *Store) SaveCategoryRecord(ctx context.Context, record domain.CategoryRecord) error {
	return s.mutate(func(st *state) error {
		if _, exists := st.categories[record.RecordID]; exists {
			return fmt.Errorf("%w: category record %s", apperrors.ErrDuplicate, record.RecordID)
		}
		st.categories[record.RecordID] = copyCategoryRecord(record)
		return nil
	})
}
