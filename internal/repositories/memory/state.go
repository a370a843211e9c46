package memory

import (
	"fmt"
	"sort"

	"github.com/SscSPs/ledger_core/internal/apperrors"
	"github.com/SscSPs/ledger_core/internal/core/domain"
)

// state is one consistent snapshot of every table.
type state struct {
	accounts     map[string]domain.Account
	periods      map[string]domain.Period
	categories   map[string]domain.CategoryRecord
	transactions map[string]domain.Transaction
}

func newState() *state {
	return &state{
		accounts:     make(map[string]domain.Account),
		periods:      make(map[string]domain.Period),
		categories:   make(map[string]domain.CategoryRecord),
		transactions: make(map[string]domain.Transaction),
	}
}

// clone copies the maps and everything reachable through pointers so a unit of
// work can be discarded.
func (s *state) clone() *state {
	c := newState()
	for k, v := range s.accounts {
		c.accounts[k] = copyAccount(v)
	}
	for k, v := range s.periods {
		c.periods[k] = v
	}
	for k, v := range s.categories {
		c.categories[k] = copyCategoryRecord(v)
	}
	for k, v := range s.transactions {
		c.transactions[k] = copyTransaction(v)
	}
	return c
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

// copyTransaction returns t with no memory shared with the argument.
// Account and Linked are dropped; hydrate attaches fresh copies.
func copyTransaction(t domain.Transaction) domain.Transaction {
	t.Reference = clonePtr(t.Reference)
	t.Category = clonePtr(t.Category)
	t.Linked = nil
	if t.Entries != nil {
		entries := make([]domain.JournalEntry, len(t.Entries))
		for i, e := range t.Entries {
			e.Debit = clonePtr(e.Debit)
			e.Credit = clonePtr(e.Credit)
			e.Description = clonePtr(e.Description)
			e.Account = nil
			entries[i] = e
		}
		t.Entries = entries
	}
	return t
}

func copyAccount(a domain.Account) domain.Account {
	a.ParentAccountID = clonePtr(a.ParentAccountID)
	return a
}

func copyCategoryRecord(r domain.CategoryRecord) domain.CategoryRecord {
	r.Date = clonePtr(r.Date)
	r.SharesOutstanding = clonePtr(r.SharesOutstanding)
	r.ParValue = clonePtr(r.ParValue)
	return r
}

// hydrate returns a caller-owned copy with every entry's Account attached.
func (s *state) hydrate(t domain.Transaction) domain.Transaction {
	out := copyTransaction(t)
	for i := range out.Entries {
		if acc, ok := s.accounts[out.Entries[i].AccountID]; ok {
			a := copyAccount(acc)
			out.Entries[i].Account = &a
		}
	}
	return out
}

func (s *state) findTransaction(id string) (*domain.Transaction, error) {
	t, ok := s.transactions[id]
	if !ok {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("transaction %s not found", id))
	}
	out := s.hydrate(t)
	return &out, nil
}

func (s *state) insertTransaction(t domain.Transaction) error {
	if _, exists := s.transactions[t.TransactionID]; exists {
		return fmt.Errorf("%w: transaction %s", apperrors.ErrDuplicate, t.TransactionID)
	}
	for _, e := range t.Entries {
		if _, ok := s.accounts[e.AccountID]; !ok {
			return fmt.Errorf("journal entry %s references unknown account %s", e.EntryID, e.AccountID)
		}
	}
	s.transactions[t.TransactionID] = copyTransaction(t)
	return nil
}

func (s *state) updateTransaction(t domain.Transaction) error {
	existing, ok := s.transactions[t.TransactionID]
	if !ok {
		return apperrors.NewNotFoundError(fmt.Sprintf("transaction %s not found", t.TransactionID))
	}
	entries := existing.Entries
	existing = copyTransaction(t)
	existing.Entries = entries
	s.transactions[t.TransactionID] = existing
	return nil
}

func (s *state) deleteTransaction(id string) error {
	if _, ok := s.transactions[id]; !ok {
		return apperrors.NewNotFoundError(fmt.Sprintf("transaction %s not found", id))
	}
	delete(s.transactions, id)
	return nil
}

func (s *state) findAccountsByIDs(ids []string) map[string]domain.Account {
	out := make(map[string]domain.Account, len(ids))
	for _, id := range ids {
		if acc, ok := s.accounts[id]; ok {
			out[id] = copyAccount(acc)
		}
	}
	return out
}

func (s *state) findPeriod(id string) (*domain.Period, error) {
	p, ok := s.periods[id]
	if !ok {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("period %s not found", id))
	}
	return &p, nil
}

func (s *state) currentPeriod() (*domain.Period, error) {
	var current *domain.Period
	for _, p := range s.periods {
		if !p.IsCurrent {
			continue
		}
		if current == nil || p.StartDate.After(current.StartDate) {
			c := p
			current = &c
		}
	}
	if current == nil {
		return nil, apperrors.NewNotFoundError("no current period")
	}
	return current, nil
}

func (s *state) updatePeriodStatus(p domain.Period) error {
	existing, ok := s.periods[p.PeriodID]
	if !ok {
		return apperrors.NewNotFoundError(fmt.Sprintf("period %s not found", p.PeriodID))
	}
	existing.Status = p.Status
	existing.IsCurrent = p.IsCurrent
	existing.LastUpdatedAt = p.LastUpdatedAt
	s.periods[p.PeriodID] = existing
	return nil
}

func (s *state) countUnbalancedInPeriod(periodID string) int {
	n := 0
	for _, t := range s.transactions {
		if t.PeriodID == periodID && !t.IsBalanced {
			n++
		}
	}
	return n
}

func (s *state) findCategory(link domain.CategoryLink) (*domain.CategoryRecord, error) {
	r, ok := s.categories[link.RecordID]
	if !ok || r.Kind != link.Kind {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("%s record %s not found", link.Kind, link.RecordID))
	}
	r = copyCategoryRecord(r)
	return &r, nil
}

func matchesFilter(t domain.Transaction, f domain.TransactionFilter) bool {
	if f.Type != nil && t.Type != *f.Type {
		return false
	}
	if f.IsBalanced != nil && t.IsBalanced != *f.IsBalanced {
		return false
	}
	return f.DateRange.Contains(t.Date)
}

func (s *state) listTransactions(f domain.TransactionFilter) []domain.Transaction {
	out := make([]domain.Transaction, 0)
	for _, t := range s.transactions {
		if matchesFilter(t, f) {
			out = append(out, s.hydrate(t))
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.After(out[j].Date)
		}
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].TransactionID < out[j].TransactionID
	})
	return out
}
