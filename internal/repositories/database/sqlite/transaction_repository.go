package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"sort"

	"github.com/SscSPs/ledger_core/internal/core/domain"
	portsrepo "github.com/SscSPs/ledger_core/internal/core/ports/repositories"
	"github.com/SscSPs/ledger_core/internal/models"
	"github.com/SscSPs/ledger_core/internal/utils/mapping"
	"github.com/shopspring/decimal"
)

const transactionColumns = `t.transaction_id, t.type, t.description, t.amount, t.transaction_date, t.period_id,
	t.reference, t.category_kind, t.category_record_id, t.is_balanced, t.created_at, t.last_updated_at`

const entryColumns = `e.entry_id, e.transaction_id, e.account_id, e.debit, e.credit, e.description, e.position,
	a.account_id, a.number, a.name, a.account_type, a.status, a.parent_account_id, a.description, a.is_system,
	a.created_at, a.last_updated_at`

type SQLiteTransactionRepository struct {
	BaseRepository
}

func newSQLiteTransactionRepository(db *sql.DB) *SQLiteTransactionRepository {
	return &SQLiteTransactionRepository{BaseRepository: BaseRepository{DB: db}}
}

var _ portsrepo.TransactionRepositoryFacade = (*SQLiteTransactionRepository)(nil)

func scanTransaction(row scanner) (domain.Transaction, error) {
	var m models.Transaction
	err := row.Scan(&m.TransactionID, &m.Type, &m.Description, &m.Amount, &m.Date, &m.PeriodID,
		&m.Reference, &m.CategoryKind, &m.CategoryID, &m.IsBalanced, &m.CreatedAt, &m.LastUpdatedAt)
	if err != nil {
		return domain.Transaction{}, err
	}
	return mapping.ToDomainTransaction(m), nil
}

func scanEntry(row scanner) (domain.JournalEntry, error) {
	var m models.JournalEntry
	var a models.Account
	err := row.Scan(
		&m.EntryID, &m.TransactionID, &m.AccountID, &m.Debit, &m.Credit, &m.Description, &m.Position,
		&a.AccountID, &a.Number, &a.Name, &a.AccountType, &a.Status, &a.ParentAccountID, &a.Description, &a.IsSystem,
		&a.CreatedAt, &a.LastUpdatedAt,
	)
	if err != nil {
		return domain.JournalEntry{}, err
	}
	entry := mapping.ToDomainJournalEntry(m)
	account := mapping.ToDomainAccount(a)
	entry.Account = &account
	return entry, nil
}

func collectEntries(rows *sql.Rows) ([]domain.JournalEntry, error) {
	defer rows.Close()
	entries := []domain.JournalEntry{}
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning journal entry row: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating journal entry rows: %w", err)
	}
	return entries, nil
}

func collectTransactions(rows *sql.Rows) ([]domain.Transaction, error) {
	defer rows.Close()
	txns := []domain.Transaction{}
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning transaction row: %w", err)
		}
		txns = append(txns, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating transaction rows: %w", err)
	}
	return txns, nil
}

// attachEntries loads the entries of txns in one query and assigns them in position order.
func attachEntries(ctx context.Context, q querier, txns []domain.Transaction) error {
	if len(txns) == 0 {
		return nil
	}
	ids := make([]string, len(txns))
	index := make(map[string]int, len(txns))
	for i, t := range txns {
		ids[i] = t.TransactionID
		index[t.TransactionID] = i
	}

	in, args := inList(ids)
	query := `
		SELECT ` + entryColumns + `
		FROM journal_entries e
		JOIN accounts a ON a.account_id = e.account_id
		WHERE e.transaction_id IN ` + in + `
		ORDER BY e.transaction_id, e.position;
	`
	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("error querying journal entries: %w", err)
	}
	entries, err := collectEntries(rows)
	if err != nil {
		return err
	}
	for _, e := range entries {
		i := index[e.TransactionID]
		txns[i].Entries = append(txns[i].Entries, e)
	}
	return nil
}

func findTransaction(ctx context.Context, q querier, transactionID string) (*domain.Transaction, error) {
	row := q.QueryRowContext(ctx, `SELECT `+transactionColumns+` FROM transactions t WHERE t.transaction_id = ?;`, transactionID)
	txn, err := scanTransaction(row)
	if err != nil {
		return nil, notFoundOr(err, "transaction")
	}
	txns := []domain.Transaction{txn}
	if err := attachEntries(ctx, q, txns); err != nil {
		return nil, err
	}
	return &txns[0], nil
}

func (r *SQLiteTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	return findTransaction(ctx, r.DB, transactionID)
}

func transactionConditions(filter domain.TransactionFilter) conditions {
	var c conditions
	if filter.Type != nil {
		c.add("t.type = ?", string(*filter.Type))
	}
	if filter.IsBalanced != nil {
		c.add("t.is_balanced = ?", *filter.IsBalanced)
	}
	if filter.DateRange.From != nil {
		c.add("t.transaction_date >= ?", filter.DateRange.From.UTC())
	}
	if filter.DateRange.To != nil {
		c.add("t.transaction_date <= ?", filter.DateRange.To.UTC())
	}
	return c
}

func (r *SQLiteTransactionRepository) queryTransactions(ctx context.Context, query string, args ...any) ([]domain.Transaction, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying transactions: %w", err)
	}
	txns, err := collectTransactions(rows)
	if err != nil {
		return nil, err
	}
	if err := attachEntries(ctx, r.DB, txns); err != nil {
		return nil, err
	}
	return txns, nil
}

func (r *SQLiteTransactionRepository) ListTransactions(ctx context.Context, filter domain.TransactionFilter, limit, offset int) ([]domain.Transaction, int, error) {
	c := transactionConditions(filter)

	var total int
	if err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM transactions t`+c.where(), c.args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("error counting transactions: %w", err)
	}

	query := `SELECT ` + transactionColumns + ` FROM transactions t` + c.where() + `
		ORDER BY t.transaction_date DESC, t.created_at DESC, t.transaction_id
		LIMIT ? OFFSET ?;`
	txns, err := r.queryTransactions(ctx, query, append(c.args, limit, offset)...)
	if err != nil {
		return nil, 0, err
	}
	return txns, total, nil
}

func (r *SQLiteTransactionRepository) ListUnbalancedTransactions(ctx context.Context) ([]domain.Transaction, error) {
	return r.queryTransactions(ctx,
		`SELECT `+transactionColumns+` FROM transactions t WHERE NOT t.is_balanced ORDER BY t.created_at DESC, t.transaction_id;`)
}

func (r *SQLiteTransactionRepository) ListBalancedEntries(ctx context.Context, filter domain.EntryFilter) ([]domain.JournalEntry, error) {
	var c conditions
	c.addRaw("t.is_balanced")
	if filter.AccountID != nil {
		c.add("e.account_id = ?", *filter.AccountID)
	}
	if filter.DateRange.From != nil {
		c.add("t.transaction_date >= ?", filter.DateRange.From.UTC())
	}
	if filter.DateRange.To != nil {
		c.add("t.transaction_date <= ?", filter.DateRange.To.UTC())
	}

	query := `
		SELECT ` + entryColumns + `
		FROM journal_entries e
		JOIN transactions t ON t.transaction_id = e.transaction_id
		JOIN accounts a ON a.account_id = e.account_id` + c.where() + `
		ORDER BY t.transaction_date, t.created_at, e.transaction_id, e.position;
	`
	rows, err := r.DB.QueryContext(ctx, query, c.args...)
	if err != nil {
		return nil, fmt.Errorf("error querying balanced entries: %w", err)
	}
	return collectEntries(rows)
}

// SummarizeByType sums in Go: SQLite's SUM over TEXT columns would go through floating point.
func (r *SQLiteTransactionRepository) SummarizeByType(ctx context.Context, dateRange domain.DateRange) ([]domain.TypeSummary, error) {
	c := transactionConditions(domain.TransactionFilter{DateRange: dateRange})
	rows, err := r.DB.QueryContext(ctx, `SELECT t.type, t.amount FROM transactions t`+c.where()+`;`, c.args...)
	if err != nil {
		return nil, fmt.Errorf("error querying transaction summary: %w", err)
	}
	defer rows.Close()

	byType := make(map[string]*domain.TypeSummary)
	for rows.Next() {
		var (
			typ    string
			amount decimal.Decimal
		)
		if err := rows.Scan(&typ, &amount); err != nil {
			return nil, fmt.Errorf("error scanning summary row: %w", err)
		}
		s, ok := byType[typ]
		if !ok {
			s = &domain.TypeSummary{Type: domain.TransactionType(typ), TotalAmount: decimal.Zero}
			byType[typ] = s
		}
		s.Count++
		s.TotalAmount = s.TotalAmount.Add(amount)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating summary rows: %w", err)
	}

	summaries := make([]domain.TypeSummary, 0, len(byType))
	for _, s := range byType {
		summaries = append(summaries, *s)
	}
	sort.Slice(summaries, func(i, j int) bool {
		if summaries[i].Count != summaries[j].Count {
			return summaries[i].Count > summaries[j].Count
		}
		return summaries[i].Type < summaries[j].Type
	})
	return summaries, nil
}
