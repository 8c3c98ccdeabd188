package postgres

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/iho/gobalance/internal/domain"
	"github.com/iho/gobalance/internal/infrastructure/metrics"
	"github.com/iho/gobalance/internal/usecase"
)

// BalanceRepository implements usecase.BalanceRepository over the
// account_balances table. Accounts and sectors on the fetched rows are
// resolved against the preloaded reference data.
type BalanceRepository struct {
	pool    *pgxpool.Pool
	refData usecase.ReferenceData
	retrier *Retrier
	metrics *metrics.Metrics
}

// NewBalanceRepository creates a new BalanceRepository.
func NewBalanceRepository(pool *pgxpool.Pool, refData usecase.ReferenceData, m *metrics.Metrics) *BalanceRepository {
	return &BalanceRepository{
		pool:    pool,
		refData: refData,
		retrier: NewRetrier(),
		metrics: m,
	}
}

// GetPostingEntries returns the posting-level balance rows scoped by the
// query's ledgers, dates and account range.
func (r *BalanceRepository) GetPostingEntries(ctx context.Context, query domain.TrialBalanceQuery) ([]*domain.TrialBalanceEntry, error) {
	sql := `
		SELECT l.id, l.number, l.name,
		       c.id, c.code, c.name,
		       b.account_number,
		       b.sector_code,
		       COALESCE(b.subledger_account_id, 0),
		       b.initial_balance, b.debit, b.credit, b.current_balance,
		       b.last_change_date
		FROM account_balances b
		JOIN ledgers l ON l.id = b.ledger_id
		JOIN currencies c ON c.id = b.currency_id
		WHERE b.balance_date >= $1 AND b.balance_date <= $2
	`
	args := []any{query.InitialPeriod.FromDate, query.InitialPeriod.ToDate}

	if len(query.Ledgers) > 0 {
		args = append(args, query.Ledgers)
		sql += ` AND l.id = ANY($` + strconv.Itoa(len(args)) + `)`
	}
	if query.FromAccount != "" {
		args = append(args, query.FromAccount)
		sql += ` AND b.account_number >= $` + strconv.Itoa(len(args))
	}
	if query.ToAccount != "" {
		args = append(args, query.ToAccount)
		sql += ` AND b.account_number <= $` + strconv.Itoa(len(args))
	}

	sql += ` ORDER BY l.number, c.code, b.account_number, b.sector_code`

	var entries []*domain.TrialBalanceEntry
	err := r.retrier.Retry(ctx, func() error {
		start := time.Now()

		rows, err := r.pool.Query(ctx, sql, args...)
		if err != nil {
			r.countError("select")
			return err
		}
		defer rows.Close()

		entries = entries[:0]
		for rows.Next() {
			entry, err := r.scanPostingRow(rows)
			if err != nil {
				return err
			}
			entries = append(entries, entry)
		}
		if err := rows.Err(); err != nil {
			r.countError("select")
			return err
		}

		r.observeQuery("select", "account_balances", start)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return entries, nil
}

type pgxRow interface {
	Scan(dest ...any) error
}

func (r *BalanceRepository) scanPostingRow(row pgxRow) (*domain.TrialBalanceEntry, error) {
	entry := domain.NewPostingEntry()

	var (
		accountNumber, sectorCode                     string
		initialBalance, debit, credit, currentBalance pgtype.Numeric
	)
	err := row.Scan(
		&entry.Ledger.ID, &entry.Ledger.Number, &entry.Ledger.Name,
		&entry.Currency.ID, &entry.Currency.Code, &entry.Currency.Name,
		&accountNumber,
		&sectorCode,
		&entry.SubledgerAccountID,
		&initialBalance, &debit, &credit, &currentBalance,
		&entry.LastChangeDate,
	)
	if err != nil {
		return nil, err
	}

	entry.InitialBalance = numericToDecimal(initialBalance)
	entry.Debit = numericToDecimal(debit)
	entry.Credit = numericToDecimal(credit)
	entry.CurrentBalance = numericToDecimal(currentBalance)

	account, ok := r.refData.Chart.Account(accountNumber)
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrAccountNotFound, accountNumber)
	}
	entry.Account = account
	entry.DebtorCreditor = account.DebtorCreditor

	sector, ok := r.refData.Sectors.Sector(sectorCode)
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrSectorNotFound, sectorCode)
	}
	entry.Sector = sector

	return entry, nil
}

func (r *BalanceRepository) observeQuery(operation, table string, start time.Time) {
	if r.metrics == nil {
		return
	}
	r.metrics.DBQueries.WithLabelValues(operation, table).Inc()
	r.metrics.DBDuration.WithLabelValues(operation, table).Observe(time.Since(start).Seconds())
}

func (r *BalanceRepository) countError(operation string) {
	if r.metrics != nil {
		r.metrics.DBErrors.WithLabelValues(operation).Inc()
	}
}
