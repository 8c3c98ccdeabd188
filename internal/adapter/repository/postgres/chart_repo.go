
package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/iho/gobalance/internal/domain"
)

// ChartRepository implements usecase.ChartRepository. It loads the chart of
// accounts, the sector tree and the subledger directory, each in one pass
// at startup.
type ChartRepository struct {
	pool      *pgxpool.Pool
	separator string
}

// NewChartRepository creates a new ChartRepository. separator is the
// character that splits an account number into hierarchy segments.
func NewChartRepository(pool *pgxpool.Pool, separator string) *ChartRepository {
	return &ChartRepository{
		pool:      pool,
		separator: separator,
	}
}

// LoadChart loads the full chart of accounts.
func (r *ChartRepository) LoadChart(ctx context.Context) (*domain.Chart, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT number, name, group_number, debtor_creditor
		FROM chart_of_accounts
		ORDER BY number
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var accounts []domain.Account
	for rows.Next() {
		var a domain.Account
		var dc string
		if err := rows.Scan(&a.Number, &a.Name, &a.GroupNumber, &dc); err != nil {
			return nil, err
		}
		a.DebtorCreditor = domain.DebtorCreditor(dc)
		accounts = append(accounts, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return domain.NewChart(r.separator, accounts), nil
}

// LoadSectors loads the sector hierarchy.
func (r *ChartRepository) LoadSectors(ctx context.Context) (*domain.SectorTree, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT code, name, COALESCE(parent_code, '')
		FROM sectors
		ORDER BY code
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sectors []domain.Sector
	for rows.Next() {
		var s domain.Sector
		if err := rows.Scan(&s.Code, &s.Name, &s.ParentCode); err != nil {
			return nil, err
		}
		sectors = append(sectors, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return domain.NewSectorTree(sectors), nil
}

// LoadSubledgerAccounts loads the auxiliary account directory.
func (r *ChartRepository) LoadSubledgerAccounts(ctx context.Context) (domain.SubledgerMap, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, number, name
		FROM subledger_accounts
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	subledgers := make(domain.SubledgerMap)
	for rows.Next() {
		var s domain.SubledgerAccount
		if err := rows.Scan(&s.ID, &s.Number, &s.Name); err != nil {
			return nil, err
		}
		subledgers[s.ID] = s
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return subledgers, nil
}
