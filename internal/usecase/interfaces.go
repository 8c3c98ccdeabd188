package usecase

import (
	"context"
	"time"

	"github.com/iho/gobalance/internal/domain"
)

// BalanceRepository defines data access for posting-level balance rows.
type BalanceRepository interface {
	// GetPostingEntries returns the flat posting rows scoped by the
	// query's ledger, date and account filters.
	GetPostingEntries(ctx context.Context, query domain.TrialBalanceQuery) ([]*domain.TrialBalanceEntry, error)
}

// ChartRepository loads the reference data the pipeline navigates:
// the chart of accounts, the sector tree and the subledger directory.
// All three are loaded once at startup and shared read-only.
type ChartRepository interface {
	LoadChart(ctx context.Context) (*domain.Chart, error)
	LoadSectors(ctx context.Context) (*domain.SectorTree, error)
	LoadSubledgerAccounts(ctx context.Context) (domain.SubledgerMap, error)
}

// ExchangeRateRepository defines data access for exchange rates.
type ExchangeRateRepository interface {
	// GetList returns all rates published for a rate type on a date.
	GetList(ctx context.Context, rateType string, date time.Time) ([]domain.ExchangeRate, error)
}

// IDGenerator generates unique IDs.
type IDGenerator interface {
	Generate() string
}

// Cache defines caching operations.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}
