
package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/iho/gobalance/internal/domain"
	"github.com/iho/gobalance/internal/infrastructure/metrics"
)

// ExchangeRateRepository implements usecase.ExchangeRateRepository.
type ExchangeRateRepository struct {
	pool    *pgxpool.Pool
	metrics *metrics.Metrics
}

// NewExchangeRateRepository creates a new ExchangeRateRepository.
func NewExchangeRateRepository(pool *pgxpool.Pool, m *metrics.Metrics) *ExchangeRateRepository {
	return &ExchangeRateRepository{
		pool:    pool,
		metrics: m,
	}
}

// GetList returns all rates published for a rate type on a date.
func (r *ExchangeRateRepository) GetList(ctx context.Context, rateType string, date time.Time) ([]domain.ExchangeRate, error) {
	start := time.Now()

	rows, err := r.pool.Query(ctx, `
		SELECT rate_type, rate_date, from_currency_id, to_currency_id, value
		FROM exchange_rates
		WHERE rate_type = $1 AND rate_date = $2
		ORDER BY to_currency_id
	`, rateType, date)
	if err != nil {
		if r.metrics != nil {
			r.metrics.DBErrors.WithLabelValues("select").Inc()
		}
		return nil, err
	}
	defer rows.Close()

	var rates []domain.ExchangeRate
	for rows.Next() {
		var rate domain.ExchangeRate
		var value pgtype.Numeric
		if err := rows.Scan(&rate.RateType, &rate.Date, &rate.FromCurrency, &rate.ToCurrency, &value); err != nil {
			return nil, err
		}
		rate.Value = numericToDecimal(value)
		rates = append(rates, rate)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if r.metrics != nil {
		r.metrics.DBQueries.WithLabelValues("select", "exchange_rates").Inc()
		r.metrics.DBDuration.WithLabelValues("select", "exchange_rates").Observe(time.Since(start).Seconds())
	}

	return rates, nil
}
