package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExchangeRate is one published conversion factor between two currencies
// for a rate type on a date.
type ExchangeRate struct {
	RateType     string
	Date         time.Time
	FromCurrency string
	ToCurrency   string
	Value        decimal.Decimal
}
