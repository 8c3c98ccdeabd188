package domain

import "errors"

var (
	// Query errors
	ErrInvalidBalanceType = errors.New("unknown trial balance type")
	ErrInvalidPeriod      = errors.New("period end date must not precede start date")
	ErrMissingLedgers     = errors.New("query must select at least one ledger")

	// Reference data errors
	ErrAccountNotFound      = errors.New("account not found in chart")
	ErrSectorNotFound       = errors.New("sector not found")
	ErrExchangeRateNotFound = errors.New("exchange rate not found")
)
