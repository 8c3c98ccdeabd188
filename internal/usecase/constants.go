package usecase

import "time"

const (
	// DefaultReportCacheTTL is how long built reports stay cached.
	// Balances only move when vouchers post, so short TTLs are enough
	// to absorb report bursts without serving stale closings.
	DefaultReportCacheTTL = 10 * time.Minute

	// DefaultQueryTimeout bounds the posting-entry fetch for one report.
	DefaultQueryTimeout = 60 * time.Second
)
