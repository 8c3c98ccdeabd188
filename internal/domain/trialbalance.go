package domain

// TrialBalance is a fully built report: the originating query plus the
// ordered, level-restricted entry list, ready for DTO mapping. ID names
// the build instance; a report served from the cache keeps the ID of the
// build that produced it.
type TrialBalance struct {
	ID      string
	Query   TrialBalanceQuery
	Entries []*TrialBalanceEntry
}

// RateSet carries the exchange rates fetched for each query period.
type RateSet struct {
	Initial []ExchangeRate
	Final   []ExchangeRate
}
