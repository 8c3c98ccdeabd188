package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"time"
)

// Period bounds the balances and names the exchange rates used to value
// them. Comparative reports carry two periods; everything else uses the
// initial one.
type Period struct {
	FromDate         time.Time
	ToDate           time.Time
	ExchangeRateType string
	ExchangeRateDate time.Time
	TargetCurrencyID string
}

// TrialBalanceQuery describes one report request. It is immutable once
// built and doubles as the report cache key through Fingerprint.
type TrialBalanceQuery struct {
	Type    TrialBalanceType
	Ledgers []string

	FromAccount string
	ToAccount   string
	Level       int

	WithSubledgerAccount bool
	WithSectorization    bool
	WithAverageBalance   bool
	UseValuation         bool
	ConsolidateToTarget  bool
	ShowCascadeBalances  bool

	InitialPeriod Period
	FinalPeriod   Period
}

// Validate rejects structurally broken queries before any data access.
func (q TrialBalanceQuery) Validate() error {
	if !q.Type.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidBalanceType, q.Type)
	}
	if len(q.Ledgers) == 0 && !q.cascade() {
		return ErrMissingLedgers
	}
	if q.InitialPeriod.ToDate.Before(q.InitialPeriod.FromDate) {
		return ErrInvalidPeriod
	}
	return nil
}

// cascade reports whether the report layout breaks balances out per
// underlying ledger instead of consolidating across ledgers.
func (q TrialBalanceQuery) cascade() bool {
	return q.Type == Cascade
}

// showCascade reports whether total rows are keyed per ledger. The cascade
// report always is; traditional and by-account reports opt in.
func (q TrialBalanceQuery) showCascade() bool {
	if q.cascade() {
		return true
	}
	return q.ShowCascadeBalances && (q.Type == Traditional || q.Type == BalancesByAccount)
}

// splitsByDebtorCreditor reports whether summary rows stay split by the
// account's natural balance side.
func (q TrialBalanceQuery) splitsByDebtorCreditor() bool {
	return q.Type == Traditional || q.Type == AccountAnalytics
}

// Fingerprint is a stable digest of every field that changes the report
// content. Equal queries always produce equal fingerprints, so cached
// reports can be shared across callers.
func (q TrialBalanceQuery) Fingerprint() string {
	var b strings.Builder
	b.WriteString(string(q.Type))
	b.WriteByte('|')
	b.WriteString(strings.Join(q.Ledgers, ","))
	fmt.Fprintf(&b, "|%s|%s|%d|%t|%t|%t|%t|%t",
		q.FromAccount, q.ToAccount, q.Level,
		q.WithSubledgerAccount, q.WithSectorization, q.WithAverageBalance,
		q.UseValuation, q.ConsolidateToTarget)
	fmt.Fprintf(&b, "|%t", q.ShowCascadeBalances)
	for _, p := range []Period{q.InitialPeriod, q.FinalPeriod} {
		fmt.Fprintf(&b, "|%d:%d:%s:%d:%s",
			p.FromDate.Unix(), p.ToDate.Unix(),
			p.ExchangeRateType, p.ExchangeRateDate.Unix(),
			p.TargetCurrencyID)
	}
	sum := sha256.Sum256([]byte(b.String()))
	return hex.EncodeToString(sum[:])
}
