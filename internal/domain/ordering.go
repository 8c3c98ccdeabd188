package domain

import (
	"sort"
	"strings"
)

// orderEntries sorts the combined posting+summary list into report order:
// ledger, currency, debtor rows before creditor rows, account number,
// sector, then subledger digit count and number. Subledger reports also
// drop placeholder subledger numbers.
func (b *Builder) orderEntries(entries []*TrialBalanceEntry) []*TrialBalanceEntry {
	withSubledger := b.query.WithSubledgerAccount &&
		(b.query.Type == Traditional ||
			b.query.Type == BalancesByAccount ||
			b.query.Type == AccountAnalytics)

	out := entries
	if withSubledger {
		out = out[:0:0]
		for _, e := range entries {
			if strings.Contains(e.SubledgerAccountNumber, "undefined") {
				continue
			}
			out = append(out, e)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		x, y := out[i], out[j]
		if x.Ledger.Number != y.Ledger.Number {
			return x.Ledger.Number < y.Ledger.Number
		}
		if x.Currency.Code != y.Currency.Code {
			return x.Currency.Code < y.Currency.Code
		}
		if x.Account.DebtorCreditor != y.Account.DebtorCreditor {
			return x.Account.DebtorCreditor.rank() < y.Account.DebtorCreditor.rank()
		}
		if x.Account.Number != y.Account.Number {
			return x.Account.Number < y.Account.Number
		}
		if x.Sector.Code != y.Sector.Code {
			return x.Sector.Code < y.Sector.Code
		}
		if withSubledger && x.SubledgerNumberOfDigits != y.SubledgerNumberOfDigits {
			return x.SubledgerNumberOfDigits < y.SubledgerNumberOfDigits
		}
		return x.SubledgerAccountNumber < y.SubledgerAccountNumber
	})
	return out
}

// restrictLevels drops rows deeper than the requested maximum level. It
// runs after all aggregation so totals are computed over full-depth data.
func (b *Builder) restrictLevels(entries []*TrialBalanceEntry) []*TrialBalanceEntry {
	if b.query.Level == 0 {
		return entries
	}
	out := make([]*TrialBalanceEntry, 0, len(entries))
	for _, e := range entries {
		if e.Level() <= b.query.Level {
			out = append(out, e)
		}
	}
	return out
}

// filterSubledgerPlaceholders removes subledger-carrying rows from reports
// that did not ask for subledger detail.
func (b *Builder) filterSubledgerPlaceholders(entries []*TrialBalanceEntry) []*TrialBalanceEntry {
	if b.query.Type != BalancesByAccount {
		return entries
	}

	out := make([]*TrialBalanceEntry, 0, len(entries))
	for _, e := range entries {
		if !b.query.WithSubledgerAccount && e.SubledgerNumberOfDigits != 0 {
			continue
		}
		if e.ItemType == ItemTypeTotalGroupDebtor || e.ItemType == ItemTypeTotalGroupCreditor {
			continue
		}
		out = append(out, e)
	}
	return out
}
