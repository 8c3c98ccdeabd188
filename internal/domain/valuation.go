package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// valuate applies the period's exchange rates to every entry not already
// in the base currency. Comparative and dollarized reports only record
// the rate on the entry; every other report converts the amounts. A
// missing rate aborts the build: defaulting to 1.0 would silently produce
// a wrong report.
func (b *Builder) valuate(entries []*TrialBalanceEntry, rates []ExchangeRate, period Period, secondPeriod bool) error {
	byCurrency := make(map[string]ExchangeRate, len(rates))
	for _, r := range rates {
		if r.FromCurrency == period.TargetCurrencyID {
			byCurrency[r.ToCurrency] = r
		}
	}

	for _, entry := range entries {
		if entry.Currency.ID == b.baseCurrencyID {
			continue
		}
		rate, ok := byCurrency[entry.Currency.ID]
		if !ok {
			return fmt.Errorf("%w: currency %s (%s) on %s",
				ErrExchangeRateNotFound, entry.Currency.ID, entry.Currency.Name,
				period.ExchangeRateDate.Format("2006-01-02"))
		}

		switch {
		case b.query.Type == Comparative:
			if secondPeriod {
				entry.SecondExchangeRate = rate.Value
			} else {
				entry.ExchangeRate = rate.Value
			}
		case b.query.Type == Dollarized:
			entry.ExchangeRate = rate.Value
		default:
			entry.MultiplyBy(rate.Value)
		}
	}
	return nil
}

// consolidateToTargetCurrency re-aggregates valued entries under the
// target currency, collapsing rows that differ only by original currency.
// Rows already in the target currency take the bucket as-is; foreign rows
// fold into it.
func (b *Builder) consolidateToTargetCurrency(entries []*TrialBalanceEntry, period Period) []*TrialBalanceEntry {
	acc := NewAccumulator[consolidationKey]()

	target := Currency{ID: period.TargetCurrencyID}
	for _, entry := range entries {
		if entry.Currency.ID == period.TargetCurrencyID {
			target = entry.Currency
			break
		}
	}

	for _, entry := range entries {
		key := consolidationKey{
			Account:          entry.Account.Number,
			Sector:           entry.Sector.Code,
			TargetCurrencyID: period.TargetCurrencyID,
			LedgerID:         entry.Ledger.ID,
		}
		if b.query.Type == Traditional && b.query.WithSubledgerAccount {
			key.SubledgerID = entry.SubledgerAccountID
		}

		switch {
		case entry.Currency.ID == period.TargetCurrencyID:
			acc.Insert(key, entry)
		default:
			if row, ok := acc.Get(key); ok {
				row.Sum(entry)
			} else {
				entry.Currency = target
				acc.Insert(key, entry)
			}
		}
	}
	return acc.Entries()
}

// roundEntries rounds all money measures to cents before aggregation.
func roundEntries(entries []*TrialBalanceEntry) {
	for _, e := range entries {
		e.Round()
	}
}

// assignAverageBalances computes the average balance of summary rows (and
// group totals in the cascade report, all rows in the comparative one)
// from the days elapsed since the row's last movement. The by-account
// report averages each row over the period's days instead.
func (b *Builder) assignAverageBalances(entries []*TrialBalanceEntry) {
	if !b.query.WithAverageBalance {
		return
	}
	if b.query.Type == BalancesByAccount {
		b.assignAverageDailyBalances(entries, b.query.InitialPeriod)
		return
	}

	periodEnd := b.query.InitialPeriod.ToDate
	if b.query.Type == Comparative {
		periodEnd = b.query.FinalPeriod.ToDate
	}
	monthDay := decimal.NewFromInt(int64(b.query.InitialPeriod.ToDate.Day()))

	for _, entry := range entries {
		include := entry.ItemType == ItemTypeSummary ||
			b.query.Type == Comparative ||
			(b.query.cascade() &&
				(entry.ItemType == ItemTypeTotalGroupDebtor ||
					entry.ItemType == ItemTypeTotalGroupCreditor))
		if !include {
			continue
		}

		movement := entry.Debit.Sub(entry.Credit)
		if entry.DebtorCreditor == Creditor {
			movement = entry.Credit.Sub(entry.Debit)
		}
		days := int64(periodEnd.Sub(entry.LastChangeDate).Hours()/24) + 1

		entry.AverageBalance = decimal.NewFromInt(days).
			Mul(movement).
			Div(monthDay).
			Add(entry.InitialBalance)
	}
}

// assignAverageDailyBalances spreads each row's current balance over the
// number of days in the period.
func (b *Builder) assignAverageDailyBalances(entries []*TrialBalanceEntry, period Period) {
	days := int64(period.ToDate.Sub(period.FromDate).Hours()/24) + 1
	divisor := decimal.NewFromInt(days)
	for _, e := range entries {
		e.AverageBalance = e.CurrentBalance.Div(divisor)
	}
}
