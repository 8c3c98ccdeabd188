package domain

import "sort"

// combine.go interleaves each tier's total rows with the rows they
// summarize. Rows are bucketed by the total's matching dimensions up
// front so each combine step is a single pass over both lists.

func sortByLedgerAndCurrency(entries []*TrialBalanceEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Ledger.Number != entries[j].Ledger.Number {
			return entries[i].Ledger.Number < entries[j].Ledger.Number
		}
		return entries[i].Currency.Code < entries[j].Currency.Code
	})
}

// combineSummariesAndPostings merges the summary rows into the posting
// list. The balances-by-account report keeps only summaries that carry a
// subledger parent; everything else takes all of them.
func (b *Builder) combineSummariesAndPostings(summaries, postings []*TrialBalanceEntry) []*TrialBalanceEntry {
	out := make([]*TrialBalanceEntry, 0, len(postings)+len(summaries))
	out = append(out, postings...)

	if b.query.Type == BalancesByAccount {
		for _, s := range summaries {
			if s.SubledgerAccountIDParent > 0 {
				out = append(out, s)
			}
		}
	} else {
		out = append(out, summaries...)
	}

	b.attachSubledgerInfo(out)
	return b.orderEntries(out)
}

type groupBucketKey struct {
	GroupNumber    string
	LedgerID       string
	CurrencyID     string
	DebtorCreditor DebtorCreditor
}

// combineGroupTotals re-attaches each group total right after the rows of
// its account group, ledger, currency and balance side.
func (b *Builder) combineGroupTotals(rows, totals []*TrialBalanceEntry) []*TrialBalanceEntry {
	buckets := make(map[groupBucketKey][]*TrialBalanceEntry, len(totals))
	for _, r := range rows {
		key := groupBucketKey{
			GroupNumber:    r.Account.GroupNumber,
			LedgerID:       r.Ledger.ID,
			CurrencyID:     r.Currency.ID,
			DebtorCreditor: r.Account.DebtorCreditor,
		}
		buckets[key] = append(buckets[key], r)
	}

	var out []*TrialBalanceEntry
	for _, side := range []ItemType{ItemTypeTotalGroupDebtor, ItemTypeTotalGroupCreditor} {
		for _, total := range totals {
			if total.ItemType != side {
				continue
			}
			key := groupBucketKey{
				GroupNumber:    total.GroupNumber,
				LedgerID:       total.Ledger.ID,
				CurrencyID:     total.Currency.ID,
				DebtorCreditor: total.DebtorCreditor,
			}
			out = append(out, buckets[key]...)
			out = append(out, total)
		}
	}
	sortByLedgerAndCurrency(out)
	return out
}

type sideBucketKey struct {
	LedgerID       string
	CurrencyCode   string
	DebtorCreditor DebtorCreditor
}

// combineDebtorCreditorTotals re-attaches the debtor and creditor totals
// after the rows of their ledger, currency and balance side.
func (b *Builder) combineDebtorCreditorTotals(rows, totals []*TrialBalanceEntry) []*TrialBalanceEntry {
	buckets := make(map[sideBucketKey][]*TrialBalanceEntry, len(totals))
	for _, r := range rows {
		key := sideBucketKey{r.Ledger.ID, r.Currency.Code, r.DebtorCreditor}
		buckets[key] = append(buckets[key], r)
	}

	var out []*TrialBalanceEntry
	for _, side := range []struct {
		itemType ItemType
		dc       DebtorCreditor
	}{
		{ItemTypeTotalDebtor, Debtor},
		{ItemTypeTotalCreditor, Creditor},
	} {
		for _, total := range totals {
			if total.ItemType != side.itemType {
				continue
			}
			key := sideBucketKey{total.Ledger.ID, total.Currency.Code, side.dc}
			bucket := buckets[key]
			if len(bucket) == 0 {
				continue
			}
			out = append(out, bucket...)
			out = append(out, total)
		}
	}
	sortByLedgerAndCurrency(out)
	return out
}

type currencyBucketKey struct {
	LedgerID     string
	CurrencyCode string
}

// combineCurrencyTotals re-attaches each currency total after the rows of
// its ledger and currency.
func (b *Builder) combineCurrencyTotals(rows, totals []*TrialBalanceEntry) []*TrialBalanceEntry {
	buckets := make(map[currencyBucketKey][]*TrialBalanceEntry, len(totals))
	for _, r := range rows {
		key := currencyBucketKey{r.Ledger.ID, r.Currency.Code}
		buckets[key] = append(buckets[key], r)
	}

	var out []*TrialBalanceEntry
	for _, total := range totals {
		if total.ItemType != ItemTypeTotalCurrency {
			continue
		}
		bucket := buckets[currencyBucketKey{total.Ledger.ID, total.Currency.Code}]
		if len(bucket) == 0 {
			continue
		}
		out = append(out, bucket...)
		out = append(out, total)
	}
	sortByLedgerAndCurrency(out)
	return out
}

// combineConsolidatedByLedger re-attaches each per-ledger consolidated
// total after all rows of its ledger.
func (b *Builder) combineConsolidatedByLedger(rows, totals []*TrialBalanceEntry) []*TrialBalanceEntry {
	if len(totals) == 0 {
		return rows
	}
	buckets := make(map[string][]*TrialBalanceEntry, len(totals))
	for _, r := range rows {
		buckets[r.Ledger.ID] = append(buckets[r.Ledger.ID], r)
	}

	var out []*TrialBalanceEntry
	for _, total := range totals {
		bucket := buckets[total.Ledger.ID]
		if len(bucket) == 0 {
			continue
		}
		out = append(out, bucket...)
		out = append(out, total)
	}
	return out
}

// combineGrandConsolidated appends the consolidated totals, one per
// ledger in standard layouts and a single row otherwise, at the very end
// of the report.
func (b *Builder) combineGrandConsolidated(rows, totals []*TrialBalanceEntry) []*TrialBalanceEntry {
	for _, total := range totals {
		if total.ItemType == ItemTypeTotalConsolidated {
			rows = append(rows, total)
		}
	}
	return rows
}
