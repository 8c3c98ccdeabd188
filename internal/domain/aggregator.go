package domain

import "github.com/shopspring/decimal"

// Accumulator groups entries under a comparable key while preserving the
// order keys were first seen. Every aggregation tier of the pipeline runs
// on one: the key type encodes exactly the dimensions that tier groups by.
type Accumulator[K comparable] struct {
	entries map[K]*TrialBalanceEntry
	order   []K
}

// NewAccumulator returns an empty accumulator.
func NewAccumulator[K comparable]() *Accumulator[K] {
	return &Accumulator[K]{entries: make(map[K]*TrialBalanceEntry)}
}

// Target overrides the identity a source entry is aggregated under.
type Target struct {
	Account  Account
	Sector   Sector
	ItemType ItemType
}

// Accumulate folds entry into the row stored under key. On first sight the
// row is a partial copy of entry retargeted to target, with zero measures
// before the fold, so repeated accumulation and fresh insertion follow the
// same path.
func (acc *Accumulator[K]) Accumulate(key K, entry *TrialBalanceEntry, target Target) {
	row, ok := acc.entries[key]
	if !ok {
		row = entry.PartialCopy()
		row.Account = target.Account
		row.Sector = target.Sector
		row.ItemType = target.ItemType
		row.InitialBalance = decimal.Zero
		row.Debit = decimal.Zero
		row.Credit = decimal.Zero
		row.CurrentBalance = decimal.Zero
		acc.entries[key] = row
		acc.order = append(acc.order, key)
	}
	row.Sum(entry)
	if entry.LastChangeDate.After(row.LastChangeDate) {
		row.LastChangeDate = entry.LastChangeDate
	}
}

// Get returns the row stored under key.
func (acc *Accumulator[K]) Get(key K) (*TrialBalanceEntry, bool) {
	row, ok := acc.entries[key]
	return row, ok
}

// Insert stores row under key, replacing any previous row. Insertion order
// records the first time a key appears.
func (acc *Accumulator[K]) Insert(key K, row *TrialBalanceEntry) {
	if _, ok := acc.entries[key]; !ok {
		acc.order = append(acc.order, key)
	}
	acc.entries[key] = row
}

// Remove drops the row under key, keeping the order slot for other keys.
func (acc *Accumulator[K]) Remove(key K) {
	if _, ok := acc.entries[key]; !ok {
		return
	}
	delete(acc.entries, key)
	for i, k := range acc.order {
		if k == key {
			acc.order = append(acc.order[:i], acc.order[i+1:]...)
			break
		}
	}
}

// Entries returns the accumulated rows in first-seen key order.
func (acc *Accumulator[K]) Entries() []*TrialBalanceEntry {
	out := make([]*TrialBalanceEntry, 0, len(acc.order))
	for _, k := range acc.order {
		out = append(out, acc.entries[k])
	}
	return out
}

// Len is the number of distinct keys accumulated.
func (acc *Accumulator[K]) Len() int {
	return len(acc.entries)
}

// summaryKey groups summary rows. DebtorCreditor participates only for
// report types that split summaries by balance side; other types pass it
// blank so both sides fold together.
type summaryKey struct {
	Account        string
	Sector         string
	CurrencyID     string
	LedgerID       string
	DebtorCreditor DebtorCreditor
}

// groupTotalKey groups account-group totals per ledger and currency.
type groupTotalKey struct {
	LedgerID       string
	DebtorCreditor DebtorCreditor
	CurrencyID     string
	GroupNumber    string
}

// debtorCreditorKey groups the per-ledger, per-currency debtor and
// creditor totals.
type debtorCreditorKey struct {
	LedgerID   string
	GroupName  string
	CurrencyID string
}

// currencyTotalKey groups the per-currency grand totals.
type currencyTotalKey struct {
	GroupName  string
	Sector     string
	CurrencyID string
	LedgerID   string
}

// ledgerTotalKey groups the per-ledger consolidated totals.
type ledgerTotalKey struct {
	LedgerID  string
	GroupName string
	Sector    string
}

// consolidatedKey groups the report-wide consolidated total.
type consolidatedKey struct {
	GroupName string
	Sector    string
	LedgerID  string
}

// consolidationKey groups entries re-valued into the target currency.
type consolidationKey struct {
	Account          string
	Sector           string
	TargetCurrencyID string
	LedgerID         string
	SubledgerID      int64
}
