package domain

import (
	"fmt"
	"sort"
)

// generateGroupTotals folds non-subsumed postings into one total per
// ledger, account group and currency, split into debtor and creditor
// totals.
func (b *Builder) generateGroupTotals(entries []*TrialBalanceEntry) []*TrialBalanceEntry {
	acc := NewAccumulator[groupTotalKey]()

	for _, entry := range entries {
		if entry.HasParentPostingEntry {
			continue
		}
		group := entry.PartialCopy()
		group.GroupNumber = entry.Account.GroupNumber
		group.GroupName = fmt.Sprintf("TOTAL GROUP %s", group.GroupNumber)
		group.DebtorCreditor = entry.Account.DebtorCreditor

		itemType := ItemTypeTotalGroupDebtor
		if group.DebtorCreditor == Creditor {
			itemType = ItemTypeTotalGroupCreditor
		}

		key := groupTotalKey{
			LedgerID:       entry.Ledger.ID,
			DebtorCreditor: group.DebtorCreditor,
			CurrencyID:     entry.Currency.ID,
			GroupNumber:    group.GroupNumber,
		}
		acc.Accumulate(key, group, Target{
			Account:  AccountEmpty,
			Sector:   SectorEmpty,
			ItemType: itemType,
		})
	}
	return acc.Entries()
}

// generateDebtorCreditorTotals folds non-subsumed postings into one total
// per ledger and currency, one row for debtor accounts and one for
// creditor accounts.
func (b *Builder) generateDebtorCreditorTotals(entries []*TrialBalanceEntry) []*TrialBalanceEntry {
	acc := NewAccumulator[debtorCreditorKey]()

	for _, entry := range entries {
		if entry.HasParentPostingEntry {
			continue
		}
		total := entry.PartialCopy()
		itemType := ItemTypeTotalDebtor
		total.GroupName = "TOTAL DEBTORS " + entry.Currency.Name
		if entry.Account.DebtorCreditor == Creditor {
			itemType = ItemTypeTotalCreditor
			total.GroupName = "TOTAL CREDITORS " + entry.Currency.Name
		}

		key := debtorCreditorKey{
			LedgerID:   entry.Ledger.ID,
			GroupName:  total.GroupName,
			CurrencyID: entry.Currency.ID,
		}
		acc.Accumulate(key, total, Target{
			Account:  AccountEmpty,
			Sector:   SectorEmpty,
			ItemType: itemType,
		})
	}
	return acc.Entries()
}

// generateCurrencyTotals nets the debtor and creditor totals into one
// total per ledger and currency. In the standard (non-cascade) layout creditor
// balances are negated before summation so the two sides net into a
// single figure; cascade layouts keep the raw sums per currency.
func (b *Builder) generateCurrencyTotals(totals []*TrialBalanceEntry) []*TrialBalanceEntry {
	acc := NewAccumulator[currencyTotalKey]()

	for _, entry := range totals {
		if entry.ItemType != ItemTypeTotalDebtor && entry.ItemType != ItemTypeTotalCreditor {
			continue
		}
		total := entry.PartialCopy()
		total.GroupName = "TOTAL CURRENCY " + entry.Currency.Name

		if !b.query.cascade() && entry.ItemType == ItemTypeTotalCreditor {
			total.InitialBalance = total.InitialBalance.Neg()
			total.CurrentBalance = total.CurrentBalance.Neg()
		}

		var key currencyTotalKey
		if b.query.cascade() {
			total.GroupNumber = ""
			key = currencyTotalKey{
				GroupName:  total.GroupName,
				CurrencyID: entry.Currency.ID,
				LedgerID:   entry.Ledger.ID,
			}
		} else {
			key = currencyTotalKey{
				GroupName:  total.GroupName,
				Sector:     SectorRootCode,
				CurrencyID: entry.Currency.ID,
				LedgerID:   entry.Ledger.ID,
			}
		}
		acc.Accumulate(key, total, Target{
			Account:  AccountEmpty,
			Sector:   SectorEmpty,
			ItemType: ItemTypeTotalCurrency,
		})
	}
	return acc.Entries()
}

// generateConsolidatedByLedger folds currency totals into one
// cross-currency total per ledger. Only the traditional layout with
// cascade balances produces these rows.
func (b *Builder) generateConsolidatedByLedger(totals []*TrialBalanceEntry) []*TrialBalanceEntry {
	if b.query.Type != Traditional || !b.query.showCascade() {
		return nil
	}
	acc := NewAccumulator[ledgerTotalKey]()

	for _, entry := range totals {
		if entry.ItemType != ItemTypeTotalCurrency {
			continue
		}
		total := entry.PartialCopy()
		total.GroupName = "CONSOLIDATED TOTAL " + entry.Ledger.Name
		total.Currency = CurrencyEmpty

		key := ledgerTotalKey{
			LedgerID:  entry.Ledger.ID,
			GroupName: total.GroupName,
			Sector:    SectorRootCode,
		}
		acc.Accumulate(key, total, Target{
			Account:  AccountEmpty,
			Sector:   SectorEmpty,
			ItemType: ItemTypeTotalConsolidatedByLedger,
		})
	}

	out := acc.Entries()
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Ledger.Number < out[j].Ledger.Number
	})
	return out
}

// generateGrandConsolidated folds currency totals into the report-wide
// consolidated total. The grouping key depends on the report layout:
// cascade layouts collapse everything into a single ledger-less row,
// others keep one row per ledger.
func (b *Builder) generateGrandConsolidated(totals []*TrialBalanceEntry) []*TrialBalanceEntry {
	acc := NewAccumulator[consolidatedKey]()

	for _, entry := range totals {
		if entry.ItemType != ItemTypeTotalCurrency {
			continue
		}
		total := entry.PartialCopy()
		total.GroupName = "CONSOLIDATED GRAND TOTAL"

		var key consolidatedKey
		switch {
		case b.query.cascade() || (b.query.Type == Traditional && b.query.showCascade()):
			if b.query.cascade() {
				total.GroupName = "REPORT TOTAL"
			}
			total.GroupNumber = ""
			total.Ledger = LedgerEmpty
			key = consolidatedKey{GroupName: total.GroupName}
		case b.query.Type == BalancesByAccount && b.query.showCascade():
			total.Ledger = LedgerEmpty
			key = consolidatedKey{GroupName: total.GroupName, Sector: SectorRootCode}
		default:
			key = consolidatedKey{
				GroupName: total.GroupName,
				Sector:    SectorRootCode,
				LedgerID:  entry.Ledger.ID,
			}
		}
		acc.Accumulate(key, total, Target{
			Account:  AccountEmpty,
			Sector:   SectorEmpty,
			ItemType: ItemTypeTotalConsolidated,
		})
	}

	out := acc.Entries()
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Ledger.Number < out[j].Ledger.Number
	})
	return out
}
