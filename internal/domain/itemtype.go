package domain

// ItemType classifies a trial balance row by the aggregation tier that
// produced it.
type ItemType string

const (
	ItemTypeEntry                     ItemType = "Entry"
	ItemTypeSummary                   ItemType = "Summary"
	ItemTypeTotalGroupDebtor          ItemType = "BalanceTotalGroupDebtor"
	ItemTypeTotalGroupCreditor        ItemType = "BalanceTotalGroupCreditor"
	ItemTypeTotalDebtor               ItemType = "BalanceTotalDebtor"
	ItemTypeTotalCreditor             ItemType = "BalanceTotalCreditor"
	ItemTypeTotalCurrency             ItemType = "BalanceTotalCurrency"
	ItemTypeTotalConsolidatedByLedger ItemType = "BalanceTotalConsolidatedByLedger"
	ItemTypeTotalConsolidated         ItemType = "BalanceTotalConsolidated"
	ItemTypeTotal                     ItemType = "Total"
)

// DebtorCreditor is the natural balance side of an account.
type DebtorCreditor string

const (
	Debtor   DebtorCreditor = "Debtor"
	Creditor DebtorCreditor = "Creditor"
)

// rank orders debtor rows before creditor rows in report output.
func (d DebtorCreditor) rank() int {
	if d == Creditor {
		return 1
	}
	return 0
}

// TrialBalanceType selects which report the pipeline builds.
type TrialBalanceType string

const (
	// Traditional is the standard trial balance with all total tiers.
	Traditional TrialBalanceType = "Traditional"
	// BalancesByAccount keeps posting detail and the immediate parent
	// summary per account, without group totals.
	BalancesByAccount TrialBalanceType = "BalancesByAccount"
	// AccountAnalytics splits summaries by debtor/creditor side.
	AccountAnalytics TrialBalanceType = "AccountAnalytics"
	// Cascade breaks balances out per underlying ledger instead of
	// consolidating across ledgers.
	Cascade TrialBalanceType = "Cascade"
	// Comparative values balances against two period-end exchange rates.
	Comparative TrialBalanceType = "Comparative"
	// Dollarized shows original-currency amounts alongside the rate
	// instead of converting.
	Dollarized TrialBalanceType = "Dollarized"
)

// Valid reports whether t is a known report type.
func (t TrialBalanceType) Valid() bool {
	switch t {
	case Traditional, BalancesByAccount, AccountAnalytics, Cascade, Comparative, Dollarized:
		return true
	}
	return false
}
