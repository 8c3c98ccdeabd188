package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

var (
	testLedger   = Ledger{ID: "10", Number: "10", Name: "Central ledger"}
	testLedgerB  = Ledger{ID: "20", Number: "20", Name: "Branch ledger"}
	testPesos    = Currency{ID: "01", Code: "01", Name: "PESOS"}
	testDollars  = Currency{ID: "02", Code: "02", Name: "DOLLARS"}
	testSectorEL = Sector{Code: "31", Name: "Retail", ParentCode: "30"}
)

func testChart() *Chart {
	return NewChart("-", []Account{
		{Number: "1", Name: "Assets", GroupNumber: "1100", DebtorCreditor: Debtor},
		{Number: "1-01", Name: "Cash", GroupNumber: "1100", DebtorCreditor: Debtor},
		{Number: "1-02", Name: "Banks", GroupNumber: "1100", DebtorCreditor: Debtor},
		{Number: "1-01-05", Name: "Petty cash", GroupNumber: "1100", DebtorCreditor: Debtor},
		{Number: "2", Name: "Liabilities", GroupNumber: "2100", DebtorCreditor: Creditor},
		{Number: "2-01", Name: "Payables", GroupNumber: "2100", DebtorCreditor: Creditor},
	})
}

func testSectorTree() *SectorTree {
	return NewSectorTree([]Sector{
		{Code: "30", Name: "Commerce", ParentCode: "00"},
		{Code: "31", Name: "Retail", ParentCode: "30"},
	})
}

func testQuery(balanceType TrialBalanceType) TrialBalanceQuery {
	return TrialBalanceQuery{
		Type:    balanceType,
		Ledgers: []string{"10"},
		InitialPeriod: Period{
			FromDate: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
			ToDate:   time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC),
		},
	}
}

func testBuilder(t *testing.T, query TrialBalanceQuery) *Builder {
	t.Helper()
	return NewBuilder(query, testChart(), testSectorTree(), SubledgerMap{}, "01")
}

func testPosting(t *testing.T, chart *Chart, accountNumber string, currency Currency, ledger Ledger, balance int64) *TrialBalanceEntry {
	t.Helper()
	account, ok := chart.Account(accountNumber)
	if !ok {
		t.Fatalf("account %s not in test chart", accountNumber)
	}
	e := NewPostingEntry()
	e.Ledger = ledger
	e.Currency = currency
	e.Account = account
	e.Sector = SectorEmpty
	e.DebtorCreditor = account.DebtorCreditor
	e.CurrentBalance = decimal.NewFromInt(balance)
	e.Debit = decimal.NewFromInt(balance)
	e.LastChangeDate = time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)
	return e
}

func findRows(entries []*TrialBalanceEntry, itemType ItemType) []*TrialBalanceEntry {
	var out []*TrialBalanceEntry
	for _, e := range entries {
		if e.ItemType == itemType {
			out = append(out, e)
		}
	}
	return out
}

func findAccountRow(entries []*TrialBalanceEntry, itemType ItemType, accountNumber string) *TrialBalanceEntry {
	for _, e := range entries {
		if e.ItemType == itemType && e.Account.Number == accountNumber {
			return e
		}
	}
	return nil
}
