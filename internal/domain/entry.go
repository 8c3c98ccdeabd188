package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TrialBalanceEntry is one row of a trial balance at any aggregation level:
// a raw posting, a rolled-up summary, or a total. Identity dimensions stay
// fixed once the row is created; measures accumulate through Sum, which is
// the only mutation path for them.
type TrialBalanceEntry struct {
	Ledger   Ledger
	Currency Currency
	Account  Account
	Sector   Sector

	SubledgerAccountID       int64
	SubledgerAccountIDParent int64
	SubledgerAccountNumber   string
	SubledgerNumberOfDigits  int

	InitialBalance decimal.Decimal
	Debit          decimal.Decimal
	Credit         decimal.Decimal
	CurrentBalance decimal.Decimal
	AverageBalance decimal.Decimal

	ExchangeRate       decimal.Decimal
	SecondExchangeRate decimal.Decimal

	GroupName   string
	GroupNumber string

	ItemType       ItemType
	DebtorCreditor DebtorCreditor
	LastChangeDate time.Time

	// IsParentPostingEntry marks an account that is simultaneously a
	// posting account and a summarization parent; HasParentPostingEntry
	// marks the child entries it already subsumed. The pair prevents
	// double counting during summary and total generation.
	IsParentPostingEntry  bool
	HasParentPostingEntry bool
}

// NewPostingEntry creates a posting-level row with rate defaults.
func NewPostingEntry() *TrialBalanceEntry {
	return &TrialBalanceEntry{
		ItemType:                 ItemTypeEntry,
		DebtorCreditor:           Debtor,
		ExchangeRate:             decimal.NewFromInt(1),
		SecondExchangeRate:       decimal.NewFromInt(1),
		SubledgerAccountIDParent: -1,
	}
}

// Level is the account hierarchy depth of the row: the count of number
// separators plus one, precomputed on the account at chart load.
func (e *TrialBalanceEntry) Level() int {
	if e.Account.Level == 0 {
		return 1
	}
	return e.Account.Level
}

// HasSector reports whether the row carries a non-root sector.
func (e *TrialBalanceEntry) HasSector() bool {
	return !e.Sector.IsRoot()
}

// Sum accumulates other's measures into e. The exchange rate is
// overwritten by the incoming entry's rate: each accumulation step carries
// the authoritative current rate.
func (e *TrialBalanceEntry) Sum(other *TrialBalanceEntry) {
	e.InitialBalance = e.InitialBalance.Add(other.InitialBalance)
	e.Debit = e.Debit.Add(other.Debit)
	e.Credit = e.Credit.Add(other.Credit)
	e.CurrentBalance = e.CurrentBalance.Add(other.CurrentBalance)
	e.ExchangeRate = other.ExchangeRate
}

// MultiplyBy scales all money measures by factor and records factor as the
// applied exchange rate. Used for currency valuation.
func (e *TrialBalanceEntry) MultiplyBy(factor decimal.Decimal) {
	e.InitialBalance = e.InitialBalance.Mul(factor)
	e.Debit = e.Debit.Mul(factor)
	e.Credit = e.Credit.Mul(factor)
	e.CurrentBalance = e.CurrentBalance.Mul(factor)
	e.ExchangeRate = factor
}

// Round rounds the money measures to 2 decimal places.
func (e *TrialBalanceEntry) Round() {
	e.InitialBalance = e.InitialBalance.Round(2)
	e.Debit = e.Debit.Round(2)
	e.Credit = e.Credit.Round(2)
	e.CurrentBalance = e.CurrentBalance.Round(2)
}

// PartialCopy clones the identity, measures and classification of e into a
// fresh row. LastChangeDate and the double-counting flags are deliberately
// not carried: each pipeline stage reassigns them.
func (e *TrialBalanceEntry) PartialCopy() *TrialBalanceEntry {
	return &TrialBalanceEntry{
		Ledger:                   e.Ledger,
		Currency:                 e.Currency,
		Account:                  e.Account,
		Sector:                   e.Sector,
		SubledgerAccountID:       e.SubledgerAccountID,
		SubledgerAccountIDParent: e.SubledgerAccountIDParent,
		InitialBalance:           e.InitialBalance,
		Debit:                    e.Debit,
		Credit:                   e.Credit,
		CurrentBalance:           e.CurrentBalance,
		ExchangeRate:             e.ExchangeRate,
		SecondExchangeRate:       e.SecondExchangeRate,
		GroupName:                e.GroupName,
		GroupNumber:              e.GroupNumber,
		ItemType:                 e.ItemType,
		DebtorCreditor:           e.DebtorCreditor,
	}
}
