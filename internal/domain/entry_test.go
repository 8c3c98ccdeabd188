package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestTrialBalanceEntry_Sum(t *testing.T) {
	t.Parallel()

	target := NewPostingEntry()
	target.InitialBalance = decimal.NewFromInt(10)
	target.Debit = decimal.NewFromInt(100)
	target.Credit = decimal.NewFromInt(40)
	target.CurrentBalance = decimal.NewFromInt(70)

	other := NewPostingEntry()
	other.InitialBalance = decimal.NewFromInt(5)
	other.Debit = decimal.NewFromInt(50)
	other.Credit = decimal.NewFromInt(20)
	other.CurrentBalance = decimal.NewFromInt(35)
	other.ExchangeRate = decimal.NewFromFloat(17.5)

	target.Sum(other)

	if !target.InitialBalance.Equal(decimal.NewFromInt(15)) {
		t.Errorf("initial balance = %s, want 15", target.InitialBalance)
	}
	if !target.Debit.Equal(decimal.NewFromInt(150)) {
		t.Errorf("debit = %s, want 150", target.Debit)
	}
	if !target.Credit.Equal(decimal.NewFromInt(60)) {
		t.Errorf("credit = %s, want 60", target.Credit)
	}
	if !target.CurrentBalance.Equal(decimal.NewFromInt(105)) {
		t.Errorf("current balance = %s, want 105", target.CurrentBalance)
	}
	if !target.ExchangeRate.Equal(decimal.NewFromFloat(17.5)) {
		t.Errorf("exchange rate = %s, want the incoming entry's rate", target.ExchangeRate)
	}
}

func TestTrialBalanceEntry_MultiplyBy(t *testing.T) {
	t.Parallel()

	e := NewPostingEntry()
	e.InitialBalance = decimal.NewFromInt(10)
	e.Debit = decimal.NewFromInt(100)
	e.Credit = decimal.NewFromInt(40)
	e.CurrentBalance = decimal.NewFromInt(70)

	e.MultiplyBy(decimal.NewFromInt(2))

	if !e.CurrentBalance.Equal(decimal.NewFromInt(140)) {
		t.Errorf("current balance = %s, want 140", e.CurrentBalance)
	}
	if !e.Debit.Equal(decimal.NewFromInt(200)) {
		t.Errorf("debit = %s, want 200", e.Debit)
	}
	if !e.ExchangeRate.Equal(decimal.NewFromInt(2)) {
		t.Errorf("exchange rate = %s, want the applied factor", e.ExchangeRate)
	}
}

func TestTrialBalanceEntry_Round(t *testing.T) {
	t.Parallel()

	e := NewPostingEntry()
	e.CurrentBalance = decimal.NewFromFloat(10.005)
	e.Debit = decimal.NewFromFloat(3.14159)

	e.Round()

	if !e.CurrentBalance.Equal(decimal.NewFromFloat(10.01)) {
		t.Errorf("current balance = %s, want 10.01", e.CurrentBalance)
	}
	if !e.Debit.Equal(decimal.NewFromFloat(3.14)) {
		t.Errorf("debit = %s, want 3.14", e.Debit)
	}
}

func TestTrialBalanceEntry_PartialCopy(t *testing.T) {
	t.Parallel()

	e := NewPostingEntry()
	e.Ledger = testLedger
	e.Currency = testPesos
	e.Account = Account{Number: "1-01", DebtorCreditor: Debtor, Level: 2}
	e.Sector = testSectorEL
	e.CurrentBalance = decimal.NewFromInt(99)
	e.GroupName = "TOTAL GROUP 1100"
	e.LastChangeDate = time.Date(2026, 1, 20, 0, 0, 0, 0, time.UTC)
	e.IsParentPostingEntry = true
	e.HasParentPostingEntry = true

	c := e.PartialCopy()

	if c.Account.Number != "1-01" || c.Ledger.ID != testLedger.ID || c.Sector.Code != "31" {
		t.Error("identity fields not carried")
	}
	if !c.CurrentBalance.Equal(decimal.NewFromInt(99)) {
		t.Error("measures not carried")
	}
	if c.GroupName != "TOTAL GROUP 1100" {
		t.Error("group name not carried")
	}
	if !c.LastChangeDate.IsZero() {
		t.Error("last change date must not be carried")
	}
	if c.IsParentPostingEntry || c.HasParentPostingEntry {
		t.Error("double-counting flags must not be carried")
	}
}

func TestTrialBalanceEntry_Level(t *testing.T) {
	t.Parallel()

	e := NewPostingEntry()
	if e.Level() != 1 {
		t.Errorf("level of blank account = %d, want 1", e.Level())
	}
	e.Account = Account{Number: "1-01-05", Level: 3}
	if e.Level() != 3 {
		t.Errorf("level = %d, want 3", e.Level())
	}
}
