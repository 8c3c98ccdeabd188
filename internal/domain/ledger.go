package domain

// Ledger identifies one accounting ledger (a "book") postings belong to.
type Ledger struct {
	ID     string
	Number string
	Name   string
}

// LedgerEmpty is the blank ledger used on cross-ledger total rows.
var LedgerEmpty = Ledger{}

// IsEmpty reports whether the ledger is the blank instance.
func (l Ledger) IsEmpty() bool {
	return l.ID == "" && l.Number == ""
}

// Currency identifies a currency balances are held in.
type Currency struct {
	ID   string
	Code string
	Name string
}

// CurrencyEmpty is the blank currency used on cross-currency total rows.
var CurrencyEmpty = Currency{}

// IsEmpty reports whether the currency is the blank instance.
func (c Currency) IsEmpty() bool {
	return c.ID == "" && c.Code == ""
}
