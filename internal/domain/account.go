package domain

import "strings"

// Account is a standard account from the chart of accounts. Level and
// GroupNumber are derived from the account number when the chart is loaded
// so the aggregation pipeline never re-walks the number string.
type Account struct {
	Number         string
	Name           string
	GroupNumber    string
	DebtorCreditor DebtorCreditor
	Level          int
}

// AccountEmpty is the blank account used on total rows. Its level is 1 so
// total rows survive level restriction.
var AccountEmpty = Account{Level: 1}

// IsEmpty reports whether the account is the blank instance.
func (a Account) IsEmpty() bool {
	return a.Number == ""
}

// HasParent reports whether the account has an ancestor in the chart.
func (a Account) HasParent() bool {
	return a.Level > 1
}

// Chart is the chart of accounts, preloaded once and shared read-only
// across concurrent report builds. Parent lookups are precomputed at load
// time because the summary pipeline resolves them once per posting entry,
// potentially millions of times per report.
type Chart struct {
	separator string
	accounts  map[string]Account
	parents   map[string]Account
}

// NewChart builds a chart from its account list. The separator splits an
// account number into hierarchy segments (e.g. "-" in "1-01-02").
// Ancestors missing from the account list are synthesized from the number
// so summary rows exist even when the chart omits intermediate levels.
func NewChart(separator string, accounts []Account) *Chart {
	c := &Chart{
		separator: separator,
		accounts:  make(map[string]Account, len(accounts)),
		parents:   make(map[string]Account, len(accounts)),
	}
	for i := range accounts {
		a := accounts[i]
		a.Level = strings.Count(a.Number, separator) + 1
		if a.GroupNumber == "" && len(a.Number) >= 2 {
			a.GroupNumber = a.Number[:2] + "00"
		}
		c.accounts[a.Number] = a
	}
	for _, a := range c.accounts {
		c.resolveParents(a)
	}
	return c
}

func (c *Chart) resolveParents(a Account) {
	for a.HasParent() {
		if _, done := c.parents[a.Number]; done {
			return
		}
		parentNumber := a.Number[:strings.LastIndex(a.Number, c.separator)]
		parent, ok := c.accounts[parentNumber]
		if !ok {
			parent = Account{
				Number:         parentNumber,
				GroupNumber:    a.GroupNumber,
				DebtorCreditor: a.DebtorCreditor,
				Level:          a.Level - 1,
			}
		}
		c.parents[a.Number] = parent
		a = parent
	}
}

// Account looks an account up by number.
func (c *Chart) Account(number string) (Account, bool) {
	a, ok := c.accounts[number]
	return a, ok
}

// Parent resolves the account whose number is a's number with the last
// hierarchy segment removed. The second result is false when a is a root.
func (c *Chart) Parent(a Account) (Account, bool) {
	if !a.HasParent() {
		return AccountEmpty, false
	}
	if p, ok := c.parents[a.Number]; ok {
		return p, true
	}
	// Account numbers outside the loaded chart still resolve structurally.
	parentNumber := a.Number[:strings.LastIndex(a.Number, c.separator)]
	return Account{
		Number:         parentNumber,
		GroupNumber:    a.GroupNumber,
		DebtorCreditor: a.DebtorCreditor,
		Level:          a.Level - 1,
	}, true
}
