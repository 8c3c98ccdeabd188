package domain

// SubledgerAccount is an auxiliary account a posting may be tied to.
type SubledgerAccount struct {
	ID     int64
	Number string
	Name   string
}

// SubledgerAccountEmpty is the blank subledger instance for postings with
// no auxiliary account.
var SubledgerAccountEmpty = SubledgerAccount{}

// IsEmpty reports whether the subledger account is the blank instance.
func (s SubledgerAccount) IsEmpty() bool {
	return s.ID <= 0
}

// SubledgerResolver resolves subledger ids to their display number and
// name. Implementations are preloaded reference data and must be safe for
// concurrent reads.
type SubledgerResolver interface {
	Parse(id int64) SubledgerAccount
}

// SubledgerMap is an in-memory SubledgerResolver.
type SubledgerMap map[int64]SubledgerAccount

// Parse implements SubledgerResolver.
func (m SubledgerMap) Parse(id int64) SubledgerAccount {
	if s, ok := m[id]; ok {
		return s
	}
	return SubledgerAccountEmpty
}
