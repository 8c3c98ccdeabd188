package domain

// maxHierarchyDepth bounds every climb to the account root. Real charts
// are at most a dozen levels deep; exceeding this means a cycle in the
// chart data.
const maxHierarchyDepth = 32

// postingIdentKey identifies a posting row by its full grouping identity.
// Used to detect accounts that are both posting accounts and parents of
// other posting accounts.
type postingIdentKey struct {
	LedgerNumber   string
	CurrencyCode   string
	SectorCode     string
	AccountNumber  string
	DebtorCreditor DebtorCreditor
}

// markParentPostingEntries detects postings whose account is the direct
// parent of another posting with the same ledger, currency, sector and
// balance side. The parent absorbs the child's measures and both rows are
// flagged so later stages do not count the child twice.
func (b *Builder) markParentPostingEntries(entries []*TrialBalanceEntry) {
	index := make(map[postingIdentKey]*TrialBalanceEntry, len(entries))
	for _, e := range entries {
		key := postingIdentKey{
			LedgerNumber:   e.Ledger.Number,
			CurrencyCode:   e.Currency.Code,
			SectorCode:     e.Sector.Code,
			AccountNumber:  e.Account.Number,
			DebtorCreditor: e.Account.DebtorCreditor,
		}
		if _, ok := index[key]; !ok {
			index[key] = e
		}
	}

	for _, e := range entries {
		parent, ok := b.chart.Parent(e.Account)
		if !ok {
			continue
		}
		key := postingIdentKey{
			LedgerNumber:   e.Ledger.Number,
			CurrencyCode:   e.Currency.Code,
			SectorCode:     e.Sector.Code,
			AccountNumber:  parent.Number,
			DebtorCreditor: e.Account.DebtorCreditor,
		}
		if parentEntry, found := index[key]; found {
			e.HasParentPostingEntry = true
			parentEntry.IsParentPostingEntry = true
			parentEntry.Sum(e)
		}
	}
}

// generateSummaries walks every posting entry up its account hierarchy,
// producing one summary row per ancestor account (and, when sectorization
// applies, per sector ancestor). Postings already subsumed by a direct
// parent posting are skipped. The second result holds the immediate-parent
// detail rows used by the balances-by-account report.
func (b *Builder) generateSummaries(entries []*TrialBalanceEntry) ([]*TrialBalanceEntry, []*TrialBalanceEntry) {
	acc := NewAccumulator[summaryKey]()
	var details []*TrialBalanceEntry
	detailSeen := make(map[summaryKey]bool)

	for _, entry := range entries {
		entry.DebtorCreditor = entry.Account.DebtorCreditor
		entry.SubledgerAccountNumber = b.subledgers.Parse(entry.SubledgerAccountID).Number

		var current Account
		switch {
		case !entry.Account.HasParent(),
			b.query.WithSubledgerAccount,
			b.query.Type == BalancesByAccount:
			current = entry.Account
		default:
			current, _ = b.chart.Parent(entry.Account)
		}

		if entry.HasParentPostingEntry {
			continue
		}

		for depth := 0; ; depth++ {
			if depth > maxHierarchyDepth {
				panic("account hierarchy exceeds supported depth: " + entry.Account.Number)
			}
			entry.DebtorCreditor = entry.Account.DebtorCreditor
			entry.SubledgerAccountIDParent = entry.SubledgerAccountID

			if entry.Level() > 1 {
				b.accumulateSummary(acc, entry, current, entry.Sector)
				if b.query.WithSectorization && current.HasParent() && entry.HasSector() {
					b.accumulateSummary(acc, entry, current, b.sectors.Parent(entry.Sector))
				}
			}

			if depth == 0 && b.query.Type == BalancesByAccount {
				key := b.summaryKeyFor(entry, current, entry.Sector)
				if row, ok := acc.Get(key); ok && !detailSeen[key] {
					detailSeen[key] = true
					details = append(details, row)
				}
			}

			if !current.HasParent() {
				if entry.HasSector() {
					b.rootSectorRollup(acc, entry, current)
				} else if b.query.Type == AccountAnalytics &&
					b.query.WithSubledgerAccount && !entry.Account.HasParent() {
					b.accumulateSummary(acc, entry, current, SectorEmpty)
				}
				break
			}
			current, _ = b.chart.Parent(current)
		}
	}

	return acc.Entries(), details
}

// rootSectorRollup emits the root-level summaries for a sectored posting
// once the account climb reaches the root: either a single sector-root
// bucket, or one bucket per sector ancestor when sectorization applies.
func (b *Builder) rootSectorRollup(acc *Accumulator[summaryKey], entry *TrialBalanceEntry, root Account) {
	if !b.query.WithSectorization {
		b.accumulateSummary(acc, entry, root, SectorEmpty)
		return
	}
	parent := b.sectors.Parent(entry.Sector)
	for depth := 0; ; depth++ {
		if depth > maxHierarchyDepth {
			panic("sector hierarchy exceeds supported depth: " + entry.Sector.Code)
		}
		b.accumulateSummary(acc, entry, root, parent)
		if parent.IsRoot() {
			return
		}
		parent = b.sectors.Parent(parent)
	}
}

func (b *Builder) summaryKeyFor(entry *TrialBalanceEntry, target Account, sector Sector) summaryKey {
	key := summaryKey{
		Account:    target.Number,
		Sector:     sector.Code,
		CurrencyID: entry.Currency.ID,
		LedgerID:   entry.Ledger.ID,
	}
	if b.query.splitsByDebtorCreditor() {
		key.DebtorCreditor = entry.DebtorCreditor
	}
	return key
}

func (b *Builder) accumulateSummary(acc *Accumulator[summaryKey], entry *TrialBalanceEntry, target Account, sector Sector) {
	acc.Accumulate(b.summaryKeyFor(entry, target, sector), entry, Target{
		Account:  target,
		Sector:   sector,
		ItemType: ItemTypeSummary,
	})
}

// lcdKey indexes rows by account, ledger and currency for the sector-root
// rollup, ignoring sector and balance side.
type lcdKey struct {
	AccountNumber string
	LedgerNumber  string
	CurrencyCode  string
}

// rollUpToSectorRoot folds each sectored row's measures into its account's
// sector-root row, creating that row when the summary stage did not. Runs
// over the combined posting+summary list so sector detail and the "00"
// rollup coexist in the report.
func (b *Builder) rollUpToSectorRoot(entries []*TrialBalanceEntry) []*TrialBalanceEntry {
	rootRows := make(map[lcdKey]*TrialBalanceEntry, len(entries))
	for _, e := range entries {
		if e.Sector.IsRoot() {
			key := lcdKey{e.Account.Number, e.Ledger.Number, e.Currency.Code}
			if _, ok := rootRows[key]; !ok {
				rootRows[key] = e
			}
		}
	}

	out := entries
	for _, e := range entries {
		if e.Sector.IsRoot() || e.Level() <= 1 {
			continue
		}
		key := lcdKey{e.Account.Number, e.Ledger.Number, e.Currency.Code}
		root, ok := rootRows[key]
		if !ok {
			root = e.PartialCopy()
			root.Sector = SectorEmpty
			root.ItemType = ItemTypeSummary
			root.LastChangeDate = e.LastChangeDate
			rootRows[key] = root
			out = append(out, root)
			continue
		}
		root.InitialBalance = root.InitialBalance.Add(e.InitialBalance)
		root.Debit = root.Debit.Add(e.Debit)
		root.Credit = root.Credit.Add(e.Credit)
		root.CurrentBalance = root.CurrentBalance.Add(e.CurrentBalance)
		if e.LastChangeDate.After(root.LastChangeDate) {
			root.LastChangeDate = e.LastChangeDate
		}
	}
	return out
}

// attachSubledgerInfo resolves each row's subledger id to its display
// number so ordering and filtering by subledger can work on the rows
// directly.
func (b *Builder) attachSubledgerInfo(entries []*TrialBalanceEntry) {
	if !b.query.WithSubledgerAccount {
		return
	}
	for _, e := range entries {
		sub := b.subledgers.Parse(e.SubledgerAccountID)
		if sub.IsEmpty() {
			continue
		}
		if sub.Number != "0" {
			e.SubledgerAccountNumber = sub.Number
		} else {
			e.SubledgerAccountNumber = ""
		}
		e.SubledgerNumberOfDigits = len(e.SubledgerAccountNumber)
	}
}
