package domain

// Builder runs the trial balance pipeline for one query. Each report
// request builds with its own Builder instance; the chart, sector tree
// and subledger resolver are shared read-only reference data.
type Builder struct {
	query          TrialBalanceQuery
	chart          *Chart
	sectors        *SectorTree
	subledgers     SubledgerResolver
	baseCurrencyID string
}

// NewBuilder wires a pipeline instance for query. baseCurrencyID is the
// currency ID valuation leaves untouched.
func NewBuilder(query TrialBalanceQuery, chart *Chart, sectors *SectorTree,
	subledgers SubledgerResolver, baseCurrencyID string) *Builder {
	return &Builder{
		query:          query,
		chart:          chart,
		sectors:        sectors,
		subledgers:     subledgers,
		baseCurrencyID: baseCurrencyID,
	}
}

// Build runs the full pipeline over the fetched posting entries:
// valuation, summary generation, the total funnel, combine, ordering and
// level restriction. Postings are consumed; callers must not reuse them.
func (b *Builder) Build(postings []*TrialBalanceEntry, rates RateSet) (*TrialBalance, error) {
	postings, err := b.preparePostings(postings, rates)
	if err != nil {
		return nil, err
	}

	b.markParentPostingEntries(postings)

	summaries, details := b.generateSummaries(postings)
	if b.query.Type == BalancesByAccount && len(details) > 0 {
		summaries = details
	}
	summaries = b.rollUpToSectorRoot(summaries)

	combined := b.combineSummariesAndPostings(summaries, postings)

	groupTotals := b.generateGroupTotals(postings)
	combined = b.combineGroupTotals(combined, groupTotals)

	dcTotals := b.generateDebtorCreditorTotals(postings)
	combined = b.combineDebtorCreditorTotals(combined, dcTotals)

	currencyTotals := b.generateCurrencyTotals(dcTotals)
	combined = b.combineCurrencyTotals(combined, currencyTotals)

	ledgerTotals := b.generateConsolidatedByLedger(currencyTotals)
	combined = b.combineConsolidatedByLedger(combined, ledgerTotals)

	consolidated := b.generateGrandConsolidated(currencyTotals)
	combined = b.combineGrandConsolidated(combined, consolidated)

	combined = b.filterSubledgerPlaceholders(combined)
	b.assignAverageBalances(combined)
	combined = b.restrictLevels(combined)

	return &TrialBalance{Query: b.query, Entries: combined}, nil
}

// preparePostings applies valuation, target-currency consolidation and
// rounding to the raw posting rows before any aggregation.
func (b *Builder) preparePostings(postings []*TrialBalanceEntry, rates RateSet) ([]*TrialBalanceEntry, error) {
	if b.query.UseValuation {
		if err := b.valuate(postings, rates.Initial, b.query.InitialPeriod, false); err != nil {
			return nil, err
		}
		if b.query.Type == Comparative {
			if err := b.valuate(postings, rates.Final, b.query.FinalPeriod, true); err != nil {
				return nil, err
			}
		}
		if b.query.ConsolidateToTarget &&
			b.query.Type != Dollarized && b.query.Type != Comparative {
			postings = b.consolidateToTargetCurrency(postings, b.query.InitialPeriod)
		}
	}
	roundEntries(postings)
	return postings, nil
}
