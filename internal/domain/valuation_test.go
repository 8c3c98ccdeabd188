package domain

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func valuationPeriod() Period {
	return Period{
		FromDate:         time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		ToDate:           time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC),
		ExchangeRateType: "market",
		ExchangeRateDate: time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC),
		TargetCurrencyID: "01",
	}
}

func TestValuate_ConvertsForeignCurrency(t *testing.T) {
	t.Parallel()

	b := testBuilder(t, testQuery(Traditional))
	entry := testPosting(t, b.chart, "1-01", testDollars, testLedger, 100)
	rates := []ExchangeRate{{
		RateType:     "market",
		FromCurrency: "01",
		ToCurrency:   "02",
		Value:        decimal.NewFromFloat(17.5),
	}}

	err := b.valuate([]*TrialBalanceEntry{entry}, rates, valuationPeriod(), false)
	if err != nil {
		t.Fatal(err)
	}
	if !entry.CurrentBalance.Equal(decimal.NewFromInt(1750)) {
		t.Errorf("current balance = %s, want 1750", entry.CurrentBalance)
	}
	if !entry.ExchangeRate.Equal(decimal.NewFromFloat(17.5)) {
		t.Errorf("exchange rate = %s, want 17.5", entry.ExchangeRate)
	}
}

func TestValuate_SkipsBaseCurrency(t *testing.T) {
	t.Parallel()

	b := testBuilder(t, testQuery(Traditional))
	entry := testPosting(t, b.chart, "1-01", testPesos, testLedger, 100)

	if err := b.valuate([]*TrialBalanceEntry{entry}, nil, valuationPeriod(), false); err != nil {
		t.Fatal(err)
	}
	if !entry.CurrentBalance.Equal(decimal.NewFromInt(100)) {
		t.Error("base currency entries must not be converted")
	}
}

func TestValuate_MatchesRatesByCurrencyID(t *testing.T) {
	t.Parallel()

	// rates reference currencies by id; a currency whose code differs
	// from its id must still find its rate
	b := testBuilder(t, testQuery(Traditional))
	usd := Currency{ID: "02", Code: "USD", Name: "DOLLARS"}
	entry := testPosting(t, b.chart, "1-01", usd, testLedger, 100)
	rates := []ExchangeRate{{
		RateType:     "market",
		FromCurrency: "01",
		ToCurrency:   "02",
		Value:        decimal.NewFromFloat(17.5),
	}}

	if err := b.valuate([]*TrialBalanceEntry{entry}, rates, valuationPeriod(), false); err != nil {
		t.Fatal(err)
	}
	if !entry.CurrentBalance.Equal(decimal.NewFromInt(1750)) {
		t.Errorf("current balance = %s, want 1750", entry.CurrentBalance)
	}
}

func TestValuate_SkipsBaseCurrencyByID(t *testing.T) {
	t.Parallel()

	b := testBuilder(t, testQuery(Traditional))
	pesos := Currency{ID: "01", Code: "MXN", Name: "PESOS"}
	entry := testPosting(t, b.chart, "1-01", pesos, testLedger, 100)

	if err := b.valuate([]*TrialBalanceEntry{entry}, nil, valuationPeriod(), false); err != nil {
		t.Fatal(err)
	}
	if !entry.CurrentBalance.Equal(decimal.NewFromInt(100)) {
		t.Error("entries in the base currency id must not be converted")
	}
}

func TestValuate_MissingRateAborts(t *testing.T) {
	t.Parallel()

	b := testBuilder(t, testQuery(Traditional))
	entry := testPosting(t, b.chart, "1-01", testDollars, testLedger, 100)

	err := b.valuate([]*TrialBalanceEntry{entry}, nil, valuationPeriod(), false)
	if !errors.Is(err, ErrExchangeRateNotFound) {
		t.Fatalf("expected ErrExchangeRateNotFound, got %v", err)
	}
	if !strings.Contains(err.Error(), "02") || !strings.Contains(err.Error(), "2026-01-31") {
		t.Errorf("error must name the currency and date, got %q", err.Error())
	}
}

func TestValuate_DollarizedRecordsRateWithoutConverting(t *testing.T) {
	t.Parallel()

	b := testBuilder(t, testQuery(Dollarized))
	entry := testPosting(t, b.chart, "1-01", testDollars, testLedger, 100)
	rates := []ExchangeRate{{
		FromCurrency: "01",
		ToCurrency:   "02",
		Value:        decimal.NewFromFloat(17.5),
	}}

	if err := b.valuate([]*TrialBalanceEntry{entry}, rates, valuationPeriod(), false); err != nil {
		t.Fatal(err)
	}
	if !entry.CurrentBalance.Equal(decimal.NewFromInt(100)) {
		t.Error("dollarized reports must keep original amounts")
	}
	if !entry.ExchangeRate.Equal(decimal.NewFromFloat(17.5)) {
		t.Error("dollarized reports must record the rate")
	}
}

func TestValuate_ComparativeRecordsBothPeriodRates(t *testing.T) {
	t.Parallel()

	b := testBuilder(t, testQuery(Comparative))
	entry := testPosting(t, b.chart, "1-01", testDollars, testLedger, 100)
	initial := []ExchangeRate{{FromCurrency: "01", ToCurrency: "02", Value: decimal.NewFromFloat(17.5)}}
	final := []ExchangeRate{{FromCurrency: "01", ToCurrency: "02", Value: decimal.NewFromFloat(18.2)}}

	if err := b.valuate([]*TrialBalanceEntry{entry}, initial, valuationPeriod(), false); err != nil {
		t.Fatal(err)
	}
	if err := b.valuate([]*TrialBalanceEntry{entry}, final, valuationPeriod(), true); err != nil {
		t.Fatal(err)
	}
	if !entry.ExchangeRate.Equal(decimal.NewFromFloat(17.5)) ||
		!entry.SecondExchangeRate.Equal(decimal.NewFromFloat(18.2)) {
		t.Errorf("rates = %s / %s, want 17.5 / 18.2", entry.ExchangeRate, entry.SecondExchangeRate)
	}
	if !entry.CurrentBalance.Equal(decimal.NewFromInt(100)) {
		t.Error("comparative reports must keep original amounts")
	}
}

func TestValuate_RoundTrip(t *testing.T) {
	t.Parallel()

	entry := testPosting(t, testChart(), "1-01", testDollars, testLedger, 100)
	rate := decimal.NewFromFloat(17.5)

	entry.MultiplyBy(rate)
	entry.MultiplyBy(decimal.NewFromInt(1).Div(rate))
	entry.Round()

	if !entry.CurrentBalance.Equal(decimal.NewFromInt(100)) {
		t.Errorf("round trip balance = %s, want 100 within cent rounding", entry.CurrentBalance)
	}
}

func TestConsolidateToTargetCurrency(t *testing.T) {
	t.Parallel()

	query := testQuery(Traditional)
	query.UseValuation = true
	query.ConsolidateToTarget = true
	b := testBuilder(t, query)

	domestic := testPosting(t, b.chart, "1-01", testPesos, testLedger, 100)
	foreign := testPosting(t, b.chart, "1-01", testDollars, testLedger, 1750)

	out := b.consolidateToTargetCurrency(
		[]*TrialBalanceEntry{domestic, foreign}, valuationPeriod())

	if len(out) != 1 {
		t.Fatalf("rows = %d, want currencies collapsed into 1", len(out))
	}
	if !out[0].CurrentBalance.Equal(decimal.NewFromInt(1850)) {
		t.Errorf("consolidated balance = %s, want 1850", out[0].CurrentBalance)
	}
	if out[0].Currency.ID != "01" {
		t.Errorf("consolidated currency = %s, want target 01", out[0].Currency.ID)
	}
}

func TestConsolidateToTargetCurrency_ForeignSeededRowCarriesTargetIdentity(t *testing.T) {
	t.Parallel()

	query := testQuery(Traditional)
	query.UseValuation = true
	query.ConsolidateToTarget = true
	b := testBuilder(t, query)

	pesos := Currency{ID: "01", Code: "MXN", Name: "PESOS"}
	dollars := Currency{ID: "02", Code: "USD", Name: "DOLLARS"}
	domestic := testPosting(t, b.chart, "1-01", pesos, testLedger, 100)
	foreign := testPosting(t, b.chart, "1-02", dollars, testLedger, 1750)

	out := b.consolidateToTargetCurrency(
		[]*TrialBalanceEntry{domestic, foreign}, valuationPeriod())

	if len(out) != 2 {
		t.Fatalf("rows = %d, want one per account", len(out))
	}
	seeded := findAccountRow(out, ItemTypeEntry, "1-02")
	if seeded == nil {
		t.Fatal("no row for the foreign-seeded account")
	}
	if seeded.Currency.ID != "01" || seeded.Currency.Code != "MXN" {
		t.Errorf("seeded currency = %s/%s, want the target's full identity 01/MXN",
			seeded.Currency.ID, seeded.Currency.Code)
	}
}
