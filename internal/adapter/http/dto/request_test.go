package dto

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/iho/gobalance/internal/domain"
)

func TestTrialBalanceRequest_ToQuery(t *testing.T) {
	body := `{
		"type": "Traditional",
		"ledgers": ["10", "20"],
		"from_account": "1",
		"to_account": "1-99",
		"level": 3,
		"with_sectorization": true,
		"use_valuation": true,
		"initial_period": {
			"from_date": "2026-01-01T00:00:00Z",
			"to_date": "2026-01-31T00:00:00Z",
			"exchange_rate_type": "market",
			"exchange_rate_date": "2026-01-31T00:00:00Z",
			"target_currency_id": "01"
		}
	}`

	var req TrialBalanceRequest
	if err := json.Unmarshal([]byte(body), &req); err != nil {
		t.Fatal(err)
	}

	query := req.ToQuery()
	if query.Type != domain.Traditional {
		t.Fatalf("type = %q", query.Type)
	}
	if len(query.Ledgers) != 2 || query.Ledgers[1] != "20" {
		t.Fatalf("ledgers = %v", query.Ledgers)
	}
	if query.FromAccount != "1" || query.ToAccount != "1-99" || query.Level != 3 {
		t.Fatalf("account filter = %q..%q level %d", query.FromAccount, query.ToAccount, query.Level)
	}
	if !query.WithSectorization || !query.UseValuation || query.WithSubledgerAccount {
		t.Fatal("flags not carried over")
	}
	wantTo := time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC)
	if !query.InitialPeriod.ToDate.Equal(wantTo) {
		t.Fatalf("to date = %s", query.InitialPeriod.ToDate)
	}
	if query.InitialPeriod.ExchangeRateType != "market" || query.InitialPeriod.TargetCurrencyID != "01" {
		t.Fatalf("valuation period = %+v", query.InitialPeriod)
	}
	if err := query.Validate(); err != nil {
		t.Fatalf("converted query invalid: %v", err)
	}
}
