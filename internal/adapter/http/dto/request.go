package dto

import (
	"time"

	"github.com/iho/gobalance/internal/domain"
)

// TrialBalanceRequest represents a request to build a trial balance report.
type TrialBalanceRequest struct {
	Type    string   `json:"type"`
	Ledgers []string `json:"ledgers"`

	FromAccount string `json:"from_account,omitempty"`
	ToAccount   string `json:"to_account,omitempty"`
	Level       int    `json:"level,omitempty"`

	WithSubledgerAccount bool `json:"with_subledger_account,omitempty"`
	WithSectorization    bool `json:"with_sectorization,omitempty"`
	WithAverageBalance   bool `json:"with_average_balance,omitempty"`
	UseValuation         bool `json:"use_valuation,omitempty"`
	ConsolidateToTarget  bool `json:"consolidate_to_target,omitempty"`
	ShowCascadeBalances  bool `json:"show_cascade_balances,omitempty"`

	InitialPeriod PeriodRequest `json:"initial_period"`
	FinalPeriod   PeriodRequest `json:"final_period,omitempty"`
}

// PeriodRequest represents one reporting period and its valuation rates.
type PeriodRequest struct {
	FromDate         time.Time `json:"from_date"`
	ToDate           time.Time `json:"to_date"`
	ExchangeRateType string    `json:"exchange_rate_type,omitempty"`
	ExchangeRateDate time.Time `json:"exchange_rate_date,omitempty"`
	TargetCurrencyID string    `json:"target_currency_id,omitempty"`
}

// ToQuery converts to the domain query.
func (r *TrialBalanceRequest) ToQuery() domain.TrialBalanceQuery {
	return domain.TrialBalanceQuery{
		Type:                 domain.TrialBalanceType(r.Type),
		Ledgers:              r.Ledgers,
		FromAccount:          r.FromAccount,
		ToAccount:            r.ToAccount,
		Level:                r.Level,
		WithSubledgerAccount: r.WithSubledgerAccount,
		WithSectorization:    r.WithSectorization,
		WithAverageBalance:   r.WithAverageBalance,
		UseValuation:         r.UseValuation,
		ConsolidateToTarget:  r.ConsolidateToTarget,
		ShowCascadeBalances:  r.ShowCascadeBalances,
		InitialPeriod:        r.InitialPeriod.toPeriod(),
		FinalPeriod:          r.FinalPeriod.toPeriod(),
	}
}

func (p PeriodRequest) toPeriod() domain.Period {
	return domain.Period{
		FromDate:         p.FromDate,
		ToDate:           p.ToDate,
		ExchangeRateType: p.ExchangeRateType,
		ExchangeRateDate: p.ExchangeRateDate,
		TargetCurrencyID: p.TargetCurrencyID,
	}
}
