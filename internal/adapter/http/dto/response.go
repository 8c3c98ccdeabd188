package dto

import (
	"time"

	"github.com/iho/gobalance/internal/domain"
	"github.com/shopspring/decimal"
)

// ErrorResponse represents an error in API responses.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// TrialBalanceResponse represents a built trial balance in API responses.
type TrialBalanceResponse struct {
	Type    string                       `json:"type"`
	Entries []*TrialBalanceEntryResponse `json:"entries"`
}

// TrialBalanceEntryResponse represents one report row in API responses.
type TrialBalanceEntryResponse struct {
	ItemType       string `json:"item_type"`
	LedgerID       string `json:"ledger_id,omitempty"`
	LedgerNumber   string `json:"ledger_number,omitempty"`
	CurrencyCode   string `json:"currency_code,omitempty"`
	AccountNumber  string `json:"account_number,omitempty"`
	AccountName    string `json:"account_name,omitempty"`
	AccountLevel   int    `json:"account_level"`
	SectorCode     string `json:"sector_code,omitempty"`
	SubledgerID    int64  `json:"subledger_account_id,omitempty"`
	DebtorCreditor string `json:"debtor_creditor,omitempty"`

	InitialBalance decimal.Decimal  `json:"initial_balance"`
	Debit          decimal.Decimal  `json:"debit"`
	Credit         decimal.Decimal  `json:"credit"`
	CurrentBalance decimal.Decimal  `json:"current_balance"`
	AverageBalance *decimal.Decimal `json:"average_balance,omitempty"`

	ExchangeRate       decimal.Decimal  `json:"exchange_rate"`
	SecondExchangeRate *decimal.Decimal `json:"second_exchange_rate,omitempty"`

	LastChangeDate *time.Time `json:"last_change_date,omitempty"`
}

// TrialBalanceFromDomain converts a built report to its response form. The
// subledger resolver supplies auxiliary account names for rows posted
// against a subledger account.
func TrialBalanceFromDomain(tb *domain.TrialBalance, subledgers domain.SubledgerResolver) *TrialBalanceResponse {
	entries := make([]*TrialBalanceEntryResponse, len(tb.Entries))
	for i, e := range tb.Entries {
		entries[i] = entryFromDomain(tb.Query, e, subledgers)
	}
	return &TrialBalanceResponse{
		Type:    string(tb.Query.Type),
		Entries: entries,
	}
}

func entryFromDomain(query domain.TrialBalanceQuery, e *domain.TrialBalanceEntry, subledgers domain.SubledgerResolver) *TrialBalanceEntryResponse {
	dto := &TrialBalanceEntryResponse{
		ItemType:       string(e.ItemType),
		LedgerID:       e.Ledger.ID,
		LedgerNumber:   e.Ledger.Number,
		AccountLevel:   e.Account.Level,
		SectorCode:     e.Sector.Code,
		SubledgerID:    e.SubledgerAccountID,
		DebtorCreditor: string(e.DebtorCreditor),
		InitialBalance: e.InitialBalance,
		Debit:          e.Debit,
		Credit:         e.Credit,
		CurrentBalance: e.CurrentBalance,
		ExchangeRate:   e.ExchangeRate,
	}

	// The grand consolidated tier spans currencies, so no single code fits.
	if e.ItemType != domain.ItemTypeTotalConsolidated {
		dto.CurrencyCode = e.Currency.Code
	}

	subledger := domain.SubledgerAccountEmpty
	if subledgers != nil {
		subledger = subledgers.Parse(e.SubledgerAccountID)
	}
	if subledger.IsEmpty() {
		dto.AccountName = e.Account.Name
		if e.GroupName != "" {
			dto.AccountName = e.GroupName
		}
		dto.AccountNumber = e.Account.Number
		if e.GroupNumber != "" {
			dto.AccountNumber = e.GroupNumber
		}
	} else {
		dto.AccountName = subledger.Name
		dto.AccountNumber = subledger.Number
	}

	if query.WithAverageBalance {
		avg := e.AverageBalance
		dto.AverageBalance = &avg
	}
	if query.Type == domain.Comparative {
		rate := e.SecondExchangeRate
		dto.SecondExchangeRate = &rate
	}
	if e.ItemType == domain.ItemTypeEntry && !e.LastChangeDate.IsZero() {
		changed := e.LastChangeDate
		dto.LastChangeDate = &changed
	}

	return dto
}
