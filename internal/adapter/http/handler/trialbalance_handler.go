package handler

import (
	"encoding/json"
	"net/http"

	"github.com/iho/gobalance/internal/adapter/http/dto"
	"github.com/iho/gobalance/internal/domain"
	"github.com/iho/gobalance/internal/usecase"
)

// TrialBalanceHandler handles trial balance report requests.
type TrialBalanceHandler struct {
	balanceUC  *usecase.TrialBalanceUseCase
	subledgers domain.SubledgerResolver
}

// NewTrialBalanceHandler creates a new TrialBalanceHandler.
func NewTrialBalanceHandler(balanceUC *usecase.TrialBalanceUseCase, subledgers domain.SubledgerResolver) *TrialBalanceHandler {
	return &TrialBalanceHandler{
		balanceUC:  balanceUC,
		subledgers: subledgers,
	}
}

// Build builds the trial balance described by the request body.
func (h *TrialBalanceHandler) Build(w http.ResponseWriter, r *http.Request) {
	var req dto.TrialBalanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	report, err := h.balanceUC.BuildTrialBalance(r.Context(), req.ToQuery())
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to build trial balance", err.Error())

		return
	}

	writeJSON(w, http.StatusOK, dto.TrialBalanceFromDomain(report, h.subledgers))
}
