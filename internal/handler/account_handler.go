package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"ledger-admin/internal/errors"
	"ledger-admin/internal/service"
)

type AccountHandler struct {
	accountService *service.AccountService
}

func NewAccountHandler(accountService *service.AccountService) *AccountHandler {
	return &AccountHandler{
		accountService: accountService,
	}
}

// OverviewResponse feeds the landing page: the view collaborator gets
// the records plus a page title.
type OverviewResponse struct {
	PageTitle string `json:"page_title"`
	*service.LedgerOverview
}

func (h *AccountHandler) Overview(w http.ResponseWriter, r *http.Request) {
	overview, err := h.accountService.Overview()
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, OverviewResponse{
		PageTitle:      "Welcome",
		LedgerOverview: overview,
	})
}

func (h *AccountHandler) ShowEditor(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	account, err := h.accountService.GetAccount(vars["id"])
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"page_title": "Welcome",
		"customer":   account,
	})
}

// UpdateAccountRequest mirrors the editor form fields.
type UpdateAccountRequest struct {
	Balance        string `json:"balance"`
	InvestmentPlan string `json:"investment_plans"`
	Debt           string `json:"debt"`
	VerifyStatus   string `json:"verify_status"`
}

func (h *AccountHandler) UpdateAccount(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	var req UpdateAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.NewAppError(errors.InvalidInput, "invalid request body").WithDetails(err.Error()))
		return
	}

	account, err := h.accountService.UpdateAccount(vars["id"], &service.UpdateAccountRequest{
		Balance:        req.Balance,
		Debt:           req.Debt,
		InvestmentPlan: req.InvestmentPlan,
		VerifyStatus:   req.VerifyStatus,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSONMessage(w, http.StatusOK, "account updated", account)
}

func (h *AccountHandler) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	if err := h.accountService.DeleteAccount(vars["id"]); err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSONMessage(w, http.StatusOK, "account deleted", nil)
}
