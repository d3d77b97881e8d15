package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"ledger-admin/internal/errors"
	"ledger-admin/internal/service"
)

type TransactionHandler struct {
	transactionService *service.TransactionService
	accountService     *service.AccountService
}

func NewTransactionHandler(transactionService *service.TransactionService, accountService *service.AccountService) *TransactionHandler {
	return &TransactionHandler{
		transactionService: transactionService,
		accountService:     accountService,
	}
}

func (h *TransactionHandler) PendingDeposits(w http.ResponseWriter, r *http.Request) {
	history, err := h.transactionService.PendingDeposits()
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"page_title": "Pending Deposit",
		"history":    history,
	})
}

func (h *TransactionHandler) PendingWithdrawals(w http.ResponseWriter, r *http.Request) {
	history, err := h.transactionService.PendingWithdrawals()
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"page_title": "Pending Withdrawal",
		"history":    history,
	})
}

func (h *TransactionHandler) ApproveDeposit(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	transaction, err := h.transactionService.ApproveDeposit(vars["id"])
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSONMessage(w, http.StatusOK, "deposit approved", transaction)
}

// ShowDepositForm returns the accounts the deposit form offers.
func (h *TransactionHandler) ShowDepositForm(w http.ResponseWriter, r *http.Request) {
	overview, err := h.accountService.Overview()
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"page_title": "Deposit",
		"customers":  overview.Accounts,
	})
}

// DepositRequest mirrors the deposit form fields.
type DepositRequest struct {
	Amount    string `json:"amount"`
	AccountID string `json:"userID"`
	Debt      string `json:"debt"`
}

func (h *TransactionHandler) CreateDeposit(w http.ResponseWriter, r *http.Request) {
	var req DepositRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.NewAppError(errors.InvalidInput, "invalid request body").WithDetails(err.Error()))
		return
	}

	transaction, err := h.transactionService.CreateDeposit(&service.DepositRequest{
		AccountID: req.AccountID,
		Amount:    req.Amount,
		Debt:      req.Debt,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSONMessage(w, http.StatusCreated, "deposit successful", transaction)
}
