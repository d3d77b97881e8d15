package handler

import (
	"encoding/json"
	"net/http"

	"ledger-admin/internal/auth"
	"ledger-admin/internal/errors"
	"ledger-admin/internal/service"
)

type AdminHandler struct {
	adminService *service.AdminService
}

func NewAdminHandler(adminService *service.AdminService) *AdminHandler {
	return &AdminHandler{
		adminService: adminService,
	}
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token    string `json:"token"`
	AdminID  string `json:"admin_id"`
	Username string `json:"username"`
}

func (h *AdminHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.NewAppError(errors.InvalidInput, "invalid request body").WithDetails(err.Error()))
		return
	}

	token, admin, err := h.adminService.Login(req.Username, req.Password)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, LoginResponse{
		Token:    token,
		AdminID:  admin.ID.String(),
		Username: admin.Username,
	})
}

// ChangePasswordRequest mirrors the password form fields.
type ChangePasswordRequest struct {
	Password  string `json:"password"`
	Password2 string `json:"password2"`
}

func (h *AdminHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	principal, ok := auth.PrincipalFrom(r.Context())
	if !ok {
		writeError(w, errors.ErrUnauthorized)
		return
	}

	var req ChangePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.NewAppError(errors.InvalidInput, "invalid request body").WithDetails(err.Error()))
		return
	}

	err := h.adminService.ChangePassword(principal.AdminID, &service.ChangePasswordRequest{
		Password:  req.Password,
		Password2: req.Password2,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSONMessage(w, http.StatusOK, "password updated successfully", nil)
}
