package errors

import (
	"fmt"
	"net/http"
)

type ErrorCode string

const (
	AccountNotFound     ErrorCode = "account_not_found"
	TransactionNotFound ErrorCode = "transaction_not_found"
	AdminNotFound       ErrorCode = "admin_not_found"
	InvalidInput        ErrorCode = "invalid_input"
	InvalidAmount       ErrorCode = "invalid_amount"
	InvalidCredentials  ErrorCode = "invalid_credentials"
	PasswordMismatch    ErrorCode = "password_mismatch"
	PasswordTooShort    ErrorCode = "password_too_short"
	Unauthorized        ErrorCode = "unauthorized"
	InternalError       ErrorCode = "internal_error"
)

type AppError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Details string    `json:"details,omitempty"`
}

func (e AppError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewAppError(code ErrorCode, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

func NewAppErrorf(code ErrorCode, format string, args ...interface{}) *AppError {
	return &AppError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

func (e *AppError) WithDetails(details string) *AppError {
	e.Details = details
	return e
}

// HTTPStatus maps the error code to a response status.
func (e *AppError) HTTPStatus() int {
	switch e.Code {
	case AccountNotFound, TransactionNotFound, AdminNotFound:
		return http.StatusNotFound
	case InvalidInput, InvalidAmount, PasswordMismatch, PasswordTooShort:
		return http.StatusBadRequest
	case InvalidCredentials, Unauthorized:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// Predefined errors for common cases. The validation messages mirror
// the flash messages the back office shows to operators.
var (
	ErrAccountNotFound        = NewAppError(AccountNotFound, "account not found")
	ErrTransactionNotFound    = NewAppError(TransactionNotFound, "transaction not found")
	ErrAdminNotFound          = NewAppError(AdminNotFound, "admin not found")
	ErrMissingFields          = NewAppError(InvalidInput, "please fill all fields")
	ErrInvalidAmount          = NewAppError(InvalidAmount, "invalid amount")
	ErrInvalidCredentials     = NewAppError(InvalidCredentials, "invalid credentials")
	ErrPasswordMismatch       = NewAppError(PasswordMismatch, "both passwords must be same")
	ErrPasswordTooShort       = NewAppError(PasswordTooShort, "password too short")
	ErrUnauthorized           = NewAppError(Unauthorized, "authentication required")
	ErrCannotBeginTransaction = NewAppError(InternalError, "cannot begin transaction on this executor")
)
