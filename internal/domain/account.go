package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Verification statuses an account can carry.
const (
	VerifyUnverified = "unverified"
	VerifyPending    = "pending"
	VerifyVerified   = "verified"
)

// Account is a customer ledger entry. Money fields use decimals and are
// persisted as strings to avoid floating point drift.
type Account struct {
	ID             uuid.UUID       `json:"id"`
	Email          string          `json:"email"`
	Balance        decimal.Decimal `json:"balance"`
	Debt           decimal.Decimal `json:"debt"`
	InvestmentPlan string          `json:"investment_plans"`
	ActiveDeposit  decimal.Decimal `json:"active_deposit"`
	TotalDeposit   decimal.Decimal `json:"total_deposit"`
	VerifyStatus   string          `json:"verify_status"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// AccountUpdate carries the four editor-controlled fields. Nothing else
// on the account may be touched by an edit.
type AccountUpdate struct {
	Balance        decimal.Decimal
	Debt           decimal.Decimal
	InvestmentPlan string
	VerifyStatus   string
}

// DepositUpdate carries the account mutation applied alongside a credit
// record inside the same database transaction.
type DepositUpdate struct {
	Balance       decimal.Decimal
	ActiveDeposit decimal.Decimal
	Debt          decimal.Decimal
	TotalDeposit  decimal.Decimal
}

// ValidVerifyStatus reports whether s is one of the known statuses.
func ValidVerifyStatus(s string) bool {
	switch s {
	case VerifyUnverified, VerifyPending, VerifyVerified:
		return true
	}
	return false
}

type AccountRepository interface {
	CreateAccount(account *Account) error
	ListAccounts() ([]*Account, error)
	GetAccount(id uuid.UUID) (*Account, error)
	GetAccountForUpdate(id uuid.UUID) (*Account, error)
	UpdateAccountFields(id uuid.UUID, upd AccountUpdate) error
	ApplyDeposit(id uuid.UUID, upd DepositUpdate) error
	// DeleteAccount removes the account if it exists. Deleting an
	// unknown id is not an error and does not cascade to transactions.
	DeleteAccount(id uuid.UUID) error
}
