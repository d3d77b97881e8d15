package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Transaction types as stored. Admin-initiated deposits are recorded as
// "Credit"; "deposit" and "withdraw" records come from the customer
// flows outside this service.
const (
	TypeCredit   = "Credit"
	TypeDeposit  = "deposit"
	TypeWithdraw = "withdraw"
)

// Transaction lifecycle statuses.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
)

// Transaction is a logged deposit/withdrawal event. AccountEmail is a
// snapshot taken at creation time so the record stays readable after
// the account is deleted.
type Transaction struct {
	ID           uuid.UUID       `json:"id"`
	AccountID    uuid.UUID       `json:"account_id"`
	AccountEmail string          `json:"account"`
	Type         string          `json:"type"`
	Amount       decimal.Decimal `json:"amount"`
	Status       string          `json:"status"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

type TransactionRepository interface {
	CreateTransaction(tx *Transaction) error
	// GetTransactionByID returns (nil, nil) when no record matches.
	GetTransactionByID(id uuid.UUID) (*Transaction, error)
	ListTransactions() ([]*Transaction, error)
	ListPendingByTypes(types ...string) ([]*Transaction, error)
	// UpdateTransactionStatus moves a still-pending record to status.
	// Records past pending are left untouched.
	UpdateTransactionStatus(id uuid.UUID, status string) error
}
