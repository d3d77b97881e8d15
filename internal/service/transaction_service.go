package service

import (
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"ledger-admin/internal/domain"
	"ledger-admin/internal/errors"
)

type TransactionService struct {
	store  domain.Store
	logger *slog.Logger
}

func NewTransactionService(store domain.Store, logger *slog.Logger) *TransactionService {
	return &TransactionService{
		store:  store,
		logger: logger,
	}
}

// PendingDeposits lists deposit-side records awaiting approval. Admin
// deposits are stored as "Credit", customer deposits as "deposit"; the
// queue matches both so neither goes invisible.
func (s *TransactionService) PendingDeposits() ([]*domain.Transaction, error) {
	return s.store.Transaction().ListPendingByTypes(domain.TypeDeposit, domain.TypeCredit)
}

// PendingWithdrawals lists withdrawal records awaiting approval. This
// service never creates them; the customer flow does.
func (s *TransactionService) PendingWithdrawals() ([]*domain.Transaction, error) {
	return s.store.Transaction().ListPendingByTypes(domain.TypeWithdraw)
}

// ApproveDeposit flips a pending record to approved. The balance moved
// when the record was created, so approval is a pure status change and
// approving an already-approved record is a no-op.
func (s *TransactionService) ApproveDeposit(transactionID string) (*domain.Transaction, error) {
	id, err := uuid.Parse(transactionID)
	if err != nil {
		return nil, errors.NewAppError(errors.InvalidInput, "invalid transaction id").WithDetails(err.Error())
	}

	transaction, err := s.store.Transaction().GetTransactionByID(id)
	if err != nil {
		return nil, err
	}
	if transaction == nil {
		return nil, errors.ErrTransactionNotFound
	}

	if transaction.Status == domain.StatusApproved {
		s.logger.Info("Transaction already approved", "transaction_id", id)
		return transaction, nil
	}

	if err := s.store.Transaction().UpdateTransactionStatus(id, domain.StatusApproved); err != nil {
		return nil, err
	}

	transaction.Status = domain.StatusApproved
	s.logger.Info("Deposit approved", "transaction_id", id)
	return transaction, nil
}

// DepositRequest carries the raw deposit form fields.
type DepositRequest struct {
	AccountID string
	Amount    string
	Debt      string
}

// CreateDeposit records an admin-initiated credit and adjusts the
// account in the same database transaction: the record insert and the
// balance/debt/totals update commit or roll back together.
func (s *TransactionService) CreateDeposit(req *DepositRequest) (*domain.Transaction, error) {
	if strings.TrimSpace(req.Amount) == "" ||
		strings.TrimSpace(req.AccountID) == "" ||
		strings.TrimSpace(req.Debt) == "" {
		return nil, errors.ErrMissingFields
	}

	accountID, err := parseAccountID(strings.TrimSpace(req.AccountID))
	if err != nil {
		return nil, err
	}

	amount, err := decimal.NewFromString(strings.TrimSpace(req.Amount))
	if err != nil {
		return nil, errors.NewAppError(errors.InvalidAmount, "amount must be numeric").WithDetails(err.Error())
	}
	if !amount.IsPositive() {
		return nil, errors.ErrInvalidAmount
	}

	debt, err := decimal.NewFromString(strings.TrimSpace(req.Debt))
	if err != nil {
		return nil, errors.NewAppError(errors.InvalidAmount, "debt must be numeric").WithDetails(err.Error())
	}

	transaction := &domain.Transaction{
		ID:     uuid.New(),
		Type:   domain.TypeCredit,
		Amount: amount,
		Status: domain.StatusPending,
	}

	err = s.store.WithTransaction(func(txStore domain.Store) error {
		account, err := txStore.Account().GetAccountForUpdate(accountID)
		if err != nil {
			return err
		}

		transaction.AccountID = account.ID
		transaction.AccountEmail = account.Email

		if err := txStore.Transaction().CreateTransaction(transaction); err != nil {
			return err
		}

		upd := domain.DepositUpdate{
			Balance:       account.Balance.Add(amount),
			ActiveDeposit: amount,
			Debt:          debt,
			TotalDeposit:  account.TotalDeposit.Add(amount),
		}
		return txStore.Account().ApplyDeposit(accountID, upd)
	})
	if err != nil {
		s.logger.Error("Deposit failed", "account_id", accountID, "amount", amount, "error", err)
		return nil, err
	}

	s.logger.Info("Deposit recorded", "transaction_id", transaction.ID, "account_id", accountID, "amount", amount)
	return transaction, nil
}
