package repository

import (
	"database/sql"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"

	"ledger-admin/internal/domain"
	"ledger-admin/internal/errors"
)

const transactionColumns = `id, account_id, account_email, type, amount, status, created_at, updated_at`

type transactionRepository struct {
	db     SQLExecutor
	logger *slog.Logger
}

func NewTransactionRepository(db SQLExecutor, logger *slog.Logger) domain.TransactionRepository {
	return &transactionRepository{
		db:     db,
		logger: logger,
	}
}

func (r *transactionRepository) CreateTransaction(tx *domain.Transaction) error {
	query := `
		INSERT INTO transactions (` + transactionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	now := time.Now()
	_, err := r.db.Exec(
		query,
		tx.ID,
		tx.AccountID,
		tx.AccountEmail,
		tx.Type,
		tx.Amount.String(),
		tx.Status,
		now,
		now,
	)

	if err != nil {
		r.logger.Error("Failed to create transaction",
			"account_id", tx.AccountID,
			"type", tx.Type,
			"amount", tx.Amount,
			"error", err)
		return errors.NewAppError(errors.InternalError, "failed to create transaction").WithDetails(err.Error())
	}

	tx.CreatedAt = now
	tx.UpdatedAt = now
	r.logger.Info("Transaction created", "transaction_id", tx.ID, "type", tx.Type)
	return nil
}

func (r *transactionRepository) GetTransactionByID(id uuid.UUID) (*domain.Transaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions WHERE id = $1
	`

	transaction, err := scanTransactionRow(r.db.QueryRow(query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		r.logger.Error("Failed to get transaction", "transaction_id", id, "error", err)
		return nil, errors.NewAppError(errors.InternalError, "failed to get transaction").WithDetails(err.Error())
	}
	return transaction, nil
}

func (r *transactionRepository) ListTransactions() ([]*domain.Transaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions ORDER BY created_at DESC
	`

	return r.queryTransactions(query)
}

func (r *transactionRepository) ListPendingByTypes(types ...string) ([]*domain.Transaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions
		WHERE status = $1 AND type = ANY($2)
		ORDER BY created_at DESC
	`

	return r.queryTransactions(query, domain.StatusPending, pq.Array(types))
}

func (r *transactionRepository) queryTransactions(query string, args ...interface{}) ([]*domain.Transaction, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		r.logger.Error("Failed to list transactions", "error", err)
		return nil, errors.NewAppError(errors.InternalError, "failed to list transactions").WithDetails(err.Error())
	}
	defer rows.Close()

	transactions := make([]*domain.Transaction, 0)
	for rows.Next() {
		transaction, err := scanTransactionRow(rows)
		if err != nil {
			r.logger.Error("Failed to scan transaction row", "error", err)
			return nil, errors.NewAppError(errors.InternalError, "failed to scan transaction").WithDetails(err.Error())
		}
		transactions = append(transactions, transaction)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.NewAppError(errors.InternalError, "failed to iterate transactions").WithDetails(err.Error())
	}

	return transactions, nil
}

func scanTransactionRow(row rowScanner) (*domain.Transaction, error) {
	var transaction domain.Transaction
	var amountStr string

	err := row.Scan(
		&transaction.ID,
		&transaction.AccountID,
		&transaction.AccountEmail,
		&transaction.Type,
		&amountStr,
		&transaction.Status,
		&transaction.CreatedAt,
		&transaction.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	amount, err := decimal.NewFromString(amountStr)
	if err != nil {
		return nil, err
	}
	transaction.Amount = amount

	return &transaction, nil
}

func (r *transactionRepository) UpdateTransactionStatus(id uuid.UUID, status string) error {
	// Only pending rows may flip, so a concurrent approval of the same
	// record stays a no-op at the database level too.
	query := `UPDATE transactions SET status = $1, updated_at = $2 WHERE id = $3 AND status = $4`

	_, err := r.db.Exec(query, status, time.Now(), id, domain.StatusPending)
	if err != nil {
		r.logger.Error("Failed to update transaction status",
			"transaction_id", id, "status", status, "error", err)
		return errors.NewAppError(errors.InternalError, "failed to update transaction status").WithDetails(err.Error())
	}

	r.logger.Info("Transaction status updated", "transaction_id", id, "status", status)
	return nil
}
