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

const accountColumns = `id, email, balance, debt, investment_plan, active_deposit, total_deposit, verify_status, created_at, updated_at`

type accountRepository struct {
	db     SQLExecutor
	logger *slog.Logger
}

func NewAccountRepository(db SQLExecutor, logger *slog.Logger) domain.AccountRepository {
	return &accountRepository{
		db:     db,
		logger: logger,
	}
}

func (r *accountRepository) CreateAccount(account *domain.Account) error {
	query := `
		INSERT INTO accounts (` + accountColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	now := time.Now()
	_, err := r.db.Exec(
		query,
		account.ID,
		account.Email,
		account.Balance.String(),
		account.Debt.String(),
		account.InvestmentPlan,
		account.ActiveDeposit.String(),
		account.TotalDeposit.String(),
		account.VerifyStatus,
		now,
		now,
	)

	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			if pqErr.Code == "23505" { // unique_violation
				r.logger.Warn("Duplicate account creation attempt", "email", account.Email)
				return errors.NewAppError(errors.InvalidInput, "account already exists")
			}
		}
		r.logger.Error("Failed to create account", "account_id", account.ID, "error", err)
		return errors.NewAppError(errors.InternalError, "failed to create account").WithDetails(err.Error())
	}

	account.CreatedAt = now
	account.UpdatedAt = now
	return nil
}

func (r *accountRepository) ListAccounts() ([]*domain.Account, error) {
	query := `
		SELECT ` + accountColumns + `
		FROM accounts ORDER BY created_at
	`

	rows, err := r.db.Query(query)
	if err != nil {
		r.logger.Error("Failed to list accounts", "error", err)
		return nil, errors.NewAppError(errors.InternalError, "failed to list accounts").WithDetails(err.Error())
	}
	defer rows.Close()

	accounts := make([]*domain.Account, 0)
	for rows.Next() {
		account, err := scanAccountRow(rows)
		if err != nil {
			r.logger.Error("Failed to scan account row", "error", err)
			return nil, errors.NewAppError(errors.InternalError, "failed to scan account").WithDetails(err.Error())
		}
		accounts = append(accounts, account)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.NewAppError(errors.InternalError, "failed to iterate accounts").WithDetails(err.Error())
	}

	return accounts, nil
}

func (r *accountRepository) GetAccount(id uuid.UUID) (*domain.Account, error) {
	query := `
		SELECT ` + accountColumns + `
		FROM accounts WHERE id = $1
	`

	return r.scanAccount(query, id)
}

func (r *accountRepository) GetAccountForUpdate(id uuid.UUID) (*domain.Account, error) {
	query := `
		SELECT ` + accountColumns + `
		FROM accounts WHERE id = $1 FOR UPDATE
	`

	return r.scanAccount(query, id)
}

func (r *accountRepository) scanAccount(query string, id uuid.UUID) (*domain.Account, error) {
	account, err := scanAccountRow(r.db.QueryRow(query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			r.logger.Warn("Account not found", "account_id", id)
			return nil, errors.ErrAccountNotFound
		}
		r.logger.Error("Failed to get account", "account_id", id, "error", err)
		return nil, errors.NewAppError(errors.InternalError, "failed to get account").WithDetails(err.Error())
	}
	return account, nil
}

// rowScanner covers both sql.Row and sql.Rows.
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanAccountRow(row rowScanner) (*domain.Account, error) {
	var account domain.Account
	var balanceStr, debtStr, activeStr, totalStr string

	err := row.Scan(
		&account.ID,
		&account.Email,
		&balanceStr,
		&debtStr,
		&account.InvestmentPlan,
		&activeStr,
		&totalStr,
		&account.VerifyStatus,
		&account.CreatedAt,
		&account.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	for _, field := range []struct {
		dst *decimal.Decimal
		src string
	}{
		{&account.Balance, balanceStr},
		{&account.Debt, debtStr},
		{&account.ActiveDeposit, activeStr},
		{&account.TotalDeposit, totalStr},
	} {
		value, err := decimal.NewFromString(field.src)
		if err != nil {
			return nil, err
		}
		*field.dst = value
	}

	return &account, nil
}

func (r *accountRepository) UpdateAccountFields(id uuid.UUID, upd domain.AccountUpdate) error {
	query := `
		UPDATE accounts
		SET balance = $1, debt = $2, investment_plan = $3, verify_status = $4, updated_at = $5
		WHERE id = $6
	`

	result, err := r.db.Exec(query,
		upd.Balance.String(),
		upd.Debt.String(),
		upd.InvestmentPlan,
		upd.VerifyStatus,
		time.Now(),
		id,
	)
	if err != nil {
		r.logger.Error("Failed to update account", "account_id", id, "error", err)
		return errors.NewAppError(errors.InternalError, "failed to update account").WithDetails(err.Error())
	}

	return r.requireRow(result, id)
}

func (r *accountRepository) ApplyDeposit(id uuid.UUID, upd domain.DepositUpdate) error {
	query := `
		UPDATE accounts
		SET balance = $1, active_deposit = $2, debt = $3, total_deposit = $4, updated_at = $5
		WHERE id = $6
	`

	result, err := r.db.Exec(query,
		upd.Balance.String(),
		upd.ActiveDeposit.String(),
		upd.Debt.String(),
		upd.TotalDeposit.String(),
		time.Now(),
		id,
	)
	if err != nil {
		r.logger.Error("Failed to apply deposit to account", "account_id", id, "error", err)
		return errors.NewAppError(errors.InternalError, "failed to apply deposit").WithDetails(err.Error())
	}

	return r.requireRow(result, id)
}

func (r *accountRepository) requireRow(result sql.Result, id uuid.UUID) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return errors.NewAppError(errors.InternalError, "failed to get rows affected").WithDetails(err.Error())
	}
	if rowsAffected == 0 {
		r.logger.Warn("No account found to update", "account_id", id)
		return errors.ErrAccountNotFound
	}
	return nil
}

func (r *accountRepository) DeleteAccount(id uuid.UUID) error {
	query := `DELETE FROM accounts WHERE id = $1`

	result, err := r.db.Exec(query, id)
	if err != nil {
		r.logger.Error("Failed to delete account", "account_id", id, "error", err)
		return errors.NewAppError(errors.InternalError, "failed to delete account").WithDetails(err.Error())
	}

	// Deleting an unknown id is deliberately not an error; transaction
	// history is kept as-is either way.
	if rows, err := result.RowsAffected(); err == nil && rows == 0 {
		r.logger.Warn("Delete matched no account", "account_id", id)
	}
	return nil
}
