package repository

import (
	"database/sql"
	"log/slog"

	"ledger-admin/internal/domain"
	"ledger-admin/internal/errors"
)

// Store implements domain.Store over Postgres. Repositories returned
// from it share the store's current executor, which is either the
// connection pool or an open transaction.
type Store struct {
	executor SQLExecutor
	logger   *slog.Logger
}

var _ domain.Store = (*Store)(nil)

// NewStore creates a Store bound to the connection pool.
func NewStore(db *sql.DB, logger *slog.Logger) *Store {
	return &Store{
		executor: db,
		logger:   logger,
	}
}

// Account returns an AccountRepository using the current executor.
func (s *Store) Account() domain.AccountRepository {
	return NewAccountRepository(s.executor, s.logger)
}

// Transaction returns a TransactionRepository using the current executor.
func (s *Store) Transaction() domain.TransactionRepository {
	return NewTransactionRepository(s.executor, s.logger)
}

// Admin returns an AdminRepository using the current executor.
func (s *Store) Admin() domain.AdminRepository {
	return NewAdminRepository(s.executor, s.logger)
}

// WithTransaction executes fn within a database transaction. The store
// handed to fn issues repositories bound to that transaction.
func (s *Store) WithTransaction(fn func(domain.Store) error) error {
	// Only the pool can begin transactions; nesting is not supported.
	db, ok := s.executor.(*sql.DB)
	if !ok {
		return errors.ErrCannotBeginTransaction
	}

	tx, err := db.Begin()
	if err != nil {
		return err
	}

	txStore := &Store{
		executor: &TxWrapper{Tx: tx},
		logger:   s.logger,
	}

	defer func() {
		if p := recover(); p != nil {
			tx.Rollback()
			panic(p)
		}
	}()

	if err := fn(txStore); err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit()
}
