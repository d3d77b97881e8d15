package repository

import (
	"database/sql"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"ledger-admin/internal/domain"
	"ledger-admin/internal/errors"
)

type adminRepository struct {
	db     SQLExecutor
	logger *slog.Logger
}

func NewAdminRepository(db SQLExecutor, logger *slog.Logger) domain.AdminRepository {
	return &adminRepository{
		db:     db,
		logger: logger,
	}
}

func (r *adminRepository) CreateAdmin(admin *domain.Admin) error {
	query := `
		INSERT INTO admins (id, username, password_hash, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	now := time.Now()
	_, err := r.db.Exec(query, admin.ID, admin.Username, admin.PasswordHash, now, now)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			if pqErr.Code == "23505" { // unique_violation
				r.logger.Warn("Duplicate admin creation attempt", "username", admin.Username)
				return errors.NewAppError(errors.InvalidInput, "admin already exists")
			}
		}
		r.logger.Error("Failed to create admin", "username", admin.Username, "error", err)
		return errors.NewAppError(errors.InternalError, "failed to create admin").WithDetails(err.Error())
	}

	admin.CreatedAt = now
	admin.UpdatedAt = now
	return nil
}

func (r *adminRepository) GetAdminByID(id uuid.UUID) (*domain.Admin, error) {
	query := `
		SELECT id, username, password_hash, created_at, updated_at
		FROM admins WHERE id = $1
	`

	return r.scanAdmin(query, id)
}

func (r *adminRepository) GetAdminByUsername(username string) (*domain.Admin, error) {
	query := `
		SELECT id, username, password_hash, created_at, updated_at
		FROM admins WHERE username = $1
	`

	return r.scanAdmin(query, username)
}

func (r *adminRepository) scanAdmin(query string, arg interface{}) (*domain.Admin, error) {
	var admin domain.Admin

	err := r.db.QueryRow(query, arg).Scan(
		&admin.ID,
		&admin.Username,
		&admin.PasswordHash,
		&admin.CreatedAt,
		&admin.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, errors.ErrAdminNotFound
		}
		r.logger.Error("Failed to get admin", "error", err)
		return nil, errors.NewAppError(errors.InternalError, "failed to get admin").WithDetails(err.Error())
	}

	return &admin, nil
}

func (r *adminRepository) UpdateAdminPassword(id uuid.UUID, passwordHash string) error {
	query := `UPDATE admins SET password_hash = $1, updated_at = $2 WHERE id = $3`

	result, err := r.db.Exec(query, passwordHash, time.Now(), id)
	if err != nil {
		r.logger.Error("Failed to update admin password", "admin_id", id, "error", err)
		return errors.NewAppError(errors.InternalError, "failed to update admin password").WithDetails(err.Error())
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return errors.NewAppError(errors.InternalError, "failed to get rows affected").WithDetails(err.Error())
	}
	if rowsAffected == 0 {
		r.logger.Warn("No admin found to update", "admin_id", id)
		return errors.ErrAdminNotFound
	}

	r.logger.Info("Admin password updated", "admin_id", id)
	return nil
}
