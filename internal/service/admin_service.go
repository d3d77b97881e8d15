package service

import (
	"log/slog"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"ledger-admin/internal/auth"
	"ledger-admin/internal/domain"
	"ledger-admin/internal/errors"
)

// Minimum admin password length, matching the back-office rule.
const minPasswordLength = 6

type AdminService struct {
	store  domain.Store
	tokens *auth.TokenManager
	logger *slog.Logger
}

func NewAdminService(store domain.Store, tokens *auth.TokenManager, logger *slog.Logger) *AdminService {
	return &AdminService{
		store:  store,
		tokens: tokens,
		logger: logger,
	}
}

// Login verifies the credentials and issues a session token.
func (s *AdminService) Login(username, password string) (string, *domain.Admin, error) {
	if username == "" || password == "" {
		return "", nil, errors.ErrMissingFields
	}

	admin, err := s.store.Admin().GetAdminByUsername(username)
	if err != nil {
		if appErr, ok := err.(*errors.AppError); ok && appErr.Code == errors.AdminNotFound {
			s.logger.Warn("Login attempt for unknown admin", "username", username)
			return "", nil, errors.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)); err != nil {
		s.logger.Warn("Login attempt with wrong password", "username", username)
		return "", nil, errors.ErrInvalidCredentials
	}

	token, err := s.tokens.Generate(admin)
	if err != nil {
		return "", nil, errors.NewAppError(errors.InternalError, "failed to issue token").WithDetails(err.Error())
	}

	s.logger.Info("Admin logged in", "admin_id", admin.ID, "username", username)
	return token, admin, nil
}

// ChangePasswordRequest carries both password form fields.
type ChangePasswordRequest struct {
	Password  string
	Password2 string
}

// ChangePassword rotates the caller's credential hash. Checks run
// first-match-wins: missing fields, then mismatch, then length. No
// hash is computed before all checks pass.
func (s *AdminService) ChangePassword(adminID uuid.UUID, req *ChangePasswordRequest) error {
	if req.Password == "" || req.Password2 == "" {
		return errors.ErrMissingFields
	}
	if req.Password != req.Password2 {
		return errors.ErrPasswordMismatch
	}
	if len(req.Password) < minPasswordLength {
		return errors.ErrPasswordTooShort
	}

	if _, err := s.store.Admin().GetAdminByID(adminID); err != nil {
		return err
	}

	// Hash the confirmation field; the equality check above makes it
	// interchangeable with the first.
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password2), bcrypt.DefaultCost)
	if err != nil {
		return errors.NewAppError(errors.InternalError, "failed to hash password").WithDetails(err.Error())
	}

	if err := s.store.Admin().UpdateAdminPassword(adminID, string(hash)); err != nil {
		return err
	}

	s.logger.Info("Admin password changed", "admin_id", adminID)
	return nil
}

// EnsureAdmin creates the bootstrap admin when it does not exist yet.
// Used at startup; admin self-registration is out of scope.
func (s *AdminService) EnsureAdmin(username, password string) error {
	if username == "" || password == "" {
		return nil
	}

	_, err := s.store.Admin().GetAdminByUsername(username)
	if err == nil {
		return nil
	}
	if appErr, ok := err.(*errors.AppError); !ok || appErr.Code != errors.AdminNotFound {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return errors.NewAppError(errors.InternalError, "failed to hash password").WithDetails(err.Error())
	}

	admin := &domain.Admin{
		ID:           uuid.New(),
		Username:     username,
		PasswordHash: string(hash),
	}
	if err := s.store.Admin().CreateAdmin(admin); err != nil {
		return err
	}

	s.logger.Info("Bootstrap admin created", "username", username)
	return nil
}
