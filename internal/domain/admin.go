package domain

import (
	"time"

	"github.com/google/uuid"
)

// Admin is a back-office operator. Only the credential hash is ever
// mutated through this service.
type Admin struct {
	ID           uuid.UUID `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type AdminRepository interface {
	CreateAdmin(admin *Admin) error
	GetAdminByID(id uuid.UUID) (*Admin, error)
	GetAdminByUsername(username string) (*Admin, error)
	UpdateAdminPassword(id uuid.UUID, passwordHash string) error
}
