package repository

import (
	"context"

	"travel/internal/domain"
)

// AdminRepository defines the persistence operations for administrator accounts.
type AdminRepository interface {
	// GetByEmail returns ErrNotFound for unknown emails.
	GetByEmail(ctx context.Context, email string) (*domain.Admin, error)

	// Save creates or replaces the admin keyed by its normalized email.
	Save(ctx context.Context, admin *domain.Admin) error
}
