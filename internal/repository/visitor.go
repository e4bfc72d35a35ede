package repository

import (
	"context"

	"travel/internal/domain"
)

// VisitorRepository defines the persistence operations for site visitors.
type VisitorRepository interface {
	// Touch creates or refreshes the visitor record.
	Touch(ctx context.Context, v *domain.Visitor) error

	// GetAll retrieves all visitors.
	GetAll(ctx context.Context) ([]domain.Visitor, error)
}
