package repository

import (
	"context"

	"travel/internal/domain"
)

// LegalPageRepository defines the persistence operations for legal pages.
type LegalPageRepository interface {
	Create(ctx context.Context, page *domain.LegalPage) error
	GetByID(ctx context.Context, id string) (*domain.LegalPage, error)
	GetAll(ctx context.Context) ([]domain.LegalPage, error)
	Update(ctx context.Context, page *domain.LegalPage) error
	Delete(ctx context.Context, id string) error
}
