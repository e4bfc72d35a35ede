package repository

import (
	"context"

	"travel/internal/domain"
)

// TripRepository defines the persistence operations for trips.
type TripRepository interface {
	// Create persists a new trip and sets its ID.
	Create(ctx context.Context, trip *domain.Trip) error

	// GetByID retrieves a trip by ID.
	GetByID(ctx context.Context, id string) (*domain.Trip, error)

	// GetAll retrieves the whole catalog. Invalid documents are skipped.
	GetAll(ctx context.Context) ([]domain.Trip, error)

	// Update replaces every field of an existing trip.
	Update(ctx context.Context, trip *domain.Trip) error

	// Delete removes a trip.
	Delete(ctx context.Context, id string) error
}
