package repository

import (
	"context"

	"travel/internal/domain"
)

// ContactRepository defines the persistence operations for contact submissions.
type ContactRepository interface {
	// Create persists a new submission and sets its ID.
	Create(ctx context.Context, sub *domain.ContactSubmission) error

	// GetAll returns submissions newest first.
	GetAll(ctx context.Context) ([]domain.ContactSubmission, error)

	// MarkRead flags a submission as read.
	MarkRead(ctx context.Context, id string) error

	// Delete removes a submission.
	Delete(ctx context.Context, id string) error

	// Watch streams the newest-first list on every change until ctx is done.
	Watch(ctx context.Context) (<-chan []domain.ContactSubmission, error)
}
