package documents

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"travel/internal/domain"
	"travel/internal/repository"
)

// submittedAtField orders submissions; it must match the json tag below.
const submittedAtField = "submittedAt"

type contactRecord struct {
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone,omitempty"`
	Message     string    `json:"message"`
	SubmittedAt Timestamp `json:"submittedAt"`
	Read        bool      `json:"read"`
}

type readPatch struct {
	Read bool `json:"read"`
}

func decodeContact(doc repository.Document) (domain.ContactSubmission, error) {
	var r contactRecord
	var sub domain.ContactSubmission
	err := decode(doc, &r, func() error {
		sub = domain.ContactSubmission{
			ID:          doc.ID,
			Name:        r.Name,
			Email:       r.Email,
			Phone:       r.Phone,
			Message:     r.Message,
			SubmittedAt: orDefault(r.SubmittedAt, doc.CreatedAt),
			Read:        r.Read,
		}
		return sub.Validate()
	})
	return sub, err
}

// ContactRepository stores submissions in the contactSubmissions collection.
type ContactRepository struct {
	store repository.DocumentStore
	log   logrus.FieldLogger
}

// NewContactRepository creates a new contact submission repository.
func NewContactRepository(store repository.DocumentStore, log logrus.FieldLogger) *ContactRepository {
	return &ContactRepository{store: store, log: log}
}

// Create persists a new submission and sets its ID.
func (r *ContactRepository) Create(ctx context.Context, sub *domain.ContactSubmission) error {
	id, err := r.store.Create(ctx, repository.CollectionContactSubmissions, contactRecord{
		Name:        sub.Name,
		Email:       sub.Email,
		Phone:       sub.Phone,
		Message:     sub.Message,
		SubmittedAt: NewTimestamp(sub.SubmittedAt),
		Read:        sub.Read,
	})
	if err != nil {
		return err
	}
	sub.ID = id
	return nil
}

// GetAll returns submissions newest first.
func (r *ContactRepository) GetAll(ctx context.Context) ([]domain.ContactSubmission, error) {
	docs, err := r.store.ListOrdered(ctx, repository.CollectionContactSubmissions, submittedAtField, true)
	if err != nil {
		return nil, fmt.Errorf("list contact submissions: %w", err)
	}
	return decodeAll(r.log, repository.CollectionContactSubmissions, docs, decodeContact), nil
}

// MarkRead flags a submission as read.
func (r *ContactRepository) MarkRead(ctx context.Context, id string) error {
	return r.store.Update(ctx, repository.CollectionContactSubmissions, id, readPatch{Read: true})
}

// Delete removes a submission.
func (r *ContactRepository) Delete(ctx context.Context, id string) error {
	return r.store.Delete(ctx, repository.CollectionContactSubmissions, id)
}

// Watch streams the newest-first list on every change until ctx is done.
func (r *ContactRepository) Watch(ctx context.Context) (<-chan []domain.ContactSubmission, error) {
	docs, err := r.store.SubscribeOrdered(ctx, repository.CollectionContactSubmissions, submittedAtField, true)
	if err != nil {
		return nil, err
	}

	out := make(chan []domain.ContactSubmission)
	go func() {
		defer close(out)
		for batch := range docs {
			subs := decodeAll(r.log, repository.CollectionContactSubmissions, batch, decodeContact)
			select {
			case out <- subs:
			case <-ctx.Done():
				return
			}
		}
	}()
	return out, nil
}

var _ repository.ContactRepository = (*ContactRepository)(nil)
