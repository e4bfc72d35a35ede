package documents

import (
	"context"
	"errors"

	"travel/internal/domain"
	"travel/internal/repository"
)

type adminRecord struct {
	PasswordHash string    `json:"passwordHash"`
	CreatedAt    Timestamp `json:"createdAt"`
}

// AdminRepository stores administrators in the admins collection, keyed by normalized email.
type AdminRepository struct {
	store repository.DocumentStore
}

// NewAdminRepository creates a new admin repository.
func NewAdminRepository(store repository.DocumentStore) *AdminRepository {
	return &AdminRepository{store: store}
}

// GetByEmail returns repository.ErrNotFound for unknown emails.
func (r *AdminRepository) GetByEmail(ctx context.Context, email string) (*domain.Admin, error) {
	doc, err := r.store.GetByID(ctx, repository.CollectionAdmins, domain.NormalizeEmail(email))
	if err != nil {
		return nil, err
	}

	var rec adminRecord
	var admin domain.Admin
	err = decode(*doc, &rec, func() error {
		if rec.PasswordHash == "" {
			return errors.New("passwordHash is required")
		}
		admin = domain.Admin{
			Email:        doc.ID,
			PasswordHash: rec.PasswordHash,
			CreatedAt:    orDefault(rec.CreatedAt, doc.CreatedAt),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &admin, nil
}

// Save creates or replaces the admin.
func (r *AdminRepository) Save(ctx context.Context, admin *domain.Admin) error {
	admin.Email = domain.NormalizeEmail(admin.Email)
	if admin.Email == "" {
		return errors.New("admin email is required")
	}
	return r.store.Put(ctx, repository.CollectionAdmins, admin.Email, adminRecord{
		PasswordHash: admin.PasswordHash,
		CreatedAt:    NewTimestamp(admin.CreatedAt),
	})
}

var _ repository.AdminRepository = (*AdminRepository)(nil)
