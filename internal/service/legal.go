package service

import (
	"context"
	"time"

	"travel/internal/domain"
	"travel/internal/repository"
)

// LegalService manages the legal pages linked from the site footer.
type LegalService struct {
	repo repository.LegalPageRepository
	now  func() time.Time
}

// NewLegalService creates a new LegalService.
func NewLegalService(repo repository.LegalPageRepository) *LegalService {
	return &LegalService{repo: repo, now: time.Now}
}

// LegalPageInput contains the editable fields of a legal page.
type LegalPageInput struct {
	Title   string
	Content string
}

// List returns every legal page.
func (s *LegalService) List(ctx context.Context) ([]domain.LegalPage, error) {
	return s.repo.GetAll(ctx)
}

// Get returns a single legal page.
func (s *LegalService) Get(ctx context.Context, id string) (*domain.LegalPage, error) {
	if id == "" {
		return nil, ErrInvalidPageID
	}
	return s.repo.GetByID(ctx, id)
}

// Create validates and stores a new legal page.
func (s *LegalService) Create(ctx context.Context, in LegalPageInput) (*domain.LegalPage, error) {
	page := &domain.LegalPage{Title: in.Title, Content: in.Content, UpdatedAt: s.now().UTC()}
	if err := page.Validate(); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, page); err != nil {
		return nil, err
	}
	return page, nil
}

// Update replaces the title and content of a legal page.
func (s *LegalService) Update(ctx context.Context, id string, in LegalPageInput) (*domain.LegalPage, error) {
	if id == "" {
		return nil, ErrInvalidPageID
	}
	page := &domain.LegalPage{ID: id, Title: in.Title, Content: in.Content, UpdatedAt: s.now().UTC()}
	if err := page.Validate(); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, page); err != nil {
		return nil, err
	}
	return page, nil
}

// Delete removes a legal page.
func (s *LegalService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return ErrInvalidPageID
	}
	return s.repo.Delete(ctx, id)
}
