package documents

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"travel/internal/domain"
	"travel/internal/repository"
)

type legalRecord struct {
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	UpdatedAt Timestamp `json:"updatedAt"`
}

func decodeLegalPage(doc repository.Document) (domain.LegalPage, error) {
	var r legalRecord
	var page domain.LegalPage
	err := decode(doc, &r, func() error {
		page = domain.LegalPage{
			ID:        doc.ID,
			Title:     r.Title,
			Content:   r.Content,
			UpdatedAt: orDefault(r.UpdatedAt, doc.UpdatedAt),
		}
		return page.Validate()
	})
	return page, err
}

// LegalPageRepository stores legal pages in the legalPages collection.
type LegalPageRepository struct {
	store repository.DocumentStore
	log   logrus.FieldLogger
}

// NewLegalPageRepository creates a new legal page repository.
func NewLegalPageRepository(store repository.DocumentStore, log logrus.FieldLogger) *LegalPageRepository {
	return &LegalPageRepository{store: store, log: log}
}

func (r *LegalPageRepository) Create(ctx context.Context, page *domain.LegalPage) error {
	id, err := r.store.Create(ctx, repository.CollectionLegalPages, legalRecord{
		Title:     page.Title,
		Content:   page.Content,
		UpdatedAt: NewTimestamp(page.UpdatedAt),
	})
	if err != nil {
		return err
	}
	page.ID = id
	return nil
}

func (r *LegalPageRepository) GetByID(ctx context.Context, id string) (*domain.LegalPage, error) {
	doc, err := r.store.GetByID(ctx, repository.CollectionLegalPages, id)
	if err != nil {
		return nil, err
	}
	page, err := decodeLegalPage(*doc)
	if err != nil {
		return nil, err
	}
	return &page, nil
}

func (r *LegalPageRepository) GetAll(ctx context.Context) ([]domain.LegalPage, error) {
	docs, err := r.store.ListAll(ctx, repository.CollectionLegalPages)
	if err != nil {
		return nil, fmt.Errorf("list legal pages: %w", err)
	}
	return decodeAll(r.log, repository.CollectionLegalPages, docs, decodeLegalPage), nil
}

func (r *LegalPageRepository) Update(ctx context.Context, page *domain.LegalPage) error {
	return r.store.Update(ctx, repository.CollectionLegalPages, page.ID, legalRecord{
		Title:     page.Title,
		Content:   page.Content,
		UpdatedAt: NewTimestamp(page.UpdatedAt),
	})
}

func (r *LegalPageRepository) Delete(ctx context.Context, id string) error {
	return r.store.Delete(ctx, repository.CollectionLegalPages, id)
}

var _ repository.LegalPageRepository = (*LegalPageRepository)(nil)
