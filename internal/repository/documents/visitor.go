package documents

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"travel/internal/domain"
	"travel/internal/repository"
)

type visitorRecord struct {
	LastSeen Timestamp `json:"lastSeen"`
	Browser  string    `json:"browser"`
	OS       string    `json:"os"`
	Mobile   bool      `json:"mobile"`
	Bot      bool      `json:"bot"`
}

func decodeVisitor(doc repository.Document) (domain.Visitor, error) {
	var r visitorRecord
	var v domain.Visitor
	err := decode(doc, &r, func() error {
		if r.LastSeen.IsZero() {
			return errors.New("lastSeen is required")
		}
		v = domain.Visitor{
			ID:       doc.ID,
			LastSeen: r.LastSeen.Time,
			Browser:  r.Browser,
			OS:       r.OS,
			Mobile:   r.Mobile,
			Bot:      r.Bot,
		}
		return nil
	})
	return v, err
}

// VisitorRepository stores visitors in the visitors collection, keyed by visitor id.
type VisitorRepository struct {
	store repository.DocumentStore
	log   logrus.FieldLogger
}

// NewVisitorRepository creates a new visitor repository.
func NewVisitorRepository(store repository.DocumentStore, log logrus.FieldLogger) *VisitorRepository {
	return &VisitorRepository{store: store, log: log}
}

// Touch creates or refreshes the visitor record.
func (r *VisitorRepository) Touch(ctx context.Context, v *domain.Visitor) error {
	if v.ID == "" {
		return errors.New("visitor id is required")
	}
	return r.store.Put(ctx, repository.CollectionVisitors, v.ID, visitorRecord{
		LastSeen: NewTimestamp(v.LastSeen),
		Browser:  v.Browser,
		OS:       v.OS,
		Mobile:   v.Mobile,
		Bot:      v.Bot,
	})
}

// GetAll retrieves all visitors.
func (r *VisitorRepository) GetAll(ctx context.Context) ([]domain.Visitor, error) {
	docs, err := r.store.ListAll(ctx, repository.CollectionVisitors)
	if err != nil {
		return nil, fmt.Errorf("list visitors: %w", err)
	}
	return decodeAll(r.log, repository.CollectionVisitors, docs, decodeVisitor), nil
}

var _ repository.VisitorRepository = (*VisitorRepository)(nil)
