package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"

	"travel/internal/repository"
)

// ChangeFeed broadcasts collection changes between server instances.
type ChangeFeed interface {
	Publish(ctx context.Context, collection string) error
	Subscribe(ctx context.Context, collection string) (<-chan struct{}, error)
}

// DocumentStore is a PostgreSQL implementation of repository.DocumentStore.
// Documents live in a single JSONB table keyed by (collection, id).
type DocumentStore struct {
	q    Querier
	feed ChangeFeed
	log  logrus.FieldLogger
}

// NewDocumentStore creates a new PostgreSQL document store. feed may be nil,
// in which case subscribers only receive the initial snapshot.
func NewDocumentStore(db *sqlx.DB, feed ChangeFeed, log logrus.FieldLogger) *DocumentStore {
	return &DocumentStore{q: db, feed: feed, log: log.WithField("component", "document_store")}
}

type documentRow struct {
	ID        string    `db:"id"`
	Data      []byte    `db:"data"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

func (r documentRow) toDocument() repository.Document {
	return repository.Document{
		ID:        r.ID,
		Data:      json.RawMessage(r.Data),
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

func toDocuments(rows []documentRow) []repository.Document {
	docs := make([]repository.Document, 0, len(rows))
	for _, r := range rows {
		docs = append(docs, r.toDocument())
	}
	return docs
}

// ListAll returns every document of the collection in insertion order.
func (s *DocumentStore) ListAll(ctx context.Context, collection string) ([]repository.Document, error) {
	query := `
		SELECT id, data, created_at, updated_at
		FROM documents WHERE collection = $1
		ORDER BY seq ASC
	`

	var rows []documentRow
	if err := s.q.SelectContext(ctx, &rows, query, collection); err != nil {
		return nil, fmt.Errorf("list %s: %w", collection, err)
	}
	return toDocuments(rows), nil
}

// ListOrdered returns every document ordered by a top-level data field.
// Ties keep insertion order.
func (s *DocumentStore) ListOrdered(ctx context.Context, collection, field string, desc bool) ([]repository.Document, error) {
	query := `
		SELECT id, data, created_at, updated_at
		FROM documents WHERE collection = $1
		ORDER BY data->>$2 ASC, seq ASC
	`
	if desc {
		query = `
		SELECT id, data, created_at, updated_at
		FROM documents WHERE collection = $1
		ORDER BY data->>$2 DESC, seq DESC
	`
	}

	var rows []documentRow
	if err := s.q.SelectContext(ctx, &rows, query, collection, field); err != nil {
		return nil, fmt.Errorf("list %s ordered by %s: %w", collection, field, err)
	}
	return toDocuments(rows), nil
}

// GetByID retrieves a document by ID.
func (s *DocumentStore) GetByID(ctx context.Context, collection, id string) (*repository.Document, error) {
	query := `
		SELECT id, data, created_at, updated_at
		FROM documents WHERE collection = $1 AND id = $2
	`

	var row documentRow
	if err := s.q.GetContext(ctx, &row, query, collection, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("get %s/%s: %w", collection, id, err)
	}

	doc := row.toDocument()
	return &doc, nil
}

// Create stores data under a new UUID.
func (s *DocumentStore) Create(ctx context.Context, collection string, data any) (string, error) {
	payload, err := json.Marshal(data)
	if err != nil {
		return "", fmt.Errorf("encode %s document: %w", collection, err)
	}

	id := uuid.New().String()
	query := `
		INSERT INTO documents (collection, id, data)
		VALUES ($1, $2, $3::jsonb)
	`
	if _, err := s.q.ExecContext(ctx, query, collection, id, payload); err != nil {
		return "", fmt.Errorf("create %s document: %w", collection, err)
	}

	s.publish(ctx, collection)
	return id, nil
}

// Put creates or replaces the document with the given ID.
func (s *DocumentStore) Put(ctx context.Context, collection, id string, data any) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("encode %s document: %w", collection, err)
	}

	query := `
		INSERT INTO documents (collection, id, data)
		VALUES ($1, $2, $3::jsonb)
		ON CONFLICT (collection, id)
		DO UPDATE SET data = EXCLUDED.data, updated_at = now()
	`
	if _, err := s.q.ExecContext(ctx, query, collection, id, payload); err != nil {
		return fmt.Errorf("put %s/%s: %w", collection, id, err)
	}

	s.publish(ctx, collection)
	return nil
}

// Update merges patch into the stored document. Top-level keys in patch win.
func (s *DocumentStore) Update(ctx context.Context, collection, id string, patch any) error {
	payload, err := json.Marshal(patch)
	if err != nil {
		return fmt.Errorf("encode %s patch: %w", collection, err)
	}

	query := `
		UPDATE documents
		SET data = data || $3::jsonb, updated_at = now()
		WHERE collection = $1 AND id = $2
	`
	result, err := s.q.ExecContext(ctx, query, collection, id, payload)
	if err != nil {
		return fmt.Errorf("update %s/%s: %w", collection, id, err)
	}
	if err := requireRow(result); err != nil {
		return err
	}

	s.publish(ctx, collection)
	return nil
}

// Delete removes a document.
func (s *DocumentStore) Delete(ctx context.Context, collection, id string) error {
	query := `DELETE FROM documents WHERE collection = $1 AND id = $2`

	result, err := s.q.ExecContext(ctx, query, collection, id)
	if err != nil {
		return fmt.Errorf("delete %s/%s: %w", collection, id, err)
	}
	if err := requireRow(result); err != nil {
		return err
	}

	s.publish(ctx, collection)
	return nil
}

// SubscribeOrdered sends the ordered collection now and again after every published change.
// A failed refresh is logged and skipped; the subscription stays open.
func (s *DocumentStore) SubscribeOrdered(ctx context.Context, collection, field string, desc bool) (<-chan []repository.Document, error) {
	var changes <-chan struct{}
	if s.feed != nil {
		ch, err := s.feed.Subscribe(ctx, collection)
		if err != nil {
			return nil, fmt.Errorf("subscribe %s: %w", collection, err)
		}
		changes = ch
	}

	out := make(chan []repository.Document, 1)
	go func() {
		defer close(out)

		send := func() bool {
			docs, err := s.ListOrdered(ctx, collection, field, desc)
			if err != nil {
				s.log.WithError(err).WithField("collection", collection).Warn("subscription refresh failed")
				return ctx.Err() == nil
			}
			select {
			case out <- docs:
				return true
			case <-ctx.Done():
				return false
			}
		}

		if !send() {
			return
		}
		for {
			select {
			case <-ctx.Done():
				return
			case _, ok := <-changes:
				if !ok {
					return
				}
				if !send() {
					return
				}
			}
		}
	}()

	return out, nil
}

func (s *DocumentStore) publish(ctx context.Context, collection string) {
	if s.feed == nil {
		return
	}
	if err := s.feed.Publish(ctx, collection); err != nil {
		s.log.WithError(err).WithField("collection", collection).Warn("failed to publish change")
	}
}

func requireRow(result sql.Result) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// Ensure DocumentStore implements repository.DocumentStore.
var _ repository.DocumentStore = (*DocumentStore)(nil)
