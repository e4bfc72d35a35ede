package postgres

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"travel/internal/repository"
)

var documentColumns = []string{"id", "data", "created_at", "updated_at"}

type fakeFeed struct {
	mu        sync.Mutex
	published []string
	changes   chan struct{}
}

func (f *fakeFeed) Publish(_ context.Context, collection string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.published = append(f.published, collection)
	return nil
}

func (f *fakeFeed) Subscribe(_ context.Context, _ string) (<-chan struct{}, error) {
	return f.changes, nil
}

func (f *fakeFeed) Published() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.published...)
}

func setupStore(t *testing.T, feed ChangeFeed) (*DocumentStore, sqlmock.Sqlmock) {
	t.Helper()
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })

	logger, _ := test.NewNullLogger()
	return NewDocumentStore(sqlx.NewDb(mockDB, "sqlmock"), feed, logger), mock
}

func TestDocumentStore_ListAll(t *testing.T) {
	store, mock := setupStore(t, nil)
	now := time.Now()

	mock.ExpectQuery(`SELECT id, data, created_at, updated_at\s+FROM documents WHERE collection = \$1\s+ORDER BY seq ASC`).
		WithArgs("trips").
		WillReturnRows(sqlmock.NewRows(documentColumns).
			AddRow("a", []byte(`{"title":"A"}`), now, now).
			AddRow("b", []byte(`{"title":"B"}`), now, now))

	docs, err := store.ListAll(context.Background(), "trips")
	require.NoError(t, err)
	require.Len(t, docs, 2)
	assert.Equal(t, "a", docs[0].ID)
	assert.JSONEq(t, `{"title":"B"}`, string(docs[1].Data))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDocumentStore_ListOrderedDesc(t *testing.T) {
	store, mock := setupStore(t, nil)

	mock.ExpectQuery(`ORDER BY data->>\$2 DESC, seq DESC`).
		WithArgs("contactSubmissions", "submittedAt").
		WillReturnRows(sqlmock.NewRows(documentColumns))

	docs, err := store.ListOrdered(context.Background(), "contactSubmissions", "submittedAt", true)
	require.NoError(t, err)
	assert.Empty(t, docs)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDocumentStore_GetByID(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		store, mock := setupStore(t, nil)
		now := time.Now()

		mock.ExpectQuery(`FROM documents WHERE collection = \$1 AND id = \$2`).
			WithArgs("legalPages", "privacy").
			WillReturnRows(sqlmock.NewRows(documentColumns).
				AddRow("privacy", []byte(`{"title":"Privacy"}`), now, now))

		doc, err := store.GetByID(context.Background(), "legalPages", "privacy")
		require.NoError(t, err)
		assert.Equal(t, "privacy", doc.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Not Found", func(t *testing.T) {
		store, mock := setupStore(t, nil)

		mock.ExpectQuery(`FROM documents WHERE collection = \$1 AND id = \$2`).
			WithArgs("trips", "missing").
			WillReturnRows(sqlmock.NewRows(documentColumns))

		doc, err := store.GetByID(context.Background(), "trips", "missing")
		assert.Nil(t, doc)
		assert.ErrorIs(t, err, repository.ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestDocumentStore_CreatePublishes(t *testing.T) {
	feed := &fakeFeed{}
	store, mock := setupStore(t, feed)

	mock.ExpectExec(`INSERT INTO documents \(collection, id, data\)`).
		WithArgs("trips", sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	id, err := store.Create(context.Background(), "trips", map[string]any{"title": "Goa"})
	require.NoError(t, err)
	assert.NotEmpty(t, id)
	assert.Equal(t, []string{"trips"}, feed.Published())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDocumentStore_CreateError(t *testing.T) {
	feed := &fakeFeed{}
	store, mock := setupStore(t, feed)

	mock.ExpectExec(`INSERT INTO documents`).
		WillReturnError(errors.New("connection refused"))

	_, err := store.Create(context.Background(), "trips", map[string]any{"title": "Goa"})
	assert.ErrorContains(t, err, "create trips document")
	assert.Empty(t, feed.Published())
}

func TestDocumentStore_PutUpserts(t *testing.T) {
	store, mock := setupStore(t, nil)

	mock.ExpectExec(`ON CONFLICT \(collection, id\)`).
		WithArgs("visitors", "v-1", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, store.Put(context.Background(), "visitors", "v-1", map[string]any{"browser": "Firefox"}))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDocumentStore_Update(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		store, mock := setupStore(t, nil)

		mock.ExpectExec(`SET data = data \|\| \$3::jsonb, updated_at = now\(\)`).
			WithArgs("contactSubmissions", "c-1", []byte(`{"read":true}`)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := store.Update(context.Background(), "contactSubmissions", "c-1", map[string]any{"read": true})
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Not Found", func(t *testing.T) {
		store, mock := setupStore(t, nil)

		mock.ExpectExec(`UPDATE documents`).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := store.Update(context.Background(), "contactSubmissions", "gone", map[string]any{"read": true})
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})
}

func TestDocumentStore_Delete(t *testing.T) {
	store, mock := setupStore(t, nil)

	mock.ExpectExec(`DELETE FROM documents WHERE collection = \$1 AND id = \$2`).
		WithArgs("trips", "t-9").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := store.Delete(context.Background(), "trips", "t-9")
	assert.ErrorIs(t, err, repository.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDocumentStore_SubscribeOrdered(t *testing.T) {
	feed := &fakeFeed{changes: make(chan struct{}, 1)}
	store, mock := setupStore(t, feed)
	now := time.Now()

	mock.ExpectQuery(`ORDER BY data->>\$2 DESC`).
		WithArgs("contactSubmissions", "submittedAt").
		WillReturnRows(sqlmock.NewRows(documentColumns).
			AddRow("c-1", []byte(`{}`), now, now))
	mock.ExpectQuery(`ORDER BY data->>\$2 DESC`).
		WithArgs("contactSubmissions", "submittedAt").
		WillReturnRows(sqlmock.NewRows(documentColumns).
			AddRow("c-2", []byte(`{}`), now, now).
			AddRow("c-1", []byte(`{}`), now, now))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	updates, err := store.SubscribeOrdered(ctx, "contactSubmissions", "submittedAt", true)
	require.NoError(t, err)

	first := <-updates
	require.Len(t, first, 1)

	feed.changes <- struct{}{}
	second := <-updates
	require.Len(t, second, 2)
	assert.Equal(t, "c-2", second[0].ID)

	cancel()
	for range updates {
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}
