package tests

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"

	"travel/internal/domain"
	"travel/internal/redis"
	"travel/internal/repository"
)

// ErrMockStore is returned by mocks configured to fail.
var ErrMockStore = errors.New("mock store unavailable")

// NullLogger returns a logger that discards output and records entries for assertions.
func NullLogger() (*logrus.Logger, *test.Hook) {
	return test.NewNullLogger()
}

// ──────────────────────────────────────────────
// MOCK TRIP REPOSITORY
// ──────────────────────────────────────────────

// MockTripRepository is a mock implementation of TripRepository that keeps insertion order.
type MockTripRepository struct {
	mu     sync.RWMutex
	trips  []domain.Trip
	nextID int

	// Counters for verification
	GetAllCallCount int32
	UpdateCallCount int32

	// Error injection
	GetAllError error
	CreateError error
	UpdateError error
}

// NewMockTripRepository creates a new mock trip repository.
func NewMockTripRepository() *MockTripRepository {
	return &MockTripRepository{}
}

// AddTrip adds a trip to the mock repository. A missing ID is generated.
func (m *MockTripRepository) AddTrip(trip domain.Trip) string {
	m.mu.Lock()
	defer m.mu.Unlock()
	if trip.ID == "" {
		m.nextID++
		trip.ID = fmt.Sprintf("trip-%d", m.nextID)
	}
	m.trips = append(m.trips, trip)
	return trip.ID
}

func (m *MockTripRepository) Create(ctx context.Context, trip *domain.Trip) error {
	if m.CreateError != nil {
		return m.CreateError
	}
	trip.ID = m.AddTrip(*trip)
	return nil
}

func (m *MockTripRepository) GetByID(ctx context.Context, id string) (*domain.Trip, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, t := range m.trips {
		if t.ID == id {
			copy := t
			return &copy, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *MockTripRepository) GetAll(ctx context.Context) ([]domain.Trip, error) {
	atomic.AddInt32(&m.GetAllCallCount, 1)
	if m.GetAllError != nil {
		return nil, m.GetAllError
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]domain.Trip{}, m.trips...), nil
}

func (m *MockTripRepository) Update(ctx context.Context, trip *domain.Trip) error {
	atomic.AddInt32(&m.UpdateCallCount, 1)
	if m.UpdateError != nil {
		return m.UpdateError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.trips {
		if m.trips[i].ID == trip.ID {
			m.trips[i] = *trip
			return nil
		}
	}
	return repository.ErrNotFound
}

func (m *MockTripRepository) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.trips {
		if m.trips[i].ID == id {
			m.trips = append(m.trips[:i:i], m.trips[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

// CountTrips returns the number of stored trips.
func (m *MockTripRepository) CountTrips() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.trips)
}

// ──────────────────────────────────────────────
// MOCK LEGAL PAGE REPOSITORY
// ──────────────────────────────────────────────

// MockLegalPageRepository is a mock implementation of LegalPageRepository.
type MockLegalPageRepository struct {
	mu     sync.RWMutex
	pages  []domain.LegalPage
	nextID int

	// Error injection
	GetAllError error
}

// NewMockLegalPageRepository creates a new mock legal page repository.
func NewMockLegalPageRepository() *MockLegalPageRepository {
	return &MockLegalPageRepository{}
}

func (m *MockLegalPageRepository) Create(ctx context.Context, page *domain.LegalPage) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if page.ID == "" {
		m.nextID++
		page.ID = fmt.Sprintf("page-%d", m.nextID)
	}
	m.pages = append(m.pages, *page)
	return nil
}

func (m *MockLegalPageRepository) GetByID(ctx context.Context, id string) (*domain.LegalPage, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, p := range m.pages {
		if p.ID == id {
			copy := p
			return &copy, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *MockLegalPageRepository) GetAll(ctx context.Context) ([]domain.LegalPage, error) {
	if m.GetAllError != nil {
		return nil, m.GetAllError
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]domain.LegalPage{}, m.pages...), nil
}

func (m *MockLegalPageRepository) Update(ctx context.Context, page *domain.LegalPage) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.pages {
		if m.pages[i].ID == page.ID {
			m.pages[i] = *page
			return nil
		}
	}
	return repository.ErrNotFound
}

func (m *MockLegalPageRepository) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.pages {
		if m.pages[i].ID == id {
			m.pages = append(m.pages[:i:i], m.pages[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

// ──────────────────────────────────────────────
// MOCK CONTACT REPOSITORY
// ──────────────────────────────────────────────

// MockContactRepository is a mock implementation of ContactRepository.
// Watchers receive the full list after every write.
type MockContactRepository struct {
	mu       sync.RWMutex
	subs     []domain.ContactSubmission
	nextID   int
	watchers []chan struct{}

	// Error injection
	CreateError error
	GetAllError error
}

// NewMockContactRepository creates a new mock contact repository.
func NewMockContactRepository() *MockContactRepository {
	return &MockContactRepository{}
}

func (m *MockContactRepository) Create(ctx context.Context, sub *domain.ContactSubmission) error {
	if m.CreateError != nil {
		return m.CreateError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	sub.ID = fmt.Sprintf("sub-%d", m.nextID)
	m.subs = append(m.subs, *sub)
	m.notify()
	return nil
}

func (m *MockContactRepository) GetAll(ctx context.Context) ([]domain.ContactSubmission, error) {
	if m.GetAllError != nil {
		return nil, m.GetAllError
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.sorted(), nil
}

func (m *MockContactRepository) MarkRead(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.subs {
		if m.subs[i].ID == id {
			m.subs[i].Read = true
			m.notify()
			return nil
		}
	}
	return repository.ErrNotFound
}

func (m *MockContactRepository) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.subs {
		if m.subs[i].ID == id {
			m.subs = append(m.subs[:i:i], m.subs[i+1:]...)
			m.notify()
			return nil
		}
	}
	return repository.ErrNotFound
}

func (m *MockContactRepository) Watch(ctx context.Context) (<-chan []domain.ContactSubmission, error) {
	changes := make(chan struct{}, 1)
	m.mu.Lock()
	m.watchers = append(m.watchers, changes)
	m.mu.Unlock()

	out := make(chan []domain.ContactSubmission)
	go func() {
		defer close(out)
		for {
			m.mu.RLock()
			subs := m.sorted()
			m.mu.RUnlock()

			select {
			case out <- subs:
			case <-ctx.Done():
				return
			}
			select {
			case <-changes:
			case <-ctx.Done():
				return
			}
		}
	}()
	return out, nil
}

// sorted must be called with mu held.
func (m *MockContactRepository) sorted() []domain.ContactSubmission {
	out := append([]domain.ContactSubmission{}, m.subs...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].SubmittedAt.After(out[j].SubmittedAt)
	})
	return out
}

// notify must be called with mu held.
func (m *MockContactRepository) notify() {
	for _, ch := range m.watchers {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}

// ──────────────────────────────────────────────
// MOCK VISITOR REPOSITORY
// ──────────────────────────────────────────────

// MockVisitorRepository is a mock implementation of VisitorRepository.
type MockVisitorRepository struct {
	mu       sync.RWMutex
	visitors map[string]domain.Visitor
	order    []string
}

// NewMockVisitorRepository creates a new mock visitor repository.
func NewMockVisitorRepository() *MockVisitorRepository {
	return &MockVisitorRepository{visitors: make(map[string]domain.Visitor)}
}

func (m *MockVisitorRepository) Touch(ctx context.Context, v *domain.Visitor) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.visitors[v.ID]; !ok {
		m.order = append(m.order, v.ID)
	}
	m.visitors[v.ID] = *v
	return nil
}

func (m *MockVisitorRepository) GetAll(ctx context.Context) ([]domain.Visitor, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]domain.Visitor, 0, len(m.order))
	for _, id := range m.order {
		out = append(out, m.visitors[id])
	}
	return out, nil
}

// ──────────────────────────────────────────────
// MOCK ADMIN REPOSITORY
// ──────────────────────────────────────────────

// MockAdminRepository is a mock implementation of AdminRepository.
type MockAdminRepository struct {
	mu     sync.RWMutex
	admins map[string]domain.Admin

	// Error injection
	GetError error
}

// NewMockAdminRepository creates a new mock admin repository.
func NewMockAdminRepository() *MockAdminRepository {
	return &MockAdminRepository{admins: make(map[string]domain.Admin)}
}

func (m *MockAdminRepository) GetByEmail(ctx context.Context, email string) (*domain.Admin, error) {
	if m.GetError != nil {
		return nil, m.GetError
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	admin, ok := m.admins[domain.NormalizeEmail(email)]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &admin, nil
}

func (m *MockAdminRepository) Save(ctx context.Context, admin *domain.Admin) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	admin.Email = domain.NormalizeEmail(admin.Email)
	m.admins[admin.Email] = *admin
	return nil
}

// ──────────────────────────────────────────────
// MOCK CATALOG CACHE
// ──────────────────────────────────────────────

// MockCatalogCache is a mock implementation of CatalogCacheInterface.
type MockCatalogCache struct {
	mu         sync.Mutex
	trips      []domain.Trip
	generation int64

	// Counters for verification
	InvalidateCallCount int32

	// Error injection
	GetError error
}

// NewMockCatalogCache creates a new, empty mock catalog cache.
func NewMockCatalogCache() *MockCatalogCache {
	return &MockCatalogCache{}
}

func (m *MockCatalogCache) GetTrips(ctx context.Context) ([]domain.Trip, error) {
	if m.GetError != nil {
		return nil, m.GetError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.trips == nil {
		return nil, nil
	}
	return append([]domain.Trip{}, m.trips...), nil
}

func (m *MockCatalogCache) Generation(ctx context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.generation, nil
}

// SetTrips stores the catalog only when gen is still current, like the Redis store.
func (m *MockCatalogCache) SetTrips(ctx context.Context, gen int64, trips []domain.Trip) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if gen != m.generation {
		return nil
	}
	m.trips = append([]domain.Trip{}, trips...)
	return nil
}

func (m *MockCatalogCache) InvalidateTrips(ctx context.Context) error {
	atomic.AddInt32(&m.InvalidateCallCount, 1)
	m.mu.Lock()
	defer m.mu.Unlock()
	m.generation++
	m.trips = nil
	return nil
}

// Cached reports whether a catalog is currently cached.
func (m *MockCatalogCache) Cached() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.trips != nil
}

// ──────────────────────────────────────────────
// MOCK REVOCATION STORE
// ──────────────────────────────────────────────

// MockRevocationStore is a mock implementation of RevocationStoreInterface.
type MockRevocationStore struct {
	mu      sync.Mutex
	revoked map[string]time.Duration

	// Error injection
	CheckError error
}

// NewMockRevocationStore creates a new mock revocation store.
func NewMockRevocationStore() *MockRevocationStore {
	return &MockRevocationStore{revoked: make(map[string]time.Duration)}
}

func (m *MockRevocationStore) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if ttl > 0 {
		m.revoked[tokenID] = ttl
	}
	return nil
}

func (m *MockRevocationStore) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	if m.CheckError != nil {
		return false, m.CheckError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.revoked[tokenID]
	return ok, nil
}

// ──────────────────────────────────────────────
// MOCK IDEMPOTENCY STORE
// ──────────────────────────────────────────────

// MockIdempotencyStore is a mock implementation of IdempotencyStoreInterface.
type MockIdempotencyStore struct {
	mu        sync.Mutex
	responses map[string]redis.StoredResponse

	// Error injection
	GetError error
}

// NewMockIdempotencyStore creates a new mock idempotency store.
func NewMockIdempotencyStore() *MockIdempotencyStore {
	return &MockIdempotencyStore{responses: make(map[string]redis.StoredResponse)}
}

func (m *MockIdempotencyStore) Get(ctx context.Context, key string) (*redis.StoredResponse, error) {
	if m.GetError != nil {
		return nil, m.GetError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	resp, ok := m.responses[key]
	if !ok {
		return nil, nil
	}
	return &resp, nil
}

func (m *MockIdempotencyStore) Set(ctx context.Context, key string, resp *redis.StoredResponse, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.responses[key] = *resp
	return nil
}

// Count returns the number of stored responses.
func (m *MockIdempotencyStore) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.responses)
}

// ──────────────────────────────────────────────
// MOCK IMAGE HOST
// ──────────────────────────────────────────────

// MockImageHost is a mock image host. Files named in FailFor are rejected.
type MockImageHost struct {
	mu       sync.Mutex
	FailFor  map[string]bool
	uploaded []string
}

// NewMockImageHost creates a new mock image host.
func NewMockImageHost() *MockImageHost {
	return &MockImageHost{FailFor: make(map[string]bool)}
}

func (m *MockImageHost) Upload(ctx context.Context, filename string, r io.Reader) (string, error) {
	if _, err := io.ReadAll(r); err != nil {
		return "", err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailFor[filename] {
		return "", fmt.Errorf("host rejected %s", filename)
	}
	m.uploaded = append(m.uploaded, filename)
	return "https://img.example.com/" + filename, nil
}

// Uploaded returns the names of the hosted files in order.
func (m *MockImageHost) Uploaded() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.uploaded...)
}

// ──────────────────────────────────────────────
// MOCK GEOCODER
// ──────────────────────────────────────────────

// MockGeocoder returns fixed suggestions.
type MockGeocoder struct {
	Suggestions []string
	Err         error
}

func (m *MockGeocoder) Suggest(ctx context.Context, query string) ([]string, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Suggestions, nil
}

// Ensure mocks implement interfaces.
var (
	_ repository.TripRepository       = (*MockTripRepository)(nil)
	_ repository.LegalPageRepository  = (*MockLegalPageRepository)(nil)
	_ repository.ContactRepository    = (*MockContactRepository)(nil)
	_ repository.VisitorRepository    = (*MockVisitorRepository)(nil)
	_ repository.AdminRepository      = (*MockAdminRepository)(nil)
	_ redis.CatalogCacheInterface     = (*MockCatalogCache)(nil)
	_ redis.RevocationStoreInterface  = (*MockRevocationStore)(nil)
	_ redis.IdempotencyStoreInterface = (*MockIdempotencyStore)(nil)
)
