package documents

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"travel/internal/domain"
	"travel/internal/repository"
)

// tripRecord is the stored shape of a trip. Every key is always written so a
// merge update clears fields that were removed.
type tripRecord struct {
	Title              string    `json:"title"`
	Duration           string    `json:"duration"`
	Location           string    `json:"location"`
	Price              float64   `json:"price"`
	TriplePrice        *float64  `json:"triplePrice"`
	TwinPrice          *float64  `json:"twinPrice"`
	ImageURLs          []string  `json:"imageUrls"`
	Itinerary          []string  `json:"itinerary"`
	Featured           bool      `json:"featured"`
	ComingSoon         bool      `json:"comingSoon"`
	CancellationPolicy string    `json:"cancellationPolicy"`
	TermsAndConditions string    `json:"termsAndConditions"`
	ThingsToCarry      string    `json:"thingsToCarry"`
	CreatedAt          Timestamp `json:"createdAt"`
	UpdatedAt          Timestamp `json:"updatedAt"`
}

func newTripRecord(t *domain.Trip) tripRecord {
	return tripRecord{
		Title:              t.Title,
		Duration:           t.Duration,
		Location:           t.Location,
		Price:              t.Price,
		TriplePrice:        t.TriplePrice,
		TwinPrice:          t.TwinPrice,
		ImageURLs:          nonNil(t.ImageURLs),
		Itinerary:          nonNil(t.Itinerary),
		Featured:           t.Featured,
		ComingSoon:         t.ComingSoon,
		CancellationPolicy: t.CancellationPolicy,
		TermsAndConditions: t.TermsAndConditions,
		ThingsToCarry:      t.ThingsToCarry,
		CreatedAt:          NewTimestamp(t.CreatedAt),
		UpdatedAt:          NewTimestamp(t.UpdatedAt),
	}
}

func decodeTrip(doc repository.Document) (domain.Trip, error) {
	var r tripRecord
	var trip domain.Trip
	err := decode(doc, &r, func() error {
		trip = domain.Trip{
			ID:                 doc.ID,
			Title:              r.Title,
			Duration:           r.Duration,
			Location:           r.Location,
			Price:              r.Price,
			TriplePrice:        r.TriplePrice,
			TwinPrice:          r.TwinPrice,
			ImageURLs:          nonNil(r.ImageURLs),
			Itinerary:          nonNil(r.Itinerary),
			Featured:           r.Featured,
			ComingSoon:         r.ComingSoon,
			CancellationPolicy: r.CancellationPolicy,
			TermsAndConditions: r.TermsAndConditions,
			ThingsToCarry:      r.ThingsToCarry,
			CreatedAt:          orDefault(r.CreatedAt, doc.CreatedAt),
			UpdatedAt:          orDefault(r.UpdatedAt, doc.UpdatedAt),
		}
		return trip.Validate()
	})
	return trip, err
}

// TripRepository stores trips in the trips collection.
type TripRepository struct {
	store repository.DocumentStore
	log   logrus.FieldLogger
}

// NewTripRepository creates a new trip repository.
func NewTripRepository(store repository.DocumentStore, log logrus.FieldLogger) *TripRepository {
	return &TripRepository{store: store, log: log}
}

// Create persists a new trip and sets its ID.
func (r *TripRepository) Create(ctx context.Context, trip *domain.Trip) error {
	id, err := r.store.Create(ctx, repository.CollectionTrips, newTripRecord(trip))
	if err != nil {
		return err
	}
	trip.ID = id
	return nil
}

// GetByID retrieves a trip by ID.
func (r *TripRepository) GetByID(ctx context.Context, id string) (*domain.Trip, error) {
	doc, err := r.store.GetByID(ctx, repository.CollectionTrips, id)
	if err != nil {
		return nil, err
	}
	trip, err := decodeTrip(*doc)
	if err != nil {
		return nil, err
	}
	return &trip, nil
}

// GetAll retrieves the whole catalog in insertion order, skipping invalid documents.
func (r *TripRepository) GetAll(ctx context.Context) ([]domain.Trip, error) {
	docs, err := r.store.ListAll(ctx, repository.CollectionTrips)
	if err != nil {
		return nil, fmt.Errorf("list trips: %w", err)
	}
	return decodeAll(r.log, repository.CollectionTrips, docs, decodeTrip), nil
}

// Update replaces every field of an existing trip.
func (r *TripRepository) Update(ctx context.Context, trip *domain.Trip) error {
	return r.store.Update(ctx, repository.CollectionTrips, trip.ID, newTripRecord(trip))
}

// Delete removes a trip.
func (r *TripRepository) Delete(ctx context.Context, id string) error {
	return r.store.Delete(ctx, repository.CollectionTrips, id)
}

var _ repository.TripRepository = (*TripRepository)(nil)
