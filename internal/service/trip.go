package service

import (
	"context"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"travel/internal/domain"
	"travel/internal/redis"
	"travel/internal/repository"
)

// TripService handles administrator trip management.
type TripService struct {
	tripRepo            repository.TripRepository
	cache               redis.CatalogCacheInterface
	notificationService *NotificationService
	log                 logrus.FieldLogger
	now                 func() time.Time
}

// NewTripService creates a new TripService. cache may be nil.
func NewTripService(
	tripRepo repository.TripRepository,
	cache redis.CatalogCacheInterface,
	notificationService *NotificationService,
	log logrus.FieldLogger,
) *TripService {
	return &TripService{
		tripRepo:            tripRepo,
		cache:               cache,
		notificationService: notificationService,
		log:                 log.WithField("service", "trip"),
		now:                 time.Now,
	}
}

// TripInput contains every editable field of a trip.
type TripInput struct {
	Title              string
	Duration           string
	Location           string
	Price              float64
	TriplePrice        *float64
	TwinPrice          *float64
	ImageURLs          []string
	Itinerary          []string
	Featured           bool
	ComingSoon         bool
	CancellationPolicy string
	TermsAndConditions string
	ThingsToCarry      string
}

func (in TripInput) apply(t *domain.Trip) {
	t.Title = in.Title
	t.Duration = in.Duration
	t.Location = in.Location
	t.Price = in.Price
	t.TriplePrice = in.TriplePrice
	t.TwinPrice = in.TwinPrice
	t.ImageURLs = cleanList(in.ImageURLs)
	t.Itinerary = cleanList(in.Itinerary)
	t.Featured = in.Featured
	t.ComingSoon = in.ComingSoon
	t.CancellationPolicy = in.CancellationPolicy
	t.TermsAndConditions = in.TermsAndConditions
	t.ThingsToCarry = in.ThingsToCarry
}

// List returns every trip straight from the store.
func (s *TripService) List(ctx context.Context) ([]domain.Trip, error) {
	return s.tripRepo.GetAll(ctx)
}

// Create validates and stores a new trip.
func (s *TripService) Create(ctx context.Context, in TripInput) (*domain.Trip, error) {
	now := s.now().UTC()
	trip := &domain.Trip{CreatedAt: now, UpdatedAt: now}
	in.apply(trip)

	if err := trip.Validate(); err != nil {
		return nil, err
	}
	if err := s.tripRepo.Create(ctx, trip); err != nil {
		return nil, err
	}

	s.invalidate(ctx)
	s.notificationService.NotifyTripPublished(ctx, trip)
	return trip, nil
}

// Update replaces every editable field of an existing trip.
func (s *TripService) Update(ctx context.Context, id string, in TripInput) (*domain.Trip, error) {
	if id == "" {
		return nil, ErrInvalidTripID
	}

	trip, err := s.tripRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	in.apply(trip)
	trip.UpdatedAt = s.now().UTC()
	if err := trip.Validate(); err != nil {
		return nil, err
	}
	if err := s.tripRepo.Update(ctx, trip); err != nil {
		return nil, err
	}

	s.invalidate(ctx)
	return trip, nil
}

// Delete removes a trip.
func (s *TripService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return ErrInvalidTripID
	}
	if err := s.tripRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.invalidate(ctx)
	s.notificationService.NotifyTripRemoved(ctx, id)
	return nil
}

func (s *TripService) invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateTrips(ctx); err != nil {
		s.log.WithError(err).Warn("failed to invalidate catalog cache")
	}
}

// cleanList trims entries and drops the empty ones the admin form leaves behind.
func cleanList(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
