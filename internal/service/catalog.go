package service

import (
	"context"

	"github.com/sirupsen/logrus"

	"travel/internal/domain"
	"travel/internal/redis"
	"travel/internal/repository"
)

// CatalogService serves the public trip catalog.
type CatalogService struct {
	tripRepo repository.TripRepository
	cache    redis.CatalogCacheInterface
	log      logrus.FieldLogger
}

// NewCatalogService creates a new CatalogService. cache may be nil.
func NewCatalogService(tripRepo repository.TripRepository, cache redis.CatalogCacheInterface, log logrus.FieldLogger) *CatalogService {
	return &CatalogService{
		tripRepo: tripRepo,
		cache:    cache,
		log:      log.WithField("service", "catalog"),
	}
}

// CatalogView is the result of a catalog read.
type CatalogView struct {
	domain.CatalogPage
	// Unavailable is set when the catalog could not be read. The page is then empty.
	Unavailable bool
}

// View filters the whole catalog with query and presents it with policy.
// A read failure is logged and yields an empty page flagged Unavailable.
func (s *CatalogService) View(ctx context.Context, query domain.CatalogQuery, policy domain.CatalogPolicy) CatalogView {
	trips, err := s.allTrips(ctx)
	if err != nil {
		s.log.WithError(err).Error("failed to load catalog")
		return CatalogView{CatalogPage: domain.Present(nil, policy), Unavailable: true}
	}
	return CatalogView{CatalogPage: domain.Present(domain.Filter(trips, query), policy)}
}

// TripDetail is a trip with every derived value the detail page shows.
type TripDetail struct {
	Trip               *domain.Trip
	Location           string
	CoverImage         string
	RoomPrices         []domain.RoomPrice
	CancellationPolicy []string
	TermsAndConditions []string
	ThingsToCarry      []string
	Bookable           bool
}

// Detail returns a single trip with its derived values.
func (s *CatalogService) Detail(ctx context.Context, id string) (*TripDetail, error) {
	if id == "" {
		return nil, ErrInvalidTripID
	}

	trip, err := s.tripRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return &TripDetail{
		Trip:               trip,
		Location:           trip.DisplayLocation(),
		CoverImage:         trip.CoverImage(),
		RoomPrices:         trip.RoomPrices(),
		CancellationPolicy: domain.Bullets(trip.CancellationPolicy),
		TermsAndConditions: domain.Bullets(trip.TermsAndConditions),
		ThingsToCarry:      domain.Bullets(trip.ThingsToCarry),
		Bookable:           trip.Bookable(),
	}, nil
}

// allTrips reads the catalog through the cache. Cache failures fall through to the store.
// The generation is read before the store so a load that overlaps a trip write is not cached.
func (s *CatalogService) allTrips(ctx context.Context) ([]domain.Trip, error) {
	cacheable := false
	var gen int64
	if s.cache != nil {
		trips, err := s.cache.GetTrips(ctx)
		if err != nil {
			s.log.WithError(err).Warn("catalog cache read failed")
		} else if trips != nil {
			return trips, nil
		}

		gen, err = s.cache.Generation(ctx)
		if err != nil {
			s.log.WithError(err).Warn("catalog cache generation read failed")
		} else {
			cacheable = true
		}
	}

	trips, err := s.tripRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	if cacheable {
		if err := s.cache.SetTrips(ctx, gen, trips); err != nil {
			s.log.WithError(err).Warn("catalog cache write failed")
		}
	}
	return trips, nil
}
