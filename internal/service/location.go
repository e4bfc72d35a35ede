package service

import (
	"context"

	"github.com/sirupsen/logrus"
)

// Geocoder suggests place names for a partial query.
type Geocoder interface {
	Suggest(ctx context.Context, query string) ([]string, error)
}

// LocationService suggests trip locations for the admin form.
type LocationService struct {
	geocoder Geocoder
	log      logrus.FieldLogger
}

// NewLocationService creates a new LocationService.
func NewLocationService(geocoder Geocoder, log logrus.FieldLogger) *LocationService {
	return &LocationService{geocoder: geocoder, log: log.WithField("service", "location")}
}

// Suggest returns place names for query. A geocoder failure yields no suggestions.
func (s *LocationService) Suggest(ctx context.Context, query string) []string {
	names, err := s.geocoder.Suggest(ctx, query)
	if err != nil {
		s.log.WithError(err).Warn("location suggestions unavailable")
		return []string{}
	}
	return names
}
