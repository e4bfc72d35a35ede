package service

import (
	"context"

	"travel/internal/domain"
	"travel/internal/repository"
)

// BookingService builds prefilled messaging links for trip enquiries.
type BookingService struct {
	tripRepo repository.TripRepository
	composer domain.Composer
	agency   string
	whatsApp string
}

// NewBookingService creates a new BookingService.
// The composer is shared by every booking entry point.
func NewBookingService(tripRepo repository.TripRepository, composer domain.Composer, agency, whatsAppNumber string) *BookingService {
	return &BookingService{
		tripRepo: tripRepo,
		composer: composer,
		agency:   agency,
		whatsApp: whatsAppNumber,
	}
}

// BookingLink is a composed message and the deep link that carries it.
type BookingLink struct {
	TripID  string
	Room    domain.RoomType
	Price   float64
	Message string
	URL     string
}

// Book composes the booking message for a trip and room type.
// Trips marked coming soon never produce a message.
func (s *BookingService) Book(ctx context.Context, tripID string, room domain.RoomType) (*BookingLink, error) {
	if tripID == "" {
		return nil, ErrInvalidTripID
	}

	trip, err := s.tripRepo.GetByID(ctx, tripID)
	if err != nil {
		return nil, err
	}
	if !trip.Bookable() {
		return nil, ErrTripComingSoon
	}

	text := s.composer.Compose(trip, room)
	return &BookingLink{
		TripID:  trip.ID,
		Room:    room,
		Price:   trip.PriceFor(room),
		Message: text,
		URL:     domain.DeepLink(s.whatsApp, text),
	}, nil
}

// CustomizeLink returns the link for a request to tailor a trip.
func (s *BookingService) CustomizeLink() *BookingLink {
	text := domain.CustomizeMessage(s.agency)
	return &BookingLink{Message: text, URL: domain.DeepLink(s.whatsApp, text)}
}
