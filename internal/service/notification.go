package service

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"travel/internal/domain"
)

// NotificationType represents the type of notification.
type NotificationType string

const (
	NotificationLeadReceived  NotificationType = "LEAD_RECEIVED"
	NotificationTripPublished NotificationType = "TRIP_PUBLISHED"
	NotificationTripRemoved   NotificationType = "TRIP_REMOVED"
)

// Notification represents a notification for the site operators.
type Notification struct {
	Type      NotificationType
	Title     string
	Message   string
	Data      map[string]interface{}
	CreatedAt time.Time
}

// NotificationService delivers operator notifications. Delivery is a structured log line
// that log shipping forwards; it never fails the calling operation.
type NotificationService struct {
	log logrus.FieldLogger
}

// NewNotificationService creates a new NotificationService.
func NewNotificationService(log logrus.FieldLogger) *NotificationService {
	return &NotificationService{log: log.WithField("component", "notifications")}
}

// NotifyLeadReceived announces a new contact form submission.
func (s *NotificationService) NotifyLeadReceived(ctx context.Context, sub *domain.ContactSubmission) {
	s.send(ctx, Notification{
		Type:    NotificationLeadReceived,
		Title:   "New Enquiry",
		Message: "New contact form submission from " + sub.Name,
		Data: map[string]interface{}{
			"submission_id": sub.ID,
			"email":         sub.Email,
			"has_phone":     sub.Phone != "",
		},
		CreatedAt: time.Now(),
	})
}

// NotifyTripPublished announces a trip added to the catalog.
func (s *NotificationService) NotifyTripPublished(ctx context.Context, trip *domain.Trip) {
	s.send(ctx, Notification{
		Type:    NotificationTripPublished,
		Title:   "Trip Published",
		Message: trip.Title + " is now in the catalog",
		Data: map[string]interface{}{
			"trip_id":     trip.ID,
			"coming_soon": trip.ComingSoon,
			"featured":    trip.Featured,
		},
		CreatedAt: time.Now(),
	})
}

// NotifyTripRemoved announces a trip removed from the catalog.
func (s *NotificationService) NotifyTripRemoved(ctx context.Context, tripID string) {
	s.send(ctx, Notification{
		Type:      NotificationTripRemoved,
		Title:     "Trip Removed",
		Message:   "A trip was removed from the catalog",
		Data:      map[string]interface{}{"trip_id": tripID},
		CreatedAt: time.Now(),
	})
}

func (s *NotificationService) send(_ context.Context, n Notification) {
	if s == nil {
		return
	}
	s.log.WithFields(logrus.Fields(n.Data)).
		WithField("type", n.Type).
		WithField("title", n.Title).
		Info(n.Message)
}
