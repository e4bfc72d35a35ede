package tests

import (
	"context"
	"errors"
	"testing"
	"time"

	"travel/internal/domain"
	"travel/internal/service"
)

// ──────────────────────────────────────────────
// 6. VISITS & ANALYTICS
// ──────────────────────────────────────────────

const (
	chromeDesktopUA = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
	iPhoneUA        = "Mozilla/5.0 (iPhone; CPU iPhone OS 17_0 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.0 Mobile/15E148 Safari/604.1"
	googlebotUA     = "Mozilla/5.0 (compatible; Googlebot/2.1; +http://www.google.com/bot.html)"
)

func TestAnalytics_RecordVisitParsesUserAgent(t *testing.T) {
	t.Parallel()

	visitors := NewMockVisitorRepository()
	svc := service.NewAnalyticsService(visitors, NewMockTripRepository(), NewMockContactRepository())

	v, err := svc.RecordVisit(context.Background(), "visitor-1", chromeDesktopUA)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.Browser != "Chrome" || v.Mobile || v.Bot {
		t.Errorf("unexpected device: %+v", v)
	}

	v, err = svc.RecordVisit(context.Background(), "visitor-2", iPhoneUA)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !v.Mobile {
		t.Errorf("expected a mobile visitor: %+v", v)
	}

	if _, err := svc.RecordVisit(context.Background(), "  ", chromeDesktopUA); !errors.Is(err, service.ErrInvalidVisitorID) {
		t.Errorf("expected ErrInvalidVisitorID, got %v", err)
	}
}

func TestAnalytics_Summary(t *testing.T) {
	t.Parallel()

	visitors := NewMockVisitorRepository()
	trips := NewMockTripRepository()
	contacts := NewMockContactRepository()
	now := time.Now()
	ctx := context.Background()

	_ = visitors.Touch(ctx, &domain.Visitor{ID: "a", LastSeen: now.Add(-time.Minute), Browser: "Chrome"})
	_ = visitors.Touch(ctx, &domain.Visitor{ID: "b", LastSeen: now.Add(-time.Hour), Browser: "Chrome"})
	_ = visitors.Touch(ctx, &domain.Visitor{ID: "c", LastSeen: now.Add(-4 * time.Minute), Browser: "Firefox"})
	_ = visitors.Touch(ctx, &domain.Visitor{ID: "bot", LastSeen: now, Browser: "Googlebot", Bot: true})

	trips.AddTrip(domain.Trip{Title: "A", Duration: "1 Day", Featured: true})
	trips.AddTrip(domain.Trip{Title: "B", Duration: "1 Day"})

	_ = contacts.Create(ctx, &domain.ContactSubmission{Name: "x", Email: "x@example.com", Message: "m", SubmittedAt: now})
	_ = contacts.Create(ctx, &domain.ContactSubmission{Name: "y", Email: "y@example.com", Message: "m", SubmittedAt: now, Read: true})

	svc := service.NewAnalyticsService(visitors, trips, contacts)
	sum, err := svc.Summary(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if sum.Visitors != 3 || sum.ActiveVisitors != 2 {
		t.Errorf("expected 3 visitors / 2 active, got %d / %d", sum.Visitors, sum.ActiveVisitors)
	}
	if sum.Trips != 2 || sum.FeaturedTrips != 1 {
		t.Errorf("expected 2 trips / 1 featured, got %d / %d", sum.Trips, sum.FeaturedTrips)
	}
	if sum.UnreadMessages != 1 {
		t.Errorf("expected 1 unread, got %d", sum.UnreadMessages)
	}
	if len(sum.Browsers) != 2 || sum.Browsers[0].Browser != "Chrome" || sum.Browsers[0].Count != 2 {
		t.Errorf("unexpected browser breakdown: %+v", sum.Browsers)
	}
}

func TestAnalytics_SummaryFailsOnStoreError(t *testing.T) {
	t.Parallel()

	trips := NewMockTripRepository()
	trips.GetAllError = ErrMockStore
	svc := service.NewAnalyticsService(NewMockVisitorRepository(), trips, NewMockContactRepository())

	if _, err := svc.Summary(context.Background()); !errors.Is(err, ErrMockStore) {
		t.Errorf("expected store error, got %v", err)
	}
}
