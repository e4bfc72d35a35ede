package service

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/mssola/user_agent"

	"travel/internal/domain"
	"travel/internal/repository"
)

// unknownBrowser labels visitors whose user agent names no browser.
const unknownBrowser = "Unknown"

// AnalyticsService records visits and summarises site activity for administrators.
type AnalyticsService struct {
	visitors repository.VisitorRepository
	trips    repository.TripRepository
	contacts repository.ContactRepository
	now      func() time.Time
}

// NewAnalyticsService creates a new AnalyticsService.
func NewAnalyticsService(visitors repository.VisitorRepository, trips repository.TripRepository, contacts repository.ContactRepository) *AnalyticsService {
	return &AnalyticsService{visitors: visitors, trips: trips, contacts: contacts, now: time.Now}
}

// RecordVisit creates or refreshes the visitor with the device parsed from userAgent.
func (s *AnalyticsService) RecordVisit(ctx context.Context, visitorID, userAgent string) (*domain.Visitor, error) {
	visitorID = strings.TrimSpace(visitorID)
	if visitorID == "" {
		return nil, ErrInvalidVisitorID
	}

	ua := user_agent.New(userAgent)
	browser, _ := ua.Browser()
	if browser == "" {
		browser = unknownBrowser
	}

	v := &domain.Visitor{
		ID:       visitorID,
		LastSeen: s.now().UTC(),
		Browser:  browser,
		OS:       ua.OS(),
		Mobile:   ua.Mobile(),
		Bot:      ua.Bot(),
	}
	if err := s.visitors.Touch(ctx, v); err != nil {
		return nil, err
	}
	return v, nil
}

// BrowserCount is the number of visitors using one browser.
type BrowserCount struct {
	Browser string
	Count   int
}

// Summary holds the dashboard figures.
type Summary struct {
	Visitors       int
	ActiveVisitors int
	Trips          int
	FeaturedTrips  int
	UnreadMessages int
	Browsers       []BrowserCount
}

// Summary computes the dashboard figures. Bots are not counted as visitors.
func (s *AnalyticsService) Summary(ctx context.Context) (*Summary, error) {
	visitors, err := s.visitors.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	trips, err := s.trips.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	subs, err := s.contacts.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now()
	sum := &Summary{Trips: len(trips), UnreadMessages: domain.CountUnread(subs)}

	browsers := make(map[string]int)
	for i := range visitors {
		v := &visitors[i]
		if v.Bot {
			continue
		}
		sum.Visitors++
		if v.ActiveAt(now) {
			sum.ActiveVisitors++
		}
		browsers[v.Browser]++
	}
	for i := range trips {
		if trips[i].Featured {
			sum.FeaturedTrips++
		}
	}

	sum.Browsers = make([]BrowserCount, 0, len(browsers))
	for name, n := range browsers {
		sum.Browsers = append(sum.Browsers, BrowserCount{Browser: name, Count: n})
	}
	sort.Slice(sum.Browsers, func(i, j int) bool {
		if sum.Browsers[i].Count != sum.Browsers[j].Count {
			return sum.Browsers[i].Count > sum.Browsers[j].Count
		}
		return sum.Browsers[i].Browser < sum.Browsers[j].Browser
	})
	return sum, nil
}
