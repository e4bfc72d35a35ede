package domain

import (
	"strings"
	"time"
)

// DefaultLocation is shown for trips without a location.
const DefaultLocation = "Multiple Locations"

// Trip represents a bookable travel package.
type Trip struct {
	ID                 string
	Title              string
	Duration           string // Free text, e.g. "5 Days 4 Nights"
	Location           string
	Price              float64  // Quad sharing price
	TriplePrice        *float64 // Optional override, see PriceFor
	TwinPrice          *float64 // Optional override, see PriceFor
	ImageURLs          []string // First one is the cover image
	Itinerary          []string // Day-by-day order
	Featured           bool
	ComingSoon         bool
	CancellationPolicy string
	TermsAndConditions string
	ThingsToCarry      string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// DisplayLocation returns the location to show for the trip.
func (t *Trip) DisplayLocation() string {
	if strings.TrimSpace(t.Location) == "" {
		return DefaultLocation
	}
	return t.Location
}

// CoverImage returns the first image URL, or "" when the trip has none.
func (t *Trip) CoverImage() string {
	if len(t.ImageURLs) == 0 {
		return ""
	}
	return t.ImageURLs[0]
}

// Bookable reports whether booking and contact actions are offered for the trip.
func (t *Trip) Bookable() bool {
	return !t.ComingSoon
}

// Validate checks the fields every stored trip must have.
func (t *Trip) Validate() error {
	if strings.TrimSpace(t.Title) == "" {
		return validationError("title is required")
	}
	if strings.TrimSpace(t.Duration) == "" {
		return validationError("duration is required")
	}
	if t.Price < 0 {
		return validationError("price must not be negative")
	}
	if t.TriplePrice != nil && *t.TriplePrice < 0 {
		return validationError("triple price must not be negative")
	}
	if t.TwinPrice != nil && *t.TwinPrice < 0 {
		return validationError("twin price must not be negative")
	}
	return nil
}

// Bullets splits a free-text block into bullet lines.
// Lines that are empty after trimming are dropped; order is kept.
func Bullets(text string) []string {
	lines := strings.Split(text, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if l := strings.TrimSpace(line); l != "" {
			out = append(out, l)
		}
	}
	return out
}
