package domain

import "strings"

const (
	// DefaultMaxPrice is the initial price ceiling; it acts as "no limit" for the catalog.
	DefaultMaxPrice = 100000.0

	// PreviewSize is the number of trips shown on the home page.
	PreviewSize = 6
)

// CatalogPolicy selects how a filtered catalog is presented.
type CatalogPolicy string

const (
	PolicyPreview CatalogPolicy = "preview"
	PolicyFull    CatalogPolicy = "full"
)

// ParseCatalogPolicy maps a view name to a policy. Anything but "preview" is the full list.
func ParseCatalogPolicy(s string) CatalogPolicy {
	if strings.EqualFold(strings.TrimSpace(s), string(PolicyPreview)) {
		return PolicyPreview
	}
	return PolicyFull
}

// CatalogQuery holds the user's current search text and price ceiling.
type CatalogQuery struct {
	Search   string
	MaxPrice float64
}

// NewCatalogQuery returns a query with the default ceiling applied when maxPrice is not positive.
func NewCatalogQuery(search string, maxPrice float64) CatalogQuery {
	if maxPrice <= 0 {
		maxPrice = DefaultMaxPrice
	}
	return CatalogQuery{Search: search, MaxPrice: maxPrice}
}

// Matches reports whether the trip passes the query.
// Trips without a price always pass the price test so incomplete records stay visible.
func (q CatalogQuery) Matches(t *Trip) bool {
	if !strings.Contains(strings.ToLower(t.Title), strings.ToLower(q.Search)) {
		return false
	}
	return t.Price == 0 || t.Price <= q.MaxPrice
}

// Filter returns the trips matching the query in their original order.
// The result is never nil.
func Filter(trips []Trip, q CatalogQuery) []Trip {
	out := make([]Trip, 0, len(trips))
	for i := range trips {
		if q.Matches(&trips[i]) {
			out = append(out, trips[i])
		}
	}
	return out
}

// CatalogPage is a filtered catalog cut down by a presentation policy.
type CatalogPage struct {
	Trips   []Trip
	Total   int  // Number of trips that matched before the policy was applied
	HasMore bool // True when the preview hides matches; link to the full list
}

// Present applies the presentation policy to an already filtered list.
func Present(filtered []Trip, policy CatalogPolicy) CatalogPage {
	page := CatalogPage{Trips: filtered, Total: len(filtered)}
	if page.Trips == nil {
		page.Trips = []Trip{}
	}
	if policy == PolicyPreview && len(filtered) > PreviewSize {
		page.Trips = filtered[:PreviewSize]
		page.HasMore = true
	}
	return page
}
