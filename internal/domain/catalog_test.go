package domain

import (
	"fmt"
	"testing"
)

func titles(trips []Trip) []string {
	out := make([]string, len(trips))
	for i, t := range trips {
		out[i] = t.Title
	}
	return out
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestFilter_PreservesOrder(t *testing.T) {
	trips := []Trip{
		{Title: "A", Price: 100},
		{Title: "B", Price: 200},
		{Title: "C", Price: 50},
	}

	got := Filter(trips, CatalogQuery{Search: "", MaxPrice: 150})

	if want := []string{"A", "C"}; !equalStrings(titles(got), want) {
		t.Errorf("expected %v, got %v", want, titles(got))
	}
}

func TestFilter_CaseInsensitiveTitle(t *testing.T) {
	trips := []Trip{
		{Title: "Spiti Valley Expedition", Price: 18000},
		{Title: "Kedarnath Yatra", Price: 9000},
		{Title: "Winter SPITI", Price: 21000},
	}

	got := Filter(trips, NewCatalogQuery("spiti", 0))

	if want := []string{"Spiti Valley Expedition", "Winter SPITI"}; !equalStrings(titles(got), want) {
		t.Errorf("expected %v, got %v", want, titles(got))
	}
}

func TestFilter_UnpricedTripsAlwaysPass(t *testing.T) {
	trips := []Trip{
		{Title: "Draft trip"},
		{Title: "Expensive", Price: 500000},
	}

	got := Filter(trips, CatalogQuery{MaxPrice: 1000})

	if want := []string{"Draft trip"}; !equalStrings(titles(got), want) {
		t.Errorf("expected %v, got %v", want, titles(got))
	}
}

func TestFilter_NoMatchReturnsEmptyNotNil(t *testing.T) {
	trips := []Trip{{Title: "Manali", Price: 100}}

	got := Filter(trips, NewCatalogQuery("goa", 0))

	if got == nil {
		t.Fatal("expected empty slice, got nil")
	}
	if len(got) != 0 {
		t.Errorf("expected no trips, got %v", titles(got))
	}
}

func TestFilter_Idempotent(t *testing.T) {
	trips := []Trip{
		{Title: "Rishikesh Rafting", Price: 4000},
		{Title: "Rishikesh Camping", Price: 12000},
		{Title: "Auli Skiing", Price: 3000},
		{Title: "Rishikesh Draft"},
	}
	q := CatalogQuery{Search: "rishikesh", MaxPrice: 5000}

	once := Filter(trips, q)
	twice := Filter(once, q)

	if !equalStrings(titles(once), titles(twice)) {
		t.Errorf("filter not idempotent: %v then %v", titles(once), titles(twice))
	}
}

func TestNewCatalogQuery_DefaultCeiling(t *testing.T) {
	if q := NewCatalogQuery("x", 0); q.MaxPrice != DefaultMaxPrice {
		t.Errorf("expected default ceiling %v, got %v", DefaultMaxPrice, q.MaxPrice)
	}
	if q := NewCatalogQuery("x", 2500); q.MaxPrice != 2500 {
		t.Errorf("expected ceiling 2500, got %v", q.MaxPrice)
	}
}

func TestPresent_Policies(t *testing.T) {
	trips := make([]Trip, 8)
	for i := range trips {
		trips[i] = Trip{Title: fmt.Sprintf("Trip %d", i+1)}
	}

	preview := Present(trips, PolicyPreview)
	if len(preview.Trips) != PreviewSize {
		t.Fatalf("expected %d preview trips, got %d", PreviewSize, len(preview.Trips))
	}
	if !equalStrings(titles(preview.Trips), titles(trips[:6])) {
		t.Errorf("preview order changed: %v", titles(preview.Trips))
	}
	if !preview.HasMore || preview.Total != 8 {
		t.Errorf("expected HasMore with total 8, got HasMore=%v total=%d", preview.HasMore, preview.Total)
	}

	full := Present(trips, PolicyFull)
	if len(full.Trips) != 8 || full.HasMore {
		t.Errorf("expected all 8 trips without HasMore, got %d HasMore=%v", len(full.Trips), full.HasMore)
	}
}

func TestPresent_NilInput(t *testing.T) {
	page := Present(nil, PolicyPreview)
	if page.Trips == nil || len(page.Trips) != 0 || page.HasMore {
		t.Errorf("expected empty page, got %+v", page)
	}
}

func TestParseCatalogPolicy(t *testing.T) {
	if ParseCatalogPolicy("Preview") != PolicyPreview {
		t.Error("expected preview policy")
	}
	if ParseCatalogPolicy("") != PolicyFull || ParseCatalogPolicy("all") != PolicyFull {
		t.Error("expected full policy by default")
	}
}
