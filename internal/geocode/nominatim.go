// Package geocode suggests place names for the admin trip form.
package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	// MinQueryLength is the shortest query that is sent to the geocoder.
	MinQueryLength = 3

	// MaxSuggestions caps the number of names returned.
	MaxSuggestions = 5
)

// Client queries a Nominatim-compatible search API.
type Client struct {
	endpoint  string
	userAgent string
	client    *http.Client
}

// NewClient creates a new geocoding client.
func NewClient(endpoint, userAgent string) *Client {
	return &Client{
		endpoint:  endpoint,
		userAgent: userAgent,
		client:    &http.Client{Timeout: 10 * time.Second},
	}
}

type place struct {
	DisplayName string `json:"display_name"`
}

// Suggest returns up to MaxSuggestions place names matching query.
// Queries shorter than MinQueryLength return no suggestions without a request.
func (c *Client) Suggest(ctx context.Context, query string) ([]string, error) {
	query = strings.TrimSpace(query)
	if len([]rune(query)) < MinQueryLength {
		return []string{}, nil
	}

	u, err := url.Parse(c.endpoint)
	if err != nil {
		return nil, fmt.Errorf("invalid geocoder URL: %w", err)
	}
	q := u.Query()
	q.Set("format", "json")
	q.Set("q", query)
	q.Set("limit", fmt.Sprint(MaxSuggestions))
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create geocoder request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("geocoder request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("geocoder returned status %d", resp.StatusCode)
	}

	var places []place
	if err := json.NewDecoder(resp.Body).Decode(&places); err != nil {
		return nil, fmt.Errorf("failed to decode geocoder response: %w", err)
	}

	names := make([]string, 0, MaxSuggestions)
	for _, p := range places {
		if p.DisplayName == "" {
			continue
		}
		names = append(names, p.DisplayName)
		if len(names) == MaxSuggestions {
			break
		}
	}
	return names, nil
}
