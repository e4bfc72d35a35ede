// Package imagehost uploads trip images to an ImgBB-compatible hosting API.
package imagehost

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"time"
)

// ErrUploadFailed is wrapped by every failed upload.
var ErrUploadFailed = errors.New("image upload failed")

// Config holds the hosting endpoint and API key.
type Config struct {
	URL     string
	APIKey  string
	Timeout time.Duration
}

// Client posts images as multipart forms and returns their hosted URLs.
type Client struct {
	endpoint string
	apiKey   string
	client   *http.Client
}

// NewClient creates a new image hosting client.
func NewClient(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		endpoint: cfg.URL,
		apiKey:   cfg.APIKey,
		client:   &http.Client{Timeout: timeout},
	}
}

// uploadResponse is the subset of the hosting API response we read.
type uploadResponse struct {
	Success bool `json:"success"`
	Data    struct {
		URL string `json:"url"`
	} `json:"data"`
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Upload sends one image and returns its public URL.
func (c *Client) Upload(ctx context.Context, filename string, r io.Reader) (string, error) {
	if c.apiKey == "" {
		return "", fmt.Errorf("%w: no API key configured", ErrUploadFailed)
	}

	var body bytes.Buffer
	form := multipart.NewWriter(&body)
	part, err := form.CreateFormFile("image", filename)
	if err != nil {
		return "", fmt.Errorf("failed to create form file: %w", err)
	}
	if _, err := io.Copy(part, r); err != nil {
		return "", fmt.Errorf("failed to read %s: %w", filename, err)
	}
	if err := form.Close(); err != nil {
		return "", fmt.Errorf("failed to close form: %w", err)
	}

	endpoint, err := url.Parse(c.endpoint)
	if err != nil {
		return "", fmt.Errorf("invalid upload URL: %w", err)
	}
	q := endpoint.Query()
	q.Set("key", c.apiKey)
	endpoint.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint.String(), &body)
	if err != nil {
		return "", fmt.Errorf("failed to create upload request: %w", err)
	}
	req.Header.Set("Content-Type", form.FormDataContentType())

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUploadFailed, err)
	}
	defer resp.Body.Close()

	var parsed uploadResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("%w: status %d: unreadable response", ErrUploadFailed, resp.StatusCode)
	}
	if resp.StatusCode != http.StatusOK || !parsed.Success || parsed.Data.URL == "" {
		msg := parsed.Error.Message
		if msg == "" {
			msg = "no URL returned"
		}
		return "", fmt.Errorf("%w: status %d: %s", ErrUploadFailed, resp.StatusCode, msg)
	}
	return parsed.Data.URL, nil
}
