package domain

import (
	"strings"
	"time"
)

// LegalPage is an informational page such as the privacy policy or terms of service.
type LegalPage struct {
	ID        string
	Title     string
	Content   string
	UpdatedAt time.Time
}

// Validate checks the fields every stored legal page must have.
func (p *LegalPage) Validate() error {
	if strings.TrimSpace(p.Title) == "" {
		return validationError("title is required")
	}
	if strings.TrimSpace(p.Content) == "" {
		return validationError("content is required")
	}
	return nil
}
