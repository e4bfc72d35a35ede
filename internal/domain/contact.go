package domain

import (
	"net/mail"
	"strings"
	"time"
)

// ContactSubmission is a lead captured by the public contact form.
type ContactSubmission struct {
	ID          string
	Name        string
	Email       string
	Phone       string // Optional
	Message     string
	SubmittedAt time.Time
	Read        bool
}

// Validate checks the fields every stored submission must have.
func (s *ContactSubmission) Validate() error {
	if strings.TrimSpace(s.Name) == "" {
		return validationError("name is required")
	}
	if strings.TrimSpace(s.Email) == "" {
		return validationError("email is required")
	}
	if _, err := mail.ParseAddress(s.Email); err != nil {
		return validationError("email is not a valid address")
	}
	if strings.TrimSpace(s.Message) == "" {
		return validationError("message is required")
	}
	return nil
}

// CountUnread returns how many submissions have not been read yet.
func CountUnread(subs []ContactSubmission) int {
	n := 0
	for i := range subs {
		if !subs[i].Read {
			n++
		}
	}
	return n
}
