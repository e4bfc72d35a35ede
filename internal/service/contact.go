package service

import (
	"context"
	"strings"
	"time"

	"travel/internal/domain"
	"travel/internal/repository"
)

// ContactService captures and manages contact form submissions.
type ContactService struct {
	repo                repository.ContactRepository
	notificationService *NotificationService
	now                 func() time.Time
}

// NewContactService creates a new ContactService.
func NewContactService(repo repository.ContactRepository, notificationService *NotificationService) *ContactService {
	return &ContactService{repo: repo, notificationService: notificationService, now: time.Now}
}

// SubmitRequest contains the fields of the public contact form.
type SubmitRequest struct {
	Name    string
	Email   string
	Phone   string
	Message string
}

// Submit validates and stores a new, unread submission.
func (s *ContactService) Submit(ctx context.Context, req SubmitRequest) (*domain.ContactSubmission, error) {
	sub := &domain.ContactSubmission{
		Name:        strings.TrimSpace(req.Name),
		Email:       strings.TrimSpace(req.Email),
		Phone:       strings.TrimSpace(req.Phone),
		Message:     strings.TrimSpace(req.Message),
		SubmittedAt: s.now().UTC(),
		Read:        false,
	}
	if err := sub.Validate(); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, sub); err != nil {
		return nil, err
	}

	s.notificationService.NotifyLeadReceived(ctx, sub)
	return sub, nil
}

// Inbox is the ordered submission list with its unread count.
type Inbox struct {
	Submissions []domain.ContactSubmission
	Unread      int
}

func newInbox(subs []domain.ContactSubmission) Inbox {
	if subs == nil {
		subs = []domain.ContactSubmission{}
	}
	return Inbox{Submissions: subs, Unread: domain.CountUnread(subs)}
}

// List returns submissions newest first.
func (s *ContactService) List(ctx context.Context) (Inbox, error) {
	subs, err := s.repo.GetAll(ctx)
	if err != nil {
		return Inbox{}, err
	}
	return newInbox(subs), nil
}

// Watch streams the inbox on every change until ctx is done.
func (s *ContactService) Watch(ctx context.Context) (<-chan Inbox, error) {
	updates, err := s.repo.Watch(ctx)
	if err != nil {
		return nil, err
	}

	out := make(chan Inbox)
	go func() {
		defer close(out)
		for subs := range updates {
			select {
			case out <- newInbox(subs):
			case <-ctx.Done():
				return
			}
		}
	}()
	return out, nil
}

// MarkRead flags a submission as read.
func (s *ContactService) MarkRead(ctx context.Context, id string) error {
	if id == "" {
		return ErrInvalidSubmissionID
	}
	return s.repo.MarkRead(ctx, id)
}

// Delete removes a submission.
func (s *ContactService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return ErrInvalidSubmissionID
	}
	return s.repo.Delete(ctx, id)
}
