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
// 4. CONTACT SUBMISSIONS
// ──────────────────────────────────────────────

func newContactService(repo *MockContactRepository) *service.ContactService {
	logger, _ := NullLogger()
	return service.NewContactService(repo, service.NewNotificationService(logger))
}

func TestContact_SubmitValidates(t *testing.T) {
	t.Parallel()

	repo := NewMockContactRepository()
	svc := newContactService(repo)

	cases := []struct {
		name string
		req  service.SubmitRequest
	}{
		{"missing name", service.SubmitRequest{Email: "a@example.com", Message: "hi"}},
		{"missing email", service.SubmitRequest{Name: "A", Message: "hi"}},
		{"bad email", service.SubmitRequest{Name: "A", Email: "not-an-email", Message: "hi"}},
		{"blank message", service.SubmitRequest{Name: "A", Email: "a@example.com", Message: "   "}},
	}
	for _, tc := range cases {
		if _, err := svc.Submit(context.Background(), tc.req); !errors.Is(err, domain.ErrValidation) {
			t.Errorf("%s: expected validation error, got %v", tc.name, err)
		}
	}
}

func TestContact_SubmitStoresUnread(t *testing.T) {
	t.Parallel()

	repo := NewMockContactRepository()
	svc := newContactService(repo)

	sub, err := svc.Submit(context.Background(), service.SubmitRequest{
		Name:    " Priya ",
		Email:   "priya@example.com",
		Message: "Planning a family trip in May",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if sub.ID == "" || sub.Read || sub.SubmittedAt.IsZero() {
		t.Errorf("unexpected submission: %+v", sub)
	}
	if sub.Name != "Priya" {
		t.Errorf("expected trimmed name, got %q", sub.Name)
	}
	if sub.Phone != "" {
		t.Errorf("expected no phone, got %q", sub.Phone)
	}
}

func TestContact_InboxNewestFirstWithUnreadCount(t *testing.T) {
	t.Parallel()

	repo := NewMockContactRepository()
	base := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	for i, name := range []string{"First", "Second", "Third"} {
		_ = repo.Create(context.Background(), &domain.ContactSubmission{
			Name: name, Email: "x@example.com", Message: "m", SubmittedAt: base.Add(time.Duration(i) * time.Minute),
		})
	}
	svc := newContactService(repo)

	inbox, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if inbox.Submissions[0].Name != "Third" || inbox.Submissions[2].Name != "First" {
		t.Errorf("unexpected order: %s .. %s", inbox.Submissions[0].Name, inbox.Submissions[2].Name)
	}
	if inbox.Unread != 3 {
		t.Errorf("expected 3 unread, got %d", inbox.Unread)
	}

	if err := svc.MarkRead(context.Background(), inbox.Submissions[1].ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	inbox, _ = svc.List(context.Background())
	if inbox.Unread != 2 {
		t.Errorf("expected 2 unread after marking, got %d", inbox.Unread)
	}
}

func TestContact_WatchDeliversChanges(t *testing.T) {
	t.Parallel()

	repo := NewMockContactRepository()
	svc := newContactService(repo)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	updates, err := svc.Watch(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	initial := <-updates
	if len(initial.Submissions) != 0 {
		t.Fatalf("expected empty initial inbox, got %d", len(initial.Submissions))
	}

	if _, err := svc.Submit(context.Background(), service.SubmitRequest{Name: "Ravi", Email: "ravi@example.com", Message: "Hello"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	select {
	case inbox := <-updates:
		if len(inbox.Submissions) != 1 || inbox.Unread != 1 {
			t.Errorf("unexpected inbox: %+v", inbox)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for inbox update")
	}

	cancel()
	for range updates {
	}
}

func TestContact_InvalidIDs(t *testing.T) {
	t.Parallel()

	svc := newContactService(NewMockContactRepository())

	if err := svc.MarkRead(context.Background(), ""); !errors.Is(err, service.ErrInvalidSubmissionID) {
		t.Errorf("expected ErrInvalidSubmissionID, got %v", err)
	}
	if err := svc.Delete(context.Background(), ""); !errors.Is(err, service.ErrInvalidSubmissionID) {
		t.Errorf("expected ErrInvalidSubmissionID, got %v", err)
	}
}
