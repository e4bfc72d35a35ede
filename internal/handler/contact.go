package handler

import (
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"travel/internal/domain"
	"travel/internal/service"
)

// ContactHandler handles contact form submissions and the admin inbox.
type ContactHandler struct {
	contactService *service.ContactService
}

// NewContactHandler creates a new ContactHandler.
func NewContactHandler(contactService *service.ContactService) *ContactHandler {
	return &ContactHandler{contactService: contactService}
}

// ContactRequest is the HTTP request body for the public contact form.
type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

// SubmissionResponse is the HTTP representation of a contact submission.
type SubmissionResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone,omitempty"`
	Message     string `json:"message"`
	SubmittedAt string `json:"submitted_at"`
	Read        bool   `json:"read"`
}

// InboxResponse is the HTTP representation of the admin inbox.
type InboxResponse struct {
	Submissions []SubmissionResponse `json:"submissions"`
	Unread      int                  `json:"unread"`
}

func toSubmissionResponse(s *domain.ContactSubmission) SubmissionResponse {
	return SubmissionResponse{
		ID:          s.ID,
		Name:        s.Name,
		Email:       s.Email,
		Phone:       s.Phone,
		Message:     s.Message,
		SubmittedAt: formatTime(s.SubmittedAt),
		Read:        s.Read,
	}
}

func toInboxResponse(inbox service.Inbox) InboxResponse {
	subs := make([]SubmissionResponse, 0, len(inbox.Submissions))
	for i := range inbox.Submissions {
		subs = append(subs, toSubmissionResponse(&inbox.Submissions[i]))
	}
	return InboxResponse{Submissions: subs, Unread: inbox.Unread}
}

// Submit handles POST /v1/contact
func (h *ContactHandler) Submit(c *gin.Context) {
	var req ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	sub, err := h.contactService.Submit(c.Request.Context(), service.SubmitRequest{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Message: req.Message,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	respondJSON(c, http.StatusCreated, toSubmissionResponse(sub))
}

// GetInbox handles GET /v1/admin/contacts
func (h *ContactHandler) GetInbox(c *gin.Context) {
	inbox, err := h.contactService.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respondJSON(c, http.StatusOK, toInboxResponse(inbox))
}

// StreamInbox handles GET /v1/admin/contacts/stream.
// It sends an "inbox" server-sent event with the full inbox on connect and after every change.
func (h *ContactHandler) StreamInbox(c *gin.Context) {
	ctx := c.Request.Context()
	updates, err := h.contactService.Watch(ctx)
	if err != nil {
		respondError(c, err)
		return
	}

	// Streams outlive the server write timeout.
	_ = http.NewResponseController(c.Writer).SetWriteDeadline(time.Time{})

	c.Header("Cache-Control", "no-cache")
	c.Header("X-Accel-Buffering", "no")
	c.Stream(func(w io.Writer) bool {
		select {
		case inbox, ok := <-updates:
			if !ok {
				return false
			}
			c.SSEvent("inbox", toInboxResponse(inbox))
			return true
		case <-ctx.Done():
			return false
		}
	})
}

// MarkRead handles POST /v1/admin/contacts/:id/read
func (h *ContactHandler) MarkRead(c *gin.Context) {
	if err := h.contactService.MarkRead(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// DeleteSubmission handles DELETE /v1/admin/contacts/:id
func (h *ContactHandler) DeleteSubmission(c *gin.Context) {
	if err := h.contactService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
