package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"travel/internal/domain"
	"travel/internal/service"
)

// LegalHandler handles HTTP requests for legal pages.
type LegalHandler struct {
	legalService *service.LegalService
}

// NewLegalHandler creates a new LegalHandler.
func NewLegalHandler(legalService *service.LegalService) *LegalHandler {
	return &LegalHandler{legalService: legalService}
}

// LegalPageRequest is the HTTP request body for a legal page.
type LegalPageRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// LegalPageResponse is the HTTP response for a legal page.
type LegalPageResponse struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	UpdatedAt string `json:"updated_at,omitempty"`
}

func toLegalPageResponse(p *domain.LegalPage) LegalPageResponse {
	return LegalPageResponse{ID: p.ID, Title: p.Title, Content: p.Content, UpdatedAt: formatTime(p.UpdatedAt)}
}

// GetAll handles GET /v1/legal
func (h *LegalHandler) GetAll(c *gin.Context) {
	pages, err := h.legalService.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	response := make([]LegalPageResponse, 0, len(pages))
	for i := range pages {
		response = append(response, toLegalPageResponse(&pages[i]))
	}
	respondJSON(c, http.StatusOK, gin.H{"pages": response})
}

// GetPage handles GET /v1/legal/:id
func (h *LegalHandler) GetPage(c *gin.Context) {
	page, err := h.legalService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondJSON(c, http.StatusOK, toLegalPageResponse(page))
}

// CreatePage handles POST /v1/admin/legal
func (h *LegalHandler) CreatePage(c *gin.Context) {
	var req LegalPageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	page, err := h.legalService.Create(c.Request.Context(), service.LegalPageInput{Title: req.Title, Content: req.Content})
	if err != nil {
		respondError(c, err)
		return
	}
	respondJSON(c, http.StatusCreated, toLegalPageResponse(page))
}

// UpdatePage handles PUT /v1/admin/legal/:id
func (h *LegalHandler) UpdatePage(c *gin.Context) {
	var req LegalPageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	page, err := h.legalService.Update(c.Request.Context(), c.Param("id"), service.LegalPageInput{Title: req.Title, Content: req.Content})
	if err != nil {
		respondError(c, err)
		return
	}
	respondJSON(c, http.StatusOK, toLegalPageResponse(page))
}

// DeletePage handles DELETE /v1/admin/legal/:id
func (h *LegalHandler) DeletePage(c *gin.Context) {
	if err := h.legalService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
