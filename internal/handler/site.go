package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"travel/internal/domain"
)

// SiteInfo is the public agency branding and contact details.
type SiteInfo struct {
	Agency         string
	Currency       string
	WhatsAppNumber string
	PhoneNumber    string
}

// SiteHandler serves site-wide details the pages render.
type SiteHandler struct {
	info SiteInfo
}

// NewSiteHandler creates a new SiteHandler.
func NewSiteHandler(info SiteInfo) *SiteHandler {
	return &SiteHandler{info: info}
}

// SiteResponse is the HTTP response for site details.
type SiteResponse struct {
	Agency       string  `json:"agency"`
	Currency     string  `json:"currency"`
	WhatsApp     string  `json:"whatsapp"`
	Phone        string  `json:"phone"`
	PhoneLink    string  `json:"phone_link"`
	DefaultPrice float64 `json:"default_max_price"`
	PreviewSize  int     `json:"preview_size"`
}

// GetSite handles GET /v1/site
func (h *SiteHandler) GetSite(c *gin.Context) {
	respondJSON(c, http.StatusOK, SiteResponse{
		Agency:       h.info.Agency,
		Currency:     h.info.Currency,
		WhatsApp:     h.info.WhatsAppNumber,
		Phone:        h.info.PhoneNumber,
		PhoneLink:    domain.PhoneLink(h.info.PhoneNumber),
		DefaultPrice: domain.DefaultMaxPrice,
		PreviewSize:  domain.PreviewSize,
	})
}
