package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"travel/internal/service"
)

// AnalyticsHandler handles visitor tracking and the dashboard summary.
type AnalyticsHandler struct {
	analyticsService *service.AnalyticsService
}

// NewAnalyticsHandler creates a new AnalyticsHandler.
func NewAnalyticsHandler(analyticsService *service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsService: analyticsService}
}

// VisitRequest is the HTTP request body for a page visit.
type VisitRequest struct {
	VisitorID string `json:"visitor_id"`
}

// RecordVisit handles POST /v1/visits
func (h *AnalyticsHandler) RecordVisit(c *gin.Context) {
	var req VisitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	if _, err := h.analyticsService.RecordVisit(c.Request.Context(), req.VisitorID, c.Request.UserAgent()); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// BrowserCountResponse is the number of visitors on one browser.
type BrowserCountResponse struct {
	Browser string `json:"browser"`
	Count   int    `json:"count"`
}

// SummaryResponse is the HTTP response for the dashboard.
type SummaryResponse struct {
	Visitors       int                    `json:"visitors"`
	ActiveVisitors int                    `json:"active_visitors"`
	Trips          int                    `json:"trips"`
	FeaturedTrips  int                    `json:"featured_trips"`
	UnreadMessages int                    `json:"unread_messages"`
	Browsers       []BrowserCountResponse `json:"browsers"`
}

// GetSummary handles GET /v1/admin/analytics
func (h *AnalyticsHandler) GetSummary(c *gin.Context) {
	sum, err := h.analyticsService.Summary(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	browsers := make([]BrowserCountResponse, 0, len(sum.Browsers))
	for _, b := range sum.Browsers {
		browsers = append(browsers, BrowserCountResponse{Browser: b.Browser, Count: b.Count})
	}

	respondJSON(c, http.StatusOK, SummaryResponse{
		Visitors:       sum.Visitors,
		ActiveVisitors: sum.ActiveVisitors,
		Trips:          sum.Trips,
		FeaturedTrips:  sum.FeaturedTrips,
		UnreadMessages: sum.UnreadMessages,
		Browsers:       browsers,
	})
}
