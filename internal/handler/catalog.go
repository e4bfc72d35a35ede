package handler

import (
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"travel/internal/domain"
	"travel/internal/service"
)

// CatalogHandler handles public catalog requests.
type CatalogHandler struct {
	catalogService *service.CatalogService
	bookingService *service.BookingService
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(catalogService *service.CatalogService, bookingService *service.BookingService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService, bookingService: bookingService}
}

// TripCard is the catalog list representation of a trip.
type TripCard struct {
	ID         string          `json:"id"`
	Title      string          `json:"title"`
	Duration   string          `json:"duration"`
	Location   string          `json:"location"`
	Price      float64         `json:"price"`
	RoomPrices []RoomPriceInfo `json:"room_prices"`
	CoverImage string          `json:"cover_image,omitempty"`
	Featured   bool            `json:"featured"`
	ComingSoon bool            `json:"coming_soon"`
}

// CatalogResponse is the HTTP response for a catalog page.
type CatalogResponse struct {
	Trips       []TripCard `json:"trips"`
	Total       int        `json:"total"`
	HasMore     bool       `json:"has_more"`
	Unavailable bool       `json:"unavailable"`
}

// GetCatalog handles GET /v1/trips?q=&max_price=&view=
func (h *CatalogHandler) GetCatalog(c *gin.Context) {
	maxPrice := 0.0
	if raw := c.Query("max_price"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "max_price must be a number"})
			return
		}
		maxPrice = v
	}

	query := domain.NewCatalogQuery(c.Query("q"), maxPrice)
	view := h.catalogService.View(c.Request.Context(), query, domain.ParseCatalogPolicy(c.Query("view")))

	cards := make([]TripCard, 0, len(view.Trips))
	for i := range view.Trips {
		t := &view.Trips[i]
		cards = append(cards, TripCard{
			ID:         t.ID,
			Title:      t.Title,
			Duration:   t.Duration,
			Location:   t.DisplayLocation(),
			Price:      t.Price,
			RoomPrices: roomPrices(t.RoomPrices()),
			CoverImage: t.CoverImage(),
			Featured:   t.Featured,
			ComingSoon: t.ComingSoon,
		})
	}

	respondJSON(c, http.StatusOK, CatalogResponse{
		Trips:       cards,
		Total:       view.Total,
		HasMore:     view.HasMore,
		Unavailable: view.Unavailable,
	})
}

// TripDetailResponse is the HTTP response for the trip detail page.
type TripDetailResponse struct {
	TripResponse
	DisplayLocation    string   `json:"display_location"`
	CoverImage         string   `json:"cover_image,omitempty"`
	Bookable           bool     `json:"bookable"`
	CancellationPoints []string `json:"cancellation_points"`
	TermsPoints        []string `json:"terms_points"`
	CarryPoints        []string `json:"carry_points"`
}

// GetTrip handles GET /v1/trips/:id
func (h *CatalogHandler) GetTrip(c *gin.Context) {
	detail, err := h.catalogService.Detail(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	response := TripDetailResponse{
		TripResponse:       toTripResponse(detail.Trip),
		DisplayLocation:    detail.Location,
		CoverImage:         detail.CoverImage,
		Bookable:           detail.Bookable,
		CancellationPoints: detail.CancellationPolicy,
		TermsPoints:        detail.TermsAndConditions,
		CarryPoints:        detail.ThingsToCarry,
	}
	respondJSON(c, http.StatusOK, response)
}

// BookingResponse is the HTTP response carrying a prefilled booking link.
type BookingResponse struct {
	TripID  string  `json:"trip_id"`
	Room    string  `json:"room"`
	Price   float64 `json:"price"`
	Message string  `json:"message"`
	URL     string  `json:"url"`
}

// CustomizeLinkResponse is the HTTP response for the customize-trip link.
type CustomizeLinkResponse struct {
	Message string `json:"message"`
	URL     string `json:"url"`
}

// GetBooking handles GET /v1/trips/:id/booking?room=
func (h *CatalogHandler) GetBooking(c *gin.Context) {
	room, err := domain.ParseRoomType(c.Query("room"))
	if err != nil {
		respondError(c, err)
		return
	}

	link, err := h.bookingService.Book(c.Request.Context(), c.Param("id"), room)
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, BookingResponse{
		TripID:  link.TripID,
		Room:    link.Room.String(),
		Price:   link.Price,
		Message: link.Message,
		URL:     link.URL,
	})
}

// GetCustomizeLink handles GET /v1/contact/whatsapp
func (h *CatalogHandler) GetCustomizeLink(c *gin.Context) {
	link := h.bookingService.CustomizeLink()
	respondJSON(c, http.StatusOK, CustomizeLinkResponse{Message: link.Message, URL: link.URL})
}
