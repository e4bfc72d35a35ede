package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"travel/internal/domain"
	"travel/internal/service"
)

// RoomPriceInfo is the resolved price of one room type.
type RoomPriceInfo struct {
	Room  string  `json:"room"`
	Price float64 `json:"price"`
}

func roomPrices(prices []domain.RoomPrice) []RoomPriceInfo {
	out := make([]RoomPriceInfo, 0, len(prices))
	for _, rp := range prices {
		out = append(out, RoomPriceInfo{Room: rp.Room.String(), Price: rp.Price})
	}
	return out
}

// TripResponse is the full HTTP representation of a trip.
type TripResponse struct {
	ID                 string          `json:"id"`
	Title              string          `json:"title"`
	Duration           string          `json:"duration"`
	Location           string          `json:"location"`
	Price              float64         `json:"price"`
	TriplePrice        *float64        `json:"triple_price"`
	TwinPrice          *float64        `json:"twin_price"`
	RoomPrices         []RoomPriceInfo `json:"room_prices"`
	ImageURLs          []string        `json:"image_urls"`
	Itinerary          []string        `json:"itinerary"`
	Featured           bool            `json:"featured"`
	ComingSoon         bool            `json:"coming_soon"`
	CancellationPolicy string          `json:"cancellation_policy"`
	TermsAndConditions string          `json:"terms_and_conditions"`
	ThingsToCarry      string          `json:"things_to_carry"`
	CreatedAt          string          `json:"created_at,omitempty"`
	UpdatedAt          string          `json:"updated_at,omitempty"`
}

func toTripResponse(t *domain.Trip) TripResponse {
	return TripResponse{
		ID:                 t.ID,
		Title:              t.Title,
		Duration:           t.Duration,
		Location:           t.Location,
		Price:              t.Price,
		TriplePrice:        t.TriplePrice,
		TwinPrice:          t.TwinPrice,
		RoomPrices:         roomPrices(t.RoomPrices()),
		ImageURLs:          nonNilStrings(t.ImageURLs),
		Itinerary:          nonNilStrings(t.Itinerary),
		Featured:           t.Featured,
		ComingSoon:         t.ComingSoon,
		CancellationPolicy: t.CancellationPolicy,
		TermsAndConditions: t.TermsAndConditions,
		ThingsToCarry:      t.ThingsToCarry,
		CreatedAt:          formatTime(t.CreatedAt),
		UpdatedAt:          formatTime(t.UpdatedAt),
	}
}

// TripRequest is the HTTP request body for creating or replacing a trip.
type TripRequest struct {
	Title              string   `json:"title"`
	Duration           string   `json:"duration"`
	Location           string   `json:"location"`
	Price              float64  `json:"price"`
	TriplePrice        *float64 `json:"triple_price"`
	TwinPrice          *float64 `json:"twin_price"`
	ImageURLs          []string `json:"image_urls"`
	Itinerary          []string `json:"itinerary"`
	Featured           bool     `json:"featured"`
	ComingSoon         bool     `json:"coming_soon"`
	CancellationPolicy string   `json:"cancellation_policy"`
	TermsAndConditions string   `json:"terms_and_conditions"`
	ThingsToCarry      string   `json:"things_to_carry"`
}

func (r TripRequest) toInput() service.TripInput {
	return service.TripInput{
		Title:              r.Title,
		Duration:           r.Duration,
		Location:           r.Location,
		Price:              r.Price,
		TriplePrice:        r.TriplePrice,
		TwinPrice:          r.TwinPrice,
		ImageURLs:          r.ImageURLs,
		Itinerary:          r.Itinerary,
		Featured:           r.Featured,
		ComingSoon:         r.ComingSoon,
		CancellationPolicy: r.CancellationPolicy,
		TermsAndConditions: r.TermsAndConditions,
		ThingsToCarry:      r.ThingsToCarry,
	}
}

// TripHandler handles administrator requests for trips.
type TripHandler struct {
	tripService     *service.TripService
	locationService *service.LocationService
}

// NewTripHandler creates a new TripHandler.
func NewTripHandler(tripService *service.TripService, locationService *service.LocationService) *TripHandler {
	return &TripHandler{tripService: tripService, locationService: locationService}
}

// GetAll handles GET /v1/admin/trips
func (h *TripHandler) GetAll(c *gin.Context) {
	trips, err := h.tripService.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	response := make([]TripResponse, 0, len(trips))
	for i := range trips {
		response = append(response, toTripResponse(&trips[i]))
	}
	respondJSON(c, http.StatusOK, gin.H{"trips": response})
}

// CreateTrip handles POST /v1/admin/trips
func (h *TripHandler) CreateTrip(c *gin.Context) {
	var req TripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	trip, err := h.tripService.Create(c.Request.Context(), req.toInput())
	if err != nil {
		respondError(c, err)
		return
	}
	respondJSON(c, http.StatusCreated, toTripResponse(trip))
}

// UpdateTrip handles PUT /v1/admin/trips/:id
func (h *TripHandler) UpdateTrip(c *gin.Context) {
	var req TripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	trip, err := h.tripService.Update(c.Request.Context(), c.Param("id"), req.toInput())
	if err != nil {
		respondError(c, err)
		return
	}
	respondJSON(c, http.StatusOK, toTripResponse(trip))
}

// DeleteTrip handles DELETE /v1/admin/trips/:id
func (h *TripHandler) DeleteTrip(c *gin.Context) {
	if err := h.tripService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// SuggestLocations handles GET /v1/admin/locations?q=
func (h *TripHandler) SuggestLocations(c *gin.Context) {
	names := h.locationService.Suggest(c.Request.Context(), c.Query("q"))
	respondJSON(c, http.StatusOK, gin.H{"suggestions": names})
}

func nonNilStrings(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
