package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"travel/internal/domain"
	"travel/internal/middleware"
	"travel/internal/service"
)

// AuthHandler handles administrator sign-in and sign-out.
type AuthHandler struct {
	authService *service.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// LoginRequest is the HTTP request body for signing in.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SessionResponse describes the signed-in administrator.
type SessionResponse struct {
	Email     string `json:"email"`
	ExpiresAt string `json:"expires_at"`
}

// LoginResponse carries the bearer token for admin requests.
type LoginResponse struct {
	Token   string          `json:"token"`
	Session SessionResponse `json:"session"`
}

func toSessionResponse(s domain.Session) SessionResponse {
	return SessionResponse{Email: s.Email, ExpiresAt: formatTime(s.ExpiresAt)}
}

// Login handles POST /v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	result, err := h.authService.SignIn(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}
	respondJSON(c, http.StatusOK, LoginResponse{Token: result.Token, Session: toSessionResponse(result.Session)})
}

// Logout handles POST /v1/admin/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	session, ok := middleware.SessionFrom(c)
	if !ok {
		respondError(c, service.ErrUnauthorized)
		return
	}

	if err := h.authService.SignOut(c.Request.Context(), session); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Me handles GET /v1/admin/me
func (h *AuthHandler) Me(c *gin.Context) {
	session, ok := middleware.SessionFrom(c)
	if !ok {
		respondError(c, service.ErrUnauthorized)
		return
	}
	respondJSON(c, http.StatusOK, toSessionResponse(session))
}
