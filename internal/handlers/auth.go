package handlers

import (
	"net/http"

	"github.com/Jaymi-01/framez/internal/auth"
	"github.com/Jaymi-01/framez/internal/logger"
	"github.com/Jaymi-01/framez/internal/metrics"
	"github.com/Jaymi-01/framez/internal/middleware"
	"github.com/Jaymi-01/framez/internal/util"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AuthHandlers serves signup, login, logout and the session profile
type AuthHandlers struct {
	authService     *auth.Service
	profilePictures []string
}

// NewAuthHandlers creates the auth handlers
func NewAuthHandlers(authService *auth.Service, profilePictures []string) *AuthHandlers {
	return &AuthHandlers{authService: authService, profilePictures: profilePictures}
}

// AuthMiddleware requires a valid bearer token
func (h *AuthHandlers) AuthMiddleware() gin.HandlerFunc {
	return middleware.AuthMiddleware(h.authService)
}

// Register creates an account
// POST /api/v1/auth/register
func (h *AuthHandlers) Register(c *gin.Context) {
	var req auth.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.RespondBadRequest(c, "invalid request body")
		return
	}

	resp, err := h.authService.Register(c.Request.Context(), req)
	if err != nil {
		metrics.Get().AuthEventsTotal.WithLabelValues("register", "failure").Inc()
		respondError(c, err, "failed to register")
		return
	}

	metrics.Get().AuthEventsTotal.WithLabelValues("register", "success").Inc()
	logger.Log.Info("User registered", logger.WithUserID(resp.User.ID))
	c.JSON(http.StatusCreated, resp)
}

// Login authenticates with email and password
// POST /api/v1/auth/login
func (h *AuthHandlers) Login(c *gin.Context) {
	var req auth.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.RespondBadRequest(c, "invalid request body")
		return
	}

	resp, err := h.authService.Login(c.Request.Context(), req)
	if err != nil {
		metrics.Get().AuthEventsTotal.WithLabelValues("login", "failure").Inc()
		respondError(c, err, "failed to log in")
		return
	}

	metrics.Get().AuthEventsTotal.WithLabelValues("login", "success").Inc()
	c.JSON(http.StatusOK, resp)
}

// Logout revokes the current token
// POST /api/v1/auth/logout
func (h *AuthHandlers) Logout(c *gin.Context) {
	token := c.GetString(util.ContextTokenKey)
	if err := h.authService.Logout(c.Request.Context(), token); err != nil {
		respondError(c, err, "failed to log out")
		return
	}

	metrics.Get().AuthEventsTotal.WithLabelValues("logout", "success").Inc()
	logger.Log.Info("User logged out",
		logger.WithUserID(c.GetString(util.ContextUserIDKey)),
		zap.Bool("revoked", h.authService.RevocationEnabled()),
	)
	c.JSON(http.StatusOK, gin.H{"revoked": h.authService.RevocationEnabled()})
}

// Me returns the session user
// GET /api/v1/auth/me, GET /api/v1/users/me
func (h *AuthHandlers) Me(c *gin.Context) {
	user, ok := util.GetUserFromContext(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, user)
}

// UpdateProfile changes the session user's display name or photo
// PATCH /api/v1/users/me
func (h *AuthHandlers) UpdateProfile(c *gin.Context) {
	userID, ok := util.GetUserIDFromContext(c)
	if !ok {
		return
	}

	var req auth.ProfileUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		util.RespondBadRequest(c, "invalid request body")
		return
	}

	user, err := h.authService.UpdateProfile(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, err, "failed to update profile")
		return
	}
	c.JSON(http.StatusOK, user)
}

// GetUser returns a user's public profile
// GET /api/v1/users/:id
func (h *AuthHandlers) GetUser(c *gin.Context) {
	user, err := h.authService.GetUser(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "failed to load user")
		return
	}
	c.JSON(http.StatusOK, user)
}

// ProfilePictures lists the preset avatars
// GET /api/v1/profile-pictures
func (h *AuthHandlers) ProfilePictures(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"pictures": h.profilePictures})
}
