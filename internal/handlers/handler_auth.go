package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mindnote-app/mindnote_backend/internal/apperrors"
	"github.com/mindnote-app/mindnote_backend/internal/core/domain"
	portssvc "github.com/mindnote-app/mindnote_backend/internal/core/ports/services"
	"github.com/mindnote-app/mindnote_backend/internal/dto"
	"github.com/mindnote-app/mindnote_backend/internal/middleware"
	"github.com/mindnote-app/mindnote_backend/internal/platform/config"
)

// authHandler handles registration, login, Google sign-in and token
// lifecycle.
type authHandler struct {
	cfg           *config.Config
	userSvc       portssvc.UserSvcFacade
	tokenSvc      portssvc.TokenSvcFacade
	googleAuthSvc portssvc.GoogleAuthSvcFacade
	entrySvc      portssvc.EntrySvcFacade
}

func newAuthHandler(cfg *config.Config, services *portssvc.ServiceContainer) *authHandler {
	return &authHandler{
		cfg:           cfg,
		userSvc:       services.UserSvc,
		tokenSvc:      services.TokenSvc,
		googleAuthSvc: services.GoogleAuthSvc,
		entrySvc:      services.EntrySvc,
	}
}

// registerAuthRoutes wires the public auth endpoints.
func registerAuthRoutes(r *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer) {
	h := newAuthHandler(cfg, services)
	auth := r.Group("/api/v1/auth")
	{
		auth.POST("/register", h.register)
		auth.POST("/login", loginRateLimit(), h.login)
		auth.POST("/google", h.googleSignIn)
		auth.POST("/refresh", h.refresh)
		auth.POST("/logout", middleware.AuthMiddleware(cfg.JWTSecret), h.logout)
	}
}

// setRefreshTokenCookie writes the refresh token as an HTTP-only cookie
// scoped to the auth endpoints.
func (h *authHandler) setRefreshTokenCookie(c *gin.Context, refreshToken string) {
	maxAge := int(h.cfg.RefreshTokenExpiryDuration.Seconds())
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(h.cfg.RefreshTokenCookieName, refreshToken, maxAge, h.cfg.RefreshTokenCookiePath, "", h.cfg.IsProduction, true)
}

func (h *authHandler) clearRefreshTokenCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(h.cfg.RefreshTokenCookieName, "", -1, h.cfg.RefreshTokenCookiePath, "", h.cfg.IsProduction, true)
}

// issueSession generates a token pair, sets the refresh cookie and
// writes the login response.
func (h *authHandler) issueSession(c *gin.Context, user *domain.User, status int) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	pair, err := h.tokenSvc.GenerateTokenPair(c.Request.Context(), user.UserID)
	if err != nil {
		logger.Error("Failed to generate token pair", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create session"})
		return
	}

	h.setRefreshTokenCookie(c, pair.RefreshToken)
	c.JSON(status, dto.LoginResponse{
		AccessToken: pair.AccessToken,
		ExpiresAt:   pair.AccessTokenExpiry,
		User:        dto.ToUserResponse(user),
	})
}

// register godoc
// @Summary Register a new account
// @Description Creates an email/password account, seeds the first-run demo entries and starts a session.
// @Tags auth
// @Accept json
// @Produce json
// @Param user body dto.CreateUserRequest true "Registration details"
// @Success 201 {object} dto.LoginResponse
// @Failure 400 {object} map[string]string "Invalid request format"
// @Failure 409 {object} map[string]string "Email already registered"
// @Failure 500 {object} map[string]string "Failed to register"
// @Router /auth/register [post]
func (h *authHandler) register(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	user, err := h.userSvc.CreateUser(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			c.JSON(http.StatusConflict, gin.H{"error": "Email already registered"})
			return
		}
		logger.Error("Failed to register user", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register"})
		return
	}

	h.seedDemoEntries(c, user.UserID)
	h.issueSession(c, user, http.StatusCreated)
}

// seedDemoEntries populates the first-run demo journal. Failure is
// logged and ignored; registration must not fail over sample content.
func (h *authHandler) seedDemoEntries(c *gin.Context, userID string) {
	if !h.cfg.DemoSeedEnabled {
		return
	}
	if err := h.entrySvc.SeedDemoEntries(c.Request.Context(), userID); err != nil {
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Error("Failed to seed demo entries", slog.String("error", err.Error()), slog.String("userID", userID))
	}
}

// login godoc
// @Summary Log in
// @Description Authenticates email/password credentials and starts a session. Rate limited per client IP.
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body dto.LoginRequest true "Credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} map[string]string "Invalid request format"
// @Failure 401 {object} map[string]string "Invalid credentials"
// @Failure 429 {object} map[string]string "Too many requests"
// @Failure 500 {object} map[string]string "Failed to log in"
// @Router /auth/login [post]
func (h *authHandler) login(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	user, err := h.userSvc.AuthenticateUser(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, apperrors.ErrUnauthorized) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
			return
		}
		logger.Error("Failed to authenticate user", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to log in"})
		return
	}

	h.issueSession(c, user, http.StatusOK)
}

// googleSignIn godoc
// @Summary Sign in with Google
// @Description Validates a Google ID token, creating the account on first sign-in, and starts a session. New accounts get the demo entries.
// @Tags auth
// @Accept json
// @Produce json
// @Param token body dto.GoogleSignInRequest true "Google ID token"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} map[string]string "Invalid request format"
// @Failure 401 {object} map[string]string "Invalid ID token"
// @Failure 500 {object} map[string]string "Failed to sign in"
// @Router /auth/google [post]
func (h *authHandler) googleSignIn(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.GoogleSignInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	user, created, err := h.googleAuthSvc.AuthenticateWithGoogle(c.Request.Context(), req.IDToken)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrUnauthorized):
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid ID token"})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed google sign-in", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to sign in"})
		}
		return
	}

	if created {
		h.seedDemoEntries(c, user.UserID)
	}
	h.issueSession(c, user, http.StatusOK)
}

// refresh godoc
// @Summary Refresh the session
// @Description Rotates the refresh token from the cookie and issues a new access token.
// @Tags auth
// @Produce json
// @Success 200 {object} dto.LoginResponse
// @Failure 401 {object} map[string]string "Invalid or expired refresh token"
// @Router /auth/refresh [post]
func (h *authHandler) refresh(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	refreshToken, err := c.Cookie(h.cfg.RefreshTokenCookieName)
	if err != nil || refreshToken == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Refresh token missing"})
		return
	}

	pair, err := h.tokenSvc.RefreshAccessToken(c.Request.Context(), refreshToken)
	if err != nil {
		h.clearRefreshTokenCookie(c)
		if errors.Is(err, apperrors.ErrUnauthorized) || errors.Is(err, apperrors.ErrRefreshTokenExpired) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired refresh token"})
			return
		}
		logger.Error("Failed to refresh session", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to refresh session"})
		return
	}

	h.setRefreshTokenCookie(c, pair.RefreshToken)
	c.JSON(http.StatusOK, gin.H{
		"accessToken": pair.AccessToken,
		"expiresAt":   pair.AccessTokenExpiry,
	})
}

// logout godoc
// @Summary Log out
// @Description Revokes the stored refresh token and clears the cookie.
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 204 "Logged out"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /auth/logout [post]
func (h *authHandler) logout(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.tokenSvc.Logout(c.Request.Context(), userID); err != nil {
		logger.Error("Failed to log out", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to log out"})
		return
	}

	h.clearRefreshTokenCookie(c)
	c.Status(http.StatusNoContent)
}
