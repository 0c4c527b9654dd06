package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	"github.com/tubeview/tubeview_backend/internal/apperrors"
	portssvc "github.com/tubeview/tubeview_backend/internal/core/ports/services"
	"github.com/tubeview/tubeview_backend/internal/dto"
	"github.com/tubeview/tubeview_backend/internal/middleware"
)

// authHandler handles registration and login.
type authHandler struct {
	userService  portssvc.UserSvcFacade
	tokenService portssvc.TokenSvcFacade
	isProduction bool
}

func newAuthHandler(us portssvc.UserSvcFacade, ts portssvc.TokenSvcFacade, isProduction bool) *authHandler {
	return &authHandler{
		userService:  us,
		tokenService: ts,
		isProduction: isProduction,
	}
}

// registerAuthRoutes sets up the public credential routes, rate limited per IP.
func registerAuthRoutes(rg *gin.RouterGroup, userService portssvc.UserSvcFacade, tokenService portssvc.TokenSvcFacade, isProduction bool) {
	h := newAuthHandler(userService, tokenService, isProduction)

	// 5 requests per minute per IP against credential brute force.
	rate, _ := limiter.NewRateFromFormatted("5-M")
	ipLimiter := limiter.New(memory.NewStore(), rate)

	auth := rg.Group("/auth", middleware.RateLimit(ipLimiter))
	{
		auth.POST("/register", h.register)
		auth.POST("/login", h.login)
	}
}

// registerProfileRoutes sets up the authenticated identity routes.
func registerProfileRoutes(rg *gin.RouterGroup, userService portssvc.UserSvcFacade) {
	h := &authHandler{userService: userService}
	rg.GET("/auth/me", h.me)
}

// me re-reads the token holder's account from the store, so a stale or
// deleted account is caught even while its token is still valid.
func (h *authHandler) me(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Unauthorized"})
		return
	}

	user, err := h.userService.GetUser(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "User not found"})
			return
		}
		logger.Error("Failed to load user profile", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to load profile"})
		return
	}

	c.JSON(http.StatusOK, dto.ProfileResponse{Success: true, User: dto.ToUserResponse(user)})
}

// register creates an account and returns a session token.
func (h *authHandler) register(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Username, email and password are required", Details: bindingDetails(err, h.isProduction)})
		return
	}

	user, err := h.userService.Register(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			c.JSON(http.StatusConflict, dto.ErrorResponse{Error: "User already exists"})
			return
		}
		logger.Error("Failed to register user", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to register user"})
		return
	}

	token, err := h.tokenService.IssueToken(user)
	if err != nil {
		logger.Error("Failed to issue session token", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to generate token"})
		return
	}

	logger.Info("User registered", slog.Int64("user_id", user.ID))
	c.JSON(http.StatusOK, dto.AuthResponse{
		Success: true,
		Token:   token,
		User:    dto.ToUserResponse(user),
	})
}

// login verifies credentials and returns a session token.
func (h *authHandler) login(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Email and password are required", Details: bindingDetails(err, h.isProduction)})
		return
	}

	user, err := h.userService.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, apperrors.ErrUnauthorized) {
			// One generic message for both unknown email and wrong password.
			c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Invalid email or password"})
			return
		}
		logger.Error("Failed to authenticate user", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Login failed"})
		return
	}

	token, err := h.tokenService.IssueToken(user)
	if err != nil {
		logger.Error("Failed to issue session token", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to generate token"})
		return
	}

	logger.Info("User logged in", slog.Int64("user_id", user.ID))
	c.JSON(http.StatusOK, dto.AuthResponse{
		Success: true,
		Token:   token,
		User:    dto.ToUserResponse(user),
	})
}
