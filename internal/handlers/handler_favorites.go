package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tubeview/tubeview_backend/internal/apperrors"
	portssvc "github.com/tubeview/tubeview_backend/internal/core/ports/services"
	"github.com/tubeview/tubeview_backend/internal/dto"
	"github.com/tubeview/tubeview_backend/internal/middleware"
)

// favoriteHandler handles the authenticated favorites routes. Deleting a
// favorite is deliberately absent from this surface.
type favoriteHandler struct {
	activity     portssvc.ActivitySvcFacade
	isProduction bool
}

func newFavoriteHandler(activity portssvc.ActivitySvcFacade, isProduction bool) *favoriteHandler {
	return &favoriteHandler{
		activity:     activity,
		isProduction: isProduction,
	}
}

// registerFavoriteRoutes sets up favorites routes on an auth-guarded group.
func registerFavoriteRoutes(rg *gin.RouterGroup, activity portssvc.ActivitySvcFacade, isProduction bool) {
	h := newFavoriteHandler(activity, isProduction)

	favorites := rg.Group("/favorites")
	{
		favorites.POST("", h.addFavorite)
		favorites.GET("", h.listFavorites)
	}
}

func (h *favoriteHandler) addFavorite(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.AddFavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request body"})
		return
	}

	if err := h.activity.AddFavorite(c.Request.Context(), userID, req); err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Video ID is required"})
		case errors.Is(err, apperrors.ErrDuplicate):
			c.JSON(http.StatusConflict, dto.ErrorResponse{Error: "Already in favorites"})
		default:
			logger.Error("Failed to add favorite", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to add to favorites", Details: errorDetails(err, h.isProduction)})
		}
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Success: true, Message: "Added to favorites"})
}

func (h *favoriteHandler) listFavorites(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Unauthorized"})
		return
	}

	entries, err := h.activity.ListFavorites(c.Request.Context(), userID)
	if err != nil {
		logger.Error("Failed to fetch favorites", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to fetch favorites", Details: errorDetails(err, h.isProduction)})
		return
	}

	c.JSON(http.StatusOK, dto.ToListFavoritesResponse(entries))
}
