package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/tubeview/tubeview_backend/internal/apperrors"
	portssvc "github.com/tubeview/tubeview_backend/internal/core/ports/services"
	"github.com/tubeview/tubeview_backend/internal/dto"
	"github.com/tubeview/tubeview_backend/internal/middleware"
)

// historyHandler handles the authenticated watch/search history routes.
type historyHandler struct {
	activity     portssvc.ActivitySvcFacade
	isProduction bool
}

func newHistoryHandler(activity portssvc.ActivitySvcFacade, isProduction bool) *historyHandler {
	return &historyHandler{
		activity:     activity,
		isProduction: isProduction,
	}
}

// registerHistoryRoutes sets up history routes on an auth-guarded group.
func registerHistoryRoutes(rg *gin.RouterGroup, activity portssvc.ActivitySvcFacade, isProduction bool) {
	h := newHistoryHandler(activity, isProduction)

	history := rg.Group("/history")
	{
		history.POST("", h.addHistory)
		history.GET("", h.listHistory)
		history.DELETE("/:id", h.deleteHistory)
		history.DELETE("", h.clearHistory)
	}
}

func (h *historyHandler) addHistory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.AddHistoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request body"})
		return
	}

	if err := h.activity.AddHistory(c.Request.Context(), userID, req); err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Video ID or search query is required"})
			return
		}
		logger.Error("Failed to save history", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to save history", Details: errorDetails(err, h.isProduction)})
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Success: true, Message: "History saved"})
}

func (h *historyHandler) listHistory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Unauthorized"})
		return
	}

	entries, err := h.activity.ListHistory(c.Request.Context(), userID)
	if err != nil {
		logger.Error("Failed to fetch history", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to fetch history", Details: errorDetails(err, h.isProduction)})
		return
	}

	c.JSON(http.StatusOK, dto.ToListHistoryResponse(entries))
}

func (h *historyHandler) deleteHistory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Unauthorized"})
		return
	}

	entryID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid history item ID"})
		return
	}

	if err := h.activity.DeleteHistory(c.Request.Context(), userID, entryID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "History item not found"})
			return
		}
		logger.Error("Failed to delete history item", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to delete history", Details: errorDetails(err, h.isProduction)})
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Success: true, Message: "History item deleted"})
}

func (h *historyHandler) clearHistory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.activity.ClearHistory(c.Request.Context(), userID); err != nil {
		logger.Error("Failed to clear history", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to clear history", Details: errorDetails(err, h.isProduction)})
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Success: true, Message: "All history cleared"})
}
