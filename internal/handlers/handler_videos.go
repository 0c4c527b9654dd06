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

// videoHandler proxies catalog requests to the external provider. These
// routes are public.
type videoHandler struct {
	catalog      portssvc.CatalogSvcFacade
	isProduction bool
}

func newVideoHandler(catalog portssvc.CatalogSvcFacade, isProduction bool) *videoHandler {
	return &videoHandler{
		catalog:      catalog,
		isProduction: isProduction,
	}
}

// registerVideoRoutes sets up the public catalog routes.
func registerVideoRoutes(rg *gin.RouterGroup, catalog portssvc.CatalogSvcFacade, isProduction bool) {
	h := newVideoHandler(catalog, isProduction)

	videos := rg.Group("/videos")
	{
		videos.GET("/search", h.search)
		videos.GET("/popular", h.popular)
		videos.GET("/:id", h.getVideo)
	}
}

func (h *videoHandler) search(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.SearchVideosParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid query parameters"})
		return
	}
	if params.Q == "" {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Search query is required"})
		return
	}

	videos, err := h.catalog.Search(c.Request.Context(), params.Q, params.MaxResults)
	if err != nil {
		h.respondCatalogError(c, logger, err, "Search failed")
		return
	}

	c.JSON(http.StatusOK, dto.ToListVideosResponse(videos))
}

func (h *videoHandler) getVideo(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	videoID := c.Param("id")

	video, err := h.catalog.GetVideo(c.Request.Context(), videoID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Video not found"})
			return
		}
		h.respondCatalogError(c, logger, err, "Failed to fetch video")
		return
	}

	c.JSON(http.StatusOK, dto.ToGetVideoResponse(video))
}

func (h *videoHandler) popular(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.PopularVideosParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid query parameters"})
		return
	}

	videos, err := h.catalog.Popular(c.Request.Context(), params.MaxResults)
	if err != nil {
		h.respondCatalogError(c, logger, err, "Failed to fetch popular videos")
		return
	}

	c.JSON(http.StatusOK, dto.ToListVideosResponse(videos))
}

// respondCatalogError maps provider failures. Misconfiguration and upstream
// failures both surface as 500; only the message differs. Upstream detail is
// carried to aid the caller's retry decision, except in production.
func (h *videoHandler) respondCatalogError(c *gin.Context, logger *slog.Logger, err error, fallback string) {
	switch {
	case errors.Is(err, apperrors.ErrMisconfigured):
		logger.Error("Video provider not configured")
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "YouTube API key not configured"})
	case errors.Is(err, apperrors.ErrUpstream):
		logger.Error("Upstream provider call failed", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: fallback, Details: errorDetails(err, h.isProduction)})
	default:
		logger.Error("Catalog request failed", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: fallback, Details: errorDetails(err, h.isProduction)})
	}
}
