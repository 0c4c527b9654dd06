package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/tubeview/tubeview_backend/internal/core/ports/services"
	"github.com/tubeview/tubeview_backend/internal/dto"
	"github.com/tubeview/tubeview_backend/internal/middleware"
	"github.com/tubeview/tubeview_backend/internal/platform/config"
)

// RegisterRoutes sets up all application routes under one /api/v1 prefix.
// Catalog and credential routes are public; history and favorites sit behind
// the auth guard.
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	r.GET("/", GetHome)
	r.GET("/health", GetHealth)

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Endpoint not found"})
	})

	v1 := r.Group("/api/v1")

	registerAuthRoutes(v1, services.User, services.Token, cfg.IsProduction)
	registerVideoRoutes(v1, services.Catalog, cfg.IsProduction)

	protected := v1.Group("", middleware.AuthMiddleware(services.Token))
	registerProfileRoutes(protected, services.User)
	registerHistoryRoutes(protected, services.Activity, cfg.IsProduction)
	registerFavoriteRoutes(protected, services.Activity, cfg.IsProduction)
}

// errorDetails carries a failure's text to the caller outside production mode.
func errorDetails(err error, isProduction bool) string {
	if isProduction {
		return ""
	}
	return err.Error()
}

// bindingDetails summarizes binding failures outside production mode.
func bindingDetails(err error, isProduction bool) string {
	if isProduction {
		return ""
	}
	return dto.BindingErrorDetail(err)
}
