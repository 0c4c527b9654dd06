package services

import (
	"github.com/tubeview/tubeview_backend/internal/core/ports/providers"
	portsrepo "github.com/tubeview/tubeview_backend/internal/core/ports/repositories"
	portssvc "github.com/tubeview/tubeview_backend/internal/core/ports/services"
	"github.com/tubeview/tubeview_backend/internal/platform/config"
)

// NewServiceContainer creates a service container with properly initialized dependencies.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, provider providers.VideoProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.User = NewUserService(repos.UserRepo)
	container.Token = NewTokenService(cfg)
	container.Activity = NewActivityService(repos.HistoryRepo, repos.FavoriteRepo)
	container.Catalog = NewCatalogService(provider)

	return container
}
