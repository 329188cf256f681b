package services

import (
	portsrepo "github.com/praxisbooks/asset_depreciation_app/internal/core/ports/repositories"
	portssvc "github.com/praxisbooks/asset_depreciation_app/internal/core/ports/services"
	"github.com/praxisbooks/asset_depreciation_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly
// initialized dependencies. The depreciation policy comes from configuration
// and is injected here, never read from ambient state.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Asset = NewAssetService(repos.AssetRepo, WithPolicy(cfg.DepreciationPolicy()))
	container.Reporting = NewReportingService(repos.AssetRepo)
	container.User = NewUserService(repos.UserRepo)

	return container
}
