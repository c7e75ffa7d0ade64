package catalog

import (
	"github.com/octolab/storefront/internal/catalog/repository"
	"github.com/octolab/storefront/internal/catalog/service"
	"go.uber.org/fx"
)

var Module = fx.Module("catalog.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
