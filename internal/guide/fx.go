package guide

import (
	"github.com/octolab/storefront/internal/guide/repository"
	"github.com/octolab/storefront/internal/guide/service"
	"go.uber.org/fx"
)

var Module = fx.Module("guide.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
