package finder

import (
	"github.com/octolab/storefront/internal/finder/service"
	"go.uber.org/fx"
)

var Module = fx.Module("finder.service",
	fx.Provide(service.New),
)
