package cart

import (
	"github.com/octolab/storefront/internal/cart/repository"
	"github.com/octolab/storefront/internal/cart/service"
	"go.uber.org/fx"
)

var Module = fx.Module("cart.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
