package contact

import (
	"github.com/octolab/storefront/internal/contact/repository"
	"github.com/octolab/storefront/internal/contact/service"
	"go.uber.org/fx"
)

var Module = fx.Module("contact.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
