package session

import (
	"github.com/octolab/storefront/internal/session/repository"
	"github.com/octolab/storefront/internal/session/service"
	"go.uber.org/fx"
)

var Module = fx.Module("session.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
