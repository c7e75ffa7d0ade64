package main

import (
	"github.com/bwmarrin/snowflake"
	"github.com/octolab/storefront/internal/clock"
	"github.com/octolab/storefront/internal/config"
	"github.com/octolab/storefront/internal/logger"
	"github.com/octolab/storefront/internal/migration"
	"github.com/octolab/storefront/internal/observability"
	"github.com/octolab/storefront/internal/server"
	"github.com/octolab/storefront/internal/session/sweeper"
	"github.com/octolab/storefront/pkg/db"
	"go.uber.org/fx"
)

func main() {
	app := fx.New(
		config.Module,
		logger.Module,
		observability.Module,
		fx.Provide(RegisterSnowflake),
		db.Module,
		clock.Module,
		migration.Module,
		server.Module,
		sweeper.Module,
	)
	app.Run()
}

func RegisterSnowflake() *snowflake.Node {
	node, err := snowflake.NewNode(1)
	if err != nil {
		panic(err)
	}
	return node
}
