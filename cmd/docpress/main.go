package main

import (
	"github.com/bwmarrin/snowflake"
	"go.uber.org/fx"
	"gorm.io/gorm"

	"github.com/smallbiznis/docpress/internal/clock"
	"github.com/smallbiznis/docpress/internal/config"
	"github.com/smallbiznis/docpress/internal/document"
	"github.com/smallbiznis/docpress/internal/events"
	"github.com/smallbiznis/docpress/internal/migration"
	"github.com/smallbiznis/docpress/internal/observability"
	"github.com/smallbiznis/docpress/internal/seed"
	"github.com/smallbiznis/docpress/internal/server"
	"github.com/smallbiznis/docpress/internal/template"
	"github.com/smallbiznis/docpress/pkg/db"
)

var version = "dev"

func main() {
	app := fx.New(
		config.Module,
		observability.Module,
		fx.Provide(func() *snowflake.Node {
			node, err := snowflake.NewNode(1)
			if err != nil {
				panic(err)
			}
			return node
		}),
		db.Module,
		clock.Module,
		fx.Provide(events.NewOutbox),
		fx.Invoke(func(conn *gorm.DB, cfg config.Config) error {
			if err := migration.RunMigrations(conn); err != nil {
				return err
			}
			return seed.EnsureDefaultTemplates(conn, cfg.DefaultOrgID)
		}),
		template.Module,
		document.Module,
		server.Module,
	)
	app.Run()
}
