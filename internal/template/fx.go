package template

import (
	"go.uber.org/fx"

	"github.com/smallbiznis/docpress/internal/template/repository"
	"github.com/smallbiznis/docpress/internal/template/service"
)

var Module = fx.Module("template.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.NewService),
)
