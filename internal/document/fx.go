package document

import (
	"go.uber.org/fx"

	"github.com/smallbiznis/docpress/internal/cache"
	"github.com/smallbiznis/docpress/internal/document/service"
	"github.com/smallbiznis/docpress/internal/render"
	"github.com/smallbiznis/docpress/internal/render/assets"
)

var Module = fx.Module("document.service",
	fx.Provide(func() cache.Cache[string, *render.Logo] {
		return cache.NewTTLCache[string, *render.Logo]()
	}),
	fx.Provide(assets.NewResolver),
	fx.Provide(service.NewService),
)
