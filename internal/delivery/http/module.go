package http

import (
	"go.uber.org/fx"

	"docstamp/internal/delivery/http/handler"
	"docstamp/internal/delivery/http/router"
)

var Module = fx.Module("http",
	fx.Provide(
		handler.NewPlacementHandler,
		handler.NewDocumentHandler,
		handler.NewHealthHandler,
		handler.NewLogHandler,
		router.NewRouter,
	),
)
