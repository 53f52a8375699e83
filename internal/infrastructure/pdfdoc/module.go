package pdfdoc

import "go.uber.org/fx"

var Module = fx.Module("pdfdoc",
	fx.Provide(NewLoader),
	fx.Provide(NewExtractor),
)
