package redis

import "go.uber.org/fx"

var Module = fx.Module("redis",
	fx.Provide(NewRedisClient),
	fx.Provide(NewGeometryCache),
)
