package languages

import "go.uber.org/fx"

var Module = fx.Module("languages",
	fx.Provide(
		NewDirectoryConfig,
		NewDirectory,
	),
)
