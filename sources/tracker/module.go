package tracker

import "go.uber.org/fx"

var Module = fx.Module("tracker",
	fx.Provide(
		NewReplyTracker,
	),
)
