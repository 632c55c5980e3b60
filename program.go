package main

import (
	"context"
	"time"

	"polyglot/sources/external"
	"polyglot/sources/features"
	"polyglot/sources/languages"
	"polyglot/sources/localization"
	"polyglot/sources/metrics"
	"polyglot/sources/metrics/collector"
	"polyglot/sources/network"
	"polyglot/sources/persistence"
	"polyglot/sources/platform"
	"polyglot/sources/telegram"
	"polyglot/sources/throttler"
	"polyglot/sources/tracing"
	"polyglot/sources/tracker"
	"polyglot/sources/translator"

	"github.com/joho/godotenv"
	"go.uber.org/fx"
)

var (
	version   = "0.0.0"
	buildTime = "1970-01-01"
)

func main() {
	_ = godotenv.Load()
	platform.SetAppManifest(version, buildTime, time.Now())

	fx.New(
		tracing.Module,
		external.Module,
		network.Module,
		persistence.Module,
		features.Module,
		languages.Module,
		localization.Module,
		throttler.Module,
		tracker.Module,
		translator.Module,
		metrics.Module,
		collector.Module,
		telegram.Module,

		fx.Invoke(func(lc fx.Lifecycle, log *tracing.Logger) {
			lc.Append(fx.Hook{
				OnStart: func(ctx context.Context) error {
					log.I("Polyglot started successfully", "version", version, "build_time", buildTime)
					return nil
				},
				OnStop: func(ctx context.Context) error {
					log.I("Polyglot stopped", "version", version, "build_time", buildTime)
					return nil
				},
			})
		}),
	).Run()
}
