package collector

import (
	"context"
	"time"

	"polyglot/sources/languages"
	"polyglot/sources/metrics"
	"polyglot/sources/tracing"
	"polyglot/sources/tracker"

	"go.uber.org/fx"
)

// StatsCollector periodically mirrors in-memory state into gauges.
type StatsCollector struct {
	log       *tracing.Logger
	metrics   *metrics.MetricsService
	replies   *tracker.ReplyTracker
	directory *languages.Directory
	done      chan struct{}
}

func NewStatsCollector(
	lc fx.Lifecycle,
	log *tracing.Logger,
	metrics *metrics.MetricsService,
	replies *tracker.ReplyTracker,
	directory *languages.Directory,
) *StatsCollector {
	s := &StatsCollector{
		log:       log,
		metrics:   metrics,
		replies:   replies,
		directory: directory,
		done:      make(chan struct{}),
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go s.start()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			close(s.done)
			return nil
		},
	})

	return s
}

func (s *StatsCollector) start() {
	ticker := time.NewTicker(1 * time.Minute)
	defer ticker.Stop()

	s.collectStats()

	for {
		select {
		case <-ticker.C:
			s.collectStats()
		case <-s.done:
			return
		}
	}
}

func (s *StatsCollector) collectStats() {
	s.metrics.SetTrackedReplies(float64(s.replies.Len()))
	s.metrics.SetSupportedLanguages(float64(s.directory.Len()))
}
