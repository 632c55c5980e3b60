package collector

import (
	"path/filepath"
	"testing"
	"time"

	"polyglot/sources/languages"
	"polyglot/sources/metrics"
	"polyglot/sources/tracing"
	"polyglot/sources/tracker"
)

func newTestCollector(t *testing.T) *StatsCollector {
	t.Helper()

	log := tracing.NewConsoleLogger()
	return &StatsCollector{
		log:       log,
		metrics:   metrics.NewMetricsService(log),
		replies:   tracker.NewReplyTracker(),
		directory: languages.NewDirectory(&languages.DirectoryConfig{Path: filepath.Join(t.TempDir(), "nope.yaml")}, log),
		done:      make(chan struct{}),
	}
}

func TestStartStopsWhenDoneCloses(t *testing.T) {
	s := newTestCollector(t)

	stopped := make(chan struct{})
	go func() {
		s.start()
		close(stopped)
	}()

	close(s.done)

	select {
	case <-stopped:
	case <-time.After(5 * time.Second):
		t.Fatal("collector goroutine did not stop")
	}
}
