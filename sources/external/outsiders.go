package external

import (
	"fmt"
	"net/http"

	"polyglot/sources/languages"
	"polyglot/sources/platform"
	"polyglot/sources/tracing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Outsiders struct {
	log       *tracing.Logger
	config    *OutsidersConfig
	directory *languages.Directory
	ss        *http.Server
	ms        *http.Server
}

func NewOutsiders(log *tracing.Logger, config *OutsidersConfig, directory *languages.Directory) *Outsiders {
	systemRegistry := prometheus.NewRegistry()

	systemRegistry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		collectors.NewBuildInfoCollector(),
	)

	x := &Outsiders{
		log:       log,
		config:    config,
		directory: directory,
	}

	x.ss = &http.Server{
		Addr: fmt.Sprintf(":%d", config.StartupPort),
		Handler: platform.Curry(http.NewServeMux, func(m *http.ServeMux) {
			m.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
				x.healthhandler(w, r)
			})
		}),
	}
	x.ms = &http.Server{
		Addr: fmt.Sprintf(":%d", config.MetricsPort),
		Handler: platform.Curry(http.NewServeMux, func(m *http.ServeMux) {
			m.Handle("/system/metrics", promhttp.HandlerFor(systemRegistry, promhttp.HandlerOpts{}))
			m.Handle("/metrics", promhttp.Handler())
		}),
	}

	return x
}

func (x *Outsiders) startup() {
	x.log.I("Health server is starting", tracing.OutsiderKind, "startup", "port", x.config.StartupPort)

	if err := x.ss.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		x.log.F("Failed to start health server", tracing.OutsiderKind, "startup", tracing.InnerError, err)
	}
}

func (x *Outsiders) metrics() {
	x.log.I("Metrics server is starting", tracing.OutsiderKind, "metrics", "port", x.config.MetricsPort)

	if err := x.ms.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		x.log.F("Failed to start metrics server", tracing.OutsiderKind, "metrics", tracing.InnerError, err)
	}
}

func (x *Outsiders) healthhandler(w http.ResponseWriter, r *http.Request) {
	x.log.I("Outsider service got a ping", "method", r.Method, "path", r.URL.Path, "remote", r.RemoteAddr)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	body := fmt.Sprintf(`{"status":"healthy","service":"polyglot","version":%q,"supported_languages":%d}`,
		platform.GetAppVersion(), x.directory.Len())
	_, _ = w.Write([]byte(body))
}
