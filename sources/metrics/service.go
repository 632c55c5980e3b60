package metrics

import (
	"time"

	"polyglot/sources/tracing"

	"github.com/prometheus/client_golang/prometheus"
)

type MetricsService struct {
	log *tracing.Logger
}

var (
	messagesHandled = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "polyglot_messages_handled_total",
			Help: "Total number of messages handled by the poller",
		},
		[]string{"status"},
	)

	messagesIgnored = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "polyglot_messages_ignored_total",
			Help: "Total number of messages ignored",
		},
		[]string{"reason"},
	)

	commandsUsed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "polyglot_commands_used_total",
			Help: "Total number of commands used",
		},
		[]string{"command"},
	)

	messagesSent = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "polyglot_messages_sent_total",
			Help: "Total number of messages sent by the diplomat",
		},
		[]string{"status"},
	)

	translations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "polyglot_translations_total",
			Help: "Total number of translation requests by target language",
		},
		[]string{"language", "status"},
	)

	throttleBlocked = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "polyglot_throttle_blocked_total",
			Help: "Total number of requests blocked by the throttler",
		},
	)

	staleDeletes = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "polyglot_stale_deletes_total",
			Help: "Total number of stale translation cleanup attempts",
		},
		[]string{"status"},
	)

	translationDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "polyglot_translation_duration_seconds",
			Help:    "Duration of translation provider requests",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"provider"},
	)

	messageProcessingDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "polyglot_message_processing_duration_seconds",
			Help:    "Total duration of message processing",
			Buckets: prometheus.DefBuckets,
		},
	)

	trackedReplies = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "polyglot_tracked_replies",
			Help: "Number of bot translations currently tracked for cleanup",
		},
	)

	supportedLanguages = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "polyglot_supported_languages",
			Help: "Number of languages in the command table",
		},
	)
)

func init() {
	prometheus.MustRegister(messagesHandled)
	prometheus.MustRegister(messagesIgnored)
	prometheus.MustRegister(commandsUsed)
	prometheus.MustRegister(messagesSent)
	prometheus.MustRegister(translations)
	prometheus.MustRegister(throttleBlocked)
	prometheus.MustRegister(staleDeletes)
	prometheus.MustRegister(translationDuration)
	prometheus.MustRegister(messageProcessingDuration)
	prometheus.MustRegister(trackedReplies)
	prometheus.MustRegister(supportedLanguages)
}

func NewMetricsService(log *tracing.Logger) *MetricsService {
	return &MetricsService{
		log: log,
	}
}

func (s *MetricsService) RecordMessageHandled(status string) {
	messagesHandled.WithLabelValues(status).Inc()
}

func (s *MetricsService) RecordMessageIgnored(reason string) {
	messagesIgnored.WithLabelValues(reason).Inc()
}

func (s *MetricsService) RecordCommandUsed(command string) {
	commandsUsed.WithLabelValues(command).Inc()
}

func (s *MetricsService) RecordMessageSent(status string) {
	messagesSent.WithLabelValues(status).Inc()
}

func (s *MetricsService) RecordTranslation(language, status string) {
	translations.WithLabelValues(language, status).Inc()
}

func (s *MetricsService) RecordThrottleBlocked() {
	throttleBlocked.Inc()
}

func (s *MetricsService) RecordStaleDelete(status string) {
	staleDeletes.WithLabelValues(status).Inc()
}

func (s *MetricsService) RecordTranslationDuration(duration time.Duration, provider string) {
	translationDuration.WithLabelValues(provider).Observe(duration.Seconds())
}

func (s *MetricsService) RecordMessageProcessingDuration(duration time.Duration) {
	messageProcessingDuration.Observe(duration.Seconds())
}

func (s *MetricsService) SetTrackedReplies(count float64) {
	trackedReplies.Set(count)
}

func (s *MetricsService) SetSupportedLanguages(count float64) {
	supportedLanguages.Set(count)
}
