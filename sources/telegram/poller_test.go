package telegram

import (
	"testing"

	"polyglot/sources/metrics"
	"polyglot/sources/tracing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
)

func TestPanicInOneUpdateIsContained(t *testing.T) {
	f := newFixture(t)
	poller := NewPoller(nil, f.log, f.handler, metrics.NewMetricsService(tracing.NewConsoleLogger()), &PollerConfig{})

	// A message carrying no chat trips a nil dereference deep inside the
	// handler once the command resolves.
	broken := &tgbotapi.Message{
		MessageID:      100,
		From:           &tgbotapi.User{ID: 1},
		Text:           "/hi",
		ReplyToMessage: &tgbotapi.Message{MessageID: 3, Text: "Hello"},
	}

	assert.NotPanics(t, func() { poller.handle(f.log, broken) })

	// The poller keeps serving updates after the recovery.
	healthy := commandReplyingTo(2, 10, 101, "/hi", message(3, 10, 4, "Hello"))
	assert.NotPanics(t, func() { poller.handle(f.log, healthy) })
	assert.Len(t, f.translator.calls, 1)
}
