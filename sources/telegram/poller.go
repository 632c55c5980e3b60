package telegram

import (
	"polyglot/sources/metrics"
	"polyglot/sources/tracing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/google/uuid"
)

type Poller struct {
	bot     *tgbotapi.BotAPI
	log     *tracing.Logger
	config  *PollerConfig
	handler *TranslationHandler
	metrics *metrics.MetricsService
}

func NewPoller(bot *tgbotapi.BotAPI, log *tracing.Logger, handler *TranslationHandler, metrics *metrics.MetricsService, config *PollerConfig) *Poller {
	return &Poller{bot: bot, log: log, handler: handler, metrics: metrics, config: config}
}

func (x *Poller) Start() {
	update := tgbotapi.NewUpdate(0)
	update.Timeout = x.config.Timeout
	update.AllowedUpdates = x.config.AllowedUpdates

	for update := range x.bot.GetUpdatesChan(update) {
		msg := update.Message
		if msg == nil {
			continue
		}

		log := x.log.With(
			tracing.RequestId, uuid.NewString(),
			tracing.ChatType, msg.Chat.Type,
			tracing.ChatId, msg.Chat.ID,
			tracing.MessageId, msg.MessageID,
			tracing.MessageDate, msg.Date,
		)

		if user := update.SentFrom(); user != nil {
			log = log.With(tracing.UserId, user.ID, tracing.UserName, user.UserName)
		}

		x.handle(log, msg)
	}
}

// handle isolates one update: a panic is logged and swallowed so a single
// bad update never takes the poller down.
func (x *Poller) handle(log *tracing.Logger, msg *tgbotapi.Message) {
	defer func() {
		if r := recover(); r != nil {
			log.E("Panic while handling update", "panic", r)
			x.metrics.RecordMessageHandled("panic")
		}
	}()

	x.handler.HandleMessage(log, msg)
	x.metrics.RecordMessageHandled("success")
	log.I("Message handled")
}

func (x *Poller) Stop() {
	x.bot.StopReceivingUpdates()
}
