package telegram

import (
	"polyglot/sources/metrics"
	"polyglot/sources/texting/transform"
	"polyglot/sources/tracing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Messenger is the outbound side of the bot. The handler depends on it
// instead of the concrete Diplomat so tests can record sends.
type Messenger interface {
	Reply(log *tracing.Logger, chatID int64, replyToID int, text string)
	ReplyMarkdown(log *tracing.Logger, chatID int64, replyToID int, text string) (int, error)
	Delete(log *tracing.Logger, chatID int64, messageID int) error
}

type Diplomat struct {
	bot     *tgbotapi.BotAPI
	config  *DiplomatConfig
	metrics *metrics.MetricsService
}

func NewDiplomat(bot *tgbotapi.BotAPI, config *DiplomatConfig, metrics *metrics.MetricsService) *Diplomat {
	return &Diplomat{bot: bot, config: config, metrics: metrics}
}

// Reply posts a plain notice as a reply. Sending is best-effort: a failed
// notice is logged and forgotten, never retried.
func (x *Diplomat) Reply(log *tracing.Logger, chatID int64, replyToID int, text string) {
	chattable := tgbotapi.NewMessage(chatID, text)
	chattable.ReplyToMessageID = replyToID

	if _, err := x.bot.Send(chattable); err != nil {
		log.E("Notice sending error", tracing.InnerError, err)
		x.metrics.RecordMessageSent("error")
		return
	}
	x.metrics.RecordMessageSent("success")
}

// ReplyMarkdown posts a markdown-formatted reply, chunked to the Telegram
// message size limit, and returns the id of the last sent chunk. A chunk
// rejected with markdown enabled is retried once as plain text, so a markup
// quirk in translated content never swallows the whole reply.
func (x *Diplomat) ReplyMarkdown(log *tracing.Logger, chatID int64, replyToID int, text string) (int, error) {
	defer tracing.ProfilePoint(log, "Diplomat reply completed", "diplomat.reply")()

	var lastID int
	for _, chunk := range transform.Chunks(text, x.config.ChunkSize) {
		chattable := tgbotapi.NewMessage(chatID, chunk)
		chattable.ReplyToMessageID = replyToID
		chattable.ParseMode = tgbotapi.ModeMarkdown

		sent, err := x.bot.Send(chattable)
		if err != nil {
			log.E("Message chunk sending error", tracing.InnerError, err)
			x.metrics.RecordMessageSent("error")

			plain := tgbotapi.NewMessage(chatID, chunk)
			plain.ReplyToMessageID = replyToID

			sent, err = x.bot.Send(plain)
			if err != nil {
				log.E("Plain text fallback sending error", tracing.InnerError, err)
				x.metrics.RecordMessageSent("error")
				return 0, err
			}
			log.W("Chunk delivered as plain text")
		}
		x.metrics.RecordMessageSent("success")
		lastID = sent.MessageID
	}
	return lastID, nil
}

// Delete removes a message. Callers treat failure as an expected outcome;
// the message may already be gone or too old to delete.
func (x *Diplomat) Delete(log *tracing.Logger, chatID int64, messageID int) error {
	if _, err := x.bot.Request(tgbotapi.NewDeleteMessage(chatID, messageID)); err != nil {
		log.D("Could not delete message", tracing.BotMessageId, messageID, tracing.InnerError, err)
		return err
	}
	return nil
}
