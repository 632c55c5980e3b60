package telegram

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"polyglot/sources/features"
	"polyglot/sources/languages"
	"polyglot/sources/localization"
	"polyglot/sources/metrics"
	"polyglot/sources/texting"
	"polyglot/sources/throttler"
	"polyglot/sources/tracing"
	"polyglot/sources/tracker"
	"polyglot/sources/translator"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type TranslationHandler struct {
	diplomat     Messenger
	directory    *languages.Directory
	throttler    throttler.Throttler
	replies      *tracker.ReplyTracker
	translator   translator.Translator
	localization *localization.LocalizationManager
	gate         features.Gate
	metrics      *metrics.MetricsService
	config       *HandlerConfig
}

func NewTranslationHandler(
	diplomat Messenger,
	directory *languages.Directory,
	throttler throttler.Throttler,
	replies *tracker.ReplyTracker,
	translator translator.Translator,
	localization *localization.LocalizationManager,
	gate features.Gate,
	metrics *metrics.MetricsService,
	config *HandlerConfig,
) *TranslationHandler {
	return &TranslationHandler{
		diplomat:     diplomat,
		directory:    directory,
		throttler:    throttler,
		replies:      replies,
		translator:   translator,
		localization: localization,
		gate:         gate,
		metrics:      metrics,
		config:       config,
	}
}

// HandleMessage turns one inbound message into at most one outbound action.
// Each branch is terminal: the first applicable one wins.
func (x *TranslationHandler) HandleMessage(log *tracing.Logger, msg *tgbotapi.Message) {
	defer tracing.ProfilePoint(log, "Telegram handler message completed", "telegram.handler.message")()
	started := time.Now()
	defer func() { x.metrics.RecordMessageProcessingDuration(time.Since(started)) }()

	text := extractTextContent(msg)
	if text == "" {
		x.metrics.RecordMessageIgnored("no_text")
		return
	}

	// Plain chat is never touched.
	if !strings.HasPrefix(text, "/") {
		x.metrics.RecordMessageIgnored("not_command")
		return
	}

	if msg.From == nil {
		log.W("Command without a sender, ignoring")
		x.metrics.RecordMessageIgnored("no_sender")
		return
	}

	command := strings.ToLower(strings.Fields(text)[0])
	log = log.With(tracing.CommandIssued, command)

	entry, ok := x.directory.Lookup(command)
	if !ok {
		if command == "/start" || command == "/help" {
			x.metrics.RecordCommandUsed(command)
			x.sendHelp(log, msg)
			return
		}
		// Unknown commands stay silent: they are usually addressed to
		// other bots in the same group.
		log.D("Ignoring unknown command")
		x.metrics.RecordMessageIgnored("unknown_command")
		return
	}

	x.metrics.RecordCommandUsed(command)
	log = log.With(tracing.LanguageCode, entry.Code, tracing.LanguageName, entry.Name)

	// Translation only ever acts on the replied-to message, never on the
	// command message itself.
	if msg.ReplyToMessage == nil {
		x.sendUsageHint(log, msg, entry)
		return
	}

	if !x.throttler.IsAllowed(log, msg.From.ID, msg.Chat.ID) {
		log.W("User exceeded rate throttler")
		x.metrics.RecordThrottleBlocked()
		x.diplomat.Reply(log, msg.Chat.ID, msg.MessageID, x.localization.LocalizeBy(msg, "MsgThrottleExceeded"))
		return
	}

	original := msg.ReplyToMessage
	sourceText := extractTextContent(original)
	if sourceText == "" {
		x.diplomat.Reply(log, msg.Chat.ID, msg.MessageID, x.localization.LocalizeBy(msg, "MsgNoTextContent"))
		return
	}

	if utf8.RuneCountInString(sourceText) > x.config.MaxMessageLength {
		log.W("Source message too long", tracing.TextLength, utf8.RuneCountInString(sourceText))
		x.diplomat.Reply(log, msg.Chat.ID, msg.MessageID, x.localization.LocalizeByTd(msg, "MsgTooLong", map[string]interface{}{
			"MaxLen": x.config.MaxMessageLength,
		}))
		return
	}

	x.cleanPreviousTranslation(log, msg.Chat.ID, original.MessageID)

	translationStarted := time.Now()
	translated, err := x.translator.Translate(log, sourceText, entry.Code)
	x.metrics.RecordTranslationDuration(time.Since(translationStarted), x.translator.Kind())
	if err != nil {
		log.E("Translation error", tracing.InnerError, err)
		x.metrics.RecordTranslation(entry.Code, "unavailable")
		x.diplomat.Reply(log, msg.Chat.ID, msg.MessageID, x.localization.LocalizeBy(msg, "MsgTranslationUnavailable"))
		return
	}

	if translated == "" {
		log.W("Empty translation result")
		x.metrics.RecordTranslation(entry.Code, "failed")
		x.diplomat.Reply(log, msg.Chat.ID, msg.MessageID, x.localization.LocalizeBy(msg, "MsgTranslationFailed"))
		return
	}

	header := x.localization.LocalizeByTd(msg, "MsgTranslationHeader", map[string]interface{}{
		"Language": entry.Name,
	})
	response := header + "\n\n" + texting.EscapeMarkdown(translated)

	// The translation replies to the original message, not the command,
	// so repeated commands against the same message supersede each other
	// in one visible thread.
	botMessageID, err := x.diplomat.ReplyMarkdown(log, msg.Chat.ID, original.MessageID, response)
	if err != nil {
		log.E("Failed to send translation", tracing.InnerError, err)
		x.metrics.RecordTranslation(entry.Code, "send_error")
		x.diplomat.Reply(log, msg.Chat.ID, msg.MessageID, x.localization.LocalizeBy(msg, "MsgTranslationUnavailable"))
		return
	}

	x.replies.Record(msg.Chat.ID, original.MessageID, botMessageID)
	x.metrics.RecordTranslation(entry.Code, "success")
	log.I("Translation completed", tracing.BotMessageId, botMessageID)
}

// cleanPreviousTranslation deletes the bot's previous translation for the
// original message, if one is tracked. Best-effort: the entry is dropped
// whether or not the delete goes through.
func (x *TranslationHandler) cleanPreviousTranslation(log *tracing.Logger, chatID int64, originalMessageID int) {
	if !x.gate.IsEnabledDefault(features.FeatureStaleCleanup, true) {
		return
	}

	previousID, ok := x.replies.TakePrevious(chatID, originalMessageID)
	if !ok {
		return
	}

	if err := x.diplomat.Delete(log, chatID, previousID); err != nil {
		x.metrics.RecordStaleDelete("error")
		return
	}

	log.D("Deleted previous translation", tracing.BotMessageId, previousID)
	x.metrics.RecordStaleDelete("success")
}

func (x *TranslationHandler) sendHelp(log *tracing.Logger, msg *tgbotapi.Message) {
	lines := make([]string, 0, x.directory.Len())
	for _, command := range x.directory.Commands() {
		if entry, ok := x.directory.Lookup(command); ok {
			lines = append(lines, fmt.Sprintf("%s - %s", command, entry.Name))
		}
	}

	text := x.localization.LocalizeByTd(msg, "MsgHelp", map[string]interface{}{
		"Commands": strings.Join(lines, "\n"),
		"Count":    x.directory.Len(),
		"MaxLen":   x.config.MaxMessageLength,
	})

	if _, err := x.diplomat.ReplyMarkdown(log, msg.Chat.ID, msg.MessageID, text); err != nil {
		log.E("Failed to send help message", tracing.InnerError, err)
	}
}

func (x *TranslationHandler) sendUsageHint(log *tracing.Logger, msg *tgbotapi.Message, entry languages.Entry) {
	text := x.localization.LocalizeByTd(msg, "MsgUsageHint", map[string]interface{}{
		"Language": entry.Name,
		"Command":  entry.Command,
		"Commands": strings.Join(x.directory.Commands(), ", "),
	})

	if _, err := x.diplomat.ReplyMarkdown(log, msg.Chat.ID, msg.MessageID, text); err != nil {
		log.E("Failed to send usage hint", tracing.InnerError, err)
	}
}

// extractTextContent returns the trimmed text of a message, falling back to
// the caption for media messages. Pure-media messages yield "".
func extractTextContent(msg *tgbotapi.Message) string {
	if msg == nil {
		return ""
	}

	text := msg.Text
	if text == "" {
		text = msg.Caption
	}
	return strings.TrimSpace(text)
}
