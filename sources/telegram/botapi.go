package telegram

import (
	"polyglot/sources/platform"
	"polyglot/sources/tracing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

func NewBotAPI(log *tracing.Logger, config *BotConfig) *tgbotapi.BotAPI {
	if err := platform.ValidateTelegramBotToken(config.Token); err != nil {
		log.F("Invalid telegram bot token", tracing.InnerError, err)
	}

	bot, err := tgbotapi.NewBotAPI(config.Token)
	if err != nil {
		log.F("Failed to initialize telegram bot", tracing.InnerError, err)
	}

	if config.APIEndpoint != "" {
		bot.SetAPIEndpoint(config.APIEndpoint)
		log.I("Telegram bot initialized with custom API endpoint", "api_endpoint", config.APIEndpoint)
	} else {
		log.I("Telegram bot initialized with default API endpoint")
	}

	return bot
}
