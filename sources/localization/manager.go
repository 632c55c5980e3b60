package localization

import (
	"embed"
	"fmt"
	"strings"
	"sync"

	"polyglot/sources/features"
	"polyglot/sources/tracing"

	"github.com/BurntSushi/toml"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed locales/*.toml
var localesFS embed.FS

type LocalizationManager struct {
	bundle   *i18n.Bundle
	detector *LanguageDetector
	config   *LocalizationConfig
	gate     features.Gate
	log      *tracing.Logger
	locbuff  sync.Map
}

func NewLocalizationManager(
	config *LocalizationConfig,
	detector *LanguageDetector,
	gate features.Gate,
	log *tracing.Logger,
) (*LocalizationManager, error) {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	for _, lang := range config.SupportedLanguages {
		filename := fmt.Sprintf("locales/active.%s.toml", lang)

		data, err := localesFS.ReadFile(filename)
		if err != nil {
			log.E("Failed to read locale file", "filename", filename, tracing.InnerError, err)
			return nil, fmt.Errorf("failed to read locale file %s: %w", filename, err)
		}

		if _, err := bundle.ParseMessageFileBytes(data, filename); err != nil {
			log.E("Failed to parse locale file", "filename", filename, tracing.InnerError, err)
			return nil, fmt.Errorf("failed to parse locale file %s: %w", filename, err)
		}

		log.I("Loaded locale file", "filename", filename)
	}

	log.I("LocalizationManager initialized successfully")
	return &LocalizationManager{bundle: bundle, detector: detector, config: config, gate: gate, log: log}, nil
}

func (x *LocalizationManager) Localize(locale, messageID string) string {
	return x.LocalizeTd(locale, messageID, nil)
}

func (x *LocalizationManager) LocalizeTd(locale, messageID string, templateData map[string]interface{}) string {
	localizer := i18n.NewLocalizer(x.bundle, locale, x.config.DefaultLanguage)

	msg, err := localizer.Localize(&i18n.LocalizeConfig{MessageID: messageID, TemplateData: templateData})
	if err != nil {
		x.log.E("Failed to localize message", "message_id", messageID, tracing.InnerError, err)
		return messageID
	}

	return msg
}

func (x *LocalizationManager) LocalizeBy(msg *tgbotapi.Message, messageID string) string {
	return x.LocalizeByTd(msg, messageID, nil)
}

// LocalizeByTd picks a locale for the notice from the issuing message: the
// language of its text when detectable, the last detected locale for that
// user otherwise, then the Telegram client language, then the default.
func (x *LocalizationManager) LocalizeByTd(msg *tgbotapi.Message, messageID string, templateData map[string]interface{}) string {
	return x.LocalizeTd(x.LocaleFor(msg), messageID, templateData)
}

func (x *LocalizationManager) LocaleFor(msg *tgbotapi.Message) string {
	if !x.gate.IsEnabledDefault(features.FeatureAutoLocale, true) {
		return x.config.DefaultLanguage
	}

	userText := msg.Text
	if userText == "" && msg.Caption != "" {
		userText = msg.Caption
	}

	cleanText := strings.TrimSpace(userText)
	userId := int64(0)
	if msg.From != nil {
		userId = msg.From.ID
	}

	if detected, ok := x.detector.DetectLanguage(cleanText); ok {
		x.locbuff.Store(userId, detected)
		x.log.D("Locale detected from text and cached", tracing.UserId, userId, tracing.Locale, detected)
		return detected
	}

	if cached, ok := x.locbuff.Load(userId); ok {
		return cached.(string)
	}

	if msg.From != nil && msg.From.LanguageCode != "" {
		return x.mapTelegramLanguageCode(msg.From.LanguageCode)
	}

	return x.config.DefaultLanguage
}

func (x *LocalizationManager) mapTelegramLanguageCode(telegramCode string) string {
	lowerCode := strings.ToLower(telegramCode)

	switch {
	case strings.HasPrefix(lowerCode, "hi"):
		return "hi"
	case strings.HasPrefix(lowerCode, "ru"), strings.HasPrefix(lowerCode, "uk"), strings.HasPrefix(lowerCode, "be"):
		return "ru"
	default:
		return x.config.DefaultLanguage
	}
}
