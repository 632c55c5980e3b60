package localization

import (
	"polyglot/sources/platform"
)

type LocalizationConfig struct {
	DefaultLanguage    string
	SupportedLanguages []string
}

func NewLocalizationConfig() *LocalizationConfig {
	return &LocalizationConfig{
		DefaultLanguage:    platform.Get("LOCALIZATION_DEFAULT_LANG", "en"),
		SupportedLanguages: platform.GetAsSlice("LOCALIZATION_LANGS", []string{"en", "ru", "hi"}),
	}
}
