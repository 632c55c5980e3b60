package translator

import (
	"time"

	"polyglot/sources/platform"
)

const (
	ProviderGoogle = "google"
	ProviderOpenAI = "openai"
)

type TranslatorConfig struct {
	Provider       string
	GoogleEndpoint string
	OpenAIToken    string
	OpenAIModel    string
	Timeout        time.Duration
}

func NewTranslatorConfig() *TranslatorConfig {
	return &TranslatorConfig{
		Provider:       platform.Get("TRANSLATOR_PROVIDER", ProviderGoogle),
		GoogleEndpoint: platform.Get("GOOGLE_TRANSLATE_ENDPOINT", "https://translate.googleapis.com/translate_a/single"),
		OpenAIToken:    platform.Get("OPENAI_API_KEY", ""),
		OpenAIModel:    platform.Get("OPENAI_MODEL", "gpt-4o-mini"),
		Timeout:        platform.GetAsDuration("TRANSLATOR_TIMEOUT", "30s"),
	}
}
