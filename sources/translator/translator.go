package translator

import (
	"net/http"

	"polyglot/sources/tracing"

	"github.com/sashabaranov/go-openai"
)

// Translator converts text into the target language. The source language is
// always auto-detected by the provider. An empty result with a nil error
// means the provider had nothing to say; callers treat it as a soft failure.
type Translator interface {
	Translate(log *tracing.Logger, text, targetCode string) (string, error)
	Kind() string
}

func NewTranslator(config *TranslatorConfig, client *http.Client, ai *openai.Client, log *tracing.Logger) Translator {
	switch config.Provider {
	case ProviderOpenAI:
		log.I("Translator initialized", tracing.TranslatorKind, ProviderOpenAI, "model", config.OpenAIModel)
		return NewOpenAITranslator(ai, config)
	default:
		log.I("Translator initialized", tracing.TranslatorKind, ProviderGoogle)
		return NewGoogleTranslator(client, config)
	}
}
