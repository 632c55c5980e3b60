package translator

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"polyglot/sources/platform"
	"polyglot/sources/tracing"

	"github.com/sashabaranov/go-openai"
)

func NewOpenAIClient(client *http.Client, config *TranslatorConfig) *openai.Client {
	openaiConfig := openai.DefaultConfig(config.OpenAIToken)
	openaiConfig.HTTPClient = client
	return openai.NewClientWithConfig(openaiConfig)
}

// OpenAITranslator translates through a chat completion with a
// translation-only system prompt.
type OpenAITranslator struct {
	client *openai.Client
	config *TranslatorConfig
}

func NewOpenAITranslator(client *openai.Client, config *TranslatorConfig) *OpenAITranslator {
	return &OpenAITranslator{client: client, config: config}
}

func (x *OpenAITranslator) Kind() string {
	return ProviderOpenAI
}

func (x *OpenAITranslator) Translate(log *tracing.Logger, text, targetCode string) (string, error) {
	return tracing.ReportExecutionForRE(log, func() (string, error) {
		return x.translate(text, targetCode)
	}, func(l *tracing.Logger) {
		l.D("OpenAI translation request completed", tracing.LanguageCode, targetCode, tracing.TextLength, len(text))
	})
}

func (x *OpenAITranslator) translate(text, targetCode string) (string, error) {
	ctx, cancel := platform.ContextTimeoutVal(context.Background(), x.config.Timeout)
	defer cancel()

	prompt := fmt.Sprintf("Translate the user message into the language with ISO 639-1 code %q. Reply with the translation only, no commentary.", targetCode)

	resp, err := x.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: x.config.OpenAIModel,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: prompt},
			{Role: openai.ChatMessageRoleUser, Content: text},
		},
		Temperature: 0.2,
	})
	if err != nil {
		return "", fmt.Errorf("openai translation failed: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", nil
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
