package translator

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"polyglot/sources/texting"
	"polyglot/sources/tracing"
)

// GoogleTranslator talks to the unauthenticated translate.googleapis.com
// endpoint. The response is a loosely typed JSON array where the first
// element holds the translated chunks.
type GoogleTranslator struct {
	client *http.Client
	config *TranslatorConfig
}

func NewGoogleTranslator(client *http.Client, config *TranslatorConfig) *GoogleTranslator {
	return &GoogleTranslator{client: client, config: config}
}

func (x *GoogleTranslator) Kind() string {
	return ProviderGoogle
}

func (x *GoogleTranslator) Translate(log *tracing.Logger, text, targetCode string) (string, error) {
	return tracing.ReportExecutionForRE(log, func() (string, error) {
		return x.translate(text, targetCode)
	}, func(l *tracing.Logger) {
		l.D("Google translation request completed", tracing.LanguageCode, targetCode, tracing.TextLength, len(text))
	})
}

func (x *GoogleTranslator) translate(text, targetCode string) (string, error) {
	params := url.Values{}
	params.Set("client", "gtx")
	params.Set("sl", "auto")
	params.Set("tl", targetCode)
	params.Set("dt", "t")
	params.Set("q", text)

	resp, err := x.client.Get(x.config.GoogleEndpoint + "?" + params.Encode())
	if err != nil {
		return "", fmt.Errorf("translation request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("translation request failed: unexpected status %s", resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read translation response: %w", err)
	}

	translated, err := parseGtxResponse(body)
	if err != nil {
		return "", fmt.Errorf("failed to parse translation response for %q: %w", texting.Snippet(text), err)
	}

	return translated, nil
}

// parseGtxResponse unpacks [[["chunk","orig",...],...],...,"src"] into the
// concatenated translated chunks.
func parseGtxResponse(body []byte) (string, error) {
	var result []any
	if err := json.Unmarshal(body, &result); err != nil {
		return "", err
	}

	if len(result) == 0 {
		return "", nil
	}

	chunks, ok := result[0].([]any)
	if !ok {
		return "", fmt.Errorf("unexpected response shape")
	}

	var sb strings.Builder
	for _, chunk := range chunks {
		line, ok := chunk.([]any)
		if !ok || len(line) == 0 {
			continue
		}
		if part, ok := line[0].(string); ok {
			sb.WriteString(part)
		}
	}

	return strings.TrimSpace(sb.String()), nil
}
