package localization

import (
	"strings"

	"polyglot/sources/texting/transform"
	"polyglot/sources/tracing"

	"github.com/pemistahl/lingua-go"
)

const (
	MinTextLengthForDetection = 7
	MaxTextLengthForDetection = 256
)

type LanguageDetector struct {
	detector lingua.LanguageDetector
	log      *tracing.Logger
}

func NewLanguageDetector(log *tracing.Logger) *LanguageDetector {
	languages := []lingua.Language{lingua.English, lingua.Hindi, lingua.Russian}
	detector := lingua.NewLanguageDetectorBuilder().FromLanguages(languages...).Build()

	log.I("Language detector initialized")
	return &LanguageDetector{detector: detector, log: log}
}

// DetectLanguage returns the notice locale for the given text. The second
// result is false when the text is too short to judge.
func (x *LanguageDetector) DetectLanguage(text string) (string, bool) {
	cleanText := strings.TrimSpace(text)

	if len(cleanText) < MinTextLengthForDetection {
		return "", false
	}

	truncatedText := transform.SmartTruncate(cleanText, MaxTextLengthForDetection)

	if language, exists := x.detector.DetectLanguageOf(truncatedText); exists {
		return x.linguaToCode(language), true
	}

	return "", false
}

func (x *LanguageDetector) linguaToCode(lang lingua.Language) string {
	switch lang {
	case lingua.Hindi:
		return "hi"
	case lingua.Russian:
		return "ru"
	default:
		return "en"
	}
}
