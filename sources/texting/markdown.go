package texting

import (
	"strings"
)

// EscapeMarkdown escapes the characters Telegram treats as markup in the
// legacy Markdown parse mode.
func EscapeMarkdown(input string) string {
	var str strings.Builder
	escapable := "_*`["
	for _, char := range input {
		if strings.ContainsRune(escapable, char) {
			str.WriteRune('\\')
		}
		str.WriteRune(char)
	}
	return str.String()
}
