package texting

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEscapeMarkdown(t *testing.T) {
	cases := []struct {
		name     string
		input    string
		expected string
	}{
		{"plain text untouched", "hello world", "hello world"},
		{"underscore", "snake_case_name", `snake\_case\_name`},
		{"asterisk", "2 * 3 = 6", `2 \* 3 = 6`},
		{"backtick", "use `go test`", "use \\`go test\\`"},
		{"opening bracket", "[link](url)", `\[link](url)`},
		{"unicode passthrough", "नमस्ते दुनिया", "नमस्ते दुनिया"},
		{"empty", "", ""},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.expected, EscapeMarkdown(c.input))
		})
	}
}
