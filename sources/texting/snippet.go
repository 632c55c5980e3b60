package texting

import "polyglot/sources/texting/transform"

// Snippet shortens text for log output.
func Snippet(text string) string {
	return transform.SmartTruncate(text, 50)
}
