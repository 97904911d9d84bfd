// internal/util/util.go
package util

import (
	"os"
	"strings"
	"unicode/utf8"
)

// WriteFile writes data to a file with 0o644 permissions.
func WriteFile(path string, data []byte) error {
	return os.WriteFile(path, data, 0o644)
}

// TruncateRunes truncates a string to a maximum number of runes,
// appending an ellipsis if truncated.
func TruncateRunes(text string, maxRunes int) string {
	if utf8.RuneCountInString(text) <= maxRunes {
		return text
	}
	runes := []rune(text)
	return string(runes[:maxRunes]) + "…"
}

// PadRunes pads a string with spaces on the right to the given rune width,
// truncating first if the string is already wider.
func PadRunes(text string, width int) string {
	text = TruncateRunes(text, width)
	pad := width - utf8.RuneCountInString(text)
	if pad <= 0 {
		return text
	}
	return text + strings.Repeat(" ", pad)
}
