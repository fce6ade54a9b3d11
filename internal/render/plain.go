// Package render turns stored post bodies into NNTP article bodies.
package render

import "strings"

// Renderer converts a raw stored body into wire-ready text.
type Renderer interface {
	Render(raw string) (string, error)
}

// Plain normalizes line endings to CRLF and doubles a leading "." on every
// line, as required inside multi-line NNTP responses.
type Plain struct{}

func (Plain) Render(raw string) (string, error) {
	return Format(raw), nil
}

func Format(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if strings.HasPrefix(line, ".") {
			lines[i] = "." + line
		}
	}
	return strings.Join(lines, "\r\n")
}

// Lines counts the newlines in a rendered body.
func Lines(body string) int {
	return strings.Count(body, "\n")
}
