package nntp

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"newsgate/internal/domain"
	"newsgate/internal/render"
)

const dateLayout = time.RFC1123Z

type Header struct {
	Name  string
	Value string
}

func (h Header) String() string {
	return h.Name + ": " + h.Value
}

// Part selects which sections of an article are returned.
type Part int

const (
	PartFull Part = iota
	PartHead
	PartBody
)

// Result is a retrieved article. Headers is nil for PartBody and Body is
// empty for PartHead.
type Result struct {
	Number    int64
	MessageID string
	Headers   []Header
	Body      string
}

func (r *Result) HeaderText() string {
	lines := make([]string, len(r.Headers))
	for i, h := range r.Headers {
		lines[i] = h.String()
	}
	return strings.Join(lines, "\r\n")
}

func formatDate(t time.Time) string {
	return t.UTC().Format(dateLayout)
}

func (e *Engine) xref(group string, n int64) string {
	return fmt.Sprintf("%s %s:%d", e.hostname, group, n)
}

func (e *Engine) headers(group string, a domain.Article) []Header {
	h := []Header{
		{"Path", e.hostname},
		{"From", a.Author()},
		{"Newsgroups", group},
		{"Date", formatDate(a.Date)},
		{"Subject", a.Subject},
		{"Message-ID", a.MessageID},
		{"Xref", e.xref(group, a.Number)},
	}
	if len(a.References) > 0 {
		h = append(h,
			Header{"References", strings.Join(a.References, " ")},
			Header{"In-Reply-To", a.InReplyTo()},
		)
	}
	return h
}

var overviewCleaner = strings.NewReplacer("\t", " ", "\r", " ", "\n", " ")

// overviewLine renders one XOVER line:
// number, subject, author, date, message-id, references, bytes, lines, xref.
func (e *Engine) overviewLine(group string, a domain.Article, body string) string {
	fields := []string{
		strconv.FormatInt(a.Number, 10),
		overviewCleaner.Replace(a.Subject),
		overviewCleaner.Replace(a.Author()),
		formatDate(a.Date),
		a.MessageID,
		strings.Join(a.References, ", "),
		strconv.Itoa(len(body)),
		strconv.Itoa(render.Lines(body)),
		"Xref: " + e.xref(group, a.Number),
	}
	return strings.Join(fields, "\t")
}

// headerValue returns the XHDR value of name for a, and false when the
// header is absent or not supported.
func (e *Engine) headerValue(group, name string, a domain.Article) (string, bool, error) {
	switch strings.ToLower(name) {
	case "subject":
		return a.Subject, true, nil
	case "from":
		return a.Author(), true, nil
	case "date":
		return formatDate(a.Date), true, nil
	case "message-id":
		return a.MessageID, true, nil
	case "references":
		if len(a.References) == 0 {
			return "", false, nil
		}
		return strings.Join(a.References, " "), true, nil
	case "bytes", "lines":
		body, err := e.renderer.Render(a.Body)
		if err != nil {
			return "", false, fmt.Errorf("render article %d: %w", a.Number, err)
		}
		if strings.EqualFold(name, "bytes") {
			return strconv.Itoa(len(body)), true, nil
		}
		return strconv.Itoa(render.Lines(body)), true, nil
	case "xref":
		return e.xref(group, a.Number), true, nil
	}
	return "", false, nil
}

func supportedHeader(name string) bool {
	switch strings.ToLower(name) {
	case "subject", "from", "date", "message-id", "references", "bytes", "lines", "xref":
		return true
	}
	return false
}
