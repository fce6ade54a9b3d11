package render

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var blankRuns = regexp.MustCompile(`\n{3,}`)

const blockSelector = "p, div, li, blockquote, pre, h1, h2, h3, h4, h5, h6, tr"

// HTML strips markup from post content before applying Plain formatting.
type HTML struct{}

func (HTML) Render(raw string) (string, error) {
	text, err := htmlToText(raw)
	if err != nil {
		return "", err
	}
	return Format(text), nil
}

func htmlToText(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("parse html body: %w", err)
	}

	// goquery Text() drops <br> and block boundaries
	doc.Find("br").ReplaceWithHtml("\n")
	doc.Find(blockSelector).Each(func(_ int, s *goquery.Selection) {
		s.AppendHtml("\n\n")
	})
	doc.Find("script, style").Remove()

	text := strings.ReplaceAll(doc.Text(), "\r\n", "\n")
	text = blankRuns.ReplaceAllString(text, "\n\n")
	return strings.Trim(text, "\n"), nil
}
