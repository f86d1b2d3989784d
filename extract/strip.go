package extract

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// StripExtractor is the default extractor: it drops script, style and
// noscript subtrees and whitespace-joins every remaining text node. The
// whole visible page contributes, navigation and footers included.
type StripExtractor struct{}

func NewStripExtractor() *StripExtractor {
	return &StripExtractor{}
}

func (e *StripExtractor) Extract(html string, pageURL string) (*Content, error) {
	if strings.TrimSpace(html) == "" {
		return &Content{}, nil
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return &Content{}, nil
	}

	doc.Find("script, style, noscript").Remove()

	title := strings.TrimSpace(doc.Find("title").First().Text())
	text := strings.Join(strings.Fields(doc.Text()), " ")

	return &Content{
		Title:   title,
		Text:    text,
		Preview: previewOf(text),
	}, nil
}
