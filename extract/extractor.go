// Package extract turns fetched HTML into plain text for the keyword
// pipeline.
package extract

// PreviewRunes bounds the stored competitor text preview.
const PreviewRunes = 2000

// Content is the extracted form of one page.
type Content struct {
	Title   string
	Text    string
	Preview string
}

// Extractor produces plain text from page HTML. Empty or unparseable input
// extracts to empty content, never an error the pipeline has to branch on.
type Extractor interface {
	Extract(html string, pageURL string) (*Content, error)
}

func previewOf(text string) string {
	runes := []rune(text)
	if len(runes) > PreviewRunes {
		runes = runes[:PreviewRunes]
	}
	return string(runes)
}
