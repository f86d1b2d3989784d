package extract

import (
	"net/url"
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
	"github.com/go-shiori/go-readability"
	"go.uber.org/zap"
)

// ArticleExtractor runs readability article extraction, so boilerplate
// (navigation, footers, ads) never reaches the keyword counts. The preview
// is the article body converted to markdown.
type ArticleExtractor struct {
	logger *zap.Logger
}

func NewArticleExtractor(logger *zap.Logger) *ArticleExtractor {
	return &ArticleExtractor{logger: logger}
}

func (e *ArticleExtractor) Extract(html string, pageURL string) (*Content, error) {
	if strings.TrimSpace(html) == "" {
		return &Content{}, nil
	}

	parsedURL, err := url.Parse(pageURL)
	if err != nil {
		e.logger.Warn("readability_bad_url", zap.String("url", pageURL), zap.Error(err))
		return &Content{}, nil
	}

	article, err := readability.FromReader(strings.NewReader(html), parsedURL)
	if err != nil {
		e.logger.Warn("readability_failed", zap.String("url", pageURL), zap.Error(err))
		return &Content{}, nil
	}

	text := strings.Join(strings.Fields(article.TextContent), " ")

	preview, err := htmltomarkdown.ConvertString(article.Content)
	if err != nil {
		preview = text
	}
	preview = previewOf(strings.TrimSpace(preview))

	e.logger.Info("article_extracted",
		zap.String("url", pageURL),
		zap.String("title", article.Title),
		zap.Int("text_length", len(text)))

	return &Content{
		Title:   article.Title,
		Text:    text,
		Preview: preview,
	}, nil
}
