// Package fetch downloads competitor pages. Transport failures are
// swallowed at this boundary: the pipeline only ever sees page text or an
// empty string.
package fetch

import (
	"context"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"
	"golang.org/x/net/html/charset"
)

const (
	// DefaultTimeout bounds one page download.
	DefaultTimeout = 15 * time.Second

	// DefaultUserAgent identifies the bot to competitor sites.
	DefaultUserAgent = "Mozilla/5.0 (SEOOutlineBot/1.0; +https://example.com/bot)"

	// maxBodyBytes caps how much of a page is read.
	maxBodyBytes = 4 << 20
)

// Client fetches one page. Implementations return "" for any failure.
type Client interface {
	Fetch(ctx context.Context, pageURL string) string
}

// Fetcher is the production Client: a shared tuned http.Client, a per-fetch
// timeout and an optional bbolt page cache.
type Fetcher struct {
	client    *http.Client
	logger    *zap.Logger
	cache     *PageCache
	userAgent string
	timeout   time.Duration
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithCache attaches a page cache. May be nil.
func WithCache(cache *PageCache) Option {
	return func(f *Fetcher) { f.cache = cache }
}

// WithTimeout overrides the per-fetch timeout.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		if d > 0 {
			f.timeout = d
		}
	}
}

// WithUserAgent overrides the request User-Agent.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		if ua != "" {
			f.userAgent = ua
		}
	}
}

func NewFetcher(logger *zap.Logger, opts ...Option) *Fetcher {
	transport := &http.Transport{
		IdleConnTimeout:     90 * time.Second,
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
	}

	f := &Fetcher{
		client:    &http.Client{Transport: transport},
		logger:    logger,
		userAgent: DefaultUserAgent,
		timeout:   DefaultTimeout,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Fetch downloads a page and returns its decoded HTML, or "" on any
// failure (timeout, transport error, non-2xx, unreadable body). The body is
// decoded to UTF-8 from the charset declared in Content-Type, falling back
// to content sniffing, so non-UTF-8 pages don't turn into mojibake.
func (f *Fetcher) Fetch(ctx context.Context, pageURL string) string {
	if f.cache != nil {
		if html, ok := f.cache.Get(pageURL); ok {
			f.logger.Debug("page_cache_hit", zap.String("url", pageURL))
			return html
		}
	}

	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		f.logger.Warn("fetch_bad_url", zap.String("url", pageURL), zap.Error(err))
		return ""
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		f.logger.Warn("fetch_failed", zap.String("url", pageURL), zap.Error(err))
		return ""
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		f.logger.Warn("fetch_bad_status",
			zap.String("url", pageURL),
			zap.Int("status", resp.StatusCode))
		return ""
	}

	reader, err := charset.NewReader(io.LimitReader(resp.Body, maxBodyBytes),
		resp.Header.Get("Content-Type"))
	if err != nil {
		f.logger.Warn("fetch_charset_failed", zap.String("url", pageURL), zap.Error(err))
		return ""
	}

	body, err := io.ReadAll(reader)
	if err != nil {
		f.logger.Warn("fetch_read_failed", zap.String("url", pageURL), zap.Error(err))
		return ""
	}

	html := string(body)
	if f.cache != nil && html != "" {
		if err := f.cache.Put(pageURL, html); err != nil {
			f.logger.Warn("page_cache_put_failed", zap.String("url", pageURL), zap.Error(err))
		}
	}

	f.logger.Info("page_fetched",
		zap.String("url", pageURL),
		zap.Int("bytes", len(html)))
	return html
}
