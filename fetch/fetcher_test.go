package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"
)

func TestFetcherReturnsPageBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.Contains(r.Header.Get("User-Agent"), "SEOOutlineBot") {
			t.Errorf("missing bot User-Agent, got %q", r.Header.Get("User-Agent"))
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write([]byte("<html><body>kočka</body></html>"))
	}))
	defer srv.Close()

	f := NewFetcher(zap.NewNop())
	got := f.Fetch(context.Background(), srv.URL)
	if !strings.Contains(got, "kočka") {
		t.Errorf("unexpected body: %q", got)
	}
}

func TestFetcherDecodesDeclaredCharset(t *testing.T) {
	// "kočka" in windows-1250: č = 0xE8.
	body := []byte{'k', 'o', 0xE8, 'k', 'a'}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=windows-1250")
		w.Write(body)
	}))
	defer srv.Close()

	f := NewFetcher(zap.NewNop())
	if got := f.Fetch(context.Background(), srv.URL); got != "kočka" {
		t.Errorf("charset not decoded: %q", got)
	}
}

func TestFetcherSwallowsFailures(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer srv.Close()

	f := NewFetcher(zap.NewNop())

	testCases := []struct {
		name string
		url  string
	}{
		{"NotFound", srv.URL},
		{"BadURL", "http://\x00invalid"},
		{"Unreachable", "http://127.0.0.1:1"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := f.Fetch(context.Background(), tc.url); got != "" {
				t.Errorf("expected empty string, got %q", got)
			}
		})
	}
}

func TestFetcherTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.Write([]byte("too late"))
	}))
	defer srv.Close()

	f := NewFetcher(zap.NewNop(), WithTimeout(20*time.Millisecond))
	if got := f.Fetch(context.Background(), srv.URL); got != "" {
		t.Errorf("slow fetch must fail to empty string, got %q", got)
	}
}

func TestFetcherUsesCache(t *testing.T) {
	hits := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.Write([]byte("<html>cached page</html>"))
	}))
	defer srv.Close()

	cache, err := OpenPageCache(filepath.Join(t.TempDir(), "pages.db"))
	if err != nil {
		t.Fatalf("failed to open cache: %v", err)
	}
	defer cache.Close()

	f := NewFetcher(zap.NewNop(), WithCache(cache))

	first := f.Fetch(context.Background(), srv.URL)
	second := f.Fetch(context.Background(), srv.URL)

	if first == "" || first != second {
		t.Errorf("cache changed the fetched body: %q vs %q", first, second)
	}
	if hits != 1 {
		t.Errorf("expected 1 origin hit, got %d", hits)
	}
}

func TestPageCacheRoundTrip(t *testing.T) {
	cache, err := OpenPageCache(filepath.Join(t.TempDir(), "pages.db"))
	if err != nil {
		t.Fatalf("failed to open cache: %v", err)
	}
	defer cache.Close()

	if _, ok := cache.Get("https://a.example"); ok {
		t.Error("unexpected hit on empty cache")
	}
	if err := cache.Put("https://a.example", "<html>a</html>"); err != nil {
		t.Fatalf("put failed: %v", err)
	}
	if html, ok := cache.Get("https://a.example"); !ok || html != "<html>a</html>" {
		t.Errorf("round trip failed: %q %v", html, ok)
	}

	if err := cache.Clear(); err != nil {
		t.Fatalf("clear failed: %v", err)
	}
	if _, ok := cache.Get("https://a.example"); ok {
		t.Error("entry survived Clear")
	}
}
