package search

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestSerpApiEngineSearch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("engine") != "google" {
			t.Errorf("engine param = %q, want google", q.Get("engine"))
		}
		if q.Get("q") != "krmivo pro psy" {
			t.Errorf("q param = %q", q.Get("q"))
		}
		if q.Get("hl") != "cs" {
			t.Errorf("hl param = %q, want cs", q.Get("hl"))
		}
		if q.Get("api_key") != "test-key" {
			t.Errorf("api_key param = %q", q.Get("api_key"))
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"organic_results": [
				{"position": 1, "title": "První", "link": "https://a.example/clanek", "snippet": "o krmivu"},
				{"position": 2, "title": "Druhý", "link": "https://b.example/test"},
				{"position": 3, "title": "Bez odkazu"},
				{"position": 4, "title": "Čtvrtý", "link": "https://d.example/x"}
			],
			"search_metadata": {"status": "Success"}
		}`))
	}))
	defer srv.Close()

	engine := NewSerpApiEngine("test-key")
	engine.baseURL = srv.URL

	results, err := engine.Search(context.Background(), &Request{
		Query:    "krmivo pro psy",
		Count:    3,
		Language: "cs",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// The third record has no link and is skipped; the fourth fills the
	// requested count.
	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d: %v", len(results), results)
	}
	if results[0].URL != "https://a.example/clanek" || results[0].Title != "První" {
		t.Errorf("unexpected first result: %+v", results[0])
	}
	if results[0].Description != "o krmivu" {
		t.Errorf("snippet not decoded: %+v", results[0])
	}
	if results[2].URL != "https://d.example/x" {
		t.Errorf("unexpected third result: %+v", results[2])
	}
}

func TestSerpApiEngineEmptyResults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"organic_results": [], "search_metadata": {"status": "Success"}}`))
	}))
	defer srv.Close()

	engine := NewSerpApiEngine("test-key")
	engine.baseURL = srv.URL

	results, err := engine.Search(context.Background(), &Request{Query: "nic"})
	if err != nil {
		t.Fatalf("empty results must not be an error, got %v", err)
	}
	if len(results) != 0 {
		t.Errorf("expected no results, got %v", results)
	}
}

func TestSerpApiEngineHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	engine := NewSerpApiEngine("test-key")
	engine.baseURL = srv.URL

	if _, err := engine.Search(context.Background(), &Request{Query: "x"}); err == nil {
		t.Error("expected error on non-200 status")
	}
}
