package search

import "context"

// Result is one organic search hit. Optional fields are decoded once at the
// provider boundary and keep their zero values when absent; callers never
// re-validate them.
type Result struct {
	URL         string `json:"url"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Position    int    `json:"position,omitempty"`
}

// Request describes one competitor lookup.
type Request struct {
	Query    string `json:"query"`
	Count    int    `json:"count,omitempty"`
	Language string `json:"language,omitempty"`
}

// Engine retrieves competitor pages for a query. An empty result list is a
// data condition ("nothing to analyze"), not an error.
type Engine interface {
	Search(ctx context.Context, req *Request) ([]Result, error)
}
