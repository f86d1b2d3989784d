package search

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const serpApiBaseURL = "https://serpapi.com/search"

// SerpApiEngine queries Google through SerpAPI.
type SerpApiEngine struct {
	client  *http.Client
	apiKey  string
	baseURL string
}

type serpApiResponse struct {
	OrganicResults []struct {
		Position int    `json:"position"`
		Title    string `json:"title"`
		Link     string `json:"link"`
		Snippet  string `json:"snippet"`
	} `json:"organic_results"`
	SearchMetadata struct {
		Status string `json:"status"`
	} `json:"search_metadata"`
}

func NewSerpApiEngine(apiKey string) *SerpApiEngine {
	return &SerpApiEngine{
		client:  &http.Client{Timeout: 30 * time.Second},
		apiKey:  apiKey,
		baseURL: serpApiBaseURL,
	}
}

func (s *SerpApiEngine) Search(ctx context.Context, req *Request) ([]Result, error) {
	count := req.Count
	if count <= 0 {
		count = 3
	}

	params := url.Values{}
	params.Set("engine", "google")
	params.Set("q", req.Query)
	params.Set("num", strconv.Itoa(count))
	params.Set("api_key", s.apiKey)
	if req.Language != "" {
		params.Set("hl", req.Language)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := s.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("API returned status %d", resp.StatusCode)
	}

	var searchResp serpApiResponse
	if err := json.NewDecoder(resp.Body).Decode(&searchResp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	results := make([]Result, 0, count)
	for _, item := range searchResp.OrganicResults {
		if item.Link == "" {
			continue
		}
		results = append(results, Result{
			URL:         item.Link,
			Title:       item.Title,
			Description: item.Snippet,
			Position:    item.Position,
		})
		if len(results) == count {
			break
		}
	}

	return results, nil
}
