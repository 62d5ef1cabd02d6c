package perplexity

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client - клиент поискового API Perplexity (chat-completions со
// встроенным веб-поиском)
type Client struct {
	apiKey     string
	baseURL    string
	model      string
	httpClient *http.Client
}

// SearchResult - один сырой результат веб-поиска
type SearchResult struct {
	Title   string `json:"title"`
	URL     string `json:"url"`
	Summary string `json:"summary"`
	Date    string `json:"date,omitempty"`
}

// NewClient создает клиент Perplexity
func NewClient(apiKey string) *Client {
	return &Client{
		apiKey:  apiKey,
		baseURL: "https://api.perplexity.ai",
		model:   "sonar",
		httpClient: &http.Client{
			Timeout: 45 * time.Second,
		},
	}
}

// Search выполняет один поисковый запрос и возвращает сырые результаты.
// Фильтр recency API отсекает результаты старше недели; окно в 48 часов
// задается текстом запроса вызывающей стороной.
func (c *Client) Search(ctx context.Context, query string) ([]SearchResult, error) {
	if c.apiKey == "" {
		return nil, fmt.Errorf("Perplexity API key is not configured. Set PERPLEXITY_API_KEY to enable live incident search")
	}

	requestBody := map[string]any{
		"model": c.model,
		"messages": []map[string]string{
			{
				"role":    "system",
				"content": "You are a local news search assistant. Search for recent, factual reports only.",
			},
			{
				"role":    "user",
				"content": query,
			},
		},
		"search_recency_filter": "week",
	}

	jsonBody, err := json.Marshal(requestBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal search request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewBuffer(jsonBody))
	if err != nil {
		return nil, fmt.Errorf("failed to create search request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute search request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("search API error %d: %s", resp.StatusCode, string(body))
	}

	var parsed searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("failed to decode search response: %w", err)
	}

	results := make([]SearchResult, 0, len(parsed.SearchResults))
	for _, r := range parsed.SearchResults {
		summary := r.Snippet
		if summary == "" {
			summary = r.Title
		}
		results = append(results, SearchResult{
			Title:   r.Title,
			URL:     r.URL,
			Summary: summary,
			Date:    r.Date,
		})
	}
	return results, nil
}

type searchResponse struct {
	SearchResults []struct {
		Title   string `json:"title"`
		URL     string `json:"url"`
		Snippet string `json:"snippet"`
		Date    string `json:"date"`
	} `json:"search_results"`
}
