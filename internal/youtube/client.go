// Package youtube provides video search enrichment via the YouTube Data API v3.
//
// Lookups are best-effort: a missing API key, transport failure, API error, or
// unexpected response shape all reduce to an empty result list. Callers must
// treat "no videos" as a normal outcome, never an exceptional one.
package youtube

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"time"

	"github.com/careerpath/careerpath-ai/internal/types"
)

const (
	// DefaultMaxResults is the number of videos requested per lookup when the caller passes 0.
	DefaultMaxResults = 3

	defaultBaseURL = "https://www.googleapis.com/youtube/v3/search"
	watchURLFormat = "https://www.youtube.com/watch?v=%s"
)

// Searcher is the video lookup contract consumed by the recommendation core.
type Searcher interface {
	// Search returns up to maxResults videos matching the query.
	// It never fails; upstream problems reduce to an empty slice.
	Search(ctx context.Context, query string, maxResults int) []types.VideoResult
}

// Client searches the YouTube Data API v3.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a search client. An empty apiKey is allowed; every lookup
// then returns an empty list.
func NewClient(apiKey string) *Client {
	return &Client{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// NewClientWithBaseURL creates a search client against a custom API endpoint.
// Used by tests to point at a local server.
func NewClientWithBaseURL(apiKey, baseURL string) *Client {
	c := NewClient(apiKey)
	c.baseURL = baseURL
	return c
}

// searchResponse mirrors the subset of the YouTube search response we consume.
type searchResponse struct {
	Items []struct {
		ID struct {
			VideoID string `json:"videoId"`
		} `json:"id"`
		Snippet struct {
			Title      string `json:"title"`
			Thumbnails struct {
				Default struct {
					URL string `json:"url"`
				} `json:"default"`
			} `json:"thumbnails"`
		} `json:"snippet"`
	} `json:"items"`
}

// Search looks up videos for a free-text query.
func (c *Client) Search(ctx context.Context, query string, maxResults int) []types.VideoResult {
	if c.apiKey == "" {
		log.Printf("[youtube] YOUTUBE_API_KEY not configured, skipping lookup for %q", query)
		return nil
	}
	if maxResults <= 0 {
		maxResults = DefaultMaxResults
	}

	params := url.Values{}
	params.Set("part", "snippet")
	params.Set("q", query)
	params.Set("type", "video")
	params.Set("maxResults", fmt.Sprintf("%d", maxResults))
	params.Set("key", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		log.Printf("[youtube] failed to build request for %q: %v", query, err)
		return nil
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Printf("[youtube] search failed for %q: %v", query, err)
		return nil
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		log.Printf("[youtube] search for %q returned status %d", query, resp.StatusCode)
		return nil
	}

	var parsed searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		log.Printf("[youtube] failed to decode response for %q: %v", query, err)
		return nil
	}

	if len(parsed.Items) == 0 {
		log.Printf("[youtube] no items returned for %q", query)
		return nil
	}

	videos := make([]types.VideoResult, 0, len(parsed.Items))
	for _, item := range parsed.Items {
		if item.ID.VideoID == "" {
			continue
		}
		videos = append(videos, types.VideoResult{
			Title:     item.Snippet.Title,
			URL:       fmt.Sprintf(watchURLFormat, item.ID.VideoID),
			Thumbnail: item.Snippet.Thumbnails.Default.URL,
		})
	}
	return videos
}
