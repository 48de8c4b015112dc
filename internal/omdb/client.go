// Package omdb is a client for the OMDb movie-metadata API.
package omdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/JohnBalawejder/watcha/internal/config"
)

// ErrNotFound is returned by Lookup when OMDb reports no match for a title.
var ErrNotFound = errors.New("movie not found")

// ProviderError wraps a failure reported by OMDb or the transport.
type ProviderError struct {
	Message string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("omdb: %s", e.Message)
}

// PosterUnavailable is the sentinel OMDb uses for a missing poster URL.
const PosterUnavailable = "N/A"

// SearchResult is one entry from the OMDb search endpoint.
type SearchResult struct {
	Title  string `json:"title"`
	Year   string `json:"year"`
	Poster string `json:"poster"`
}

// Metadata is the enriched shape from the OMDb exact-title endpoint.
type Metadata struct {
	Title       string `json:"title"`
	Genre       string `json:"genre"`
	Poster      string `json:"poster"`
	ReleaseYear string `json:"release_year"`
}

// OMDb wire shapes. Every field may be absent; absent decodes to "".
type omdbSearchResponse struct {
	Response string           `json:"Response"`
	Error    string           `json:"Error"`
	Search   []omdbSearchItem `json:"Search"`
}

type omdbSearchItem struct {
	Title  string `json:"Title"`
	Year   string `json:"Year"`
	Poster string `json:"Poster"`
	Type   string `json:"Type"`
	IMDBID string `json:"imdbID"`
}

type omdbTitleResponse struct {
	Response string `json:"Response"`
	Error    string `json:"Error"`
	Title    string `json:"Title"`
	Genre    string `json:"Genre"`
	Poster   string `json:"Poster"`
	Year     string `json:"Year"`
}

type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

func NewClient(cfg config.OMDBConfig) *Client {
	timeout := cfg.HTTPTimeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		apiKey:  cfg.APIKey,
		baseURL: cfg.BaseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Search queries OMDb by keyword and returns the matching titles. Results
// whose poster is the "N/A" sentinel are dropped. A query with no matches
// returns an empty list; any other provider-reported error is surfaced as a
// ProviderError carrying the provider's message.
func (c *Client) Search(ctx context.Context, query string) ([]SearchResult, error) {
	var payload omdbSearchResponse
	if err := c.get(ctx, url.Values{"s": {query}}, &payload); err != nil {
		return nil, err
	}

	if payload.Response == "False" {
		if payload.Error == "Movie not found!" {
			return []SearchResult{}, nil
		}
		return nil, &ProviderError{Message: providerMessage(payload.Error)}
	}

	results := make([]SearchResult, 0, len(payload.Search))
	for _, item := range payload.Search {
		if item.Poster == PosterUnavailable {
			continue
		}
		results = append(results, SearchResult{
			Title:  item.Title,
			Year:   item.Year,
			Poster: item.Poster,
		})
	}
	return results, nil
}

// Lookup fetches full metadata for an exact title. Returns ErrNotFound when
// OMDb reports no match.
func (c *Client) Lookup(ctx context.Context, title string) (*Metadata, error) {
	var payload omdbTitleResponse
	if err := c.get(ctx, url.Values{"t": {title}}, &payload); err != nil {
		return nil, err
	}

	if payload.Response == "False" {
		return nil, ErrNotFound
	}

	return &Metadata{
		Title:       stringOrDefault(payload.Title, "Unknown"),
		Genre:       stringOrDefault(payload.Genre, "Unknown"),
		Poster:      stringOrDefault(payload.Poster, PosterUnavailable),
		ReleaseYear: stringOrDefault(payload.Year, PosterUnavailable),
	}, nil
}

func (c *Client) get(ctx context.Context, params url.Values, out interface{}) error {
	params.Set("apikey", c.apiKey)
	requestURL := c.baseURL + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return &ProviderError{Message: err.Error()}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &ProviderError{Message: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return &ProviderError{Message: fmt.Sprintf("OMDb returned status %d: %s", resp.StatusCode, string(body))}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &ProviderError{Message: fmt.Sprintf("failed to decode OMDb response: %v", err)}
	}
	return nil
}

func providerMessage(msg string) string {
	if msg == "" {
		return "no results found"
	}
	return msg
}

func stringOrDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
