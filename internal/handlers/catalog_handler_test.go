package handlers_test

import (
	"net/http"
	"testing"

	"github.com/JohnBalawejder/watcha/internal/omdb"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchThumbnails(t *testing.T) {
	env := newTestEnv(t)
	env.provider.searchResults = []omdb.SearchResult{
		{Title: "Inception", Year: "2010", Poster: "https://example.com/inception.jpg"},
	}
	env.provider.lookups["Inception"] = &omdb.Metadata{
		Title:       "Inception",
		Genre:       "Action, Adventure, Sci-Fi",
		Poster:      "https://example.com/inception.jpg",
		ReleaseYear: "2010",
	}

	resp := env.request(t, http.MethodGet, "/thumbnails?query=inception", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Thumbnails []omdb.Metadata `json:"thumbnails"`
	}
	decodeJSON(t, resp, &body)
	require.Len(t, body.Thumbnails, 1)
	assert.Equal(t, "Action, Adventure, Sci-Fi", body.Thumbnails[0].Genre)
	assert.Equal(t, "2010", body.Thumbnails[0].ReleaseYear)
}

func TestSearchThumbnailsEmptyQuery(t *testing.T) {
	env := newTestEnv(t)

	resp := env.request(t, http.MethodGet, "/thumbnails", "", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body map[string]string
	decodeJSON(t, resp, &body)
	assert.Equal(t, "Query parameter is required", body["error"])
}

func TestSearchThumbnailsNoMatches(t *testing.T) {
	env := newTestEnv(t)

	resp := env.request(t, http.MethodGet, "/thumbnails?query=zzzzzz", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Thumbnails []omdb.Metadata `json:"thumbnails"`
	}
	decodeJSON(t, resp, &body)
	assert.Empty(t, body.Thumbnails)
}

func TestSearchThumbnailsProviderFailure(t *testing.T) {
	env := newTestEnv(t)
	env.provider.searchErr = &omdb.ProviderError{Message: "Invalid API key!"}

	resp := env.request(t, http.MethodGet, "/thumbnails?query=inception", "", nil)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
}
