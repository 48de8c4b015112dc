package handlers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/JohnBalawejder/watcha/internal/models"
	"github.com/JohnBalawejder/watcha/internal/omdb"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddAndListWatched(t *testing.T) {
	env := newTestEnv(t)
	env.provider.lookups["Inception"] = &omdb.Metadata{
		Title:       "Inception",
		Genre:       "Sci-Fi",
		Poster:      "https://example.com/inception.jpg",
		ReleaseYear: "2010",
	}

	token := env.signup(t, "alex", "secure_password")

	resp := env.request(t, http.MethodPost, "/watched/", token, map[string]interface{}{
		"title": "Inception", "type": "movie", "ranking": 9,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created models.WatchedMovie
	decodeJSON(t, resp, &created)
	assert.NotZero(t, created.ID)
	assert.Equal(t, "Inception", created.Title)
	assert.Equal(t, "movie", created.Type)
	assert.Equal(t, 9, created.Ranking)
	assert.Equal(t, "Sci-Fi", created.Genre)
	assert.Equal(t, "2010", created.ReleaseYear)

	resp = env.request(t, http.MethodGet, "/watched/", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var entries []models.WatchedMovie
	decodeJSON(t, resp, &entries)
	require.Len(t, entries, 1)
	assert.Equal(t, created.ID, entries[0].ID)
	assert.Equal(t, "Sci-Fi", entries[0].Genre)
}

func TestAddWatchedValidation(t *testing.T) {
	env := newTestEnv(t)
	token := env.signup(t, "alex", "secure_password")

	tests := []struct {
		name string
		body map[string]interface{}
	}{
		{"missing title", map[string]interface{}{"type": "movie", "ranking": 9}},
		{"missing type", map[string]interface{}{"title": "Inception", "ranking": 9}},
		{"missing ranking", map[string]interface{}{"title": "Inception", "type": "movie"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := env.request(t, http.MethodPost, "/watched/", token, tt.body)
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		})
	}
}

func TestAddWatchedUnknownMovie(t *testing.T) {
	env := newTestEnv(t)
	token := env.signup(t, "alex", "secure_password")

	resp := env.request(t, http.MethodPost, "/watched/", token, map[string]interface{}{
		"title": "No Such Film", "type": "movie", "ranking": 5,
	})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestListWatchedIsolatedPerAccount(t *testing.T) {
	env := newTestEnv(t)
	for _, title := range []string{"Inception", "Memento", "Tenet"} {
		env.provider.lookups[title] = &omdb.Metadata{Title: title, Genre: "Sci-Fi", Poster: "N/A", ReleaseYear: "N/A"}
	}

	users := []struct {
		name   string
		titles []string
	}{
		{"alice", []string{"Inception", "Memento"}},
		{"bob", []string{"Tenet"}},
		{"carol", nil},
	}

	tokens := make(map[string]string)
	for _, u := range users {
		tokens[u.name] = env.signup(t, u.name, "password_"+u.name)
		for _, title := range u.titles {
			resp := env.request(t, http.MethodPost, "/watched/", tokens[u.name], map[string]interface{}{
				"title": title, "type": "movie", "ranking": 7,
			})
			require.Equal(t, http.StatusCreated, resp.StatusCode)
		}
	}

	for _, u := range users {
		resp := env.request(t, http.MethodGet, "/watched/", tokens[u.name], nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var entries []models.WatchedMovie
		decodeJSON(t, resp, &entries)
		require.Len(t, entries, len(u.titles), "user %s", u.name)
		for i, title := range u.titles {
			assert.Equal(t, title, entries[i].Title)
		}
	}
}

func TestDeleteWatched(t *testing.T) {
	env := newTestEnv(t)
	env.provider.lookups["Inception"] = &omdb.Metadata{Title: "Inception", Genre: "Sci-Fi", Poster: "N/A", ReleaseYear: "2010"}

	tokenAlice := env.signup(t, "alice", "password_a")
	tokenBob := env.signup(t, "bob", "password_b")

	resp := env.request(t, http.MethodPost, "/watched/", tokenAlice, map[string]interface{}{
		"title": "Inception", "type": "movie", "ranking": 9,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created models.WatchedMovie
	decodeJSON(t, resp, &created)

	t.Run("another account's entry looks absent", func(t *testing.T) {
		resp := env.request(t, http.MethodDelete, fmt.Sprintf("/watched/%d", created.ID), tokenBob, nil)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("owner deletes", func(t *testing.T) {
		resp := env.request(t, http.MethodDelete, fmt.Sprintf("/watched/%d", created.ID), tokenAlice, nil)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		listResp := env.request(t, http.MethodGet, "/watched/", tokenAlice, nil)
		var entries []models.WatchedMovie
		decodeJSON(t, listResp, &entries)
		assert.Empty(t, entries)
	})

	t.Run("already deleted", func(t *testing.T) {
		resp := env.request(t, http.MethodDelete, fmt.Sprintf("/watched/%d", created.ID), tokenAlice, nil)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestWatchedRequiresAuth(t *testing.T) {
	env := newTestEnv(t)

	resp := env.request(t, http.MethodGet, "/watched/", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = env.request(t, http.MethodPost, "/watched/", "", map[string]interface{}{
		"title": "Inception", "type": "movie", "ranking": 9,
	})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
