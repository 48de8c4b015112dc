package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/JohnBalawejder/watcha/internal/auth"
	"github.com/JohnBalawejder/watcha/internal/config"
	"github.com/JohnBalawejder/watcha/internal/database"
	"github.com/JohnBalawejder/watcha/internal/handlers"
	"github.com/JohnBalawejder/watcha/internal/middleware"
	"github.com/JohnBalawejder/watcha/internal/omdb"
	"github.com/JohnBalawejder/watcha/internal/repository"
	"github.com/JohnBalawejder/watcha/internal/routes"
	"github.com/JohnBalawejder/watcha/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// fakeProvider stands in for the OMDb client.
type fakeProvider struct {
	searchResults []omdb.SearchResult
	searchErr     error
	lookups       map[string]*omdb.Metadata
}

func (p *fakeProvider) Search(ctx context.Context, query string) ([]omdb.SearchResult, error) {
	if p.searchErr != nil {
		return nil, p.searchErr
	}
	return p.searchResults, nil
}

func (p *fakeProvider) Lookup(ctx context.Context, title string) (*omdb.Metadata, error) {
	meta, ok := p.lookups[title]
	if !ok {
		return nil, omdb.ErrNotFound
	}
	return meta, nil
}

type testEnv struct {
	app      *fiber.App
	tokens   *auth.TokenManager
	provider *fakeProvider
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	db, err := database.New(gdb, config.DatabaseConfig{QueryTimeout: 5 * time.Second})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)

	tokens := auth.NewTokenManager("test_secret", time.Hour)
	provider := &fakeProvider{lookups: map[string]*omdb.Metadata{}}

	userRepo := repository.NewUserRepository(db)
	watchedRepo := repository.NewWatchedRepository(db)
	swipeRepo := repository.NewSwipeRepository(db)

	accountService := services.NewAccountService(userRepo, tokens, log)
	watchlistService := services.NewWatchlistService(watchedRepo, swipeRepo, provider, log)
	catalogService := services.NewCatalogService(provider, log)

	app := fiber.New()
	routes.Setup(app,
		middleware.RequireAuth(tokens),
		handlers.NewAuthHandler(accountService, log),
		handlers.NewCatalogHandler(catalogService, log),
		handlers.NewWatchedHandler(watchlistService, log),
		handlers.NewSwipeHandler(watchlistService, log),
	)

	return &testEnv{
		app:      app,
		tokens:   tokens,
		provider: provider,
	}
}

func (e *testEnv) request(t *testing.T, method, path, token string, body interface{}) *http.Response {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	}

	resp, err := e.app.Test(req, 5000)
	require.NoError(t, err)
	return resp
}

// signup registers a user and returns a bearer token for them.
func (e *testEnv) signup(t *testing.T, username, password string) string {
	t.Helper()

	resp := e.request(t, http.MethodPost, "/register", "", map[string]string{
		"username": username,
		"password": password,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = e.request(t, http.MethodPost, "/login", "", map[string]string{
		"username": username,
		"password": password,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	decodeJSON(t, resp, &body)
	require.NotEmpty(t, body["access_token"])
	return body["access_token"]
}

func decodeJSON(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}
