//go:build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/bookshelf-backend/internal/adapter/postgres/testhelper"
	"github.com/heartmarshall/bookshelf-backend/internal/app"
	authpkg "github.com/heartmarshall/bookshelf-backend/internal/auth"
	"github.com/heartmarshall/bookshelf-backend/internal/config"
	"github.com/heartmarshall/bookshelf-backend/pkg/clock"
)

// ---------------------------------------------------------------------------
// testServer wraps the full-stack HTTP server for E2E tests.
// ---------------------------------------------------------------------------

type testServer struct {
	URL    string
	Client *http.Client
	Pool   *pgxpool.Pool
	jwt    *authpkg.JWTManager
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

// setupTestServer bootstraps the full application stack backed by
// a real PostgreSQL container (shared via testhelper).
func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)
	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))

	cfg := &config.Config{
		Server: config.ServerConfig{RequestTimeout: 15 * time.Second},
		Auth: config.AuthConfig{
			JWTSecret:      "test-secret-at-least-32-chars-long!!",
			JWTIssuer:      "test-issuer",
			AccessTokenTTL: 15 * time.Minute,
		},
		CORS: config.CORSConfig{
			AllowedOrigins: "*",
			AllowedMethods: "GET,POST,PUT,DELETE,OPTIONS",
			AllowedHeaders: "Authorization,Content-Type",
			MaxAge:         86400,
		},
		RateLimit: config.RateLimitConfig{ScanPerMinute: 1000, CleanupInterval: time.Minute},
		Reference: config.ReferenceConfig{CacheSize: 64},
	}

	handler, cleanup, err := app.NewHandler(cfg, logger, pool, clock.System{})
	require.NoError(t, err)
	t.Cleanup(cleanup)

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return &testServer{
		URL:    srv.URL,
		Client: srv.Client(),
		Pool:   pool,
		jwt:    authpkg.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL),
	}
}

// tokenFor returns a fresh user id together with a valid access token.
func (ts *testServer) tokenFor(t *testing.T) (string, string) {
	t.Helper()

	userID := testhelper.UniqueUserID()
	tok, err := ts.jwt.GenerateAccessToken(userID)
	require.NoError(t, err)
	return userID, tok
}

// do sends a JSON request and returns the status and raw body.
func (ts *testServer) do(t *testing.T, method, path string, body any, token string) (int, []byte) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequest(method, ts.URL+path, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, raw
}

// doJSON is do plus decoding of the response body into out.
func (ts *testServer) doJSON(t *testing.T, method, path string, body any, token string, out any) int {
	t.Helper()

	status, raw := ts.do(t, method, path, body, token)
	if out != nil && len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, out), "body: %s", raw)
	}
	return status
}

// ---------------------------------------------------------------------------
// Response shapes as seen by API clients.
// ---------------------------------------------------------------------------

type bookBody struct {
	ID            int64   `json:"id"`
	Title         string  `json:"title"`
	Author        string  `json:"author"`
	Genre         *string `json:"genre"`
	Format        *string `json:"format"`
	Status        string  `json:"status"`
	ReadingStatus struct {
		Status         string     `json:"status"`
		CompletionDate *time.Time `json:"completionDate"`
	} `json:"readingStatus"`
	LendingRecord *struct {
		BorrowerName string     `json:"borrowerName"`
		ReturnDate   *time.Time `json:"returnDate"`
		IsReturned   bool       `json:"isReturned"`
	} `json:"lendingRecord"`
	Notes []noteBody `json:"notes"`
}

type noteBody struct {
	ID       int64  `json:"id"`
	NoteText string `json:"noteText"`
}

type lendingBody struct {
	BorrowerName string     `json:"borrowerName"`
	ReturnDate   *time.Time `json:"returnDate"`
	IsReturned   bool       `json:"isReturned"`
}

type statsBody struct {
	TotalBooks        int            `json:"totalBooks"`
	WantToRead        int            `json:"wantToRead"`
	CurrentlyReading  int            `json:"currentlyReading"`
	Finished          int            `json:"finished"`
	BooksReadThisYear int            `json:"booksReadThisYear"`
	GenreDistribution map[string]int `json:"genreDistribution"`
}

type errorsBody struct {
	Errors []string `json:"errors"`
}

type referenceBody struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// genreID looks up a seeded genre by name.
func (ts *testServer) genreID(t *testing.T, token, name string) int64 {
	t.Helper()

	var genres []referenceBody
	status := ts.doJSON(t, http.MethodGet, "/api/genres", nil, token, &genres)
	require.Equal(t, http.StatusOK, status)
	for _, g := range genres {
		if g.Name == name {
			return g.ID
		}
	}
	t.Fatalf("genre %q not found", name)
	return 0
}
