//go:build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/localehub/catalog-backend/internal/adapter/postgres"
	tagrepo "github.com/localehub/catalog-backend/internal/adapter/postgres/tag"
	"github.com/localehub/catalog-backend/internal/adapter/postgres/testhelper"
	translationrepo "github.com/localehub/catalog-backend/internal/adapter/postgres/translation"
	userrepo "github.com/localehub/catalog-backend/internal/adapter/postgres/user"
	"github.com/localehub/catalog-backend/internal/app/populate"
	authpkg "github.com/localehub/catalog-backend/internal/auth"
	"github.com/localehub/catalog-backend/internal/cache"
	"github.com/localehub/catalog-backend/internal/config"
	authsvc "github.com/localehub/catalog-backend/internal/service/auth"
	exportsvc "github.com/localehub/catalog-backend/internal/service/export"
	tagsvc "github.com/localehub/catalog-backend/internal/service/tag"
	translationsvc "github.com/localehub/catalog-backend/internal/service/translation"
	"github.com/localehub/catalog-backend/internal/transport/middleware"
	"github.com/localehub/catalog-backend/internal/transport/rest"
)

// testServer wraps the full-stack HTTP server for E2E tests.
type testServer struct {
	URL    string
	Client *http.Client
	Pool   *pgxpool.Pool
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

// setupTestServer bootstraps the full application stack backed by a real
// PostgreSQL container (shared via testhelper).
func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)

	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))
	txm := postgres.NewTxManager(pool)
	store := cache.New(1024, time.Minute)

	translations := translationrepo.New(pool)
	tags := tagrepo.New(pool)
	users := userrepo.New(pool)

	jwtMgr := authpkg.NewJWTManager("test-secret-at-least-32-chars-long!!", "test-issuer", 15*time.Minute)

	router := rest.NewRouter(rest.Handlers{
		Health:       rest.NewHealthHandler(pool, "test-version"),
		Auth:         rest.NewAuthHandler(authsvc.NewService(logger, users, jwtMgr), logger),
		Translations: rest.NewTranslationHandler(translationsvc.NewService(logger, translations, tags, txm, store), logger),
		Tags:         rest.NewTagHandler(tagsvc.NewService(logger, tags, store), logger),
		Exports:      rest.NewExportHandler(exportsvc.NewService(logger, translations, store), logger),
		Admin: rest.NewAdminHandler(
			populate.NewRunner(logger, translations, tags, txm, store),
			config.PopulateConfig{BatchSize: 100, ProgressEvery: 10, MaxRecords: 10000},
			logger),
	})

	handler := middleware.Chain(
		middleware.RequestID,
		middleware.Recovery(logger),
		middleware.CORS(config.CORSConfig{
			AllowedOrigins:   "*",
			AllowedMethods:   "GET,POST,PUT,DELETE,OPTIONS",
			AllowedHeaders:   "Authorization,Content-Type",
			AllowCredentials: true,
			MaxAge:           86400,
		}),
		middleware.Auth(jwtMgr),
	)(router)

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return &testServer{
		URL:    srv.URL,
		Client: srv.Client(),
		Pool:   pool,
	}
}

// doJSON sends a request with an optional JSON body and bearer token, and
// decodes the response body into a generic map (nil for empty bodies).
func (ts *testServer) doJSON(t *testing.T, method, path string, body any, token string) (int, map[string]any) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err, "marshal request body")
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, ts.URL+path, reader)
	require.NoError(t, err, "create request")
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err, "send request")
	defer resp.Body.Close()

	var decoded map[string]any
	if resp.ContentLength != 0 {
		if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
			decoded = nil
		}
	}
	return resp.StatusCode, decoded
}

// uniqueEmail returns an email address that will not collide across the
// shared test database.
func uniqueEmail() string {
	return "user-" + uuid.New().String()[:8] + "@example.com"
}

// registerUser registers a fresh account and returns its token and email.
func registerUser(t *testing.T, ts *testServer) (string, string) {
	t.Helper()

	email := uniqueEmail()
	status, resp := ts.doJSON(t, http.MethodPost, "/api/v1/auth/register", map[string]any{
		"email":    email,
		"password": "correct-horse-battery",
	}, "")
	require.Equal(t, http.StatusCreated, status, "register: %v", resp)

	token, ok := resp["accessToken"].(string)
	require.True(t, ok, "expected accessToken in register response")
	require.NotEmpty(t, token)

	return token, email
}

// loginAsAdmin registers a user, promotes it to admin directly in the
// database, and logs in again so the fresh token carries the admin role.
func loginAsAdmin(t *testing.T, ts *testServer) string {
	t.Helper()

	_, email := registerUser(t, ts)

	_, err := ts.Pool.Exec(t.Context(), `UPDATE app_users SET role = 'admin' WHERE email = $1`, email)
	require.NoError(t, err, "promote user to admin")

	status, resp := ts.doJSON(t, http.MethodPost, "/api/v1/auth/login", map[string]any{
		"email":    email,
		"password": "correct-horse-battery",
	}, "")
	require.Equal(t, http.StatusOK, status, "login after promotion: %v", resp)

	token, ok := resp["accessToken"].(string)
	require.True(t, ok, "expected accessToken in login response")
	return token
}
