//go:build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/catalog-backend/internal/adapter/postgres"
	"github.com/heartmarshall/catalog-backend/internal/adapter/postgres/category"
	"github.com/heartmarshall/catalog-backend/internal/adapter/postgres/item"
	"github.com/heartmarshall/catalog-backend/internal/adapter/postgres/relation"
	"github.com/heartmarshall/catalog-backend/internal/adapter/postgres/testhelper"
	"github.com/heartmarshall/catalog-backend/internal/config"
	"github.com/heartmarshall/catalog-backend/internal/service/catalog"
	"github.com/heartmarshall/catalog-backend/internal/transport/rest"
)

// ---------------------------------------------------------------------------
// testServer wraps the full-stack HTTP server for E2E tests.
// ---------------------------------------------------------------------------

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

// setupTestServer wires the real repositories, service and router on top of
// the shared test database.
func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)
	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))

	svc := catalog.NewService(
		logger,
		item.New(pool),
		category.New(pool),
		relation.New(pool),
		item.NewFilterRunner(pool),
		postgres.NewTxManager(pool, pgx.Serializable),
		config.CatalogConfig{DefaultPageSize: 5, MaxPageSize: 100, MaxDeleteBatch: 100},
	)

	handler := rest.NewRouter(rest.RouterDeps{
		Catalog: rest.NewCatalogHandler(svc, logger),
		Health:  rest.NewHealthHandler(pool, svc, "test-version"),
		CORS: config.CORSConfig{
			AllowedOrigins: "*",
			AllowedMethods: "GET,POST,PUT,DELETE,OPTIONS",
			AllowedHeaders: "Content-Type,X-Request-Id",
			MaxAge:         86400,
		},
		Metrics:  config.MetricsConfig{Enabled: true, Path: "/metrics"},
		Registry: prometheus.NewRegistry(),
		Log:      logger,
	})

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return &testServer{URL: srv.URL, Client: srv.Client(), Pool: pool}
}

// do sends a JSON request and returns the response. body may be nil.
func (ts *testServer) do(t *testing.T, method, path string, body any) *http.Response {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req, err := http.NewRequest(method, ts.URL+path, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

// call sends a request, asserts the status and decodes the body into T.
func call[T any](t *testing.T, ts *testServer, method, path string, body any, wantStatus int) T {
	t.Helper()

	resp := ts.do(t, method, path, body)
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	require.Equal(t, wantStatus, resp.StatusCode, "%s %s: %+v", method, path, out)
	return out
}

// categoryIDs resolves seeded category names to ids through the API.
func categoryIDs(t *testing.T, ts *testServer, names ...string) []int64 {
	t.Helper()

	cats := call[[]rest.CategoryResponse](t, ts, http.MethodGet, "/api/items/categories", nil, http.StatusOK)
	byName := make(map[string]int64, len(cats))
	for _, c := range cats {
		byName[c.Name] = c.ID
	}

	ids := make([]int64, len(names))
	for i, n := range names {
		id, ok := byName[n]
		require.True(t, ok, "category %q not seeded", n)
		ids[i] = id
	}
	return ids
}

func itemBody(code, name string, rating float64, year int, cats ...int64) map[string]any {
	return map[string]any{
		"code":        code,
		"name":        name,
		"rating":      rating,
		"releaseYear": year,
		"status":      "ACTIVE",
		"categories":  cats,
	}
}

func categoryNames(cats []rest.CategoryResponse) []string {
	out := make([]string, len(cats))
	for i, c := range cats {
		out[i] = c.Name
	}
	return out
}
