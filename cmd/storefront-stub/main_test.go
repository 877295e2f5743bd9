package main

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/RoyceAzure/lab/storefront/internal/config"
	"github.com/alicebob/miniredis/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestBuildHandlerWithSeedFile(t *testing.T) {
	dir := t.TempDir()
	seedFile := filepath.Join(dir, "seed.yaml")
	require.NoError(t, os.WriteFile(seedFile, []byte(`
tokens:
  t1: alice
categories:
  - id: 9
    name: Shoes
products:
  - id: 900
    name: Runner
    price: "80.00"
    category_id: 9
`), 0o600))

	cf := &config.Config{
		StubSeedFile:     seedFile,
		StubRateCapacity: 10,
		StubRateRefill:   time.Second,
	}
	limiter, closeLimiter := newLimiter(cf)
	defer closeLimiter()
	h, err := buildHandler(cf, zerolog.Nop(), limiter)
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/categories/9", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "Shoes")

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "storefront_stub_requests_total")
}

func TestBuildHandlerMissingSeed(t *testing.T) {
	_, err := buildHandler(&config.Config{StubSeedFile: "/does/not/exist.yaml"}, zerolog.Nop(), nil)
	require.Error(t, err)
}

func TestRedisLimiter(t *testing.T) {
	mr := miniredis.RunT(t)
	cf := &config.Config{
		RedisAddr:        mr.Addr(),
		StubRateBackend:  "redis",
		StubRateCapacity: 1,
		StubRateRefill:   time.Hour,
	}
	limiter, closeLimiter := newLimiter(cf)
	defer closeLimiter()

	h, err := buildHandler(cf, zerolog.Nop(), limiter)
	require.NoError(t, err)

	first := httptest.NewRecorder()
	h.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/api/products", nil))
	require.Equal(t, http.StatusOK, first.Code)

	second := httptest.NewRecorder()
	h.ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/api/products", nil))
	require.Equal(t, http.StatusTooManyRequests, second.Code)
}
