package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rpipaliya/student-journal-api/internal/middleware"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func newLimiter(t *testing.T) (*miniredis.Miniredis, http.Handler) {
	t.Helper()
	srv := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	t.Cleanup(func() { rdb.Close() })
	return srv, middleware.RateLimit(rdb)(okHandler())
}

func limiterRequest(handler http.Handler, ip string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if ip != "" {
		req.Header.Set("X-Real-IP", ip)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestRateLimit_EnforcesWindowLimit(t *testing.T) {
	srv, handler := newLimiter(t)

	for i := 1; i <= middleware.RateLimitMaxRequests; i++ {
		rec := limiterRequest(handler, "203.0.113.9")
		require.Equal(t, http.StatusOK, rec.Code, "request %d is within the limit", i)
		assert.Equal(t, strconv.Itoa(middleware.RateLimitMaxRequests), rec.Header().Get("RateLimit-Limit"))
		assert.Equal(t, strconv.Itoa(middleware.RateLimitMaxRequests-i), rec.Header().Get("RateLimit-Remaining"))
	}

	rec := limiterRequest(handler, "203.0.113.9")
	require.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.JSONEq(t, `{"message":"You can only make 100 requests every 15 Minutes"}`, rec.Body.String())

	ttl := srv.TTL(middleware.RateLimitKeyPrefix + "203.0.113.9")
	assert.Greater(t, ttl, time.Duration(0), "the counter carries the window TTL")
	assert.LessOrEqual(t, ttl, middleware.RateLimitWindow)
}

func TestRateLimit_CountsPerClientIP(t *testing.T) {
	_, handler := newLimiter(t)

	for i := 0; i < middleware.RateLimitMaxRequests; i++ {
		require.Equal(t, http.StatusOK, limiterRequest(handler, "203.0.113.9").Code)
	}
	require.Equal(t, http.StatusTooManyRequests, limiterRequest(handler, "203.0.113.9").Code)

	rec := limiterRequest(handler, "198.51.100.4")
	require.Equal(t, http.StatusOK, rec.Code, "one client's limit never throttles another")
	assert.Equal(t, strconv.Itoa(middleware.RateLimitMaxRequests-1), rec.Header().Get("RateLimit-Remaining"))
}

func TestRateLimit_WindowExpiryResetsCounter(t *testing.T) {
	srv, handler := newLimiter(t)

	for i := 0; i <= middleware.RateLimitMaxRequests; i++ {
		limiterRequest(handler, "203.0.113.9")
	}
	require.Equal(t, http.StatusTooManyRequests, limiterRequest(handler, "203.0.113.9").Code)

	srv.FastForward(middleware.RateLimitWindow + time.Second)

	rec := limiterRequest(handler, "203.0.113.9")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, strconv.Itoa(middleware.RateLimitMaxRequests-1), rec.Header().Get("RateLimit-Remaining"))
}

func TestRateLimit_RearmsCounterWithoutTTL(t *testing.T) {
	srv, handler := newLimiter(t)

	// A counter that lost its TTL (crash between Incr and Expire) must be
	// re-armed instead of limiting the IP forever.
	key := middleware.RateLimitKeyPrefix + "203.0.113.9"
	require.NoError(t, srv.Set(key, "5"))
	require.Zero(t, srv.TTL(key))

	rec := limiterRequest(handler, "203.0.113.9")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, strconv.Itoa(middleware.RateLimitMaxRequests-6), rec.Header().Get("RateLimit-Remaining"))
	assert.Greater(t, srv.TTL(key), time.Duration(0))
}

func TestRateLimit_NoRedisFailsOpen(t *testing.T) {
	handler := middleware.RateLimit(nil)(okHandler())

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRateLimit_UnreachableRedisFailsOpen(t *testing.T) {
	// Nothing listens on this port; every command errors immediately.
	rdb := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	defer rdb.Close()

	handler := middleware.RateLimit(rdb)(okHandler())

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, rec.Code, "Redis failures must not reject requests")
	assert.Empty(t, rec.Header().Get("RateLimit-Remaining"))
}
