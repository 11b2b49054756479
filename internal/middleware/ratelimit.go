package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/rpipaliya/student-journal-api/pkg/clientip"
)

const (
	// RateLimitWindow is the fixed counting window per client IP.
	RateLimitWindow = 15 * time.Minute
	// RateLimitMaxRequests is the number of requests allowed per window.
	RateLimitMaxRequests = 100
	// RateLimitKeyPrefix is the Redis key prefix for per-IP counters.
	RateLimitKeyPrefix = "ratelimit:"

	rateLimitMessage = `{"message":"You can only make 100 requests every 15 Minutes"}`
)

// RateLimit limits each client IP to RateLimitMaxRequests per
// RateLimitWindow, backed by Redis counters. When Redis is unavailable the
// limiter fails open: the request is served uncounted.
func RateLimit(rdb *redis.Client) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if rdb == nil {
				next.ServeHTTP(w, r)
				return
			}

			ctx := r.Context()
			key := RateLimitKeyPrefix + clientip.FromRequest(r)

			count, err := rdb.Incr(ctx, key).Result()
			if err != nil {
				// Fail open on Redis errors.
				next.ServeHTTP(w, r)
				return
			}
			// NX only arms a missing TTL, so the window stays fixed; running
			// it on every request re-arms a counter whose Expire was lost,
			// instead of limiting that IP forever.
			rdb.ExpireNX(ctx, key, RateLimitWindow)

			if count > RateLimitMaxRequests {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusTooManyRequests)
				w.Write([]byte(rateLimitMessage))
				return
			}

			remaining := RateLimitMaxRequests - int(count)
			w.Header().Set("RateLimit-Limit", strconv.Itoa(RateLimitMaxRequests))
			w.Header().Set("RateLimit-Remaining", strconv.Itoa(remaining))
			w.Header().Set("RateLimit-Reset", strconv.FormatInt(time.Now().Add(RateLimitWindow).Unix(), 10))

			next.ServeHTTP(w, r)
		})
	}
}
