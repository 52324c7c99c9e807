package middleware

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
	"go.uber.org/zap"
)

// NewIPLimiter builds an in-memory per-client limiter from a formatted rate
// such as "60-M".
func NewIPLimiter(formatted string) (*limiter.Limiter, error) {
	rate, err := limiter.NewRateFromFormatted(formatted)
	if err != nil {
		return nil, err
	}
	return limiter.New(memory.NewStore(), rate), nil
}

// RateLimitMiddleware rejects clients that exceed the limiter's rate with 429.
// Every dashboard action costs one upstream call, so the limit guards the
// provider's quota as much as this process.
func RateLimitMiddleware(lim *limiter.Limiter, logger *zap.SugaredLogger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := lim.GetIPKey(r)
			quota, err := lim.Get(r.Context(), key)
			if err != nil {
				logger.Errorw("Rate limit check failed", "ip", key, "error", err)
				writeError(w, http.StatusInternalServerError, "Internal error")
				return
			}

			w.Header().Set("X-RateLimit-Limit", strconv.FormatInt(quota.Limit, 10))
			w.Header().Set("X-RateLimit-Remaining", strconv.FormatInt(quota.Remaining, 10))
			w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(quota.Reset, 10))

			if quota.Reached {
				logger.Warnw("Rate limit exceeded",
					"request_id", RequestIDFromContext(r.Context()),
					"ip", key,
					"limit", quota.Limit,
				)
				writeError(w, http.StatusTooManyRequests, "Too many requests, try again later")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
