package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func rateLimitedHandler(limiter *RateLimiter) http.Handler {
	return limiter.Limit(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
}

func hitFrom(handler http.Handler, remoteAddr string) *httptest.ResponseRecorder {
	r := httptest.NewRequest("GET", "/api/v1/doctors", nil)
	r.RemoteAddr = remoteAddr
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)
	return w
}

func TestRateLimiter_Limit(t *testing.T) {
	t.Run("allows requests within the budget", func(t *testing.T) {
		handler := rateLimitedHandler(NewRateLimiter(3, time.Hour, time.Hour))
		for i := 0; i < 3; i++ {
			assert.Equal(t, http.StatusOK, hitFrom(handler, "10.0.0.1:4000").Code)
		}
	})

	t.Run("blocks an IP that drains its bucket", func(t *testing.T) {
		handler := rateLimitedHandler(NewRateLimiter(2, time.Hour, time.Hour))
		hitFrom(handler, "10.0.0.2:4000")
		hitFrom(handler, "10.0.0.2:4000")

		w := hitFrom(handler, "10.0.0.2:4000")
		assert.Equal(t, http.StatusTooManyRequests, w.Code)
		assert.NotEmpty(t, w.Header().Get("Retry-After"))
	})

	t.Run("budgets are tracked per IP", func(t *testing.T) {
		handler := rateLimitedHandler(NewRateLimiter(1, time.Hour, time.Hour))
		hitFrom(handler, "10.0.0.3:4000")
		hitFrom(handler, "10.0.0.3:4000")

		assert.Equal(t, http.StatusOK, hitFrom(handler, "10.0.0.4:4000").Code)
	})

	t.Run("a blocked IP gets a fresh bucket once the cooldown passes", func(t *testing.T) {
		handler := rateLimitedHandler(NewRateLimiter(1, time.Hour, 20*time.Millisecond))
		hitFrom(handler, "10.0.0.5:4000")
		assert.Equal(t, http.StatusTooManyRequests, hitFrom(handler, "10.0.0.5:4000").Code)

		time.Sleep(30 * time.Millisecond)
		assert.Equal(t, http.StatusOK, hitFrom(handler, "10.0.0.5:4000").Code)
	})

	t.Run("malformed remote address is rejected", func(t *testing.T) {
		handler := rateLimitedHandler(NewRateLimiter(1, time.Hour, time.Hour))
		assert.Equal(t, http.StatusInternalServerError, hitFrom(handler, "no-port").Code)
	})
}
