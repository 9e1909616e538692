package ratelimit

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func okHandler(calls *int) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		*calls++
		w.WriteHeader(http.StatusOK)
	})
}

func request(remote string) *http.Request {
	r := httptest.NewRequest(http.MethodGet, "/customers", nil)
	r.RemoteAddr = remote

	return r
}

func TestMiddleware_AllowsThenRejectsSameClient(t *testing.T) {
	calls := 0
	h := New(0.02, 1).Middleware(okHandler(&calls))

	w1 := httptest.NewRecorder()
	h.ServeHTTP(w1, request("10.0.0.1:1234"))
	assert.Equal(t, http.StatusOK, w1.Code)

	w2 := httptest.NewRecorder()
	h.ServeHTTP(w2, request("10.0.0.1:5678"))
	assert.Equal(t, http.StatusTooManyRequests, w2.Code)
	assert.NotEmpty(t, w2.Header().Get("Retry-After"))

	assert.Equal(t, 1, calls)
}

func TestMiddleware_ClientsAreIndependent(t *testing.T) {
	calls := 0
	h := New(0.02, 1).Middleware(okHandler(&calls))

	for _, remote := range []string{"10.0.0.1:1", "10.0.0.2:1", "10.0.0.3:1"} {
		w := httptest.NewRecorder()
		h.ServeHTTP(w, request(remote))
		assert.Equal(t, http.StatusOK, w.Code)
	}

	assert.Equal(t, 3, calls)
}

func TestLimiter_Cleanup(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	l := New(1, 1, WithIdleTTL(time.Minute))
	l.now = func() time.Time { return now }

	l.get("a")
	now = now.Add(30 * time.Second)
	l.get("b")
	now = now.Add(45 * time.Second)

	l.Cleanup()
	assert.Equal(t, 1, l.clients())
}

func TestClientKey(t *testing.T) {
	assert.Equal(t, "10.0.0.1", clientKey(request("10.0.0.1:80")))
	assert.Equal(t, "10.0.0.1", clientKey(request("10.0.0.1")))
	assert.Equal(t, "unknown", clientKey(request("")))
}
