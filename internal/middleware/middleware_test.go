package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/templui/postpage/internal/config"
	"github.com/templui/postpage/internal/ctxkeys"
	"github.com/templui/postpage/internal/locale"
	"golang.org/x/text/language"
)

func TestChainOrder(t *testing.T) {
	var order []string
	mark := func(name string) func(http.Handler) http.Handler {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	h := Chain(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		order = append(order, "handler")
	}), mark("first"), mark("second"))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, []string{"first", "second", "handler"}, order)
}

func TestLocale(t *testing.T) {
	var got language.Tag
	h := Locale(locale.NewNegotiator(language.AmericanEnglish))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = ctxkeys.Locale(r.Context())
	}))

	tests := []struct {
		name   string
		target string
		accept string
		want   language.Tag
	}{
		{"no header", "/post/1", "", language.AmericanEnglish},
		{"header", "/post/1", "de-DE,de;q=0.9,en;q=0.5", language.German},
		{"query wins", "/post/1?lang=ja", "de", language.Japanese},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			if tt.accept != "" {
				req.Header.Set("Accept-Language", tt.accept)
			}
			rec := httptest.NewRecorder()

			h.ServeHTTP(rec, req)

			assert.Equal(t, tt.want, got)
			assert.Equal(t, "Accept-Language", rec.Header().Get("Vary"))
		})
	}
}

func TestRequestID(t *testing.T) {
	var seen string
	h := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = ctxkeys.RequestID(r.Context())
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	require.NotEmpty(t, seen)
	assert.Equal(t, seen, rec.Header().Get(requestIDHeader))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(requestIDHeader, "upstream-id")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, "upstream-id", seen)
	assert.Equal(t, "upstream-id", rec.Header().Get(requestIDHeader))
}

func TestRequestLoggingCapturesStatus(t *testing.T) {
	rec := httptest.NewRecorder()
	h := RequestLogging(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.WriteHeader(http.StatusOK) // ignored
	}))

	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/post/abc", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSecurityHeadersIncludeNonce(t *testing.T) {
	var nonce string
	h := Chain(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		nonce = templ.GetNonce(r.Context())
	}),
		Config(&config.Config{S3Endpoint: "https://s3.example.com/"}),
		NonceMiddleware,
		SecurityHeaders,
	)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.NotEmpty(t, nonce)
	csp := rec.Header().Get("Content-Security-Policy")
	assert.Contains(t, csp, "'nonce-"+nonce+"'")
	assert.Contains(t, csp, "img-src 'self' data: https: https://s3.example.com")
	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
}

func TestRateLimiterPerIP(t *testing.T) {
	rl := NewRateLimiter(t.Context(), 1, 2)

	assert.True(t, rl.Allow("10.0.0.1"))
	assert.True(t, rl.Allow("10.0.0.1"))
	assert.False(t, rl.Allow("10.0.0.1"))
	assert.True(t, rl.Allow("10.0.0.2"))

	rl.cleanup(time.Now().Add(time.Hour))
	assert.Empty(t, rl.visitors)
}

func TestRateLimiterStopsWithContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	rl := NewRateLimiter(ctx, 1, 1)

	select {
	case <-rl.done:
		t.Fatal("cleanup stopped before cancel")
	default:
	}

	cancel()

	select {
	case <-rl.done:
	case <-time.After(time.Second):
		t.Fatal("cleanup goroutine still running after cancel")
	}
}

func TestRateLimitMiddleware(t *testing.T) {
	h := RateLimit(t.Context(), 1, 1)(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	newReq := func() *http.Request {
		req := httptest.NewRequest(http.MethodGet, "/post/1", nil)
		req.Header.Set("X-Forwarded-For", "203.0.113.9, 10.0.0.1")
		return req
	}

	rec := httptest.NewRecorder()
	h(rec, newReq())
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	h(rec, newReq())
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "1", rec.Header().Get("Retry-After"))
}

func TestGetClientIP(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "192.0.2.1:4321"
	assert.Equal(t, "192.0.2.1", getClientIP(req))

	req.Header.Set("X-Real-IP", " 198.51.100.7 ")
	assert.Equal(t, "198.51.100.7", getClientIP(req))

	req.Header.Set("X-Forwarded-For", "203.0.113.9, 10.0.0.1")
	assert.Equal(t, "203.0.113.9", getClientIP(req))
}
