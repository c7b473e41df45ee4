package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/templui/postpage/internal/ctxkeys"
)

// SecurityHeaders sets CSP and the usual hardening headers.
// Must run after NonceMiddleware and Config.
func SecurityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		scriptSrc := "'self'"
		if nonce := GetNonce(r.Context()); nonce != "" {
			scriptSrc += fmt.Sprintf(" 'nonce-%s'", nonce)
		}

		// Hero images may live on any host the content API points at
		imgSrc := "'self' data: https:"
		if cfg := ctxkeys.Config(r.Context()); cfg != nil && cfg.S3Endpoint != "" {
			imgSrc += " " + strings.TrimSuffix(cfg.S3Endpoint, "/")
		}

		csp := strings.Join([]string{
			"default-src 'self'",
			"script-src " + scriptSrc,
			"style-src 'self' 'unsafe-inline'", // fill-sized images use inline styles
			"img-src " + imgSrc,
			"frame-ancestors 'none'",
			"base-uri 'self'",
		}, "; ")

		h := w.Header()
		h.Set("Content-Security-Policy", csp)
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("X-Frame-Options", "DENY")
		h.Set("Referrer-Policy", "strict-origin-when-cross-origin")

		next.ServeHTTP(w, r)
	})
}
