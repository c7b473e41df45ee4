package middleware

import (
	"net/http"

	"github.com/templui/postpage/internal/config"
	"github.com/templui/postpage/internal/ctxkeys"
)

// Config puts the sanitized app configuration in the request context for
// layouts and the author card. The copy is made once, not per request.
func Config(cfg *config.Config) func(http.Handler) http.Handler {
	safe := cfg.Sanitized()
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := ctxkeys.WithConfig(r.Context(), safe)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
