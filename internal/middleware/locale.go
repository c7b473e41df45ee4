package middleware

import (
	"net/http"

	"github.com/templui/postpage/internal/ctxkeys"
	"github.com/templui/postpage/internal/locale"
)

// Locale negotiates the viewing locale from Accept-Language and stores it in the context.
// A "lang" query parameter takes precedence over the header.
func Locale(negotiator *locale.Negotiator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tag := negotiator.Match(r.URL.Query().Get("lang"), r.Header.Get("Accept-Language"))
			w.Header().Add("Vary", "Accept-Language")

			ctx := ctxkeys.WithLocale(r.Context(), tag)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
