package ui

import (
	"bytes"
	"log/slog"
	"net/http"

	"github.com/a-h/templ"
)

func Render(w http.ResponseWriter, r *http.Request, c templ.Component) {
	RenderStatus(w, r, http.StatusOK, c)
}

// RenderStatus renders c into memory and only then writes status and body,
// so a failed render never leaves a partial page behind.
func RenderStatus(w http.ResponseWriter, r *http.Request, status int, c templ.Component) {
	var buf bytes.Buffer
	err := c.Render(r.Context(), &buf)
	if err != nil {
		slog.ErrorContext(r.Context(), "render failed", "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	if w.Header().Get("Content-Type") == "" {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
	}
	w.WriteHeader(status)

	_, err = buf.WriteTo(w)
	if err != nil {
		slog.WarnContext(r.Context(), "write response failed", "error", err)
	}
}
