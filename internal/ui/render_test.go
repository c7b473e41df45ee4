package ui

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
)

func TestRenderStatus(t *testing.T) {
	c := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, "<p>gone</p>")
		return err
	})

	rec := httptest.NewRecorder()
	RenderStatus(rec, httptest.NewRequest(http.MethodGet, "/", nil), http.StatusNotFound, c)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Equal(t, "<p>gone</p>", rec.Body.String())
}

func TestRenderFailureDiscardsPartialPage(t *testing.T) {
	c := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, "<article>half")
		if err != nil {
			return err
		}
		return errors.New("component failed")
	})

	rec := httptest.NewRecorder()
	Render(rec, httptest.NewRequest(http.MethodGet, "/", nil), c)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "<article>")
	assert.Contains(t, rec.Body.String(), "internal server error")
}
