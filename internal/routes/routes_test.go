package routes

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/templui/postpage/internal/app"
	"github.com/templui/postpage/internal/config"
)

func newTestServer(t *testing.T) http.Handler {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "posts"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "posts", "42.md"), []byte(`---
title: Hello
description: World
image: /img.jpg
date: "2024-01-15T00:00:00Z"
---
`), 0644))

	a, err := app.New(&config.Config{
		AppName:        "Acme Blog",
		AppURL:         "http://localhost:8090",
		PostSource:     config.SourceMarkdown,
		ContentPath:    dir,
		DateTimezone:   "UTC",
		DefaultLocale:  "en-US",
		RateLimitRPS:   100,
		RateLimitBurst: 100,
		AuthorName:     "Ada",
	})
	require.NoError(t, err)

	return SetupRoutes(t.Context(), a)
}

func serve(h http.Handler, target, acceptLanguage string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	if acceptLanguage != "" {
		req.Header.Set("Accept-Language", acceptLanguage)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestPostPage(t *testing.T) {
	h := newTestServer(t)

	rec := serve(h, "/post/42", "")

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, ">Hello</h1>")
	assert.Contains(t, body, ">World</p>")
	assert.Contains(t, body, "Published on: <time>1/15/2024</time>")
	assert.Contains(t, body, `<link rel="canonical" href="http://localhost:8090/post/42">`)
	assert.Contains(t, body, "Ada")
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
	assert.Contains(t, rec.Header().Get("Content-Security-Policy"), "'nonce-")
}

func TestPostPageNegotiatesLocale(t *testing.T) {
	h := newTestServer(t)

	rec := serve(h, "/post/42", "de-DE,de;q=0.9")

	assert.Contains(t, rec.Body.String(), "Published on: <time>15.1.2024</time>")
	assert.Contains(t, rec.Body.String(), `<html lang="de">`)
}

func TestNotFoundRoutes(t *testing.T) {
	h := newTestServer(t)

	for _, target := range []string{"/post/abc", "/post/99", "/post/", "/post", "/nope"} {
		t.Run(target, func(t *testing.T) {
			rec := serve(h, target, "")

			assert.Equal(t, http.StatusNotFound, rec.Code)
			assert.Contains(t, rec.Body.String(), "This page could not be found.")
		})
	}
}

func TestStaticAndHealth(t *testing.T) {
	h := newTestServer(t)

	rec := serve(h, "/assets/img/placeholder.svg", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "<svg")

	rec = serve(h, "/healthz", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())

	rec = serve(h, "/", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Acme Blog")
}
