package pages

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/templui/postpage/internal/config"
	"github.com/templui/postpage/internal/ctxkeys"
	"golang.org/x/text/language"
)

func render(t *testing.T, ctx context.Context, c templ.Component) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, c.Render(ctx, &buf))
	return buf.String()
}

func testContext() context.Context {
	ctx := ctxkeys.WithConfig(context.Background(), &config.Config{
		AppName:          "Acme Blog",
		AppURL:           "https://blog.example.com/",
		PlaceholderImage: "/assets/img/blur.svg",
		AuthorName:       "Ada Lovelace",
		AuthorBio:        "Writes about engines.",
		AuthorAvatar:     "/assets/img/ada.svg",
	})
	ctx = ctxkeys.WithLocale(ctx, language.AmericanEnglish)
	return ctxkeys.WithURLPath(ctx, "/post/42")
}

func TestPostLayoutOrder(t *testing.T) {
	html := render(t, testContext(), Post(PostView{
		Title:       "Hello",
		Description: "World",
		ImageURL:    "/img.jpg",
		PublishedOn: "1/15/2024",
	}))

	markers := []string{
		`<title>Hello | Acme Blog</title>`,
		`<link rel="canonical" href="https://blog.example.com/post/42">`,
		`<img alt="Image for Hello" src="/img.jpg"`,
		`<h1 class="text-3xl text-center font-bold mb-4 text-blue-900">Hello</h1>`,
		`<p class="text-gray-600 mb-8 text-center">World</p>`,
		`Published on: <time>1/15/2024</time>`,
		`<section id="comments"`,
		`Ada Lovelace`,
	}

	last := -1
	for _, m := range markers {
		idx := strings.Index(html, m)
		require.NotEqual(t, -1, idx, "missing %q", m)
		assert.Greater(t, idx, last, "%q out of order", m)
		last = idx
	}

	assert.Contains(t, html, `<html lang="en-US">`)
	assert.Contains(t, html, `background-image:url(&#34;/assets/img/blur.svg&#34;)`)
	assert.Contains(t, html, `data-placeholder="blur"`)
}

func TestPostEscapesContent(t *testing.T) {
	html := render(t, testContext(), Post(PostView{
		Title:       `<script>alert("x")</script>`,
		Description: "Fish & Chips",
		ImageURL:    "javascript:alert(1)",
		PublishedOn: "1/15/2024",
	}))

	assert.NotContains(t, html, `<script>alert("x")</script>`)
	assert.Contains(t, html, "&lt;script&gt;")
	assert.Contains(t, html, "Fish &amp; Chips")
	assert.NotContains(t, html, `src="javascript:`)
}

func TestPostWithoutConfigUsesDefaults(t *testing.T) {
	html := render(t, context.Background(), Post(PostView{Title: "Hello", Description: "World", ImageURL: "/img.jpg"}))

	assert.Contains(t, html, `<title>Hello | Blog</title>`)
	assert.Contains(t, html, defaultPlaceholder)
	assert.Contains(t, html, `<html lang="en">`)
	assert.NotContains(t, html, `rel="canonical"`)
}

func TestNotFound(t *testing.T) {
	html := render(t, testContext(), NotFound())

	assert.Contains(t, html, "404")
	assert.Contains(t, html, "This page could not be found.")
}

func TestHome(t *testing.T) {
	html := render(t, testContext(), Home())

	assert.Contains(t, html, `<title>Acme Blog</title>`)
}
