package authorcard

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/templui/postpage/internal/config"
	"github.com/templui/postpage/internal/ctxkeys"
)

func renderCard(t *testing.T, ctx context.Context) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, AuthorCard().Render(ctx, &buf))
	return buf.String()
}

func TestAuthorCardFromConfig(t *testing.T) {
	ctx := ctxkeys.WithConfig(context.Background(), &config.Config{
		AuthorName:   "Ada & Co",
		AuthorBio:    "Writes about engines.",
		AuthorAvatar: "/assets/img/ada.svg",
	})

	html := renderCard(t, ctx)

	assert.Contains(t, html, `<img src="/assets/img/ada.svg" alt="Ada &amp; Co"`)
	assert.Contains(t, html, `<p class="font-semibold">Ada &amp; Co</p>`)
	assert.Contains(t, html, "Writes about engines.")
}

func TestAuthorCardDefaults(t *testing.T) {
	html := renderCard(t, context.Background())

	assert.Contains(t, html, "The Editors")
	assert.NotContains(t, html, "<img")
	assert.NotContains(t, html, "text-sm")
}

func TestAuthorCardSanitizesAvatar(t *testing.T) {
	ctx := ctxkeys.WithConfig(context.Background(), &config.Config{
		AuthorName:   "Ada",
		AuthorAvatar: "javascript:alert(1)",
	})

	assert.NotContains(t, renderCard(t, ctx), "javascript:")
}
