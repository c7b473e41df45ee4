package layouts

import (
	"context"
	"strings"

	"github.com/templui/postpage/internal/ctxkeys"
	"golang.org/x/text/language"
)

func appName(ctx context.Context) string {
	if cfg := ctxkeys.Config(ctx); cfg != nil {
		return cfg.AppName
	}
	return "Blog"
}

func pageTitle(ctx context.Context, title string) string {
	if title == "" {
		return appName(ctx)
	}
	return title + " | " + appName(ctx)
}

func htmlLang(ctx context.Context) string {
	lang := ctxkeys.Locale(ctx)
	if lang == language.Und {
		lang = language.English
	}
	return lang.String()
}

// canonicalURL is empty unless both APP_URL and the request path are known.
func canonicalURL(ctx context.Context) string {
	cfg := ctxkeys.Config(ctx)
	path := ctxkeys.URLPath(ctx)
	if cfg == nil || cfg.AppURL == "" || path == "" {
		return ""
	}
	return strings.TrimSuffix(cfg.AppURL, "/") + path
}
