package ctxkeys

import (
	"context"

	"github.com/templui/postpage/internal/config"
	"golang.org/x/text/language"
)

// contextKey is a type for context keys to avoid collisions
type contextKey string

const (
	URLPathKey   contextKey = "url_path"
	ConfigKey    contextKey = "config"
	LocaleKey    contextKey = "locale"
	RequestIDKey contextKey = "request_id"
)

func URLPath(ctx context.Context) string {
	path, _ := ctx.Value(URLPathKey).(string)
	return path
}

func WithURLPath(ctx context.Context, path string) context.Context {
	return context.WithValue(ctx, URLPathKey, path)
}

func Config(ctx context.Context) *config.Config {
	cfg, _ := ctx.Value(ConfigKey).(*config.Config)
	return cfg
}

func WithConfig(ctx context.Context, cfg *config.Config) context.Context {
	return context.WithValue(ctx, ConfigKey, cfg)
}

// Locale returns the negotiated viewing locale, or language.Und if none was set.
func Locale(ctx context.Context) language.Tag {
	tag, ok := ctx.Value(LocaleKey).(language.Tag)
	if !ok {
		return language.Und
	}
	return tag
}

func WithLocale(ctx context.Context, tag language.Tag) context.Context {
	return context.WithValue(ctx, LocaleKey, tag)
}

func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(RequestIDKey).(string)
	return id
}

func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, RequestIDKey, id)
}
