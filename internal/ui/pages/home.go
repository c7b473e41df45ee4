package pages

import (
	"context"

	"github.com/templui/postpage/internal/ctxkeys"
)

func siteIntro(ctx context.Context) (name, tagline string) {
	if cfg := ctxkeys.Config(ctx); cfg != nil {
		return cfg.AppName, cfg.AppTagline
	}
	return "Blog", ""
}
