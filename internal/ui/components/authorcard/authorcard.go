package authorcard

import (
	"context"

	"github.com/templui/postpage/internal/ctxkeys"
)

type author struct {
	Name   string
	Bio    string
	Avatar string
}

// authorFromContext reads the site author from the request's config, not from the post.
func authorFromContext(ctx context.Context) author {
	cfg := ctxkeys.Config(ctx)
	if cfg == nil {
		return author{Name: "The Editors"}
	}
	return author{Name: cfg.AuthorName, Bio: cfg.AuthorBio, Avatar: cfg.AuthorAvatar}
}
