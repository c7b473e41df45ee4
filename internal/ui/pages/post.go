package pages

import (
	"context"

	"github.com/templui/postpage/internal/ctxkeys"
	"github.com/templui/postpage/internal/ui/components/image"
)

const defaultPlaceholder = "/assets/img/placeholder.svg"

// PostView is what the post page shows. The handler resolves the image URL
// and formats the date; the page only lays them out.
type PostView struct {
	Title       string
	Description string
	ImageURL    string
	PublishedOn string
}

func heroImage(ctx context.Context, v PostView) image.Props {
	placeholder := defaultPlaceholder
	if cfg := ctxkeys.Config(ctx); cfg != nil && cfg.PlaceholderImage != "" {
		placeholder = cfg.PlaceholderImage
	}

	return image.Props{
		Src:         v.ImageURL,
		Alt:         "Image for " + v.Title,
		Fill:        true,
		Class:       "rounded-t-lg object-cover",
		Placeholder: image.PlaceholderBlur,
		BlurDataURL: placeholder,
		Priority:    true,
	}
}
