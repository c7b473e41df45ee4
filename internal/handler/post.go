package handler

import (
	"net/http"

	"github.com/templui/postpage/internal/ctxkeys"
	"github.com/templui/postpage/internal/service"
	"github.com/templui/postpage/internal/storage"
	"github.com/templui/postpage/internal/ui"
	"github.com/templui/postpage/internal/ui/pages"
)

type PostHandler struct {
	postService *service.PostService
	images      storage.ImageResolver
	dates       *service.DateFormatter
}

func NewPostHandler(postService *service.PostService, images storage.ImageResolver, dates *service.DateFormatter) *PostHandler {
	return &PostHandler{
		postService: postService,
		images:      images,
		dates:       dates,
	}
}

// ShowPost renders /post/{id}. Invalid ids, missing posts and fetch failures
// all get the same 404 page.
func (h *PostHandler) ShowPost(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	result := h.postService.Lookup(ctx, r.PathValue("id"))
	if !result.Found() {
		ui.RenderStatus(w, r, http.StatusNotFound, pages.NotFound())
		return
	}

	post := result.Post
	ui.Render(w, r, pages.Post(pages.PostView{
		Title:       post.Title,
		Description: post.Description,
		ImageURL:    h.images.URL(ctx, post.Image),
		PublishedOn: h.dates.Format(post.Date, ctxkeys.Locale(ctx)),
	}))
}
