package routes

import (
	"context"
	"io/fs"
	"net/http"

	"github.com/templui/postpage/assets"
	"github.com/templui/postpage/internal/app"
	"github.com/templui/postpage/internal/handler"
	"github.com/templui/postpage/internal/middleware"
)

// SetupRoutes builds the server handler. Background work started here ends with ctx.
func SetupRoutes(ctx context.Context, app *app.App) http.Handler {
	// Handlers
	home := handler.NewHomeHandler()
	post := handler.NewPostHandler(app.PostService, app.Images, app.Dates)

	mux := http.NewServeMux()

	// Static files
	sub, _ := fs.Sub(assets.AssetsFS, ".")
	mux.Handle("GET /assets/", http.StripPrefix("/assets/", http.FileServer(http.FS(sub))))

	// Health
	mux.HandleFunc("GET /healthz", home.Health)

	// Home
	mux.HandleFunc("GET /{$}", home.HomePage)

	// Posts (each request costs one upstream fetch)
	rateLimiter := middleware.RateLimit(ctx, app.Cfg.RateLimitRPS, app.Cfg.RateLimitBurst)
	mux.HandleFunc("GET /post/{id}", rateLimiter(post.ShowPost))
	mux.HandleFunc("GET /post/{$}", post.ShowPost) // missing id, rejected by the validator

	// 404
	mux.HandleFunc("/{path...}", home.NotFoundPage)

	// Global middleware - executed in order (top to bottom)
	handler := middleware.Chain(
		mux,
		middleware.RequestID,       // First so every log line carries it
		middleware.Config(app.Cfg), // Needed by SecurityHeaders for S3 endpoint
		middleware.NonceMiddleware, // Must be before SecurityHeaders
		middleware.SecurityHeaders,
		middleware.RequestLogging,
		middleware.Locale(app.Locales),
		middleware.WithURLPath,
	)

	return handler
}
