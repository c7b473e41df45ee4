package app

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/templui/postpage/internal/config"
	"github.com/templui/postpage/internal/content"
	"github.com/templui/postpage/internal/db"
	"github.com/templui/postpage/internal/locale"
	"github.com/templui/postpage/internal/repository"
	"github.com/templui/postpage/internal/service"
	"github.com/templui/postpage/internal/storage"
	"golang.org/x/text/language"
)

type App struct {
	Cfg         *config.Config
	DB          *sqlx.DB // nil unless POST_SOURCE=db
	PostService *service.PostService
	Images      storage.ImageResolver
	Dates       *service.DateFormatter
	Locales     *locale.Negotiator
}

func New(cfg *config.Config) (*App, error) {
	a := &App{Cfg: cfg}

	fetcher, err := a.postSource()
	if err != nil {
		_ = a.Close()
		return nil, err
	}

	// Storage
	images, err := storage.New(cfg)
	if err != nil {
		_ = a.Close()
		return nil, fmt.Errorf("failed to initialize storage: %v", err)
	}

	location, err := time.LoadLocation(cfg.DateTimezone)
	if err != nil {
		slog.Warn("unknown DATE_TIMEZONE, using UTC", "timezone", cfg.DateTimezone, "error", err)
		location = time.UTC
	}

	fallback := locale.Parse(cfg.DefaultLocale, language.AmericanEnglish)

	a.PostService = service.NewPostService(fetcher, nil)
	a.Images = images
	a.Dates = service.NewDateFormatter(location, fallback)
	a.Locales = locale.NewNegotiator(fallback)

	return a, nil
}

// postSource builds the fetcher selected by POST_SOURCE.
func (a *App) postSource() (service.PostFetcher, error) {
	cfg := a.Cfg

	switch cfg.PostSource {
	case config.SourceAPI:
		slog.Info("serving posts from content api", "url", cfg.ContentAPIURL)
		return content.NewClient(cfg.ContentAPIURL, cfg.ContentAPITimeout), nil

	case config.SourceDB:
		database, err := db.Init(cfg.DBDriver, cfg.DBConnection)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize database: %v", err)
		}
		a.DB = database

		err = db.RunMigrations(database.DB, cfg.DBDriver)
		if err != nil {
			return nil, fmt.Errorf("failed to run migrations: %v", err)
		}

		return service.NewRepositorySource(repository.NewPostRepository(database)), nil

	case config.SourceMarkdown:
		slog.Info("serving posts from markdown", "content_path", cfg.ContentPath)
		return service.NewMarkdownSource(cfg.ContentPath), nil

	default:
		return nil, fmt.Errorf("unknown POST_SOURCE %q (want api, db or markdown)", cfg.PostSource)
	}
}

func (a *App) Close() error {
	if a.DB != nil {
		return a.DB.Close()
	}
	return nil
}
