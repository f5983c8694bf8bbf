package rest

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/heartmarshall/bookshelf-backend/internal/config"
	"github.com/heartmarshall/bookshelf-backend/internal/transport/dataloader"
	"github.com/heartmarshall/bookshelf-backend/internal/transport/middleware"
)

// Handlers groups the endpoint handlers mounted by NewRouter.
type Handlers struct {
	Books      *BookHandler
	Notes      *NoteHandler
	Statistics *StatisticsHandler
	Reference  *ReferenceHandler
	Scan       *ScanHandler
	Health     *HealthHandler
}

// RouterConfig carries the cross-cutting pieces of the HTTP stack.
type RouterConfig struct {
	Logger         *slog.Logger
	Auth           middleware.Middleware
	ScanLimit      middleware.Middleware
	Loaders        *dataloader.Repos
	CORS           config.CORSConfig
	RequestTimeout time.Duration
}

// NewRouter builds the chi router. Everything under /api except the device
// scan requires an authenticated caller.
func NewRouter(h Handlers, cfg RouterConfig) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recovery(cfg.Logger),
		middleware.RequestID(),
		middleware.CORS(cfg.CORS),
	)

	r.Get("/live", h.Health.Live)
	r.Get("/ready", h.Health.Ready)
	r.Get("/health", h.Health.Health)

	r.Route("/api", func(r chi.Router) {
		if cfg.RequestTimeout > 0 {
			r.Use(chimw.Timeout(cfg.RequestTimeout))
		}

		r.With(middleware.Logger(cfg.Logger), cfg.ScanLimit).Post("/iot/scan", h.Scan.Scan)

		r.Group(func(r chi.Router) {
			r.Use(
				cfg.Auth,
				middleware.Logger(cfg.Logger),
				middleware.RequireUser,
				dataloader.Middleware(cfg.Loaders),
			)

			r.Route("/books", func(r chi.Router) {
				r.Get("/", h.Books.ListMine)
				r.Post("/", h.Books.Create)
				r.Get("/search", h.Books.Search)
				r.Get("/lent", h.Books.ListLent)

				r.Put("/notes/{noteID}", h.Notes.Update)
				r.Delete("/notes/{noteID}", h.Notes.Delete)

				r.Route("/{bookID}", func(r chi.Router) {
					r.Get("/", h.Books.Get)
					r.Put("/", h.Books.Update)
					r.Delete("/", h.Books.Delete)
					r.Put("/reading-status", h.Books.SetReadingStatus)
					r.Post("/lend", h.Books.Lend)
					r.Put("/return", h.Books.Return)
					r.Get("/lendings", h.Books.History)
					r.Post("/notes", h.Notes.Add)
				})
			})

			r.Get("/statistics", h.Statistics.Get)
			r.Get("/genres", h.Reference.ListGenres)
			r.Get("/formats", h.Reference.ListFormats)
		})
	})

	return r
}
