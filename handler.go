package main

import (
	"embed"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/form"
	"github.com/go-playground/validator/v10"

	"github.com/ip812/helloadp/config"
	"github.com/ip812/helloadp/logger"
	"github.com/ip812/helloadp/middleware"
	"github.com/ip812/helloadp/utils"
)

//go:embed static
var staticFS embed.FS

type commentNotifier interface {
	NotifyComment(channelID, pageURL, username, text string) error
}

type Handler struct {
	config        *config.Config
	formDecoder   *form.Decoder
	formValidator *validator.Validate
	log           logger.Logger

	site          *site
	db            DBWrapper
	slacknotifier commentNotifier
	now           func() time.Time
}

func (hnd *Handler) StaticFiles() http.Handler {
	if hnd.config.App.Env == config.Local {
		hnd.log.Info("serving static files from local directory")
		return http.StripPrefix("/static", http.FileServer(http.Dir("static")))
	}

	hnd.log.Info("serving static files from embedded FS")
	return http.StripPrefix("/", http.FileServer(http.FS(staticFS)))
}

func (hnd *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte{})
}

func (hnd *Handler) HomeRedirect(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/"+hnd.config.Content.DefaultLanguage, http.StatusFound)
}

func newRouter(hnd *Handler) http.Handler {
	mux := chi.NewRouter()
	mux.Use(chimw.RequestID)
	mux.Use(middleware.RequestIDHeaderMiddleware)
	mux.Use(middleware.Logging(hnd.log))
	mux.Use(chimw.Recoverer)
	mux.Use(middleware.Metrics)
	mux.Use(middleware.ContentSecurityPolicy(hnd.config.App.FrameSources))

	mux.NotFound(hnd.HomeRedirect)

	mux.Handle("/static/*", hnd.StaticFiles())
	mux.Get("/healthz", hnd.Healthz)
	mux.Get("/", hnd.HomeRedirect)

	mux.Route("/api", func(mux chi.Router) {
		mux.Route("/public/v0", func(mux chi.Router) {
			mux.Route("/comments", func(mux chi.Router) {
				mux.Get("/", utils.MakeTemplHandler(hnd.GetCommentsByPage))
				mux.Post("/", utils.MakeTemplHandler(hnd.CreateComment))
			})
		})
	})

	mux.Route("/{lang}", func(mux chi.Router) {
		mux.Use(hnd.LanguageRedirect)
		mux.Get("/", hnd.LandingPageView)
		mux.Get("/docs", hnd.DocsView)
		mux.Get("/docs/*", hnd.DocPageView)
		mux.Get("/search", hnd.SearchView)
	})

	return mux
}
