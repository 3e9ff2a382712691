package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alecthomas/kong"
	"github.com/cenkalti/backoff/v5"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/form"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"

	"github.com/ip812/helloadp/config"
	"github.com/ip812/helloadp/content"
	"github.com/ip812/helloadp/database"
	"github.com/ip812/helloadp/locales"
	"github.com/ip812/helloadp/logger"
	"github.com/ip812/helloadp/notifier"
)

const (
	dbConnectTimeout      = 10 * time.Second
	dbMaxOpenConnections  = 10
	retryMaxElapsedTime   = 15 * time.Minute
	serverIdleTimeout     = 1 * time.Minute
	serverReadTimeout     = 10 * time.Second
	serverWriteTimeout    = 30 * time.Second
	serverShutdownTimeout = 10 * time.Second
)

type App struct {
	cfg *config.Config
	log logger.Logger
}

type CLI struct {
	Serve   ServeCmd   `cmd:"" default:"1" help:"Run the website (default)"`
	Index   IndexCmd   `cmd:"" help:"Print the docs showcase view model as JSON"`
	Migrate MigrateCmd `cmd:"" help:"Apply database migrations and exit"`
}

type ServeCmd struct{}

type IndexCmd struct {
	Lang string `short:"l" help:"Language of the showcase; the configured default when empty"`
}

type MigrateCmd struct{}

func main() {
	var cli CLI
	kctx := kong.Parse(&cli,
		kong.Name("helloadp"),
		kong.Description("Hello ADP documentation site"),
		kong.UsageOnError(),
	)

	cfg := config.New()
	app := &App{cfg: cfg, log: logger.New(cfg)}

	if err := kctx.Run(app); err != nil {
		app.log.Error("exiting: %v", err)
		os.Exit(1)
	}
}

func (cmd *ServeCmd) Run(app *App) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, log := app.cfg, app.log

	setupSnowflake()
	slacknotifier := notifier.NewSlack(cfg.Slack.BotToken, log)

	s := newSite(cfg, os.DirFS(cfg.Content.Dir), log)
	if cfg.Content.Watch {
		err := content.Watch(ctx, cfg.Content.Dir, s.library, log, func(pages []content.Page) {
			if err := slacknotifier.NotifyPublished(cfg.Slack.AnnounceChannelID, cfg.App.BaseURL, pages); err != nil {
				log.Warn("failed to announce %d published pages: %v", len(pages), err)
			}
		})
		if err != nil {
			log.Warn("documentation watcher disabled: %v", err)
		}
	}

	swappableDB := NewSwappableDB()

	apiServer := startHTTPServer(cfg, log, s, swappableDB, slacknotifier)
	metricsServer := startMetricsServer(cfg, log)

	if cfg.Database.Enabled() {
		go func() {
			db, err := connectToDatabaseWithRetry(ctx, cfg, log)
			if err != nil {
				log.Error("comments disabled: could not connect to DB after retries: %s", err.Error())
				return
			}
			if err := migrate(db); err != nil {
				log.Error("failed to run migrations: %s", err.Error())
			}
			swappableDB.Swap(db)
		}()
	} else {
		log.Info("no database configured, comments are disabled")
	}

	<-ctx.Done()
	log.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), serverShutdownTimeout)
	defer cancel()
	if err := apiServer.Shutdown(shutdownCtx); err != nil {
		log.Error("error shutting down server: %s", err.Error())
	} else {
		log.Info("server shutdown cleanly")
	}

	if err := metricsServer.Shutdown(shutdownCtx); err != nil {
		log.Error("error shutting down server: %s", err.Error())
	} else {
		log.Info("metrics server shutdown cleanly")
	}

	if db, err := swappableDB.DB(); err == nil {
		db.Close()
	}

	return nil
}

func (cmd *IndexCmd) Run(app *App) error {
	lang := cmd.Lang
	if lang == "" {
		lang = app.cfg.Content.DefaultLanguage
	}
	if !app.cfg.Content.IsSupported(lang) {
		return fmt.Errorf("unsupported language %q", lang)
	}

	s := newSite(app.cfg, os.DirFS(app.cfg.Content.Dir), app.log)
	vm := s.builder.Build(lang, locales.Showcase(lang).DefaultCategory)

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(vm)
}

func (cmd *MigrateCmd) Run(app *App) error {
	if !app.cfg.Database.Enabled() {
		return errors.New("no database configured")
	}

	db, err := connectToDatabaseWithRetry(context.Background(), app.cfg, app.log)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := migrate(db); err != nil {
		return err
	}
	app.log.Info("migrations applied")
	return nil
}

func migrate(db *sql.DB) error {
	goose.SetBaseFS(database.Migrations)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set dialect: %w", err)
	}
	return goose.Up(db, database.MigrationsDir)
}

type dbConnection struct {
	db *sql.DB
}

func connectToDatabaseWithRetry(ctx context.Context, cfg *config.Config, log logger.Logger) (*sql.DB, error) {
	var conn dbConnection

	connectionString := fmt.Sprintf(
		"postgres://%s:%s@%s/%s?sslmode=%s",
		cfg.Database.Username,
		cfg.Database.Password,
		cfg.Database.Endpoint,
		cfg.Database.Name,
		cfg.Database.SSLMode,
	)

	operation := func() (dbConnection, error) {
		connCtx, cancel := context.WithTimeout(ctx, dbConnectTimeout)
		defer cancel()

		db, err := sql.Open("postgres", connectionString)
		if err != nil {
			log.Warn("failed to open the database connection: %v", err.Error())
			return conn, err
		}

		if err := db.PingContext(connCtx); err != nil {
			log.Warn("failed to ping the database: %v", err.Error())
			db.Close()
			return conn, err
		}

		db.SetMaxOpenConns(dbMaxOpenConnections)
		log.Info("connected to database")

		conn.db = db
		return conn, nil
	}

	_, err := backoff.Retry[dbConnection](
		ctx,
		operation,
		backoff.WithMaxElapsedTime(retryMaxElapsedTime),
	)

	return conn.db, err
}

func newHandler(cfg *config.Config, log logger.Logger, s *site, db DBWrapper, slacknotifier commentNotifier) *Handler {
	return &Handler{
		config:        cfg,
		formDecoder:   form.NewDecoder(),
		formValidator: validator.New(validator.WithRequiredStructEnabled()),
		log:           log,
		site:          s,
		db:            db,
		slacknotifier: slacknotifier,
		now:           time.Now,
	}
}

func startHTTPServer(
	cfg *config.Config,
	log logger.Logger,
	s *site,
	db DBWrapper,
	slacknotifier *notifier.Slack,
) *http.Server {
	handler := newHandler(cfg, log, s, db, slacknotifier)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.App.Port),
		IdleTimeout:  serverIdleTimeout,
		ReadTimeout:  serverReadTimeout,
		WriteTimeout: serverWriteTimeout,
		Handler:      newRouter(handler),
	}

	go func() {
		log.Info("server started on %s", cfg.App.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("cannot start server: %s", err.Error())
		}
	}()

	return server
}

func startMetricsServer(
	cfg *config.Config,
	log logger.Logger,
) *http.Server {
	mux := chi.NewRouter()

	mux.Handle("/metrics", promhttp.Handler())

	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.App.MetricsPort),
		IdleTimeout:  serverIdleTimeout,
		ReadTimeout:  serverReadTimeout,
		WriteTimeout: serverWriteTimeout,
		Handler:      mux,
	}

	go func() {
		log.Info("metrics server started on %s", cfg.App.MetricsPort)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("cannot start metrics server: %s", err.Error())
		}
	}()

	return server
}
