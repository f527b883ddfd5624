package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/mgalihpp/inventory-dashboard/internal/config"
	pkgdb "github.com/mgalihpp/inventory-dashboard/internal/db"
	"github.com/mgalihpp/inventory-dashboard/internal/events"
	"github.com/mgalihpp/inventory-dashboard/internal/httpserver"
	"github.com/mgalihpp/inventory-dashboard/internal/logging"
	loggingmw "github.com/mgalihpp/inventory-dashboard/internal/middleware/logging"
	"github.com/mgalihpp/inventory-dashboard/internal/repo"
	"github.com/mgalihpp/inventory-dashboard/internal/search"
	"github.com/mgalihpp/inventory-dashboard/internal/service"
)

func main() {
	config.LoadEnv(".env")
	cfg := config.Load()
	config.MustNonEmpty(cfg.DatabaseURL, "DATABASE_URL")
	config.MustNonEmptyBytes(cfg.JWTSecret, "JWT_SECRET")

	log := logging.New(cfg.LogLevel).With("service", cfg.ServiceName)
	slog.SetDefault(log)

	ctx := logging.IntoContext(context.Background(), log)

	db, err := pkgdb.Open(ctx, cfg)
	if err != nil {
		log.Error("db_init_failed", "error", err)
		os.Exit(1)
	}
	if err := pkgdb.Migrate(ctx, db); err != nil {
		log.Error("db_migrate_failed", "error", err)
		os.Exit(1)
	}

	var pub events.Publisher = events.Nop{}
	if len(cfg.KafkaBrokers) > 0 {
		pub = events.NewProducer(cfg.KafkaBrokers)
		log.Info("kafka_enabled", "brokers", cfg.KafkaBrokers)
	}

	var index search.Index = search.Nop{}
	if cfg.ESURL != "" {
		client, err := search.NewClient(search.Config{URL: cfg.ESURL, User: cfg.ESUser, Password: cfg.ESPassword, Index: cfg.ESIndex})
		if err != nil {
			log.Warn("elasticsearch_unavailable", "reason", "search falls back to db filter", "error", err)
		} else {
			index = search.NewProductIndex(client, cfg.ESIndex)
			log.Info("elasticsearch_enabled", "index", cfg.ESIndex)
		}
	}

	rp := &repo.GormRepo{DB: db}

	e := echo.New()
	e.HideBanner = true
	e.Pre(middleware.RemoveTrailingSlash())
	e.Use(middleware.Recover(), middleware.RequestID(), loggingmw.RequestLogger(log))

	httpserver.Register(e, &httpserver.Deps{
		DB: db,
		AuthHandler: &httpserver.AuthHTTP{
			Svc:          &service.AuthService{Repo: rp, JWTSecret: cfg.JWTSecret, Events: pub},
			CookieSecure: cfg.CookieSecure,
		},
		UserHandler:      &httpserver.UserHTTP{Svc: &service.UserService{Repo: rp, Events: pub}},
		ProductHandler:   &httpserver.ProductHTTP{Svc: &service.ProductService{Repo: rp, Events: pub, Index: index}},
		SupplierHandler:  &httpserver.SupplierHTTP{Svc: &service.SupplierService{Repo: rp, Events: pub}},
		DashboardHandler: &httpserver.DashboardHTTP{Svc: &service.DashboardService{Repo: rp}},
		JWTSecret:        cfg.JWTSecret,
		CookieSecure:     cfg.CookieSecure,
		CSRFEnabled:      cfg.CSRFEnabled,
	})

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:      e,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	go func() {
		log.Info("http_listen", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("http_server_error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting_down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("server_shutdown_error", "error", err)
	}

	if err := pub.Close(); err != nil {
		log.Error("kafka_close_error", "error", err)
	}

	if sqlDB, err := db.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			log.Error("db_close_error", "error", err)
		}
	}

	log.Info("shutdown_complete")
}
