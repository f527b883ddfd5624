package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"github.com/mgalihpp/inventory-dashboard/internal/config"
	pkgdb "github.com/mgalihpp/inventory-dashboard/internal/db"
	"github.com/mgalihpp/inventory-dashboard/internal/events"
	"github.com/mgalihpp/inventory-dashboard/internal/logging"
	"github.com/mgalihpp/inventory-dashboard/internal/repo"
	"github.com/mgalihpp/inventory-dashboard/internal/search"
	"github.com/mgalihpp/inventory-dashboard/internal/seed"
	"github.com/mgalihpp/inventory-dashboard/internal/service"
)

func main() {
	users := flag.Int("users", 20, "number of users to create")
	products := flag.Int("products", 50, "number of products to create")
	suppliers := flag.Int("suppliers", 10, "number of suppliers to create")
	seedValue := flag.Int64("seed", 0, "random seed, 0 for a random one")
	flag.Parse()

	config.LoadEnv(".env")
	cfg := config.Load()
	config.MustNonEmpty(cfg.DatabaseURL, "DATABASE_URL")

	log := logging.New(cfg.LogLevel).With("service", cfg.ServiceName+"-seed")
	slog.SetDefault(log)
	ctx := logging.IntoContext(context.Background(), log)

	db, err := pkgdb.Open(ctx, cfg)
	if err != nil {
		log.Error("db_init_failed", "error", err)
		os.Exit(1)
	}
	defer func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}()
	if err := pkgdb.Migrate(ctx, db); err != nil {
		log.Error("db_migrate_failed", "error", err)
		os.Exit(1)
	}

	var index search.Index = search.Nop{}
	if cfg.ESURL != "" {
		client, err := search.NewClient(search.Config{URL: cfg.ESURL, User: cfg.ESUser, Password: cfg.ESPassword, Index: cfg.ESIndex})
		if err != nil {
			log.Warn("elasticsearch_unavailable", "reason", "products will not be indexed", "error", err)
		} else {
			index = search.NewProductIndex(client, cfg.ESIndex)
		}
	}

	rp := &repo.GormRepo{DB: db}
	s := &seed.Seeder{
		Gen:       seed.New(*seedValue),
		Users:     &service.UserService{Repo: rp, Events: events.Nop{}},
		Products:  &service.ProductService{Repo: rp, Events: events.Nop{}, Index: index},
		Suppliers: &service.SupplierService{Repo: rp, Events: events.Nop{}},
	}

	if _, err := s.Run(ctx, seed.Counts{Users: *users, Products: *products, Suppliers: *suppliers}); err != nil {
		log.Error("seed_failed", "error", err)
		os.Exit(1)
	}
}
