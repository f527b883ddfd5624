package service

import (
	"context"
	"testing"

	"gorm.io/gorm"

	"github.com/mgalihpp/inventory-dashboard/internal/config"
	pkgdb "github.com/mgalihpp/inventory-dashboard/internal/db"
	"github.com/mgalihpp/inventory-dashboard/internal/events"
	"github.com/mgalihpp/inventory-dashboard/internal/repo"
	"github.com/mgalihpp/inventory-dashboard/internal/search"
)

type testEnv struct {
	DB       *gorm.DB
	Repo     *repo.GormRepo
	Events   *events.Recorder
	Users    *UserService
	Products *ProductService
	Supps    *SupplierService
	Auth     *AuthService
	Dash     *DashboardService
}

func InitTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	ctx := context.Background()
	gdb, err := pkgdb.Open(ctx, config.Config{DBDriver: "sqlite", DatabaseURL: ":memory:"})
	if err != nil {
		t.Fatalf("failed to connect to in-memory db: %v", err)
	}
	if err := pkgdb.Migrate(ctx, gdb); err != nil {
		t.Fatalf("failed to migrate tables: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := gdb.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return gdb
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db := InitTestDB(t)
	rp := &repo.GormRepo{DB: db}
	rec := &events.Recorder{}

	return &testEnv{
		DB:       db,
		Repo:     rp,
		Events:   rec,
		Users:    &UserService{Repo: rp, Events: rec},
		Products: &ProductService{Repo: rp, Events: rec, Index: search.Nop{}},
		Supps:    &SupplierService{Repo: rp, Events: rec},
		Auth:     &AuthService{Repo: rp, JWTSecret: []byte("test-jwt-secret"), Events: rec},
		Dash:     &DashboardService{Repo: rp},
	}
}

func ptr[T any](v T) *T { return &v }

func (env *testEnv) lastEventType() string {
	if len(env.Events.Events) == 0 {
		return ""
	}
	ev, _ := env.Events.Events[len(env.Events.Events)-1].Event.(map[string]any)
	s, _ := ev["type"].(string)
	return s
}
