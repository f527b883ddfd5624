package seed

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mgalihpp/inventory-dashboard/internal/config"
	pkgdb "github.com/mgalihpp/inventory-dashboard/internal/db"
	"github.com/mgalihpp/inventory-dashboard/internal/events"
	"github.com/mgalihpp/inventory-dashboard/internal/models"
	"github.com/mgalihpp/inventory-dashboard/internal/repo"
	"github.com/mgalihpp/inventory-dashboard/internal/search"
	"github.com/mgalihpp/inventory-dashboard/internal/service"
)

func TestGenerator_ProducesValidEntities(t *testing.T) {
	t.Parallel()

	g := New(42)
	for i := 0; i < 50; i++ {
		u := g.User()
		assert.NotEmpty(t, u.Email)
		assert.NotEmpty(t, u.Username)
		assert.Len(t, u.Password, 12)
		assert.True(t, models.Role(u.Role).Valid(), u.Role)

		p := g.Product()
		assert.NotEmpty(t, p.Name)
		assert.True(t, models.Category(p.Category).Valid(), p.Category)
		assert.True(t, models.Status(p.Status).Valid(), p.Status)
		assert.GreaterOrEqual(t, p.Quantity, 0)
		assert.LessOrEqual(t, p.Quantity, 100)
		assert.GreaterOrEqual(t, p.Price, 0.0)
		assert.LessOrEqual(t, p.Price, 100.0)

		s := g.Supplier()
		assert.NotEmpty(t, s.Name)
		assert.NotEmpty(t, s.Address)
		assert.NotEmpty(t, s.Phone)
	}
}

func TestGenerator_SameSeedSameOutput(t *testing.T) {
	t.Parallel()

	assert.Equal(t, New(7).Supplier(), New(7).Supplier())
}

func TestSeeder_Run(t *testing.T) {
	ctx := context.Background()
	gdb, err := pkgdb.Open(ctx, config.Config{DBDriver: "sqlite", DatabaseURL: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, pkgdb.Migrate(ctx, gdb))
	t.Cleanup(func() {
		if sqlDB, err := gdb.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	rp := &repo.GormRepo{DB: gdb}
	rec := &events.Recorder{}
	s := &Seeder{
		Gen:       New(1),
		Users:     &service.UserService{Repo: rp, Events: rec},
		Products:  &service.ProductService{Repo: rp, Events: rec, Index: search.Nop{}},
		Suppliers: &service.SupplierService{Repo: rp, Events: rec},
	}

	done, err := s.Run(ctx, Counts{Users: 3, Products: 4, Suppliers: 2})
	require.NoError(t, err)
	assert.Equal(t, 4, done.Products)
	assert.Equal(t, 2, done.Suppliers)

	counts, err := rp.Counts(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(done.Users), counts.Users)
	assert.Equal(t, int64(4), counts.Products)
	assert.Equal(t, int64(2), counts.Suppliers)

	_, users, err := rp.ListUsers(ctx, "", 0, 10)
	require.NoError(t, err)
	for _, u := range users {
		assert.True(t, strings.HasPrefix(u.Password, "$2a$"), "stored password is not a bcrypt hash")
	}
}
