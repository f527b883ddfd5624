// Package seed generates random users, products and suppliers for local databases.
package seed

import (
	"context"
	"fmt"

	"github.com/brianvoe/gofakeit/v6"

	"github.com/mgalihpp/inventory-dashboard/internal/logging"
	"github.com/mgalihpp/inventory-dashboard/internal/models"
	"github.com/mgalihpp/inventory-dashboard/internal/service"
	"github.com/mgalihpp/inventory-dashboard/internal/transport"
)

var (
	roles    = []string{string(models.RoleAdmin), string(models.RoleCustomer)}
	statuses = []string{string(models.StatusAvailable), string(models.StatusNotAvailable)}
)

type Generator struct {
	f *gofakeit.Faker
}

// New returns a generator; seed 0 picks a random seed.
func New(seed int64) *Generator {
	return &Generator{f: gofakeit.New(seed)}
}

func (g *Generator) User() transport.CreateUserRequest {
	return transport.CreateUserRequest{
		Avatar:   g.f.ImageURL(128, 128),
		Email:    g.f.Email(),
		Password: g.f.Password(true, true, true, false, false, 12),
		Fullname: g.f.Name(),
		Username: g.f.FirstName(),
		Address:  g.f.Street(),
		Role:     g.f.RandomString(roles),
	}
}

func (g *Generator) Product() transport.CreateProductRequest {
	categories := make([]string, len(models.Categories))
	for i, c := range models.Categories {
		categories[i] = string(c)
	}
	return transport.CreateProductRequest{
		Name:     g.f.ProductName(),
		Category: g.f.RandomString(categories),
		Quantity: g.f.Number(0, 100),
		Price:    g.f.Float64Range(0, 100),
		Status:   g.f.RandomString(statuses),
	}
}

func (g *Generator) Supplier() transport.CreateSupplierRequest {
	return transport.CreateSupplierRequest{
		Name:    g.f.FirstName(),
		Address: g.f.Street(),
		Phone:   g.f.Phone(),
	}
}

type Counts struct {
	Users     int
	Products  int
	Suppliers int
}

type Seeder struct {
	Gen       *Generator
	Users     *service.UserService
	Products  *service.ProductService
	Suppliers *service.SupplierService
}

// Run inserts n of each entity through the services, so passwords are hashed and events are published.
// Random emails can collide; those users are skipped and not counted.
func (s *Seeder) Run(ctx context.Context, n Counts) (Counts, error) {
	l := logging.FromContext(ctx).With("component", "seed")

	var done Counts
	for i := 0; i < n.Users; i++ {
		if _, err := s.Users.Create(ctx, s.Gen.User()); err != nil {
			if service.Message(err) != service.MsgInternal {
				l.Warn("seed_user_skipped", "reason", service.Message(err))
				continue
			}
			return done, fmt.Errorf("seed user: %w", err)
		}
		done.Users++
	}
	for i := 0; i < n.Products; i++ {
		if _, err := s.Products.Create(ctx, s.Gen.Product()); err != nil {
			return done, fmt.Errorf("seed product: %w", err)
		}
		done.Products++
	}
	for i := 0; i < n.Suppliers; i++ {
		if _, err := s.Suppliers.Create(ctx, s.Gen.Supplier()); err != nil {
			return done, fmt.Errorf("seed supplier: %w", err)
		}
		done.Suppliers++
	}

	l.Info("seed_done", "users", done.Users, "products", done.Products, "suppliers", done.Suppliers)
	return done, nil
}
