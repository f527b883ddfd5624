package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mgalihpp/inventory-dashboard/internal/events"
	"github.com/mgalihpp/inventory-dashboard/internal/logging"
	"github.com/mgalihpp/inventory-dashboard/internal/models"
	"github.com/mgalihpp/inventory-dashboard/internal/repo"
	"github.com/mgalihpp/inventory-dashboard/internal/search"
	"github.com/mgalihpp/inventory-dashboard/internal/transport"
	"github.com/mgalihpp/inventory-dashboard/internal/util"
)

const msgProductNotFound = "Product not found"

type ProductService struct {
	Repo   *repo.GormRepo
	Events events.Publisher
	Index  search.Index
}

func (s *ProductService) List(ctx context.Context, q transport.ListQuery) (*ListResult[models.Product], error) {
	offset, limit := util.Calculate(q.Page, q.PageSize)
	total, items, err := s.Repo.ListProducts(ctx, q.Filter, offset, limit)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return newListResult(q, total, items), nil
}

// Search asks the product index first and falls back to a name filter when the index is off or failing.
func (s *ProductService) Search(ctx context.Context, q transport.ListQuery) (*ListResult[models.Product], error) {
	l := logging.FromContext(ctx).With("svc", "product.search")

	if strings.TrimSpace(q.Filter) == "" {
		return nil, validation("Missing search query")
	}
	offset, limit := util.Calculate(q.Page, q.PageSize)

	if s.Index != nil {
		total, ids, err := s.Index.Search(ctx, q.Filter, offset, limit)
		if err == nil {
			items, err := s.Repo.GetProductsByIDs(ctx, ids)
			if err != nil {
				return nil, fmt.Errorf("load search hits: %w", err)
			}
			if stale := s.dropStale(ctx, ids, items); stale > 0 {
				total = max(total-int64(stale), int64(offset+len(items)))
			}
			return newListResult(q, total, items), nil
		}
		if !errors.Is(err, search.ErrDisabled) {
			l.Warn("search_index_error", "reason", "falling back to db filter", "error", err)
		}
	}

	return s.List(ctx, q)
}

func (s *ProductService) Get(ctx context.Context, rawID string) (*models.Product, error) {
	id, err := parseLookupID(rawID, msgProductNotFound)
	if err != nil {
		return nil, err
	}
	prod, err := s.Repo.GetProduct(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound(msgProductNotFound)
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return prod, nil
}

func validateProduct(p *models.Product) error {
	if !p.Category.Valid() {
		return validation("Invalid category")
	}
	if !p.Status.Valid() {
		return validation("Invalid status")
	}
	return nil
}

func (s *ProductService) Create(ctx context.Context, req transport.CreateProductRequest) (*models.Product, error) {
	if err := missing(map[string]string{
		"name":     req.Name,
		"category": req.Category,
		"status":   req.Status,
	}, "name", "category", "status"); err != nil {
		return nil, err
	}

	prod := models.Product{
		Name:     req.Name,
		Category: models.Category(req.Category),
		Price:    req.Price,
		Quantity: req.Quantity,
		Status:   models.Status(req.Status),
	}
	if err := validateProduct(&prod); err != nil {
		return nil, err
	}

	if err := s.Repo.CreateProduct(ctx, &prod); err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}

	s.index(ctx, prod)
	publish(ctx, s.Events, events.ProductTopic, prod.ID.String(), map[string]any{
		"type":     "product_created",
		"id":       prod.ID,
		"name":     prod.Name,
		"quantity": prod.Quantity,
	})
	return &prod, nil
}

func (s *ProductService) Update(ctx context.Context, rawID string, req transport.PatchProductRequest) (*models.Product, error) {
	prod, err := s.Get(ctx, rawID)
	if err != nil {
		return nil, err
	}

	if blank(req.Name) {
		return nil, validation("Name cannot be empty")
	}
	if req.Name != nil {
		prod.Name = *req.Name
	}
	if req.Category != nil {
		prod.Category = models.Category(*req.Category)
	}
	if req.Status != nil {
		prod.Status = models.Status(*req.Status)
	}
	if req.Price != nil {
		prod.Price = *req.Price
	}
	if req.Quantity != nil {
		prod.Quantity = *req.Quantity
	}
	if err := validateProduct(prod); err != nil {
		return nil, err
	}

	if err := s.Repo.SaveProduct(ctx, prod); err != nil {
		return nil, fmt.Errorf("update product: %w", err)
	}

	s.index(ctx, *prod)
	publish(ctx, s.Events, events.ProductTopic, prod.ID.String(), map[string]any{
		"type":     "product_updated",
		"id":       prod.ID,
		"name":     prod.Name,
		"quantity": prod.Quantity,
	})
	return prod, nil
}

func (s *ProductService) Delete(ctx context.Context, rawID string) error {
	id, err := parseDeleteID(rawID)
	if err != nil {
		return err
	}
	if err := s.Repo.DeleteProduct(ctx, id); err != nil {
		return fmt.Errorf("delete product %s: %w", id, err)
	}

	s.unindex(ctx, id)
	publish(ctx, s.Events, events.ProductTopic, id.String(), map[string]any{
		"type": "product_deleted",
		"id":   id,
	})
	return nil
}

func (s *ProductService) index(ctx context.Context, p models.Product) {
	if s.Index == nil {
		return
	}
	if err := s.Index.Put(ctx, p); err != nil {
		logging.FromContext(ctx).Error("search_index_error", "op", "put", "product_id", p.ID, "error", err)
	}
}

func (s *ProductService) unindex(ctx context.Context, id uuid.UUID) {
	if s.Index == nil {
		return
	}
	if err := s.Index.Remove(ctx, id); err != nil {
		logging.FromContext(ctx).Error("search_index_error", "op", "remove", "product_id", id, "error", err)
	}
}

// dropStale removes index entries whose product row is gone and returns how many there were.
func (s *ProductService) dropStale(ctx context.Context, ids []uuid.UUID, items []models.Product) int {
	if len(items) == len(ids) {
		return 0
	}
	found := make(map[uuid.UUID]struct{}, len(items))
	for _, p := range items {
		found[p.ID] = struct{}{}
	}
	stale := 0
	for _, id := range ids {
		if _, ok := found[id]; !ok {
			stale++
			s.unindex(ctx, id)
		}
	}
	return stale
}
