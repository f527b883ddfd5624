package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/mgalihpp/inventory-dashboard/internal/events"
	"github.com/mgalihpp/inventory-dashboard/internal/models"
	"github.com/mgalihpp/inventory-dashboard/internal/repo"
	"github.com/mgalihpp/inventory-dashboard/internal/transport"
	"github.com/mgalihpp/inventory-dashboard/internal/util"
)

const msgSupplierNotFound = "Supplier not found"

type SupplierService struct {
	Repo   *repo.GormRepo
	Events events.Publisher
}

func (s *SupplierService) List(ctx context.Context, q transport.ListQuery) (*ListResult[models.Supplier], error) {
	offset, limit := util.Calculate(q.Page, q.PageSize)
	total, items, err := s.Repo.ListSuppliers(ctx, q.Filter, offset, limit)
	if err != nil {
		return nil, fmt.Errorf("list suppliers: %w", err)
	}
	return newListResult(q, total, items), nil
}

func (s *SupplierService) Get(ctx context.Context, rawID string) (*models.Supplier, error) {
	id, err := parseLookupID(rawID, msgSupplierNotFound)
	if err != nil {
		return nil, err
	}
	sup, err := s.Repo.GetSupplier(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound(msgSupplierNotFound)
		}
		return nil, fmt.Errorf("get supplier: %w", err)
	}
	return sup, nil
}

func (s *SupplierService) Create(ctx context.Context, req transport.CreateSupplierRequest) (*models.Supplier, error) {
	if err := missing(map[string]string{
		"name":    req.Name,
		"address": req.Address,
		"phone":   req.Phone,
	}, "name", "address", "phone"); err != nil {
		return nil, err
	}

	sup := models.Supplier{Name: req.Name, Address: req.Address, Phone: req.Phone}
	if err := s.Repo.CreateSupplier(ctx, &sup); err != nil {
		return nil, fmt.Errorf("create supplier: %w", err)
	}

	publish(ctx, s.Events, events.SupplierTopic, sup.ID.String(), map[string]any{
		"type": "supplier_created",
		"id":   sup.ID,
		"name": sup.Name,
	})
	return &sup, nil
}

func (s *SupplierService) Update(ctx context.Context, rawID string, req transport.PatchSupplierRequest) (*models.Supplier, error) {
	sup, err := s.Get(ctx, rawID)
	if err != nil {
		return nil, err
	}

	if blank(req.Name) || blank(req.Address) || blank(req.Phone) {
		return nil, validation("Name, address and phone cannot be empty")
	}
	if req.Name != nil {
		sup.Name = *req.Name
	}
	if req.Address != nil {
		sup.Address = *req.Address
	}
	if req.Phone != nil {
		sup.Phone = *req.Phone
	}

	if err := s.Repo.SaveSupplier(ctx, sup); err != nil {
		return nil, fmt.Errorf("update supplier: %w", err)
	}

	publish(ctx, s.Events, events.SupplierTopic, sup.ID.String(), map[string]any{
		"type": "supplier_updated",
		"id":   sup.ID,
		"name": sup.Name,
	})
	return sup, nil
}

func (s *SupplierService) Delete(ctx context.Context, rawID string) error {
	id, err := parseDeleteID(rawID)
	if err != nil {
		return err
	}
	if err := s.Repo.DeleteSupplier(ctx, id); err != nil {
		return fmt.Errorf("delete supplier %s: %w", id, err)
	}

	publish(ctx, s.Events, events.SupplierTopic, id.String(), map[string]any{
		"type": "supplier_deleted",
		"id":   id,
	})
	return nil
}
