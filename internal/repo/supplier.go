package repo

import (
	"context"

	"github.com/google/uuid"

	"github.com/mgalihpp/inventory-dashboard/internal/models"
)

func (r *GormRepo) ListSuppliers(ctx context.Context, filter string, offset, limit int) (int64, []models.Supplier, error) {
	return list[models.Supplier](ctx, r.DB, "name", filter, offset, limit)
}

func (r *GormRepo) GetSupplier(ctx context.Context, id uuid.UUID) (*models.Supplier, error) {
	return get[models.Supplier](ctx, r.DB, id)
}

func (r *GormRepo) CreateSupplier(ctx context.Context, s *models.Supplier) error {
	return r.DB.WithContext(ctx).Create(s).Error
}

func (r *GormRepo) SaveSupplier(ctx context.Context, s *models.Supplier) error {
	return r.DB.WithContext(ctx).Save(s).Error
}

func (r *GormRepo) DeleteSupplier(ctx context.Context, id uuid.UUID) error {
	return remove[models.Supplier](ctx, r.DB, id)
}
