package repo

import (
	"context"

	"github.com/google/uuid"

	"github.com/mgalihpp/inventory-dashboard/internal/models"
)

func (r *GormRepo) ListUsers(ctx context.Context, filter string, offset, limit int) (int64, []models.User, error) {
	return list[models.User](ctx, r.DB, "username", filter, offset, limit)
}

func (r *GormRepo) GetUser(ctx context.Context, id uuid.UUID) (*models.User, error) {
	return get[models.User](ctx, r.DB, id)
}

func (r *GormRepo) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := r.DB.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *GormRepo) CreateUser(ctx context.Context, u *models.User) error {
	return r.DB.WithContext(ctx).Create(u).Error
}

func (r *GormRepo) SaveUser(ctx context.Context, u *models.User) error {
	return r.DB.WithContext(ctx).Save(u).Error
}

func (r *GormRepo) DeleteUser(ctx context.Context, id uuid.UUID) error {
	return remove[models.User](ctx, r.DB, id)
}
