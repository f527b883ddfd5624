package repo

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

type GormRepo struct {
	DB *gorm.DB
}

type Counts struct {
	Users     int64 `json:"users"`
	Products  int64 `json:"products"`
	Suppliers int64 `json:"suppliers"`
}

// IsUniqueViolation reports whether err came from a unique index, whatever driver raised it.
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}

func likePattern(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + r.Replace(s) + "%"
}

// list pages through T in creation order, optionally filtered by a substring of column.
func list[T any](ctx context.Context, db *gorm.DB, column, filter string, offset, limit int) (int64, []T, error) {
	q := db.WithContext(ctx).Model(new(T))
	if filter != "" {
		q = q.Where(column+` LIKE ? ESCAPE '\'`, likePattern(filter))
	}

	var total int64
	if err := q.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return 0, nil, err
	}

	items := make([]T, 0, limit)
	if err := q.Session(&gorm.Session{}).Order("created_at ASC").Order("id ASC").Offset(offset).Limit(limit).Find(&items).Error; err != nil {
		return 0, nil, err
	}

	return total, items, nil
}

func get[T any](ctx context.Context, db *gorm.DB, id uuid.UUID) (*T, error) {
	item := new(T)
	if err := db.WithContext(ctx).Where("id = ?", id).First(item).Error; err != nil {
		return nil, err
	}
	return item, nil
}

func remove[T any](ctx context.Context, db *gorm.DB, id uuid.UUID) error {
	res := db.WithContext(ctx).Where("id = ?", id).Delete(new(T))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *GormRepo) Counts(ctx context.Context) (Counts, error) {
	var c Counts
	tx := r.DB.WithContext(ctx)
	if err := tx.Table("users").Count(&c.Users).Error; err != nil {
		return Counts{}, err
	}
	if err := tx.Table("products").Count(&c.Products).Error; err != nil {
		return Counts{}, err
	}
	if err := tx.Table("suppliers").Count(&c.Suppliers).Error; err != nil {
		return Counts{}, err
	}
	return c, nil
}
