package favoriterepo

import (
	"context"

	"schoollunch/internal/core/domain/model/favorite"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type GormFavoriteRepository struct {
	db *gorm.DB
}

func NewGormFavoriteRepository(db *gorm.DB) *GormFavoriteRepository {
	return &GormFavoriteRepository{db: db}
}

func (r *GormFavoriteRepository) Exists(ctx context.Context, f favorite.Favorite) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&FavoriteDTO{}).
		Where("student_id = ? AND product_id = ?", f.StudentID(), f.ProductID()).
		Count(&count).Error
	return count > 0, err
}

// Add is idempotent.
func (r *GormFavoriteRepository) Add(ctx context.Context, f favorite.Favorite) error {
	dto := fromDomain(f)
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&dto).Error
}

func (r *GormFavoriteRepository) Remove(ctx context.Context, f favorite.Favorite) error {
	return r.db.WithContext(ctx).
		Delete(&FavoriteDTO{}, "student_id = ? AND product_id = ?", f.StudentID(), f.ProductID()).Error
}
