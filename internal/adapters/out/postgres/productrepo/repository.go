package productrepo

import (
	"context"

	"schoollunch/internal/core/domain/model/product"

	"gorm.io/gorm"
)

type GormProductRepository struct {
	db *gorm.DB
}

func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

// GetMany returns unavailable products too; the caller decides whether they
// may be ordered.
func (r *GormProductRepository) GetMany(ctx context.Context, ids []string) (map[string]*product.Product, error) {
	products := make(map[string]*product.Product, len(ids))
	if len(ids) == 0 {
		return products, nil
	}

	var dtos []ProductDTO
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&dtos).Error; err != nil {
		return nil, err
	}

	for _, dto := range dtos {
		p, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		products[p.ID()] = p
	}

	return products, nil
}

// Save upserts catalog entries. Used to seed the catalog.
func (r *GormProductRepository) Save(ctx context.Context, products ...*product.Product) error {
	for _, p := range products {
		if err := p.Validate(); err != nil {
			return err
		}
		dto := FromDomain(p)
		if err := r.db.WithContext(ctx).Save(&dto).Error; err != nil {
			return err
		}
	}
	return nil
}
