// Package productrepo reads the lunch catalog.
package productrepo

import (
	"time"

	"schoollunch/internal/core/domain/model/product"
)

type ProductDTO struct {
	ID           string `gorm:"type:varchar(255);primaryKey"`
	Name         string `gorm:"type:varchar(255);not null"`
	Price        int    `gorm:"type:int;not null"`
	Available    bool   `gorm:"not null;default:true"`
	DisplayOrder int    `gorm:"type:int;not null;default:0;index"`
	Description  string `gorm:"type:text"`
	ImageURL     string `gorm:"type:text"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (ProductDTO) TableName() string {
	return "products"
}

func FromDomain(p *product.Product) ProductDTO {
	return ProductDTO{
		ID:           p.ID(),
		Name:         p.Name(),
		Price:        p.Price(),
		Available:    p.IsAvailable(),
		DisplayOrder: p.DisplayOrder(),
		Description:  p.Description(),
		ImageURL:     p.ImageURL(),
	}
}

func toDomain(dto ProductDTO) (*product.Product, error) {
	return product.NewProduct(dto.ID, dto.Name, dto.Price, dto.Available, dto.DisplayOrder, product.Details{
		Description: dto.Description,
		ImageURL:    dto.ImageURL,
	})
}
