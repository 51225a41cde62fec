// Package favoriterepo stores the products a student bookmarked.
package favoriterepo

import (
	"time"

	"schoollunch/internal/core/domain/model/favorite"
)

type FavoriteDTO struct {
	StudentID string `gorm:"type:varchar(255);primaryKey"`
	ProductID string `gorm:"type:varchar(255);primaryKey"`
	CreatedAt time.Time
}

func (FavoriteDTO) TableName() string {
	return "favorites"
}

func fromDomain(f favorite.Favorite) FavoriteDTO {
	return FavoriteDTO{StudentID: f.StudentID(), ProductID: f.ProductID()}
}
