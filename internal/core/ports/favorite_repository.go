package ports

import (
	"context"

	"schoollunch/internal/core/domain/model/favorite"
)

type FavoriteRepository interface {
	Exists(ctx context.Context, f favorite.Favorite) (bool, error)
	Add(ctx context.Context, f favorite.Favorite) error
	Remove(ctx context.Context, f favorite.Favorite) error
}
