package ports

import (
	"context"

	"schoollunch/internal/core/domain/model/product"
)

type ProductRepository interface {
	// GetMany returns the products among ids that exist, keyed by id.
	GetMany(ctx context.Context, ids []string) (map[string]*product.Product, error)
}
