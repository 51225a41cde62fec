package queries

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"schoollunch/internal/core/ports"
	"schoollunch/internal/pkg/guard"

	"gorm.io/gorm"
)

// CatalogCacheKey holds the cached list of orderable products.
const CatalogCacheKey = "catalog:available"

var ErrGetProductsQueryIsNotConstructed = errors.New(
	"GetProductsQuery must be created via NewGetProductsQuery constructor",
)

// GetProductsQuery lists the orderable products in display order.
type GetProductsQuery struct {
	guard guard.ConstructorGuard
}

func NewGetProductsQuery() GetProductsQuery {
	return GetProductsQuery{guard: guard.NewConstructorGuard()}
}

func (q GetProductsQuery) Validate() error {
	return q.guard.Validate(ErrGetProductsQueryIsNotConstructed)
}

type ProductView struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Price        int    `json:"price"`
	Description  string `json:"description,omitempty"`
	ImageURL     string `json:"imageUrl,omitempty"`
	DisplayOrder int    `json:"displayOrder"`
}

// GetProductsQueryHandler serves the catalog from cache when it can. Cache
// failures are logged and fall through to the database.
type GetProductsQueryHandler struct {
	db     *gorm.DB
	cache  ports.Cache
	ttl    time.Duration
	logger *slog.Logger
}

// NewGetProductsQueryHandler creates the catalog reader. ttl bounds how long
// a cached catalog is served.
func NewGetProductsQueryHandler(db *gorm.DB, cache ports.Cache, ttl time.Duration, logger *slog.Logger) GetProductsQueryHandler {
	return GetProductsQueryHandler{
		db:     db,
		cache:  cache,
		ttl:    ttl,
		logger: logger.With("component", "get_products_handler"),
	}
}

// Handle returns the orderable products in display order.
func (h GetProductsQueryHandler) Handle(ctx context.Context, query GetProductsQuery) ([]ProductView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var cached []ProductView
	hit, err := h.cache.Get(ctx, CatalogCacheKey, &cached)
	if err != nil {
		h.logger.WarnContext(ctx, "catalog cache read failed", "error", err)
	}
	if hit && err == nil {
		return cached, nil
	}

	return h.Refresh(ctx)
}

// Refresh reloads the catalog from the database and rewrites the cache.
func (h GetProductsQueryHandler) Refresh(ctx context.Context) ([]ProductView, error) {
	products := make([]ProductView, 0)
	err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			price,
			COALESCE(description, '') AS description,
			COALESCE(image_url, '') AS image_url,
			display_order
		FROM products
		WHERE available
		ORDER BY display_order, name
	`).Scan(&products).Error
	if err != nil {
		return nil, err
	}

	if err = h.cache.Set(ctx, CatalogCacheKey, products, h.ttl); err != nil {
		h.logger.WarnContext(ctx, "catalog cache write failed", "error", err)
	}
	return products, nil
}
