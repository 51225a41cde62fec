package queries

import (
	"context"
	"errors"

	"schoollunch/internal/pkg/errs"
	"schoollunch/internal/pkg/guard"

	"gorm.io/gorm"
)

var ErrGetFavoritesQueryIsNotConstructed = errors.New(
	"GetFavoritesQuery must be created via NewGetFavoritesQuery constructor",
)

type GetFavoritesQuery struct {
	actorID string

	guard guard.ConstructorGuard
}

func NewGetFavoritesQuery(actorID string) (GetFavoritesQuery, error) {
	if actorID == "" {
		return GetFavoritesQuery{}, errs.NewValueIsRequiredError("actorId")
	}
	return GetFavoritesQuery{actorID: actorID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetFavoritesQuery) Validate() error {
	return q.guard.Validate(ErrGetFavoritesQueryIsNotConstructed)
}

// GetFavoritesQueryHandler lists the calling student's favorite products.
type GetFavoritesQueryHandler struct {
	db *gorm.DB
}

// NewGetFavoritesQueryHandler creates the favorites reader.
func NewGetFavoritesQueryHandler(db *gorm.DB) GetFavoritesQueryHandler {
	return GetFavoritesQueryHandler{db: db}
}

// Handle returns the favorite product ids, oldest bookmark first.
func (h GetFavoritesQueryHandler) Handle(ctx context.Context, query GetFavoritesQuery) ([]string, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	ids := make([]string, 0)
	err := h.db.WithContext(ctx).
		Table("favorites").
		Where("student_id = ?", query.actorID).
		Order("created_at, product_id").
		Pluck("product_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}
