package commands

import (
	"context"
	"fmt"
	"log/slog"

	"schoollunch/internal/core/application/access"
	"schoollunch/internal/core/domain/model/order"
)

// ToggleFavoriteCommandHandler adds a product to the student's favorites,
// or removes it when it is already there.
//
// Example:
//
//	handler := NewToggleFavoriteCommandHandler(uowFactory, authorizer, logger)
//	cmd, _ := NewToggleFavoriteCommand("user_42", "curry")
//
//	favorited, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return err
//	}
//	// favorited reports the state after the toggle
type ToggleFavoriteCommandHandler struct {
	uowFactory FavoriteUoWFactory
	authorizer Authorizer
	logger     *slog.Logger
}

// NewToggleFavoriteCommandHandler creates a handler for favorite toggles.
func NewToggleFavoriteCommandHandler(
	uowFactory FavoriteUoWFactory,
	authorizer Authorizer,
	logger *slog.Logger,
) ToggleFavoriteCommandHandler {
	return ToggleFavoriteCommandHandler{
		uowFactory: uowFactory,
		authorizer: authorizer,
		logger:     logger.With("component", "toggle_favorite_handler"),
	}
}

// Handle returns whether the product is a favorite afterwards. Unknown
// products fail with order.ErrProductNotFound.
func (h ToggleFavoriteCommandHandler) Handle(ctx context.Context, cmd ToggleFavoriteCommand) (bool, error) {
	if err := cmd.Validate(); err != nil {
		return false, err
	}

	if _, err := h.authorizer.Authorize(ctx, cmd.ActorID(), access.ManageFavorites); err != nil {
		return false, failed(ctx, h.logger, "authorize", err)
	}

	favorited, err := h.toggle(ctx, cmd)
	return favorited, failed(ctx, h.logger, "toggle favorite", err)
}

func (h ToggleFavoriteCommandHandler) toggle(ctx context.Context, cmd ToggleFavoriteCommand) (bool, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return false, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	f := cmd.Favorite()

	products, err := uow.ProductRepository().GetMany(ctx, []string{f.ProductID()})
	if err != nil {
		return false, err
	}
	if _, ok := products[f.ProductID()]; !ok {
		return false, fmt.Errorf("%w: %s", order.ErrProductNotFound, f.ProductID())
	}

	repo := uow.FavoriteRepository()

	exists, err := repo.Exists(ctx, f)
	if err != nil {
		return false, err
	}

	if exists {
		err = repo.Remove(ctx, f)
	} else {
		err = repo.Add(ctx, f)
	}
	if err != nil {
		return false, err
	}

	if err = uow.Commit(ctx); err != nil {
		return false, err
	}

	return !exists, nil
}
