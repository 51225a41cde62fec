package commands

import (
	"errors"

	"schoollunch/internal/core/domain/model/favorite"
	"schoollunch/internal/pkg/guard"
)

var ErrToggleFavoriteCommandIsNotConstructed = errors.New(
	"ToggleFavoriteCommand must be created via NewToggleFavoriteCommand constructor",
)

// ToggleFavoriteCommand bookmarks a product for the calling student, or
// removes the bookmark when it exists.
type ToggleFavoriteCommand struct { //nolint:recvcheck //using for validation
	favorite favorite.Favorite

	guard guard.ConstructorGuard
}

func NewToggleFavoriteCommand(actorID, productID string) (ToggleFavoriteCommand, error) {
	f, err := favorite.NewFavorite(actorID, productID)
	if err != nil {
		return ToggleFavoriteCommand{}, err
	}
	return ToggleFavoriteCommand{favorite: f, guard: guard.NewConstructorGuard()}, nil
}

func (c ToggleFavoriteCommand) Validate() error {
	return c.guard.Validate(ErrToggleFavoriteCommandIsNotConstructed)
}

func (c ToggleFavoriteCommand) ActorID() string             { return c.favorite.StudentID() }
func (c ToggleFavoriteCommand) Favorite() favorite.Favorite { return c.favorite }
