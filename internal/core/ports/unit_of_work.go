// Package ports declares the contracts the application layer needs from
// storage, locking, caching and rendering adapters.
package ports

import (
	"context"
)

// UnitOfWorkFactory creates a UnitOfWork per command.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is one database transaction. Repositories obtained after Begin
// are bound to it; client code must Commit explicitly and may always
// Rollback in a defer.
type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error

	OrderRepository() OrderRepository
	ProductRepository() ProductRepository
	StudentRepository() StudentRepository
	FavoriteRepository() FavoriteRepository
}
