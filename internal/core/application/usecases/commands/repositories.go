// Package commands contains the use cases that change state. Every command
// is a guarded value built by its constructor; every handler authorizes the
// caller, runs inside a Unit of Work and commits explicitly.
package commands

import (
	"context"

	"schoollunch/internal/core/application/access"
	"schoollunch/internal/core/ports"
)

// Unit of Work interfaces narrowed to what each handler touches.
type (
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	ProductRepoFactory interface {
		ProductRepository() ports.ProductRepository
	}

	StudentRepoFactory interface {
		StudentRepository() ports.StudentRepository
	}

	FavoriteRepoFactory interface {
		FavoriteRepository() ports.FavoriteRepository
	}

	// OrderUoW is used by commands that change an existing order.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// PlaceOrderUoW also reads the catalog to capture prices.
	//
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   products, err := uow.ProductRepository().GetMany(ctx, ids)
	//   err = uow.OrderRepository().Add(ctx, o)
	//
	//   err = uow.Commit(ctx)
	PlaceOrderUoW interface {
		TxManager
		OrderRepoFactory
		ProductRepoFactory
	}

	PlaceOrderUoWFactory interface {
		Create() PlaceOrderUoW
	}

	StudentUoW interface {
		TxManager
		StudentRepoFactory
	}

	StudentUoWFactory interface {
		Create() StudentUoW
	}

	FavoriteUoW interface {
		TxManager
		FavoriteRepoFactory
		ProductRepoFactory
	}

	FavoriteUoWFactory interface {
		Create() FavoriteUoW
	}
)

// Authorizer is satisfied by access.Authorizer.
type Authorizer interface {
	Authorize(ctx context.Context, actorID string, c access.Capability) (access.Actor, error)
}
