// Package postgres implements the Unit of Work over GORM. Repositories
// handed out after Begin share the transaction; before Begin they run on
// the plain connection.
//
//	uow := NewGormUnitOfWorkFactory(db).Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() { _ = uow.Rollback(ctx) }()
//
//	if err := uow.OrderRepository().Add(ctx, o); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
package postgres

import (
	"context"

	"schoollunch/internal/adapters/out/postgres/adminrepo"
	"schoollunch/internal/adapters/out/postgres/favoriterepo"
	"schoollunch/internal/adapters/out/postgres/orderrepo"
	"schoollunch/internal/adapters/out/postgres/productrepo"
	"schoollunch/internal/adapters/out/postgres/studentrepo"
	"schoollunch/internal/core/ports"

	"gorm.io/gorm"
)

// Models lists every table the service owns, in migration order.
func Models() []any {
	return []any{
		&studentrepo.StudentDTO{},
		&productrepo.ProductDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.OrderLineDTO{},
		&favoriterepo.FavoriteDTO{},
		&adminrepo.AdminDTO{},
	}
}

// Migrate creates or updates the schema.
func Migrate(ctx context.Context, db *gorm.DB) error {
	return db.WithContext(ctx).AutoMigrate(Models()...)
}

// trackedAggregate is an aggregate written during the unit of work.
type trackedAggregate struct {
	ID        string
	Aggregate any
}

type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create returns a fresh unit of work. Instances are not safe for
// concurrent use; create one per operation.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	trackedAggregates []trackedAggregate
}

// Begin starts the transaction. A second call is a no-op.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		err := uow.tx.Error
		uow.tx = nil
		return err
	}

	return nil
}

// Commit returns gorm.ErrInvalidTransaction when no transaction is open.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback after Commit returns gorm.ErrInvalidTransaction, which deferred
// callers ignore.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}

func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) StudentRepository() ports.StudentRepository {
	return studentrepo.NewGormStudentRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) ProductRepository() ports.ProductRepository {
	return productrepo.NewGormProductRepository(uow.conn())
}

func (uow *GormUnitOfWork) FavoriteRepository() ports.FavoriteRepository {
	return favoriterepo.NewGormFavoriteRepository(uow.conn())
}

// TrackAggregate records a written aggregate.
func (uow *GormUnitOfWork) TrackAggregate(id string, aggregate any) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}

// TrackedCount reports how many aggregates were written so far.
func (uow *GormUnitOfWork) TrackedCount() int {
	return len(uow.trackedAggregates)
}
