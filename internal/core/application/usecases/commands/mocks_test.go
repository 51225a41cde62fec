package commands_test

import (
	"context"
	"time"

	"schoollunch/internal/core/application/access"
	"schoollunch/internal/core/application/usecases/commands"
	"schoollunch/internal/core/domain/model/favorite"
	"schoollunch/internal/core/domain/model/kernel"
	"schoollunch/internal/core/domain/model/order"
	"schoollunch/internal/core/domain/model/product"
	"schoollunch/internal/core/domain/model/schedule"
	"schoollunch/internal/core/domain/model/student"
	"schoollunch/internal/core/domain/services"
	"schoollunch/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

var jst = time.FixedZone("JST", 9*60*60)

// wednesday morning; the Monday after next is still open until Thursday 15:00
var testNow = time.Date(2025, time.March, 5, 10, 0, 0, 0, jst)

func clock() time.Time { return testNow }

func newLifecycle() services.OrderLifecycle {
	calc, err := schedule.NewCalculator(jst)
	if err != nil {
		panic(err)
	}
	l, err := services.NewOrderLifecycle(calc)
	if err != nil {
		panic(err)
	}
	return l
}

func mustProduct(id string, price int, available bool) *product.Product {
	p, err := product.NewProduct(id, id, price, available, 1, product.Details{})
	if err != nil {
		panic(err)
	}
	return p
}

func mustOrder(studentID string, deliveryDate kernel.Date) *order.Order {
	line, err := order.NewLine("curry", 1, 500)
	if err != nil {
		panic(err)
	}
	o, err := order.NewOrder(kernel.NewUUID(), studentID, deliveryDate, []order.Line{line}, testNow)
	if err != nil {
		panic(err)
	}
	return o
}

type MockAuthorizer struct{ mock.Mock }

func (m *MockAuthorizer) Authorize(ctx context.Context, actorID string, c access.Capability) (access.Actor, error) {
	args := m.Called(ctx, actorID, c)
	return args.Get(0).(access.Actor), args.Error(1)
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

func (m *MockOrderRepository) HasActive(ctx context.Context, studentID string, d kernel.Date) (bool, error) {
	args := m.Called(ctx, studentID, d)
	return args.Bool(0), args.Error(1)
}

func (m *MockOrderRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockOrderRepository) DeleteAll(ctx context.Context, d *kernel.Date) (int64, error) {
	args := m.Called(ctx, d)
	return args.Get(0).(int64), args.Error(1)
}

type MockProductRepository struct{ mock.Mock }

func (m *MockProductRepository) GetMany(ctx context.Context, ids []string) (map[string]*product.Product, error) {
	args := m.Called(ctx, ids)
	products, _ := args.Get(0).(map[string]*product.Product)
	return products, args.Error(1)
}

type MockStudentRepository struct{ mock.Mock }

func (m *MockStudentRepository) Add(ctx context.Context, s *student.Student) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockStudentRepository) Update(ctx context.Context, s *student.Student) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockStudentRepository) Get(ctx context.Context, id string) (*student.Student, error) {
	args := m.Called(ctx, id)
	s, _ := args.Get(0).(*student.Student)
	return s, args.Error(1)
}

func (m *MockStudentRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockStudentRepository) MoveGrade(ctx context.Context, from, to int) (int64, error) {
	args := m.Called(ctx, from, to)
	return args.Get(0).(int64), args.Error(1)
}

type MockFavoriteRepository struct{ mock.Mock }

func (m *MockFavoriteRepository) Exists(ctx context.Context, f favorite.Favorite) (bool, error) {
	args := m.Called(ctx, f)
	return args.Bool(0), args.Error(1)
}

func (m *MockFavoriteRepository) Add(ctx context.Context, f favorite.Favorite) error {
	args := m.Called(ctx, f)
	return args.Error(0)
}

func (m *MockFavoriteRepository) Remove(ctx context.Context, f favorite.Favorite) error {
	args := m.Called(ctx, f)
	return args.Error(0)
}

// MockUoW satisfies every narrowed Unit of Work interface.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) ProductRepository() ports.ProductRepository {
	args := m.Called()
	return args.Get(0).(ports.ProductRepository)
}

func (m *MockUoW) StudentRepository() ports.StudentRepository {
	args := m.Called()
	return args.Get(0).(ports.StudentRepository)
}

func (m *MockUoW) FavoriteRepository() ports.FavoriteRepository {
	args := m.Called()
	return args.Get(0).(ports.FavoriteRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockPlaceOrderUoWFactory struct{ mock.Mock }

func (m *MockPlaceOrderUoWFactory) Create() commands.PlaceOrderUoW {
	args := m.Called()
	return args.Get(0).(commands.PlaceOrderUoW)
}

type MockStudentUoWFactory struct{ mock.Mock }

func (m *MockStudentUoWFactory) Create() commands.StudentUoW {
	args := m.Called()
	return args.Get(0).(commands.StudentUoW)
}

type MockFavoriteUoWFactory struct{ mock.Mock }

func (m *MockFavoriteUoWFactory) Create() commands.FavoriteUoW {
	args := m.Called()
	return args.Get(0).(commands.FavoriteUoW)
}

type MockLocker struct{ mock.Mock }

func (m *MockLocker) Lock(ctx context.Context, studentID string, d kernel.Date) (func(context.Context) error, error) {
	args := m.Called(ctx, studentID, d)
	release, _ := args.Get(0).(func(context.Context) error)
	return release, args.Error(1)
}

func noopRelease(context.Context) error { return nil }
