package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	api "schoollunch/internal/adapters/in/http"
	"schoollunch/internal/adapters/out/excel"
	"schoollunch/internal/adapters/out/postgres"
	"schoollunch/internal/adapters/out/postgres/adminrepo"
	"schoollunch/internal/adapters/out/redis"
	"schoollunch/internal/core/application/access"
	"schoollunch/internal/core/application/usecases/commands"
	"schoollunch/internal/core/application/usecases/queries"
	"schoollunch/internal/core/domain/model/admin"
	"schoollunch/internal/core/domain/model/schedule"
	"schoollunch/internal/core/domain/services"
	"schoollunch/internal/core/ports"
	"schoollunch/internal/jobs"
	"schoollunch/internal/pkg/errs"

	goredis "github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// CompositionRoot builds every handler from one set of shared collaborators.
type CompositionRoot struct {
	cfg        Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	directory  *adminrepo.GormDirectory
	authorizer access.Authorizer
	calendar   *schedule.Calculator
	lifecycle  services.OrderLifecycle
	locker     ports.OrderSlotLocker
	cache      ports.Cache
	now        func() time.Time
	logger     *slog.Logger
}

// NewCompositionRoot wires the Redis-backed lock and cache when redisClient
// is not nil and no-op stand-ins otherwise.
func NewCompositionRoot(cfg Config, gormDB *gorm.DB, redisClient goredis.UniversalClient, logger *slog.Logger) (*CompositionRoot, error) {
	loc, err := cfg.Location()
	if err != nil {
		return nil, fmt.Errorf("load time zone %s: %w", cfg.ScheduleTimezone, err)
	}

	calendar, err := schedule.NewCalculator(loc)
	if err != nil {
		return nil, err
	}

	lifecycle, err := services.NewOrderLifecycle(calendar)
	if err != nil {
		return nil, err
	}

	directory := adminrepo.NewGormDirectory(gormDB)

	root := &CompositionRoot{
		cfg:        cfg,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		directory:  directory,
		authorizer: access.NewAuthorizer(directory),
		calendar:   calendar,
		lifecycle:  lifecycle,
		locker:     redis.NoopOrderSlotLocker{},
		cache:      redis.NoopCache{},
		now:        time.Now,
		logger:     logger,
	}
	if redisClient != nil {
		root.locker = redis.NewOrderSlotLocker(redisClient, cfg.OrderLockTTL, logger)
		root.cache = redis.NewJSONCache(redisClient, "schoollunch")
	}
	return root, nil
}

// SeedAdmins grants STAFF to every configured admin user id. Existing grants
// are left as they are.
func (c *CompositionRoot) SeedAdmins(ctx context.Context) error {
	for _, userID := range c.cfg.AdminUserIDs {
		_, err := c.directory.FindAdmin(ctx, userID)
		if err == nil {
			continue
		}
		if !errors.Is(err, errs.ErrObjectNotFound) {
			return fmt.Errorf("look up admin %s: %w", userID, err)
		}

		a, err := admin.NewAdmin(userID, admin.Staff)
		if err != nil {
			return err
		}
		if err = c.directory.Grant(ctx, a); err != nil {
			return fmt.Errorf("grant admin %s: %w", userID, err)
		}
	}
	return nil
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreatePlaceOrderCommandHandler() commands.PlaceOrderCommandHandler {
	var f commands.PlaceOrderUoWFactory = FuncPlaceOrderUoWFactory(func() commands.PlaceOrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewPlaceOrderCommandHandler(f, c.authorizer, c.lifecycle, c.locker, c.now, c.logger)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(c.orderUoWFactory(), c.authorizer, c.lifecycle, c.now, c.logger)
}

func (c *CompositionRoot) CreateReceiveOrderCommandHandler() commands.ReceiveOrderCommandHandler {
	return commands.NewReceiveOrderCommandHandler(c.orderUoWFactory(), c.authorizer, c.lifecycle, c.logger)
}

func (c *CompositionRoot) CreateResetReceivedCommandHandler() commands.ResetReceivedCommandHandler {
	return commands.NewResetReceivedCommandHandler(c.orderUoWFactory(), c.authorizer, c.lifecycle, c.logger)
}

func (c *CompositionRoot) CreateDeleteOrderCommandHandler() commands.DeleteOrderCommandHandler {
	return commands.NewDeleteOrderCommandHandler(c.orderUoWFactory(), c.authorizer, c.logger)
}

func (c *CompositionRoot) CreateBulkDeleteOrdersCommandHandler() commands.BulkDeleteOrdersCommandHandler {
	return commands.NewBulkDeleteOrdersCommandHandler(c.orderUoWFactory(), c.authorizer, c.logger)
}

func (c *CompositionRoot) CreateToggleFavoriteCommandHandler() commands.ToggleFavoriteCommandHandler {
	var f commands.FavoriteUoWFactory = FuncFavoriteUoWFactory(func() commands.FavoriteUoW {
		return c.uowFactory.Create()
	})
	return commands.NewToggleFavoriteCommandHandler(f, c.authorizer, c.logger)
}

func (c *CompositionRoot) CreateStudentCommandHandler() commands.StudentCommandHandler {
	var f commands.StudentUoWFactory = FuncStudentUoWFactory(func() commands.StudentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewStudentCommandHandler(f, c.authorizer, c.logger)
}

func (c *CompositionRoot) CreateGetProductsQueryHandler() queries.GetProductsQueryHandler {
	return queries.NewGetProductsQueryHandler(c.gormDB, c.cache, c.cfg.CatalogCacheTTL, c.logger)
}

func (c *CompositionRoot) CreateGetPickListQueryHandler() queries.GetPickListQueryHandler {
	return queries.NewGetPickListQueryHandler(c.gormDB, c.authorizer, excel.NewPickListRenderer(), c.logger)
}

// Handlers assembles everything the HTTP server exposes.
func (c *CompositionRoot) Handlers() api.Handlers {
	return api.Handlers{
		PlaceOrder:     c.CreatePlaceOrderCommandHandler(),
		CancelOrder:    c.CreateCancelOrderCommandHandler(),
		ReceiveOrder:   c.CreateReceiveOrderCommandHandler(),
		ResetReceived:  c.CreateResetReceivedCommandHandler(),
		DeleteOrder:    c.CreateDeleteOrderCommandHandler(),
		BulkDelete:     c.CreateBulkDeleteOrdersCommandHandler(),
		ToggleFavorite: c.CreateToggleFavoriteCommandHandler(),
		Students:       c.CreateStudentCommandHandler(),

		Me:            queries.NewGetMeQueryHandler(c.gormDB),
		DeliveryDates: queries.NewGetDeliveryDatesQueryHandler(c.calendar, c.cfg.ScheduleDaysAhead, c.now),
		Products:      c.CreateGetProductsQueryHandler(),
		StudentOrders: queries.NewGetStudentOrdersQueryHandler(c.gormDB),
		ExistingOrder: queries.NewCheckExistingOrderQueryHandler(c.gormDB),
		Favorites:     queries.NewGetFavoritesQueryHandler(c.gormDB),
		AdminOrders:   queries.NewGetAdminOrdersQueryHandler(c.gormDB, c.authorizer, c.logger),
		PrintOrders:   queries.NewGetPrintOrdersQueryHandler(c.gormDB, c.authorizer, c.calendar, c.now, c.logger),
		PickList:      c.CreateGetPickListQueryHandler(),
		ListStudents:  queries.NewListStudentsQueryHandler(c.gormDB, c.authorizer),
	}
}

// JobManager schedules the pick list export when an export directory is
// configured and the catalog refresh when a real cache is wired.
func (c *CompositionRoot) JobManager() *jobs.JobManager {
	var pickList *jobs.PickListExportJob
	if c.cfg.PickListExportDir != "" {
		pickList = jobs.NewPickListExportJob(
			c.CreateGetPickListQueryHandler(), c.calendar, c.cfg.PickListExportDir, c.cfg.PickListCron, c.logger)
	}

	var catalog *jobs.CatalogRefreshJob
	if _, noop := c.cache.(redis.NoopCache); !noop {
		catalog = jobs.NewCatalogRefreshJob(c.CreateGetProductsQueryHandler(), c.cfg.CatalogCacheTTL/2, c.logger)
	}

	return jobs.NewJobManager(pickList, catalog)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncPlaceOrderUoWFactory func() commands.PlaceOrderUoW

func (f FuncPlaceOrderUoWFactory) Create() commands.PlaceOrderUoW {
	return f()
}

type FuncStudentUoWFactory func() commands.StudentUoW

func (f FuncStudentUoWFactory) Create() commands.StudentUoW {
	return f()
}

type FuncFavoriteUoWFactory func() commands.FavoriteUoW

func (f FuncFavoriteUoWFactory) Create() commands.FavoriteUoW {
	return f()
}
