package redis

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"schoollunch/internal/core/domain/model/kernel"
	"schoollunch/internal/core/ports"

	"github.com/bsm/redislock"
	goredis "github.com/redis/go-redis/v9"
)

const orderSlotKeyPrefix = "lock:order-slot"

var _ ports.OrderSlotLocker = (*OrderSlotLocker)(nil)

// OrderSlotLocker takes a short Redis lock per (student, delivery date). The
// lock expires on its own after ttl if the holder dies.
type OrderSlotLocker struct {
	locker *redislock.Client
	ttl    time.Duration
	logger *slog.Logger
}

func NewOrderSlotLocker(client goredis.UniversalClient, ttl time.Duration, logger *slog.Logger) *OrderSlotLocker {
	return &OrderSlotLocker{
		locker: redislock.New(client),
		ttl:    ttl,
		logger: logger.With("component", "order_slot_locker"),
	}
}

func (l *OrderSlotLocker) Lock(ctx context.Context, studentID string, deliveryDate kernel.Date) (func(context.Context) error, error) {
	key := orderSlotKey(studentID, deliveryDate)

	lock, err := l.locker.Obtain(ctx, key, l.ttl, nil)
	if errors.Is(err, redislock.ErrNotObtained) {
		return nil, ports.ErrOrderSlotBusy
	}
	if err != nil {
		return nil, fmt.Errorf("obtain %s: %w", key, err)
	}

	return func(ctx context.Context) error {
		err := lock.Release(ctx)
		if errors.Is(err, redislock.ErrLockNotHeld) {
			l.logger.WarnContext(ctx, "order slot lock expired before release", "key", key)
			return nil
		}
		return err
	}, nil
}

func orderSlotKey(studentID string, deliveryDate kernel.Date) string {
	return fmt.Sprintf("%s:%s:%s", orderSlotKeyPrefix, studentID, deliveryDate)
}

// NoopOrderSlotLocker always grants the slot. The partial unique index on
// orders still rejects duplicates.
type NoopOrderSlotLocker struct{}

func (NoopOrderSlotLocker) Lock(context.Context, string, kernel.Date) (func(context.Context) error, error) {
	return func(context.Context) error { return nil }, nil
}
