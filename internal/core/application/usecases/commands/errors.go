package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"schoollunch/internal/core/domain/model/order"
	"schoollunch/internal/core/ports"
	"schoollunch/internal/pkg/errs"
)

// ErrOperationFailed hides infrastructure failures from callers. The cause
// is logged by the handler that produced it.
var ErrOperationFailed = errors.New("operation failed")

var businessErrors = []error{
	errs.ErrObjectNotFound,
	errs.ErrValueIsInvalid,
	errs.ErrValueIsOutOfRange,
	errs.ErrValueIsRequired,
	errs.ErrForbidden,
	order.ErrDeadlinePassed,
	order.ErrDuplicateActiveOrder,
	order.ErrProductNotFound,
	order.ErrProductUnavailable,
	order.ErrNotDeliveryDay,
	order.ErrAlreadyCancelled,
	order.ErrAlreadyReceived,
	ports.ErrOrderSlotBusy,
}

// IsBusinessError reports whether err is a rule violation meant for the caller.
func IsBusinessError(err error) bool {
	for _, target := range businessErrors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// failed passes business errors through and turns anything else into
// ErrOperationFailed after logging it.
func failed(ctx context.Context, logger *slog.Logger, op string, err error) error {
	if err == nil || IsBusinessError(err) {
		return err
	}
	logger.ErrorContext(ctx, op+" failed", "error", err)
	return fmt.Errorf("%w: %s", ErrOperationFailed, op)
}
