package queries

import (
	"context"
	"errors"

	"schoollunch/internal/core/domain/model/kernel"
	"schoollunch/internal/core/domain/model/order"
	"schoollunch/internal/pkg/errs"
	"schoollunch/internal/pkg/guard"

	"gorm.io/gorm"
)

var ErrCheckExistingOrderQueryIsNotConstructed = errors.New(
	"CheckExistingOrderQuery must be created via NewCheckExistingOrderQuery constructor",
)

// CheckExistingOrderQuery looks up the caller's active order for a date.
type CheckExistingOrderQuery struct {
	actorID      string
	deliveryDate kernel.Date

	guard guard.ConstructorGuard
}

func NewCheckExistingOrderQuery(actorID string, deliveryDate kernel.Date) (CheckExistingOrderQuery, error) {
	if actorID == "" {
		return CheckExistingOrderQuery{}, errs.NewValueIsRequiredError("actorId")
	}
	if deliveryDate.IsZero() {
		return CheckExistingOrderQuery{}, errs.NewValueIsRequiredError("deliveryDate")
	}
	return CheckExistingOrderQuery{
		actorID:      actorID,
		deliveryDate: deliveryDate,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (q CheckExistingOrderQuery) Validate() error {
	return q.guard.Validate(ErrCheckExistingOrderQueryIsNotConstructed)
}

// CheckExistingOrderQueryHandler looks up the student's active order for one
// delivery date, so clients can warn before a duplicate is placed.
type CheckExistingOrderQueryHandler struct {
	db *gorm.DB
}

// NewCheckExistingOrderQueryHandler creates the duplicate order lookup.
func NewCheckExistingOrderQueryHandler(db *gorm.DB) CheckExistingOrderQueryHandler {
	return CheckExistingOrderQueryHandler{db: db}
}

// Handle returns false and a zero view when there is no active order.
func (h CheckExistingOrderQueryHandler) Handle(ctx context.Context, query CheckExistingOrderQuery) (OrderView, bool, error) {
	if err := query.Validate(); err != nil {
		return OrderView{}, false, err
	}

	var rows []orderRow
	err := h.db.WithContext(ctx).Raw(`
		SELECT id, student_id, delivery_date, status, is_received, total_amount, created_at
		FROM orders
		WHERE student_id = ? AND delivery_date = ? AND status = ?
		LIMIT 1
	`, query.actorID, query.deliveryDate.Time(), int(order.Active)).Scan(&rows).Error
	if err != nil {
		return OrderView{}, false, err
	}
	if len(rows) == 0 {
		return OrderView{}, false, nil
	}

	lines, err := loadLines(ctx, h.db, orderIDs(rows))
	if err != nil {
		return OrderView{}, false, err
	}

	return toOrderViews(rows, lines)[0], true, nil
}
