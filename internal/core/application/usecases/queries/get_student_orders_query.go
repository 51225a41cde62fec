package queries

import (
	"context"
	"errors"
	"fmt"

	"schoollunch/internal/core/domain/model/order"
	"schoollunch/internal/pkg/errs"
	"schoollunch/internal/pkg/guard"

	"gorm.io/gorm"
)

var ErrGetStudentOrdersQueryIsNotConstructed = errors.New(
	"GetStudentOrdersQuery must be created via NewGetStudentOrdersQuery constructor",
)

// GetStudentOrdersQuery returns the caller's order history, newest first.
// With a positive limit the most recently placed active order is moved to
// the top before the list is cut.
type GetStudentOrdersQuery struct {
	actorID string
	limit   int

	guard guard.ConstructorGuard
}

func NewGetStudentOrdersQuery(actorID string, limit int) (GetStudentOrdersQuery, error) {
	if actorID == "" {
		return GetStudentOrdersQuery{}, errs.NewValueIsRequiredError("actorId")
	}
	if limit < 0 {
		return GetStudentOrdersQuery{}, errs.NewValueIsInvalidErrorWithCause("limit",
			fmt.Errorf("%d is negative", limit))
	}
	return GetStudentOrdersQuery{actorID: actorID, limit: limit, guard: guard.NewConstructorGuard()}, nil
}

func (q GetStudentOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetStudentOrdersQueryIsNotConstructed)
}

// GetStudentOrdersQueryHandler lists the calling student's own orders with their lines.
type GetStudentOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetStudentOrdersQueryHandler creates the order history reader.
func NewGetStudentOrdersQueryHandler(db *gorm.DB) GetStudentOrdersQueryHandler {
	return GetStudentOrdersQueryHandler{db: db}
}

// Handle returns orders newest first. With a limit, the latest active order
// is pinned to the top before truncating.
func (h GetStudentOrdersQueryHandler) Handle(ctx context.Context, query GetStudentOrdersQuery) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var rows []orderRow
	err := h.db.WithContext(ctx).Raw(`
		SELECT id, student_id, delivery_date, status, is_received, total_amount, created_at
		FROM orders
		WHERE student_id = ?
		ORDER BY created_at DESC, id
	`, query.actorID).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	if query.limit > 0 {
		rows = pinLatestActive(rows)
		if len(rows) > query.limit {
			rows = rows[:query.limit]
		}
	}

	lines, err := loadLines(ctx, h.db, orderIDs(rows))
	if err != nil {
		return nil, err
	}

	return toOrderViews(rows, lines), nil
}

// pinLatestActive moves the first active row to the front. rows must be
// sorted newest first.
func pinLatestActive(rows []orderRow) []orderRow {
	for i, r := range rows {
		if order.Status(r.Status).IsActive() {
			if i == 0 {
				return rows
			}
			pinned := make([]orderRow, 0, len(rows))
			pinned = append(pinned, r)
			pinned = append(pinned, rows[:i]...)
			return append(pinned, rows[i+1:]...)
		}
	}
	return rows
}
