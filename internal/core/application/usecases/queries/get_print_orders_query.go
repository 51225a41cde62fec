package queries

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"schoollunch/internal/core/application/access"
	"schoollunch/internal/core/domain/model/schedule"
	"schoollunch/internal/core/domain/model/student"
	"schoollunch/internal/core/domain/services"
	"schoollunch/internal/pkg/errs"
	"schoollunch/internal/pkg/guard"

	"gorm.io/gorm"
)

var ErrGetPrintOrdersQueryIsNotConstructed = errors.New(
	"GetPrintOrdersQuery must be created via NewGetPrintOrdersQuery constructor",
)

// GetPrintOrdersQuery returns the report groups for every active order
// delivered today or later.
type GetPrintOrdersQuery struct {
	actorID string
	grade   int

	guard guard.ConstructorGuard
}

func NewGetPrintOrdersQuery(actorID string, grade int) (GetPrintOrdersQuery, error) {
	if actorID == "" {
		return GetPrintOrdersQuery{}, errs.NewValueIsRequiredError("actorId")
	}
	if grade != 0 {
		if err := student.ValidateGrade(grade); err != nil {
			return GetPrintOrdersQuery{}, err
		}
	}
	return GetPrintOrdersQuery{actorID: actorID, grade: grade, guard: guard.NewConstructorGuard()}, nil
}

func (q GetPrintOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetPrintOrdersQueryIsNotConstructed)
}

// GetPrintOrdersQueryHandler builds the printable order sheet: active orders
// from today onwards, grouped by grade, product and delivery date.
//
// Example:
//
//	handler := NewGetPrintOrdersQueryHandler(db, authorizer, calendar, time.Now, logger)
//	query, _ := NewGetPrintOrdersQuery("admin_1", 3)
//
//	groups, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
type GetPrintOrdersQueryHandler struct {
	db         *gorm.DB
	authorizer Authorizer
	calendar   *schedule.Calculator
	now        func() time.Time
	aggregator services.OrderAggregator
}

// NewGetPrintOrdersQueryHandler creates the print sheet reader.
func NewGetPrintOrdersQueryHandler(
	db *gorm.DB,
	authorizer Authorizer,
	calendar *schedule.Calculator,
	now func() time.Time,
	logger *slog.Logger,
) GetPrintOrdersQueryHandler {
	return GetPrintOrdersQueryHandler{
		db:         db,
		authorizer: authorizer,
		calendar:   calendar,
		now:        now,
		aggregator: newReportAggregator(logger.With("component", "print_orders_handler")),
	}
}

// Handle requires report access. A zero grade means every grade.
func (h GetPrintOrdersQueryHandler) Handle(ctx context.Context, query GetPrintOrdersQuery) ([]services.OrderGroup, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if _, err := h.authorizer.Authorize(ctx, query.actorID, access.ViewReports); err != nil {
		return nil, err
	}

	today := h.calendar.Today(h.now())
	rows, err := loadReportOrders(ctx, h.db, reportFilter{From: &today, Grade: query.grade})
	if err != nil {
		return nil, err
	}

	return h.aggregator.GroupByGradeProductDate(rows), nil
}
