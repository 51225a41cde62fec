package queries

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"schoollunch/internal/core/application/access"
	"schoollunch/internal/core/domain/model/kernel"
	"schoollunch/internal/core/domain/model/student"
	"schoollunch/internal/core/domain/services"
	"schoollunch/internal/pkg/errs"
	"schoollunch/internal/pkg/guard"

	"gorm.io/gorm"
)

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

var ErrGetAdminOrdersQueryIsNotConstructed = errors.New(
	"GetAdminOrdersQuery must be created via NewGetAdminOrdersQuery constructor",
)

// AdminOrdersFilter narrows the staff report. Zero values mean "all" and,
// for paging, the first page of DefaultPageSize groups.
type AdminOrdersFilter struct {
	DeliveryDate *kernel.Date
	Grade        int
	Page         int
	PageSize     int
}

// GetAdminOrdersQuery builds the staff report over active orders.
type GetAdminOrdersQuery struct {
	actorID string
	filter  AdminOrdersFilter

	guard guard.ConstructorGuard
}

func NewGetAdminOrdersQuery(actorID string, filter AdminOrdersFilter) (GetAdminOrdersQuery, error) {
	if actorID == "" {
		return GetAdminOrdersQuery{}, errs.NewValueIsRequiredError("actorId")
	}
	if filter.Grade != 0 {
		if err := student.ValidateGrade(filter.Grade); err != nil {
			return GetAdminOrdersQuery{}, err
		}
	}
	if filter.Page == 0 {
		filter.Page = 1
	}
	if filter.PageSize == 0 {
		filter.PageSize = DefaultPageSize
	}
	if filter.Page < 1 {
		return GetAdminOrdersQuery{}, errs.NewValueIsInvalidErrorWithCause("page", fmt.Errorf("%d is less than 1", filter.Page))
	}
	if filter.PageSize < 1 || filter.PageSize > MaxPageSize {
		return GetAdminOrdersQuery{}, errs.NewValueIsOutOfRangeError("pageSize", filter.PageSize, 1, MaxPageSize)
	}

	return GetAdminOrdersQuery{actorID: actorID, filter: filter, guard: guard.NewConstructorGuard()}, nil
}

func (q GetAdminOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetAdminOrdersQueryIsNotConstructed)
}

// Filter returns the filter with page defaults applied.
func (q GetAdminOrdersQuery) Filter() AdminOrdersFilter { return q.filter }

// AdminOrdersView pages the groups; Summary always covers every filtered
// order.
type AdminOrdersView struct {
	Groups      []services.OrderGroup
	Summary     []services.DailySummary
	Page        int
	PageSize    int
	TotalGroups int
}

// GetAdminOrdersQueryHandler backs the staff order dashboard: grouped orders,
// one page at a time, plus per-date totals over the whole filter.
//
// Example:
//
//	handler := NewGetAdminOrdersQueryHandler(db, authorizer, logger)
//	query, _ := NewGetAdminOrdersQuery("admin_1", AdminOrdersFilter{Page: 1, PageSize: 20})
//
//	view, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//	// view.TotalGroups counts every group; view.Groups holds this page only
type GetAdminOrdersQueryHandler struct {
	db         *gorm.DB
	authorizer Authorizer
	aggregator services.OrderAggregator
}

// NewGetAdminOrdersQueryHandler creates the dashboard reader.
func NewGetAdminOrdersQueryHandler(db *gorm.DB, authorizer Authorizer, logger *slog.Logger) GetAdminOrdersQueryHandler {
	return GetAdminOrdersQueryHandler{
		db:         db,
		authorizer: authorizer,
		aggregator: newReportAggregator(logger.With("component", "admin_orders_handler")),
	}
}

// Handle requires report access. A page past the last group is empty, not an error.
func (h GetAdminOrdersQueryHandler) Handle(ctx context.Context, query GetAdminOrdersQuery) (AdminOrdersView, error) {
	if err := query.Validate(); err != nil {
		return AdminOrdersView{}, err
	}

	if _, err := h.authorizer.Authorize(ctx, query.actorID, access.ViewReports); err != nil {
		return AdminOrdersView{}, err
	}

	f := query.filter
	rows, err := loadReportOrders(ctx, h.db, reportFilter{DeliveryDate: f.DeliveryDate, Grade: f.Grade})
	if err != nil {
		return AdminOrdersView{}, err
	}

	groups := h.aggregator.GroupByGradeProductDate(rows)

	return AdminOrdersView{
		Groups:      paginate(groups, f.Page, f.PageSize),
		Summary:     h.aggregator.SummarizeByDeliveryDate(rows),
		Page:        f.Page,
		PageSize:    f.PageSize,
		TotalGroups: len(groups),
	}, nil
}

// paginate returns page (1-based) of items. Pages past the end are empty;
// the bound is checked before multiplying so a huge page cannot overflow.
func paginate[T any](items []T, page, pageSize int) []T {
	if len(items) == 0 || page < 1 || pageSize < 1 || page-1 > (len(items)-1)/pageSize {
		return []T{}
	}
	start := (page - 1) * pageSize
	return items[start:min(start+pageSize, len(items))]
}

// newReportAggregator logs orders dropped from a report for lack of a
// roster entry.
func newReportAggregator(logger *slog.Logger) services.OrderAggregator {
	return services.NewOrderAggregator(services.WithMissingStudentHandler(func(orderID kernel.UUID, studentID string) {
		logger.Warn("order skipped: student not found", "order_id", orderID.String(), "student_id", studentID)
	}))
}
