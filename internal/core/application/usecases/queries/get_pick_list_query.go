package queries

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"schoollunch/internal/core/application/access"
	"schoollunch/internal/core/domain/model/kernel"
	"schoollunch/internal/core/domain/services"
	"schoollunch/internal/core/ports"
	"schoollunch/internal/pkg/errs"
	"schoollunch/internal/pkg/guard"

	"gorm.io/gorm"
)

var ErrGetPickListQueryIsNotConstructed = errors.New(
	"GetPickListQuery must be created via NewGetPickListQuery constructor",
)

// GetPickListQuery renders the kitchen pick list of one delivery date.
type GetPickListQuery struct {
	actorID      string
	deliveryDate kernel.Date

	guard guard.ConstructorGuard
}

func NewGetPickListQuery(actorID string, deliveryDate kernel.Date) (GetPickListQuery, error) {
	if actorID == "" {
		return GetPickListQuery{}, errs.NewValueIsRequiredError("actorId")
	}
	if deliveryDate.IsZero() {
		return GetPickListQuery{}, errs.NewValueIsRequiredError("deliveryDate")
	}
	return GetPickListQuery{actorID: actorID, deliveryDate: deliveryDate, guard: guard.NewConstructorGuard()}, nil
}

func (q GetPickListQuery) Validate() error {
	return q.guard.Validate(ErrGetPickListQueryIsNotConstructed)
}

func (q GetPickListQuery) DeliveryDate() kernel.Date { return q.deliveryDate }

// GetPickListQueryHandler renders the kitchen pick list for one delivery date
// as a spreadsheet.
//
// Example:
//
//	handler := NewGetPickListQueryHandler(db, authorizer, renderer, logger)
//	query, _ := NewGetPickListQuery("admin_1", deliveryDate)
//
//	var buf bytes.Buffer
//	if err := handler.Handle(ctx, query, &buf); err != nil {
//	    return fmt.Errorf("pick list: %w", err)
//	}
type GetPickListQueryHandler struct {
	db         *gorm.DB
	authorizer Authorizer
	renderer   ports.PickListRenderer
	aggregator services.OrderAggregator
}

// NewGetPickListQueryHandler creates the pick list exporter.
func NewGetPickListQueryHandler(
	db *gorm.DB,
	authorizer Authorizer,
	renderer ports.PickListRenderer,
	logger *slog.Logger,
) GetPickListQueryHandler {
	return GetPickListQueryHandler{
		db:         db,
		authorizer: authorizer,
		renderer:   renderer,
		aggregator: newReportAggregator(logger.With("component", "pick_list_handler")),
	}
}

// Handle checks report access and writes the workbook to w.
func (h GetPickListQueryHandler) Handle(ctx context.Context, query GetPickListQuery, w io.Writer) error {
	if err := query.Validate(); err != nil {
		return err
	}

	if _, err := h.authorizer.Authorize(ctx, query.actorID, access.ViewReports); err != nil {
		return err
	}

	return h.Export(ctx, query.deliveryDate, w)
}

// Export renders without an authorization check; scheduled jobs use it.
// A date without orders still produces a workbook with empty sheets.
func (h GetPickListQueryHandler) Export(ctx context.Context, deliveryDate kernel.Date, w io.Writer) error {
	rows, err := loadReportOrders(ctx, h.db, reportFilter{DeliveryDate: &deliveryDate})
	if err != nil {
		return err
	}

	return h.renderer.Render(w, deliveryDate,
		h.aggregator.GroupByGradeProductDate(rows),
		h.aggregator.SummarizeByDeliveryDate(rows),
	)
}
