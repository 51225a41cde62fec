package queries

import (
	"context"
	"errors"
	"time"

	"schoollunch/internal/core/domain/model/kernel"
	"schoollunch/internal/core/domain/model/schedule"
	"schoollunch/internal/pkg/guard"
)

var ErrGetDeliveryDatesQueryIsNotConstructed = errors.New(
	"GetDeliveryDatesQuery must be created via NewGetDeliveryDatesQuery constructor",
)

// GetDeliveryDatesQuery lists the delivery dates a student can still order for.
type GetDeliveryDatesQuery struct {
	guard guard.ConstructorGuard
}

func NewGetDeliveryDatesQuery() GetDeliveryDatesQuery {
	return GetDeliveryDatesQuery{guard: guard.NewConstructorGuard()}
}

func (q GetDeliveryDatesQuery) Validate() error {
	return q.guard.Validate(ErrGetDeliveryDatesQueryIsNotConstructed)
}

type DeliveryDateView struct {
	Date     kernel.Date
	Deadline time.Time
}

// GetDeliveryDatesQueryHandler lists the upcoming orderable delivery dates
// with their deadlines.
type GetDeliveryDatesQueryHandler struct {
	calendar  *schedule.Calculator
	daysAhead int
	now       func() time.Time
}

// NewGetDeliveryDatesQueryHandler creates the date window reader.
// daysAhead is the number of calendar days scanned from today.
func NewGetDeliveryDatesQueryHandler(calendar *schedule.Calculator, daysAhead int, now func() time.Time) GetDeliveryDatesQueryHandler {
	return GetDeliveryDatesQueryHandler{calendar: calendar, daysAhead: daysAhead, now: now}
}

// Handle never touches storage; the window is computed from the clock.
func (h GetDeliveryDatesQueryHandler) Handle(_ context.Context, query GetDeliveryDatesQuery) ([]DeliveryDateView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	views := make([]DeliveryDateView, 0, max(h.daysAhead, 0))
	for slot := range h.calendar.Candidates(h.daysAhead, h.now()) {
		views = append(views, DeliveryDateView{Date: slot.DeliveryDate, Deadline: slot.Deadline})
	}
	return views, nil
}
