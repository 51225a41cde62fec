package ports

import (
	"io"

	"schoollunch/internal/core/domain/model/kernel"
	"schoollunch/internal/core/domain/services"
)

// PickListRenderer writes the kitchen pick list of one delivery date.
type PickListRenderer interface {
	Render(w io.Writer, deliveryDate kernel.Date, groups []services.OrderGroup, summary []services.DailySummary) error
}
