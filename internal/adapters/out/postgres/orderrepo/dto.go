// Package orderrepo persists order aggregates in the orders and order_lines
// tables.
package orderrepo

import (
	"time"

	"schoollunch/internal/core/domain/model/kernel"
	"schoollunch/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO is one row of orders. The partial unique index allows a single
// active order per student and delivery date; cancelled rows do not count.
type OrderDTO struct {
	ID           uuid.UUID      `gorm:"type:uuid;primaryKey"`
	StudentID    string         `gorm:"type:varchar(255);not null;index:idx_orders_active_student_date,unique,where:status = 1"`
	DeliveryDate time.Time      `gorm:"type:date;not null;index;index:idx_orders_active_student_date,unique,where:status = 1"`
	Status       int            `gorm:"type:smallint;not null"`
	IsReceived   bool           `gorm:"not null;default:false"`
	TotalAmount  int            `gorm:"type:int;not null"`
	CreatedAt    time.Time      `gorm:"not null"`
	UpdatedAt    time.Time
	Lines        []OrderLineDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

// OrderLineDTO stores one product of an order with the price it was bought at.
type OrderLineDTO struct {
	OrderID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProductID string    `gorm:"type:varchar(255);primaryKey;index"`
	Quantity  int       `gorm:"type:int;not null"`
	UnitPrice int       `gorm:"type:int;not null"`
}

func (OrderLineDTO) TableName() string {
	return "order_lines"
}

func fromDomain(o *order.Order) OrderDTO {
	id := o.ID().Google()

	lines := make([]OrderLineDTO, 0, len(o.Lines()))
	for _, l := range o.Lines() {
		lines = append(lines, OrderLineDTO{
			OrderID:   id,
			ProductID: l.ProductID(),
			Quantity:  l.Quantity(),
			UnitPrice: l.UnitPrice(),
		})
	}

	return OrderDTO{
		ID:           id,
		StudentID:    o.StudentID(),
		DeliveryDate: o.DeliveryDate().Time(),
		Status:       int(o.Status()),
		IsReceived:   o.IsReceived(),
		TotalAmount:  o.TotalAmount(),
		CreatedAt:    o.CreatedAt(),
		Lines:        lines,
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	lines := make([]order.Line, 0, len(dto.Lines))
	for _, l := range dto.Lines {
		line, err := order.NewLine(l.ProductID, l.Quantity, l.UnitPrice)
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}

	return order.RestoreOrder(
		kernel.UUIDFromGoogle(dto.ID),
		dto.StudentID,
		DateFromColumn(dto.DeliveryDate),
		order.Status(dto.Status),
		dto.IsReceived,
		lines,
		dto.TotalAmount,
		dto.CreatedAt,
	)
}

// DateFromColumn reads a DATE column, whatever zone the driver attached.
func DateFromColumn(t time.Time) kernel.Date {
	return kernel.NewDate(t.Date())
}
