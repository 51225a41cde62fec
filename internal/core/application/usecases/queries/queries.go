// Package queries contains the read side. Handlers read straight from the
// database with SQL and return view models; they never load aggregates.
package queries

import (
	"context"
	"time"

	"schoollunch/internal/core/application/access"
	"schoollunch/internal/core/domain/model/kernel"
	"schoollunch/internal/core/domain/model/order"
	"schoollunch/internal/core/domain/services"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Authorizer is satisfied by access.Authorizer.
type Authorizer interface {
	Authorize(ctx context.Context, actorID string, c access.Capability) (access.Actor, error)
}

// OrderItemView is one line of an order as shown to its student.
type OrderItemView struct {
	ProductID   string
	ProductName string
	ImageURL    string
	Quantity    int
	UnitPrice   int
}

// OrderView is an order with its lines.
type OrderView struct {
	ID           kernel.UUID
	DeliveryDate kernel.Date
	Status       order.Status
	IsReceived   bool
	TotalAmount  int
	CreatedAt    time.Time
	Items        []OrderItemView
}

type orderRow struct {
	ID           uuid.UUID
	StudentID    string
	DeliveryDate time.Time
	Status       int
	IsReceived   bool
	TotalAmount  int
	CreatedAt    time.Time
	Grade        *int
	ClassName    *string
	StudentName  *string
}

type lineRow struct {
	OrderID     uuid.UUID
	ProductID   string
	ProductName string
	ImageURL    string
	Quantity    int
	UnitPrice   int
}

const linesByOrderSQL = `
	SELECT
		ol.order_id,
		ol.product_id,
		COALESCE(p.name, ol.product_id) AS product_name,
		COALESCE(p.image_url, '') AS image_url,
		ol.quantity,
		ol.unit_price
	FROM order_lines ol
	LEFT JOIN products p ON p.id = ol.product_id
	WHERE ol.order_id IN ?
	ORDER BY ol.order_id, p.display_order, ol.product_id`

// loadLines returns the lines of the given orders keyed by order id.
func loadLines(ctx context.Context, db *gorm.DB, orderIDs []uuid.UUID) (map[uuid.UUID][]lineRow, error) {
	byOrder := make(map[uuid.UUID][]lineRow, len(orderIDs))
	if len(orderIDs) == 0 {
		return byOrder, nil
	}

	var rows []lineRow
	if err := db.WithContext(ctx).Raw(linesByOrderSQL, orderIDs).Scan(&rows).Error; err != nil {
		return nil, err
	}

	for _, r := range rows {
		byOrder[r.OrderID] = append(byOrder[r.OrderID], r)
	}
	return byOrder, nil
}

func dateOf(t time.Time) kernel.Date {
	return kernel.NewDate(t.Date())
}

func orderIDs(rows []orderRow) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(rows))
	for _, r := range rows {
		ids = append(ids, r.ID)
	}
	return ids
}

// toOrderViews keeps the order of rows.
func toOrderViews(rows []orderRow, lines map[uuid.UUID][]lineRow) []OrderView {
	views := make([]OrderView, 0, len(rows))
	for _, r := range rows {
		items := make([]OrderItemView, 0, len(lines[r.ID]))
		for _, l := range lines[r.ID] {
			items = append(items, OrderItemView{
				ProductID:   l.ProductID,
				ProductName: l.ProductName,
				ImageURL:    l.ImageURL,
				Quantity:    l.Quantity,
				UnitPrice:   l.UnitPrice,
			})
		}
		views = append(views, OrderView{
			ID:           kernel.UUIDFromGoogle(r.ID),
			DeliveryDate: dateOf(r.DeliveryDate),
			Status:       order.Status(r.Status),
			IsReceived:   r.IsReceived,
			TotalAmount:  r.TotalAmount,
			CreatedAt:    r.CreatedAt,
			Items:        items,
		})
	}
	return views
}

// toReportOrders joins rows with their lines for the aggregator. A row
// without student columns had its roster entry deleted.
func toReportOrders(rows []orderRow, lines map[uuid.UUID][]lineRow) []services.ReportOrder {
	out := make([]services.ReportOrder, 0, len(rows))
	for _, r := range rows {
		var st *services.ReportStudent
		if r.Grade != nil {
			st = &services.ReportStudent{Grade: *r.Grade}
			if r.ClassName != nil {
				st.ClassName = *r.ClassName
			}
			if r.StudentName != nil {
				st.Name = *r.StudentName
			}
		}

		reportLines := make([]services.ReportLine, 0, len(lines[r.ID]))
		for _, l := range lines[r.ID] {
			reportLines = append(reportLines, services.ReportLine{
				ProductID:   l.ProductID,
				ProductName: l.ProductName,
				Quantity:    l.Quantity,
			})
		}

		out = append(out, services.ReportOrder{
			OrderID:      kernel.UUIDFromGoogle(r.ID),
			StudentID:    r.StudentID,
			Student:      st,
			DeliveryDate: dateOf(r.DeliveryDate),
			Status:       order.Status(r.Status),
			IsReceived:   r.IsReceived,
			Lines:        reportLines,
		})
	}
	return out
}

// reportFilter narrows the active orders a report covers. Zero values
// disable a filter.
type reportFilter struct {
	DeliveryDate *kernel.Date
	From         *kernel.Date
	Grade        int
}

// loadReportOrders reads active orders with their students, oldest delivery
// date first.
func loadReportOrders(ctx context.Context, db *gorm.DB, f reportFilter) ([]services.ReportOrder, error) {
	q := db.WithContext(ctx).
		Table("orders o").
		Select(`o.id, o.student_id, o.delivery_date, o.status, o.is_received, o.total_amount, o.created_at,
			s.grade, s.class_name, s.name AS student_name`).
		Joins("LEFT JOIN students s ON s.id = o.student_id").
		Where("o.status = ?", int(order.Active))

	if f.DeliveryDate != nil {
		q = q.Where("o.delivery_date = ?", f.DeliveryDate.Time())
	}
	if f.From != nil {
		q = q.Where("o.delivery_date >= ?", f.From.Time())
	}
	if f.Grade != 0 {
		q = q.Where("s.grade = ?", f.Grade)
	}

	var rows []orderRow
	if err := q.Order("o.delivery_date, o.created_at, o.id").Scan(&rows).Error; err != nil {
		return nil, err
	}

	lines, err := loadLines(ctx, db, orderIDs(rows))
	if err != nil {
		return nil, err
	}

	return toReportOrders(rows, lines), nil
}
