package services

import (
	"cmp"
	"slices"
	"strings"

	"schoollunch/internal/core/domain/model/kernel"
	"schoollunch/internal/core/domain/model/order"
)

// otherOrdersSeparator joins the other products of an order in report entries.
const otherOrdersSeparator = ", "

// ReportStudent is the roster data a report needs.
type ReportStudent struct {
	Grade     int
	ClassName string
	Name      string
}

type ReportLine struct {
	ProductID   string
	ProductName string
	Quantity    int
}

// ReportOrder is one order joined with its student and product names.
// Student is nil when the roster entry no longer exists.
type ReportOrder struct {
	OrderID      kernel.UUID
	StudentID    string
	Student      *ReportStudent
	DeliveryDate kernel.Date
	Status       order.Status
	IsReceived   bool
	Lines        []ReportLine
}

// OrderGroupEntry is one student's line inside an OrderGroup.
type OrderGroupEntry struct {
	OrderID          kernel.UUID
	StudentClassName string
	StudentName      string
	Quantity         int
	IsReceived       bool
	DeliveryDate     kernel.Date
	// OtherOrders lists the other products of the same order, or is empty.
	OtherOrders string
}

// OrderGroup collects the lines sharing grade, product name and delivery date.
type OrderGroup struct {
	Grade        int
	ProductName  string
	DeliveryDate kernel.Date
	Entries      []OrderGroupEntry
}

type ProductQuantity struct {
	ProductName   string
	TotalQuantity int
}

type DailySummary struct {
	DeliveryDate kernel.Date
	Products     []ProductQuantity
}

type AggregatorOption func(*OrderAggregator)

// WithMissingStudentHandler is called for every active order skipped by
// GroupByGradeProductDate because its student is gone.
func WithMissingStudentHandler(fn func(orderID kernel.UUID, studentID string)) AggregatorOption {
	return func(a *OrderAggregator) { a.onMissingStudent = fn }
}

// OrderAggregator builds the staff report shapes from joined order rows.
// Only active orders are counted. Output ordering is fully deterministic so
// pages and printouts are stable.
type OrderAggregator struct {
	onMissingStudent func(orderID kernel.UUID, studentID string)
}

func NewOrderAggregator(opts ...AggregatorOption) OrderAggregator {
	a := OrderAggregator{}
	for _, opt := range opts {
		opt(&a)
	}
	return a
}

type groupKey struct {
	grade       int
	productName string
	date        kernel.Date
}

// GroupByGradeProductDate emits one entry per (order, line) into the group
// keyed by the student's grade, the product name and the delivery date.
// Groups are sorted by date, grade, then product name; entries keep input
// order. Orders without a student are skipped.
func (a OrderAggregator) GroupByGradeProductDate(rows []ReportOrder) []OrderGroup {
	index := make(map[groupKey]int)
	var groups []OrderGroup

	for _, row := range rows {
		if !row.Status.IsActive() {
			continue
		}
		if row.Student == nil {
			if a.onMissingStudent != nil {
				a.onMissingStudent(row.OrderID, row.StudentID)
			}
			continue
		}

		for _, line := range row.Lines {
			key := groupKey{grade: row.Student.Grade, productName: line.ProductName, date: row.DeliveryDate}
			i, ok := index[key]
			if !ok {
				i = len(groups)
				index[key] = i
				groups = append(groups, OrderGroup{
					Grade:        key.grade,
					ProductName:  key.productName,
					DeliveryDate: key.date,
				})
			}

			groups[i].Entries = append(groups[i].Entries, OrderGroupEntry{
				OrderID:          row.OrderID,
				StudentClassName: row.Student.ClassName,
				StudentName:      row.Student.Name,
				Quantity:         line.Quantity,
				IsReceived:       row.IsReceived,
				DeliveryDate:     row.DeliveryDate,
				OtherOrders:      otherProductNames(row.Lines, line.ProductID),
			})
		}
	}

	slices.SortStableFunc(groups, func(x, y OrderGroup) int {
		return cmp.Or(
			x.DeliveryDate.Compare(y.DeliveryDate),
			cmp.Compare(x.Grade, y.Grade),
			strings.Compare(x.ProductName, y.ProductName),
		)
	})
	return groups
}

// SummarizeByDeliveryDate totals quantities per product name for every
// delivery date. Dates are ascending and products sorted by name.
func (a OrderAggregator) SummarizeByDeliveryDate(rows []ReportOrder) []DailySummary {
	totals := make(map[kernel.Date]map[string]int)

	for _, row := range rows {
		if !row.Status.IsActive() {
			continue
		}
		perProduct, ok := totals[row.DeliveryDate]
		if !ok {
			perProduct = make(map[string]int)
			totals[row.DeliveryDate] = perProduct
		}
		for _, line := range row.Lines {
			perProduct[line.ProductName] += line.Quantity
		}
	}

	summaries := make([]DailySummary, 0, len(totals))
	for date, perProduct := range totals {
		products := make([]ProductQuantity, 0, len(perProduct))
		for name, qty := range perProduct {
			products = append(products, ProductQuantity{ProductName: name, TotalQuantity: qty})
		}
		slices.SortFunc(products, func(x, y ProductQuantity) int {
			return strings.Compare(x.ProductName, y.ProductName)
		})
		summaries = append(summaries, DailySummary{DeliveryDate: date, Products: products})
	}

	slices.SortFunc(summaries, func(x, y DailySummary) int {
		return x.DeliveryDate.Compare(y.DeliveryDate)
	})
	return summaries
}

func otherProductNames(lines []ReportLine, exceptProductID string) string {
	names := make([]string, 0, len(lines))
	for _, l := range lines {
		if l.ProductID != exceptProductID {
			names = append(names, l.ProductName)
		}
	}
	return strings.Join(names, otherOrdersSeparator)
}
