package http

import (
	"schoollunch/internal/core/application/usecases/queries"
	"schoollunch/internal/core/domain/model/kernel"
	"schoollunch/internal/core/domain/services"
	"schoollunch/internal/generated/servers"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

func toAPIDate(d kernel.Date) openapi_types.Date {
	return openapi_types.Date{Time: d.Time()}
}

func fromAPIDate(d openapi_types.Date) kernel.Date {
	return kernel.NewDate(d.Year(), d.Month(), d.Day())
}

func optionalDate(d *openapi_types.Date) *kernel.Date {
	if d == nil {
		return nil
	}
	date := fromAPIDate(*d)
	return &date
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}

func toOrder(o queries.OrderView) servers.Order {
	items := make([]servers.OrderLine, len(o.Items))
	for i, item := range o.Items {
		items[i] = servers.OrderLine{
			ProductId:   item.ProductID,
			ProductName: item.ProductName,
			ImageUrl:    optional(item.ImageURL),
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
		}
	}

	return servers.Order{
		Id:           o.ID.Google(),
		DeliveryDate: toAPIDate(o.DeliveryDate),
		Status:       servers.OrderStatus(o.Status.String()),
		IsReceived:   o.IsReceived,
		TotalAmount:  o.TotalAmount,
		CreatedAt:    o.CreatedAt,
		Items:        items,
	}
}

func toGroups(groups []services.OrderGroup) []servers.OrderGroup {
	response := make([]servers.OrderGroup, len(groups))
	for i, g := range groups {
		entries := make([]servers.OrderGroupEntry, len(g.Entries))
		for j, e := range g.Entries {
			entries[j] = servers.OrderGroupEntry{
				OrderId:      e.OrderID.Google(),
				ClassName:    e.StudentClassName,
				StudentName:  e.StudentName,
				Quantity:     e.Quantity,
				IsReceived:   e.IsReceived,
				DeliveryDate: toAPIDate(e.DeliveryDate),
				OtherOrders:  e.OtherOrders,
			}
		}
		response[i] = servers.OrderGroup{
			Grade:        g.Grade,
			ProductName:  g.ProductName,
			DeliveryDate: toAPIDate(g.DeliveryDate),
			Orders:       entries,
		}
	}
	return response
}

func toSummary(summary []services.DailySummary) []servers.DailySummary {
	response := make([]servers.DailySummary, len(summary))
	for i, day := range summary {
		products := make([]servers.ProductTotal, len(day.Products))
		for j, p := range day.Products {
			products[j] = servers.ProductTotal{ProductName: p.ProductName, TotalQuantity: p.TotalQuantity}
		}
		response[i] = servers.DailySummary{DeliveryDate: toAPIDate(day.DeliveryDate), Products: products}
	}
	return response
}

func toStudent(s queries.StudentView) servers.Student {
	return servers.Student{
		Id:        s.ID,
		Name:      s.Name,
		ClassName: s.ClassName,
		Grade:     s.Grade,
		IsActive:  s.IsActive,
	}
}

func toMe(me queries.MeView) servers.Me {
	response := servers.Me{UserId: me.UserID, AdminRole: optional(me.AdminRole)}
	if me.Student != nil {
		st := toStudent(*me.Student)
		response.Student = &st
	}
	return response
}
