package http

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"schoollunch/internal/adapters/out/excel"
	"schoollunch/internal/core/application/usecases/commands"
	"schoollunch/internal/core/application/usecases/queries"
	"schoollunch/internal/core/domain/model/kernel"
	"schoollunch/internal/core/domain/services"
	"schoollunch/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

type commandHandler[C any] interface {
	Handle(ctx context.Context, cmd C) error
}

type resultHandler[In, Out any] interface {
	Handle(ctx context.Context, in In) (Out, error)
}

type studentCommands interface {
	HandleCreate(ctx context.Context, cmd commands.SaveStudentCommand) error
	HandleUpdate(ctx context.Context, cmd commands.SaveStudentCommand) error
	HandleRegister(ctx context.Context, cmd commands.RegisterStudentCommand) error
	HandleBulkUpdateGrade(ctx context.Context, cmd commands.BulkUpdateGradeCommand) (int64, error)
	HandleDelete(ctx context.Context, cmd commands.DeleteStudentCommand) error
}

type existingOrderHandler interface {
	Handle(ctx context.Context, query queries.CheckExistingOrderQuery) (queries.OrderView, bool, error)
}

type pickListHandler interface {
	Handle(ctx context.Context, query queries.GetPickListQuery, w io.Writer) error
}

// Handlers lists every use case the API exposes.
type Handlers struct {
	PlaceOrder     commandHandler[commands.PlaceOrderCommand]
	CancelOrder    commandHandler[commands.CancelOrderCommand]
	ReceiveOrder   commandHandler[commands.ReceiveOrderCommand]
	ResetReceived  commandHandler[commands.ResetReceivedCommand]
	DeleteOrder    commandHandler[commands.DeleteOrderCommand]
	BulkDelete     resultHandler[commands.BulkDeleteOrdersCommand, int64]
	ToggleFavorite resultHandler[commands.ToggleFavoriteCommand, bool]
	Students       studentCommands

	Me             resultHandler[queries.GetMeQuery, queries.MeView]
	DeliveryDates  resultHandler[queries.GetDeliveryDatesQuery, []queries.DeliveryDateView]
	Products       resultHandler[queries.GetProductsQuery, []queries.ProductView]
	StudentOrders  resultHandler[queries.GetStudentOrdersQuery, []queries.OrderView]
	ExistingOrder  existingOrderHandler
	Favorites      resultHandler[queries.GetFavoritesQuery, []string]
	AdminOrders    resultHandler[queries.GetAdminOrdersQuery, queries.AdminOrdersView]
	PrintOrders    resultHandler[queries.GetPrintOrdersQuery, []services.OrderGroup]
	PickList       pickListHandler
	ListStudents   resultHandler[queries.ListStudentsQuery, []queries.StudentView]
}

var _ servers.ServerInterface = (*Server)(nil)

// Server implements servers.ServerInterface on top of the command and query
// handlers. The caller id always comes from the verified token.
type Server struct {
	h      Handlers
	logger *slog.Logger
}

// NewServer wires the handlers behind the generated routes.
func NewServer(h Handlers, logger *slog.Logger) *Server {
	return &Server{h: h, logger: logger.With("component", "http_server")}
}

// GetMe handles GET /me.
func (s *Server) GetMe(ctx echo.Context) error {
	q, err := queries.NewGetMeQuery(actorID(ctx))
	if err != nil {
		return s.fail(ctx, err)
	}

	me, err := s.h.Me.Handle(ctx.Request().Context(), q)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toMe(me))
}

// RegisterMe handles POST /me.
func (s *Server) RegisterMe(ctx echo.Context) error {
	cmd, err := commands.NewRegisterStudentCommand(actorID(ctx))
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.h.Students.HandleRegister(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetDeliveryDates handles GET /delivery-dates.
func (s *Server) GetDeliveryDates(ctx echo.Context) error {
	slots, err := s.h.DeliveryDates.Handle(ctx.Request().Context(), queries.NewGetDeliveryDatesQuery())
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]servers.DeliveryDate, len(slots))
	for i, slot := range slots {
		response[i] = servers.DeliveryDate{Date: toAPIDate(slot.Date), Deadline: slot.Deadline}
	}
	return ctx.JSON(http.StatusOK, response)
}

// GetProducts handles GET /products.
func (s *Server) GetProducts(ctx echo.Context) error {
	products, err := s.h.Products.Handle(ctx.Request().Context(), queries.NewGetProductsQuery())
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]servers.Product, len(products))
	for i, p := range products {
		response[i] = servers.Product{
			Id:           p.ID,
			Name:         p.Name,
			Price:        p.Price,
			Description:  optional(p.Description),
			ImageUrl:     optional(p.ImageURL),
			DisplayOrder: p.DisplayOrder,
		}
	}
	return ctx.JSON(http.StatusOK, response)
}

// GetOrders handles GET /orders.
func (s *Server) GetOrders(ctx echo.Context, params servers.GetOrdersParams) error {
	limit := 0
	if params.Limit != nil {
		limit = *params.Limit
	}

	q, err := queries.NewGetStudentOrdersQuery(actorID(ctx), limit)
	if err != nil {
		return s.fail(ctx, err)
	}

	orders, err := s.h.StudentOrders.Handle(ctx.Request().Context(), q)
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]servers.Order, len(orders))
	for i, o := range orders {
		response[i] = toOrder(o)
	}
	return ctx.JSON(http.StatusOK, response)
}

// PlaceOrder handles POST /orders.
func (s *Server) PlaceOrder(ctx echo.Context) error {
	var body servers.PlaceOrderJSONRequestBody
	if err := s.bindAndValidate(ctx, &body); err != nil {
		return err
	}

	items := make([]services.OrderItem, len(body.Items))
	for i, item := range body.Items {
		items[i] = services.OrderItem{ProductID: item.ProductId, Quantity: item.Quantity}
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewPlaceOrderCommand(actorID(ctx), orderID, fromAPIDate(body.DeliveryDate), items)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.h.PlaceOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, servers.CreatedOrder{Id: orderID.Google()})
}

// CheckExistingOrder handles GET /orders/existing.
func (s *Server) CheckExistingOrder(ctx echo.Context, params servers.CheckExistingOrderParams) error {
	q, err := queries.NewCheckExistingOrderQuery(actorID(ctx), fromAPIDate(params.DeliveryDate))
	if err != nil {
		return s.fail(ctx, err)
	}

	view, exists, err := s.h.ExistingOrder.Handle(ctx.Request().Context(), q)
	if err != nil {
		return s.fail(ctx, err)
	}

	response := servers.ExistingOrder{Exists: exists}
	if exists {
		o := toOrder(view)
		response.Order = &o
	}
	return ctx.JSON(http.StatusOK, response)
}

// CancelOrder handles POST /orders/{orderId}/cancel.
func (s *Server) CancelOrder(ctx echo.Context, orderID servers.OrderId) error {
	cmd, err := commands.NewCancelOrderCommand(actorID(ctx), kernel.UUIDFromGoogle(orderID))
	if err != nil {
		return s.fail(ctx, err)
	}
	if err = s.h.CancelOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// ReceiveOrder handles POST /orders/{orderId}/receive.
func (s *Server) ReceiveOrder(ctx echo.Context, orderID servers.OrderId) error {
	cmd, err := commands.NewReceiveOrderCommand(actorID(ctx), kernel.UUIDFromGoogle(orderID))
	if err != nil {
		return s.fail(ctx, err)
	}
	if err = s.h.ReceiveOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// GetFavorites handles GET /favorites.
func (s *Server) GetFavorites(ctx echo.Context) error {
	q, err := queries.NewGetFavoritesQuery(actorID(ctx))
	if err != nil {
		return s.fail(ctx, err)
	}

	ids, err := s.h.Favorites.Handle(ctx.Request().Context(), q)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, ids)
}

// ToggleFavorite handles POST /favorites/{productId}/toggle.
func (s *Server) ToggleFavorite(ctx echo.Context, productID string) error {
	cmd, err := commands.NewToggleFavoriteCommand(actorID(ctx), productID)
	if err != nil {
		return s.fail(ctx, err)
	}

	on, err := s.h.ToggleFavorite.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, servers.FavoriteState{ProductId: productID, Favorite: on})
}

// GetAdminOrders handles GET /admin/orders.
func (s *Server) GetAdminOrders(ctx echo.Context, params servers.GetAdminOrdersParams) error {
	filter := queries.AdminOrdersFilter{
		DeliveryDate: optionalDate(params.DeliveryDate),
		Grade:        deref(params.Grade),
		Page:         deref(params.Page),
		PageSize:     deref(params.PageSize),
	}

	q, err := queries.NewGetAdminOrdersQuery(actorID(ctx), filter)
	if err != nil {
		return s.fail(ctx, err)
	}

	view, err := s.h.AdminOrders.Handle(ctx.Request().Context(), q)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.AdminOrders{
		Groups:      toGroups(view.Groups),
		Summary:     toSummary(view.Summary),
		Page:        view.Page,
		PageSize:    view.PageSize,
		TotalGroups: view.TotalGroups,
	})
}

// BulkDeleteOrders handles DELETE /admin/orders.
func (s *Server) BulkDeleteOrders(ctx echo.Context, params servers.BulkDeleteOrdersParams) error {
	cmd, err := commands.NewBulkDeleteOrdersCommand(
		actorID(ctx),
		commands.BulkDeleteScope(params.Scope),
		optionalDate(params.DeliveryDate),
	)
	if err != nil {
		return s.fail(ctx, err)
	}

	deleted, err := s.h.BulkDelete.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, servers.AffectedCount{Count: deleted})
}

// DeleteOrder handles DELETE /admin/orders/{orderId}.
func (s *Server) DeleteOrder(ctx echo.Context, orderID servers.OrderId) error {
	cmd, err := commands.NewDeleteOrderCommand(actorID(ctx), kernel.UUIDFromGoogle(orderID))
	if err != nil {
		return s.fail(ctx, err)
	}
	if err = s.h.DeleteOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// ResetReceived handles POST /admin/orders/{orderId}/reset-received.
func (s *Server) ResetReceived(ctx echo.Context, orderID servers.OrderId) error {
	cmd, err := commands.NewResetReceivedCommand(actorID(ctx), kernel.UUIDFromGoogle(orderID))
	if err != nil {
		return s.fail(ctx, err)
	}
	if err = s.h.ResetReceived.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// GetPrintOrders handles GET /admin/print.
func (s *Server) GetPrintOrders(ctx echo.Context, params servers.GetPrintOrdersParams) error {
	q, err := queries.NewGetPrintOrdersQuery(actorID(ctx), deref(params.Grade))
	if err != nil {
		return s.fail(ctx, err)
	}

	groups, err := s.h.PrintOrders.Handle(ctx.Request().Context(), q)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toGroups(groups))
}

// GetPickList handles GET /admin/pick-list. The workbook is buffered so a
// failed render still yields a JSON error.
func (s *Server) GetPickList(ctx echo.Context, params servers.GetPickListParams) error {
	date := fromAPIDate(params.DeliveryDate)
	q, err := queries.NewGetPickListQuery(actorID(ctx), date)
	if err != nil {
		return s.fail(ctx, err)
	}

	var buf bytes.Buffer
	if err = s.h.PickList.Handle(ctx.Request().Context(), q, &buf); err != nil {
		return s.fail(ctx, err)
	}

	ctx.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="picklist-%s.xlsx"`, date))
	return ctx.Blob(http.StatusOK, excel.ContentType, buf.Bytes())
}

// ListStudents handles GET /admin/students.
func (s *Server) ListStudents(ctx echo.Context, params servers.ListStudentsParams) error {
	q, err := queries.NewListStudentsQuery(actorID(ctx), deref(params.Grade))
	if err != nil {
		return s.fail(ctx, err)
	}

	students, err := s.h.ListStudents.Handle(ctx.Request().Context(), q)
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]servers.Student, len(students))
	for i, st := range students {
		response[i] = toStudent(st)
	}
	return ctx.JSON(http.StatusOK, response)
}

// CreateStudent handles POST /admin/students.
func (s *Server) CreateStudent(ctx echo.Context) error {
	var body servers.CreateStudentJSONRequestBody
	if err := s.bindAndValidate(ctx, &body); err != nil {
		return err
	}

	cmd, err := commands.NewCreateStudentCommand(actorID(ctx), body.Id, commands.StudentProfile{
		Name:      body.Name,
		ClassName: body.ClassName,
		Grade:     body.Grade,
		IsActive:  body.IsActive,
	})
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.h.Students.HandleCreate(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}
	return ctx.NoContent(http.StatusCreated)
}

// UpdateStudent handles PUT /admin/students/{studentId}.
func (s *Server) UpdateStudent(ctx echo.Context, studentID servers.StudentId) error {
	var body servers.UpdateStudentJSONRequestBody
	if err := s.bindAndValidate(ctx, &body); err != nil {
		return err
	}

	cmd, err := commands.NewUpdateStudentCommand(actorID(ctx), studentID, commands.StudentProfile{
		Name:      body.Name,
		ClassName: body.ClassName,
		Grade:     body.Grade,
		IsActive:  body.IsActive,
	})
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.h.Students.HandleUpdate(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// DeleteStudent handles DELETE /admin/students/{studentId}.
func (s *Server) DeleteStudent(ctx echo.Context, studentID servers.StudentId) error {
	cmd, err := commands.NewDeleteStudentCommand(actorID(ctx), studentID)
	if err != nil {
		return s.fail(ctx, err)
	}
	if err = s.h.Students.HandleDelete(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// BulkUpdateGrade handles POST /admin/students/grade-moves.
func (s *Server) BulkUpdateGrade(ctx echo.Context) error {
	var body servers.BulkUpdateGradeJSONRequestBody
	if err := s.bindAndValidate(ctx, &body); err != nil {
		return err
	}

	cmd, err := commands.NewBulkUpdateGradeCommand(actorID(ctx), body.FromGrade, body.ToGrade)
	if err != nil {
		return s.fail(ctx, err)
	}

	moved, err := s.h.Students.HandleBulkUpdateGrade(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, servers.AffectedCount{Count: moved})
}

func (s *Server) bindAndValidate(ctx echo.Context, body any) error {
	if err := ctx.Bind(body); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: msgBadRequest,
		})
	}
	if err := ctx.Validate(body); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: msgBadRequest,
		})
	}
	return nil
}
