package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	api "schoollunch/internal/adapters/in/http"
	"schoollunch/internal/core/application/usecases/commands"
	"schoollunch/internal/core/application/usecases/queries"
	"schoollunch/internal/core/domain/model/kernel"
	"schoollunch/internal/core/domain/model/order"
	"schoollunch/internal/core/domain/services"
	"schoollunch/internal/core/ports"
	"schoollunch/internal/generated/servers"
	"schoollunch/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const secret = "test-secret"

type commandFunc[C any] func(context.Context, C) error

func (f commandFunc[C]) Handle(ctx context.Context, cmd C) error { return f(ctx, cmd) }

type handleFunc[In, Out any] func(context.Context, In) (Out, error)

func (f handleFunc[In, Out]) Handle(ctx context.Context, in In) (Out, error) { return f(ctx, in) }

type pickListFunc func(context.Context, queries.GetPickListQuery, io.Writer) error

func (f pickListFunc) Handle(ctx context.Context, q queries.GetPickListQuery, w io.Writer) error {
	return f(ctx, q, w)
}

type MockStudentCommands struct{ mock.Mock }

func (m *MockStudentCommands) HandleCreate(ctx context.Context, cmd commands.SaveStudentCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

func (m *MockStudentCommands) HandleUpdate(ctx context.Context, cmd commands.SaveStudentCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

func (m *MockStudentCommands) HandleRegister(ctx context.Context, cmd commands.RegisterStudentCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

func (m *MockStudentCommands) HandleBulkUpdateGrade(ctx context.Context, cmd commands.BulkUpdateGradeCommand) (int64, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStudentCommands) HandleDelete(ctx context.Context, cmd commands.DeleteStudentCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

func newTestRouter(t *testing.T, h api.Handlers) *echo.Echo {
	t.Helper()
	logger := slog.New(slog.DiscardHandler)
	e, err := api.NewRouter(api.NewServer(h, logger), api.RouterConfig{JWTSecret: secret, Logger: logger})
	require.NoError(t, err)
	return e
}

func bearer(t *testing.T, userID string) string {
	t.Helper()
	token, err := api.NewTokenVerifier(secret).Issue(userID, time.Hour)
	require.NoError(t, err)
	return "Bearer " + token
}

func do(t *testing.T, e *echo.Echo, method, target, auth, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if auth != "" {
		req.Header.Set(echo.HeaderAuthorization, auth)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) servers.Error {
	t.Helper()
	var body servers.Error
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestHealth_IsOpen(t *testing.T) {
	e := newTestRouter(t, api.Handlers{})

	rec := do(t, e, http.MethodGet, "/health", "", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Healthy", rec.Body.String())
}

func TestSwaggerDoc_ServesContract(t *testing.T) {
	e := newTestRouter(t, api.Handlers{})

	rec := do(t, e, http.MethodGet, "/swagger/doc.json", "", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "School Lunch Ordering API")
}

func TestAPI_RequiresValidBearerToken(t *testing.T) {
	e := newTestRouter(t, api.Handlers{})

	expired, err := api.NewTokenVerifier(secret).Issue("student-1", -time.Hour)
	require.NoError(t, err)
	foreign, err := api.NewTokenVerifier("other-secret").Issue("student-1", time.Hour)
	require.NoError(t, err)

	tests := []struct {
		name string
		auth string
	}{
		{"missing", ""},
		{"not bearer", "Basic abc"},
		{"expired", "Bearer " + expired},
		{"wrong secret", "Bearer " + foreign},
		{"garbage", "Bearer not-a-jwt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, e, http.MethodGet, "/api/v1/products", tt.auth, "")

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Equal(t, "認証されていません", decodeError(t, rec).Message)
		})
	}
}

func TestPlaceOrder_Created(t *testing.T) {
	var got commands.PlaceOrderCommand
	e := newTestRouter(t, api.Handlers{
		PlaceOrder: commandFunc[commands.PlaceOrderCommand](func(_ context.Context, cmd commands.PlaceOrderCommand) error {
			got = cmd
			return nil
		}),
	})

	rec := do(t, e, http.MethodPost, "/api/v1/orders", bearer(t, "student-1"),
		`{"deliveryDate":"2025-03-10","items":[{"productId":"curry","quantity":2},{"productId":"salad","quantity":1}]}`)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var created servers.CreatedOrder
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, got.OrderID().Google(), created.Id)

	assert.Equal(t, "student-1", got.ActorID())
	assert.True(t, got.DeliveryDate().Equal(kernel.NewDate(2025, 3, 10)))
	assert.Equal(t, []services.OrderItem{
		{ProductID: "curry", Quantity: 2},
		{ProductID: "salad", Quantity: 1},
	}, got.Items())
}

func TestPlaceOrder_ErrorMapping(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{"deadline", order.ErrDeadlinePassed, http.StatusUnprocessableEntity, "注文締切時間を過ぎています"},
		{"product", fmt.Errorf("%w: curry", order.ErrProductNotFound), http.StatusUnprocessableEntity, "商品が見つかりません"},
		{"duplicate", order.ErrDuplicateActiveOrder, http.StatusConflict,
			"この配達日の注文が既に存在します。変更する場合は、既存の注文をキャンセルしてから新しい注文を作成してください。"},
		{"slot busy", ports.ErrOrderSlotBusy, http.StatusConflict, "同じ配達日の注文を処理中です。しばらくしてから再度お試しください"},
		{"forbidden", errs.NewForbiddenError("student-1", "place orders"), http.StatusForbidden, "この操作を行う権限がありません"},
		{"operation failed", fmt.Errorf("%w: place order", commands.ErrOperationFailed), http.StatusInternalServerError, "処理に失敗しました"},
		{"unexpected", errors.New("dial tcp 10.0.0.1:5432: connection refused"), http.StatusInternalServerError, "処理に失敗しました"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestRouter(t, api.Handlers{
				PlaceOrder: commandFunc[commands.PlaceOrderCommand](func(context.Context, commands.PlaceOrderCommand) error {
					return tt.err
				}),
			})

			rec := do(t, e, http.MethodPost, "/api/v1/orders", bearer(t, "student-1"),
				`{"deliveryDate":"2025-03-10","items":[{"productId":"curry","quantity":1}]}`)

			assert.Equal(t, tt.status, rec.Code)
			body := decodeError(t, rec)
			assert.Equal(t, tt.status, body.Code)
			assert.Equal(t, tt.message, body.Message)
			assert.NotContains(t, rec.Body.String(), "10.0.0.1")
		})
	}
}

func TestPlaceOrder_RejectsInvalidBody(t *testing.T) {
	called := false
	e := newTestRouter(t, api.Handlers{
		PlaceOrder: commandFunc[commands.PlaceOrderCommand](func(context.Context, commands.PlaceOrderCommand) error {
			called = true
			return nil
		}),
	})

	bodies := map[string]string{
		"zero quantity": `{"deliveryDate":"2025-03-10","items":[{"productId":"curry","quantity":0}]}`,
		"no items":      `{"deliveryDate":"2025-03-10","items":[]}`,
		"bad date":      `{"deliveryDate":"10/03/2025","items":[{"productId":"curry","quantity":1}]}`,
		"missing date":  `{"items":[{"productId":"curry","quantity":1}]}`,
	}

	for name, body := range bodies {
		t.Run(name, func(t *testing.T) {
			rec := do(t, e, http.MethodPost, "/api/v1/orders", bearer(t, "student-1"), body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, "入力内容が正しくありません", decodeError(t, rec).Message)
		})
	}
	assert.False(t, called)
}

func TestPlaceOrder_DuplicateProductIsRejectedByCommand(t *testing.T) {
	called := false
	e := newTestRouter(t, api.Handlers{
		PlaceOrder: commandFunc[commands.PlaceOrderCommand](func(context.Context, commands.PlaceOrderCommand) error {
			called = true
			return nil
		}),
	})

	rec := do(t, e, http.MethodPost, "/api/v1/orders", bearer(t, "student-1"),
		`{"deliveryDate":"2025-03-10","items":[{"productId":"curry","quantity":1},{"productId":"curry","quantity":2}]}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, called)
}

func TestCancelOrder(t *testing.T) {
	orderID := kernel.NewUUID()
	var got commands.CancelOrderCommand
	e := newTestRouter(t, api.Handlers{
		CancelOrder: commandFunc[commands.CancelOrderCommand](func(_ context.Context, cmd commands.CancelOrderCommand) error {
			got = cmd
			return nil
		}),
	})

	rec := do(t, e, http.MethodPost, "/api/v1/orders/"+orderID.String()+"/cancel", bearer(t, "student-1"), "")

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.True(t, got.OrderID().IsEqual(orderID))
	assert.Equal(t, "student-1", got.ActorID())

	rec = do(t, e, http.MethodPost, "/api/v1/orders/not-a-uuid/cancel", bearer(t, "student-1"), "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestReceiveOrder_AlreadyReceived(t *testing.T) {
	e := newTestRouter(t, api.Handlers{
		ReceiveOrder: commandFunc[commands.ReceiveOrderCommand](func(context.Context, commands.ReceiveOrderCommand) error {
			return order.ErrAlreadyReceived
		}),
	})

	rec := do(t, e, http.MethodPost, "/api/v1/orders/"+kernel.NewUUID().String()+"/receive", bearer(t, "student-1"), "")

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "この注文はすでに受け取り済みです", decodeError(t, rec).Message)
}

func TestGetOrders_MapsViews(t *testing.T) {
	orderID := kernel.NewUUID()
	created := time.Date(2025, 3, 5, 1, 0, 0, 0, time.UTC)
	e := newTestRouter(t, api.Handlers{
		StudentOrders: handleFunc[queries.GetStudentOrdersQuery, []queries.OrderView](
			func(context.Context, queries.GetStudentOrdersQuery) ([]queries.OrderView, error) {
				return []queries.OrderView{{
					ID:           orderID,
					DeliveryDate: kernel.NewDate(2025, 3, 10),
					Status:       order.Cancelled,
					TotalAmount:  900,
					CreatedAt:    created,
					Items: []queries.OrderItemView{
						{ProductID: "curry", ProductName: "カレーライス", Quantity: 2, UnitPrice: 450},
					},
				}}, nil
			}),
	})

	rec := do(t, e, http.MethodGet, "/api/v1/orders?limit=3", bearer(t, "student-1"), "")
	require.Equal(t, http.StatusOK, rec.Code)

	var got []servers.Order
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, orderID.Google(), got[0].Id)
	assert.Equal(t, servers.Cancelled, got[0].Status)
	assert.Equal(t, "2025-03-10", got[0].DeliveryDate.String())
	assert.Nil(t, got[0].Items[0].ImageUrl)
	assert.Equal(t, 900, got[0].TotalAmount)

	rec = do(t, e, http.MethodGet, "/api/v1/orders?limit=-1", bearer(t, "student-1"), "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCheckExistingOrder(t *testing.T) {
	e := newTestRouter(t, api.Handlers{
		ExistingOrder: existingOrderFunc(func(context.Context, queries.CheckExistingOrderQuery) (queries.OrderView, bool, error) {
			return queries.OrderView{}, false, nil
		}),
	})

	rec := do(t, e, http.MethodGet, "/api/v1/orders/existing?deliveryDate=2025-03-10", bearer(t, "student-1"), "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"exists":false}`, rec.Body.String())

	rec = do(t, e, http.MethodGet, "/api/v1/orders/existing", bearer(t, "student-1"), "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

type existingOrderFunc func(context.Context, queries.CheckExistingOrderQuery) (queries.OrderView, bool, error)

func (f existingOrderFunc) Handle(ctx context.Context, q queries.CheckExistingOrderQuery) (queries.OrderView, bool, error) {
	return f(ctx, q)
}

func TestToggleFavorite(t *testing.T) {
	e := newTestRouter(t, api.Handlers{
		ToggleFavorite: handleFunc[commands.ToggleFavoriteCommand, bool](func(_ context.Context, cmd commands.ToggleFavoriteCommand) (bool, error) {
			assert.Equal(t, "curry", cmd.Favorite().ProductID())
			return true, nil
		}),
	})

	rec := do(t, e, http.MethodPost, "/api/v1/favorites/curry/toggle", bearer(t, "student-1"), "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"productId":"curry","favorite":true}`, rec.Body.String())
}

func TestGetMe_UnknownUser(t *testing.T) {
	e := newTestRouter(t, api.Handlers{
		Me: handleFunc[queries.GetMeQuery, queries.MeView](func(context.Context, queries.GetMeQuery) (queries.MeView, error) {
			return queries.MeView{}, errs.NewObjectNotFoundError("userId", "stranger")
		}),
	})

	rec := do(t, e, http.MethodGet, "/api/v1/me", bearer(t, "stranger"), "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRegisterMe(t *testing.T) {
	students := new(MockStudentCommands)
	students.On("HandleRegister", mock.Anything, mock.MatchedBy(func(cmd commands.RegisterStudentCommand) bool {
		return cmd.ActorID() == "student-9"
	})).Return(nil).Once()
	e := newTestRouter(t, api.Handlers{Students: students})

	rec := do(t, e, http.MethodPost, "/api/v1/me", bearer(t, "student-9"), "")

	assert.Equal(t, http.StatusNoContent, rec.Code)
	students.AssertExpectations(t)
}

func TestGetAdminOrders_PassesFilter(t *testing.T) {
	monday := kernel.NewDate(2025, 3, 10)
	var got queries.AdminOrdersFilter
	e := newTestRouter(t, api.Handlers{
		AdminOrders: handleFunc[queries.GetAdminOrdersQuery, queries.AdminOrdersView](
			func(_ context.Context, q queries.GetAdminOrdersQuery) (queries.AdminOrdersView, error) {
				got = q.Filter()
				return queries.AdminOrdersView{
					Groups: []services.OrderGroup{{
						Grade:        2,
						ProductName:  "うどん",
						DeliveryDate: monday,
						Entries: []services.OrderGroupEntry{{
							OrderID: kernel.NewUUID(), StudentClassName: "A", StudentName: "鈴木一郎",
							Quantity: 1, DeliveryDate: monday,
						}},
					}},
					Summary: []services.DailySummary{{
						DeliveryDate: monday,
						Products:     []services.ProductQuantity{{ProductName: "うどん", TotalQuantity: 1}},
					}},
					Page: 3, PageSize: 5, TotalGroups: 11,
				}, nil
			}),
	})

	rec := do(t, e, http.MethodGet, "/api/v1/admin/orders?deliveryDate=2025-03-10&grade=2&page=3&pageSize=5", bearer(t, "teacher-1"), "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	require.NotNil(t, got.DeliveryDate)
	assert.True(t, got.DeliveryDate.Equal(monday))
	assert.Equal(t, 2, got.Grade)
	assert.Equal(t, 3, got.Page)
	assert.Equal(t, 5, got.PageSize)

	var body servers.AdminOrders
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 11, body.TotalGroups)
	require.Len(t, body.Groups, 1)
	assert.Equal(t, "鈴木一郎", body.Groups[0].Orders[0].StudentName)
	assert.Equal(t, 1, body.Summary[0].Products[0].TotalQuantity)
}

func TestGetAdminOrders_RejectsOutOfRangeParams(t *testing.T) {
	e := newTestRouter(t, api.Handlers{})

	for _, query := range []string{"pageSize=500", "page=0", "grade=7"} {
		rec := do(t, e, http.MethodGet, "/api/v1/admin/orders?"+query, bearer(t, "teacher-1"), "")
		assert.Equal(t, http.StatusBadRequest, rec.Code, query)
	}
}

func TestBulkDeleteOrders(t *testing.T) {
	var got commands.BulkDeleteOrdersCommand
	e := newTestRouter(t, api.Handlers{
		BulkDelete: handleFunc[commands.BulkDeleteOrdersCommand, int64](func(_ context.Context, cmd commands.BulkDeleteOrdersCommand) (int64, error) {
			got = cmd
			return 4, nil
		}),
	})

	rec := do(t, e, http.MethodDelete, "/api/v1/admin/orders?scope=byDeliveryDate&deliveryDate=2025-03-10", bearer(t, "teacher-1"), "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"count":4}`, rec.Body.String())
	assert.Equal(t, commands.BulkDeleteByDeliveryDate, got.Scope())

	rec = do(t, e, http.MethodDelete, "/api/v1/admin/orders?scope=byDeliveryDate", bearer(t, "teacher-1"), "")
	assert.Equal(t, http.StatusBadRequest, rec.Code, "a date is required for byDeliveryDate")

	rec = do(t, e, http.MethodDelete, "/api/v1/admin/orders?scope=everything", bearer(t, "teacher-1"), "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetPickList_ReturnsWorkbook(t *testing.T) {
	e := newTestRouter(t, api.Handlers{
		PickList: pickListFunc(func(_ context.Context, q queries.GetPickListQuery, w io.Writer) error {
			assert.True(t, q.DeliveryDate().Equal(kernel.NewDate(2025, 3, 10)))
			_, err := w.Write([]byte("PK"))
			return err
		}),
	})

	rec := do(t, e, http.MethodGet, "/api/v1/admin/pick-list?deliveryDate=2025-03-10", bearer(t, "teacher-1"), "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", rec.Header().Get(echo.HeaderContentType))
	assert.Contains(t, rec.Header().Get(echo.HeaderContentDisposition), "picklist-2025-03-10.xlsx")
	assert.Equal(t, "PK", rec.Body.String())
}

func TestGetPickList_Forbidden(t *testing.T) {
	e := newTestRouter(t, api.Handlers{
		PickList: pickListFunc(func(context.Context, queries.GetPickListQuery, io.Writer) error {
			return errs.NewForbiddenError("student-1", "view reports")
		}),
	})

	rec := do(t, e, http.MethodGet, "/api/v1/admin/pick-list?deliveryDate=2025-03-10", bearer(t, "student-1"), "")

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, echo.MIMEApplicationJSON, rec.Header().Get(echo.HeaderContentType))
}

func TestStudents_AdminEndpoints(t *testing.T) {
	students := new(MockStudentCommands)
	students.On("HandleCreate", mock.Anything, mock.MatchedBy(func(cmd commands.SaveStudentCommand) bool {
		return cmd.StudentID() == "student-4" && cmd.Profile() == commands.StudentProfile{
			Name: "高橋", ClassName: "C", Grade: 2, IsActive: true,
		}
	})).Return(nil).Once()
	students.On("HandleUpdate", mock.Anything, mock.MatchedBy(func(cmd commands.SaveStudentCommand) bool {
		return cmd.StudentID() == "student-4" && !cmd.Profile().IsActive
	})).Return(nil).Once()
	students.On("HandleBulkUpdateGrade", mock.Anything, mock.MatchedBy(func(cmd commands.BulkUpdateGradeCommand) bool {
		return cmd.FromGrade() == 2 && cmd.ToGrade() == 3
	})).Return(int64(31), nil).Once()
	students.On("HandleDelete", mock.Anything, mock.Anything).Return(errs.NewObjectNotFoundError("studentId", "student-4")).Once()

	e := newTestRouter(t, api.Handlers{Students: students})
	auth := bearer(t, "teacher-1")

	rec := do(t, e, http.MethodPost, "/api/v1/admin/students", auth,
		`{"id":"student-4","name":"高橋","className":"C","grade":2,"isActive":true}`)
	assert.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = do(t, e, http.MethodPut, "/api/v1/admin/students/student-4", auth,
		`{"name":"高橋","className":"C","grade":2,"isActive":false}`)
	assert.Equal(t, http.StatusNoContent, rec.Code, rec.Body.String())

	rec = do(t, e, http.MethodPost, "/api/v1/admin/students/grade-moves", auth, `{"fromGrade":2,"toGrade":3}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.JSONEq(t, `{"count":31}`, rec.Body.String())

	rec = do(t, e, http.MethodPost, "/api/v1/admin/students/grade-moves", auth, `{"fromGrade":2,"toGrade":2}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, e, http.MethodDelete, "/api/v1/admin/students/student-4", auth, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	students.AssertExpectations(t)
}
