package http

import (
	"errors"
	"log/slog"
	"net/http"

	"schoollunch/internal/core/application/usecases/commands"
	"schoollunch/internal/core/domain/model/order"
	"schoollunch/internal/core/ports"
	"schoollunch/internal/generated/servers"
	"schoollunch/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

const (
	msgBadRequest      = "入力内容が正しくありません"
	msgUnauthenticated = "認証されていません"
	msgForbidden       = "この操作を行う権限がありません"
	msgNotFound        = "対象が見つかりません"
	msgRouteNotFound   = "ページが見つかりません"
	msgFailed          = "処理に失敗しました"
)

type errorResponse struct {
	target  error
	status  int
	message string
}

// errorResponses is checked in order; domain sentinels come before the
// generic validation sentinels they might wrap.
var errorResponses = []errorResponse{
	{order.ErrDeadlinePassed, http.StatusUnprocessableEntity, "注文締切時間を過ぎています"},
	{order.ErrNotDeliveryDay, http.StatusUnprocessableEntity, "選択された日は配達日ではありません"},
	{order.ErrProductNotFound, http.StatusUnprocessableEntity, "商品が見つかりません"},
	{order.ErrProductUnavailable, http.StatusUnprocessableEntity, "販売していない商品が含まれています"},
	{order.ErrDuplicateActiveOrder, http.StatusConflict,
		"この配達日の注文が既に存在します。変更する場合は、既存の注文をキャンセルしてから新しい注文を作成してください。"},
	{order.ErrAlreadyCancelled, http.StatusConflict, "この注文はすでにキャンセルされています"},
	{order.ErrAlreadyReceived, http.StatusConflict, "この注文はすでに受け取り済みです"},
	{ports.ErrOrderSlotBusy, http.StatusConflict, "同じ配達日の注文を処理中です。しばらくしてから再度お試しください"},
	{errs.ErrForbidden, http.StatusForbidden, msgForbidden},
	{errs.ErrObjectNotFound, http.StatusNotFound, msgNotFound},
	{errs.ErrValueIsRequired, http.StatusBadRequest, msgBadRequest},
	{errs.ErrValueIsOutOfRange, http.StatusBadRequest, msgBadRequest},
	{errs.ErrValueIsInvalid, http.StatusBadRequest, msgBadRequest},
}

// toErrorResponse maps err to a status and a caller-facing message. The
// second result is false when err is not a known rule violation.
func toErrorResponse(err error) (servers.Error, bool) {
	for _, r := range errorResponses {
		if errors.Is(err, r.target) {
			return servers.Error{Code: r.status, Message: r.message}, true
		}
	}
	return servers.Error{Code: http.StatusInternalServerError, Message: msgFailed}, false
}

// fail writes the error response for a use-case error. Causes of
// unexpected errors are logged and never sent to the caller.
func (s *Server) fail(ctx echo.Context, err error) error {
	response, known := toErrorResponse(err)
	if !known && !errors.Is(err, commands.ErrOperationFailed) {
		s.logger.ErrorContext(ctx.Request().Context(), "request failed",
			"method", ctx.Request().Method,
			"path", ctx.Path(),
			"error", err,
		)
	}
	return ctx.JSON(response.Code, response)
}

// errorHandler renders errors returned by middleware and parameter binding
// in the API error shape.
func errorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, ctx echo.Context) {
		if ctx.Response().Committed {
			return
		}

		response := servers.Error{Code: http.StatusInternalServerError, Message: msgFailed}
		var he *echo.HTTPError
		if errors.As(err, &he) {
			response.Code = he.Code
			switch he.Code {
			case http.StatusBadRequest:
				response.Message = msgBadRequest
			case http.StatusUnauthorized:
				response.Message = msgUnauthenticated
			case http.StatusForbidden:
				response.Message = msgForbidden
			case http.StatusNotFound, http.StatusMethodNotAllowed:
				response.Message = msgRouteNotFound
			}
		}
		if response.Code >= http.StatusInternalServerError {
			logger.ErrorContext(ctx.Request().Context(), "unhandled error", "path", ctx.Path(), "error", err)
		}

		var writeErr error
		if ctx.Request().Method == http.MethodHead {
			writeErr = ctx.NoContent(response.Code)
		} else {
			writeErr = ctx.JSON(response.Code, response)
		}
		if writeErr != nil {
			logger.ErrorContext(ctx.Request().Context(), "write error response", "error", writeErr)
		}
	}
}
