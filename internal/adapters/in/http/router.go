package http

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"sync"

	"schoollunch/internal/generated/servers"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	echoSwagger "github.com/swaggo/echo-swagger"
	"github.com/swaggo/swag"
)

// BasePath prefixes every API route.
const BasePath = "/api/v1"

type RouterConfig struct {
	JWTSecret string
	Logger    *slog.Logger
}

// NewRouter builds the echo instance. API routes sit behind bearer
// authentication and contract validation; /health and /swagger/* are open.
func NewRouter(server *Server, cfg RouterConfig) (*echo.Echo, error) {
	swagger, err := servers.GetSwagger()
	if err != nil {
		return nil, err
	}
	if err = registerSwaggerDoc(); err != nil {
		return nil, err
	}

	validate, err := requestValidator(swagger, BasePath)
	if err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Logger.SetLevel(gommonLevel(cfg.Logger))
	e.Validator = newBodyValidator()
	e.HTTPErrorHandler = errorHandler(cfg.Logger)

	e.Use(middleware.Recover())
	e.Use(requestLogger(cfg.Logger))

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group(BasePath, authenticate(NewTokenVerifier(cfg.JWTSecret)), validate)
	servers.RegisterHandlers(api, server)

	return e, nil
}

func requestLogger(logger *slog.Logger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus:    true,
		LogURI:       true,
		LogMethod:    true,
		LogLatency:   true,
		LogRemoteIP:  true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			level := slog.LevelInfo
			switch {
			case v.Status >= http.StatusInternalServerError:
				level = slog.LevelError
			case v.Status >= http.StatusBadRequest:
				level = slog.LevelWarn
			}

			attrs := []slog.Attr{
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
				slog.String("remote_ip", v.RemoteIP),
			}
			if actor := actorID(c); actor != "" {
				attrs = append(attrs, slog.String("actor_id", actor))
			}
			if v.Error != nil {
				attrs = append(attrs, slog.String("error", v.Error.Error()))
			}
			logger.LogAttrs(c.Request().Context(), level, "request", attrs...)
			return nil
		},
	})
}

func gommonLevel(logger *slog.Logger) log.Lvl {
	ctx := context.Background()
	switch {
	case logger.Enabled(ctx, slog.LevelDebug):
		return log.DEBUG
	case logger.Enabled(ctx, slog.LevelInfo):
		return log.INFO
	case logger.Enabled(ctx, slog.LevelWarn):
		return log.WARN
	default:
		return log.ERROR
	}
}

// swaggerDoc serves the embedded contract as JSON to echo-swagger.
type swaggerDoc struct {
	doc string
}

func (d swaggerDoc) ReadDoc() string { return d.doc }

var (
	registerSwaggerOnce sync.Once
	registerSwaggerErr  error
)

// registerSwaggerDoc publishes the contract under swag's default instance.
// swag panics on a second registration, hence the once.
func registerSwaggerDoc() error {
	registerSwaggerOnce.Do(func() {
		swagger, err := servers.GetSwagger()
		if err != nil {
			registerSwaggerErr = err
			return
		}
		raw, err := json.Marshal(swagger)
		if err != nil {
			registerSwaggerErr = fmt.Errorf("encode swagger doc: %w", err)
			return
		}
		swag.Register(swag.Name, swaggerDoc{doc: string(raw)})
	})
	return registerSwaggerErr
}
