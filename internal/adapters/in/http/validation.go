package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"
	"github.com/getkin/kin-openapi/routers/legacy"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// bodyValidator plugs validator/v10 into echo.Context.Validate.
type bodyValidator struct {
	validate *validator.Validate
}

func newBodyValidator() *bodyValidator {
	return &bodyValidator{validate: validator.New(validator.WithRequiredStructEnabled())}
}

func (v *bodyValidator) Validate(i any) error {
	return v.validate.Struct(i)
}

// requestValidator checks every request under basePath against the API
// contract. Paths the contract does not know are left to the router.
func requestValidator(swagger *openapi3.T, basePath string) (echo.MiddlewareFunc, error) {
	swagger.Servers = nil
	router, err := legacy.NewRouter(swagger)
	if err != nil {
		return nil, fmt.Errorf("build openapi router: %w", err)
	}

	options := &openapi3filter.Options{
		AuthenticationFunc: openapi3filter.NoopAuthenticationFunc,
		MultiError:         false,
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			req := ctx.Request()
			path, ok := strings.CutPrefix(req.URL.Path, basePath)
			if !ok {
				return next(ctx)
			}

			original := req.URL
			u := *original
			u.Path = path
			u.RawPath = ""
			req.URL = &u
			err := validateRequest(req.Context(), router, req, options)
			req.URL = original

			var routeErr *routers.RouteError
			if errors.As(err, &routeErr) {
				return next(ctx)
			}
			if err != nil {
				return echo.NewHTTPError(http.StatusBadRequest).SetInternal(err)
			}
			return next(ctx)
		}
	}, nil
}

func validateRequest(ctx context.Context, router routers.Router, req *http.Request, options *openapi3filter.Options) error {
	route, pathParams, err := router.FindRoute(req)
	if err != nil {
		return err
	}

	return openapi3filter.ValidateRequest(ctx, &openapi3filter.RequestValidationInput{
		Request:    req,
		PathParams: pathParams,
		Route:      route,
		Options:    options,
	})
}
