// Package errs provides the typed errors shared by the lunch ordering service.
//
// Each error type pairs a sentinel (ErrObjectNotFound, ErrValueIsInvalid,
// ErrValueIsOutOfRange, ErrValueIsRequired, ErrForbidden) with a struct carrying the
// offending parameter and an optional cause. Unwrap returns the sentinel, so
// callers classify failures with errors.Is and inspect details with errors.As:
//
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    return echo.NewHTTPError(http.StatusNotFound)
//	}
package errs
