package health

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/viewkit/core/handler"
	"github.com/dmitrymomot/viewkit/core/logger"
	"github.com/dmitrymomot/viewkit/core/response"
)

// ErrNotReady is reported with 503 when a readiness check fails.
var ErrNotReady error = unavailable{}

type unavailable struct{}

func (unavailable) Error() string   { return "service unavailable" }
func (unavailable) StatusCode() int { return http.StatusServiceUnavailable }

// Readiness answers "READY" when every check passes and 503 otherwise.
// Failures are logged; their details are not exposed to the client.
func Readiness[C handler.Context](log *slog.Logger, checks ...func(context.Context) error) handler.HandlerFunc[C] {
	if log == nil {
		log = logger.Nop()
	}
	return func(ctx C) handler.Response {
		var errs []error
		for _, check := range checks {
			if err := check(ctx); err != nil {
				errs = append(errs, err)
			}
		}
		if err := errors.Join(errs...); err != nil {
			log.ErrorContext(ctx, "readiness check failed", logger.Component("health"), logger.Error(err))
			return response.Error(ErrNotReady)
		}
		return response.String("READY")
	}
}
