package mid

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/truegloryhair/commerce-reports/errorreporting"
	"github.com/truegloryhair/commerce-reports/framework/web"
	"github.com/truegloryhair/commerce-reports/internal"
	"github.com/truegloryhair/commerce-reports/logger"
)

// Errors handles errors coming out of the call chain. It detects normal
// application errors which are used to respond to the client in a uniform way.
// Server side failures are sent to error reporting.
func Errors() web.Middleware {
	f := func(before web.Handler) web.Handler {
		h := func(ctx *gin.Context) error {
			v, ok := internal.DataFromContext(ctx)
			if !ok {
				return web.NewShutdownError("web value missing from context")
			}

			log := logger.FromContext(ctx)

			if err := before(ctx); err != nil {
				log.Errorf("%s: ERROR: %v", v.TraceID, err)

				if isServerError(err) {
					errorreporting.ReportRequestError(ctx, err)
				}

				if err := web.RespondError(ctx, err); err != nil {
					return err
				}

				// If we receive the shutdown err we need to return it
				// back to the base handler to shutdown the service.
				if ok := web.IsShutdown(err); ok {
					return err
				}
			}

			return nil
		}

		return h
	}

	return f
}

func isServerError(err error) bool {
	var webErr *web.Error
	if errors.As(err, &webErr) {
		return webErr.Status >= http.StatusInternalServerError
	}

	return true
}
