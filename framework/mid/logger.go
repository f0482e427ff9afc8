package mid

import (
	"github.com/gin-gonic/gin"

	"github.com/truegloryhair/commerce-reports/framework/web"
	"github.com/truegloryhair/commerce-reports/internal"
	"github.com/truegloryhair/commerce-reports/logger"
)

const (
	healthCheckExcludePath = "/health"
)

// Logger writes some information about the request to the logs in the
// format: TraceID : (200) POST /tasks/foo -> IP ADDR (latency)
func Logger() web.Middleware {
	f := func(before web.Handler) web.Handler {
		h := func(ctx *gin.Context) error {
			if ctx.Request.URL.Path == healthCheckExcludePath {
				return before(ctx)
			}

			v, ok := internal.DataFromContext(ctx)
			if !ok {
				return web.NewShutdownError("web value missing from context")
			}

			log := logger.FromContext(ctx)
			log.SetLabel("route", ctx.FullPath())

			log.Printf("%s: started : %s %s -> %s",
				v.TraceID,
				ctx.Request.Method, ctx.Request.URL.Path, ctx.ClientIP(),
			)

			err := before(ctx)

			if err != nil {
				log.Printf("ERROR: %s", err)
			} else if v.Failed() {
				if lastErr := ctx.Errors.Last(); lastErr != nil {
					log.Errorf("Request fails %s", lastErr)
				}
			}

			log.Printf("%s: completed : %s %s -> %s (%d) (%s)",
				v.TraceID,
				ctx.Request.Method, ctx.Request.URL.Path, ctx.ClientIP(),
				v.StatusCode, v.Elapsed(),
			)

			return err
		}

		return h
	}

	return f
}

// LoggerLabels attaches labels to every entry written by the request logger.
func LoggerLabels(labels map[string]string) web.Middleware {
	f := func(before web.Handler) web.Handler {
		h := func(ctx *gin.Context) error {
			logger.FromContext(ctx).SetLabels(labels)

			return before(ctx)
		}

		return h
	}

	return f
}
