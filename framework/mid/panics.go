package mid

import (
	"fmt"
	"runtime/debug"
	"time"

	"github.com/getsentry/sentry-go"
	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-gonic/gin"

	"github.com/truegloryhair/commerce-reports/errorreporting"
	"github.com/truegloryhair/commerce-reports/framework/web"
	"github.com/truegloryhair/commerce-reports/internal"
	"github.com/truegloryhair/commerce-reports/logger"
)

const sentryFlushTimeout = 5 * time.Second

// Panics recovers from panics and converts the panic to an error.
func Panics() web.Middleware {
	f := func(after web.Handler) web.Handler {
		h := func(ctx *gin.Context) (err error) {
			v, ok := internal.DataFromContext(ctx)
			if !ok {
				return web.NewShutdownError("web value missing from context")
			}

			log := logger.FromContext(ctx)

			defer func() {
				if r := recover(); r != nil {
					stack := debug.Stack()
					err = fmt.Errorf("panic: %v", r)
					log.Errorf("%s: %s\n%s", v.TraceID, err, stack)

					errorreporting.Report(err, &errorreporting.Metadata{
						Req:   ctx.Request,
						Stack: stack,
					})

					if hub := sentrygin.GetHubFromContext(ctx); hub != nil {
						hub.WithScope(func(scope *sentry.Scope) {
							scope.SetTag("trace", v.TraceID)
							hub.Recover(err)
							sentry.Flush(sentryFlushTimeout)
						})
					}
				}
			}()

			return after(ctx)
		}

		return h
	}

	return f
}
