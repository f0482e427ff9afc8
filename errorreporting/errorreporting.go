package errorreporting

import (
	"context"
	"log"
	"net/http"

	"cloud.google.com/go/errorreporting"
	"github.com/gin-gonic/gin"

	"github.com/truegloryhair/commerce-reports/common"
)

var erc *errorreporting.Client

type Metadata struct {
	Req   *http.Request
	User  string
	Stack []byte
}

// Init creates the error reporting client. It is a no-op on localhost, where
// reports are only logged.
func Init(ctx context.Context) error {
	if common.IsLocalhost || erc != nil {
		return nil
	}

	client, err := errorreporting.NewClient(ctx, common.ProjectID, errorreporting.Config{
		ServiceName:    common.GAEService,
		ServiceVersion: common.GAEVersion,
		OnError: func(err error) {
			log.Printf("errorreporting: could not report error: %s", err)
		},
	})
	if err != nil {
		return err
	}

	erc = client

	return nil
}

// Close flushes pending reports.
func Close() error {
	if erc == nil {
		return nil
	}

	err := erc.Close()
	erc = nil

	return err
}

func Report(err error, md *Metadata) {
	if err == nil || erc == nil {
		return
	}

	e := errorreporting.Entry{
		Error: err,
	}

	if md != nil {
		e.User = md.User
		e.Req = md.Req
		e.Stack = md.Stack
	}

	erc.Report(e)
}

func ReportRequestError(ctx *gin.Context, err error) {
	Report(err, &Metadata{
		Req: ctx.Request,
	})
}

func AbortWithErrorReport(ctx *gin.Context, code int, err error) {
	ReportRequestError(ctx, err)

	ctx.AbortWithError(code, err)
}
