// Command customer-reengagement prints the customers who have not ordered
// recently but rank in the top percentile by spend, order count or average
// order value.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/truegloryhair/commerce-reports/common"
	"github.com/truegloryhair/commerce-reports/errorreporting"
	"github.com/truegloryhair/commerce-reports/framework/connection"
	"github.com/truegloryhair/commerce-reports/logger"
	"github.com/truegloryhair/commerce-reports/reengagement/domain"
	"github.com/truegloryhair/commerce-reports/reengagement/service"
)

func main() {
	os.Exit(exitCode(os.Stderr, run()))
}

// exitCode prints err unchanged to w.
func exitCode(w io.Writer, err error) int {
	if err == nil {
		return 0
	}

	fmt.Fprintln(w, err)

	return 1
}

func run() error {
	ctx := context.Background()

	cfg, err := common.LoadReportConfig()
	if err != nil {
		return err
	}

	logging, err := logger.NewLogging(ctx)
	if err != nil {
		return err
	}
	defer logging.Close()

	if err := errorreporting.Init(ctx); err != nil {
		return err
	}
	defer errorreporting.Close()

	l := logger.New()
	l.SetLabel("report", "customer-reengagement")
	ctx = logger.WithLogger(ctx, l)

	conn, err := connection.NewConnection(ctx, logging, false)
	if err != nil {
		return err
	}
	defer conn.Close()

	s := service.NewReengagementService(logger.FromContext, conn)

	criteria := domain.Criteria{
		RecencyDays: cfg.RecencyDays,
		Percentile:  cfg.Percentile,
	}

	if _, err := s.Run(ctx, os.Stdout, criteria); err != nil {
		errorreporting.Report(err, nil)
		return err
	}

	return nil
}
