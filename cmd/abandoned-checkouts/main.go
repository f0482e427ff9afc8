// Command abandoned-checkouts prints the abandoned checkout breakdowns by
// product title, cart size and hour of day, and renders them as bar charts.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/truegloryhair/commerce-reports/abandonedcheckouts/service"
	"github.com/truegloryhair/commerce-reports/charts"
	"github.com/truegloryhair/commerce-reports/common"
	"github.com/truegloryhair/commerce-reports/errorreporting"
	"github.com/truegloryhair/commerce-reports/framework/connection"
	"github.com/truegloryhair/commerce-reports/logger"
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
	l.SetLabel("report", "abandoned-checkouts")
	ctx = logger.WithLogger(ctx, l)

	conn, err := connection.NewConnection(ctx, logging, cfg.ChartsBucket != "")
	if err != nil {
		return err
	}
	defer conn.Close()

	s := service.NewAbandonedCheckoutsService(logger.FromContext, conn)
	sink := charts.NewSink(cfg.OutputDir, conn.CloudStorage(ctx), cfg.ChartsBucket, cfg.ChartsPrefix)

	if _, err := s.Run(ctx, os.Stdout, sink); err != nil {
		errorreporting.Report(err, nil)
		return err
	}

	return nil
}
