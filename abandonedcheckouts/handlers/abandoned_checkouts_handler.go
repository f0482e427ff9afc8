package handlers

import (
	"bytes"
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/truegloryhair/commerce-reports/abandonedcheckouts/service"
	serviceIface "github.com/truegloryhair/commerce-reports/abandonedcheckouts/service/iface"
	"github.com/truegloryhair/commerce-reports/charts"
	"github.com/truegloryhair/commerce-reports/common"
	"github.com/truegloryhair/commerce-reports/framework/connection"
	"github.com/truegloryhair/commerce-reports/framework/web"
	"github.com/truegloryhair/commerce-reports/logger"
)

type AbandonedCheckoutsHandler struct {
	loggerProvider logger.Provider
	service        serviceIface.AbandonedCheckoutsService
	sink           charts.Sink
}

func NewAbandonedCheckoutsHandler(log logger.Provider, conn *connection.Connection, cfg *common.ReportConfig) *AbandonedCheckoutsHandler {
	s := service.NewAbandonedCheckoutsService(log, conn)

	return &AbandonedCheckoutsHandler{
		log,
		s,
		charts.NewSink(cfg.OutputDir, conn.CloudStorage(context.Background()), cfg.ChartsBucket, cfg.ChartsPrefix),
	}
}

// RunAnalysis runs the abandoned checkouts analysis. The console tables are
// written to the request log and the summary is returned as JSON.
func (h *AbandonedCheckoutsHandler) RunAnalysis(ctx *gin.Context) error {
	l := h.loggerProvider(ctx)

	var out bytes.Buffer

	summary, err := h.service.Run(ctx, &out, h.sink)
	if err != nil {
		return web.NewRequestError(err, http.StatusInternalServerError)
	}

	l.Info(out.String())

	return web.Respond(ctx, summary, http.StatusOK)
}
