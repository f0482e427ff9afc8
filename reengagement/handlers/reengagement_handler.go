package handlers

import (
	"bytes"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/truegloryhair/commerce-reports/common"
	"github.com/truegloryhair/commerce-reports/framework/connection"
	"github.com/truegloryhair/commerce-reports/framework/web"
	"github.com/truegloryhair/commerce-reports/logger"
	"github.com/truegloryhair/commerce-reports/reengagement/domain"
	"github.com/truegloryhair/commerce-reports/reengagement/service"
	serviceIface "github.com/truegloryhair/commerce-reports/reengagement/service/iface"
)

// RunRequest overrides the configured criteria for a single run.
type RunRequest struct {
	RecencyDays *int     `json:"recencyDays" validate:"omitempty,min=0"`
	Percentile  *float64 `json:"percentile" validate:"omitempty,gt=0,lte=1"`
}

type ReengagementHandler struct {
	loggerProvider logger.Provider
	service        serviceIface.ReengagementService
	defaults       domain.Criteria
}

func NewReengagementHandler(log logger.Provider, conn *connection.Connection, cfg *common.ReportConfig) *ReengagementHandler {
	s := service.NewReengagementService(log, conn)

	return &ReengagementHandler{
		log,
		s,
		domain.Criteria{
			RecencyDays: cfg.RecencyDays,
			Percentile:  cfg.Percentile,
		},
	}
}

// FindCustomers runs the re-engagement selection. The customer lines are
// written to the request log and the result is returned as JSON.
func (h *ReengagementHandler) FindCustomers(ctx *gin.Context) error {
	l := h.loggerProvider(ctx)

	criteria, err := h.criteria(ctx)
	if err != nil {
		return web.NewRequestError(err, http.StatusBadRequest)
	}

	var out bytes.Buffer

	result, err := h.service.Run(ctx, &out, criteria)
	if err != nil {
		return web.NewRequestError(err, http.StatusInternalServerError)
	}

	l.Info(out.String())

	return web.Respond(ctx, result, http.StatusOK)
}

func (h *ReengagementHandler) criteria(ctx *gin.Context) (domain.Criteria, error) {
	criteria := h.defaults

	var req RunRequest

	if ctx.Request.Body != nil {
		if err := ctx.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
			return criteria, err
		}
	}

	validate := validator.New()

	if err := validate.Struct(req); err != nil {
		return criteria, err
	}

	if req.RecencyDays != nil {
		criteria.RecencyDays = *req.RecencyDays
	}

	if req.Percentile != nil {
		criteria.Percentile = *req.Percentile
	}

	return criteria, nil
}
