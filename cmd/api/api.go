package api

import (
	"net/http"
	"os"

	abandonedCheckoutsHandlers "github.com/truegloryhair/commerce-reports/abandonedcheckouts/handlers"
	"github.com/truegloryhair/commerce-reports/cmd/api/handlers"
	"github.com/truegloryhair/commerce-reports/common"
	"github.com/truegloryhair/commerce-reports/framework/connection"
	"github.com/truegloryhair/commerce-reports/framework/mid"
	"github.com/truegloryhair/commerce-reports/framework/web"
	"github.com/truegloryhair/commerce-reports/logger"
	reengagementHandlers "github.com/truegloryhair/commerce-reports/reengagement/handlers"
)

const reportLabel = "report"

// API constructs an api with the needed functionality.
type API struct {
	shutdown chan os.Signal
	log      *logger.Logging
	conn     *connection.Connection
	cfg      *common.ReportConfig
}

func NewAPI(shutdown chan os.Signal, logging *logger.Logging, conn *connection.Connection, cfg *common.ReportConfig) *API {
	return &API{
		shutdown,
		logging,
		conn,
		cfg,
	}
}

// Build builds the api endpoints with the needed middlewares, and returns http.Handler interface.
func (a *API) Build() http.Handler {
	loggerProvider := logger.FromContext

	// Construct the web.App which holds all routes as well as common Middleware.
	app := web.NewApp(a.shutdown, a.conn, mid.Logger(), mid.Errors(), mid.Panics(), mid.Sentry())

	abandonedCheckouts := abandonedCheckoutsHandlers.NewAbandonedCheckoutsHandler(loggerProvider, a.conn, a.cfg)
	reengagement := reengagementHandlers.NewReengagementHandler(loggerProvider, a.conn, a.cfg)

	app.Get("/health", handlers.Health)

	// SCHEDULED OR CLOUD TASKS
	tasksGroup := web.NewGroup(app, "/tasks")
	{
		tasksGroup.Post("/abandoned-checkouts", abandonedCheckouts.RunAnalysis,
			mid.LoggerLabels(map[string]string{reportLabel: "abandoned-checkouts"}),
		)
		tasksGroup.Post("/customer-reengagement", reengagement.FindCustomers,
			mid.LoggerLabels(map[string]string{reportLabel: "customer-reengagement"}),
		)
	}

	return app
}
