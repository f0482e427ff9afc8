package iface

import (
	"context"
	"io"

	"github.com/truegloryhair/commerce-reports/abandonedcheckouts/domain"
	"github.com/truegloryhair/commerce-reports/charts"
)

//go:generate mockery --name AbandonedCheckoutsService --output ../mocks --case=underscore
type AbandonedCheckoutsService interface {
	Analyze(ctx context.Context) (*domain.Summary, error)
	PrintReport(w io.Writer, summary *domain.Summary) error
	RenderCharts(ctx context.Context, summary *domain.Summary, sink charts.Sink) error
	Run(ctx context.Context, w io.Writer, sink charts.Sink) (*domain.Summary, error)
}
