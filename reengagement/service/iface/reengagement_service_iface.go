package iface

import (
	"context"
	"io"

	"github.com/truegloryhair/commerce-reports/reengagement/domain"
)

//go:generate mockery --name ReengagementService --output ../mocks --case=underscore
type ReengagementService interface {
	FindCustomers(ctx context.Context, criteria domain.Criteria) (*domain.Result, error)
	PrintCustomers(w io.Writer, customers []domain.CustomerMetric) error
	Run(ctx context.Context, w io.Writer, criteria domain.Criteria) (*domain.Result, error)
}
