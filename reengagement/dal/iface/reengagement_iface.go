package iface

import (
	"context"

	"github.com/truegloryhair/commerce-reports/reengagement/domain"
)

//go:generate mockery --name OrdersDAL --output ../mocks --case=underscore
type OrdersDAL interface {
	GetCustomerOrders(ctx context.Context) ([]domain.OrderRow, error)
}
