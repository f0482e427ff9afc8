package dal

import (
	"context"

	"github.com/truegloryhair/commerce-reports/reengagement/domain"
	"github.com/truegloryhair/commerce-reports/warehouse"
)

const customerOrdersJobID = "customer-reengagement-orders"

type BigQueryDAL struct {
	querier warehouse.Querier
}

func NewBigQueryDAL(querier warehouse.Querier) *BigQueryDAL {
	return &BigQueryDAL{querier: querier}
}

func (d *BigQueryDAL) GetCustomerOrders(ctx context.Context) ([]domain.OrderRow, error) {
	return warehouse.ReadAll[domain.OrderRow](ctx, d.querier, warehouse.QueryParams{
		Query: GetCustomerOrdersQuery(),
		JobID: customerOrdersJobID,
	})
}
