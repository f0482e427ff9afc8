package dal

import (
	"context"

	"github.com/truegloryhair/commerce-reports/abandonedcheckouts/domain"
	"github.com/truegloryhair/commerce-reports/warehouse"
)

const abandonedCheckoutsJobID = "abandoned-checkouts"

type BigQueryDAL struct {
	querier warehouse.Querier
}

func NewBigQueryDAL(querier warehouse.Querier) *BigQueryDAL {
	return &BigQueryDAL{querier: querier}
}

// GetAbandonedCheckouts reads the whole abandoned checkouts table.
func (d *BigQueryDAL) GetAbandonedCheckouts(ctx context.Context) ([]domain.CheckoutRow, error) {
	return warehouse.ReadAll[domain.CheckoutRow](ctx, d.querier, warehouse.QueryParams{
		Query: GetAbandonedCheckoutsQuery(),
		JobID: abandonedCheckoutsJobID,
	})
}
