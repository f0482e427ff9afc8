package iface

import (
	"context"

	"github.com/truegloryhair/commerce-reports/abandonedcheckouts/domain"
)

//go:generate mockery --name AbandonedCheckoutsDAL --output ../mocks --case=underscore
type AbandonedCheckoutsDAL interface {
	GetAbandonedCheckouts(ctx context.Context) ([]domain.CheckoutRow, error)
}
