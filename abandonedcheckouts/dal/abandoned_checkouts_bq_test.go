package dal

import (
	"context"
	"errors"
	"strings"
	"testing"

	"cloud.google.com/go/bigquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/truegloryhair/commerce-reports/abandonedcheckouts/domain"
	"github.com/truegloryhair/commerce-reports/warehouse"
	"github.com/truegloryhair/commerce-reports/warehouse/mocks"
)

func TestBigQueryDAL_GetAbandonedCheckouts(t *testing.T) {
	rows := []domain.CheckoutRow{
		{
			ID:             "gid://shopify/AbandonedCheckout/1",
			CreatedAt:      bigquery.NullString{StringVal: "2024-03-01 14:05:00+00", Valid: true},
			LineItemsEdges: bigquery.NullString{StringVal: "{'node': {'title': 'Shampoo'}}", Valid: true},
			TotalAmount:    bigquery.NullFloat64{Float64: 42.5, Valid: true},
		},
		{
			ID: "gid://shopify/AbandonedCheckout/2",
		},
	}

	queryErr := errors.New("googleapi: Error 403: Access Denied")

	matchesQuery := mock.MatchedBy(func(p warehouse.QueryParams) bool {
		return p.JobID == abandonedCheckoutsJobID &&
			strings.Contains(p.Query, "`truegloryhair.tgh1.abandoned_checkouts`") &&
			strings.Contains(p.Query, "SAFE_CAST(totalPriceSet_shopMoney_amount AS FLOAT64) AS total_amount")
	})

	type fields struct {
		querier *mocks.Querier
	}

	tests := []struct {
		name    string
		on      func(f *fields)
		want    []domain.CheckoutRow
		wantErr error
	}{
		{
			name: "reads every row",
			on: func(f *fields) {
				f.querier.On("Read", mock.Anything, matchesQuery).
					Return(mocks.NewSliceIterator(rows...), nil).
					Once()
			},
			want: rows,
		},
		{
			name: "empty table",
			on: func(f *fields) {
				f.querier.On("Read", mock.Anything, matchesQuery).
					Return(mocks.NewSliceIterator[domain.CheckoutRow](), nil).
					Once()
			},
		},
		{
			name: "query error is returned unmodified",
			on: func(f *fields) {
				f.querier.On("Read", mock.Anything, matchesQuery).
					Return(nil, queryErr).
					Once()
			},
			wantErr: queryErr,
		},
		{
			name: "iteration error",
			on: func(f *fields) {
				it := mocks.NewSliceIterator(rows[0])
				it.Err = queryErr

				f.querier.On("Read", mock.Anything, matchesQuery).
					Return(it, nil).
					Once()
			},
			wantErr: queryErr,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := fields{querier: mocks.NewQuerier(t)}
			tt.on(&f)

			d := NewBigQueryDAL(f.querier)

			got, err := d.GetAbandonedCheckouts(context.Background())
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
