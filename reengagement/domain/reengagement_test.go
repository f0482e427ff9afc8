package domain

import (
	"testing"

	"cloud.google.com/go/bigquery"
	"github.com/stretchr/testify/assert"
)

func nullFloat(v float64) bigquery.NullFloat64 {
	return bigquery.NullFloat64{Float64: v, Valid: true}
}

func TestCustomerMetric_IsLapsed(t *testing.T) {
	tests := []struct {
		name    string
		recency bigquery.NullInt64
		want    bool
	}{
		{name: "older than the window", recency: bigquery.NullInt64{Int64: 61, Valid: true}, want: true},
		{name: "exactly the window", recency: bigquery.NullInt64{Int64: 60, Valid: true}},
		{name: "recent", recency: bigquery.NullInt64{Int64: 3, Valid: true}},
		{name: "no order date", recency: bigquery.NullInt64{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CustomerMetric{Recency: tt.recency}.IsLapsed(60))
		})
	}
}

func TestCustomerMetric_IsHighValue(t *testing.T) {
	thresholds := Thresholds{
		Monetary:      nullFloat(400),
		Frequency:     nullFloat(5),
		AvgOrderValue: nullFloat(600),
	}

	tests := []struct {
		name   string
		metric CustomerMetric
		want   bool
	}{
		{
			name:   "monetary alone is enough",
			metric: CustomerMetric{Frequency: 1, Monetary: 500, AvgOrderValue: nullFloat(500)},
			want:   true,
		},
		{
			name:   "frequency alone is enough",
			metric: CustomerMetric{Frequency: 5, Monetary: 100, AvgOrderValue: nullFloat(20)},
			want:   true,
		},
		{
			name:   "average order value alone is enough",
			metric: CustomerMetric{Frequency: 1, Monetary: 350, AvgOrderValue: nullFloat(650)},
			want:   true,
		},
		{
			name:   "below every cutoff",
			metric: CustomerMetric{Frequency: 2, Monetary: 120, AvgOrderValue: nullFloat(60)},
		},
		{
			name:   "undefined average never matches",
			metric: CustomerMetric{Monetary: 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.metric.IsHighValue(thresholds))
		})
	}

	assert.False(t, CustomerMetric{Monetary: 1e6, Frequency: 100}.IsHighValue(Thresholds{}))
}

func TestOrderRow_IsMalformed(t *testing.T) {
	tests := []struct {
		name string
		row  OrderRow
		want bool
	}{
		{"numeric amount", OrderRow{OrderAmount: nullFloat(12.5), HasAmount: true}, false},
		{"missing amount", OrderRow{}, false},
		{"amount is not a number", OrderRow{HasAmount: true}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.row.IsMalformed())
		})
	}
}
