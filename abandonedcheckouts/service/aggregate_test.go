package service

import (
	"testing"
	"time"

	"cloud.google.com/go/bigquery"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/truegloryhair/commerce-reports/abandonedcheckouts/domain"
)

func amount(v float64) bigquery.NullFloat64 {
	return bigquery.NullFloat64{Float64: v, Valid: true}
}

func at(hour int) *time.Time {
	t := time.Date(2024, 3, 1, hour, 30, 0, 0, time.UTC)
	return &t
}

func TestNormalizeCheckout(t *testing.T) {
	row := domain.CheckoutRow{
		ID:                   "1",
		AbandonedCheckoutURL: bigquery.NullString{StringVal: "https://truegloryhair.com/checkouts/1", Valid: true},
		CreatedAt:            bigquery.NullString{StringVal: "2024-03-01 14:05:00+00", Valid: true},
		UpdatedAt:            bigquery.NullString{StringVal: "yesterday", Valid: true},
		CustomerEmail:        bigquery.NullString{StringVal: "jane@example.com", Valid: true},
		LineItemsEdges:       bigquery.NullString{StringVal: "{'node': {'title': 'Shampoo'}}", Valid: true},
		TotalAmount:          amount(64),
	}

	got := NormalizeCheckout(row)

	assert.Equal(t, "1", got.ID)
	assert.Equal(t, "https://truegloryhair.com/checkouts/1", got.AbandonedCheckoutURL)
	assert.Equal(t, "jane@example.com", got.CustomerEmail)
	assert.Equal(t, []string{"Shampoo"}, got.ProductTitles)
	assert.Equal(t, amount(64), got.TotalAmount)

	if assert.NotNil(t, got.CreatedAt) {
		assert.Equal(t, time.Date(2024, 3, 1, 14, 5, 0, 0, time.UTC), *got.CreatedAt)
	}

	assert.Nil(t, got.UpdatedAt)
	assert.Nil(t, got.CompletedAt)
}

func TestNormalizeCheckout_NullLineItems(t *testing.T) {
	got := NormalizeCheckout(domain.CheckoutRow{ID: "2"})

	assert.NotNil(t, got.ProductTitles)
	assert.Empty(t, got.ProductTitles)
	assert.Nil(t, got.CreatedAt)
}

func TestCountProductTitles(t *testing.T) {
	checkouts := []domain.Checkout{
		{ProductTitles: []string{"Conditioner", "Shampoo"}},
		{ProductTitles: []string{}},
		{ProductTitles: []string{"Wig Cap", "Shampoo"}},
		{ProductTitles: []string{"Edge Control", "Wig Cap", "Shampoo"}},
	}

	want := []domain.TitleCount{
		{ProductTitle: "Shampoo", AbandonCount: 3},
		{ProductTitle: "Wig Cap", AbandonCount: 2},
		{ProductTitle: "Conditioner", AbandonCount: 1},
		{ProductTitle: "Edge Control", AbandonCount: 1},
	}

	if diff := cmp.Diff(want, CountProductTitles(checkouts)); diff != "" {
		t.Errorf("CountProductTitles() mismatch (-want +got):\n%s", diff)
	}

	assert.Empty(t, CountProductTitles(nil))
}

func TestCountCartSizes(t *testing.T) {
	checkouts := []domain.Checkout{
		{TotalAmount: amount(0)},
		{TotalAmount: amount(49.99)},
		{TotalAmount: amount(275)},
		{TotalAmount: amount(1000)},
		{TotalAmount: amount(1500)},
		{TotalAmount: amount(-5)},
		{},
	}

	want := []domain.CartSizeCount{
		{CartSizeBin: "0-50", Count: 2},
		{CartSizeBin: "50-100", Count: 0},
		{CartSizeBin: "100-200", Count: 0},
		{CartSizeBin: "200-300", Count: 1},
		{CartSizeBin: "300-500", Count: 0},
		{CartSizeBin: "500-1000", Count: 0},
		{CartSizeBin: "1000+", Count: 2},
	}

	assert.Equal(t, want, CountCartSizes(checkouts))
}

func TestCountCartSizes_BinEdges(t *testing.T) {
	for _, v := range []float64{0, 50, 100, 200, 300, 500, 1000, 99.99, 1e7} {
		bin, ok := domain.CartSizeBinFor(v)
		require.True(t, ok, "amount %v", v)

		for _, c := range CountCartSizes([]domain.Checkout{{TotalAmount: amount(v)}}) {
			want := 0
			if c.CartSizeBin == bin.Label {
				want = 1
			}

			assert.Equal(t, want, c.Count, "amount %v bin %s", v, c.CartSizeBin)
		}
	}
}

func TestCountHours(t *testing.T) {
	checkouts := []domain.Checkout{
		{CreatedAt: at(23)},
		{CreatedAt: at(0)},
		{CreatedAt: at(14)},
		{CreatedAt: at(14)},
		{},
	}

	want := []domain.HourCount{
		{Hour: 0, Count: 1},
		{Hour: 14, Count: 2},
		{Hour: 23, Count: 1},
	}

	assert.Equal(t, want, CountHours(checkouts))
	assert.Empty(t, CountHours(nil))
}
