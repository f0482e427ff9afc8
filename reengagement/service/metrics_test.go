package service

import (
	"math/rand"
	"testing"
	"time"

	"cloud.google.com/go/bigquery"
	"cloud.google.com/go/civil"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/truegloryhair/commerce-reports/reengagement/domain"
)

var today = civil.Date{Year: 2024, Month: 6, Day: 1}

func date(year int, month time.Month, day int) bigquery.NullDate {
	return bigquery.NullDate{Date: civil.Date{Year: year, Month: month, Day: day}, Valid: true}
}

func amount(v float64) bigquery.NullFloat64 {
	return bigquery.NullFloat64{Float64: v, Valid: true}
}

func recency(days int64) bigquery.NullInt64 {
	return bigquery.NullInt64{Int64: days, Valid: true}
}

func TestGroupCustomers(t *testing.T) {
	rows := []domain.OrderRow{
		{Email: "jane@example.com", OrderDate: date(2024, 1, 15), OrderAmount: amount(100)},
		{Email: "kim@example.com", OrderAmount: amount(50)},
		{Email: "jane@example.com", OrderDate: date(2024, 3, 2), OrderAmount: amount(300)},
		{Email: "lee@example.com", OrderDate: date(2024, 5, 30), HasAmount: true},
		{Email: "lee@example.com", OrderDate: date(2024, 5, 20), OrderAmount: amount(20)},
	}

	want := []domain.CustomerMetric{
		{Email: "jane@example.com", Recency: recency(91), Frequency: 2, Monetary: 400, AvgOrderValue: amount(200)},
		{Email: "kim@example.com", Frequency: 1, Monetary: 50, AvgOrderValue: amount(50)},
		{Email: "lee@example.com", Recency: recency(12), Frequency: 1, Monetary: 20, AvgOrderValue: amount(20)},
	}

	got, rejected := GroupCustomers(rows, today)

	assert.Equal(t, 1, rejected)

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("GroupCustomers() mismatch (-want +got):\n%s", diff)
	}
}

func TestGroupCustomers_AllRejected(t *testing.T) {
	got, rejected := GroupCustomers([]domain.OrderRow{{Email: "jane@example.com", HasAmount: true}}, today)

	assert.Empty(t, got)
	assert.Equal(t, 1, rejected)
}

func TestGroupCustomers_MissingAmount(t *testing.T) {
	rows := []domain.OrderRow{
		{Email: "jane@example.com", OrderDate: date(2024, 1, 1), OrderAmount: amount(100), HasAmount: true},
		{Email: "jane@example.com", OrderDate: date(2024, 5, 30)},
	}

	want := []domain.CustomerMetric{
		{Email: "jane@example.com", Recency: recency(2), Frequency: 2, Monetary: 100, AvgOrderValue: amount(50)},
	}

	got, rejected := GroupCustomers(rows, today)

	assert.Equal(t, 0, rejected)

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("GroupCustomers() mismatch (-want +got):\n%s", diff)
	}

	assert.False(t, got[0].IsLapsed(60))
}

func TestAverageOrderValue(t *testing.T) {
	assert.Equal(t, amount(125), AverageOrderValue(500, 4))
	assert.Equal(t, bigquery.NullFloat64{}, AverageOrderValue(0, 0))
	assert.False(t, AverageOrderValue(100, 0).Valid)
}

func TestPercentile(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		p      float64
		want   float64
		wantOK bool
	}{
		{name: "interpolates between ranks", values: []float64{5, 1, 4, 2, 3}, p: 0.9, want: 4.6, wantOK: true},
		{name: "exact rank", values: []float64{50, 300, 900, 1000, 2000}, p: 0.75, want: 1000, wantOK: true},
		{name: "maximum", values: []float64{3, 9, 1}, p: 1, want: 9, wantOK: true},
		{name: "single value", values: []float64{42}, p: 0.9, want: 42, wantOK: true},
		{name: "ties", values: []float64{1, 1, 1, 1}, p: 0.9, want: 1, wantOK: true},
		{name: "no values", p: 0.9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Percentile(tt.values, tt.p)

			assert.Equal(t, tt.wantOK, ok)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestPercentile_DoesNotReorderInput(t *testing.T) {
	values := []float64{3, 1, 2}
	Percentile(values, 0.5)

	assert.Equal(t, []float64{3, 1, 2}, values)
}

func TestComputeThresholds(t *testing.T) {
	metrics := []domain.CustomerMetric{
		{Frequency: 2, Monetary: 1000, AvgOrderValue: amount(500)},
		{Frequency: 1, Monetary: 2000, AvgOrderValue: amount(2000)},
		{Frequency: 1, Monetary: 50, AvgOrderValue: amount(50)},
		{Frequency: 1, Monetary: 900, AvgOrderValue: amount(900)},
		{Frequency: 3, Monetary: 300, AvgOrderValue: amount(100)},
		{Frequency: 0, Monetary: 0},
	}

	got := ComputeThresholds(metrics, 0.8)

	assert.InDelta(t, 1000, got.Monetary.Float64, 1e-9)
	assert.InDelta(t, 2, got.Frequency.Float64, 1e-9)
	assert.InDelta(t, 1120, got.AvgOrderValue.Float64, 1e-9)
	assert.True(t, got.Monetary.Valid && got.Frequency.Valid && got.AvgOrderValue.Valid)

	assert.Equal(t, domain.Thresholds{}, ComputeThresholds(nil, 0.9))
}

func TestSelectCustomers(t *testing.T) {
	thresholds := domain.Thresholds{
		Monetary:      amount(400),
		Frequency:     amount(5),
		AvgOrderValue: amount(600),
	}

	lapsedBigSpender := domain.CustomerMetric{Email: "a@example.com", Recency: recency(90), Frequency: 1, Monetary: 500, AvgOrderValue: amount(500)}

	metrics := []domain.CustomerMetric{
		lapsedBigSpender,
		{Email: "b@example.com", Recency: recency(20), Frequency: 9, Monetary: 5000, AvgOrderValue: amount(555.5)},
		{Email: "c@example.com", Recency: recency(300), Frequency: 2, Monetary: 80, AvgOrderValue: amount(40)},
		{Email: "d@example.com", Frequency: 9, Monetary: 5000, AvgOrderValue: amount(555.5)},
		{Email: "e@example.com", Recency: recency(61), Frequency: 6, Monetary: 120, AvgOrderValue: amount(20)},
		lapsedBigSpender,
	}

	want := []domain.CustomerMetric{
		lapsedBigSpender,
		{Email: "e@example.com", Recency: recency(61), Frequency: 6, Monetary: 120, AvgOrderValue: amount(20)},
	}

	assert.Equal(t, want, SelectCustomers(metrics, thresholds, 60))
	assert.Empty(t, SelectCustomers(metrics, thresholds, 365))
}

func TestSelectCustomers_Monotonic(t *testing.T) {
	rnd := rand.New(rand.NewSource(7))

	metrics := make([]domain.CustomerMetric, 0, 200)
	for i := 0; i < 200; i++ {
		frequency := int64(rnd.Intn(8) + 1)
		monetary := float64(rnd.Intn(200000)) / 100

		metrics = append(metrics, domain.CustomerMetric{
			Email:         string(rune('a'+i%26)) + "@example.com",
			Recency:       recency(int64(rnd.Intn(400))),
			Frequency:     frequency,
			Monetary:      monetary,
			AvgOrderValue: AverageOrderValue(monetary, frequency),
		})
	}

	thresholds := ComputeThresholds(metrics, 0.9)
	base := SelectCustomers(metrics, thresholds, 60)
	assert.NotEmpty(t, base)

	contains := func(set []domain.CustomerMetric, m domain.CustomerMetric) bool {
		for _, s := range set {
			if s == m {
				return true
			}
		}

		return false
	}

	for _, recencyDays := range []int{61, 90, 180, 365} {
		for _, m := range SelectCustomers(metrics, thresholds, recencyDays) {
			assert.True(t, contains(base, m), "recency %d added %s", recencyDays, m.Email)
		}
	}

	lowered := []domain.Thresholds{
		{Monetary: amount(thresholds.Monetary.Float64 - 100), Frequency: thresholds.Frequency, AvgOrderValue: thresholds.AvgOrderValue},
		{Monetary: thresholds.Monetary, Frequency: amount(thresholds.Frequency.Float64 - 1), AvgOrderValue: thresholds.AvgOrderValue},
		{Monetary: thresholds.Monetary, Frequency: thresholds.Frequency, AvgOrderValue: amount(thresholds.AvgOrderValue.Float64 - 50)},
	}

	for _, th := range lowered {
		selected := SelectCustomers(metrics, th, 60)

		for _, m := range base {
			assert.True(t, contains(selected, m), "lowering a cutoff removed %s", m.Email)
		}
	}
}

func TestSortCustomers(t *testing.T) {
	metrics := []domain.CustomerMetric{
		{Email: "a", Monetary: 100, Frequency: 1, AvgOrderValue: amount(100)},
		{Email: "b", Monetary: 900, Frequency: 2, AvgOrderValue: amount(450)},
		{Email: "c", Monetary: 900, Frequency: 3, AvgOrderValue: amount(300)},
		{Email: "d", Monetary: 100, Frequency: 1},
		{Email: "e", Monetary: 100, Frequency: 1, AvgOrderValue: amount(150)},
	}

	SortCustomers(metrics)

	var got []string
	for _, m := range metrics {
		got = append(got, m.Email)
	}

	assert.Equal(t, []string{"c", "b", "e", "a", "d"}, got)
}
