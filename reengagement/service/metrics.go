package service

import (
	"math"
	"sort"

	"cloud.google.com/go/bigquery"
	"cloud.google.com/go/civil"
	"gonum.org/v1/gonum/floats"

	"github.com/truegloryhair/commerce-reports/reengagement/domain"
	"github.com/truegloryhair/commerce-reports/times"
)

type customerOrders struct {
	email    string
	lastDate civil.Date
	hasDate  bool
	orders   int64
	amounts  []float64
}

// GroupCustomers aggregates the orders per email, relative to today.
// Orders whose amount is not numeric are rejected and counted. Orders without
// an amount still count towards frequency and recency. Customers are returned
// in the order their email first appears.
func GroupCustomers(rows []domain.OrderRow, today civil.Date) ([]domain.CustomerMetric, int) {
	index := make(map[string]int)

	var (
		groups   []*customerOrders
		rejected int
	)

	for _, row := range rows {
		if row.IsMalformed() {
			rejected++
			continue
		}

		i, ok := index[row.Email]
		if !ok {
			i = len(groups)
			index[row.Email] = i
			groups = append(groups, &customerOrders{email: row.Email})
		}

		g := groups[i]
		g.orders++

		if row.OrderAmount.Valid {
			g.amounts = append(g.amounts, row.OrderAmount.Float64)
		}

		if row.OrderDate.Valid && (!g.hasDate || row.OrderDate.Date.After(g.lastDate)) {
			g.lastDate = row.OrderDate.Date
			g.hasDate = true
		}
	}

	metrics := make([]domain.CustomerMetric, 0, len(groups))

	for _, g := range groups {
		m := domain.CustomerMetric{
			Email:     g.email,
			Frequency: g.orders,
			Monetary:  floats.Sum(g.amounts),
		}

		if g.hasDate {
			m.Recency = bigquery.NullInt64{Int64: int64(times.DaysSince(today, g.lastDate)), Valid: true}
		}

		m.AvgOrderValue = AverageOrderValue(m.Monetary, m.Frequency)

		metrics = append(metrics, m)
	}

	return metrics, rejected
}

// AverageOrderValue is monetary / frequency, undefined when there are no orders.
func AverageOrderValue(monetary float64, frequency int64) bigquery.NullFloat64 {
	if frequency == 0 {
		return bigquery.NullFloat64{}
	}

	return bigquery.NullFloat64{Float64: monetary / float64(frequency), Valid: true}
}

// Percentile returns the continuous percentile p of values, interpolating
// linearly between the two closest ranks. It is false for no values.
func Percentile(values []float64, p float64) (float64, bool) {
	if len(values) == 0 {
		return 0, false
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	rank := p * float64(len(sorted)-1)
	lo := int(math.Floor(rank))
	hi := int(math.Ceil(rank))

	return sorted[lo] + (rank-float64(lo))*(sorted[hi]-sorted[lo]), true
}

func nullPercentile(values []float64, p float64) bigquery.NullFloat64 {
	v, ok := Percentile(values, p)

	return bigquery.NullFloat64{Float64: v, Valid: ok}
}

// ComputeThresholds computes the cutoff of each metric over the whole population.
// Undefined average order values are left out.
func ComputeThresholds(metrics []domain.CustomerMetric, p float64) domain.Thresholds {
	monetary := make([]float64, 0, len(metrics))
	frequency := make([]float64, 0, len(metrics))
	aov := make([]float64, 0, len(metrics))

	for _, m := range metrics {
		monetary = append(monetary, m.Monetary)
		frequency = append(frequency, float64(m.Frequency))

		if m.AvgOrderValue.Valid {
			aov = append(aov, m.AvgOrderValue.Float64)
		}
	}

	return domain.Thresholds{
		Monetary:      nullPercentile(monetary, p),
		Frequency:     nullPercentile(frequency, p),
		AvgOrderValue: nullPercentile(aov, p),
	}
}

// SelectCustomers keeps the distinct lapsed customers that reach at least one cutoff.
func SelectCustomers(metrics []domain.CustomerMetric, thresholds domain.Thresholds, recencyDays int) []domain.CustomerMetric {
	seen := make(map[domain.CustomerMetric]struct{})
	selected := []domain.CustomerMetric{}

	for _, m := range metrics {
		if !m.IsLapsed(recencyDays) || !m.IsHighValue(thresholds) {
			continue
		}

		if _, ok := seen[m]; ok {
			continue
		}

		seen[m] = struct{}{}
		selected = append(selected, m)
	}

	return selected
}

// SortCustomers orders by monetary, frequency and average order value, all
// descending. Undefined averages sort last.
func SortCustomers(metrics []domain.CustomerMetric) {
	sort.SliceStable(metrics, func(i, j int) bool {
		a, b := metrics[i], metrics[j]

		if a.Monetary != b.Monetary {
			return a.Monetary > b.Monetary
		}

		if a.Frequency != b.Frequency {
			return a.Frequency > b.Frequency
		}

		if a.AvgOrderValue.Valid != b.AvgOrderValue.Valid {
			return a.AvgOrderValue.Valid
		}

		return a.AvgOrderValue.Float64 > b.AvgOrderValue.Float64
	})
}
