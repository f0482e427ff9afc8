package domain

import (
	"cloud.google.com/go/bigquery"
)

// OrderRow is a completed order with a customer email.
// OrderAmount is NULL when the stored amount is missing or not numeric,
// HasAmount tells the two apart.
type OrderRow struct {
	Email       string               `bigquery:"email"`
	OrderDate   bigquery.NullDate    `bigquery:"order_date"`
	OrderAmount bigquery.NullFloat64 `bigquery:"order_amount"`
	HasAmount   bool                 `bigquery:"has_amount"`
}

// IsMalformed reports whether the order has an amount that is not a number.
func (r OrderRow) IsMalformed() bool {
	return r.HasAmount && !r.OrderAmount.Valid
}

// CustomerMetric holds the recency, frequency and monetary scores of one customer.
// Recency is NULL when none of the orders has a date, AvgOrderValue when there are no orders.
type CustomerMetric struct {
	Email         string               `json:"email"`
	Recency       bigquery.NullInt64   `json:"recency"`
	Frequency     int64                `json:"frequency"`
	Monetary      float64              `json:"monetary"`
	AvgOrderValue bigquery.NullFloat64 `json:"avgOrderValue"`
}

// Thresholds are the population wide percentile cutoffs. A cutoff is NULL when
// no customer has a value for its metric.
type Thresholds struct {
	Monetary      bigquery.NullFloat64 `json:"monetary"`
	Frequency     bigquery.NullFloat64 `json:"frequency"`
	AvgOrderValue bigquery.NullFloat64 `json:"avgOrderValue"`
}

// Criteria select the lapsed high value customers.
type Criteria struct {
	RecencyDays int     `json:"recencyDays" validate:"min=0"`
	Percentile  float64 `json:"percentile" validate:"gt=0,lte=1"`
}

// IsLapsed reports whether the customer's last order is more than recencyDays old.
func (m CustomerMetric) IsLapsed(recencyDays int) bool {
	return m.Recency.Valid && m.Recency.Int64 > int64(recencyDays)
}

// IsHighValue reports whether any of the three metrics reaches its cutoff.
func (m CustomerMetric) IsHighValue(t Thresholds) bool {
	if t.Monetary.Valid && m.Monetary >= t.Monetary.Float64 {
		return true
	}

	if t.Frequency.Valid && float64(m.Frequency) >= t.Frequency.Float64 {
		return true
	}

	return t.AvgOrderValue.Valid && m.AvgOrderValue.Valid && m.AvgOrderValue.Float64 >= t.AvgOrderValue.Float64
}

// Result is the outcome of one re-engagement run.
type Result struct {
	Criteria     Criteria         `json:"criteria"`
	Thresholds   Thresholds       `json:"thresholds"`
	Population   int              `json:"population"`
	RejectedRows int              `json:"rejectedRows"`
	Customers    []CustomerMetric `json:"customers"`
}
