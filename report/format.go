package report

import (
	"math"
	"strconv"
	"strings"

	"cloud.google.com/go/bigquery"
)

const nullValue = "NULL"

// FormatFloat renders v with the shortest exact representation, always keeping
// a decimal part so that amounts read as amounts ("500.0", "123.45").
func FormatFloat(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}

	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}

	return s
}

// FormatNullFloat is FormatFloat for nullable warehouse values.
func FormatNullFloat(v bigquery.NullFloat64) string {
	if !v.Valid {
		return nullValue
	}

	return FormatFloat(v.Float64)
}

// FormatNullInt renders a nullable integer.
func FormatNullInt(v bigquery.NullInt64) string {
	if !v.Valid {
		return nullValue
	}

	return strconv.FormatInt(v.Int64, 10)
}
