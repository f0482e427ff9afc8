package domain

import (
	"math"
	"time"

	"cloud.google.com/go/bigquery"
)

// CheckoutRow is one row of the abandoned checkouts export as stored in the warehouse.
// Timestamps are read as strings and normalized by the service.
type CheckoutRow struct {
	ID                   string               `bigquery:"abandoned_checkout_id"`
	AbandonedCheckoutURL bigquery.NullString  `bigquery:"abandonedCheckoutUrl"`
	CreatedAt            bigquery.NullString  `bigquery:"createdAt"`
	UpdatedAt            bigquery.NullString  `bigquery:"updatedAt"`
	CompletedAt          bigquery.NullString  `bigquery:"completedAt"`
	CustomerID           bigquery.NullString  `bigquery:"customer_id"`
	CustomerFirstName    bigquery.NullString  `bigquery:"customer_firstName"`
	CustomerLastName     bigquery.NullString  `bigquery:"customer_lastName"`
	CustomerEmail        bigquery.NullString  `bigquery:"customer_email"`
	LineItemsEdges       bigquery.NullString  `bigquery:"lineItems_edges"`
	SubtotalAmount       bigquery.NullFloat64 `bigquery:"subtotal_amount"`
	TotalAmount          bigquery.NullFloat64 `bigquery:"total_amount"`
}

// Checkout is a normalized abandoned checkout. Timestamps that could not be parsed are nil.
type Checkout struct {
	ID                   string
	AbandonedCheckoutURL string
	CreatedAt            *time.Time
	UpdatedAt            *time.Time
	CompletedAt          *time.Time
	CustomerID           string
	CustomerFirstName    string
	CustomerLastName     string
	CustomerEmail        string
	ProductTitles        []string
	SubtotalAmount       bigquery.NullFloat64
	TotalAmount          bigquery.NullFloat64
}

// CartSizeBin is a left-inclusive, right-exclusive range of cart totals.
type CartSizeBin struct {
	Low   float64
	High  float64
	Label string
}

func (b CartSizeBin) Contains(amount float64) bool {
	return amount >= b.Low && amount < b.High
}

// CartSizeBins are ordered by range.
var CartSizeBins = []CartSizeBin{
	{Low: 0, High: 50, Label: "0-50"},
	{Low: 50, High: 100, Label: "50-100"},
	{Low: 100, High: 200, Label: "100-200"},
	{Low: 200, High: 300, Label: "200-300"},
	{Low: 300, High: 500, Label: "300-500"},
	{Low: 500, High: 1000, Label: "500-1000"},
	{Low: 1000, High: math.Inf(1), Label: "1000+"},
}

// CartSizeBinFor returns the bin containing amount. Negative and NaN amounts have no bin.
func CartSizeBinFor(amount float64) (CartSizeBin, bool) {
	for _, bin := range CartSizeBins {
		if bin.Contains(amount) {
			return bin, true
		}
	}

	return CartSizeBin{}, false
}

type TitleCount struct {
	ProductTitle string `json:"productTitle"`
	AbandonCount int    `json:"abandonCount"`
}

type CartSizeCount struct {
	CartSizeBin string `json:"cartSizeBin"`
	Count       int    `json:"count"`
}

type HourCount struct {
	Hour  int `json:"hour"`
	Count int `json:"count"`
}

// Summary holds the three abandonment breakdowns of a run.
type Summary struct {
	Checkouts  int             `json:"checkouts"`
	Titles     []TitleCount    `json:"productTitles"`
	CartSizes  []CartSizeCount `json:"cartSizes"`
	Hours      []HourCount     `json:"hours"`
	ChartFiles []string        `json:"chartFiles,omitempty"`
}

// TopTitles returns at most n titles, keeping the count order.
func (s *Summary) TopTitles(n int) []TitleCount {
	if len(s.Titles) <= n {
		return s.Titles
	}

	return s.Titles[:n]
}
