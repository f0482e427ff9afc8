package service

import (
	"sort"
	"time"

	"github.com/truegloryhair/commerce-reports/abandonedcheckouts/domain"
	"github.com/truegloryhair/commerce-reports/times"
)

const hoursInDay = 24

// NormalizeCheckout converts a warehouse row. Unparseable timestamps become nil.
func NormalizeCheckout(row domain.CheckoutRow) domain.Checkout {
	return domain.Checkout{
		ID:                   row.ID,
		AbandonedCheckoutURL: row.AbandonedCheckoutURL.StringVal,
		CreatedAt:            parseNullTimestamp(row.CreatedAt.StringVal, row.CreatedAt.Valid),
		UpdatedAt:            parseNullTimestamp(row.UpdatedAt.StringVal, row.UpdatedAt.Valid),
		CompletedAt:          parseNullTimestamp(row.CompletedAt.StringVal, row.CompletedAt.Valid),
		CustomerID:           row.CustomerID.StringVal,
		CustomerFirstName:    row.CustomerFirstName.StringVal,
		CustomerLastName:     row.CustomerLastName.StringVal,
		CustomerEmail:        row.CustomerEmail.StringVal,
		ProductTitles:        ParseProductTitles(row.LineItemsEdges.StringVal),
		SubtotalAmount:       row.SubtotalAmount,
		TotalAmount:          row.TotalAmount,
	}
}

func parseNullTimestamp(value string, valid bool) *time.Time {
	if !valid {
		return nil
	}

	t, ok := times.ParseTimestamp(value)
	if !ok {
		return nil
	}

	return &t
}

// CountProductTitles counts every title occurrence, most abandoned first.
// Titles with equal counts keep the order in which they were first seen.
func CountProductTitles(checkouts []domain.Checkout) []domain.TitleCount {
	index := make(map[string]int)
	counts := []domain.TitleCount{}

	for _, c := range checkouts {
		for _, title := range c.ProductTitles {
			i, ok := index[title]
			if !ok {
				i = len(counts)
				index[title] = i
				counts = append(counts, domain.TitleCount{ProductTitle: title})
			}

			counts[i].AbandonCount++
		}
	}

	sort.SliceStable(counts, func(i, j int) bool {
		return counts[i].AbandonCount > counts[j].AbandonCount
	})

	return counts
}

// CountCartSizes counts checkouts per cart size bin, in bin order.
// Every bin is present. Checkouts without a total, or with a negative one, are not counted.
func CountCartSizes(checkouts []domain.Checkout) []domain.CartSizeCount {
	counts := make([]domain.CartSizeCount, len(domain.CartSizeBins))
	index := make(map[string]int, len(domain.CartSizeBins))

	for i, bin := range domain.CartSizeBins {
		counts[i].CartSizeBin = bin.Label
		index[bin.Label] = i
	}

	for _, c := range checkouts {
		if !c.TotalAmount.Valid {
			continue
		}

		if bin, ok := domain.CartSizeBinFor(c.TotalAmount.Float64); ok {
			counts[index[bin.Label]].Count++
		}
	}

	return counts
}

// CountHours counts checkouts per UTC hour of creation, in hour order.
// Only hours with at least one checkout are returned.
func CountHours(checkouts []domain.Checkout) []domain.HourCount {
	var perHour [hoursInDay]int

	for _, c := range checkouts {
		if c.CreatedAt == nil {
			continue
		}

		perHour[c.CreatedAt.UTC().Hour()]++
	}

	counts := []domain.HourCount{}

	for hour, count := range perHour {
		if count == 0 {
			continue
		}

		counts = append(counts, domain.HourCount{Hour: hour, Count: count})
	}

	return counts
}
