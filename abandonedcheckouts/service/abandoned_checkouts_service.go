package service

import (
	"context"
	"io"
	"strconv"

	"github.com/truegloryhair/commerce-reports/abandonedcheckouts/dal"
	dalIface "github.com/truegloryhair/commerce-reports/abandonedcheckouts/dal/iface"
	"github.com/truegloryhair/commerce-reports/abandonedcheckouts/domain"
	"github.com/truegloryhair/commerce-reports/charts"
	"github.com/truegloryhair/commerce-reports/framework/connection"
	"github.com/truegloryhair/commerce-reports/logger"
	"github.com/truegloryhair/commerce-reports/report"
)

const (
	ProductTitlesChartFile = "product_titles.png"
	CartSizeChartFile      = "cart_size_range.png"
	HourOfDayChartFile     = "hour_of_day.png"

	topTitlesInChart      = 10
	abandonmentCountLabel = "Abandonment Count"
)

type AbandonedCheckoutsService struct {
	loggerProvider logger.Provider
	dal            dalIface.AbandonedCheckoutsDAL
}

func NewAbandonedCheckoutsService(loggerProvider logger.Provider, conn *connection.Connection) *AbandonedCheckoutsService {
	return &AbandonedCheckoutsService{
		loggerProvider,
		dal.NewBigQueryDAL(conn.Warehouse(context.Background())),
	}
}

// Analyze fetches every abandoned checkout and computes the title, cart size
// and hour of day breakdowns.
func (s *AbandonedCheckoutsService) Analyze(ctx context.Context) (*domain.Summary, error) {
	l := s.loggerProvider(ctx)

	rows, err := s.dal.GetAbandonedCheckouts(ctx)
	if err != nil {
		return nil, err
	}

	checkouts := make([]domain.Checkout, 0, len(rows))
	for _, row := range rows {
		checkouts = append(checkouts, NormalizeCheckout(row))
	}

	summary := &domain.Summary{
		Checkouts: len(checkouts),
		Titles:    CountProductTitles(checkouts),
		CartSizes: CountCartSizes(checkouts),
		Hours:     CountHours(checkouts),
	}

	l.Infof("analyzed %d abandoned checkouts, %d distinct product titles", summary.Checkouts, len(summary.Titles))

	return summary, nil
}

// PrintReport writes the three breakdowns as console tables.
func (s *AbandonedCheckoutsService) PrintReport(w io.Writer, summary *domain.Summary) error {
	for _, t := range summaryTables(summary) {
		if err := t.Fprint(w); err != nil {
			return err
		}
	}

	return nil
}

func summaryTables(summary *domain.Summary) []report.Table {
	titles := report.Table{
		Title:   "Abandonment Count by Product Title",
		Headers: []string{"product_title", "abandon_count"},
	}
	for _, t := range summary.Titles {
		titles.Rows = append(titles.Rows, []string{t.ProductTitle, strconv.Itoa(t.AbandonCount)})
	}

	cartSizes := report.Table{
		Title:   "Abandonment Count by Cart Size Range",
		Headers: []string{"cart_size_bin", "count"},
	}
	for _, c := range summary.CartSizes {
		cartSizes.Rows = append(cartSizes.Rows, []string{c.CartSizeBin, strconv.Itoa(c.Count)})
	}

	hours := report.Table{
		Title:   "Abandonment Count by Hour of Day",
		Headers: []string{"abandoned_hour", "count"},
	}
	for _, h := range summary.Hours {
		hours.Rows = append(hours.Rows, []string{strconv.Itoa(h.Hour), strconv.Itoa(h.Count)})
	}

	return []report.Table{titles, cartSizes, hours}
}

// RenderCharts draws the three bar charts and writes each one to sink.
// Rendering and sink errors are returned as is.
func (s *AbandonedCheckoutsService) RenderCharts(ctx context.Context, summary *domain.Summary, sink charts.Sink) error {
	l := s.loggerProvider(ctx)

	for _, c := range summaryCharts(summary) {
		data, err := charts.RenderPNG(c.chart)
		if err != nil {
			return err
		}

		if err := sink.Write(ctx, c.name, data); err != nil {
			return err
		}

		summary.ChartFiles = append(summary.ChartFiles, c.name)
		l.Infof("wrote chart %s", c.name)
	}

	return nil
}

type namedChart struct {
	name  string
	chart charts.BarChart
}

func summaryCharts(summary *domain.Summary) []namedChart {
	titles := charts.BarChart{
		Title:  "Top 10 Abandoned Product Titles",
		XLabel: "Product Title",
		YLabel: abandonmentCountLabel,
	}
	for _, t := range summary.TopTitles(topTitlesInChart) {
		titles.Labels = append(titles.Labels, t.ProductTitle)
		titles.Values = append(titles.Values, float64(t.AbandonCount))
	}

	cartSizes := charts.BarChart{
		Title:  "Abandonment Count by Cart Size Range",
		XLabel: "Cart Size Range (USD)",
		YLabel: abandonmentCountLabel,
	}
	for _, c := range summary.CartSizes {
		cartSizes.Labels = append(cartSizes.Labels, c.CartSizeBin)
		cartSizes.Values = append(cartSizes.Values, float64(c.Count))
	}

	hours := charts.BarChart{
		Title:  "Abandonment Count by Hour of Day",
		XLabel: "Hour of Day (0-23)",
		YLabel: abandonmentCountLabel,
	}
	for _, h := range summary.Hours {
		hours.Labels = append(hours.Labels, strconv.Itoa(h.Hour))
		hours.Values = append(hours.Values, float64(h.Count))
	}

	return []namedChart{
		{ProductTitlesChartFile, titles},
		{CartSizeChartFile, cartSizes},
		{HourOfDayChartFile, hours},
	}
}

// Run analyzes the abandoned checkouts, prints the tables to w and then
// renders the charts into sink. Nothing is printed when the query fails.
func (s *AbandonedCheckoutsService) Run(ctx context.Context, w io.Writer, sink charts.Sink) (*domain.Summary, error) {
	summary, err := s.Analyze(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.PrintReport(w, summary); err != nil {
		return nil, err
	}

	if err := s.RenderCharts(ctx, summary, sink); err != nil {
		return nil, err
	}

	return summary, nil
}
