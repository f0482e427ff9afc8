package service

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"cloud.google.com/go/civil"

	"github.com/truegloryhair/commerce-reports/framework/connection"
	"github.com/truegloryhair/commerce-reports/logger"
	"github.com/truegloryhair/commerce-reports/reengagement/dal"
	dalIface "github.com/truegloryhair/commerce-reports/reengagement/dal/iface"
	"github.com/truegloryhair/commerce-reports/reengagement/domain"
	"github.com/truegloryhair/commerce-reports/report"
	"github.com/truegloryhair/commerce-reports/times"
)

const fieldSeparator = ", "

var outputColumns = []string{"email", "recency", "frequency", "monetary", "avg_order_value"}

type ReengagementService struct {
	loggerProvider logger.Provider
	dal            dalIface.OrdersDAL
	today          func() civil.Date
}

func NewReengagementService(loggerProvider logger.Provider, conn *connection.Connection) *ReengagementService {
	return &ReengagementService{
		loggerProvider,
		dal.NewBigQueryDAL(conn.Warehouse(context.Background())),
		times.CurrentDateUTC,
	}
}

// FindCustomers returns the lapsed high value customers, sorted by value.
func (s *ReengagementService) FindCustomers(ctx context.Context, criteria domain.Criteria) (*domain.Result, error) {
	l := s.loggerProvider(ctx)

	rows, err := s.dal.GetCustomerOrders(ctx)
	if err != nil {
		return nil, err
	}

	metrics, rejected := GroupCustomers(rows, s.today())
	if rejected > 0 {
		l.Warningf("rejected %d orders without a numeric amount", rejected)
	}

	thresholds := ComputeThresholds(metrics, criteria.Percentile)

	customers := SelectCustomers(metrics, thresholds, criteria.RecencyDays)
	SortCustomers(customers)

	l.Infof("selected %d of %d customers, cutoffs monetary=%s frequency=%s aov=%s",
		len(customers),
		len(metrics),
		report.FormatNullFloat(thresholds.Monetary),
		report.FormatNullFloat(thresholds.Frequency),
		report.FormatNullFloat(thresholds.AvgOrderValue),
	)

	return &domain.Result{
		Criteria:     criteria,
		Thresholds:   thresholds,
		Population:   len(metrics),
		RejectedRows: rejected,
		Customers:    customers,
	}, nil
}

// PrintCustomers writes a header line and one comma separated line per customer.
func (s *ReengagementService) PrintCustomers(w io.Writer, customers []domain.CustomerMetric) error {
	if _, err := fmt.Fprintln(w, strings.Join(outputColumns, fieldSeparator)); err != nil {
		return err
	}

	for _, c := range customers {
		if _, err := fmt.Fprintln(w, FormatCustomer(c)); err != nil {
			return err
		}
	}

	return nil
}

func FormatCustomer(c domain.CustomerMetric) string {
	return strings.Join([]string{
		c.Email,
		report.FormatNullInt(c.Recency),
		strconv.FormatInt(c.Frequency, 10),
		report.FormatFloat(c.Monetary),
		report.FormatNullFloat(c.AvgOrderValue),
	}, fieldSeparator)
}

// Run finds the customers and prints them to w. Nothing is printed when the query fails.
func (s *ReengagementService) Run(ctx context.Context, w io.Writer, criteria domain.Criteria) (*domain.Result, error) {
	result, err := s.FindCustomers(ctx, criteria)
	if err != nil {
		return nil, err
	}

	if err := s.PrintCustomers(w, result.Customers); err != nil {
		return nil, err
	}

	return result, nil
}
