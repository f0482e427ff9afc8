package connection

import (
	"context"
	"errors"

	"cloud.google.com/go/bigquery"
	"google.golang.org/api/option"

	"github.com/truegloryhair/commerce-reports/common"
	"github.com/truegloryhair/commerce-reports/logger"
)

var (
	ErrBigqueryInitialization = errors.New("bigquery initialization error")
)

type BigQueryClient struct {
	bq *bigquery.Client
}

func NewBigQuery(ctx context.Context, log *logger.Logging) (*BigQueryClient, error) {
	logger := log.Logger(ctx)

	bq, err := bigquery.NewClient(ctx, common.ProjectID, option.WithScopes(bigquery.Scope))
	if err != nil {
		logger.Errorf("%s: %s", ErrBigqueryInitialization, err)
		return nil, err
	}

	return &BigQueryClient{
		bq: bq,
	}, nil
}
