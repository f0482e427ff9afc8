package warehouse

import (
	"context"
	"errors"

	"cloud.google.com/go/bigquery"
	"google.golang.org/api/iterator"
)

var ErrNilClient = errors.New("bigquery client is nil")

// RowIterator yields result rows into dst and returns iterator.Done after the last row.
type RowIterator interface {
	Next(dst interface{}) error
}

//go:generate mockery --name Querier --output ./mocks --case=underscore
type Querier interface {
	Read(ctx context.Context, params QueryParams) (RowIterator, error)
}

type QueryParams struct {
	Query      string
	JobID      string
	Parameters []bigquery.QueryParameter
}

type BigQuery struct {
	client *bigquery.Client
}

func NewBigQuery(client *bigquery.Client) *BigQuery {
	return &BigQuery{client: client}
}

// Read runs the query and waits for the complete result set.
func (b *BigQuery) Read(ctx context.Context, params QueryParams) (RowIterator, error) {
	if b.client == nil {
		return nil, ErrNilClient
	}

	query := b.client.Query(params.Query)
	query.Parameters = params.Parameters
	query.JobIDConfig = bigquery.JobIDConfig{
		JobID:          params.JobID,
		AddJobIDSuffix: true,
	}

	it, err := query.Read(ctx)
	if err != nil {
		return nil, err
	}

	return it, nil
}

// ReadAll runs the query and materializes every row as a T.
func ReadAll[T any](ctx context.Context, q Querier, params QueryParams) ([]T, error) {
	it, err := q.Read(ctx, params)
	if err != nil {
		return nil, err
	}

	var results []T

	for {
		var row T
		err := it.Next(&row)

		if err == iterator.Done {
			break
		}

		if err != nil {
			return nil, err
		}

		results = append(results, row)
	}

	return results, nil
}
