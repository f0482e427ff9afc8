package connection

import (
	"context"

	"cloud.google.com/go/bigquery"
	"cloud.google.com/go/storage"
	"github.com/gin-gonic/gin"
	"github.com/hashicorp/go-multierror"

	"github.com/truegloryhair/commerce-reports/logger"
	"github.com/truegloryhair/commerce-reports/warehouse"
)

const (
	// CtxBigqueryKey is how bigquery connections are stored/retrieved.
	CtxBigqueryKey = "app-bigquery"

	// CtxCloudStorageKey is how cloud storage connections are stored/retrieved.
	CtxCloudStorageKey = "app-cloud-storage"
)

type Connection struct {
	*BigQueryClient
	*CloudStorageClient
}

// NewConnection initializes the warehouse connection, and a cloud storage
// connection when charts are published to a bucket.
func NewConnection(ctx context.Context, log *logger.Logging, withCloudStorage bool) (*Connection, error) {
	bq, err := NewBigQuery(ctx, log)
	if err != nil {
		return nil, err
	}

	conn := &Connection{
		BigQueryClient:     bq,
		CloudStorageClient: &CloudStorageClient{},
	}

	if withCloudStorage {
		gcs, err := NewCloudStorage(ctx, log)
		if err != nil {
			conn.Close()
			return nil, err
		}

		conn.CloudStorageClient = gcs
	}

	return conn, nil
}

// Bigquery returns a bigquery connection that was stored in context.
// It returns by default a bigquery connection, if there was not one in the context.
func (c *Connection) Bigquery(ctx context.Context) *bigquery.Client {
	if bq, ok := ctx.Value(CtxBigqueryKey).(*bigquery.Client); ok {
		return bq
	}

	if c.BigQueryClient == nil {
		return nil
	}

	return c.bq
}

// BigqueryWithContext stores the bigquery connection in the request context.
func (c *Connection) BigqueryWithContext(ctx *gin.Context) {
	if bq := c.Bigquery(ctx); bq != nil {
		ctx.Set(CtxBigqueryKey, bq)
	}
}

// Warehouse returns the query interface over the bigquery connection.
func (c *Connection) Warehouse(ctx context.Context) warehouse.Querier {
	return warehouse.NewBigQuery(c.Bigquery(ctx))
}

// CloudStorage returns a cloud storage connection that was stored in context.
// it returns by default a cloud storage connection, if there was not on context.
// The result is nil when the connection was created without cloud storage.
func (c *Connection) CloudStorage(ctx context.Context) *storage.Client {
	if gcs, ok := ctx.Value(CtxCloudStorageKey).(*storage.Client); ok {
		return gcs
	}

	if c.CloudStorageClient == nil {
		return nil
	}

	return c.gcs
}

// Close releases every client held by the connection.
func (c *Connection) Close() error {
	var result *multierror.Error

	if c.BigQueryClient != nil && c.bq != nil {
		if err := c.bq.Close(); err != nil {
			result = multierror.Append(result, err)
		}
	}

	if c.CloudStorageClient != nil && c.gcs != nil {
		if err := c.gcs.Close(); err != nil {
			result = multierror.Append(result, err)
		}
	}

	return result.ErrorOrNil()
}
