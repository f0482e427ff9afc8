package connection

import (
	"context"
	"net/http/httptest"
	"testing"

	"cloud.google.com/go/bigquery"
	"cloud.google.com/go/storage"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestConnectionFromContext(t *testing.T) {
	bq := &bigquery.Client{}
	gcs := &storage.Client{}

	ctx := context.WithValue(context.Background(), CtxBigqueryKey, bq)
	ctx = context.WithValue(ctx, CtxCloudStorageKey, gcs)

	conn := &Connection{}

	assert.Same(t, bq, conn.Bigquery(ctx))
	assert.Same(t, gcs, conn.CloudStorage(ctx))
	assert.NotNil(t, conn.Warehouse(ctx))
}

func TestEmptyConnection(t *testing.T) {
	conn := &Connection{}
	ctx := context.Background()

	assert.Nil(t, conn.Bigquery(ctx))
	assert.Nil(t, conn.CloudStorage(ctx))
	assert.NoError(t, conn.Close())
}

func TestBigqueryWithContext(t *testing.T) {
	gin.SetMode(gin.TestMode)

	bq := &bigquery.Client{}
	conn := &Connection{BigQueryClient: &BigQueryClient{bq: bq}}

	ctx, _ := gin.CreateTestContext(httptest.NewRecorder())
	conn.BigqueryWithContext(ctx)

	got, ok := ctx.Get(CtxBigqueryKey)
	assert.True(t, ok)
	assert.Same(t, bq, got)

	empty, _ := gin.CreateTestContext(httptest.NewRecorder())
	(&Connection{}).BigqueryWithContext(empty)

	_, ok = empty.Get(CtxBigqueryKey)
	assert.False(t, ok)
}
