package connection

import (
	"context"
	"errors"

	"cloud.google.com/go/storage"

	"github.com/truegloryhair/commerce-reports/logger"
)

var (
	ErrCloudStorageInitialization = errors.New("cloud storage initialization error")
)

type CloudStorageClient struct {
	gcs *storage.Client
}

func NewCloudStorage(ctx context.Context, log *logger.Logging) (*CloudStorageClient, error) {
	logger := log.Logger(ctx)

	gcs, err := storage.NewClient(ctx)
	if err != nil {
		logger.Errorf("%s: %s", ErrCloudStorageInitialization, err)
		return nil, err
	}

	return &CloudStorageClient{
		gcs: gcs,
	}, nil
}
