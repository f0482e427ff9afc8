package charts

import (
	"context"
	"os"
	"path"
	"path/filepath"

	"cloud.google.com/go/storage"
	"github.com/hashicorp/go-multierror"

	"github.com/truegloryhair/commerce-reports/common"
)

const pngContentType = "image/png"

//go:generate mockery --name Sink --output ./mocks --case=underscore
type Sink interface {
	Write(ctx context.Context, name string, data []byte) error
}

// FileSink writes charts into a local directory, replacing existing files.
type FileSink struct {
	Dir string
}

func NewFileSink(dir string) *FileSink {
	return &FileSink{Dir: dir}
}

func (s *FileSink) Write(_ context.Context, name string, data []byte) error {
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return err
	}

	return os.WriteFile(filepath.Join(s.Dir, name), data, 0o644)
}

// GCSSink uploads charts to gs://<bucket>/<prefix>/<name>.
type GCSSink struct {
	client *storage.Client
	bucket string
	prefix string
}

func NewGCSSink(client *storage.Client, bucket, prefix string) *GCSSink {
	return &GCSSink{
		client: client,
		bucket: bucket,
		prefix: common.RemoveLeadingAndTrailingSlashes(prefix),
	}
}

func (s *GCSSink) ObjectName(name string) string {
	return path.Join(s.prefix, name)
}

func (s *GCSSink) Write(ctx context.Context, name string, data []byte) error {
	w := s.client.Bucket(s.bucket).Object(s.ObjectName(name)).NewWriter(ctx)
	w.ContentType = pngContentType

	if _, err := w.Write(data); err != nil {
		w.Close()
		return err
	}

	return w.Close()
}

// NewSink writes to dir, and also to gs://<bucket>/<prefix> when a bucket and
// a storage client are given.
func NewSink(dir string, client *storage.Client, bucket, prefix string) Sink {
	files := NewFileSink(dir)

	if bucket == "" || client == nil {
		return files
	}

	return MultiSink{files, NewGCSSink(client, bucket, prefix)}
}

// MultiSink writes every chart to all of its sinks, in order.
// Every sink is attempted, and the errors are combined.
type MultiSink []Sink

func (m MultiSink) Write(ctx context.Context, name string, data []byte) error {
	var result *multierror.Error

	for _, s := range m {
		if err := s.Write(ctx, name, data); err != nil {
			result = multierror.Append(result, err)
		}
	}

	return result.ErrorOrNil()
}
