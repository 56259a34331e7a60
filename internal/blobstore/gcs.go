package blobstore

import (
	"context"
	"fmt"
	"io"
	"os"

	"google.golang.org/api/option"
	storage "google.golang.org/api/storage/v1"
)

// GCSStore implements BlobStore on a Google Cloud Storage bucket.
type GCSStore struct {
	service *storage.Service
	bucket  string
}

// GCSOption is a functional option for configuring GCSStore
type GCSOption func(*gcsSettings)

type gcsSettings struct {
	credentialsPath string
}

// WithCredentialsFile points the client at a service-account key file.
// Without it, application default credentials apply.
func WithCredentialsFile(path string) GCSOption {
	return func(s *gcsSettings) {
		s.credentialsPath = path
	}
}

// NewGCSStore creates a BlobStore backed by the given bucket.
func NewGCSStore(ctx context.Context, bucket string, opts ...GCSOption) (*GCSStore, error) {
	var settings gcsSettings
	for _, opt := range opts {
		opt(&settings)
	}

	var clientOpts []option.ClientOption
	if settings.credentialsPath != "" {
		clientOpts = append(clientOpts, option.WithCredentialsFile(settings.credentialsPath))
	}

	svc, err := storage.NewService(ctx, clientOpts...)
	if err != nil {
		return nil, fmt.Errorf("create storage service: %w", err)
	}

	return &GCSStore{service: svc, bucket: bucket}, nil
}

func (s *GCSStore) Download(ctx context.Context, key, destPath string) error {
	resp, err := s.service.Objects.Get(s.bucket, key).Context(ctx).Download()
	if err != nil {
		return fmt.Errorf("download gs://%s/%s: %w", s.bucket, key, err)
	}
	defer resp.Body.Close()

	out, err := os.Create(destPath)
	if err != nil {
		return fmt.Errorf("create %s: %w", destPath, err)
	}
	defer out.Close()

	if _, err := io.Copy(out, resp.Body); err != nil {
		return fmt.Errorf("write %s: %w", destPath, err)
	}
	return nil
}

func (s *GCSStore) Upload(ctx context.Context, key, srcPath string) error {
	in, err := os.Open(srcPath)
	if err != nil {
		return fmt.Errorf("open %s: %w", srcPath, err)
	}
	defer in.Close()

	obj := &storage.Object{Name: key}
	if _, err := s.service.Objects.Insert(s.bucket, obj).Media(in).Context(ctx).Do(); err != nil {
		return fmt.Errorf("upload gs://%s/%s: %w", s.bucket, key, err)
	}
	return nil
}

func (s *GCSStore) URI(key string) string {
	return fmt.Sprintf("gs://%s/%s", s.bucket, key)
}

var _ BlobStore = (*GCSStore)(nil)
