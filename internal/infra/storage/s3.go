// Package storage uploads and removes file content in S3-compatible object
// storage through github.com/minio/minio-go/v7.
package storage

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"clinic-records/internal/observability/metrics"
	"clinic-records/internal/resilience/circuitbreaker"
)

// Config describes the object storage endpoint.
type Config struct {
	Endpoint        string // e.g. https://s3.example.com
	AccessKeyID     string
	SecretAccessKey string
	Region          string
	Bucket          string
	UsePathStyle    bool
}

// objectAPI is the subset of *minio.Client used by S3Store.
type objectAPI interface {
	PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error)
	RemoveObject(ctx context.Context, bucketName, objectName string, opts minio.RemoveObjectOptions) error
	BucketExists(ctx context.Context, bucketName string) (bool, error)
}

// S3Store stores objects in one bucket. Calls go through a circuit breaker
// and are never retried.
type S3Store struct {
	client  objectAPI
	bucket  string
	baseURL string
	cb      *circuitbreaker.CircuitBreaker
}

// NewS3Store builds a minio client for cfg.
func NewS3Store(cfg Config) (*S3Store, error) {
	if cfg.Endpoint == "" {
		return nil, fmt.Errorf("object storage: endpoint is required")
	}
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("object storage: bucket is required")
	}

	host, secure, err := splitEndpoint(cfg.Endpoint)
	if err != nil {
		return nil, err
	}

	lookup := minio.BucketLookupAuto
	if cfg.UsePathStyle {
		lookup = minio.BucketLookupPath
	}

	client, err := minio.New(host, &minio.Options{
		Creds:        credentials.NewStaticV4(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Secure:       secure,
		Region:       cfg.Region,
		BucketLookup: lookup,
	})
	if err != nil {
		return nil, fmt.Errorf("object storage: %w", err)
	}

	slog.Info("object storage configured",
		slog.String("endpoint", host),
		slog.String("bucket", cfg.Bucket),
		slog.Bool("path_style", cfg.UsePathStyle))

	return newS3Store(client, cfg.Endpoint, cfg.Bucket), nil
}

func newS3Store(client objectAPI, endpoint, bucket string) *S3Store {
	return &S3Store{
		client:  client,
		bucket:  bucket,
		baseURL: strings.TrimRight(endpoint, "/"),
		cb:      circuitbreaker.New(circuitbreaker.ObjectStorageConfig()),
	}
}

// Put uploads body under key and returns the object's public URL.
func (s *S3Store) Put(ctx context.Context, key string, body io.Reader, size int64, contentType string) (string, error) {
	start := time.Now()
	_, err := circuitbreaker.Run(s.cb, func() (minio.UploadInfo, error) {
		return s.client.PutObject(ctx, s.bucket, key, body, size, minio.PutObjectOptions{
			ContentType: contentType,
		})
	})
	metrics.ObserveObjectStorage("put", start, err)
	if err != nil {
		return "", fmt.Errorf("put object %s: %w", key, err)
	}
	return s.URL(key), nil
}

// Delete removes the object stored under key.
func (s *S3Store) Delete(ctx context.Context, key string) error {
	start := time.Now()
	_, err := s.cb.Execute(func() (interface{}, error) {
		return nil, s.client.RemoveObject(ctx, s.bucket, key, minio.RemoveObjectOptions{})
	})
	metrics.ObserveObjectStorage("delete", start, err)
	if err != nil {
		return fmt.Errorf("remove object %s: %w", key, err)
	}
	return nil
}

// URL returns <endpoint>/<bucket>/<key>.
func (s *S3Store) URL(key string) string {
	return s.baseURL + "/" + s.bucket + "/" + key
}

// Ping reports whether the bucket is reachable.
func (s *S3Store) Ping(ctx context.Context) error {
	ok, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("bucket %s: %w", s.bucket, err)
	}
	if !ok {
		return fmt.Errorf("bucket %s does not exist", s.bucket)
	}
	return nil
}

// splitEndpoint turns a URL or bare host into the host[:port] minio expects
// and whether TLS is used. A bare host is treated as https.
func splitEndpoint(endpoint string) (string, bool, error) {
	if !strings.Contains(endpoint, "://") {
		return strings.TrimRight(endpoint, "/"), true, nil
	}
	u, err := url.Parse(endpoint)
	if err != nil {
		return "", false, fmt.Errorf("object storage endpoint: %w", err)
	}
	if u.Host == "" {
		return "", false, fmt.Errorf("object storage endpoint %q has no host", endpoint)
	}
	switch u.Scheme {
	case "https":
		return u.Host, true, nil
	case "http":
		return u.Host, false, nil
	default:
		return "", false, fmt.Errorf("object storage endpoint %q: unsupported scheme %q", endpoint, u.Scheme)
	}
}
