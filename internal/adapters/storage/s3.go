// internal/adapters/storage/s3.go
package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"mime"
	"path"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
	"github.com/google/uuid"

	"github.com/alsaqri/phoneshop/internal/core/ports"
	"github.com/alsaqri/phoneshop/internal/pkg/config"
)

const defaultPresignTTL = 15 * time.Minute

// ObjectStore keeps label images, label PDFs and inventory exports in a bucket.
type ObjectStore struct {
	api     *s3.Client
	presign *s3.PresignClient
	uploads *manager.Uploader
	fetches *manager.Downloader
	bucket  string
	linkTTL time.Duration
	logger  *slog.Logger
}

var _ ports.BlobStorage = (*ObjectStore)(nil)

// NewObjectStore connects to the bucket named in cfg, creating it when missing.
// A custom endpoint points the client at MinIO in development.
func NewObjectStore(ctx context.Context, cfg config.StorageConfig, logger *slog.Logger) (*ObjectStore, error) {
	opts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(cfg.Region)}
	if cfg.AccessKeyID != "" && cfg.SecretAccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, "")))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	api := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.EndpointResolver = s3.EndpointResolverFromURL(cfg.Endpoint)
		}
		o.UsePathStyle = cfg.UsePathStyle
	})

	linkTTL := cfg.PresignTTL
	if linkTTL <= 0 {
		linkTTL = defaultPresignTTL
	}

	store := &ObjectStore{
		api:     api,
		presign: s3.NewPresignClient(api),
		uploads: manager.NewUploader(api),
		fetches: manager.NewDownloader(api),
		bucket:  cfg.Bucket,
		linkTTL: linkTTL,
		logger:  logger.With(slog.String("component", "object_store"), slog.String("bucket", cfg.Bucket)),
	}

	if err := store.provision(ctx, cfg.Region); err != nil {
		return nil, err
	}
	return store, nil
}

func (o *ObjectStore) provision(ctx context.Context, region string) error {
	if _, err := o.api.HeadBucket(ctx, &s3.HeadBucketInput{Bucket: aws.String(o.bucket)}); err == nil {
		return nil
	}

	input := &s3.CreateBucketInput{Bucket: aws.String(o.bucket)}
	// us-east-1 rejects an explicit location constraint
	if region != "" && region != "us-east-1" {
		input.CreateBucketConfiguration = &types.CreateBucketConfiguration{
			LocationConstraint: types.BucketLocationConstraint(region),
		}
	}
	if _, err := o.api.CreateBucket(ctx, input); err != nil {
		return fmt.Errorf("failed to create bucket %s: %w", o.bucket, err)
	}

	o.logger.InfoContext(ctx, "bucket created")
	return nil
}

// Upload writes data under key, tagging it with the artifact kind taken from
// the first path segment (labels, exports).
func (o *ObjectStore) Upload(ctx context.Context, key string, data []byte, contentType string) error {
	_, err := o.uploads.Upload(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(o.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentTypeFor(key, contentType)),
		Metadata: map[string]string{
			"artifact":  artifactKind(key),
			"stored-at": time.Now().UTC().Format(time.RFC3339),
			"upload-id": uuid.NewString(),
		},
	})
	if err != nil {
		return fmt.Errorf("failed to upload %s: %w", key, err)
	}

	o.logger.InfoContext(ctx, "artifact stored",
		slog.String("key", key),
		slog.Int("bytes", len(data)))
	return nil
}

func (o *ObjectStore) Download(ctx context.Context, key string) ([]byte, error) {
	buf := manager.NewWriteAtBuffer(nil)
	if _, err := o.fetches.Download(ctx, buf, &s3.GetObjectInput{
		Bucket: aws.String(o.bucket),
		Key:    aws.String(key),
	}); err != nil {
		if isNotFound(err) {
			return nil, fmt.Errorf("artifact %s not found: %w", key, err)
		}
		return nil, fmt.Errorf("failed to download %s: %w", key, err)
	}
	return buf.Bytes(), nil
}

// Delete is idempotent; S3 answers 204 for missing keys.
func (o *ObjectStore) Delete(ctx context.Context, key string) error {
	if _, err := o.api.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(o.bucket),
		Key:    aws.String(key),
	}); err != nil {
		return fmt.Errorf("failed to delete %s: %w", key, err)
	}
	o.logger.DebugContext(ctx, "artifact deleted", slog.String("key", key))
	return nil
}

func (o *ObjectStore) Exists(ctx context.Context, key string) (bool, error) {
	_, err := o.api.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(o.bucket),
		Key:    aws.String(key),
	})
	switch {
	case err == nil:
		return true, nil
	case isNotFound(err):
		return false, nil
	default:
		return false, fmt.Errorf("failed to stat %s: %w", key, err)
	}
}

// GetPresignedURL returns a download link valid for the configured TTL.
func (o *ObjectStore) GetPresignedURL(ctx context.Context, key string) (string, error) {
	req, err := o.presign.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(o.bucket),
		Key:    aws.String(key),
	}, func(opts *s3.PresignOptions) { opts.Expires = o.linkTTL })
	if err != nil {
		return "", fmt.Errorf("failed to presign %s: %w", key, err)
	}
	return req.URL, nil
}

// ListOlderThan feeds the artifact cleanup job.
func (o *ObjectStore) ListOlderThan(ctx context.Context, prefix string, age time.Duration) ([]string, error) {
	cutoff := time.Now().Add(-age)
	pages := s3.NewListObjectsV2Paginator(o.api, &s3.ListObjectsV2Input{
		Bucket: aws.String(o.bucket),
		Prefix: aws.String(prefix),
	})

	var keys []string
	for pages.HasMorePages() {
		page, err := pages.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list %s: %w", prefix, err)
		}
		keys = append(keys, staleKeys(page.Contents, cutoff)...)
	}
	return keys, nil
}

func staleKeys(objects []types.Object, cutoff time.Time) []string {
	var keys []string
	for _, obj := range objects {
		if obj.Key != nil && obj.LastModified != nil && obj.LastModified.Before(cutoff) {
			keys = append(keys, *obj.Key)
		}
	}
	return keys
}

func isNotFound(err error) bool {
	var missing *types.NotFound
	var noKey *types.NoSuchKey
	if errors.As(err, &missing) || errors.As(err, &noKey) {
		return true
	}
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "NotFound", "NoSuchKey", "404":
			return true
		}
	}
	return false
}

func artifactKind(key string) string {
	kind, _, found := strings.Cut(strings.TrimPrefix(key, "/"), "/")
	if !found || kind == "" {
		return "misc"
	}
	return kind
}

// contentTypeFor falls back to the key's extension when no type is given.
func contentTypeFor(key, contentType string) string {
	if contentType != "" {
		return contentType
	}
	if byExt := mime.TypeByExtension(path.Ext(key)); byExt != "" {
		return byExt
	}
	return "application/octet-stream"
}
