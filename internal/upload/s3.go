// Package upload copies warehouse parquet files to an S3 bucket.
package upload

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/pgEdge/pgedge-warehouse/internal/config"
	"github.com/pgEdge/pgedge-warehouse/internal/logging"
)

// S3API is the subset of the S3 client used by Uploader.
type S3API interface {
	PutObject(ctx context.Context, input *s3.PutObjectInput, opts ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// Uploader copies local warehouse files to an S3 bucket.
type Uploader struct {
	client S3API
	bucket string
	folder string
}

// Option configures an Uploader.
type Option func(*Uploader)

// WithS3Client sets a custom S3 client (useful for testing).
func WithS3Client(c S3API) Option {
	return func(u *Uploader) { u.client = c }
}

// New creates an Uploader from the S3 section of the configuration.
// Static credentials are used when access_key/secret_key are set;
// otherwise the default AWS credential chain applies.
func New(ctx context.Context, cfg config.S3Config, opts ...Option) (*Uploader, error) {
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("S3 bucket name required")
	}
	u := &Uploader{
		bucket: cfg.Bucket,
		folder: strings.TrimRight(cfg.Folder, "/"),
	}
	for _, o := range opts {
		o(u)
	}
	if u.client == nil {
		loadOpts := []func(*awsconfig.LoadOptions) error{
			awsconfig.WithRegion(cfg.Region),
		}
		if cfg.AccessKey != "" {
			loadOpts = append(loadOpts, awsconfig.WithCredentialsProvider(
				credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
			))
		}
		awsCfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
		if err != nil {
			return nil, fmt.Errorf("loading AWS config: %w", err)
		}
		u.client = s3.NewFromConfig(awsCfg)
	}
	return u, nil
}

// UploadFiles copies the named files from dir to the bucket. A missing
// local file or a failed put is logged and skipped so the rest of the
// batch still goes out. The returned count is the number of files
// actually uploaded.
func (u *Uploader) UploadFiles(ctx context.Context, dir string, names []string) (int, error) {
	uploaded := 0
	for _, name := range names {
		path := filepath.Join(dir, name)
		f, err := os.Open(path)
		if err != nil {
			logging.Warn().
				Str("file", path).
				Err(err).
				Msg("Skipping missing file")
			continue
		}

		key := name
		if u.folder != "" {
			key = u.folder + "/" + name
		}

		_, err = u.client.PutObject(ctx, &s3.PutObjectInput{
			Bucket: aws.String(u.bucket),
			Key:    aws.String(key),
			Body:   f,
		})
		f.Close()
		if err != nil {
			logging.Error().
				Str("file", path).
				Str("bucket", u.bucket).
				Err(err).
				Msg("Upload failed")
			continue
		}

		uploaded++
		logging.Info().
			Str("file", name).
			Str("bucket", u.bucket).
			Str("key", key).
			Msg("Uploaded file")
	}

	if uploaded == 0 && len(names) > 0 {
		return 0, fmt.Errorf("no files uploaded from %s", dir)
	}
	return uploaded, nil
}
