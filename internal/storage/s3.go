package storage

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	cfg "github.com/templui/postpage/internal/config"
)

// S3Scheme marks post image values that are keys in the configured bucket.
const S3Scheme = "s3://"

// ImageResolver turns a post's image value into a URL a browser can load.
type ImageResolver interface {
	URL(ctx context.Context, src string) string
}

// Passthrough returns image values unchanged.
type Passthrough struct{}

func (Passthrough) URL(_ context.Context, src string) string {
	return src
}

// S3Images presigns s3:// image keys and passes every other value through.
// Works with AWS S3, MinIO, DigitalOcean Spaces, Cloudflare R2, etc.
type S3Images struct {
	presignClient *s3.PresignClient
	bucket        string
	publicURL     string        // Base URL used when presigning fails
	presignExpiry time.Duration // Lifetime of generated URLs
}

// S3Config holds configuration for S3 image storage
type S3Config struct {
	Region        string
	Bucket        string
	AccessKey     string
	SecretKey     string
	Endpoint      string // Optional: for S3-compatible services
	PresignExpiry time.Duration
}

// New returns an S3 resolver when a bucket is configured, Passthrough otherwise.
func New(c *cfg.Config) (ImageResolver, error) {
	if c.S3Bucket == "" {
		return Passthrough{}, nil
	}

	slog.Info("initializing S3 image storage",
		"bucket", c.S3Bucket,
		"region", c.S3Region,
		"endpoint", c.S3Endpoint,
	)
	return NewS3Images(S3Config{
		Region:        c.S3Region,
		Bucket:        c.S3Bucket,
		AccessKey:     c.S3AccessKey,
		SecretKey:     c.S3SecretKey,
		Endpoint:      c.S3Endpoint,
		PresignExpiry: c.S3PresignExpiry,
	})
}

// NewS3Images creates a presigning resolver. It performs no network calls.
func NewS3Images(cfg S3Config) (*S3Images, error) {
	ctx := context.Background()

	var opts []func(*config.LoadOptions) error
	opts = append(opts, config.WithRegion(cfg.Region))

	// Add static credentials if provided
	if cfg.AccessKey != "" && cfg.SecretKey != "" {
		opts = append(opts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		))
	}

	awsCfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	// Create S3 client with optional custom endpoint
	var client *s3.Client
	if cfg.Endpoint != "" {
		client = s3.NewFromConfig(awsCfg, func(o *s3.Options) {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true // Required for MinIO and some S3-compatible services
		})
	} else {
		client = s3.NewFromConfig(awsCfg)
	}

	publicURL := cfg.Endpoint
	if publicURL == "" {
		publicURL = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.Bucket, cfg.Region)
	} else {
		publicURL = strings.TrimSuffix(cfg.Endpoint, "/") + "/" + cfg.Bucket
	}

	return &S3Images{
		presignClient: s3.NewPresignClient(client),
		bucket:        cfg.Bucket,
		publicURL:     publicURL,
		presignExpiry: cfg.PresignExpiry,
	}, nil
}

// URL presigns s3://<key> values. Other values (paths, absolute URLs) are returned as is.
func (s *S3Images) URL(ctx context.Context, src string) string {
	key, ok := strings.CutPrefix(src, S3Scheme)
	if !ok {
		return src
	}
	key = strings.TrimPrefix(key, "/")

	url, err := s.PresignedURL(ctx, key)
	if err != nil {
		slog.WarnContext(ctx, "failed to presign image, using public url", "key", key, "error", err)
		return s.publicURL + "/" + key
	}
	return url
}

// PresignedURL generates a time-limited GET URL for key
func (s *S3Images) PresignedURL(ctx context.Context, key string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	presignedReq, err := s.presignClient.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}, func(opts *s3.PresignOptions) {
		opts.Expires = s.presignExpiry
	})
	if err != nil {
		return "", fmt.Errorf("failed to presign URL: %w", err)
	}

	return presignedReq.URL, nil
}
