// Package s3 implements the S3-compatible object storage backend.
// It supports AWS S3, Aliyun OSS, MinIO and other S3-compatible services.
package s3

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

const (
	// URLModePublic builds non-expiring URLs from the bucket endpoint or a
	// configured CDN base URL. Requires the bucket (or CDN) to be publicly
	// readable.
	URLModePublic = "public"
	// URLModePresigned generates presigned GET URLs.
	URLModePresigned = "presigned"

	// DefaultPresignExpiry is the default expiry time for presigned URLs.
	DefaultPresignExpiry = 7 * 24 * time.Hour
)

// Config holds S3 storage configuration.
type Config struct {
	Endpoint      string
	Region        string
	Bucket        string
	AccessKey     string
	SecretKey     string
	PathStyle     bool // Use path-style URLs (required for MinIO)
	URLMode       string
	PublicBaseURL string // CDN or bucket base URL used in public mode
}

// Storage implements the storage.Storage interface using S3-compatible storage.
type Storage struct {
	client        *s3.Client
	presignClient *s3.PresignClient
	cfg           Config
}

// New creates a new S3 storage backend.
func New(cfg Config) (*Storage, error) {
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("bucket name is required")
	}
	if cfg.AccessKey == "" || cfg.SecretKey == "" {
		return nil, fmt.Errorf("access key and secret key are required")
	}
	if cfg.Region == "" {
		cfg.Region = "us-east-1"
	}
	if cfg.URLMode == "" {
		cfg.URLMode = URLModePublic
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(),
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	var s3OptFns []func(*s3.Options)
	if cfg.Endpoint != "" {
		s3OptFns = append(s3OptFns, func(o *s3.Options) {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		})
	}
	if cfg.PathStyle {
		s3OptFns = append(s3OptFns, func(o *s3.Options) {
			o.UsePathStyle = true
		})
	}

	client := s3.NewFromConfig(awsCfg, s3OptFns...)

	return &Storage{
		client:        client,
		presignClient: s3.NewPresignClient(client),
		cfg:           cfg,
	}, nil
}

// Upload puts the buffered payload under "{folder}/{uuid}{ext}" and returns
// its URL. A single PutObject call; no retry and no cleanup of partial
// remote state on failure.
func (s *Storage) Upload(ctx context.Context, folder, fileName, contentType string, data []byte) (string, error) {
	if len(data) == 0 {
		return "", fmt.Errorf("empty upload payload")
	}

	key := objectKey(folder, fileName)

	input := &s3.PutObjectInput{
		Bucket:        aws.String(s.cfg.Bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentLength: aws.Int64(int64(len(data))),
	}
	if contentType != "" {
		input.ContentType = aws.String(contentType)
	}

	if _, err := s.client.PutObject(ctx, input); err != nil {
		return "", fmt.Errorf("put object: %w", err)
	}

	return s.objectURL(ctx, key)
}

// Type returns "s3" as the storage backend identifier.
func (s *Storage) Type() string {
	return "s3"
}

func (s *Storage) objectURL(ctx context.Context, key string) (string, error) {
	if s.cfg.URLMode == URLModePresigned {
		presignResult, err := s.presignClient.PresignGetObject(ctx, &s3.GetObjectInput{
			Bucket: aws.String(s.cfg.Bucket),
			Key:    aws.String(key),
		}, func(opts *s3.PresignOptions) {
			opts.Expires = DefaultPresignExpiry
		})
		if err != nil {
			return "", fmt.Errorf("presign url: %w", err)
		}
		return presignResult.URL, nil
	}

	if s.cfg.PublicBaseURL != "" {
		return strings.TrimSuffix(s.cfg.PublicBaseURL, "/") + "/" + key, nil
	}
	if s.cfg.Endpoint != "" {
		base, err := url.Parse(s.cfg.Endpoint)
		if err != nil {
			return "", fmt.Errorf("parse endpoint: %w", err)
		}
		if s.cfg.PathStyle {
			base.Path = path.Join(base.Path, s.cfg.Bucket, key)
		} else {
			base.Host = s.cfg.Bucket + "." + base.Host
			base.Path = path.Join(base.Path, key)
		}
		return base.String(), nil
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.cfg.Bucket, s.cfg.Region, key), nil
}

// objectKey namespaces uploads by folder and keeps only the extension of the
// client-supplied file name.
func objectKey(folder, fileName string) string {
	ext := strings.ToLower(path.Ext(fileName))
	name := uuid.NewString() + ext
	folder = strings.Trim(folder, "/")
	if folder == "" {
		return name
	}
	return folder + "/" + name
}
