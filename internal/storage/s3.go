package storage

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

// s3API is the subset of the S3 client the uploader needs
type s3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	HeadBucket(ctx context.Context, params *s3.HeadBucketInput, optFns ...func(*s3.Options)) (*s3.HeadBucketOutput, error)
}

// S3Uploader stores images in an S3 bucket served through a CDN base URL
type S3Uploader struct {
	client  s3API
	bucket  string
	region  string
	baseURL string
	now     func() time.Time
}

// NewS3Uploader creates a new S3 uploader
func NewS3Uploader(ctx context.Context, region, bucket, baseURL string) (*S3Uploader, error) {
	if bucket == "" {
		return nil, &ConfigError{Provider: "S3", Variable: "AWS_BUCKET"}
	}
	if baseURL == "" {
		return nil, &ConfigError{Provider: "S3", Variable: "CDN_BASE_URL"}
	}

	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	return newS3Uploader(s3.NewFromConfig(cfg), region, bucket, baseURL), nil
}

func newS3Uploader(client s3API, region, bucket, baseURL string) *S3Uploader {
	return &S3Uploader{
		client:  client,
		bucket:  bucket,
		region:  region,
		baseURL: baseURL,
		now:     time.Now,
	}
}

func (u *S3Uploader) Name() string { return "s3" }

// UploadImage stores the image under images/{year}/{month}/{userID}/{uuid}{ext}
func (u *S3Uploader) UploadImage(ctx context.Context, data []byte, userID, filename string) (*UploadResult, error) {
	extension := strings.ToLower(filepath.Ext(filename))
	if extension == "" {
		extension = ".jpg"
	}

	now := u.now().UTC()
	key := imageKey(now, userID, uuid.New().String(), extension)

	_, err := u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(getContentTypeForImage(extension)),

		// images are immutable once written
		CacheControl: aws.String("public, max-age=31536000, immutable"),

		Metadata: map[string]string{
			"user-id":           userID,
			"original-filename": filename,
			"upload-timestamp":  now.Format(time.RFC3339),
		},
	})
	if err != nil {
		return nil, &UploadError{Err: err}
	}

	return &UploadResult{
		Key:      key,
		URL:      fmt.Sprintf("%s/%s", strings.TrimSuffix(u.baseURL, "/"), key),
		Provider: u.Name(),
		Size:     int64(len(data)),
	}, nil
}

// CheckBucketAccess verifies that we can access the S3 bucket
func (u *S3Uploader) CheckBucketAccess(ctx context.Context) error {
	_, err := u.client.HeadBucket(ctx, &s3.HeadBucketInput{
		Bucket: aws.String(u.bucket),
	})
	if err != nil {
		return fmt.Errorf("cannot access S3 bucket %s: %w", u.bucket, err)
	}
	return nil
}

func imageKey(now time.Time, userID, fileID, extension string) string {
	return fmt.Sprintf("images/%d/%02d/%s/%s%s", now.Year(), now.Month(), userID, fileID, extension)
}
