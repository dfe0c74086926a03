package storage

import (
	"context"
	"fmt"

	"github.com/Jaymi-01/framez/internal/config"
)

// NewFromConfig builds the media upload service for MEDIA_PROVIDER
func NewFromConfig(ctx context.Context, cfg *config.Config) (*Service, error) {
	var (
		provider ImageUploader
		err      error
	)

	switch cfg.MediaProvider {
	case "s3":
		provider, err = NewS3Uploader(ctx, cfg.AWSRegion, cfg.AWSBucket, cfg.CDNBaseURL)
	case "cloudinary":
		provider, err = NewCloudinaryUploader(cfg.CloudinaryCloudName, cfg.CloudinaryUploadPreset)
	default:
		err = fmt.Errorf("unknown media provider %q", cfg.MediaProvider)
	}
	if err != nil {
		return nil, err
	}

	return NewService(provider, cfg.MaxImageBytes), nil
}
