package storage

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/Jaymi-01/framez/internal/logger"
	"github.com/Jaymi-01/framez/internal/metrics"
	"github.com/Jaymi-01/framez/internal/telemetry"
	"go.uber.org/zap"
)

var (
	ErrEmptyImage    = errors.New("image is empty")
	ErrImageTooLarge = errors.New("image is too large")
	ErrNotAnImage    = errors.New("file is not a supported image")
	ErrInvalidData   = errors.New("invalid image data URI")
)

// UploadResult describes an uploaded image
type UploadResult struct {
	Key      string `json:"key"`
	URL      string `json:"url"`
	Provider string `json:"provider"`
	Size     int64  `json:"size"`
}

// ImageUploader is a media provider that hosts images at public URLs
type ImageUploader interface {
	Name() string
	UploadImage(ctx context.Context, data []byte, userID, filename string) (*UploadResult, error)
}

// ConfigError reports a missing media provider setting
type ConfigError struct {
	Provider string
	Variable string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s credentials missing: set %s", e.Provider, e.Variable)
}

// UploadError wraps a provider failure
type UploadError struct {
	Err error
}

func (e *UploadError) Error() string {
	return fmt.Sprintf("failed to upload image: %v", e.Err)
}

func (e *UploadError) Unwrap() error {
	return e.Err
}

// Service validates images and hands them to the configured provider
type Service struct {
	provider ImageUploader
	maxBytes int64
}

// NewService wraps a provider with size and type checks
func NewService(provider ImageUploader, maxBytes int64) *Service {
	return &Service{provider: provider, maxBytes: maxBytes}
}

// MaxBytes is the largest accepted image size
func (s *Service) MaxBytes() int64 {
	return s.maxBytes
}

// UploadImage checks size and content type, then uploads
func (s *Service) UploadImage(ctx context.Context, data []byte, userID, filename string) (*UploadResult, error) {
	if len(data) == 0 {
		return nil, ErrEmptyImage
	}
	if s.maxBytes > 0 && int64(len(data)) > s.maxBytes {
		return nil, ErrImageTooLarge
	}

	contentType := http.DetectContentType(data)
	if !strings.HasPrefix(contentType, "image/") {
		return nil, ErrNotAnImage
	}
	if filepath.Ext(filename) == "" {
		filename += ExtensionForContentType(contentType)
	}

	ctx, span := telemetry.TraceExternalCall(ctx, s.provider.Name(), "upload_image")
	defer span.End()

	result, err := s.provider.UploadImage(ctx, data, userID, filename)
	if err != nil {
		telemetry.RecordExternalCallError(span, err, 0)
		metrics.Get().ImageUploads.WithLabelValues(s.provider.Name(), "error").Inc()
		logger.Log.Warn("Image upload failed",
			logger.WithUserID(userID),
			zap.String("provider", s.provider.Name()),
			zap.Error(err),
		)
		var uploadErr *UploadError
		var cfgErr *ConfigError
		if errors.As(err, &uploadErr) || errors.As(err, &cfgErr) {
			return nil, err
		}
		return nil, &UploadError{Err: err}
	}

	telemetry.RecordExternalCallSuccess(span, http.StatusOK, result.Size)
	metrics.Get().ImageUploads.WithLabelValues(s.provider.Name(), "success").Inc()
	metrics.Get().ImageUploadBytes.Observe(float64(len(data)))
	return result, nil
}

// DecodeDataURI decodes a "data:image/<type>;base64,<payload>" string. It
// returns the bytes and a file extension for the declared type.
func DecodeDataURI(uri string) ([]byte, string, error) {
	rest, ok := strings.CutPrefix(strings.TrimSpace(uri), "data:")
	if !ok {
		return nil, "", ErrInvalidData
	}
	meta, payload, ok := strings.Cut(rest, ",")
	if !ok {
		return nil, "", ErrInvalidData
	}
	mediaType, encoding, ok := strings.Cut(meta, ";")
	if !ok || encoding != "base64" || !strings.HasPrefix(mediaType, "image/") {
		return nil, "", ErrInvalidData
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrInvalidData, err)
	}
	return data, ExtensionForContentType(mediaType), nil
}

// ExtensionForContentType maps an image MIME type to a file extension
func ExtensionForContentType(contentType string) string {
	switch strings.ToLower(contentType) {
	case "image/jpeg", "image/jpg":
		return ".jpg"
	case "image/png":
		return ".png"
	case "image/gif":
		return ".gif"
	case "image/webp":
		return ".webp"
	default:
		return ".jpg"
	}
}

// getContentTypeForImage returns the MIME type for an image extension
func getContentTypeForImage(extension string) string {
	switch strings.ToLower(extension) {
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".png":
		return "image/png"
	case ".gif":
		return "image/gif"
	case ".webp":
		return "image/webp"
	default:
		return "application/octet-stream"
	}
}
