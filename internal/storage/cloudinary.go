package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Jaymi-01/framez/internal/telemetry"
	"github.com/go-resty/resty/v2"
)

const cloudinaryAPIBase = "https://api.cloudinary.com/v1_1"

// CloudinaryUploader posts images to Cloudinary with an unsigned upload preset
type CloudinaryUploader struct {
	client    *resty.Client
	cloudName string
	preset    string
}

type cloudinaryResponse struct {
	PublicID  string `json:"public_id"`
	SecureURL string `json:"secure_url"`
	Bytes     int64  `json:"bytes"`
}

type cloudinaryErrorResponse struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

// NewCloudinaryUploader creates an uploader for the given cloud and preset
func NewCloudinaryUploader(cloudName, preset string) (*CloudinaryUploader, error) {
	return newCloudinaryUploader(cloudinaryAPIBase, cloudName, preset)
}

func newCloudinaryUploader(apiBase, cloudName, preset string) (*CloudinaryUploader, error) {
	if cloudName == "" {
		return nil, &ConfigError{Provider: "Cloudinary", Variable: "CLOUDINARY_CLOUD_NAME"}
	}
	if preset == "" {
		return nil, &ConfigError{Provider: "Cloudinary", Variable: "CLOUDINARY_UPLOAD_PRESET"}
	}

	client := resty.NewWithClient(telemetry.NewInstrumentedHTTPClient(30 * time.Second)).
		SetBaseURL(apiBase)

	return &CloudinaryUploader{client: client, cloudName: cloudName, preset: preset}, nil
}

func (u *CloudinaryUploader) Name() string { return "cloudinary" }

// UploadImage uploads the image and returns its secure_url
func (u *CloudinaryUploader) UploadImage(ctx context.Context, data []byte, userID, filename string) (*UploadResult, error) {
	var result cloudinaryResponse
	var apiErr cloudinaryErrorResponse

	resp, err := u.client.R().
		SetContext(ctx).
		SetFileReader("file", filename, bytes.NewReader(data)).
		SetFormData(map[string]string{
			"upload_preset": u.preset,
			"tags":          "framez,user_" + userID,
		}).
		SetResult(&result).
		SetError(&apiErr).
		Post(fmt.Sprintf("/%s/image/upload", u.cloudName))
	if err != nil {
		return nil, &UploadError{Err: err}
	}

	if resp.IsError() {
		msg := apiErr.Error.Message
		if msg == "" {
			msg = fmt.Sprintf("unexpected status %d", resp.StatusCode())
		}
		return nil, &UploadError{Err: errors.New(msg)}
	}
	if result.SecureURL == "" {
		return nil, &UploadError{Err: errors.New("response is missing secure_url")}
	}

	size := result.Bytes
	if size == 0 {
		size = int64(len(data))
	}
	return &UploadResult{
		Key:      result.PublicID,
		URL:      result.SecureURL,
		Provider: u.Name(),
		Size:     size,
	}, nil
}
