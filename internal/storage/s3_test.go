package storage

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeS3 struct {
	input   *s3.PutObjectInput
	body    []byte
	putErr  error
	headErr error
}

func (f *fakeS3) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	f.input = in
	f.body, _ = io.ReadAll(in.Body)
	if f.putErr != nil {
		return nil, f.putErr
	}
	return &s3.PutObjectOutput{}, nil
}

func (f *fakeS3) HeadBucket(_ context.Context, _ *s3.HeadBucketInput, _ ...func(*s3.Options)) (*s3.HeadBucketOutput, error) {
	return &s3.HeadBucketOutput{}, f.headErr
}

func TestS3UploadImage(t *testing.T) {
	client := &fakeS3{}
	uploader := newS3Uploader(client, "us-east-1", "framez-media", "https://cdn.framez.test/")
	uploader.now = func() time.Time { return time.Date(2024, 3, 9, 10, 0, 0, 0, time.UTC) }

	result, err := uploader.UploadImage(context.Background(), pngHeader, "user-1", "Sunset.PNG")
	require.NoError(t, err)

	assert.Regexp(t, `^images/2024/03/user-1/[0-9a-f-]{36}\.png$`, result.Key)
	assert.Equal(t, "https://cdn.framez.test/"+result.Key, result.URL)
	assert.Equal(t, "s3", result.Provider)
	assert.Equal(t, int64(len(pngHeader)), result.Size)

	require.NotNil(t, client.input)
	assert.Equal(t, "framez-media", aws.ToString(client.input.Bucket))
	assert.Equal(t, "image/png", aws.ToString(client.input.ContentType))
	assert.Equal(t, "user-1", client.input.Metadata["user-id"])
	assert.Equal(t, pngHeader, client.body)
}

func TestS3UploadError(t *testing.T) {
	uploader := newS3Uploader(&fakeS3{putErr: errors.New("access denied")}, "us-east-1", "b", "https://cdn")

	_, err := uploader.UploadImage(context.Background(), pngHeader, "u", "a.jpg")
	require.Error(t, err)
	assert.Equal(t, "failed to upload image: access denied", err.Error())
}

func TestS3CheckBucketAccess(t *testing.T) {
	assert.NoError(t, newS3Uploader(&fakeS3{}, "r", "b", "u").CheckBucketAccess(context.Background()))

	err := newS3Uploader(&fakeS3{headErr: errors.New("forbidden")}, "r", "b", "u").CheckBucketAccess(context.Background())
	assert.ErrorContains(t, err, "cannot access S3 bucket b")
}

func TestImageKeyFormat(t *testing.T) {
	key := imageKey(time.Date(2025, 11, 1, 0, 0, 0, 0, time.UTC), "u9", "file", ".webp")
	assert.Equal(t, "images/2025/11/u9/file.webp", key)
}
