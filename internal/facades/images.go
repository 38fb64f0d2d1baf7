package facades

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"github.com/sbilibin2017/dating-app/internal/logger"
)

// S3API is the subset of the S3 client used by the image store.
type S3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

// ImageStoreS3Facade implements photo upload and deletion against an
// S3-compatible image host. The object key doubles as the photo's public id.
type ImageStoreS3Facade struct {
	client   S3API
	bucket   string
	endpoint string
}

// NewImageStoreS3Facade creates a facade around an existing S3 client.
func NewImageStoreS3Facade(client S3API, endpoint, bucket string) *ImageStoreS3Facade {
	return &ImageStoreS3Facade{
		client:   client,
		bucket:   bucket,
		endpoint: strings.TrimRight(endpoint, "/"),
	}
}

// NewS3Client builds an S3 client for the given endpoint and static credentials.
func NewS3Client(ctx context.Context, endpoint, region, accessKey, secretKey string) (*s3.Client, error) {
	cfg, err := config.LoadDefaultConfig(ctx,
		config.WithRegion(region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			accessKey,
			secretKey,
			"",
		)))
	if err != nil {
		return nil, err
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(endpoint)
		o.UsePathStyle = true
	})

	return client, nil
}

func storageKey() string {
	d := time.Now()
	return fmt.Sprintf("photos/%d/%d/%v", d.Year(), d.Month(), uuid.New())
}

// Upload stores the image bytes and returns the public URL and the public id
// used for later deletion.
func (f *ImageStoreS3Facade) Upload(ctx context.Context, data []byte, contentType string) (string, string, error) {
	key := storageKey()

	_, err := f.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(f.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		logger.Log.Errorw("failed to upload image", "key", key, "error", err)
		return "", "", err
	}

	url := fmt.Sprintf("%s/%s/%s", f.endpoint, f.bucket, key)
	return url, key, nil
}

// Delete removes the image with the given public id from the store.
func (f *ImageStoreS3Facade) Delete(ctx context.Context, publicID string) error {
	_, err := f.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(f.bucket),
		Key:    aws.String(publicID),
	})
	if err != nil {
		logger.Log.Errorw("failed to delete image", "public_id", publicID, "error", err)
		return err
	}

	return nil
}
