package services

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"heartwave_server/apperrors"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// Presigner is the part of s3.PresignClient the image service needs.
type Presigner interface {
	PresignGetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error)
}

// ImageService turns stored cover/avatar keys into short-lived read URLs.
type ImageService struct {
	Presigner Presigner
	Bucket    string
	Expiry    time.Duration
}

// NewImageService presigns against bucket using an S3 client built from cfg.
func NewImageService(cfg aws.Config, bucket string, expiry time.Duration) *ImageService {
	return &ImageService{
		Presigner: s3.NewPresignClient(s3.NewFromConfig(cfg)),
		Bucket:    bucket,
		Expiry:    expiry,
	}
}

// Enabled reports whether a bucket is configured.
func (is *ImageService) Enabled() bool {
	return is != nil && is.Bucket != ""
}

// GenerateReadURL generates a presigned URL for reading an image. Absolute
// URLs, like the ones in the built-in catalog, are returned untouched.
func (is *ImageService) GenerateReadURL(ctx context.Context, key string) (string, error) {
	if key == "" {
		return "", apperrors.InvalidRequest("image key is required")
	}
	if strings.HasPrefix(key, "http://") || strings.HasPrefix(key, "https://") {
		return key, nil
	}
	if !is.Enabled() {
		return "", apperrors.New(apperrors.CodeImagesDisabled, http.StatusNotFound, "image storage is not configured")
	}

	params := &s3.GetObjectInput{
		Bucket: aws.String(is.Bucket),
		Key:    aws.String(key),
	}
	presigned, err := is.Presigner.PresignGetObject(ctx, params, s3.WithPresignExpires(is.Expiry))
	if err != nil {
		return "", fmt.Errorf("failed to presign %s: %w", key, err)
	}
	return presigned.URL, nil
}
