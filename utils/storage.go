package utils

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

// Storage wraps the S3 bucket that holds product and homepage assets.
// Uploaded objects are served through CloudFront, so public URLs carry the
// distribution domain rather than the bucket address.
type Storage struct {
	client    *s3.Client
	uploader  *manager.Uploader
	bucket    string
	cdnDomain string
}

func NewStorage(ctx context.Context) (*Storage, error) {
	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("error loading AWS config: %w", err)
	}

	client := s3.NewFromConfig(cfg)
	return &Storage{
		client:    client,
		uploader:  manager.NewUploader(client),
		bucket:    os.Getenv("AWS_BUCKET_NAME"),
		cdnDomain: os.Getenv("CLOUDFRONT_DOMAIN"),
	}, nil
}

// Upload stores body under key and returns the public URL.
func (s *Storage) Upload(ctx context.Context, key string, body io.Reader, contentType string) (string, error) {
	_, err := s.uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("upload %s: %w", key, err)
	}
	return s.PublicURL(key), nil
}

func (s *Storage) Delete(ctx context.Context, key string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	return err
}

func (s *Storage) PublicURL(key string) string {
	return fmt.Sprintf("https://%s/%s", s.cdnDomain, key)
}

// KeyFromURL extracts the object key from one of our public URLs. Returns
// false for URLs that do not belong to the configured distribution.
func (s *Storage) KeyFromURL(url string) (string, bool) {
	prefix := fmt.Sprintf("https://%s/", s.cdnDomain)
	if !strings.HasPrefix(url, prefix) {
		return "", false
	}
	key := strings.TrimPrefix(url, prefix)
	if key == "" {
		return "", false
	}
	return key, true
}

// ObjectKey builds a collision-free key for an uploaded file, keeping the
// original filename for readability.
func ObjectKey(prefix, filename string) string {
	return fmt.Sprintf("%s/%s-%s", prefix, uuid.NewString(), filename)
}
