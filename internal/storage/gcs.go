package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	gcs "cloud.google.com/go/storage"

	"anacarlita-backend/internal/logger"
)

// GCSStorageService signs upload and download URLs against the site's
// Firebase storage bucket. Bytes never pass through this server; clients
// talk to the bucket directly.
type GCSStorageService struct {
	bucket *gcs.BucketHandle
}

func NewGCSStorageService(bucket *gcs.BucketHandle) *GCSStorageService {
	return &GCSStorageService{bucket: bucket}
}

func (s *GCSStorageService) GeneratePresignedUploadURL(ctx context.Context, key string, contentType string, expiresIn time.Duration) (string, error) {
	logger.ExternalServiceCall("gcs", "SignedURL", "method", http.MethodPut, "key", key)
	url, err := s.bucket.SignedURL(key, &gcs.SignedURLOptions{
		Scheme:      gcs.SigningSchemeV4,
		Method:      http.MethodPut,
		ContentType: contentType,
		Expires:     time.Now().Add(expiresIn),
	})
	logger.ExternalServiceResult("gcs", "SignedURL", err, "key", key)
	if err != nil {
		return "", fmt.Errorf("failed to sign upload URL: %w", err)
	}
	return url, nil
}

func (s *GCSStorageService) GeneratePresignedDownloadURL(ctx context.Context, key string, expiresIn time.Duration) (string, error) {
	url, err := s.bucket.SignedURL(key, &gcs.SignedURLOptions{
		Scheme:  gcs.SigningSchemeV4,
		Method:  http.MethodGet,
		Expires: time.Now().Add(expiresIn),
	})
	if err != nil {
		return "", fmt.Errorf("failed to sign download URL: %w", err)
	}
	return url, nil
}

func (s *GCSStorageService) FileExists(ctx context.Context, key string) (bool, int64, error) {
	attrs, err := s.bucket.Object(key).Attrs(ctx)
	if err != nil {
		if errors.Is(err, gcs.ErrObjectNotExist) {
			return false, 0, nil
		}
		return false, 0, err
	}
	return true, attrs.Size, nil
}

func (s *GCSStorageService) DeleteFile(ctx context.Context, key string) error {
	err := s.bucket.Object(key).Delete(ctx)
	if errors.Is(err, gcs.ErrObjectNotExist) {
		return nil
	}
	return err
}

// SaveFile is a mock-only operation: clients upload straight to the bucket.
func (s *GCSStorageService) SaveFile(key string, reader io.Reader) error {
	return errors.New("direct save not supported for hosted storage")
}

// ReadFile is a mock-only operation: clients download straight from the bucket.
func (s *GCSStorageService) ReadFile(key string) (io.ReadCloser, error) {
	return nil, errors.New("direct read not supported for hosted storage")
}
