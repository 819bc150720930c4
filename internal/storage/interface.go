package storage

import (
	"context"
	"io"
	"time"
)

// StorageInterface abstracts the hosted object store holding gallery and
// listing photos. The production implementation signs URLs against the
// Firebase storage bucket; the mock serves files from local disk through
// the HTTP upload handler.
type StorageInterface interface {
	// GeneratePresignedUploadURL returns a URL a client can PUT the object to.
	GeneratePresignedUploadURL(ctx context.Context, key string, contentType string, expiresIn time.Duration) (string, error)

	// GeneratePresignedDownloadURL returns a URL a client can GET the object from.
	GeneratePresignedDownloadURL(ctx context.Context, key string, expiresIn time.Duration) (string, error)

	// FileExists checks if an object exists and returns its size.
	FileExists(ctx context.Context, key string) (exists bool, size int64, err error)

	// DeleteFile removes an object.
	DeleteFile(ctx context.Context, key string) error

	// SaveFile and ReadFile back the mock HTTP handler; the hosted
	// implementation never serves bytes itself.
	SaveFile(key string, reader io.Reader) error
	ReadFile(key string) (io.ReadCloser, error)
}
