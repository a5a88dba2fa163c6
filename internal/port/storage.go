package port

import (
	"context"
	"io"
	"time"
)

// FileInfo represents metadata about a stored file.
type FileInfo struct {
	SizeBytes    int64
	ContentType  string
	UserMetadata map[string]string
}

// SaveOptions carries the attributes attached to an object on write.
type SaveOptions struct {
	ContentType  string
	UserMetadata map[string]string
}

// Storage defines file storage operations.
type Storage interface {
	InitBucket(bucket string) error
	StatFile(ctx context.Context, bucket, fileKey string) (FileInfo, error)
	SaveFile(ctx context.Context, bucket, fileKey string, reader io.Reader, fileSize int64, opts SaveOptions) error
	GetFile(ctx context.Context, bucket, fileKey string) (io.ReadSeekCloser, error)
	GeneratePresignedDownloadURL(ctx context.Context, bucket, fileKey string, expiry time.Duration) (string, error)
}
