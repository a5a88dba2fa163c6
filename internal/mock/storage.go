package mock

import (
	"bytes"
	"context"
	"io"
	"time"

	"github.com/fharvey/fileaccess-ms-go/internal/port"
)

// Storage implements the storage interface for tests.
type Storage struct {
	// stored values
	StatInfoOut port.FileInfo
	DownloadURL string
	GetOut      io.ReadSeeker

	// captured inputs
	Bucket     string
	ObjectKey  string
	TTL        time.Duration
	SavedOpts  port.SaveOptions
	SavedBytes []byte
	SavedSize  int64

	// errors
	InitBucketErr           error
	StatErr                 error
	SaveErr                 error
	GetErr                  error
	GenerateDownloadLinkErr error

	// call flags
	InitBucketCalled           bool
	StatCalled                 bool
	SaveCalled                 bool
	GetCalled                  bool
	GenerateDownloadLinkCalled bool
}

var _ port.Storage = (*Storage)(nil)

func (m *Storage) InitBucket(bucket string) error {
	m.InitBucketCalled = true
	m.Bucket = bucket
	return m.InitBucketErr
}

func (m *Storage) StatFile(ctx context.Context, bucket, fileKey string) (port.FileInfo, error) {
	m.StatCalled = true
	m.Bucket = bucket
	m.ObjectKey = fileKey
	if m.StatErr != nil {
		return port.FileInfo{}, m.StatErr
	}
	return m.StatInfoOut, nil
}

func (m *Storage) SaveFile(ctx context.Context, bucket, fileKey string, reader io.Reader, fileSize int64, opts port.SaveOptions) error {
	m.SaveCalled = true
	m.Bucket = bucket
	m.ObjectKey = fileKey
	m.SavedSize = fileSize
	m.SavedOpts = opts
	if data, err := io.ReadAll(reader); err == nil {
		m.SavedBytes = data
	}
	return m.SaveErr
}

func (m *Storage) GetFile(ctx context.Context, bucket, fileKey string) (io.ReadSeekCloser, error) {
	m.GetCalled = true
	m.Bucket = bucket
	m.ObjectKey = fileKey
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	if m.GetOut != nil {
		return noopRSC{m.GetOut}, nil
	}
	return noopRSC{bytes.NewReader([]byte("dummy"))}, nil
}

func (m *Storage) GeneratePresignedDownloadURL(ctx context.Context, bucket, fileKey string, expiry time.Duration) (string, error) {
	m.GenerateDownloadLinkCalled = true
	m.Bucket = bucket
	m.ObjectKey = fileKey
	m.TTL = expiry
	if m.GenerateDownloadLinkErr != nil {
		return "", m.GenerateDownloadLinkErr
	}
	if m.DownloadURL != "" {
		return m.DownloadURL, nil
	}
	return "https://example.com/download", nil
}
