package mock

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/fharvey/fileaccess-ms-go/internal/port"
)

var (
	errNoSuchBucket = errors.New("memory storage: no such bucket")
	errNoSuchKey    = errors.New("memory storage: no such key")
)

type memObject struct {
	data []byte
	info port.FileInfo
}

// MemoryStorage is an in-memory stand-in for the object store, used to
// exercise whole flows (ingest then resolve) without a running server.
type MemoryStorage struct {
	mu      sync.Mutex
	buckets map[string]map[string]memObject
}

var _ port.Storage = (*MemoryStorage)(nil)

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{buckets: make(map[string]map[string]memObject)}
}

func (m *MemoryStorage) InitBucket(bucket string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.buckets[bucket]; !ok {
		m.buckets[bucket] = make(map[string]memObject)
	}
	return nil
}

func (m *MemoryStorage) StatFile(ctx context.Context, bucket, fileKey string) (port.FileInfo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	obj, err := m.lookup(bucket, fileKey)
	if err != nil {
		return port.FileInfo{}, err
	}
	return obj.info, nil
}

func (m *MemoryStorage) SaveFile(ctx context.Context, bucket, fileKey string, reader io.Reader, fileSize int64, opts port.SaveOptions) error {
	data, err := io.ReadAll(reader)
	if err != nil {
		return fmt.Errorf("memory storage: read body: %w", err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.buckets[bucket]
	if !ok {
		return errNoSuchBucket
	}
	// last write wins, like the real store
	b[fileKey] = memObject{
		data: data,
		info: port.FileInfo{
			SizeBytes:    fileSize,
			ContentType:  opts.ContentType,
			UserMetadata: opts.UserMetadata,
		},
	}
	return nil
}

func (m *MemoryStorage) GetFile(ctx context.Context, bucket, fileKey string) (io.ReadSeekCloser, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	obj, err := m.lookup(bucket, fileKey)
	if err != nil {
		return nil, err
	}
	return noopRSC{bytes.NewReader(obj.data)}, nil
}

func (m *MemoryStorage) GeneratePresignedDownloadURL(ctx context.Context, bucket, fileKey string, expiry time.Duration) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, err := m.lookup(bucket, fileKey); err != nil {
		return "", err
	}
	return fmt.Sprintf("https://store.local/%s/%s?X-Amz-Expires=%d", bucket, fileKey, int64(expiry.Seconds())), nil
}

func (m *MemoryStorage) lookup(bucket, fileKey string) (memObject, error) {
	b, ok := m.buckets[bucket]
	if !ok {
		return memObject{}, errNoSuchBucket
	}
	obj, ok := b[fileKey]
	if !ok {
		return memObject{}, errNoSuchKey
	}
	return obj, nil
}
