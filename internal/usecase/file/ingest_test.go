package file

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fharvey/fileaccess-ms-go/internal/mock"
	"github.com/fharvey/fileaccess-ms-go/internal/model"
	"github.com/fharvey/fileaccess-ms-go/internal/port"
)

func writeTempFile(t *testing.T, name string, content []byte) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(p, content, 0o600); err != nil {
		t.Fatalf("write temp file: %v", err)
	}
	return p
}

func TestIngest(t *testing.T) {
	content := []byte("%PDF-1.4 pretend")
	path := writeTempFile(t, "report.pdf", content)

	strg := &mock.Storage{}
	now := time.Date(2025, 6, 2, 15, 4, 5, 0, time.UTC)
	svc := &ingestorSrv{strg: strg, bucket: "my-bucket", now: func() time.Time { return now }}

	out, err := svc.Ingest(context.Background(), port.IngestInput{
		FilePath: path,
		OwnerID:  "owner-1",
		Allowed:  []string{"user-a", "user-b"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if out.ObjectKey != "owner-1/report.pdf" {
		t.Errorf("object key = %q; want %q", out.ObjectKey, "owner-1/report.pdf")
	}
	if out.ContentType != "application/pdf" {
		t.Errorf("content type = %q; want %q", out.ContentType, "application/pdf")
	}
	if out.Metadata.FileType != model.CategoryFile {
		t.Errorf("file type = %q; want %q", out.Metadata.FileType, model.CategoryFile)
	}

	if !strg.SaveCalled {
		t.Fatal("expected the file to be saved")
	}
	if strg.Bucket != "my-bucket" || strg.ObjectKey != "owner-1/report.pdf" {
		t.Errorf("saved to %s/%s; want my-bucket/owner-1/report.pdf", strg.Bucket, strg.ObjectKey)
	}
	if strg.SavedSize != int64(len(content)) {
		t.Errorf("saved size = %d; want %d", strg.SavedSize, len(content))
	}
	if !bytes.Equal(strg.SavedBytes, content) {
		t.Errorf("saved bytes = %q; want %q", strg.SavedBytes, content)
	}
	if strg.SavedOpts.ContentType != "application/pdf" {
		t.Errorf("saved content type = %q; want %q", strg.SavedOpts.ContentType, "application/pdf")
	}

	meta := strg.SavedOpts.UserMetadata
	wantMeta := map[string]string{
		"owner":           "owner-1",
		"allowed":         `["user-a","user-b"]`,
		"filetype":        "file",
		"uploadtimestamp": "2025-06-02T15:04:05Z",
		"filesize":        "16",
	}
	for k, v := range wantMeta {
		if meta[k] != v {
			t.Errorf("metadata[%q] = %q; want %q", k, meta[k], v)
		}
	}
}

func TestIngest_EmptyAllowListStillWritten(t *testing.T) {
	path := writeTempFile(t, "photo.jpg", []byte("jpeg"))

	strg := &mock.Storage{}
	svc := NewIngestor(strg, "my-bucket")

	out, err := svc.Ingest(context.Background(), port.IngestInput{FilePath: path, OwnerID: "owner-1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strg.SavedOpts.UserMetadata["allowed"] != "[]" {
		t.Errorf("allowed metadata = %q; want %q", strg.SavedOpts.UserMetadata["allowed"], "[]")
	}
	if out.ContentType != "image/jpeg" {
		t.Errorf("content type = %q; want %q", out.ContentType, "image/jpeg")
	}
	if out.Metadata.FileType != model.CategoryImage {
		t.Errorf("file type = %q; want %q", out.Metadata.FileType, model.CategoryImage)
	}
}

func TestIngest_MissingFile(t *testing.T) {
	strg := &mock.Storage{}
	svc := NewIngestor(strg, "my-bucket")

	_, err := svc.Ingest(context.Background(), port.IngestInput{
		FilePath: filepath.Join(t.TempDir(), "nope.bin"),
		OwnerID:  "owner-1",
	})
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if strg.SaveCalled {
		t.Error("nothing may be saved when the local file cannot be read")
	}
}

func TestIngest_SaveError(t *testing.T) {
	path := writeTempFile(t, "clip.mp4", []byte("mp4"))

	strg := &mock.Storage{SaveErr: ErrInternal}
	svc := NewIngestor(strg, "my-bucket")

	_, err := svc.Ingest(context.Background(), port.IngestInput{FilePath: path, OwnerID: "owner-1"})
	if !errors.Is(err, ErrInternal) {
		t.Fatalf("error = %v; want wrapped %v", err, ErrInternal)
	}
}
