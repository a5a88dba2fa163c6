package file

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fharvey/fileaccess-ms-go/internal/mediatype"
	"github.com/fharvey/fileaccess-ms-go/internal/model"
	"github.com/fharvey/fileaccess-ms-go/internal/port"
)

type ingestorSrv struct {
	strg   port.Storage
	bucket string
	now    func() time.Time
}

func NewIngestor(strg port.Storage, bucket string) port.Ingestor {
	return &ingestorSrv{strg: strg, bucket: bucket, now: time.Now}
}

// Ingest streams the local file into the store under
// "{ownerID}/{fileName}" in a single put. Re-ingesting an existing key
// silently overwrites the object and its metadata, allow-list included.
func (s *ingestorSrv) Ingest(ctx context.Context, in port.IngestInput) (port.IngestOutput, error) {
	f, err := os.Open(in.FilePath)
	if err != nil {
		return port.IngestOutput{}, fmt.Errorf("opening %q: %w", in.FilePath, err)
	}
	defer func() {
		_ = f.Close()
	}()

	st, err := f.Stat()
	if err != nil {
		return port.IngestOutput{}, fmt.Errorf("stating %q: %w", in.FilePath, err)
	}

	fileName := filepath.Base(in.FilePath)
	info := mediatype.ForFile(fileName)

	md := model.ObjectMetadata{
		Owner:      in.OwnerID,
		Allowed:    in.Allowed,
		FileType:   info.Category,
		UploadedAt: s.now().UTC(),
		SizeBytes:  st.Size(),
	}
	meta, err := md.Encode()
	if err != nil {
		return port.IngestOutput{}, fmt.Errorf("encoding metadata for %q: %w", fileName, err)
	}

	key := ObjectKey(in.OwnerID, fileName)
	opts := port.SaveOptions{
		ContentType:  info.ContentType,
		UserMetadata: meta,
	}
	if err := s.strg.SaveFile(ctx, s.bucket, key, f, st.Size(), opts); err != nil {
		return port.IngestOutput{}, fmt.Errorf("uploading %q: %w", key, err)
	}

	return port.IngestOutput{
		ObjectKey:   key,
		ContentType: info.ContentType,
		Metadata:    md,
	}, nil
}
