package file

import (
	"context"
	"fmt"
	"time"

	"github.com/fharvey/fileaccess-ms-go/internal/model"
	"github.com/fharvey/fileaccess-ms-go/internal/port"
)

type accessResolverSrv struct {
	strg   port.Storage
	bucket string
}

func NewAccessResolver(strg port.Storage, bucket string) port.AccessResolver {
	return &accessResolverSrv{strg: strg, bucket: bucket}
}

func (s *accessResolverSrv) ResolveAccess(ctx context.Context, in port.ResolveAccessInput) (port.ResolveAccessOutput, error) {
	key := ObjectKey(in.OwnerID, in.FileName)

	info, err := s.strg.StatFile(ctx, s.bucket, key)
	if err != nil {
		return port.ResolveAccessOutput{}, fmt.Errorf("fetching metadata for %q: %w", key, err)
	}

	md, err := model.DecodeObjectMetadata(info.UserMetadata)
	if err != nil {
		return port.ResolveAccessOutput{}, fmt.Errorf("decoding metadata for %q: %w", key, err)
	}

	if !md.IsAllowed(in.UserID) {
		return port.ResolveAccessOutput{}, ErrAccessDenied
	}

	url, err := s.strg.GeneratePresignedDownloadURL(ctx, s.bucket, key, DownloadURLTTL)
	if err != nil {
		return port.ResolveAccessOutput{}, fmt.Errorf("generating download link for %q: %w", key, err)
	}

	return port.ResolveAccessOutput{
		URL:        url,
		ValidUntil: time.Now().UTC().Add(DownloadURLTTL),
	}, nil
}
