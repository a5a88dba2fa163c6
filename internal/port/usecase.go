package port

import (
	"context"
	"time"

	"github.com/fharvey/fileaccess-ms-go/internal/model"
)

// AccessResolver decides whether a user may retrieve an owner's file and,
// when allowed, issues a time-limited download link.
type AccessResolver interface {
	ResolveAccess(ctx context.Context, in ResolveAccessInput) (ResolveAccessOutput, error)
}
type ResolveAccessInput struct {
	FileName string
	OwnerID  string
	UserID   string
}
type ResolveAccessOutput struct {
	URL        string    `json:"url"`
	ValidUntil time.Time `json:"valid_until"`
}

// Ingestor uploads a local file into the store under the owner's namespace,
// together with its access metadata.
type Ingestor interface {
	Ingest(ctx context.Context, in IngestInput) (IngestOutput, error)
}
type IngestInput struct {
	FilePath string   `validate:"required"`
	OwnerID  string   `validate:"required,max=128,objkeypart"`
	Allowed  []string `validate:"dive,required,max=128"`
}
type IngestOutput struct {
	ObjectKey   string               `json:"object_key"`
	ContentType string               `json:"content_type"`
	Metadata    model.ObjectMetadata `json:"metadata"`
}
