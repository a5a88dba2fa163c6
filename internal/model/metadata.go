package model

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// MediaCategory is the coarse classification stored alongside each object.
type MediaCategory string

const (
	CategoryImage MediaCategory = "image"
	CategoryVideo MediaCategory = "video"
	CategoryAudio MediaCategory = "audio"
	CategoryFile  MediaCategory = "file"
)

// ErrMalformedAllowList is returned when the "allowed" metadata entry is
// present but is not a valid JSON list of user ids.
var ErrMalformedAllowList = errors.New("metadata: malformed allow-list")

// User-metadata keys as written on the object. The store canonicalises
// header casing, so reads must not rely on it.
const (
	metaOwner           = "owner"
	metaAllowed         = "allowed"
	metaFileType        = "filetype"
	metaUploadTimestamp = "uploadtimestamp"
	metaFileSize        = "filesize"
)

// ObjectMetadata is the per-object record carried as store user metadata.
type ObjectMetadata struct {
	Owner      string        `json:"owner"`
	Allowed    []string      `json:"allowed"`
	FileType   MediaCategory `json:"file_type"`
	UploadedAt time.Time     `json:"uploaded_at"`
	SizeBytes  int64         `json:"size_bytes"`
}

// IsAllowed reports whether userID appears in the allow-list. Matching is
// exact and case-sensitive.
func (m ObjectMetadata) IsAllowed(userID string) bool {
	for _, id := range m.Allowed {
		if id == userID {
			return true
		}
	}
	return false
}

// Encode serialises the record into store user metadata. The allow-list is
// always written, as a JSON array, even when empty.
func (m ObjectMetadata) Encode() (map[string]string, error) {
	allowed := m.Allowed
	if allowed == nil {
		allowed = []string{}
	}
	raw, err := json.Marshal(allowed)
	if err != nil {
		return nil, fmt.Errorf("marshal allow-list: %w", err)
	}

	return map[string]string{
		metaOwner:           m.Owner,
		metaAllowed:         string(raw),
		metaFileType:        string(m.FileType),
		metaUploadTimestamp: m.UploadedAt.UTC().Format(time.RFC3339),
		metaFileSize:        strconv.FormatInt(m.SizeBytes, 10),
	}, nil
}

// DecodeObjectMetadata rebuilds the record from store user metadata. A
// missing allow-list decodes to an empty one; a malformed allow-list is an
// error, never a silent allow or deny. The remaining fields are
// informational and decode leniently.
func DecodeObjectMetadata(raw map[string]string) (ObjectMetadata, error) {
	md := ObjectMetadata{
		Owner:    metaValue(raw, metaOwner),
		Allowed:  []string{},
		FileType: MediaCategory(metaValue(raw, metaFileType)),
	}

	if v := metaValue(raw, metaAllowed); v != "" {
		var allowed []string
		if err := json.Unmarshal([]byte(v), &allowed); err != nil {
			return ObjectMetadata{}, fmt.Errorf("%w: %v", ErrMalformedAllowList, err)
		}
		if allowed != nil {
			md.Allowed = allowed
		}
	}

	if v := metaValue(raw, metaUploadTimestamp); v != "" {
		if ts, err := time.Parse(time.RFC3339, v); err == nil {
			md.UploadedAt = ts
		}
	}
	if v := metaValue(raw, metaFileSize); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			md.SizeBytes = n
		}
	}

	return md, nil
}

func metaValue(raw map[string]string, key string) string {
	for k, v := range raw {
		if strings.EqualFold(k, key) {
			return v
		}
	}
	return ""
}
