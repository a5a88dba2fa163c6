package mediatype

import (
	"testing"

	"github.com/fharvey/fileaccess-ms-go/internal/model"
)

func TestForFile(t *testing.T) {
	tests := []struct {
		name         string
		wantType     string
		wantCategory model.MediaCategory
	}{
		{"photo.jpg", "image/jpeg", model.CategoryImage},
		{"photo.jpeg", "image/jpeg", model.CategoryImage},
		{"logo.png", "image/png", model.CategoryImage},
		{"anim.gif", "image/gif", model.CategoryImage},
		{"icon.svg", "image/svg+xml", model.CategoryImage},
		{"clip.mp4", "video/mp4", model.CategoryVideo},
		{"clip.webm", "video/webm", model.CategoryVideo},
		{"clip.ogg", "video/ogg", model.CategoryVideo},
		{"song.mp3", "audio/mpeg", model.CategoryAudio},
		{"song.wav", "audio/wav", model.CategoryAudio},
		// pdf has a precise content-type but stays in the generic category
		{"sample.pdf", "application/pdf", model.CategoryFile},
		// unmapped and extension-less fall through
		{"archive.zip", "application/octet-stream", model.CategoryFile},
		{"README", "application/octet-stream", model.CategoryFile},
		// classification is case-insensitive
		{"PHOTO.JPG", "image/jpeg", model.CategoryImage},
		{"Sample.PdF", "application/pdf", model.CategoryFile},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := ForFile(tc.name)
			if got.ContentType != tc.wantType {
				t.Errorf("ContentType = %q; want %q", got.ContentType, tc.wantType)
			}
			if got.Category != tc.wantCategory {
				t.Errorf("Category = %q; want %q", got.Category, tc.wantCategory)
			}
		})
	}
}
