package mediatype

import (
	"path"
	"strings"

	"github.com/fharvey/fileaccess-ms-go/internal/model"
)

// Info pairs the MIME content-type of a file with its coarse category.
type Info struct {
	ContentType string
	Category    model.MediaCategory
}

// Generic is what unmapped extensions resolve to.
var Generic = Info{ContentType: "application/octet-stream", Category: model.CategoryFile}

// byExtension is the single source of truth for extension classification.
// PDFs keep their own content-type but stay in the generic "file" category.
var byExtension = map[string]Info{
	".jpg":  {"image/jpeg", model.CategoryImage},
	".jpeg": {"image/jpeg", model.CategoryImage},
	".png":  {"image/png", model.CategoryImage},
	".gif":  {"image/gif", model.CategoryImage},
	".svg":  {"image/svg+xml", model.CategoryImage},
	".mp4":  {"video/mp4", model.CategoryVideo},
	".webm": {"video/webm", model.CategoryVideo},
	".ogg":  {"video/ogg", model.CategoryVideo},
	".mp3":  {"audio/mpeg", model.CategoryAudio},
	".wav":  {"audio/wav", model.CategoryAudio},
	".pdf":  {"application/pdf", model.CategoryFile},
}

// ForFile classifies a file by its extension, case-insensitively.
func ForFile(name string) Info {
	if info, ok := byExtension[strings.ToLower(path.Ext(name))]; ok {
		return info
	}
	return Generic
}
