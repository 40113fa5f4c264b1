package entity

import (
	"fmt"
	"path"
	"strings"
)

// MaxUploadSize is the largest accepted upload (256 KiB).
const MaxUploadSize = 256 * 1024

// allowedExtensions lists the accepted upload extensions.
var allowedExtensions = map[string]bool{
	"pdf":  true,
	"jpg":  true,
	"jpeg": true,
	"png":  true,
	"gif":  true,
	"bmp":  true,
	"webp": true,
	"xlsx": true,
	"xls":  true,
	"csv":  true,
}

// File is the metadata of an object uploaded to object storage.
type File struct {
	Base      `bson:",inline"`
	Name      string `json:"name" bson:"name"`
	Type      string `json:"type" bson:"type"`
	Extension string `json:"extension" bson:"extension"`
	Size      uint64 `json:"size" bson:"size"`
	Path      string `json:"path" bson:"path"`
	URL       string `json:"url" bson:"url"`
	Uploader  string `json:"uploader" bson:"uploader"`
}

// FileExtension returns the lowercased extension of name without the dot.
func FileExtension(name string) string {
	return strings.ToLower(strings.TrimPrefix(path.Ext(name), "."))
}

// ValidateUpload checks the size and extension of an uploaded file.
// maxSize <= 0 means MaxUploadSize.
func ValidateUpload(name string, size int64, maxSize int64) error {
	if maxSize <= 0 {
		maxSize = MaxUploadSize
	}
	if name == "" || size == 0 {
		return &ValidationError{Field: "file", Message: "File size cannot be empty"}
	}
	if size > maxSize {
		return &ValidationError{
			Field:   "file",
			Message: fmt.Sprintf("File size exceeds maximum of %d KB", maxSize/1024),
		}
	}
	if !allowedExtensions[FileExtension(name)] {
		return &ValidationError{
			Field:   "file",
			Message: "File type not allowed. Allowed: PDF, Images (JPG, PNG, GIF, BMP, WebP), Excel (XLSX, XLS), CSV",
		}
	}
	return nil
}
