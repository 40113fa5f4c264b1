// Package file provides the use cases for uploaded files. Content goes to
// object storage and the metadata to the files collection.
package file

import (
	"bytes"
	"context"
	"io"
	"path"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"

	"clinic-records/internal/common/apperror"
	"clinic-records/internal/domain/entity"
	"clinic-records/internal/observability/metrics"
	"clinic-records/internal/repository"
	"clinic-records/internal/usecase/crud"
)

// KeyTimeLayout formats the upload time in object keys.
const KeyTimeLayout = "20060102_150405"

// UnknownUploader is recorded when neither the form nor the credentials name one.
const UnknownUploader = "unknown"

// ObjectStore is the object storage used for file content.
type ObjectStore interface {
	// Put stores body under key and returns the object's URL.
	Put(ctx context.Context, key string, body io.Reader, size int64, contentType string) (string, error)
	Delete(ctx context.Context, key string) error
}

// UploadInput is one uploaded file.
type UploadInput struct {
	Filename string
	Data     []byte
	Uploader string
}

var Names = crud.Names{Singular: "File", Plural: "files"}

// Service provides file use cases.
type Service struct {
	crud.Service[entity.File]
	Store ObjectStore
	// MaxSize is the upload limit in bytes; 0 means entity.MaxUploadSize.
	MaxSize int64
}

func NewService(repo repository.FileRepository, store ObjectStore, maxSize int64) *Service {
	return &Service{
		Service: crud.Service[entity.File]{Repo: repo, Names: Names},
		Store:   store,
		MaxSize: maxSize,
	}
}

// Upload validates in, stores its content and records its metadata. When
// the metadata insert fails the stored object is left in place.
func (s *Service) Upload(ctx context.Context, in UploadInput) (*entity.File, error) {
	name := path.Base(strings.ReplaceAll(in.Filename, "\\", "/"))
	if name == "." || name == "/" {
		name = ""
	}
	if err := entity.ValidateUpload(name, int64(len(in.Data)), s.MaxSize); err != nil {
		metrics.RecordFileUpload(metrics.UploadRejected, 0)
		return nil, crud.Invalid(err)
	}

	uploader := strings.TrimSpace(in.Uploader)
	if uploader == "" {
		uploader = UnknownUploader
	}

	contentType := mimetype.Detect(in.Data).String()
	key := ObjectKey(s.now(), name)

	url, err := s.Store.Put(ctx, key, bytes.NewReader(in.Data), int64(len(in.Data)), contentType)
	if err != nil {
		metrics.RecordFileUpload(metrics.UploadStorageError, 0)
		return nil, apperror.Internal("Failed to upload file", err)
	}

	f, err := s.Service.Create(ctx, &entity.File{
		Name:      name,
		Type:      contentType,
		Extension: entity.FileExtension(name),
		Size:      uint64(len(in.Data)),
		Path:      key,
		URL:       url,
		Uploader:  uploader,
	})
	if err != nil {
		metrics.RecordFileUpload(metrics.UploadMetadataError, 0)
		return nil, err
	}
	metrics.RecordFileUpload(metrics.UploadSuccess, int64(len(in.Data)))
	return f, nil
}

// Delete removes the stored object and then the metadata of the file with id.
func (s *Service) Delete(ctx context.Context, id string) error {
	f, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if f == nil {
		return apperror.NotFound(Names.Singular + " not found")
	}
	if err := s.Store.Delete(ctx, f.Path); err != nil {
		return apperror.Internal("Failed to delete file from storage", err)
	}
	return s.Service.Delete(ctx, id)
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// ObjectKey returns files/<YYYYmmdd_HHMMSS>_<name>.
func ObjectKey(at time.Time, name string) string {
	return "files/" + at.Format(KeyTimeLayout) + "_" + name
}
