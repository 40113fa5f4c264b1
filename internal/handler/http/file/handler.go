// Package file serves the /files routes. Uploads are multipart forms with a
// "file" part and an optional "uploader" text part.
package file

import (
	"errors"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"strings"

	"clinic-records/internal/common/apperror"
	"clinic-records/internal/common/pagination"
	"clinic-records/internal/domain/entity"
	"clinic-records/internal/handler/http/auth"
	"clinic-records/internal/handler/http/crud"
	"clinic-records/internal/handler/http/respond"
	"clinic-records/internal/repository"
	fileUC "clinic-records/internal/usecase/file"
)

// maxUploaderLength bounds the uploader form value.
const maxUploaderLength = 256

// Register mounts the /files routes. There is no update route.
func Register(mux *http.ServeMux, svc *fileUC.Service, paginationCfg pagination.Config, logger *slog.Logger) {
	crud.Handler[entity.File]{
		Svc:           svc,
		Names:         fileUC.Names,
		Collection:    repository.CollectionFiles,
		PaginationCfg: paginationCfg,
		Logger:        logger,
	}.Register(mux, "/files")

	mux.Handle("POST /files", UploadHandler{svc})
}

type UploadHandler struct{ Svc *fileUC.Service }

// ServeHTTP stores an uploaded file and records its metadata.
// @Summary      Upload file
// @Description  Stores the file in object storage and records its metadata. Max 256 KiB; pdf, images, xlsx, xls and csv only.
// @Tags         files
// @Security     BearerAuth
// @Accept       multipart/form-data
// @Produce      json
// @Param        file     formData file   true  "File content"
// @Param        uploader formData string false "Uploader name; defaults to the token subject"
// @Success      201 {object} respond.APIResponse[entity.File]
// @Failure      400 {object} respond.ErrorResponse "Missing, empty, oversized or disallowed file"
// @Failure      401 {object} respond.ErrorResponse
// @Failure      500 {object} respond.ErrorResponse "Object storage or database failure"
// @Router       /files [post]
func (h UploadHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	in, err := h.readForm(r)
	if err != nil {
		respond.Error(w, err)
		return
	}
	if strings.TrimSpace(in.Uploader) == "" {
		if sub, ok := auth.UserFromContext(r.Context()); ok {
			in.Uploader = sub
		}
	}

	f, err := h.Svc.Upload(r.Context(), in)
	if err != nil {
		respond.Error(w, err)
		return
	}
	respond.Created(w, fileUC.Names.Singular+" uploaded successfully", f)
}

// readForm streams the multipart body. The file part is read up to one
// byte past the limit so oversized uploads are detected without buffering
// them whole.
func (h UploadHandler) readForm(r *http.Request) (fileUC.UploadInput, error) {
	var in fileUC.UploadInput

	mr, err := r.MultipartReader()
	if err != nil {
		return in, apperror.BadRequest("Invalid multipart form", err.Error())
	}

	limit := h.Svc.MaxSize
	if limit <= 0 {
		limit = entity.MaxUploadSize
	}

	found := false
	for {
		part, err := mr.NextPart()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return in, formError(err)
		}

		switch part.FormName() {
		case "file":
			data, err := io.ReadAll(io.LimitReader(part, limit+1))
			if err != nil {
				return in, formError(err)
			}
			in.Filename = part.FileName()
			in.Data = data
			found = true
		case "uploader":
			v, err := readValue(part)
			if err != nil {
				return in, formError(err)
			}
			in.Uploader = v
		}
		_ = part.Close()
	}

	if !found {
		return in, apperror.BadRequest("No file provided", "Please upload a valid file")
	}
	return in, nil
}

func readValue(part *multipart.Part) (string, error) {
	b, err := io.ReadAll(io.LimitReader(part, maxUploaderLength))
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func formError(err error) error {
	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) {
		return apperror.BadRequest("Request body too large", err.Error())
	}
	return apperror.BadRequest("Invalid multipart form", err.Error())
}
