package file_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clinic-records/internal/common/pagination"
	"clinic-records/internal/domain/entity"
	"clinic-records/internal/handler/http/auth"
	fileHandler "clinic-records/internal/handler/http/file"
	"clinic-records/internal/infra/adapter/persistence/memory"
	fileUC "clinic-records/internal/usecase/file"
)

type stubStore struct {
	objects map[string][]byte
	putErr  error
}

func (s *stubStore) Put(_ context.Context, key string, body io.Reader, _ int64, _ string) (string, error) {
	if s.putErr != nil {
		return "", s.putErr
	}
	b, _ := io.ReadAll(body)
	s.objects[key] = b
	return "http://localhost:9000/atm-sehat/" + key, nil
}

func (s *stubStore) Delete(_ context.Context, key string) error {
	delete(s.objects, key)
	return nil
}

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")

func newMux(store *stubStore, maxSize int64) (*http.ServeMux, *memory.Collection[entity.File]) {
	repo := memory.NewCollection[entity.File]()
	mux := http.NewServeMux()
	fileHandler.Register(mux, fileUC.NewService(repo, store, maxSize), pagination.DefaultConfig(), nil)
	return mux, repo
}

type part struct {
	field, filename string
	data            []byte
}

func multipartRequest(t *testing.T, parts ...part) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for _, p := range parts {
		var (
			w   io.Writer
			err error
		)
		if p.filename != "" {
			w, err = mw.CreateFormFile(p.field, p.filename)
		} else {
			w, err = mw.CreateFormField(p.field)
		}
		require.NoError(t, err)
		_, err = w.Write(p.data)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/files", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

type envelope struct {
	Status  int         `json:"status"`
	Message string      `json:"message"`
	Data    entity.File `json:"data"`
	Error   struct {
		Code    string `json:"code"`
		Details string `json:"details"`
	} `json:"error"`
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return env
}

func TestUploadHandler(t *testing.T) {
	t.Parallel()

	t.Run("stores file with form uploader", func(t *testing.T) {
		t.Parallel()
		store := &stubStore{objects: map[string][]byte{}}
		mux, repo := newMux(store, 0)

		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, multipartRequest(t,
			part{field: "file", filename: "scan.PNG", data: pngHeader},
			part{field: "uploader", data: []byte("dr. sari")},
		))

		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		env := decode(t, rec)
		assert.Equal(t, "File uploaded successfully", env.Message)
		assert.Equal(t, "scan.PNG", env.Data.Name)
		assert.Equal(t, "png", env.Data.Extension)
		assert.Equal(t, "image/png", env.Data.Type)
		assert.Equal(t, uint64(len(pngHeader)), env.Data.Size)
		assert.Equal(t, "dr. sari", env.Data.Uploader)
		assert.Contains(t, store.objects, env.Data.Path)
		assert.Equal(t, 1, repo.Len())
	})

	t.Run("uploader falls back to token subject", func(t *testing.T) {
		t.Parallel()
		mux, _ := newMux(&stubStore{objects: map[string][]byte{}}, 0)

		req := multipartRequest(t, part{field: "file", filename: "report.csv", data: []byte("a,b\n1,2\n")})
		req = req.WithContext(auth.WithUser(req.Context(), "admin@clinic"))
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)

		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		assert.Equal(t, "admin@clinic", decode(t, rec).Data.Uploader)
	})

	t.Run("uploader defaults to unknown", func(t *testing.T) {
		t.Parallel()
		mux, _ := newMux(&stubStore{objects: map[string][]byte{}}, 0)

		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, multipartRequest(t, part{field: "file", filename: "report.csv", data: []byte("a,b\n")}))

		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		assert.Equal(t, fileUC.UnknownUploader, decode(t, rec).Data.Uploader)
	})
}

func TestUploadHandler_Rejections(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		parts       []part
		maxSize     int64
		wantStatus  int
		wantMessage string
	}{
		{
			name:        "no file part",
			parts:       []part{{field: "uploader", data: []byte("x")}},
			wantStatus:  http.StatusBadRequest,
			wantMessage: "No file provided",
		},
		{
			name:        "empty file",
			parts:       []part{{field: "file", filename: "a.pdf", data: nil}},
			wantStatus:  http.StatusBadRequest,
			wantMessage: "File size cannot be empty",
		},
		{
			name:        "too large",
			parts:       []part{{field: "file", filename: "a.csv", data: bytes.Repeat([]byte("x"), 2048)}},
			maxSize:     1024,
			wantStatus:  http.StatusBadRequest,
			wantMessage: "File size exceeds maximum of 1 KB",
		},
		{
			name:        "disallowed extension",
			parts:       []part{{field: "file", filename: "run.exe", data: []byte("MZ")}},
			wantStatus:  http.StatusBadRequest,
			wantMessage: "File type not allowed. Allowed: PDF, Images (JPG, PNG, GIF, BMP, WebP), Excel (XLSX, XLS), CSV",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			mux, repo := newMux(&stubStore{objects: map[string][]byte{}}, tt.maxSize)

			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, multipartRequest(t, tt.parts...))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantMessage, decode(t, rec).Message)
			assert.Zero(t, repo.Len())
		})
	}
}

func TestUploadHandler_NotMultipart(t *testing.T) {
	t.Parallel()
	mux, _ := newMux(&stubStore{objects: map[string][]byte{}}, 0)

	req := httptest.NewRequest(http.MethodPost, "/files", bytes.NewBufferString(`{"name":"a.pdf"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid multipart form", decode(t, rec).Message)
}

func TestUploadHandler_StorageFailure(t *testing.T) {
	t.Parallel()
	mux, repo := newMux(&stubStore{objects: map[string][]byte{}, putErr: errors.New("bucket unreachable")}, 0)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, multipartRequest(t, part{field: "file", filename: "a.csv", data: []byte("a\n")}))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	env := decode(t, rec)
	assert.Equal(t, "INTERNAL_ERROR", env.Error.Code)
	assert.NotContains(t, rec.Body.String(), "bucket unreachable")
	assert.Zero(t, repo.Len())
}

func TestDeleteFile(t *testing.T) {
	t.Parallel()
	store := &stubStore{objects: map[string][]byte{}}
	mux, repo := newMux(store, 0)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, multipartRequest(t, part{field: "file", filename: "a.csv", data: []byte("a\n")}))
	require.Equal(t, http.StatusCreated, rec.Code)
	created := decode(t, rec).Data

	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/files/"+created.ID, nil))
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, store.objects)
	assert.Zero(t, repo.Len())

	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/files/"+created.ID, nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
