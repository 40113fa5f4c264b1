package entity

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateUpload(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		size    int64
		wantErr bool
	}{
		{name: "pdf", file: "hasil-lab.pdf", size: 1024},
		{name: "uppercase extension", file: "SCAN.JPG", size: 2048},
		{name: "spreadsheet", file: "stok.xlsx", size: 4096},
		{name: "exactly max size", file: "a.csv", size: MaxUploadSize},
		{name: "empty file", file: "a.pdf", size: 0, wantErr: true},
		{name: "too large", file: "a.pdf", size: MaxUploadSize + 1, wantErr: true},
		{name: "disallowed extension", file: "script.exe", size: 10, wantErr: true},
		{name: "no extension", file: "README", size: 10, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateUpload(tt.file, tt.size, 0)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			var verr *ValidationError
			assert.True(t, errors.As(err, &verr))
		})
	}
}

func TestFileExtension(t *testing.T) {
	assert.Equal(t, "jpeg", FileExtension("Foto.Pasien.JPEG"))
	assert.Equal(t, "", FileExtension("noext"))
}
