package nurse_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clinic-records/internal/common/apperror"
	"clinic-records/internal/domain/entity"
	"clinic-records/internal/infra/adapter/persistence/memory"
	"clinic-records/internal/usecase/nurse"
)

func TestService_Create(t *testing.T) {
	t.Parallel()

	repo := &memory.NurseRepo{Collection: memory.NewCollection[entity.Nurse]()}
	svc := nurse.NewService(repo)

	got, err := svc.Create(context.Background(), nurse.CreateInput{Name: "Sri Handayani", NIP: "200101"})
	require.NoError(t, err)
	assert.Equal(t, entity.StatusActive, got.Status)

	_, err = svc.Create(context.Background(), nurse.CreateInput{Name: "Sri H.", NIP: "200101"})
	assert.Equal(t, http.StatusConflict, apperror.From(err).Status)
	assert.Equal(t, 1, repo.Inserts)
}

func TestService_Update(t *testing.T) {
	t.Parallel()

	a := &entity.Nurse{Base: entity.Base{ID: entity.NewID()}, Name: "A", NIP: "1"}
	b := &entity.Nurse{Base: entity.Base{ID: entity.NewID()}, Name: "B", NIP: "2"}
	empty, taken, fresh := "", "2", "3"

	tests := []struct {
		name       string
		in         nurse.UpdateInput
		wantStatus int
		wantNIP    string
	}{
		{name: "change nip", in: nurse.UpdateInput{NIP: &fresh}, wantNIP: "3"},
		{name: "nip taken", in: nurse.UpdateInput{NIP: &taken}, wantStatus: http.StatusConflict},
		{name: "empty name", in: nurse.UpdateInput{Name: &empty}, wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			svc := nurse.NewService(&memory.NurseRepo{Collection: memory.NewCollection(a, b)})
			got, err := svc.Update(context.Background(), a.ID, tt.in)
			if tt.wantStatus != 0 {
				assert.Equal(t, tt.wantStatus, apperror.From(err).Status)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantNIP, got.NIP)
		})
	}
}
