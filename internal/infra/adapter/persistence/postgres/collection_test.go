package postgres_test

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/go-cmp/cmp"

	"clinic-records/internal/common/pagination"
	"clinic-records/internal/domain/entity"
	"clinic-records/internal/infra/adapter/persistence/postgres"
)

/* ──────────────────────────────── helpers ──────────────────────────────── */

func docRows(t *testing.T, docs ...any) *sqlmock.Rows {
	t.Helper()
	rows := sqlmock.NewRows([]string{"doc"})
	for _, d := range docs {
		b, err := json.Marshal(d)
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		rows.AddRow(b)
	}
	return rows
}

func sampleDoctor(id, nip string) *entity.Doctor {
	ts := time.Date(2025, 1, 10, 8, 0, 0, 0, time.UTC)
	return &entity.Doctor{
		Base:           entity.Base{ID: id, CreatedAt: ts, UpdatedAt: ts},
		Name:           "dr. Rina Wulandari",
		NIP:            nip,
		SIP:            "SIP-449/2024",
		Specialization: "Pediatrics",
		Status:         entity.StatusActive,
	}
}

/* ──────────────────────────────── 1. FindAllPaginated ──────────────────────────────── */

func TestCollection_FindAllPaginated(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	d1 := sampleDoctor("6f1c2a7e-0a9e-4c61-9a5e-0d1f5d0b2a11", "198001")
	d2 := sampleDoctor("7a2d3b8f-1b0f-4d72-8b6f-1e2a6e1c3b22", "198002")

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM "doctors"`)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(45)))
	mock.ExpectQuery(regexp.QuoteMeta(`LIMIT $1 OFFSET $2`)).
		WithArgs(int64(10), int64(10)).
		WillReturnRows(docRows(t, d1, d2))

	repo := postgres.NewDoctorRepo(db)
	got, total, err := repo.FindAllPaginated(context.Background(), pagination.Params{Page: 2, Limit: 10})
	if err != nil {
		t.Fatalf("FindAllPaginated err=%v", err)
	}
	if total != 45 {
		t.Errorf("total = %d, want 45", total)
	}
	if diff := cmp.Diff([]*entity.Doctor{d1, d2}, got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestCollection_FindAllPaginated_CountError(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*)`)).
		WillReturnError(errors.New("connection reset"))

	repo := postgres.NewNurseRepo(db)
	_, _, err := repo.FindAllPaginated(context.Background(), pagination.Params{Page: 1, Limit: 10})
	if err == nil {
		t.Fatal("expected error")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

/* ──────────────────────────────── 2. FindAll ──────────────────────────────── */

func TestCollection_FindAll_Empty(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectQuery(regexp.QuoteMeta(`FROM "appointments"`)).
		WillReturnRows(sqlmock.NewRows([]string{"doc"}))

	repo := postgres.NewAppointmentRepo(db)
	got, err := repo.FindAll(context.Background())
	if err != nil {
		t.Fatalf("FindAll err=%v", err)
	}
	if got == nil || len(got) != 0 {
		t.Fatalf("FindAll = %v, want empty non-nil slice", got)
	}
}

/* ──────────────────────────────── 3. FindByID ──────────────────────────────── */

func TestCollection_FindByID(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	want := sampleDoctor("6f1c2a7e-0a9e-4c61-9a5e-0d1f5d0b2a11", "198001")
	mock.ExpectQuery(regexp.QuoteMeta(`WHERE id = $1`)).
		WithArgs(want.ID).
		WillReturnRows(docRows(t, want))

	got, err := postgres.NewDoctorRepo(db).FindByID(context.Background(), want.ID)
	if err != nil {
		t.Fatalf("FindByID err=%v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}

func TestCollection_FindByID_NotFound(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectQuery(regexp.QuoteMeta(`WHERE id = $1`)).
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	got, err := postgres.NewDoctorRepo(db).FindByID(context.Background(), "missing")
	if err != nil || got != nil {
		t.Fatalf("FindByID = (%v, %v), want (nil, nil)", got, err)
	}
}

/* ──────────────────────────────── 4. natural keys ──────────────────────────────── */

func TestMedicalRecordRepo_FindByNIK(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	rec := &entity.MedicalRecord{Base: entity.Base{ID: "r1"}, NIK: "3174012345678901", Name: "Budi"}
	mock.ExpectQuery(regexp.QuoteMeta(`WHERE doc->>$1 = $2`)).
		WithArgs("nik", "3174012345678901").
		WillReturnRows(docRows(t, rec))

	got, err := postgres.NewMedicalRecordRepo(db).FindByNIK(context.Background(), "3174012345678901")
	if err != nil {
		t.Fatalf("FindByNIK err=%v", err)
	}
	if got == nil || got.ID != "r1" {
		t.Fatalf("FindByNIK = %+v, want id r1", got)
	}
}

/* ──────────────────────────────── 5. Insert ──────────────────────────────── */

func TestCollection_Insert_AssignsID(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO "services" (id, doc) VALUES ($1, $2)`)).
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	svc := &entity.ClinicService{Name: "Konsultasi Umum", Category: "Consultation"}
	got, err := postgres.NewClinicServiceRepo(db).Insert(context.Background(), svc)
	if err != nil {
		t.Fatalf("Insert err=%v", err)
	}
	if !entity.IsValidID(got.ID) {
		t.Errorf("Insert assigned id %q, want a valid id", got.ID)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

/* ──────────────────────────────── 6. Update ──────────────────────────────── */

func TestCollection_Update(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	updated := &entity.Insurance{Base: entity.Base{ID: "i1"}, Name: "BPJS Kesehatan", Type: "public", Code: "BPJS", Status: "inactive"}
	mock.ExpectQuery(regexp.QuoteMeta(`SET doc = doc || $2::jsonb`)).
		WithArgs("i1", []byte(`{"status":"inactive"}`)).
		WillReturnRows(docRows(t, updated))

	got, err := postgres.NewInsuranceRepo(db).Update(context.Background(), "i1", map[string]any{
		"status": "inactive",
		"id":     "hijack",
	})
	if err != nil {
		t.Fatalf("Update err=%v", err)
	}
	if diff := cmp.Diff(updated, got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}

func TestCollection_Update_NotFound(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectQuery(regexp.QuoteMeta(`UPDATE "insurances"`)).
		WillReturnError(sql.ErrNoRows)

	_, err := postgres.NewInsuranceRepo(db).Update(context.Background(), "nope", map[string]any{"status": "x"})
	if !errors.Is(err, entity.ErrNotFound) {
		t.Fatalf("Update err=%v, want ErrNotFound", err)
	}
}

/* ──────────────────────────────── 7. Delete ──────────────────────────────── */

func TestCollection_Delete(t *testing.T) {
	tests := []struct {
		name     string
		affected int64
		want     bool
	}{
		{name: "removed", affected: 1, want: true},
		{name: "nothing matched", affected: 0, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, _ := sqlmock.New()
			defer func() { _ = db.Close() }()

			mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "files" WHERE id = $1`)).
				WithArgs("f1").
				WillReturnResult(sqlmock.NewResult(0, tt.affected))

			got, err := postgres.NewFileRepo(db).Delete(context.Background(), "f1")
			if err != nil {
				t.Fatalf("Delete err=%v", err)
			}
			if got != tt.want {
				t.Errorf("Delete = %v, want %v", got, tt.want)
			}
		})
	}
}
