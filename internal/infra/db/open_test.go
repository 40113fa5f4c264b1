package db

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clinic-records/internal/repository"
)

func TestDefaultConnectionConfig(t *testing.T) {
	cfg := DefaultConnectionConfig()

	assert.Equal(t, 25, cfg.MaxOpenConns)
	assert.Equal(t, 10, cfg.MaxIdleConns)
	assert.Equal(t, 1*time.Hour, cfg.ConnMaxLifetime)
	assert.Equal(t, 30*time.Minute, cfg.ConnMaxIdleTime)
}

func TestConnectionConfig_WithDefaults(t *testing.T) {
	tests := []struct {
		name string
		in   ConnectionConfig
		want ConnectionConfig
	}{
		{
			name: "zero value",
			in:   ConnectionConfig{},
			want: DefaultConnectionConfig(),
		},
		{
			name: "explicit values kept",
			in:   ConnectionConfig{MaxOpenConns: 50, MaxIdleConns: 5, ConnMaxLifetime: time.Minute, ConnMaxIdleTime: time.Second},
			want: ConnectionConfig{MaxOpenConns: 50, MaxIdleConns: 5, ConnMaxLifetime: time.Minute, ConnMaxIdleTime: time.Second},
		},
		{
			name: "negative values replaced",
			in:   ConnectionConfig{MaxOpenConns: -1, MaxIdleConns: 3},
			want: ConnectionConfig{MaxOpenConns: 25, MaxIdleConns: 3, ConnMaxLifetime: time.Hour, ConnMaxIdleTime: 30 * time.Minute},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.in.withDefaults())
		})
	}
}

func TestOpenPostgres_EmptyDSN(t *testing.T) {
	_, err := OpenPostgres(context.Background(), "", DefaultConnectionConfig())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DATABASE_URL")
}

func TestMongoIndexes(t *testing.T) {
	withKey := MongoIndexes(repository.CollectionMedicines)
	require.Len(t, withKey, 2)
	assert.Equal(t, "idx_batchNumber", *withKey[1].Options.Name)

	withoutKey := MongoIndexes(repository.CollectionServices)
	require.Len(t, withoutKey, 1)
	assert.Equal(t, "idx_created_at", *withoutKey[0].Options.Name)
}
