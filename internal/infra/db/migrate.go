package db

import (
	"database/sql"
	"fmt"

	"github.com/jackc/pgx/v5"

	"clinic-records/internal/repository"
)

// MigrateUp creates one JSONB document table per collection, with an index
// on the listing order and an expression index on the natural key.
func MigrateUp(db *sql.DB) error {
	for _, name := range repository.Collections {
		for _, stmt := range collectionDDL(name) {
			if _, err := db.Exec(stmt); err != nil {
				return err
			}
		}
	}
	return nil
}

// MigrateDown drops every collection table.
// Use with caution: this deletes all stored documents.
func MigrateDown(db *sql.DB) error {
	for i := len(repository.Collections) - 1; i >= 0; i-- {
		table := pgx.Identifier{repository.Collections[i]}.Sanitize()
		if _, err := db.Exec(fmt.Sprintf(`DROP TABLE IF EXISTS %s`, table)); err != nil {
			return err
		}
	}
	return nil
}

func collectionDDL(name string) []string {
	table := pgx.Identifier{name}.Sanitize()
	stmts := []string{
		fmt.Sprintf(`
CREATE TABLE IF NOT EXISTS %s (
    id         TEXT PRIMARY KEY,
    doc        JSONB NOT NULL,
    created_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`, table),
		fmt.Sprintf(`CREATE INDEX IF NOT EXISTS %s ON %s (created_at, id)`,
			pgx.Identifier{"idx_" + name + "_created_at"}.Sanitize(), table),
	}
	if field, ok := repository.NaturalKeys[name]; ok {
		stmts = append(stmts, fmt.Sprintf(`CREATE INDEX IF NOT EXISTS %s ON %s ((doc->>'%s'))`,
			pgx.Identifier{"idx_" + name + "_" + field}.Sanitize(), table, field))
	}
	return stmts
}
