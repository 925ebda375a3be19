package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
)

// schemaStatements is the DDL shared by postgres and sqlite. Timestamps are
// fixed-width UTC text so ordering by created_at is chronological in both.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS installations (
		id                 TEXT PRIMARY KEY,
		nome_completo      TEXT NOT NULL DEFAULT '',
		contato            TEXT NOT NULL DEFAULT '',
		placa              TEXT NOT NULL DEFAULT '',
		modelo             TEXT NOT NULL DEFAULT '',
		ano                TEXT NOT NULL DEFAULT '',
		cor                TEXT NOT NULL DEFAULT '',
		endereco           TEXT NOT NULL DEFAULT '',
		usuario_rastreador TEXT NOT NULL DEFAULT '',
		senha_rastreador   TEXT NOT NULL DEFAULT '',
		base_rastreador    TEXT NOT NULL DEFAULT '',
		bloqueio           TEXT NOT NULL DEFAULT '',
		status             TEXT NOT NULL,
		tipo_servico       TEXT NOT NULL DEFAULT '',
		data_instalacao    TEXT NULL,
		horario            TEXT NULL,
		tecnico_id         TEXT NULL,
		version            BIGINT NOT NULL DEFAULT 1,
		created_at         TEXT NOT NULL,
		updated_at         TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS installations_tecnico_status_idx ON installations (tecnico_id, status)`,
	`CREATE TABLE IF NOT EXISTS installation_history (
		id              TEXT PRIMARY KEY,
		installation_id TEXT NOT NULL REFERENCES installations (id),
		descricao       TEXT NOT NULL,
		usuario         TEXT NOT NULL,
		created_at      TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS installation_history_installation_idx ON installation_history (installation_id, created_at)`,
	`CREATE TABLE IF NOT EXISTS installation_observations (
		id              TEXT PRIMARY KEY,
		installation_id TEXT NOT NULL REFERENCES installations (id),
		texto           TEXT NOT NULL,
		destaque        BOOLEAN NOT NULL DEFAULT FALSE,
		usuario         TEXT NOT NULL,
		created_at      TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS installation_observations_installation_idx ON installation_observations (installation_id, created_at)`,
}

// ApplySchema creates the tables and indexes when they do not exist yet.
func ApplySchema(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schemaStatements {
		if strings.TrimSpace(stmt) == "" {
			continue
		}
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("execute ddl: %w", err)
		}
	}
	return nil
}
