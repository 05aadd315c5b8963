// Package migration creates the schema on first start.
package migration

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"logidocs/internal/logging"
)

type migrationStep struct {
	Name string
	SQL  string
}

// sentinelTable is created by the last table step; its presence means the schema is in place.
const sentinelTable = "public.documents"

var steps = []migrationStep{
	{
		Name: "create_extension_uuid_ossp",
		SQL:  `CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`,
	},
	{
		Name: "create_table_operations",
		SQL: `CREATE TABLE IF NOT EXISTS operations (
  id               UUID        PRIMARY KEY DEFAULT uuid_generate_v4(),
  operation_number TEXT        NOT NULL UNIQUE,
  name             TEXT        NOT NULL,
  type             TEXT        NOT NULL CHECK (type IN ('ithalat', 'ihracat')),
  created_at       TIMESTAMPTZ NOT NULL DEFAULT now(),
  updated_at       TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_table_global_companies",
		SQL: `CREATE TABLE IF NOT EXISTS global_companies (
  id         UUID        PRIMARY KEY DEFAULT uuid_generate_v4(),
  name       TEXT        NOT NULL UNIQUE,
  address    TEXT,
  tax_number TEXT,
  contact    TEXT,
  created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
  updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_table_participants",
		SQL: `CREATE TABLE IF NOT EXISTS participants (
  id                UUID        PRIMARY KEY DEFAULT uuid_generate_v4(),
  operation_id      UUID        NOT NULL REFERENCES operations (id) ON DELETE CASCADE,
  global_company_id UUID        NOT NULL REFERENCES global_companies (id) ON DELETE RESTRICT,
  role              TEXT        NOT NULL CHECK (role IN ('tedarikci', 'alici', 'musteri')),
  created_at        TIMESTAMPTZ NOT NULL DEFAULT now(),
  CONSTRAINT participants_operation_company_role_key UNIQUE (operation_id, global_company_id, role)
);`,
	},
	{
		Name: "create_index_participants_global_company_id",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_participants_global_company_id ON participants (global_company_id);`,
	},
	{
		Name: "create_table_documents",
		SQL: `CREATE TABLE IF NOT EXISTS documents (
  id                 UUID        PRIMARY KEY DEFAULT uuid_generate_v4(),
  participant_id     UUID        NOT NULL REFERENCES participants (id) ON DELETE CASCADE,
  original_file_name TEXT        NOT NULL,
  stored_file_name   TEXT        NOT NULL,
  file_path          TEXT        NOT NULL UNIQUE,
  file_type          TEXT        NOT NULL,
  file_size          BIGINT      NOT NULL CHECK (file_size >= 0),
  uploaded_at        TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_index_documents_participant_uploaded_at",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_documents_participant_uploaded_at ON documents (participant_id, uploaded_at DESC);`,
	},
	{
		Name: "create_index_operations_created_at",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_operations_created_at ON operations (created_at);`,
	},
}

// EnsureMigrated runs every step when the sentinel table is missing.
// Steps are idempotent, so a run interrupted halfway can simply be repeated.
func EnsureMigrated(ctx context.Context, db *sql.DB, logger *log.Logger, dbHost string) error {
	if logger == nil {
		logger = logging.Default()
	}
	logger = logger.With("component", "database", "db_host", dbHost)
	start := time.Now()

	logger.Info("checking schema", "event", "db_migration_check", "status", "starting")

	var exists bool
	query := "SELECT to_regclass($1) IS NOT NULL"
	if err := db.QueryRowContext(ctx, query, sentinelTable).Scan(&exists); err != nil {
		logger.Error("migration failed",
			"event", "db_migration_failed",
			"status", "error",
			"error_message", fmt.Sprintf("failed to check sentinel table: %v", err),
			"duration_ms", time.Since(start).Milliseconds(),
		)
		return fmt.Errorf("failed to check sentinel table: %w", err)
	}

	if exists {
		logger.Info("schema already exists, skipping migration",
			"event", "db_migration_skip",
			"status", "success",
			"duration_ms", time.Since(start).Milliseconds(),
		)
		return nil
	}

	logger.Info("migrating", "event", "db_migration_start", "status", "in_progress", "steps", len(steps))

	for _, step := range steps {
		stepStart := time.Now()
		if _, err := db.ExecContext(ctx, step.SQL); err != nil {
			logger.Error("migration failed",
				"event", "db_migration_failed",
				"status", "error",
				"migration_step", step.Name,
				"error_message", err.Error(),
				"duration_ms", time.Since(start).Milliseconds(),
				"step_duration_ms", time.Since(stepStart).Milliseconds(),
			)
			return fmt.Errorf("migration step %s failed: %w", step.Name, err)
		}

		logger.Info("migration step applied",
			"event", "db_migration_step",
			"status", "success",
			"migration_step", step.Name,
			"step_duration_ms", time.Since(stepStart).Milliseconds(),
		)
	}

	logger.Info("migration complete",
		"event", "db_migration_success",
		"status", "success",
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return nil
}
