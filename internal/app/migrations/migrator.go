package migrations

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/akhilduddi/college-complaints-management-system/internal/db"
	"github.com/akhilduddi/college-complaints-management-system/internal/pkg/logger"
	"github.com/jackc/pgx/v5"
)

//go:embed sql/*.sql
var embedded embed.FS

// Migration is one versioned schema script
type Migration struct {
	Version string
	Name    string
	SQL     string
}

// Migrator manages database migrations
type Migrator struct {
	db     db.TxBeginner
	source fs.FS
	dir    string
}

// NewMigrator creates a migrator that applies the scripts compiled into the binary
func NewMigrator(pool db.TxBeginner) *Migrator {
	return &Migrator{
		db:     pool,
		source: embedded,
		dir:    "sql",
	}
}

// NewMigratorFS reads scripts from dir inside source instead of the embedded set
func NewMigratorFS(pool db.TxBeginner, source fs.FS, dir string) *Migrator {
	return &Migrator{db: pool, source: source, dir: dir}
}

// Load lists the available migrations ordered by filename.
// "001_init.sql" has version "001".
func (m *Migrator) Load() ([]Migration, error) {
	entries, err := fs.ReadDir(m.source, m.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read migration directory: %w", err)
	}

	var names []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".sql") {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	migrations := make([]Migration, 0, len(names))
	seen := make(map[string]string, len(names))
	for _, name := range names {
		version, _, _ := strings.Cut(name, "_")
		if prev, dup := seen[version]; dup {
			return nil, fmt.Errorf("migration version %s used by both %s and %s", version, prev, name)
		}
		seen[version] = name

		content, err := fs.ReadFile(m.source, path.Join(m.dir, name))
		if err != nil {
			return nil, fmt.Errorf("failed to read migration file %s: %w", name, err)
		}
		migrations = append(migrations, Migration{Version: version, Name: name, SQL: string(content)})
	}
	return migrations, nil
}

// Migrate applies every pending migration inside one transaction. Nothing is
// committed unless all of them succeed.
func (m *Migrator) Migrate(ctx context.Context) error {
	migrations, err := m.Load()
	if err != nil {
		return err
	}

	return db.WithTransaction(ctx, m.db, func(ctx context.Context, tx pgx.Tx) error {
		if err := ensureMigrationTableExists(ctx, tx); err != nil {
			return err
		}

		for _, mig := range migrations {
			applied, err := isMigrationApplied(ctx, tx, mig.Version)
			if err != nil {
				return err
			}
			if applied {
				logger.Debug().Str("migration", mig.Name).Msg("Migration already applied, skipping")
				continue
			}

			if _, err := tx.Exec(ctx, mig.SQL); err != nil {
				return fmt.Errorf("error occurred during SQL migration %s: %w", mig.Name, err)
			}
			if err := recordMigration(ctx, tx, mig.Version); err != nil {
				return err
			}
			logger.Info().Str("migration", mig.Name).Msg("Migration applied")
		}
		return nil
	})
}

// ensureMigrationTableExists creates the migration tracking table if it doesn't exist
func ensureMigrationTableExists(ctx context.Context, tx pgx.Tx) error {
	_, err := tx.Exec(ctx, `
	CREATE TABLE IF NOT EXISTS schema_migrations (
		version VARCHAR(255) PRIMARY KEY,
		applied_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	);`)
	if err != nil {
		return fmt.Errorf("failed to create migration tracking table: %w", err)
	}
	return nil
}

func isMigrationApplied(ctx context.Context, tx pgx.Tx, version string) (bool, error) {
	var exists bool
	err := tx.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM schema_migrations WHERE version = $1)`, version).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check migration status: %w", err)
	}
	return exists, nil
}

func recordMigration(ctx context.Context, tx pgx.Tx, version string) error {
	if _, err := tx.Exec(ctx, `INSERT INTO schema_migrations (version) VALUES ($1)`, version); err != nil {
		return fmt.Errorf("failed to record migration: %w", err)
	}
	return nil
}
