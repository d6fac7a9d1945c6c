package persistence

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"sort"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/spec-kit/delivery-ops/internal/repository"
)

//go:embed migrations/*.sql
var migrationFiles embed.FS

const migrationsDir = "migrations"

// RunMigrations applies the embedded SQL migrations that have not run yet and
// positions the shared id sequence so its first value is idStart.
func RunMigrations(ctx context.Context, pool *pgxpool.Pool, idStart int64, logger *zap.Logger) error {
	if pool == nil {
		logger.Warn("no postgres pool available; skipping migrations")
		return nil
	}

	filenames, err := migrationNames()
	if err != nil {
		return err
	}

	applied := 0
	for _, name := range filenames {
		done, err := migrationApplied(ctx, pool, name)
		if err != nil {
			return err
		}
		if done {
			continue
		}

		content, err := migrationFiles.ReadFile(migrationsDir + "/" + name)
		if err != nil {
			return fmt.Errorf("read migration %s: %w", name, err)
		}

		logger.Info("applying migration", zap.String("file", name))
		if _, err := pool.Exec(ctx, string(content)); err != nil {
			return fmt.Errorf("apply migration %s: %w", name, err)
		}
		if _, err := pool.Exec(ctx, "INSERT INTO schema_migrations (name) VALUES ($1) ON CONFLICT DO NOTHING", name); err != nil {
			return fmt.Errorf("record migration %s: %w", name, err)
		}
		applied++
	}

	if err := positionIDSequence(ctx, pool, idStart); err != nil {
		return err
	}

	logger.Info("migrations applied", zap.Int("count", applied), zap.Int("known", len(filenames)))
	return nil
}

func migrationNames() ([]string, error) {
	entries, err := fs.ReadDir(migrationFiles, migrationsDir)
	if err != nil {
		return nil, fmt.Errorf("read migrations: %w", err)
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)
	return names, nil
}

func migrationApplied(ctx context.Context, pool *pgxpool.Pool, name string) (bool, error) {
	var exists bool
	err := pool.QueryRow(ctx, "SELECT to_regclass('schema_migrations') IS NOT NULL").Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check schema_migrations: %w", err)
	}
	if !exists {
		return false, nil
	}
	var done bool
	err = pool.QueryRow(ctx, "SELECT EXISTS (SELECT 1 FROM schema_migrations WHERE name = $1)", name).Scan(&done)
	if err != nil {
		return false, fmt.Errorf("check migration %s: %w", name, err)
	}
	return done, nil
}

// positionIDSequence moves a never-used sequence to idStart. A sequence that
// has already handed out ids is left alone.
func positionIDSequence(ctx context.Context, pool *pgxpool.Pool, idStart int64) error {
	if idStart < 1 {
		idStart = 1
	}
	var called bool
	query := fmt.Sprintf("SELECT is_called FROM %s", repository.EntityIDSequence)
	if err := pool.QueryRow(ctx, query).Scan(&called); err != nil {
		return fmt.Errorf("inspect %s: %w", repository.EntityIDSequence, err)
	}
	if called {
		return nil
	}
	if _, err := pool.Exec(ctx, "SELECT setval($1::regclass, $2, false)", repository.EntityIDSequence, idStart); err != nil {
		return fmt.Errorf("position %s: %w", repository.EntityIDSequence, err)
	}
	return nil
}
