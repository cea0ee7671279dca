// Package migrations applies the embedded schema to either database backend.
package migrations

import (
	"context"
	"embed"
	"fmt"
	"sort"
	"strings"

	"github.com/felixgeelhaar/resto/internal/shared/infrastructure/database"
)

//go:embed sql/postgres/*.sql sql/sqlite/*.sql
var schemaFS embed.FS

// Run executes all migrations for the connection's driver in order.
// Statements use CREATE ... IF NOT EXISTS, so reruns are idempotent.
func Run(ctx context.Context, conn database.Connection) error {
	dir := "sql/" + conn.Driver().String()

	entries, err := schemaFS.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("failed to read migrations directory: %w", err)
	}

	var upFiles []string
	for _, entry := range entries {
		if strings.HasSuffix(entry.Name(), ".up.sql") {
			upFiles = append(upFiles, entry.Name())
		}
	}
	sort.Strings(upFiles)

	for _, file := range upFiles {
		migration, err := schemaFS.ReadFile(dir + "/" + file)
		if err != nil {
			return fmt.Errorf("failed to read migration %s: %w", file, err)
		}

		// Execute statement by statement; pgx rejects multi-statement Exec.
		for _, stmt := range strings.Split(string(migration), ";") {
			stmt = strings.TrimSpace(stmt)
			if stmt == "" {
				continue
			}
			if _, err := conn.Exec(ctx, stmt); err != nil {
				return fmt.Errorf("failed to execute migration %s: %w", file, err)
			}
		}
	}

	return nil
}
