package db

import (
	"embed"
	"fmt"

	"github.com/jinzhu/gorm"
)

//go:embed scripts/postgres.sql scripts/sqlite.sql
var schemaFS embed.FS

// EnsureSchema runs the embedded schema script for dialect. Every statement
// is IF NOT EXISTS so it is safe on each start.
func EnsureSchema(database *gorm.DB, dialect string) error {
	script := "scripts/sqlite.sql"
	if dialect == DialectPostgres {
		script = "scripts/postgres.sql"
	}

	sqlBytes, err := schemaFS.ReadFile(script)
	if err != nil {
		return fmt.Errorf("read %s: %w", script, err)
	}
	if err := database.Exec(string(sqlBytes)).Error; err != nil {
		return fmt.Errorf("apply %s: %w", script, err)
	}
	return nil
}
