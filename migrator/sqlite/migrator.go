package sqlite

import (
	"database/sql"
	"embed"
	"fmt"

	"github.com/GuiaBolso/darwin"
	"github.com/diegoclair/sqlmigrator"
)

// SqlFiles holds the timesheet schema migrations.
//
//go:embed sql/*.sql
var SqlFiles embed.FS

// Migrate brings the timesheet database up to the latest schema.
func Migrate(db *sql.DB) error {
	migrator := sqlmigrator.New(db, darwin.SqliteDialect{})

	if err := migrator.Migrate(SqlFiles, "sql"); err != nil {
		return fmt.Errorf("failed to migrate timesheet database: %w", err)
	}
	return nil
}
