package postgres

import (
	"database/sql"
	"os"

	"github.com/pkg/errors"
)

// Locations of the schema file relative to where the binary is started.
var schemaPaths = []string{
	"script/migration/schema.sql",
	"../script/migration/schema.sql",
	"../../script/migration/schema.sql",
	"../../../script/migration/schema.sql",
}

func findSchema() string {
	for _, path := range schemaPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return schemaPaths[0]
}

// RunMigrations executes schema.sql. The statements are idempotent.
func RunMigrations(db *sql.DB) error {
	schemaPath := findSchema()
	content, err := os.ReadFile(schemaPath)
	if err != nil {
		wd, _ := os.Getwd()
		return errors.Wrapf(err, "read migration file %q (wd %s)", schemaPath, wd)
	}

	if _, err := db.Exec(string(content)); err != nil {
		return errors.Wrap(err, "execute schema.sql")
	}
	return nil
}
