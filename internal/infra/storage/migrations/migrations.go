package migrations

import (
	"database/sql"
	"embed"
	"fmt"

	migrate "github.com/rubenv/sql-migrate"
)

//go:embed *.sql
var files embed.FS

// Source источник миграций, встроенный в бинарник
func Source() migrate.MigrationSource {
	return &migrate.EmbedFileSystemMigrationSource{
		FileSystem: files,
		Root:       ".",
	}
}

// Up применяет все новые миграции и возвращает их количество
func Up(db *sql.DB) (int, error) {
	n, err := migrate.Exec(db, "postgres", Source(), migrate.Up)
	if err != nil {
		return 0, fmt.Errorf("migrations: apply: %w", err)
	}
	return n, nil
}
