package kv

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-privacy-node/internal/logger"
	"github.com/MKhiriev/go-privacy-node/migrations"
)

// NewSQLiteStore opens (creating if needed) the database file at path,
// applies the schema migrations and returns a [SQLStore] using ? placeholders.
// The mattn driver is registered by the classifier's import of go-sqlite3.
func NewSQLiteStore(ctx context.Context, path string, log *logger.Logger) (*SQLStore, error) {
	// db will be in file
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		log.Err(err).Str("func", "NewSQLiteStore").Msg("error creating database directory")
		return nil, fmt.Errorf("error creating database directory: %w", err)
	}

	conn, err := sql.Open("sqlite3", path+"?_busy_timeout=5000&_journal_mode=WAL")
	if err != nil {
		log.Err(err).Str("func", "NewSQLiteStore").Msg("error connecting database")
		return nil, fmt.Errorf("error opening connection to DB: %w", err)
	}

	// ping database
	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewSQLiteStore").Msg("error connecting database (ping)")
		_ = conn.Close()
		return nil, err
	}

	if err = migrations.Migrate(conn, migrations.DialectSQLite); err != nil {
		log.Err(err).Str("func", "NewSQLiteStore").Msg("error migrating database")
		_ = conn.Close()
		return nil, err
	}
	log.Debug().Str("func", "NewSQLiteStore").Msg("connected to database successfully")

	return newSQLStore(conn, sq.Question, NewSQLiteErrorClassifier(), log), nil
}
