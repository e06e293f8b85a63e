package kv

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-privacy-node/internal/logger"
	"github.com/MKhiriev/go-privacy-node/migrations"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// NewPostgresStore connects to dsn, applies the schema migrations and
// returns a [SQLStore] using $n placeholders.
func NewPostgresStore(ctx context.Context, dsn string, log *logger.Logger) (*SQLStore, error) {
	// establish connection
	conn, err := sql.Open("pgx", dsn)
	if err != nil {
		log.Err(err).Str("func", "NewPostgresStore").Msg("error occurred during database connection")
		return nil, fmt.Errorf("error occurred during database connection: %w", err)
	}

	// setup connections
	conn.SetMaxOpenConns(10)
	conn.SetMaxIdleConns(4)

	// ping database
	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewPostgresStore").Msg("error connecting database (ping)")
		_ = conn.Close()
		return nil, err
	}

	if err = migrations.Migrate(conn, migrations.DialectPostgres); err != nil {
		log.Err(err).Str("func", "NewPostgresStore").Msg("error migrating database")
		_ = conn.Close()
		return nil, err
	}
	log.Info().Str("func", "NewPostgresStore").Msg("connected to database successfully")

	return newSQLStore(conn, sq.Dollar, NewPostgresErrorClassifier(), log), nil
}
