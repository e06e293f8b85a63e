// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package migrations

import (
	"database/sql"
	"io/fs"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestMigrate_DBError(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()

	_ = mock // goose issues its own queries, none of which are expected

	err = Migrate(db, DialectPostgres)
	if err == nil {
		t.Fatal("expected error from Migrate, got nil")
	}

	if !strings.Contains(err.Error(), "migration error") {
		t.Errorf("expected wrapped migration error, got: %v", err)
	}
}

func TestMigrate_NilDB(t *testing.T) {
	var db *sql.DB

	err := Migrate(db, DialectSQLite)
	if err == nil {
		t.Fatal("expected error when db is nil, got nil")
	}

	if !strings.Contains(err.Error(), "db is nil") {
		t.Errorf("expected 'db is nil' error, got: %v", err)
	}
}

func TestMigrate_UnsupportedDialect(t *testing.T) {
	db, _, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()

	err = Migrate(db, "oracle")
	if err == nil || !strings.Contains(err.Error(), "unsupported dialect") {
		t.Fatalf("expected unsupported dialect error, got: %v", err)
	}
}

func TestEmbeddedMigrations_EveryDialectHasSchema(t *testing.T) {
	for _, dialect := range []string{DialectPostgres, DialectSQLite} {
		files, err := fs.Glob(embedMigrations, dialect+"/*.sql")
		if err != nil {
			t.Fatalf("glob %s: %v", dialect, err)
		}
		if len(files) == 0 {
			t.Fatalf("no migrations embedded for %s", dialect)
		}

		data, err := fs.ReadFile(embedMigrations, files[0])
		if err != nil {
			t.Fatalf("read %s: %v", files[0], err)
		}
		if !strings.Contains(string(data), "CREATE TABLE IF NOT EXISTS kv_store") {
			t.Errorf("%s does not create kv_store", files[0])
		}
	}
}
