// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Careersphere Authors

package migrations

import (
	"database/sql"
	"io/fs"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrate_DBError(t *testing.T) {
	for _, driver := range []string{"postgres", "sqlite3"} {
		t.Run(driver, func(t *testing.T) {
			db, _, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			// no expectations registered: goose's first query fails
			err = Migrate(db, driver)

			require.Error(t, err)
			assert.Contains(t, err.Error(), "migration error")
		})
	}
}

func TestMigrate_NilDB(t *testing.T) {
	var db *sql.DB

	err := Migrate(db, "postgres")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "db is nil")
}

func TestMigrate_UnsupportedDriver(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	err = Migrate(db, "mysql")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported driver")
}

func TestEmbeddedMigrations_PerDialect(t *testing.T) {
	for _, d := range dialects {
		entries, err := fs.ReadDir(embedMigrations, d.dir)
		require.NoError(t, err)
		assert.NotEmpty(t, entries, "expected migrations in %s", d.dir)
	}
}
