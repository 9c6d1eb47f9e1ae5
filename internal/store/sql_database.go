package store

import (
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/kashishbhadauriya/Careersphere/internal/logger"
	"github.com/kashishbhadauriya/Careersphere/migrations"
)

// DB is a SQL connection together with the dialect specific pieces the
// repositories need: a squirrel builder with the right placeholder format
// and an error classifier.
type DB struct {
	*sql.DB
	driver             string
	builder            sq.StatementBuilderType
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// Migrate applies the embedded migrations for the connection's dialect.
func (db *DB) Migrate() error {
	if err := migrations.Migrate(db.DB, db.driver); err != nil {
		return fmt.Errorf("error migrating %s database: %w", db.driver, err)
	}
	return nil
}
