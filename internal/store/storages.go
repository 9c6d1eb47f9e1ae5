package store

import (
	"context"
	"fmt"

	"github.com/kashishbhadauriya/Careersphere/internal/config"
	"github.com/kashishbhadauriya/Careersphere/internal/logger"
)

type backend interface {
	PingContext(ctx context.Context) error
	Close() error
}

type mongoBackend struct{ *MongoDB }

func (m mongoBackend) PingContext(ctx context.Context) error { return m.Ping(ctx) }

// Storages bundles the repositories of one backend.
type Storages struct {
	UserRepository       UserRepository
	AssessmentRepository AssessmentRepository

	backend backend
}

// NewStorages connects to the backend selected by the DSN scheme and
// builds its repositories. SQL backends are migrated before use.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	log = log.Component("store")

	switch driver := cfg.DB.Driver(); driver {
	case config.DriverPostgres, config.DriverSQLite:
		var (
			db  *DB
			err error
		)
		if driver == config.DriverPostgres {
			db, err = NewConnectPostgres(ctx, cfg.DB, log)
		} else {
			db, err = NewConnectSQLite(ctx, cfg.DB, log)
		}
		if err != nil {
			return nil, err
		}
		if err = db.Migrate(); err != nil {
			_ = db.Close()
			return nil, err
		}
		return newSQLStorages(db, log), nil

	case config.DriverMongo:
		db, err := NewConnectMongo(ctx, cfg.DB, log)
		if err != nil {
			return nil, err
		}
		return &Storages{
			UserRepository:       NewMongoUserRepository(db, log),
			AssessmentRepository: NewMongoAssessmentRepository(db, log),
			backend:              mongoBackend{db},
		}, nil

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDSN, cfg.DB.DSN)
	}
}

func newSQLStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		UserRepository:       NewUserRepository(db, log),
		AssessmentRepository: NewAssessmentRepository(db, log),
		backend:              db,
	}
}

// Ping reports whether the backend is reachable.
func (s *Storages) Ping(ctx context.Context) error {
	if s.backend == nil {
		return nil
	}
	return s.backend.PingContext(ctx)
}

// Close releases the backend connection.
func (s *Storages) Close() error {
	if s.backend == nil {
		return nil
	}
	return s.backend.Close()
}
