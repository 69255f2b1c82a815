package db

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"time"

	"github.com/EO-DataHub/zoom-webinar-services/internal/appconfig"
	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"
	"github.com/rs/zerolog"
)

//go:embed migrations/*.sql
var migrations embed.FS

// ErrNotFound is returned when a row addressed by id does not exist.
var ErrNotFound = errors.New("not found")

type WebinarDB struct {
	DB  *sql.DB
	Log *zerolog.Logger
}

// NewWebinarDB is a constructor that opens the connection and checks it
func NewWebinarDB(cfg appconfig.DatabaseConfig, log *zerolog.Logger) (*WebinarDB, error) {
	if cfg.Source == "" {
		log.Error().Msg("database source is not set")
		return nil, fmt.Errorf("database source is not set")
	}

	driver := cfg.Driver
	if driver == "" {
		driver = "postgres"
	}

	// Open the database connection
	db, err := sql.Open(driver, cfg.Source)
	if err != nil {
		log.Error().Err(err).Msg("Failed to open database connection")
		return nil, err
	}

	// Check we are actually connected
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err = db.PingContext(ctx)
	if err != nil {
		log.Error().Err(err).Msg("Database connection failed during ping")
		db.Close()
		return nil, err
	}

	return &WebinarDB{
		DB:  db,
		Log: log,
	}, nil
}

func (w *WebinarDB) Close() error {
	if err := w.DB.Close(); err != nil {
		return err
	}
	w.Log.Info().Msg("database connection closed")
	w.DB = nil

	return nil
}

// Migrate applies every pending goose migration.
func (w *WebinarDB) Migrate() error {
	goose.SetBaseFS(migrations)
	defer goose.SetBaseFS(nil)

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("error setting goose dialect: %w", err)
	}

	if err := goose.Up(w.DB, "migrations"); err != nil {
		w.Log.Error().Err(err).Msg("error applying migrations")
		return fmt.Errorf("error applying migrations: %w", err)
	}

	w.Log.Info().Msg("Migrations applied successfully")
	return nil
}

// CommitTransaction commits a transaction started by one of the store methods.
func (w *WebinarDB) CommitTransaction(tx *sql.Tx) error {
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("error committing transaction: %w", err)
	}
	return nil
}

// RollbackTransaction abandons a transaction started by one of the store methods.
func (w *WebinarDB) RollbackTransaction(tx *sql.Tx) error {
	if err := tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
		return fmt.Errorf("error rolling back transaction: %w", err)
	}
	return nil
}

func (w *WebinarDB) execQuery(tx *sql.Tx, query string, args ...interface{}) (int64, error) {

	if w.DB == nil {
		return 0, fmt.Errorf("database connection is not established")
	}

	res, err := tx.Exec(query, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to execute query: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read affected rows: %w", err)
	}
	return affected, nil
}
