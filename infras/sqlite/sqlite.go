package sqlite

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
	_ "modernc.org/sqlite"

	"nihom/config"
)

const driverName = "sqlite"

func init() {
	// modernc.org/sqlite is not one of sqlx's built-in bindvar drivers.
	sqlx.BindDriver(driverName, sqlx.QUESTION)
}

// Connection wraps the single database file shared by all repositories.
type Connection struct {
	DB *sqlx.DB
}

// New opens the database, applies the schema and seeds first-run data.
// It is the process-start half of the store lifecycle; Close is the other.
func New(config *config.Config) *Connection {
	conn, err := Open(config.DB.Sqlite.Path, config.DB.Sqlite.BusyTimeoutMS)
	if err != nil {
		log.Fatal().Err(err).Str("path", config.DB.Sqlite.Path).Msg("Failed to open database")
	}

	if err := conn.EnsureSeedData(config); err != nil {
		log.Fatal().Err(err).Msg("Failed to seed database")
	}

	log.Info().Str("path", config.DB.Sqlite.Path).Msg("Connected to database")

	return conn
}

// Open connects to the database file at path and applies the schema DDL.
// Every table is created with IF NOT EXISTS, so reopening an existing file
// leaves its rows untouched.
func Open(path string, busyTimeoutMS int) (*Connection, error) {
	db, err := sqlx.Connect(driverName, path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database %s: %w", path, err)
	}

	// A single connection serializes writers; the busy timeout covers the
	// brief lock the engine takes for each single-row commit.
	db.SetMaxOpenConns(1)

	pragmas := []string{
		fmt.Sprintf("PRAGMA busy_timeout = %d", busyTimeoutMS),
		"PRAGMA journal_mode = WAL",
		"PRAGMA foreign_keys = ON",
	}

	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()

			return nil, fmt.Errorf("failed to apply %q: %w", pragma, err)
		}
	}

	for _, ddl := range schemaDDL {
		if _, err := db.Exec(ddl); err != nil {
			db.Close()

			return nil, fmt.Errorf("failed to apply schema: %w", err)
		}
	}

	return &Connection{DB: db}, nil
}

// Close releases the underlying database handle.
func (c *Connection) Close() error {
	if err := c.DB.Close(); err != nil {
		return fmt.Errorf("failed to close database: %w", err)
	}

	return nil
}
