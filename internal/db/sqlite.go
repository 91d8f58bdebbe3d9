package db

import (
	"context"
	"database/sql"

	_ "github.com/mattn/go-sqlite3"
)

// MemoryDSN opens a private in-memory database. Its contents vanish when the
// connection closes.
const MemoryDSN = ":memory:"

type SQLite struct {
	dsn  string
	conn *sql.DB
}

func NewSQLite(dsn string) *SQLite {
	if dsn == "" {
		dsn = MemoryDSN
	}
	return &SQLite{
		dsn:  dsn,
		conn: nil,
	}
}

func (s *SQLite) InitDB() error {
	var err error
	s.conn, err = sql.Open("sqlite3", s.dsn)
	if err != nil {
		return err
	}

	// Every connection to :memory: is a separate database.
	s.conn.SetMaxOpenConns(1)

	res, err := s.conn.Exec(`
CREATE TABLE IF NOT EXISTS posts (
    id TEXT PRIMARY KEY,
    title TEXT,
    content BLOB,
    content_hash TEXT,
    created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
    modified_at DATETIME
);`)
	if err != nil {
		return err
	}

	dbLogger.Info().Str("dsn", s.dsn).Any("db_result", res).Msg("Database initialized")
	return nil
}

func (s *SQLite) Get() *sql.DB {
	return s.conn
}

func (s *SQLite) Close() error {
	if s.conn != nil {
		return s.conn.Close()
	}
	return nil
}

func (s *SQLite) Query(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	dbLogger.Debug().Str("query", query).Msg("Query")
	return s.conn.QueryContext(ctx, query, args...)
}

func (s *SQLite) QueryRow(ctx context.Context, query string, args ...interface{}) *sql.Row {
	dbLogger.Debug().Str("query", query).Msg("QueryRow")
	return s.conn.QueryRowContext(ctx, query, args...)
}

func (s *SQLite) Exec(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	dbLogger.Debug().Str("query", query).Msg("Exec")
	return s.conn.ExecContext(ctx, query, args...)
}
