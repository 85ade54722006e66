package mysql

import (
	"database/sql"
	"fmt"

	driver "github.com/go-sql-driver/mysql"
	"go.uber.org/zap"
	"feedback_dashboard/internal/db"
)

// Store keeps feedback in the feedbacks table. AUTO_INCREMENT supplies the
// ids, so they stay unique and ascending across processes.
type Store struct {
	queries *db.Queries
	log     *zap.Logger
}

func New(queries *db.Queries, logger *zap.Logger) *Store {
	return &Store{queries: queries, log: logger}
}

// NormalizeDSN turns on parseTime so created_at scans into time.Time
// regardless of what the operator put in the DSN.
func NormalizeDSN(dsn string) (string, error) {
	cfg, err := driver.ParseDSN(dsn)
	if err != nil {
		return "", fmt.Errorf("mysql dsn: %w", err)
	}
	cfg.ParseTime = true
	return cfg.FormatDSN(), nil
}

// Open opens and pings the database behind dsn.
func Open(dsn string) (*sql.DB, error) {
	normalized, err := NormalizeDSN(dsn)
	if err != nil {
		return nil, err
	}
	sqlDB, err := sql.Open("mysql", normalized)
	if err != nil {
		return nil, fmt.Errorf("mysql open: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("mysql ping: %w", err)
	}
	return sqlDB, nil
}
