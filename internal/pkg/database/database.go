package database

import (
	"context"
	"fmt"
	"net"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

const (
	DriverMySQL  = "mysql"
	DriverSQLite = "sqlite"
)

type Config struct {
	Driver          string
	Host            string
	Port            string
	User            string
	Password        string
	DBName          string
	SQLitePath      string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

// Open connects to the store selected by cfg.Driver and verifies it with a ping.
func Open(ctx context.Context, cfg *Config) (*sqlx.DB, error) {
	switch cfg.Driver {
	case DriverMySQL, "":
		return NewMySQL(ctx, cfg)
	case DriverSQLite:
		return NewSQLite(ctx, cfg.SQLitePath)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}

func NewMySQL(ctx context.Context, cfg *Config) (*sqlx.DB, error) {
	mcfg := mysql.NewConfig()
	mcfg.User = cfg.User
	mcfg.Passwd = cfg.Password
	mcfg.Net = "tcp"
	mcfg.Addr = net.JoinHostPort(cfg.Host, cfg.Port)
	mcfg.DBName = cfg.DBName
	mcfg.ParseTime = true
	mcfg.Loc = time.UTC

	db, err := sqlx.ConnectContext(ctx, DriverMySQL, mcfg.FormatDSN())
	if err != nil {
		return nil, fmt.Errorf("connect mysql: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	db.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	return db, nil
}

// NewSQLite opens an SQLite database with foreign keys enforced. SQLite
// serialises writers, so the pool is pinned to a single connection; this also
// keeps ":memory:" databases alive for the lifetime of the handle.
func NewSQLite(ctx context.Context, path string) (*sqlx.DB, error) {
	dsn := fmt.Sprintf("file:%s?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)", path)

	db, err := sqlx.ConnectContext(ctx, DriverSQLite, dsn)
	if err != nil {
		return nil, fmt.Errorf("connect sqlite: %w", err)
	}
	db.SetMaxOpenConns(1)

	return db, nil
}
