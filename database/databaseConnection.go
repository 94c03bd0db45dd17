package database

import (
	"context"
	_ "embed"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"time"

	"golang-sportplans/config"

	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog/log"
)

//go:embed schema.sql
var sqliteSchema string

// DBInstance opens the pool for the configured driver and pings it.
func DBInstance(cfg *config.Config) (*sqlx.DB, error) {
	var (
		db  *sqlx.DB
		err error
	)

	switch cfg.DB.Driver {
	case "sqlite3":
		db, err = OpenSQLite(cfg.DB.Path)
	default:
		db, err = openMySQL(cfg)
		if err == nil {
			db.SetMaxOpenConns(cfg.DB.MaxOpenConns)
			db.SetMaxIdleConns(cfg.DB.MaxIdleConns)
		}
	}
	if err != nil {
		return nil, err
	}
	db.SetConnMaxLifetime(cfg.DB.ConnMaxLifetime)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("pinging %s: %w", cfg.DB.Driver, err)
	}

	log.Info().Str("driver", cfg.DB.Driver).Msg("database connected")
	return db, nil
}

func openMySQL(cfg *config.Config) (*sqlx.DB, error) {
	mc := mysql.NewConfig()
	mc.User = cfg.DB.User
	mc.Passwd = cfg.DB.Password
	mc.Net = "tcp"
	mc.Addr = net.JoinHostPort(cfg.DB.Host, cfg.DB.Port)
	mc.DBName = cfg.DB.Name
	// report matched rather than changed rows, so an update that writes the
	// same values is not mistaken for a missing or foreign row
	mc.ClientFoundRows = true

	db, err := sqlx.Open("mysql", mc.FormatDSN())
	if err != nil {
		return nil, fmt.Errorf("opening mysql: %w", err)
	}
	return db, nil
}

// OpenSQLite opens (creating if needed) a sqlite database file and applies
// the embedded schema. Used for local runs and tests.
func OpenSQLite(path string) (*sqlx.DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, err
	}
	db, err := sqlx.Open("sqlite3", path+"?_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("opening sqlite: %w", err)
	}
	// sqlite allows a single writer
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(sqliteSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("applying schema: %w", err)
	}
	return db, nil
}
