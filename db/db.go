package db

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"learnhub/config"
	"learnhub/logger"

	"github.com/avast/retry-go/v4"
	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/postgres"
	_ "github.com/jinzhu/gorm/dialects/sqlite"
)

const (
	DialectPostgres = "postgres"
	DialectSQLite   = "sqlite3"
)

// Connect opens the configured database (sqlite3 by default), retrying while
// the server comes up, and applies the embedded schema.
func Connect(conf config.Configuration, log *logger.Logger) (*gorm.DB, error) {
	dialect, dsn, err := dataSource(conf)
	if err != nil {
		return nil, err
	}

	if dialect == DialectPostgres {
		log.Info("using postgresql connection", "host", conf.DbHost, "port", conf.DbPort, "db", conf.DbName)
	} else {
		log.Info("using sqlite3 connection", "path", conf.DbPath)
	}

	var database *gorm.DB
	err = retry.Do(
		func() error {
			d, err := gorm.Open(dialect, dsn)
			if err != nil {
				return err
			}
			database = d
			return nil
		},
		retry.Attempts(uint(conf.DbConnectAttempts)),
		retry.Delay(time.Second),
		retry.DelayType(retry.FixedDelay),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			log.Warn("database not reachable, retrying", "attempt", n+1, "error", err)
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("connect %s: %w", dialect, err)
	}

	Configure(database, dialect, conf.LogMode, log)

	if err := EnsureSchema(database, dialect); err != nil {
		database.Close()
		return nil, err
	}
	return database, nil
}

// Configure applies pool limits and routes gorm's SQL log through log.
func Configure(database *gorm.DB, dialect, logMode string, log *logger.Logger) {
	sqlDB := database.DB()
	if dialect == DialectSQLite {
		// one writer at a time; sqlite serialises writes anyway
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxOpenConns(20)
		sqlDB.SetMaxIdleConns(10)
		sqlDB.SetConnMaxLifetime(30 * time.Minute)
		sqlDB.SetConnMaxIdleTime(10 * time.Minute)
	}

	database.SetLogger(gormLogger{log: log})
	database.LogMode(strings.ToLower(logMode) != "prod" && strings.ToLower(logMode) != "production")
}

func dataSource(conf config.Configuration) (string, string, error) {
	if conf.IsPostgres() {
		dsn := "host=" + conf.DbHost + " port=" + conf.DbPort
		dsn += " user=" + conf.DbUser + " dbname=" + conf.DbName
		dsn += " password=" + conf.DbPass
		if conf.DbSSLMode != "" {
			dsn += " sslmode=" + conf.DbSSLMode
		}
		return DialectPostgres, dsn, nil
	}
	if conf.Database != "" && conf.Database != DialectSQLite && conf.Database != "sqlite" {
		return "", "", fmt.Errorf("unsupported database %q", conf.Database)
	}

	path := conf.DbPath
	if path == "" {
		path = "db/database.db"
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", "", fmt.Errorf("create sqlite dir: %w", err)
	}
	return DialectSQLite, SQLiteDSN(path), nil
}

// SQLiteDSN enables foreign key enforcement, which sqlite leaves off per connection.
func SQLiteDSN(path string) string {
	return "file:" + path + "?_foreign_keys=1&_busy_timeout=5000"
}

type gormLogger struct {
	log *logger.Logger
}

// Print receives gorm's log tuples: ("sql", source, duration, query, vars, rows)
// for statements and ("log", source, values...) otherwise.
func (g gormLogger) Print(values ...interface{}) {
	if len(values) >= 6 && values[0] == "sql" {
		g.log.Debug("sql", "source", values[1], "duration", values[2], "query", values[3], "rows", values[5])
		return
	}
	g.log.Debug("gorm", "values", fmt.Sprint(values...))
}
