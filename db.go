package rxkit

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	"github.com/pkg/errors"
)

type DB struct {
	*sql.DB

	driverName string
	dialect    SQLDialect
}

func OpenWithConfig(config *Config) (*DB, error) {
	dialectName := config.Dialect
	if len(dialectName) == 0 {
		dialectName = config.Driver
	}

	dialect, err := LoadDialect(dialectName)
	if err != nil {
		return nil, err
	}

	dsn := config.DSN
	if len(dsn) == 0 {
		dsn, err = BuildDSNFromEnvVars(config.Driver)
		if err != nil {
			return nil, errors.Wrap(err, "dsn is not defined, can not build dsn")
		}
	}

	return Open(config.Driver, dialect, dsn)
}

func BuildDSNFromEnvVars(driver string) (string, error) {
	switch castDriverName(driver) {
	case "mysql":
		return buildMySqlDSN()

	}
	return "", fmt.Errorf("can not build dsn for driver %s", driver)
}

func castDriverName(driver string) string {
	switch driver {
	case "mssql":
		return "sqlserver"
	case "redshift":
		return "postgres"
	case "tidb":
		return "mysql"
	}

	return driver
}

func OpenWithEnv(prefix string) (*DB, error) {
	driverName := os.Getenv(prefix + "_DRIVER")
	if driverName == "" {
		return nil, fmt.Errorf("env %s_DRIVER is not defined", prefix)
	}

	dialectName := os.Getenv(prefix + "_DIALECT")
	if dialectName == "" {
		dialectName = driverName
	}

	dialect, err := LoadDialect(dialectName)
	if err != nil {
		return nil, err
	}

	dsn := os.Getenv(prefix + "_DSN")
	return Open(driverName, dialect, dsn)
}

// Open creates a connection pool to a database.
// The driver itself must be registered by the caller with a blank import.
func Open(driverName string, dialect SQLDialect, dsn string) (*DB, error) {
	driverName = castDriverName(driverName)

	switch driverName {
	// supported drivers
	case "postgres", "sqlite3", "mysql", "mymysql", "sqlserver":
	default:
		return nil, fmt.Errorf("unsupported driver %s", driverName)
	}

	db, err := sql.Open(driverName, dsn)
	if err != nil {
		return nil, err
	}

	return New(driverName, dialect, db), nil
}

func New(driverName string, dialect SQLDialect, db *sql.DB) *DB {
	return &DB{
		dialect:    dialect,
		driverName: driverName,
		DB:         db,
	}
}

func (db *DB) DriverName() string {
	return db.driverName
}

func (db *DB) Dialect() SQLDialect {
	return db.dialect
}

// Conn takes one connection out of the pool. Closing it returns it to the pool.
func (db *DB) Conn(ctx context.Context) (Conn, error) {
	conn, err := db.DB.Conn(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "unable to acquire database connection")
	}

	return WrapConn(conn, db.dialect), nil
}

// Run executes the runner on a fresh connection
func (db *DB) Run(ctx context.Context, runner StatementRunner) error {
	conn, err := db.Conn(ctx)
	if err != nil {
		return err
	}

	return Run(ctx, conn, runner)
}

// ServerVersion queries the version string of the database server
func (db *DB) ServerVersion(ctx context.Context) (string, error) {
	q := &ServerVersionQuery{Dialect: db.dialect}
	if err := db.Run(ctx, q); err != nil {
		return "", err
	}

	return q.Version, nil
}

func (db *DB) rebind(query string) string {
	return rebind(db.dialect, query)
}
