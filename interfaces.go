package rxkit

import (
	"context"
	"database/sql"
)

type SQLExecutor interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// Conn is a single database connection handed to Run.
// Run always closes it.
type Conn interface {
	// PrepareContext prepares query and binds args to the returned statement.
	PrepareContext(ctx context.Context, query string, args ...any) (Stmt, error)
	Close() error
}

// Stmt is a prepared statement with its parameters already bound.
type Stmt interface {
	QueryContext(ctx context.Context) (Rows, error)
	Close() error
}

// Rows is the interface boundary of *sql.Rows
type Rows interface {
	Next() bool
	Scan(dest ...any) error
	Columns() ([]string, error)
	Err() error
	Close() error
}

// ConnProvider hands out connections; *DB implements it.
type ConnProvider interface {
	Conn(ctx context.Context) (Conn, error)
}

type sqlConn struct {
	conn    *sql.Conn
	dialect SQLDialect
}

// WrapConn adapts a *sql.Conn, rebinding '?' placeholders for the dialect.
// A nil dialect leaves queries untouched.
func WrapConn(conn *sql.Conn, dialect SQLDialect) Conn {
	return &sqlConn{conn: conn, dialect: dialect}
}

func (c *sqlConn) PrepareContext(ctx context.Context, query string, args ...any) (Stmt, error) {
	if c.dialect != nil {
		query = rebind(c.dialect, query)
	}

	stmt, err := c.conn.PrepareContext(ctx, query)
	if err != nil {
		return nil, err
	}

	return &sqlStmt{stmt: stmt, args: args}, nil
}

func (c *sqlConn) Close() error {
	return c.conn.Close()
}

type sqlStmt struct {
	stmt *sql.Stmt
	args []any
}

func (s *sqlStmt) QueryContext(ctx context.Context) (Rows, error) {
	rows, err := s.stmt.QueryContext(ctx, s.args...)
	if err != nil {
		return nil, err
	}

	return rows, nil
}

func (s *sqlStmt) Close() error {
	return s.stmt.Close()
}
