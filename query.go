package rxkit

import (
	"context"
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// ServerVersionQuery reads the server version into Version
type ServerVersionQuery struct {
	Dialect SQLDialect

	Version string
}

func (q *ServerVersionQuery) Prepare(ctx context.Context, conn Conn) (Stmt, error) {
	return conn.PrepareContext(ctx, q.Dialect.serverVersionSQL())
}

func (q *ServerVersionQuery) ParseResults(rows Rows) error {
	if !rows.Next() {
		return errors.New("server version query returned no rows")
	}

	return rows.Scan(&q.Version)
}

func (q *ServerVersionQuery) Describe() string {
	return "server version"
}

// RowsQuery runs an arbitrary query and keeps every row as strings
type RowsQuery struct {
	SQL  string
	Args []any

	Columns []string
	Rows    [][]string
}

func (q *RowsQuery) Prepare(ctx context.Context, conn Conn) (Stmt, error) {
	if len(strings.TrimSpace(q.SQL)) == 0 {
		return nil, &StatementPreparationError{Err: errors.New("empty SQL query")}
	}

	return conn.PrepareContext(ctx, q.SQL, q.Args...)
}

func (q *RowsQuery) ParseResults(rows Rows) error {
	columns, err := rows.Columns()
	if err != nil {
		return errors.Wrap(err, "unable to read columns")
	}

	q.Columns = columns

	values := make([]any, len(columns))
	dest := make([]any, len(columns))
	for i := range values {
		dest[i] = &values[i]
	}

	for rows.Next() {
		if err := rows.Scan(dest...); err != nil {
			return errors.Wrapf(err, "failed to scan row %d", len(q.Rows)+1)
		}

		row := make([]string, len(values))
		for i, v := range values {
			row[i] = formatValue(v)
		}

		q.Rows = append(q.Rows, row)
	}

	return nil
}

func (q *RowsQuery) Describe() string {
	return previewSQL(q.SQL)
}

func formatValue(v any) string {
	switch vv := v.(type) {
	case nil:
		return "NULL"
	case []byte:
		return string(vv)
	}

	return fmt.Sprint(v)
}

// bundleEntriesQuery loads the entries of one bundle candidate in position order
type bundleEntriesQuery struct {
	table  string
	bundle string
	locale string

	entries []BundleEntry
}

func (q *bundleEntriesQuery) Prepare(ctx context.Context, conn Conn) (Stmt, error) {
	return conn.PrepareContext(ctx,
		fmt.Sprintf("SELECT entry_key, entry_value FROM %s WHERE bundle = ? AND locale = ? ORDER BY position", q.table),
		q.bundle, q.locale)
}

func (q *bundleEntriesQuery) ParseResults(rows Rows) error {
	for rows.Next() {
		var entry BundleEntry
		if err := rows.Scan(&entry.Key, &entry.Value); err != nil {
			return errors.Wrap(err, "failed to scan bundle entry")
		}

		q.entries = append(q.entries, entry)
	}

	return nil
}

func (q *bundleEntriesQuery) Describe() string {
	return fmt.Sprintf("bundle entries %s[%s]", q.bundle, q.locale)
}
