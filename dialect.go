package rxkit

import (
	"fmt"
	"strings"
)

// SQLDialect abstracts the few SQL details that differ between the supported databases
type SQLDialect interface {
	bindVar(n int) string                         // the n-th (1-based) bind variable
	serverVersionSQL() string                     // sql string to query the server version
	createBundleTableSQL(tableName string) string // sql string to create the bundle table
}

func LoadDialect(d string) (SQLDialect, error) {
	switch d {
	case "postgres":
		return &PostgresDialect{}, nil
	case "mysql", "mymysql":
		return &MySQLDialect{}, nil
	case "sqlite3":
		return &Sqlite3Dialect{}, nil
	case "mssql", "sqlserver":
		return &SqlServerDialect{}, nil
	case "redshift":
		return &RedshiftDialect{}, nil
	case "tidb":
		return &TiDBDialect{}, nil
	}

	return nil, fmt.Errorf("%q: unknown dialect", d)
}

// rebind replaces the '?' placeholders outside of quoted literals
// with the bind variables of the dialect
func rebind(dialect SQLDialect, query string) string {
	if dialect.bindVar(1) == "?" {
		return query
	}

	var b strings.Builder
	b.Grow(len(query) + 8)

	n := 0
	var quote rune
	for _, r := range query {
		switch {
		case quote != 0:
			if r == quote {
				quote = 0
			}
		case r == '\'' || r == '"' || r == '`':
			quote = r
		case r == '?':
			n++
			b.WriteString(dialect.bindVar(n))
			continue
		}

		b.WriteRune(r)
	}

	return b.String()
}
