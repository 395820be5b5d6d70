package rxkit

import "fmt"

// Sqlite3Dialect struct.
type Sqlite3Dialect struct{}

func (m Sqlite3Dialect) bindVar(n int) string {
	return "?"
}

func (m Sqlite3Dialect) serverVersionSQL() string {
	return `SELECT sqlite_version()`
}

func (m Sqlite3Dialect) createBundleTableSQL(tableName string) string {
	return fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
                id INTEGER PRIMARY KEY AUTOINCREMENT,
                bundle TEXT NOT NULL,
                locale TEXT NOT NULL DEFAULT '',
                position INTEGER NOT NULL,
                entry_key TEXT NOT NULL,
                entry_value TEXT NOT NULL DEFAULT ''
            );`, tableName)
}
