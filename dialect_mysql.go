package rxkit

import "fmt"

// MySQLDialect struct.
type MySQLDialect struct{}

func (m MySQLDialect) bindVar(n int) string {
	return "?"
}

func (m MySQLDialect) serverVersionSQL() string {
	return `SELECT VERSION()`
}

func (m MySQLDialect) createBundleTableSQL(tableName string) string {
	return fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
                id SERIAL NOT NULL,
                bundle VARCHAR(255) NOT NULL,
                locale VARCHAR(35) NOT NULL DEFAULT '',
                position INT NOT NULL,
                entry_key VARCHAR(255) NOT NULL,
                entry_value TEXT NOT NULL,
                PRIMARY KEY(id),
                INDEX bundle_locale(bundle, locale)
            );`, tableName)
}
