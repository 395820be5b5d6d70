package rxkit

import "fmt"

// RedshiftDialect uses the postgres bind variables but has no serial type
type RedshiftDialect struct {
	PostgresDialect
}

func (d RedshiftDialect) serverVersionSQL() string {
	return `SELECT version()`
}

func (d RedshiftDialect) createBundleTableSQL(tableName string) string {
	return fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
            	id integer NOT NULL identity(1, 1),
                bundle varchar(255) NOT NULL,
                locale varchar(35) NOT NULL default '',
                position integer NOT NULL,
                entry_key varchar(255) NOT NULL,
                entry_value varchar(65535) NOT NULL default '',
                PRIMARY KEY(id)
            );`, tableName)
}
