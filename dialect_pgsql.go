package rxkit

import (
	"fmt"
	"strconv"
)

// PostgresDialect struct.
type PostgresDialect struct{}

func (d PostgresDialect) bindVar(n int) string {
	return "$" + strconv.Itoa(n)
}

func (d PostgresDialect) serverVersionSQL() string {
	return `SHOW server_version`
}

func (d PostgresDialect) createBundleTableSQL(tableName string) string {
	return fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
            	id serial NOT NULL,
                bundle varchar(255) NOT NULL,
                locale varchar(35) NOT NULL default '',
                position integer NOT NULL,
                entry_key varchar(255) NOT NULL,
                entry_value text NOT NULL default '',
                PRIMARY KEY(id)
            );`, tableName)
}
