package rxkit

import (
	"fmt"
	"strconv"
)

// SqlServerDialect struct.
type SqlServerDialect struct{}

func (m SqlServerDialect) bindVar(n int) string {
	return "@p" + strconv.Itoa(n)
}

func (m SqlServerDialect) serverVersionSQL() string {
	return `SELECT @@VERSION`
}

func (m SqlServerDialect) createBundleTableSQL(tableName string) string {
	const tpl = `
IF OBJECT_ID(N'%[1]s', N'U') IS NULL
CREATE TABLE %[1]s (
    id INT NOT NULL IDENTITY(1,1) PRIMARY KEY,
    bundle NVARCHAR(255) NOT NULL,
    locale NVARCHAR(35) NOT NULL DEFAULT '',
    position INT NOT NULL,
    entry_key NVARCHAR(255) NOT NULL,
    entry_value NVARCHAR(MAX) NOT NULL DEFAULT ''
);
`
	return fmt.Sprintf(tpl, tableName)
}
