package rxkit

// TiDBDialect speaks the MySQL protocol; only the version query differs.
type TiDBDialect struct {
	MySQLDialect
}

func (m TiDBDialect) serverVersionSQL() string {
	return `SELECT tidb_version()`
}
