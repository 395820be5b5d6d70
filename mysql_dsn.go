package rxkit

import (
	"github.com/codingconcepts/env"
	"github.com/pkg/errors"
)

type mysqlEnv struct {
	URL          string `env:"MYSQL_URL"`
	DSN          string `env:"MYSQL_DSN"`
	User         string `env:"MYSQL_USER"`
	Password     string `env:"MYSQL_PASSWORD"`
	Pass         string `env:"MYSQL_PASS"`
	RootPassword string `env:"MYSQL_ROOT_PASSWORD"`
	Host         string `env:"MYSQL_HOST"`
	Port         string `env:"MYSQL_PORT"`
	Protocol     string `env:"MYSQL_PROTOCOL"`
	Database     string `env:"MYSQL_DATABASE"`
}

// buildMySqlDSN builds the data source name from the MYSQL_* environment variables
func buildMySqlDSN() (string, error) {
	var e mysqlEnv
	if err := env.Set(&e); err != nil {
		return "", errors.Wrap(err, "unable to read mysql env vars")
	}

	return e.dsn(), nil
}

func (e *mysqlEnv) dsn() string {
	if e.URL != "" {
		return e.URL
	}

	if e.DSN != "" {
		return e.DSN
	}

	dsn := e.User
	switch {
	case e.Password != "":
		dsn += ":" + e.Password
	case e.Pass != "":
		dsn += ":" + e.Pass
	case (e.User == "" || e.User == "root") && e.RootPassword != "":
		dsn += ":" + e.RootPassword
	}

	address := e.Host
	if e.Port != "" {
		address += ":" + e.Port
	}

	protocol := e.Protocol
	if protocol == "" {
		protocol = "tcp"
	}

	if dsn != "" {
		dsn += "@"
	}

	return dsn + protocol + "(" + address + ")/" + e.Database
}
