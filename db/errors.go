package db

import (
	"errors"
	"strings"

	"github.com/go-sql-driver/mysql"
)

// IsDupKeyErr reports whether err is a unique-index violation. Used to make
// follow creation idempotent under concurrent requests.
func IsDupKeyErr(err error) bool {
	var mysqlErr *mysql.MySQLError
	if !errors.As(err, &mysqlErr) {
		return false
	}
	return strings.Contains(mysqlErr.Error(), "Duplicate")
}
