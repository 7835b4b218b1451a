package repositories

import (
	"errors"

	"github.com/lib/pq"
)

const (
	pqForeignKeyViolation = "23503"
	pqCheckViolation      = "23514"
)

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...interface{}) error
}

// pqError unwraps a postgres driver error, if any.
func pqError(err error) (*pq.Error, bool) {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr, true
	}
	return nil, false
}
