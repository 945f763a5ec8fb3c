package repositories

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrUniqueViolation is returned when an insert hits a unique
// constraint. Uniqueness is enforced by the database itself so
// concurrent identical requests cannot race a check-then-write.
var ErrUniqueViolation = errors.New("unique constraint violation")

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgerrcode.UniqueViolation
	}
	return false
}
