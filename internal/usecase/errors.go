package usecase

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// isDuplicateKeyError checks if the error is a unique constraint violation
// whose constraint involves the given column. PostgreSQL reports code 23505
// with the constraint name; the sqlite driver used in tests reports the
// column in the message text.
func isDuplicateKeyError(err error, column string) bool {
	if err == nil {
		return false
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" && strings.Contains(strings.ToLower(pgErr.ConstraintName), strings.ToLower(column))
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) || strings.Contains(err.Error(), "UNIQUE constraint failed") {
		return strings.Contains(strings.ToLower(err.Error()), strings.ToLower(column))
	}
	return false
}

// isForeignKeyError checks if the error is a foreign key violation involving
// the given constraint or table name.
func isForeignKeyError(err error, name string) bool {
	if err == nil {
		return false
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23503" && strings.Contains(strings.ToLower(pgErr.ConstraintName), strings.ToLower(name))
	}
	return strings.Contains(err.Error(), "FOREIGN KEY constraint failed")
}
