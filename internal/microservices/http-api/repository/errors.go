package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

var (
	ErrRoomNotFound        = errors.New("room not found")
	ErrDuplicateSecretCode = errors.New("secret code already exists")
)

// PostgreSQL SQLSTATE codes
const (
	pgUniqueViolation = "23505"
	pgUndefinedColumn = "42703"
)

// IsUniqueViolation reports whether err is a unique constraint violation,
// either translated by gorm or raw from pgx.
func IsUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	return pgCode(err) == pgUniqueViolation
}

// IsUndefinedColumn reports whether err is PostgreSQL's "column does not exist".
func IsUndefinedColumn(err error) bool {
	return pgCode(err) == pgUndefinedColumn
}

func pgCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}
