// Package pgerrs classifies PostgreSQL driver errors by SQLSTATE code.
package pgerrs

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// SQLSTATE codes the repositories react to.
const (
	SerializationFailure = "40001"
	DeadlockDetected     = "40P01"
	UniqueViolation      = "23505"
	ForeignKeyViolation  = "23503"
	CheckViolation       = "23514"
)

// Code returns the SQLSTATE of err, or "" when err does not come from the server.
func Code(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// IsConflict reports whether the server aborted the statement because of a
// concurrent transaction.
func IsConflict(err error) bool {
	switch Code(err) {
	case SerializationFailure, DeadlockDetected:
		return true
	default:
		return false
	}
}

func IsUniqueViolation(err error) bool {
	return Code(err) == UniqueViolation
}

func IsForeignKeyViolation(err error) bool {
	return Code(err) == ForeignKeyViolation
}

func IsCheckViolation(err error) bool {
	return Code(err) == CheckViolation
}
