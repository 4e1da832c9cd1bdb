package services

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// Error variables
var (
	ErrUserAlreadyExists  = errors.New("user with that username or email already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid username/email or password")
	ErrBlogPostNotFound   = errors.New("blog post not found")
	ErrCommentNotFound    = errors.New("comment not found")
)

// Postgres SQLSTATE codes surfaced through pgconn.
const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
)

// isUniqueViolation reports whether err is a Postgres unique constraint
// violation. Existence pre-checks are racy under concurrent requests, so the
// schema constraint is treated as the authoritative conflict signal.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == codeUniqueViolation
}

// foreignKeyConstraint returns the violated constraint name when err is a
// Postgres foreign key violation, "" otherwise.
func foreignKeyConstraint(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == codeForeignKeyViolation {
		return pgErr.ConstraintName
	}
	return ""
}
