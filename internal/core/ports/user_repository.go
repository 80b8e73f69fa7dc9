package ports

import (
	"context"

	"retail/internal/core/domain/model/user"
)

// UserRepository stores back-office accounts used for request authentication.
type UserRepository interface {
	// Get returns errs.ErrObjectNotFound for unknown usernames.
	Get(ctx context.Context, username string) (*user.User, error)

	// Save inserts the user or replaces the password hash of an existing one.
	Save(ctx context.Context, u *user.User) error
}
