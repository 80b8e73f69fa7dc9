package commands

import (
	"errors"
	"strings"

	"retail/internal/pkg/errs"
	"retail/internal/pkg/guard"
)

var ErrEnsureUserCommandIsNotConstructed = errors.New(
	"EnsureUserCommand must be created via NewEnsureUserCommand constructor",
)

// EnsureUserCommand makes sure a back-office account exists with the given password.
// It is run at startup for the configured administrator.
type EnsureUserCommand struct {
	username string
	password string

	guard guard.ConstructorGuard
}

func NewEnsureUserCommand(username, password string) (EnsureUserCommand, error) {
	username = strings.TrimSpace(username)

	var errList []error
	if username == "" {
		errList = append(errList, errs.NewValueIsRequiredError("username"))
	}
	if password == "" {
		errList = append(errList, errs.NewValueIsRequiredError("password"))
	}
	if err := errors.Join(errList...); err != nil {
		return EnsureUserCommand{}, err
	}

	return EnsureUserCommand{
		username: username,
		password: password,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c EnsureUserCommand) Validate() error {
	return c.guard.Validate(ErrEnsureUserCommandIsNotConstructed)
}

func (c EnsureUserCommand) Username() string {
	return c.username
}

func (c EnsureUserCommand) Password() string {
	return c.password
}
