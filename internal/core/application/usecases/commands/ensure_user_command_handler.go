package commands

import (
	"context"
	"errors"

	"retail/internal/core/domain/model/user"
	"retail/internal/core/ports"
	"retail/internal/pkg/errs"
)

// EnsureUserCommandHandler creates the user, or resets its password when the
// stored hash no longer matches.
type EnsureUserCommandHandler struct {
	users ports.UserRepository
}

func NewEnsureUserCommandHandler(users ports.UserRepository) EnsureUserCommandHandler {
	return EnsureUserCommandHandler{users: users}
}

func (h EnsureUserCommandHandler) Handle(ctx context.Context, cmd EnsureUserCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	existing, err := h.users.Get(ctx, cmd.Username())
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
	case err != nil:
		return err
	case existing.Authenticate(cmd.Password()):
		return nil
	}

	u, err := user.NewUser(cmd.Username(), cmd.Password())
	if err != nil {
		return err
	}

	return h.users.Save(ctx, u)
}
