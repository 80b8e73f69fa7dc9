package commands

import (
	"errors"
	"fmt"
	"time"

	"retail/internal/pkg/errs"
	"retail/internal/pkg/guard"
)

var ErrExpirePendingOrdersCommandIsNotConstructed = errors.New(
	"ExpirePendingOrdersCommand must be created via NewExpirePendingOrdersCommand constructor",
)

// ExpirePendingOrdersCommand cancels WEB orders that stayed PENDING longer than ttl,
// i.e. whose payment was never confirmed.
type ExpirePendingOrdersCommand struct {
	ttl time.Duration

	guard guard.ConstructorGuard
}

func NewExpirePendingOrdersCommand(ttl time.Duration) (ExpirePendingOrdersCommand, error) {
	if ttl <= 0 {
		return ExpirePendingOrdersCommand{}, errs.NewValueIsInvalidErrorWithCause(
			"ttl", fmt.Errorf("%s is not positive", ttl))
	}

	return ExpirePendingOrdersCommand{
		ttl:   ttl,
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (c ExpirePendingOrdersCommand) Validate() error {
	return c.guard.Validate(ErrExpirePendingOrdersCommandIsNotConstructed)
}

func (c ExpirePendingOrdersCommand) TTL() time.Duration {
	return c.ttl
}
