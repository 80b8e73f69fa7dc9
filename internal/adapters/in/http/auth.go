package http

import (
	"context"
	"errors"

	"retail/internal/core/domain/model/user"
	"retail/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

const actorKey = "actor"

type userFinder interface {
	Get(ctx context.Context, username string) (*user.User, error)
}

// BasicAuth authenticates back-office users against the users table. The
// username becomes the actor recorded on status changes.
func BasicAuth(users userFinder) echo.MiddlewareFunc {
	return middleware.BasicAuthWithConfig(middleware.BasicAuthConfig{
		Realm: "retail",
		Validator: func(username, password string, c echo.Context) (bool, error) {
			u, err := users.Get(c.Request().Context(), username)
			if errors.Is(err, errs.ErrObjectNotFound) {
				return false, nil
			}
			if err != nil {
				return false, err
			}

			if !u.Authenticate(password) {
				return false, nil
			}

			c.Set(actorKey, u.Username())
			return true, nil
		},
	})
}

func actorFrom(c echo.Context) string {
	actor, _ := c.Get(actorKey).(string)
	return actor
}
