package queries

import (
	"errors"
	"strings"

	"retail/internal/pkg/errs"
	"retail/internal/pkg/guard"
)

var ErrTrackOrderQueryIsNotConstructed = errors.New(
	"TrackOrderQuery must be created via NewTrackOrderQuery constructor",
)

// TrackOrderQuery is the storefront lookup. The key is whatever the shopper
// typed: an order number, an email address or a phone number.
type TrackOrderQuery struct {
	key   string
	guard guard.ConstructorGuard
}

func NewTrackOrderQuery(key string) (TrackOrderQuery, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return TrackOrderQuery{}, errs.NewValueIsRequiredError("key")
	}

	return TrackOrderQuery{key: key, guard: guard.NewConstructorGuard()}, nil
}

func (q TrackOrderQuery) Validate() error {
	return q.guard.Validate(ErrTrackOrderQueryIsNotConstructed)
}

func (q TrackOrderQuery) Key() string {
	return q.key
}
