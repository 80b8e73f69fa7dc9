package order

import (
	"fmt"
	"strings"

	"retail/internal/pkg/errs"
)

// Channel identifies the intake flow an order came from. It is fixed at creation.
type Channel int

const (
	// UnknownChannel catches uninitialized Channel values.
	UnknownChannel Channel = iota

	// Web orders are placed on the storefront and paid online.
	Web

	// InPerson orders are rung up at the point of sale.
	InPerson
)

func getChannelStrings() map[Channel]string {
	return map[Channel]string{
		Web:      "WEB",
		InPerson: "IN_PERSON",
	}
}

// Channels returns all valid channels.
func Channels() []Channel {
	return []Channel{Web, InPerson}
}

// ParseChannel converts a case-insensitive channel name into a Channel.
func ParseChannel(s string) (Channel, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	for c, str := range getChannelStrings() {
		if str == name {
			return c, nil
		}
	}
	return UnknownChannel, errs.NewValueIsInvalidErrorWithCause(
		"channel is invalid",
		fmt.Errorf("%q is not a valid channel", s),
	)
}

// Validate checks that c is WEB or IN_PERSON.
func (c Channel) Validate() error {
	if _, ok := getChannelStrings()[c]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("channel is invalid", fmt.Errorf("%d is not a valid channel", c))
	}
	return nil
}

func (c Channel) String() string {
	if str, ok := getChannelStrings()[c]; ok {
		return str
	}
	return "UNKNOWN"
}

// MarshalText implements encoding.TextMarshaler.
func (c Channel) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Channel) UnmarshalText(text []byte) error {
	parsed, err := ParseChannel(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// ValidatePaymentRef enforces the channel/payment pairing: web orders must carry
// an external payment reference, in-person orders must not.
func (c Channel) ValidatePaymentRef(paymentRef string) error {
	switch c {
	case Web:
		if strings.TrimSpace(paymentRef) == "" {
			return errs.NewValueIsRequiredErrorWithCause(
				"external_payment_ref",
				fmt.Errorf("%s orders must reference a payment", c),
			)
		}
	case InPerson:
		if paymentRef != "" {
			return errs.NewValueIsInvalidErrorWithCause(
				"external_payment_ref",
				fmt.Errorf("%s orders must not reference a payment", c),
			)
		}
	default:
		return c.Validate()
	}
	return nil
}
