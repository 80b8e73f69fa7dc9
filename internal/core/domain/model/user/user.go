// Package user models the employees allowed to use the admin API.
package user

import (
	"errors"
	"strings"

	"retail/internal/pkg/errs"

	"golang.org/x/crypto/bcrypt"
)

// MinPasswordLength is the shortest password NewUser accepts.
const MinPasswordLength = 8

var ErrUserIsNotConstructed = errors.New("User must be created via NewUser or RestoreUser")

// User is an employee account. Only the bcrypt hash of the password is kept.
type User struct {
	username     string
	passwordHash []byte

	isConstructed bool
}

// NewUser hashes password with bcrypt at the default cost.
func NewUser(username, password string) (*User, error) {
	username = strings.TrimSpace(username)

	var errList []error
	if username == "" {
		errList = append(errList, errs.NewValueIsRequiredError("username"))
	}
	if len(password) < MinPasswordLength {
		errList = append(errList, errs.NewValueIsOutOfRangeError("password length", len(password), MinPasswordLength, 72))
	}
	if err := errors.Join(errList...); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("password", err)
	}

	return &User{username: username, passwordHash: hash, isConstructed: true}, nil
}

// RestoreUser rebuilds a persisted user from its stored hash.
func RestoreUser(username string, passwordHash []byte) (*User, error) {
	if strings.TrimSpace(username) == "" {
		return nil, errs.NewValueIsRequiredError("username")
	}
	if _, err := bcrypt.Cost(passwordHash); err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("password_hash", err)
	}
	return &User{username: username, passwordHash: passwordHash, isConstructed: true}, nil
}

func (u *User) Validate() error {
	if u == nil || !u.isConstructed {
		return ErrUserIsNotConstructed
	}
	return nil
}

func (u *User) Username() string {
	return u.username
}

func (u *User) PasswordHash() []byte {
	return u.passwordHash
}

// Authenticate reports whether password matches the stored hash.
func (u *User) Authenticate(password string) bool {
	return bcrypt.CompareHashAndPassword(u.passwordHash, []byte(password)) == nil
}
