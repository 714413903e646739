package account

import (
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/dmitrymomot/guardian/pkg/guard"
)

const emailPattern = `^[^@\s]+@[^@\s]+\.[^@\s]+$`

// ErrPasswordMismatch is returned by CheckPassword.
var ErrPasswordMismatch = errors.New("password does not match")

// Registration is a validated sign-up. Only the bcrypt hash of the password
// is kept.
type Registration struct {
	Username     string
	Email        string
	Age          int
	PasswordHash []byte
}

// NewRegistration validates every field, reporting all failures at once,
// and hashes the password with bcrypt.
func NewRegistration(username, email string, age int, password string) (*Registration, error) {
	username, usernameErr := guard.NullOrWhiteSpace("username", username)
	if usernameErr == nil {
		username, usernameErr = guard.InvalidLength("username", username, 3, 20)
	}

	// bcrypt reads at most 72 bytes
	password, passwordErr := guard.InvalidLength("password", password, 8, 72)
	if passwordErr == nil {
		passwordErr = guard.Condition("password", len(password) <= 72,
			guard.WithMessage("password must not exceed 72 bytes"))
	}

	if err := guard.Collect(
		usernameErr,
		guard.Err(guard.InvalidFormat("email", email, emailPattern)),
		guard.Err(guard.OutOfRange("age", age, 18, 120)),
		passwordErr,
	); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	return &Registration{
		Username:     username,
		Email:        email,
		Age:          age,
		PasswordHash: hash,
	}, nil
}

func (r *Registration) CheckPassword(password string) error {
	if err := bcrypt.CompareHashAndPassword(r.PasswordHash, []byte(password)); err != nil {
		return errors.Join(ErrPasswordMismatch, err)
	}
	return nil
}
