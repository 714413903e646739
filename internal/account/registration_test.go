package account_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/guardian/internal/account"
	"github.com/dmitrymomot/guardian/pkg/guard"
)

func TestNewRegistration(t *testing.T) {
	t.Parallel()

	t.Run("valid registration hashes the password", func(t *testing.T) {
		t.Parallel()
		r, err := account.NewRegistration("JohnDoe", "john.doe@example.com", 25, "SecurePass123!")
		require.NoError(t, err)
		assert.Equal(t, "JohnDoe", r.Username)
		assert.NotEqual(t, []byte("SecurePass123!"), r.PasswordHash)
		assert.NoError(t, r.CheckPassword("SecurePass123!"))
		assert.ErrorIs(t, r.CheckPassword("wrong-password"), account.ErrPasswordMismatch)
	})

	tests := []struct {
		name     string
		username string
		email    string
		age      int
		password string
		param    string
	}{
		{"empty username", "", "test@example.com", 25, "Pass1234!", "username"},
		{"username too short", "Jo", "test@example.com", 25, "Pass1234!", "username"},
		{"username too long", strings.Repeat("u", 21), "test@example.com", 25, "Pass1234!", "username"},
		{"invalid email", "ValidUser", "invalid", 25, "Pass1234!", "email"},
		{"too young", "ValidUser", "test@example.com", 17, "Pass1234!", "age"},
		{"too old", "ValidUser", "test@example.com", 121, "Pass1234!", "age"},
		{"password too short", "ValidUser", "test@example.com", 25, "short", "password"},
		{"password over 72 bytes", "ValidUser", "test@example.com", 25, strings.Repeat("é", 40), "password"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			r, err := account.NewRegistration(tt.username, tt.email, tt.age, tt.password)
			require.Error(t, err)
			assert.Nil(t, r)
			assert.Equal(t, []string{tt.param}, guard.Extract(err).Params())
		})
	}

	t.Run("age bounds are inclusive", func(t *testing.T) {
		t.Parallel()
		for _, age := range []int{18, 120} {
			_, err := account.NewRegistration("ValidUser", "test@example.com", age, "Pass1234!")
			assert.NoError(t, err)
		}
	})
}
