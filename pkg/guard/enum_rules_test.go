package guard_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/guardian/pkg/guard"
)

type testEnum int

const (
	value1 testEnum = 1
	value2 testEnum = 2
	value3 testEnum = 3
)

func (testEnum) Members() []testEnum {
	return []testEnum{value1, value2, value3}
}

type color string

func (color) Members() []color {
	return []color{"red", "green"}
}

func TestNotInEnum(t *testing.T) {
	t.Parallel()

	for _, v := range []testEnum{value1, value2, value3} {
		got, err := guard.NotInEnum("value", v)
		require.NoError(t, err)
		assert.Equal(t, v, got)
	}

	for _, v := range []testEnum{0, 4, 999} {
		_, err := guard.NotInEnum("value", v)
		require.Error(t, err)
		assert.True(t, guard.IsArgument(err))
		assert.False(t, guard.IsRange(err))

		gerr, _ := guard.As(err)
		assert.Equal(t, "value", gerr.Param)
		assert.Equal(t, v, gerr.Value)
	}

	t.Run("message names value and type", func(t *testing.T) {
		_, err := guard.NotInEnum("status", testEnum(4))
		assert.EqualError(t, err, "status: value 4 is not defined in enum testEnum")
	})

	t.Run("custom message", func(t *testing.T) {
		_, err := guard.NotInEnum("status", testEnum(999), guard.WithMessage("Invalid enum value provided"))
		assert.ErrorContains(t, err, "Invalid enum value provided")
	})

	t.Run("string backed enum", func(t *testing.T) {
		_, err := guard.NotInEnum("color", color("red"))
		assert.NoError(t, err)
		_, err = guard.NotInEnum("color", color("blue"))
		assert.Error(t, err)
	})
}
