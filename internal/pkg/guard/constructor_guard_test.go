package guard_test

import (
	"errors"
	"testing"

	"procurement/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("constructed guard passes validation", func(t *testing.T) {
		g := guard.NewConstructorGuard()
		require.NoError(t, g.Validate(errors.New("should not be returned")))
	})

	t.Run("zero value guard returns provided error", func(t *testing.T) {
		var g guard.ConstructorGuard
		validationErr := errors.New("object must be created via NewObject")

		err := g.Validate(validationErr)
		assert.Equal(t, validationErr, err)
	})

	t.Run("zero value guard with nil error returns default", func(t *testing.T) {
		var g guard.ConstructorGuard

		err := g.Validate(nil)
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
	})
}
