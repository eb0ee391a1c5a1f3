package core

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateQuery(t *testing.T) {
	t.Run("valid query", func(t *testing.T) {
		assert.NoError(t, ValidateQuery("spy thriller in Paris"))
	})

	t.Run("single character", func(t *testing.T) {
		assert.NoError(t, ValidateQuery("a"))
	})

	t.Run("empty string", func(t *testing.T) {
		err := ValidateQuery("")
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalidInput))
		assert.True(t, errors.Is(err, ErrEmptyQuery))
	})

	t.Run("whitespace only", func(t *testing.T) {
		err := ValidateQuery("   \t\n")
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrEmptyQuery))
	})
}

func TestValidateTopN(t *testing.T) {
	t.Run("positive values", func(t *testing.T) {
		assert.NoError(t, ValidateTopN(1))
		assert.NoError(t, ValidateTopN(5))
		assert.NoError(t, ValidateTopN(1000))
	})

	t.Run("zero", func(t *testing.T) {
		err := ValidateTopN(0)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalidInput))
		assert.True(t, errors.Is(err, ErrInvalidTopN))
	})

	t.Run("negative", func(t *testing.T) {
		err := ValidateTopN(-1)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalidTopN))
	})
}
