package kernel_test

import (
	"testing"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEntityID(t *testing.T) {
	t.Run("creates_id_from_positive_value", func(t *testing.T) {
		// When
		id, err := kernel.NewEntityID(42)

		// Then
		require.NoError(t, err)
		assert.Equal(t, int64(42), id.Int64())
		assert.False(t, id.IsZero())
		require.NoError(t, id.Validate())
	})

	t.Run("rejects_zero_value", func(t *testing.T) {
		_, err := kernel.NewEntityID(0)
		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects_negative_value", func(t *testing.T) {
		_, err := kernel.NewEntityID(-7)
		require.Error(t, err)
	})
}

func TestParseEntityID(t *testing.T) {
	t.Run("parses_decimal_string", func(t *testing.T) {
		id, err := kernel.ParseEntityID("938")
		require.NoError(t, err)
		assert.Equal(t, int64(938), id.Int64())
		assert.Equal(t, "938", id.String())
	})

	t.Run("rejects_non_numeric_string", func(t *testing.T) {
		_, err := kernel.ParseEntityID("abc")
		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects_zero_string", func(t *testing.T) {
		_, err := kernel.ParseEntityID("0")
		require.Error(t, err)
	})
}

func TestEntityID_ZeroValue(t *testing.T) {
	t.Run("zero_id_means_not_yet_persisted", func(t *testing.T) {
		// Given
		var id kernel.EntityID

		// Then
		assert.True(t, id.IsZero())
		assert.Equal(t, "0", id.String())
		require.Error(t, id.Validate())
	})
}

func TestEntityID_IsEqual(t *testing.T) {
	a, err := kernel.NewEntityID(1)
	require.NoError(t, err)
	b, err := kernel.NewEntityID(1)
	require.NoError(t, err)
	c, err := kernel.NewEntityID(2)
	require.NoError(t, err)

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(c))
}
