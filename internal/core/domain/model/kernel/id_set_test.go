package kernel_test

import (
	"testing"

	"freight/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustEntityID(t *testing.T, value int64) kernel.EntityID {
	t.Helper()
	id, err := kernel.NewEntityID(value)
	require.NoError(t, err)
	return id
}

func TestIDSet_Add(t *testing.T) {
	t.Run("adds_new_member", func(t *testing.T) {
		// Given
		s := kernel.NewIDSet()
		id := mustEntityID(t, 1)

		// When
		s.Add(id)

		// Then
		assert.True(t, s.Contains(id))
		assert.Equal(t, 1, s.Len())
	})

	t.Run("adding_present_id_is_idempotent", func(t *testing.T) {
		// Given
		s := kernel.NewIDSet()
		id := mustEntityID(t, 1)

		// When
		s.Add(id)
		s.Add(id)

		// Then
		assert.Equal(t, 1, s.Len())
		assert.True(t, s.Contains(id))
	})
}

func TestIDSet_Remove(t *testing.T) {
	t.Run("removes_present_member", func(t *testing.T) {
		// Given
		id := mustEntityID(t, 1)
		s := kernel.NewIDSet(id)

		// When
		s.Remove(id)

		// Then
		assert.False(t, s.Contains(id))
		assert.True(t, s.IsEmpty())
	})

	t.Run("removing_absent_id_is_silent_no_op", func(t *testing.T) {
		// Given
		s := kernel.NewIDSet(mustEntityID(t, 1))

		// When
		s.Remove(mustEntityID(t, 2))

		// Then
		assert.Equal(t, 1, s.Len())
		assert.True(t, s.Contains(mustEntityID(t, 1)))
	})
}

func TestIDSet_Values(t *testing.T) {
	t.Run("returns_members_sorted_by_identity", func(t *testing.T) {
		// Given
		s := kernel.NewIDSet(
			mustEntityID(t, 30),
			mustEntityID(t, 10),
			mustEntityID(t, 20),
		)

		// When
		values := s.Values()

		// Then
		require.Len(t, values, 3)
		assert.Equal(t, int64(10), values[0].Int64())
		assert.Equal(t, int64(20), values[1].Int64())
		assert.Equal(t, int64(30), values[2].Int64())
	})

	t.Run("duplicates_collapse_at_construction", func(t *testing.T) {
		s := kernel.NewIDSet(mustEntityID(t, 5), mustEntityID(t, 5))
		assert.Equal(t, 1, s.Len())
	})
}

func TestIDSet_Clear(t *testing.T) {
	// Given
	s := kernel.NewIDSet(mustEntityID(t, 1), mustEntityID(t, 2), mustEntityID(t, 3))

	// When
	s.Clear()

	// Then
	assert.True(t, s.IsEmpty())
	assert.Empty(t, s.Values())
}

func TestIDSet_IsEqual(t *testing.T) {
	t.Run("order_independent_equality", func(t *testing.T) {
		a := kernel.NewIDSet(mustEntityID(t, 1), mustEntityID(t, 2))
		b := kernel.NewIDSet(mustEntityID(t, 2), mustEntityID(t, 1))

		assert.True(t, a.IsEqual(b))
	})

	t.Run("different_members_are_not_equal", func(t *testing.T) {
		a := kernel.NewIDSet(mustEntityID(t, 1))
		b := kernel.NewIDSet(mustEntityID(t, 2))

		assert.False(t, a.IsEqual(b))
	})

	t.Run("different_sizes_are_not_equal", func(t *testing.T) {
		a := kernel.NewIDSet(mustEntityID(t, 1))
		b := kernel.NewIDSet(mustEntityID(t, 1), mustEntityID(t, 2))

		assert.False(t, a.IsEqual(b))
	})
}
