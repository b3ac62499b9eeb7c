package manager_test

import (
	"testing"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/manager"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustEntityID(t *testing.T, value int64) kernel.EntityID {
	t.Helper()
	id, err := kernel.NewEntityID(value)
	require.NoError(t, err)
	return id
}

func TestNewManager(t *testing.T) {
	t.Run("creates_unsaved_manager_with_empty_truck_set", func(t *testing.T) {
		// When
		m, err := manager.NewManager("auth0|abc123")

		// Then
		require.NoError(t, err)
		require.NoError(t, m.Validate())
		assert.True(t, m.ID().IsZero())
		assert.Equal(t, "auth0|abc123", m.AuthID())
		assert.False(t, m.HasAssignedTrucks())
	})

	t.Run("rejects_missing_auth_id", func(t *testing.T) {
		_, err := manager.NewManager("")
		require.Error(t, err)
		require.ErrorIs(t, err, manager.ErrAuthIDIsRequired)
	})
}

func TestRestoreManager(t *testing.T) {
	t.Run("reconstructs_persisted_manager_with_truck_set", func(t *testing.T) {
		// Given
		truckIDs := kernel.NewIDSet(mustEntityID(t, 7), mustEntityID(t, 8))

		// When
		m, err := manager.RestoreManager(mustEntityID(t, 1), "auth0|abc123", truckIDs)

		// Then
		require.NoError(t, err)
		assert.Equal(t, int64(1), m.ID().Int64())
		assert.True(t, m.TruckIDs().IsEqual(truckIDs))
		assert.True(t, m.HasAssignedTrucks())
	})

	t.Run("rejects_zero_identity", func(t *testing.T) {
		var zero kernel.EntityID
		_, err := manager.RestoreManager(zero, "auth0|abc123", kernel.NewIDSet())
		require.Error(t, err)
	})
}

func TestManager_SetID(t *testing.T) {
	m, err := manager.NewManager("auth0|abc123")
	require.NoError(t, err)

	require.NoError(t, m.SetID(mustEntityID(t, 5)))
	assert.Equal(t, int64(5), m.ID().Int64())

	require.ErrorIs(t, m.SetID(mustEntityID(t, 6)), manager.ErrIdentityAlreadyAssigned)
}

func TestManager_AssignTruck(t *testing.T) {
	t.Run("assigning_twice_yields_single_membership", func(t *testing.T) {
		// Given
		m, err := manager.NewManager("auth0|abc123")
		require.NoError(t, err)
		truckID := mustEntityID(t, 7)

		// When
		require.NoError(t, m.AssignTruck(truckID))
		require.NoError(t, m.AssignTruck(truckID))

		// Then
		assert.Equal(t, 1, m.TruckIDs().Len())
		assert.True(t, m.TruckIDs().Contains(truckID))
	})

	t.Run("rejects_zero_truck_id", func(t *testing.T) {
		m, err := manager.NewManager("auth0|abc123")
		require.NoError(t, err)

		var zero kernel.EntityID
		require.Error(t, m.AssignTruck(zero))
	})
}

func TestManager_UnassignTruck(t *testing.T) {
	t.Run("removes_present_truck", func(t *testing.T) {
		m, err := manager.NewManager("auth0|abc123")
		require.NoError(t, err)
		truckID := mustEntityID(t, 7)
		require.NoError(t, m.AssignTruck(truckID))

		require.NoError(t, m.UnassignTruck(truckID))

		assert.False(t, m.HasAssignedTrucks())
	})

	t.Run("unassigning_absent_truck_is_no_op", func(t *testing.T) {
		m, err := manager.NewManager("auth0|abc123")
		require.NoError(t, err)
		require.NoError(t, m.AssignTruck(mustEntityID(t, 7)))

		require.NoError(t, m.UnassignTruck(mustEntityID(t, 8)))

		assert.Equal(t, 1, m.TruckIDs().Len())
	})
}

func TestManager_Validate(t *testing.T) {
	var m manager.Manager
	require.ErrorIs(t, m.Validate(), manager.ErrManagerIsNotConstructed)
}
