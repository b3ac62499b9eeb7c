package commands_test

import (
	"testing"

	"freight/internal/core/application/usecases/commands"
	"freight/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEditTruckCommand_ValidInput(t *testing.T) {
	// Arrange
	truckID := mustEntityID(t, 7)

	// Act
	cmd, err := commands.NewEditTruckCommand(
		truckID,
		"auth0|abc123",
		commands.PatchOf("reefer"),
		commands.Patch[int]{},
		commands.PatchOf(4),
		true,
	)

	// Assert
	require.NoError(t, err)
	assert.True(t, cmd.TruckID().IsEqual(truckID))
	assert.Equal(t, "auth0|abc123", cmd.RequesterAuthID())
	assert.True(t, cmd.TruckType().IsSet())
	assert.Equal(t, "reefer", cmd.TruckType().Value())
	assert.False(t, cmd.Length().IsSet())
	assert.True(t, cmd.Axles().IsSet())
	assert.Equal(t, 4, cmd.Axles().Value())
	assert.True(t, cmd.ClearPackages())
}

func TestNewEditTruckCommand_UnassignedTruckID(t *testing.T) {
	// Act
	_, err := commands.NewEditTruckCommand(
		kernel.EntityID{},
		"auth0|abc123",
		commands.Patch[string]{},
		commands.Patch[int]{},
		commands.Patch[int]{},
		false,
	)

	// Assert
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrEntityIDIsNotAssigned)
}

func TestNewEditTruckCommand_SuppliedZeroValuesAreRejected(t *testing.T) {
	// A supplied empty/zero field is invalid; an omitted one is not.
	testCases := []struct {
		name      string
		truckType commands.Patch[string]
		length    commands.Patch[int]
		axles     commands.Patch[int]
		wantErr   error
	}{
		{
			name:      "supplied_empty_truck_type",
			truckType: commands.PatchOf(""),
			wantErr:   commands.ErrTruckTypeIsRequired,
		},
		{
			name:    "supplied_zero_length",
			length:  commands.PatchOf(0),
			wantErr: commands.ErrLengthIsInvalid,
		},
		{
			name:    "supplied_negative_axles",
			axles:   commands.PatchOf(-1),
			wantErr: commands.ErrAxlesIsInvalid,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// Act
			_, err := commands.NewEditTruckCommand(
				mustEntityID(t, 7), "auth0|abc123", tc.truckType, tc.length, tc.axles, false,
			)

			// Assert
			require.Error(t, err)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestNewEditTruckCommand_AllFieldsOmittedIsValid(t *testing.T) {
	// An edit that changes nothing is still a valid command; the handler
	// simply persists the truck unchanged.
	cmd, err := commands.NewEditTruckCommand(
		mustEntityID(t, 7),
		"auth0|abc123",
		commands.Patch[string]{},
		commands.Patch[int]{},
		commands.Patch[int]{},
		false,
	)

	require.NoError(t, err)
	assert.False(t, cmd.TruckType().IsSet())
	assert.False(t, cmd.Length().IsSet())
	assert.False(t, cmd.Axles().IsSet())
	assert.False(t, cmd.ClearPackages())
}

func TestEditTruckCommand_Validate_ZeroValue(t *testing.T) {
	var cmd commands.EditTruckCommand

	err := cmd.Validate()

	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrEditTruckCommandIsNotConstructed)
}
