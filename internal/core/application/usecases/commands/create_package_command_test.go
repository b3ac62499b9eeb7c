package commands_test

import (
	"testing"
	"time"

	"freight/internal/core/application/usecases/commands"
	"freight/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreatePackageCommand_ValidInput(t *testing.T) {
	// Arrange
	weight := mustWeight(t, "12.50")
	date := shipDate(2026, time.March, 14)

	// Act
	cmd, err := commands.NewCreatePackageCommand("fragile", weight, date)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "fragile", cmd.ShippingType())
	assert.True(t, cmd.Weight().IsEqual(weight))
	assert.True(t, cmd.ShippingDate().IsEqual(date))
	assert.NoError(t, cmd.Validate())
}

func TestNewCreatePackageCommand_EmptyShippingType(t *testing.T) {
	// Act
	_, err := commands.NewCreatePackageCommand("", mustWeight(t, "12.50"), shipDate(2026, time.March, 14))

	// Assert
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrShippingTypeIsRequired)
}

func TestNewCreatePackageCommand_ZeroValueObjectsAreRejected(t *testing.T) {
	t.Run("zero_weight", func(t *testing.T) {
		_, err := commands.NewCreatePackageCommand("fragile", kernel.Weight{}, shipDate(2026, time.March, 14))

		require.Error(t, err)
		assert.ErrorIs(t, err, kernel.ErrWeightIsNotConstructed)
	})

	t.Run("zero_ship_date", func(t *testing.T) {
		_, err := commands.NewCreatePackageCommand("fragile", mustWeight(t, "12.50"), kernel.ShipDate{})

		require.Error(t, err)
		assert.ErrorIs(t, err, kernel.ErrShipDateIsNotConstructed)
	})
}

func TestCreatePackageCommand_Validate_ZeroValue(t *testing.T) {
	var cmd commands.CreatePackageCommand

	err := cmd.Validate()

	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrCreatePackageCommandIsNotConstructed)
}
