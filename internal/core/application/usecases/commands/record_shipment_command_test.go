package commands_test

import (
	"testing"
	"time"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRecordShipmentCommand_ValidInput(t *testing.T) {
	orderID := kernel.NewUUID()
	lineItemID := kernel.NewUUID()
	qty := mustQty(t, "40")
	shipDate := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

	cmd, err := commands.NewRecordShipmentCommand(
		orderID, lineItemID, qty, &shipDate, "1Z999AA10123456784", "partial", "jdoe")
	require.NoError(t, err)
	assert.Equal(t, orderID, cmd.OrderID())
	assert.Equal(t, lineItemID, cmd.LineItemID())
	assert.True(t, qty.IsEqual(cmd.Quantity()))
	assert.Equal(t, &shipDate, cmd.ShipDate())
	assert.Equal(t, "1Z999AA10123456784", cmd.TrackingNumber())
	assert.Equal(t, "partial", cmd.Notes())
	assert.Equal(t, "jdoe", cmd.Actor())
	require.NoError(t, cmd.Validate())
}

func TestNewRecordShipmentCommand_OptionalFieldsEmpty(t *testing.T) {
	cmd, err := commands.NewRecordShipmentCommand(
		kernel.NewUUID(), kernel.NewUUID(), mustQty(t, "1"), nil, "", "", "jdoe")
	require.NoError(t, err)
	assert.Nil(t, cmd.ShipDate())
	assert.Empty(t, cmd.TrackingNumber())
	assert.Empty(t, cmd.Notes())
}

func TestNewRecordShipmentCommand_InvalidOrderID(t *testing.T) {
	_, err := commands.NewRecordShipmentCommand(
		kernel.UUID{}, kernel.NewUUID(), mustQty(t, "1"), nil, "", "", "jdoe")
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewRecordShipmentCommand_ZeroQuantity(t *testing.T) {
	_, err := commands.NewRecordShipmentCommand(
		kernel.NewUUID(), kernel.NewUUID(), kernel.ZeroQuantity(), nil, "", "", "jdoe")
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestNewRecordShipmentCommand_EmptyActor(t *testing.T) {
	_, err := commands.NewRecordShipmentCommand(
		kernel.NewUUID(), kernel.NewUUID(), mustQty(t, "1"), nil, "", "", "")
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestRecordShipmentCommand_Validate_NotConstructed(t *testing.T) {
	var cmd commands.RecordShipmentCommand
	err := cmd.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrRecordShipmentCommandIsNotConstructed)
}
