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

func TestNewCreateOrderCommand_ValidInput(t *testing.T) {
	customerID := kernel.NewUUID()
	due := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	items := testLineItemInputs(t)
	cmd, err := commands.NewCreateOrderCommand(customerID, "PO-1001", &due, nil, "rush", items, "jdoe")
	require.NoError(t, err)
	assert.Equal(t, customerID, cmd.CustomerID())
	assert.Equal(t, "PO-1001", cmd.PONumber())
	assert.Equal(t, &due, cmd.DueDate())
	assert.Nil(t, cmd.QuotedShipDate())
	assert.Equal(t, "rush", cmd.Notes())
	assert.Equal(t, items, cmd.LineItems())
	assert.Equal(t, "jdoe", cmd.Actor())
	require.NoError(t, cmd.Validate())
}

func TestNewCreateOrderCommand_InvalidCustomerID(t *testing.T) {
	invalidID := kernel.UUID{} // zero value, should trigger validation error
	_, err := commands.NewCreateOrderCommand(invalidID, "PO-1001", nil, nil, "", testLineItemInputs(t), "jdoe")
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewCreateOrderCommand_EmptyPONumber(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(kernel.NewUUID(), "", nil, nil, "", testLineItemInputs(t), "jdoe")
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewCreateOrderCommand_NoLineItems(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(kernel.NewUUID(), "PO-1001", nil, nil, "", nil, "jdoe")
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewCreateOrderCommand_EmptyActor(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(kernel.NewUUID(), "PO-1001", nil, nil, "", testLineItemInputs(t), "")
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestCreateOrderCommand_Validate_NotConstructed(t *testing.T) {
	var cmd commands.CreateOrderCommand
	err := cmd.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrCreateOrderCommandIsNotConstructed)
}
