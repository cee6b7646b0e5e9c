package commands_test

import (
	"testing"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStartProductionCommand_ValidInput(t *testing.T) {
	orderID := kernel.NewUUID()
	lineItemID := kernel.NewUUID()
	cmd, err := commands.NewStartProductionCommand(orderID, lineItemID, "jdoe")
	require.NoError(t, err)
	assert.Equal(t, orderID, cmd.OrderID())
	assert.Equal(t, lineItemID, cmd.LineItemID())
	assert.Equal(t, "jdoe", cmd.Actor())
	require.NoError(t, cmd.Validate())
}

func TestNewStartProductionCommand_InvalidLineItemID(t *testing.T) {
	_, err := commands.NewStartProductionCommand(kernel.NewUUID(), kernel.UUID{}, "jdoe")
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewStartProductionCommand_EmptyActor(t *testing.T) {
	_, err := commands.NewStartProductionCommand(kernel.NewUUID(), kernel.NewUUID(), "")
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestStartProductionCommand_Validate_NotConstructed(t *testing.T) {
	var cmd commands.StartProductionCommand
	err := cmd.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrStartProductionCommandIsNotConstructed)
}
