package commands_test

import (
	"testing"

	"github.com/ruizj3/fake-grocery-delivery-service/internal/core/application/usecases/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGenerateOrdersCommand_ValidInput(t *testing.T) {
	cmd, err := commands.NewGenerateOrdersCommand(10)
	require.NoError(t, err)
	assert.Equal(t, 10, cmd.Count())
}

func TestNewGenerateOrdersCommand_InvalidCount(t *testing.T) {
	_, err := commands.NewGenerateOrdersCommand(0)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrCountIsInvalid)
}

func TestGenerateOrdersCommand_NotConstructed(t *testing.T) {
	cmd := commands.GenerateOrdersCommand{}
	err := cmd.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrGenerateOrdersCommandIsNotConstructed)
}
