package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeploy(t *testing.T) {
	cmd := Deploy()

	require.NotNil(t, cmd)
	assert.Equal(t, "deploy", cmd.Use)
	assert.NotNil(t, cmd.RunE, "Deploy command should have RunE function")
}

func TestDeploy_ConfigFlag(t *testing.T) {
	cmd := Deploy()

	flag := cmd.Flags().Lookup("config")
	require.NotNil(t, flag, "config flag should exist")
	assert.Equal(t, "c", flag.Shorthand)
	assert.Equal(t, "rafi.yaml", flag.DefValue)
}
