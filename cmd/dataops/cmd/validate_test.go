package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateCommandStructure(t *testing.T) {
	assert.NotNil(t, validateCmd)
	assert.Equal(t, "validate", validateCmd.Use)
	assert.NotEmpty(t, validateCmd.Short)
	assert.NotEmpty(t, validateCmd.Long)
	assert.NotNil(t, validateCmd.RunE)
}

func TestValidateCommandFlags(t *testing.T) {
	flags := validateCmd.Flags()

	checkDBFlag := flags.Lookup("check-db")
	assert.NotNil(t, checkDBFlag)
	assert.Equal(t, "false", checkDBFlag.DefValue)
}

func TestValidateIsAddedToRoot(t *testing.T) {
	found := false
	for _, cmd := range rootCmd.Commands() {
		if cmd.Name() == "validate" {
			found = true
			break
		}
	}
	assert.True(t, found, "validate command should be added to root command")
}

func TestValidateCommandExample(t *testing.T) {
	// Verify the command has example usage documentation
	assert.Contains(t, validateCmd.Long, "Example:")
	assert.Contains(t, validateCmd.Long, "dataops validate")
}

func TestValidateCommandChecks(t *testing.T) {
	// Verify the command documents the validation checks
	doc := validateCmd.Long
	assert.Contains(t, doc, "Checks performed")
	assert.Contains(t, doc, "Configuration")
	assert.Contains(t, doc, "connectivity")
}
