package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionCommand(t *testing.T) {
	root := NewRootCmd()
	out := &bytes.Buffer{}
	root.SetOut(out)
	root.SetArgs([]string{"version"})

	require.NoError(t, root.Execute())
	assert.Contains(t, out.String(), "smc-schedule dev")
}

func TestMigrateListCommand(t *testing.T) {
	root := NewRootCmd()
	out := &bytes.Buffer{}
	root.SetOut(out)
	root.SetArgs([]string{"migrate", "--list"})

	require.NoError(t, root.Execute())
	assert.Contains(t, out.String(), "0001_availability.sql")
	assert.Contains(t, out.String(), "0002_appointments.sql")
}

func TestUnknownStorageDriver(t *testing.T) {
	root := NewRootCmd()
	root.SetArgs([]string{"slots", "--config", "testdata/bad_driver.toml"})
	assert.Error(t, root.Execute())
}
