package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMigrateCmd_Args(t *testing.T) {
	t.Parallel()
	cmd := migrateCmd()
	require.NoError(t, cmd.Args(cmd, []string{"up"}))
	require.NoError(t, cmd.Args(cmd, []string{"status"}))
	require.Error(t, cmd.Args(cmd, []string{"sideways"}))
	require.Error(t, cmd.Args(cmd, nil))
}

func TestRootCmd_Commands(t *testing.T) {
	t.Parallel()
	names := make([]string, 0)
	for _, c := range rootCmd().Commands() {
		names = append(names, c.Name())
	}
	require.ElementsMatch(t, []string{"serve", "migrate"}, names)
}
