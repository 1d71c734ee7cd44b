package cmd_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/weburi/weburi/cmd"
)

func TestCommandTree(t *testing.T) {
	names := []string{}
	for _, sub := range cmd.CmdWeburi.Commands() {
		names = append(names, sub.Name())
	}
	require.Subset(t, names, []string{"parse", "resolve", "normalize", "encode", "decode", "lint", "report"})

	for _, flag := range []string{"config", "loose", "log-level"} {
		require.NotNil(t, cmd.CmdWeburi.PersistentFlags().Lookup(flag), flag)
	}
}
