package tools

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/weburi/weburi/std/uri"
)

func (t *Tool) runResolve(cmd *cobra.Command, args []string) error {
	out, err := uri.ResolveString(args[0], args[1], t.opts)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}

func (t *Tool) runNormalize(cmd *cobra.Command, args []string) error {
	for _, arg := range args {
		s, err := uri.ParseStructured(arg, t.opts)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), s.Normalize().String())
	}
	return nil
}
