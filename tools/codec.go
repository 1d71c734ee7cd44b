package tools

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/spf13/cobra"
	"github.com/weburi/weburi/std/uri/charset"
	"github.com/weburi/weburi/std/uri/percent"
)

func lookupCharset(name string) (charset.Set, error) {
	set, ok := charset.ByName[name]
	if !ok {
		names := slices.Sorted(maps.Keys(charset.ByName))
		return set, fmt.Errorf("unknown charset %q, expected one of: %s", name, strings.Join(names, ", "))
	}
	return set, nil
}

func (t *Tool) runEncode(cmd *cobra.Command, args []string) error {
	name, _ := cmd.Flags().GetString("charset")
	set, err := lookupCharset(name)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), percent.Encode(args[0], set))
	return nil
}

func (t *Tool) runDecode(cmd *cobra.Command, args []string) error {
	name, _ := cmd.Flags().GetString("charset")
	policyName, _ := cmd.Flags().GetString("policy")

	if name == "" {
		fmt.Fprintln(cmd.OutOrStdout(), percent.DecodeLenient(args[0]))
		return nil
	}

	set, err := lookupCharset(name)
	if err != nil {
		return err
	}
	policy, ok := percent.ParsePolicy(policyName)
	if !ok {
		return fmt.Errorf("unknown policy %q, expected allowed or disallowed", policyName)
	}

	out, ok := percent.Decode(args[0], set, policy)
	if !ok {
		return fmt.Errorf("cannot decode %q with the %s charset", args[0], name)
	}
	fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}
