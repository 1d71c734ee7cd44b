package tools

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/weburi/weburi/std/uri"
	"github.com/weburi/weburi/std/uri/status"
	"github.com/weburi/weburi/std/uri/storage"
)

// reportPrefix returns the store key prefix of a URI. A URI with only a
// scheme selects the whole scheme. Without a query or a fragment, every
// URI under the path is selected.
func reportPrefix(raw string, opts uri.Options) ([]string, error) {
	s, err := uri.ParseStructured(raw, opts)
	if err != nil {
		return nil, err
	}
	key := s.Normalize().Key()
	if key[len(key)-1] != "" {
		return key, nil
	}
	key = key[:len(key)-1]
	if !s.HasAuthority && len(s.Path) == 0 {
		key = key[:1]
	}
	// "https://a/" and "https://a" select the same origin
	if n := len(key); n > 2 && key[n-1] == "" {
		key = key[:n-1]
	}
	return key, nil
}

func (t *Tool) runReport(cmd *cobra.Command, args []string) error {
	onlyInvalid, _ := cmd.Flags().GetBool("invalid")

	store, err := storage.Open(args[0])
	if err != nil {
		return err
	}
	defer store.Close()

	var prefix []string
	if len(args) > 1 {
		if prefix, err = reportPrefix(args[1], t.opts); err != nil {
			return err
		}
	}

	count := 0
	err = store.Walk(prefix, func(_ []string, rec storage.Record) error {
		st := status.FromCode(rec.Code)
		if onlyInvalid && !st.HasError() {
			return nil
		}
		count++
		_, err := fmt.Fprintf(cmd.OutOrStdout(), "%-5s %-28s %s\n", statusLabel(st), st.Value().Name(), rec.URI)
		return err
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%d records\n", count)
	return nil
}
