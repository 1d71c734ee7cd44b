package tools

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/weburi/weburi/std/log"
	"github.com/weburi/weburi/std/uri"
	"github.com/weburi/weburi/std/uri/status"
	"github.com/weburi/weburi/std/utils/toolutils"
)

func (t *Tool) runParse(cmd *cobra.Command, args []string) error {
	invalid := 0
	for i, arg := range args {
		if i > 0 {
			fmt.Fprintln(cmd.OutOrStdout())
		}
		u := uri.View(arg, t.opts)
		printURI(cmd.OutOrStdout(), u)
		if !u.IsValid() {
			invalid++
		}
	}
	if invalid > 0 {
		return fmt.Errorf("%d of %d URIs are invalid", invalid, len(args))
	}
	return nil
}

func printURI(w io.Writer, u *uri.URI) {
	p := toolutils.StatusPrinter{File: w, Padding: 10}
	st := u.Status()

	p.Print("uri", u.String())
	p.Print("code", fmt.Sprintf("%#x", st.Code()))
	p.Print("status", st.Value().Name())
	p.PrintIf("scheme", u.Scheme(), u.HasScheme())

	if u.HasAuthority() {
		if user, ok := u.UserInfo(); ok {
			p.Print("userinfo", user)
		}
		host, hst := u.ParsedHost()
		p.Print("host", u.Host())
		if !hst.HasError() {
			p.Print("host-kind", host.Kind())
			p.PrintIf("unicode", host.Unicode(), host.IsPunycode())
			if domain := host.Domain(); domain != "" {
				p.Print("tld", host.TLD())
				p.Print("domain", domain)
				p.PrintIf("subdomain", host.Subdomain(), host.Subdomain() != "")
			}
		}
		if port, ok := u.Port(); ok {
			p.Print("port", port)
		}
	}

	p.Print("path", u.Path())
	p.PrintIf("query", u.RawQuery(), u.HasQuery())
	p.PrintIf("fragment", u.Fragment(), u.HasFragment())

	for part := range st.All() {
		if part.Warnings() != 0 {
			p.Print("warning", part.Warnings().Name())
		}
	}
	p.Print("message", st.Value())

	if st.HasError() {
		log.Debug(u, "URI has errors", "status", st.Value().Name())
	}
}

func statusLabel(st status.Status) string {
	switch {
	case st.HasError():
		return "ERROR"
	case st.HasWarnings():
		return "WARN"
	default:
		return "OK"
	}
}
