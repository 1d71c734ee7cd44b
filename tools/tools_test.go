package tools_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
	"github.com/weburi/weburi/std/log"
	"github.com/weburi/weburi/std/uri/storage"
	"github.com/weburi/weburi/std/utils/toolutils"
	tu "github.com/weburi/weburi/std/utils/testutils"
	"github.com/weburi/weburi/tools"
)

func execute(stdin string, args ...string) (string, error) {
	root := &cobra.Command{Use: "weburi", SilenceUsage: true, SilenceErrors: true}
	tool := tools.NewTool()
	tool.Bind(root)
	root.AddGroup(tools.Groups()...)
	root.AddCommand(tool.Cmds()...)

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

const urlList = `# sample
https://example.com/a
HTTPS://EXAMPLE.COM:443/a

http://example.com:99999/
mailto:user@example.com
`

func TestParse(t *testing.T) {
	tu.SetT(t)

	out := tu.NoErr(execute("", "parse", "https://user@www.example.com:8080/a/b?q=1#top"))
	require.Contains(t, out, "    status=valid\n")
	require.Contains(t, out, "    scheme=https\n")
	require.Contains(t, out, "  userinfo=user\n")
	require.Contains(t, out, "      host=www.example.com\n")
	require.Contains(t, out, " host-kind=reg-name\n")
	require.Contains(t, out, "       tld=com\n")
	require.Contains(t, out, "    domain=example.com\n")
	require.Contains(t, out, " subdomain=www\n")
	require.Contains(t, out, "      port=8080\n")
	require.Contains(t, out, "      path=/a/b\n")
	require.Contains(t, out, "     query=q=1\n")
	require.Contains(t, out, "  fragment=top\n")
	require.NotContains(t, out, "warning=")

	out, err := execute("", "parse", "1http://x")
	require.Error(t, err)
	require.Contains(t, out, "status=invalid_scheme_character")
}

func TestParseLoose(t *testing.T) {
	tu.SetT(t)

	_, err := execute("", "parse", "https://example.com/a b")
	require.Error(t, err)

	out := tu.NoErr(execute("", "--loose", "parse", "https://example.com/a b"))
	require.Contains(t, out, "warning=")

	_, err = execute("", "--log-level", "LOUD", "parse", "https://example.com")
	require.Error(t, err)
}

func TestParseConfigFile(t *testing.T) {
	tu.SetT(t)
	prev := log.Default()
	defer log.SetDefault(prev)

	file := filepath.Join(t.TempDir(), "weburi.yml")
	require.NoError(t, os.WriteFile(file, []byte("parser:\n  preset: loose\nlog:\n  level: ERROR\n"), 0644))

	tu.NoErr(execute("", "--config", file, "parse", "https://example.com/a b"))
	require.Equal(t, log.LevelError, log.Default().Level())
}

func TestResolveNormalize(t *testing.T) {
	tu.SetT(t)

	out := tu.NoErr(execute("", "resolve", "http://a/b/c/d;p?q", "../g"))
	require.Equal(t, "http://a/b/g\n", out)

	out = tu.NoErr(execute("", "normalize", "HTTP://Example.COM:80/a/./b/../c", "https://x.test"))
	require.Equal(t, "http://example.com/a/c\nhttps://x.test/\n", out)

	_, err := execute("", "resolve", "a/b", "c")
	require.Error(t, err)
}

func TestEncodeDecode(t *testing.T) {
	tu.SetT(t)

	require.Equal(t, "a%20b/c\n", tu.NoErr(execute("", "encode", "a b/c", "--charset", "path")))
	require.Equal(t, "a%20b%2Fc\n", tu.NoErr(execute("", "encode", "a b/c")))
	tu.Err(execute("", "encode", "x", "--charset", "nope"))

	require.Equal(t, "a b\n", tu.NoErr(execute("", "decode", "a%20b")))
	require.Equal(t, "a/b\n", tu.NoErr(execute("", "decode", "a%2Fb", "--charset", "unreserved")))
	tu.Err(execute("", "decode", "a b", "--charset", "unreserved"))
	require.Equal(t, "a b\n", tu.NoErr(execute("", "decode", "a b", "--charset", "gen-delims", "--policy", "disallowed")))
	tu.Err(execute("", "decode", "a", "--charset", "alpha", "--policy", "maybe"))
}

func TestLint(t *testing.T) {
	tu.SetT(t)

	out, err := execute(urlList, "lint", "-")
	require.EqualError(t, err, "1 invalid URIs")
	require.Contains(t, out, "5: ERROR http://example.com:99999/: The port is out of range.\n")
	require.Contains(t, out, "     total=4\n")
	require.Contains(t, out, "duplicates=1\n")
	require.Contains(t, out, "     valid=2\n")
	require.Contains(t, out, "   invalid=1\n")
}

func TestLintCrossCheck(t *testing.T) {
	tu.SetT(t)

	out := tu.NoErr(execute("https://example.com/a\n", "lint", "-", "--crosscheck"))
	require.Contains(t, out, "  disagree=0\n")

	_, err := execute("https://example.com/a\n", "--loose", "lint", "-", "--crosscheck")
	require.Error(t, err)
}

func TestLintReport(t *testing.T) {
	tu.SetT(t)

	dir := t.TempDir()
	list := filepath.Join(dir, "urls.txt")
	require.NoError(t, os.WriteFile(list, []byte(urlList), 0644))
	db := "sqlite:" + filepath.Join(dir, "urls.db")

	_, err := execute("", "lint", list, "--store", db)
	require.Error(t, err)

	out := tu.NoErr(execute("", "report", db))
	require.Contains(t, out, "https://example.com/a\n")
	require.Contains(t, out, "mailto:user@example.com\n")
	require.Contains(t, out, "http://example.com:99999/\n")
	require.Contains(t, out, "3 records\n")

	out = tu.NoErr(execute("", "report", db, "https://example.com"))
	require.Contains(t, out, "https://example.com/a\n")
	require.Contains(t, out, "1 records\n")

	out = tu.NoErr(execute("", "report", db, "https://example.com/a#x"))
	require.Contains(t, out, "0 records\n")

	out = tu.NoErr(execute("", "report", db, "mailto:"))
	require.Contains(t, out, "1 records\n")

	out = tu.NoErr(execute("", "report", db, "--invalid"))
	require.Contains(t, out, "port_out_of_range")
	require.Contains(t, out, "1 records\n")
}

func TestLinter(t *testing.T) {
	tu.SetT(t)

	store := storage.NewMemoryStore()
	opts := tu.NoErr(tools.DefaultConfig().Parser.Options())
	l := tools.NewLinter(opts, store)

	_, fresh, err := l.Check("http://a.test/x/../y")
	require.NoError(t, err)
	require.True(t, fresh)
	_, fresh, err = l.Check("http://A.test/y")
	require.NoError(t, err)
	require.False(t, fresh)

	rec := tu.NoErr(store.Get([]string{"http", "a.test", "y", ""}, false))
	require.Equal(t, "http://a.test/x/../y", rec.URI)
	require.Equal(t, 1, store.Len())
}

func TestLinterQueryFragment(t *testing.T) {
	tu.SetT(t)

	store := storage.NewMemoryStore()
	opts := tu.NoErr(tools.DefaultConfig().Parser.Options())
	l := tools.NewLinter(opts, store)

	list := []string{
		"http://a.test/p?x=1",
		"http://a.test/p?x=%zz",
		"http://a.test/p#one",
		"http://a.test/p#two",
		"http://a.test/p",
	}
	for _, raw := range list {
		_, fresh, err := l.Check(raw)
		require.NoError(t, err)
		require.True(t, fresh, raw)
	}
	require.Equal(t, len(list), store.Len())

	var stored []string
	require.NoError(t, store.Walk(nil, func(_ []string, rec storage.Record) error {
		stored = append(stored, rec.URI)
		return nil
	}))
	require.ElementsMatch(t, list, stored)

	rec := tu.NoErr(store.Get([]string{"http", "a.test", "p", "#one"}, false))
	require.Equal(t, "http://a.test/p#one", rec.URI)
	rec = tu.NoErr(store.Get([]string{"http", "a.test", "p", "?x=1"}, false))
	require.Equal(t, "http://a.test/p?x=1", rec.URI)
}

func TestConfig(t *testing.T) {
	tu.SetT(t)

	config := tools.DefaultConfig()
	require.NoError(t, config.Parse())
	require.Equal(t, "memory", tu.NoErr(config.Store.Desc()))

	text := `parser:
  preset: loose
  allow_relative: false
  ipv4:
    trailing_dots: reject
log:
  level: DEBUG
  json: true
store:
  backend: sqlite
  path: /tmp/urls.db
`
	require.NoError(t, toolutils.DecodeYaml(config, strings.NewReader(text)))
	require.NoError(t, config.Parse())

	opts := tu.NoErr(config.Parser.Options())
	require.True(t, opts.Whatwg)
	require.False(t, opts.AllowRelative)
	require.False(t, opts.IPv4.AllowShortForm)
	require.True(t, opts.CheckPunycode)
	require.Equal(t, log.LevelDebug, config.Log.Level)
	require.True(t, config.Log.Json)
	require.Equal(t, "sqlite:/tmp/urls.db", tu.NoErr(config.Store.Desc()))

	config.Parser.Preset = "medium"
	require.Error(t, config.Parse())

	config = tools.DefaultConfig()
	config.Store.Backend = "badger"
	require.Error(t, config.Parse())

	require.Error(t, toolutils.DecodeYaml(tools.DefaultConfig(), strings.NewReader("parser:\n  mode: x\n")))
}
