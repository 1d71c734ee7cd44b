package tools

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/weburi/weburi/std/log"
	"github.com/weburi/weburi/std/uri"
	"github.com/weburi/weburi/std/utils/toolutils"
)

// Tool holds the state shared by the commands of one invocation.
type Tool struct {
	configFile string
	loose      bool
	logLevel   string

	config *Config
	opts   uri.Options
}

func NewTool() *Tool {
	return &Tool{config: DefaultConfig()}
}

func (t *Tool) String() string {
	return "weburi"
}

// Bind adds the global flags to root and loads the configuration
// before any command runs.
func (t *Tool) Bind(root *cobra.Command) {
	flags := root.PersistentFlags()
	flags.StringVarP(&t.configFile, "config", "c", "", "YAML configuration file")
	flags.BoolVar(&t.loose, "loose", false, "Parse with the WHATWG URL rules")
	flags.StringVar(&t.logLevel, "log-level", "", "Log level (TRACE, DEBUG, INFO, WARN, ERROR)")
	root.PersistentPreRunE = t.setup
}

func (t *Tool) setup(cmd *cobra.Command, _ []string) error {
	if t.configFile != "" {
		toolutils.ReadYaml(t.config, t.configFile)
	}

	if t.loose {
		t.config.Parser.Preset = "loose"
	}
	if t.logLevel != "" {
		level, err := log.ParseLevel(t.logLevel)
		if err != nil {
			return err
		}
		t.config.Log.Level = level
	}
	if err := t.config.Parse(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	log.SetDefault(log.New(os.Stderr, t.config.Log.Json, t.config.Log.Level))
	t.opts, _ = t.config.Parser.Options()
	log.Debug(t, "Configuration loaded", "preset", t.config.Parser.Preset, "store", t.config.Store.Backend)
	return nil
}

// Cmds returns the subcommands of the tool.
func (t *Tool) Cmds() []*cobra.Command {
	parseCmd := &cobra.Command{
		GroupID: "uri",
		Use:     "parse URI...",
		Short:   "Show the components and diagnostics of URIs",
		Args:    cobra.MinimumNArgs(1),
		Example: `  weburi parse 'https://user@example.com:8080/a/b?q=1#top'
  weburi parse --loose 'HTTP://EXAMPLE.COM\path'`,
		RunE: t.runParse,
	}

	resolveCmd := &cobra.Command{
		GroupID: "uri",
		Use:     "resolve BASE REF",
		Short:   "Resolve a reference against a base URI",
		Args:    cobra.ExactArgs(2),
		Example: `  weburi resolve http://a/b/c/d;p?q ../g`,
		RunE:    t.runResolve,
	}

	normalizeCmd := &cobra.Command{
		GroupID: "uri",
		Use:     "normalize URI...",
		Short:   "Print the normal form of URIs",
		Args:    cobra.MinimumNArgs(1),
		RunE:    t.runNormalize,
	}

	encodeCmd := &cobra.Command{
		GroupID: "codec",
		Use:     "encode TEXT",
		Short:   "Percent-encode text",
		Args:    cobra.ExactArgs(1),
		Example: `  weburi encode 'a b/c' --charset path`,
		RunE:    t.runEncode,
	}
	encodeCmd.Flags().String("charset", "unreserved", "Name of the set of bytes left as is")

	decodeCmd := &cobra.Command{
		GroupID: "codec",
		Use:     "decode TEXT",
		Short:   "Percent-decode text",
		Args:    cobra.ExactArgs(1),
		Example: `  weburi decode 'a%20b' --charset query --policy allowed`,
		RunE:    t.runDecode,
	}
	decodeCmd.Flags().String("charset", "", "Name of the set of bytes checked in the input (default: any)")
	decodeCmd.Flags().String("policy", "allowed", "Whether the set lists allowed or disallowed bytes")

	lintCmd := &cobra.Command{
		GroupID: "store",
		Use:     "lint FILE",
		Short:   "Validate a list of URIs and record the outcome",
		Long: `Validate a list of URIs and record the outcome

The file holds one URI per line; blank lines and lines starting with '#'
are skipped. Use '-' to read from stdin. URIs with the same normal form
are checked once. Each outcome is stored under the URI's origin and path.`,
		Args:    cobra.ExactArgs(1),
		Example: `  weburi lint urls.txt --store sqlite:urls.db`,
		RunE:    t.runLint,
	}
	lintCmd.Flags().String("store", "", "Store for the results: memory, badger:DIR or sqlite:FILE")
	lintCmd.Flags().Bool("crosscheck", false, "Count URIs on which a second RFC 3986 validator disagrees")

	reportCmd := &cobra.Command{
		GroupID: "store",
		Use:     "report STORE [PREFIX]",
		Short:   "List the outcomes recorded by lint",
		Args:    cobra.RangeArgs(1, 2),
		Example: `  weburi report sqlite:urls.db https://example.com`,
		RunE:    t.runReport,
	}
	reportCmd.Flags().Bool("invalid", false, "Only list URIs with errors")

	return []*cobra.Command{parseCmd, resolveCmd, normalizeCmd, encodeCmd, decodeCmd, lintCmd, reportCmd}
}

// Groups returns the command groups used by Cmds.
func Groups() []*cobra.Group {
	return []*cobra.Group{
		{ID: "uri", Title: "URI Tools"},
		{ID: "codec", Title: "Percent Encoding"},
		{ID: "store", Title: "Batch Validation"},
	}
}
