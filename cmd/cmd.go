package cmd

import (
	"github.com/spf13/cobra"
	"github.com/weburi/weburi/std/utils"
	"github.com/weburi/weburi/tools"
)

const banner = `
                 _              _
 __      __ ___ | |__   _   _  _ __ (_)
 \ \ /\ / // _ \| '_ \ | | | || '__|| |
  \ V  V /|  __/| |_) || |_| || |   | |
   \_/\_/  \___||_.__/  \__,_||_|   |_|

URI and URL parsing and validation
`

var CmdWeburi = &cobra.Command{
	Use:          "weburi",
	Short:        "URI and URL parsing and validation",
	Long:         banner[1:],
	Version:      utils.Version,
	SilenceUsage: true,
}

func init() {
	cobra.EnableCommandSorting = false
	CmdWeburi.Root().CompletionOptions.HiddenDefaultCmd = true
	CmdWeburi.PersistentFlags().BoolP("help", "h", false, "Print usage")
	CmdWeburi.PersistentFlags().Lookup("help").Hidden = true

	tool := tools.NewTool()
	tool.Bind(CmdWeburi)
	CmdWeburi.AddGroup(tools.Groups()...)
	CmdWeburi.AddCommand(tool.Cmds()...)
}
