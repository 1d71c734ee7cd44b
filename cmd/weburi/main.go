package main

import (
	"os"

	"github.com/weburi/weburi/cmd"
)

func main() {
	if err := cmd.CmdWeburi.Execute(); err != nil {
		os.Exit(1)
	}
}
