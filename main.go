package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// RootCmd is the base command when no other command has been specified.
var RootCmd = &cobra.Command{
	Use:   "blockconf",
	Short: "parse block configuration files",
	Long: `
blockconf parses configuration files written in an nginx-style language:
named directives with bare-word arguments, each terminated by a semicolon or
followed by a brace-delimited block of nested directives. It can display,
check and reformat such files.
`,
	SilenceErrors:     true,
	SilenceUsage:      true,
	PersistentPreRunE: parseSettings,
}

func main() {
	if cmd, err := RootCmd.ExecuteC(); err != nil {
		fmt.Printf("error: %v\n\n", err)
		cmd.Usage()
		os.Exit(1)
	}
}
