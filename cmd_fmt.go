package main

import (
	"errors"
	"fmt"
	"io/ioutil"

	"github.com/fd0/blockconf/internal/conf"
	"github.com/spf13/cobra"
)

var fmtCmd = &cobra.Command{
	Use:     "fmt [flags] configfile",
	Example: "$ blockconf fmt -w site.conf",
	Short:   "Reformat a configuration file",
	Long: `
The fmt command parses a configuration file and prints it in canonical form:
one directive per line, nested blocks indented by tabs. Comments and the
original whitespace layout are not preserved. With -w the file is rewritten
in place instead.
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return FormatConfig(args)
	},
}

var writeInPlace bool

func init() {
	RootCmd.AddCommand(fmtCmd)

	fmtCmd.Flags().BoolVarP(&writeInPlace, "write", "w", false, "write the result back instead of printing it")
}

// FormatConfig renders a configuration file in canonical form.
func FormatConfig(args []string) error {
	if len(args) == 0 {
		return errors.New("no config file specified, nothing to do")
	}

	if len(args) > 1 {
		return errors.New("more than one config file specified")
	}

	filename := args[0]

	block, err := parseLimitFile(filename)
	if err != nil {
		return err
	}

	out := conf.Render(block)

	if !writeInPlace {
		fmt.Print(out)
		return nil
	}

	V("rewrite %v\n", filename)

	return ioutil.WriteFile(filename, []byte(out), 0644)
}
