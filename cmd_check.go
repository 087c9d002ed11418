package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:     "check configfile [configfile ...]",
	Example: "$ blockconf check /etc/nginx/nginx.conf",
	Short:   "Check configuration files for syntax errors",
	Long: `
The check command parses all configuration files given on the command line
and reports the first syntax error found in each. The exit status is
non-zero when any file fails to parse.
`,
	RunE: Check,
}

func init() {
	RootCmd.AddCommand(checkCmd)
}

// Check parses the configuration files and reports errors.
func Check(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return errors.New("no config files to check")
	}

	failed := 0

	for _, filename := range args {
		V("checking %v\n", filename)

		block, err := parseLimitFile(filename)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%v: %v\n", filename, err)
			failed++
			continue
		}

		fmt.Printf("%v: ok, %d top-level directives\n", filename, len(block))
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d files failed", failed, len(args))
	}

	return nil
}
