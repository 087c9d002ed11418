package main

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/fd0/blockconf/internal/conf"
	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:     "show [flags] configfile",
	Example: "$ blockconf show /etc/nginx/nginx.conf",
	Short:   "Parse and show a configuration file",
	Long: `
The show command parses a configuration file and visualises the resulting
directive tree.
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return ShowConfig(args)
	},
}

var (
	showYAML bool
	showJSON bool
)

func init() {
	RootCmd.AddCommand(showCmd)

	showCmd.Flags().BoolVar(&showYAML, "yaml", false, "print the directive tree as YAML")
	showCmd.Flags().BoolVar(&showJSON, "json", false, "print the directive tree as JSON")
}

var (
	printName  = color.New(color.FgHiRed).PrintfFunc()
	printArg   = color.New(color.FgWhite).PrintfFunc()
	printPunct = color.New(color.FgHiBlue).PrintfFunc()
)

// ShowConfig visualises a block configuration file.
func ShowConfig(args []string) error {
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

	switch {
	case showYAML:
		buf, err := yaml.Marshal(conf.Export(block))
		if err != nil {
			return err
		}

		fmt.Print(string(buf))
	case showJSON:
		buf, err := json.MarshalIndent(conf.Export(block), "", "  ")
		if err != nil {
			return err
		}

		fmt.Println(string(buf))
	default:
		fmt.Printf("Directives from %v:\n", filename)
		showBlock(block, 0)
	}

	return nil
}

// showBlock prints the directives with colored names and punctuation.
func showBlock(block conf.Block, depth int) {
	for _, d := range block {
		for i := 0; i < depth; i++ {
			fmt.Print("\t")
		}

		printName("%s", d.Name)
		for _, arg := range d.Args {
			printArg(" %s", arg)
		}

		if d.HasBlock() {
			printPunct(" {\n")
			showBlock(d.Block, depth+1)
			for i := 0; i < depth; i++ {
				fmt.Print("\t")
			}
			printPunct("}\n")
		} else {
			printPunct(";\n")
		}
	}
}
