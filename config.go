package main

import (
	"fmt"
	"io/ioutil"
	"strconv"

	"github.com/BurntSushi/xdg"
	"github.com/fatih/color"
	"github.com/fd0/blockconf/internal/conf"
	"github.com/fd0/blockconf/internal/token"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var configFile string
var configPaths = xdg.Paths{}

var maxDepth int

func init() {
	cobra.OnInitialize(initConfig)

	RootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "config file to read at startup (default is $XDG_CONFIG_FILE/blockconf.conf)")

	RootCmd.PersistentFlags().IntVarP(&maxDepth, "max-depth", "m", token.DefaultMaxDepth, "maximum brace nesting depth")
	bindConfigValue("max_depth", RootCmd.PersistentFlags().Lookup("max-depth"))
}

const configFileName = "blockconf.conf"

// Settings holds the tool configuration read from the settings file, which
// is itself written in the blockconf language.
type Settings struct {
	MaxDepth int  `conf:"max_depth"`
	Color    bool `conf:"color"`
}

var settings = Settings{
	Color: true,
}

// initConfig locates the settings file.
func initConfig() {
	var err error
	if configFile == "" {
		configFile, err = configPaths.ConfigFile(configFileName)
		if err != nil {
			V("%v\n", err)
			return
		}
	}

	V("settings file is %q\n", configFile)
}

// parseSettings parses the settings file and applies its values to the
// matching flags, unless those were set on the command line.
func parseSettings(cmd *cobra.Command, args []string) error {
	if configFile == "" {
		return nil
	}

	V("load settings file %q\n", configFile)

	block, err := conf.ParseFile(configFile)
	if err != nil {
		return fmt.Errorf("parse settings file %v failed: %v", configFile, err)
	}

	if err := conf.Apply(block, "conf", &settings); err != nil {
		return fmt.Errorf("apply settings from %v failed: %v", configFile, err)
	}

	if settings.MaxDepth != 0 {
		if f, ok := configBinds["max_depth"]; ok && !f.Changed {
			f.Value.Set(strconv.Itoa(settings.MaxDepth))
		}
	}

	if !settings.Color {
		color.NoColor = true
	}

	return nil
}

var configBinds map[string]*pflag.Flag

func bindConfigValue(name string, flag *pflag.Flag) {
	if configBinds == nil {
		configBinds = make(map[string]*pflag.Flag)
	}

	configBinds[name] = flag
}

// parseLimitFile reads and parses a configuration file, honoring the
// configured nesting depth.
func parseLimitFile(filename string) (conf.Block, error) {
	D("parse %v with max depth %v\n", filename, maxDepth)

	buf, err := ioutil.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	return conf.ParseLimit(string(buf), maxDepth)
}
