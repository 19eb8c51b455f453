// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the idloc CLI, a small tool for
// fetching and searching Linked Data records on id.loc.gov.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/edsu/idloc/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the idloc CLI.
var rootCmd = &cobra.Command{
	Use:   "idloc",
	Short: "Fetch and search JSON-LD records on id.loc.gov",
	Long: `idloc is a small library and CLI for the Library of Congress id.loc.gov
linked data service. It can fetch a single entity as framed JSON-LD, search
the service with optional concept scheme filters, and list the concept
schemes the service knows about.

Every call is a live, stateless round trip; nothing is cached locally.`,
	SilenceUsage: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./idloc.yaml or ~/.config/idloc/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("idloc")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "idloc"))
		}
	}

	viper.SetEnvPrefix("IDLOC")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// loadConfig starts from the built-in defaults and applies any values
// the config file or environment set.
func loadConfig() types.Config {
	cfg := types.Defaults()

	if viper.IsSet("search.endpoint") {
		cfg.Search.Endpoint = viper.GetString("search.endpoint")
	}
	if viper.IsSet("search.max_results") {
		cfg.Search.MaxResults = viper.GetInt("search.max_results")
	}
	if viper.IsSet("search.page_delay") {
		cfg.Search.PageDelay = viper.GetDuration("search.page_delay")
	}
	if viper.IsSet("search.timeout") {
		cfg.Search.Timeout = viper.GetDuration("search.timeout")
	}
	if viper.IsSet("search.user_agent") {
		cfg.Search.UserAgent = viper.GetString("search.user_agent")
	}
	if viper.IsSet("fetch.timeout") {
		cfg.Fetch.Timeout = viper.GetDuration("fetch.timeout")
	}
	if viper.IsSet("fetch.user_agent") {
		cfg.Fetch.UserAgent = viper.GetString("fetch.user_agent")
	}

	return cfg
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
