// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/edsu/idloc/internal/httputil"
	"github.com/edsu/idloc/internal/scheme"
)

var schemesCmd = &cobra.Command{
	Use:   "concept-schemes",
	Short: "List available concept scheme names and their URIs",
	Long: `concept-schemes prints the name and URI of every concept scheme the tool
knows about. By default it lists the bundled table; --refresh scrapes the
current list from the live search page instead.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig()
		refresh, _ := cmd.Flags().GetBool("refresh")
		asYAML, _ := cmd.Flags().GetBool("yaml")

		registry := scheme.Default()
		if refresh {
			client := httputil.NewClient(cfg.Search.HTTPConfig)
			fresh, err := scheme.Refresh(cmd.Context(), client, cfg.Search)
			if err != nil {
				return err
			}
			registry = fresh
		}

		if asYAML {
			data, err := yaml.Marshal(registry.Schemes())
			if err != nil {
				return err
			}
			_, err = os.Stdout.Write(data)
			return err
		}

		table := registry.Schemes()
		for _, name := range registry.Names() {
			fmt.Printf("%s: <%s>\n", name, table[name])
		}
		return nil
	},
}

func init() {
	schemesCmd.Flags().Bool("refresh", false, "scrape the live search page for the current scheme list")
	schemesCmd.Flags().Bool("yaml", false, "output the table as YAML")

	rootCmd.AddCommand(schemesCmd)
}
