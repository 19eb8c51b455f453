// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/edsu/idloc/internal/entity"
)

var getCmd = &cobra.Command{
	Use:   "get URI",
	Short: "Get an id.loc.gov entity by URI and print it as JSON-LD",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig()

		// The service's own data uses http:// identifiers.
		uri := strings.Replace(args[0], "https://", "http://", 1)

		fetcher := entity.NewFetcher(nil, cfg.Fetch)
		doc, err := fetcher.Get(cmd.Context(), uri)
		if err != nil {
			return err
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(doc)
	},
}

func init() {
	rootCmd.AddCommand(getCmd)
}
