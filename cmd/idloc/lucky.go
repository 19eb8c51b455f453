// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/edsu/idloc/internal/entity"
	"github.com/edsu/idloc/internal/scheme"
	"github.com/edsu/idloc/internal/search"
)

var luckyCmd = &cobra.Command{
	Use:   "lucky QUERY",
	Short: "Fetch the first matching entity and print it as JSON-LD",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig()
		schemes, _ := cmd.Flags().GetStringArray("concept-scheme")

		client := search.NewClient(scheme.Default(), cfg.Search)
		result, err := client.Lucky(cmd.Context(), args[0], schemes)
		if err != nil {
			return err
		}
		if result == nil {
			fmt.Printf("Alas, there was no match found for %q\n", args[0])
			return nil
		}

		fetcher := entity.NewFetcher(nil, cfg.Fetch)
		doc, err := fetcher.Get(cmd.Context(), result.URI)
		if err != nil {
			return err
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(doc)
	},
}

var guessCmd = &cobra.Command{
	Use:   "guess QUERY",
	Short: "Print the URI of the first entity matching a word or phrase",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig()
		schemes, _ := cmd.Flags().GetStringArray("concept-scheme")

		client := search.NewClient(scheme.Default(), cfg.Search)
		result, err := client.Lucky(cmd.Context(), args[0], schemes)
		if err != nil {
			return err
		}
		if result != nil {
			fmt.Println(result.URI)
		}
		return nil
	},
}

func init() {
	luckyCmd.Flags().StringArray("concept-scheme", nil, "a concept scheme to limit to (can repeat)")
	guessCmd.Flags().StringArray("concept-scheme", nil, "a concept scheme to limit to (can repeat)")

	rootCmd.AddCommand(luckyCmd)
	rootCmd.AddCommand(guessCmd)
}
