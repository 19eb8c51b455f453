// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/edsu/idloc/internal/scheme"
	"github.com/edsu/idloc/internal/search"
	"github.com/edsu/idloc/pkg/types"
)

var searchCmd = &cobra.Command{
	Use:   "search QUERY",
	Short: "Search for entities in id.loc.gov",
	Long: `Search queries the id.loc.gov search endpoint and prints matching entities
in the order the service returns them. Results are fetched a page at a time;
--limit 0 pages through everything.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig()

		schemes, _ := cmd.Flags().GetStringArray("concept-scheme")
		limit, _ := cmd.Flags().GetInt("limit")
		asJSON, _ := cmd.Flags().GetBool("json")
		output, _ := cmd.Flags().GetString("output")

		if !cmd.Flags().Changed("limit") {
			limit = cfg.Search.MaxResults
		}

		client := search.NewClient(scheme.Default(), cfg.Search)
		query := search.Query{Text: args[0], ConceptSchemes: schemes, Limit: limit}

		cur, err := client.Search(cmd.Context(), query)
		if err != nil {
			return err
		}

		var results []types.SearchResult
		for cur.Next() {
			r := cur.Result()
			if asJSON || output != "" {
				results = append(results, r)
			}
			if !asJSON {
				fmt.Printf("%s\n<%s>\n\n", r.Title, r.URI)
			}
		}
		if err := cur.Err(); err != nil {
			return err
		}
		if n := cur.Skipped(); n > 0 {
			fmt.Fprintf(os.Stderr, "warning: skipped %d result row(s) with unrecognized shape\n", n)
		}

		if asJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			if err := enc.Encode(results); err != nil {
				return err
			}
		}
		if output != "" {
			if err := search.WriteQueryFile(output, query, results, cur.Skipped()); err != nil {
				return err
			}
			fmt.Fprintf(os.Stderr, "Saved %d result(s) to %s\n", len(results), output)
		}
		return nil
	},
}

func init() {
	searchCmd.Flags().StringArray("concept-scheme", nil, "a concept scheme to limit to (can repeat)")
	searchCmd.Flags().Int("limit", 20, "number of records to limit results to (0 is all)")
	searchCmd.Flags().Bool("json", false, "output results as JSON")
	searchCmd.Flags().String("output", "", "save the query and results to a YAML file")

	rootCmd.AddCommand(searchCmd)
}
