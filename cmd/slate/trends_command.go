package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"slate/internal/trends"
)

func newTrendsCommand(ctx *commandContext) *cobra.Command {
	var category string
	var limit int
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "trends",
		Short: "List trending product candidates for the next countdown",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			svc := trends.NewService(cfg)
			products, err := svc.Trending(cmd.Context(), category, limit)
			if err != nil {
				return err
			}

			if jsonOutput {
				return writeJSON(cmd, products)
			}

			out := cmd.OutOrStdout()
			if len(products) == 0 {
				fmt.Fprintln(out, "No trending products (set trends.base_url in the config to enable lookups)")
				return nil
			}

			rows := make([][]string, 0, len(products))
			for _, p := range products {
				rows = append(rows, []string{
					p.Name,
					p.Category,
					strconv.FormatFloat(p.Score, 'f', 2, 64),
				})
			}
			fmt.Fprintln(out, renderTable(
				[]string{"Product", "Category", "Score"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignRight},
			))
			return nil
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "Restrict results to a product category")
	cmd.Flags().IntVar(&limit, "limit", 10, "Maximum number of candidates to request")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit candidates as JSON")
	return cmd
}
