package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/andrescamacho/craftrules-go/internal/application/queries"
	"github.com/andrescamacho/craftrules-go/internal/domain/listing"
)

// NewInventoryCommand creates the inventory command.
func NewInventoryCommand() *cobra.Command {
	var (
		search   string
		category string
		rarity   string
		sortBy   string
		inStock  bool
		topN     int
	)

	cmd := &cobra.Command{
		Use:   "inventory",
		Short: "Show the aggregated, filterable inventory view",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp()
			if err != nil {
				return err
			}
			defer app.Close()

			query := &queries.InventoryViewQuery{
				State: listing.State{
					Search:   search,
					Category: category,
					Rarity:   rarity,
					SortBy:   listing.SortKey(sortBy),
					Toggles:  map[string]bool{queries.FilterInStock: inStock},
				},
				TopN: topN,
			}

			response, err := app.Mediator.Send(commandContext(), query)
			if err != nil {
				return err
			}
			result := response.(*queries.InventoryViewResult)

			fmt.Printf("Inventory: %d entries, %d items total (%d food / %d other)\n",
				result.Stats.TotalEntries, result.Stats.TotalQuantity,
				result.Stats.FoodEntries, result.Stats.NonFoodEntries)
			fmt.Printf("Showing %d of %d entries\n\n", result.View.FilteredCount, result.View.TotalCount)

			for _, group := range result.View.GroupOrder {
				fmt.Printf("== %s ==\n", group)
				for _, item := range result.View.Groups[group] {
					row := item.(*queries.InventoryRow)
					name := "?"
					if row.Material != nil {
						name = row.Material.Name
					}
					fmt.Printf("  %-30s x%d\n", name, row.Quantity)
				}
			}

			if len(result.Top) > 0 {
				fmt.Println("\nTop quantities:")
				for _, entry := range result.Top {
					fmt.Printf("  %s\n", entry)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&search, "search", "", "Search term (name or description)")
	cmd.Flags().StringVar(&category, "category", "", "Category facet (nourriture, bois, minerais, gemmes, magie, divers)")
	cmd.Flags().StringVar(&rarity, "rarity", "", "Rarity facet")
	cmd.Flags().StringVar(&sortBy, "sort", "", "Sort key: name, quantity, rarity, recent")
	cmd.Flags().BoolVar(&inStock, "in-stock", false, "Hide entries with zero quantity")
	cmd.Flags().IntVar(&topN, "top", 5, "How many top-quantity entries to show")

	return cmd
}
