package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/andrescamacho/craftrules-go/internal/application/queries"
	"github.com/andrescamacho/craftrules-go/internal/domain/listing"
)

// NewRecipesCommand creates the recipes command.
func NewRecipesCommand() *cobra.Command {
	var (
		search         string
		category       string
		rarity         string
		sortBy         string
		craftableOnly  bool
		hasIngredients bool
		multiplier     int
		grouped        bool
	)

	cmd := &cobra.Command{
		Use:   "recipes",
		Short: "Search and filter the recipe catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp()
			if err != nil {
				return err
			}
			defer app.Close()

			query := &queries.RecipeSearchQuery{
				State: listing.State{
					Search:   search,
					Category: category,
					Rarity:   rarity,
					SortBy:   listing.SortKey(sortBy),
					Toggles: map[string]bool{
						queries.FilterCraftable:      craftableOnly,
						queries.FilterHasIngredients: hasIngredients,
					},
				},
				Multiplier: multiplier,
				Grouped:    grouped,
			}

			response, err := app.Mediator.Send(commandContext(), query)
			if err != nil {
				return err
			}
			result := response.(*queries.RecipeSearchResult)

			fmt.Printf("Showing %d of %d recipes\n\n", result.View.FilteredCount, result.View.TotalCount)

			if grouped {
				for _, group := range result.View.GroupOrder {
					fmt.Printf("== %s ==\n", group)
					for _, item := range result.View.Groups[group] {
						printRecipeRow(item.(*queries.RecipeRow))
					}
				}
			} else {
				for _, item := range result.View.Items {
					printRecipeRow(item.(*queries.RecipeRow))
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&search, "search", "", "Search term (name, description or result material)")
	cmd.Flags().StringVar(&category, "category", "", "Category facet")
	cmd.Flags().StringVar(&rarity, "rarity", "", "Rarity facet")
	cmd.Flags().StringVar(&sortBy, "sort", "", "Sort key: name, quantity, rarity, recent")
	cmd.Flags().BoolVar(&craftableOnly, "craftable", false, "Only recipes craftable right now")
	cmd.Flags().BoolVar(&hasIngredients, "has-ingredients", false, "Only recipes with all ingredients available")
	cmd.Flags().IntVar(&multiplier, "qty", 1, "Craft quantity for the craftable filter")
	cmd.Flags().BoolVar(&grouped, "grouped", false, "Group results by category")

	return cmd
}

func printRecipeRow(row *queries.RecipeRow) {
	marker := " "
	if row.Craftable {
		marker = "*"
	}
	fmt.Printf("  %s %-30s [%s] energy %d\n", marker, row.Name, row.Category, row.EnergyCost)
}
