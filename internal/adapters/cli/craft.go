package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/andrescamacho/craftrules-go/internal/application/queries"
)

// NewCraftCommand creates the craft command group.
func NewCraftCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "craft",
		Short: "Craftability decisions",
	}
	cmd.AddCommand(newCraftCheckCommand())
	return cmd
}

func newCraftCheckCommand() *cobra.Command {
	var multiplier int

	cmd := &cobra.Command{
		Use:   "check <recipe-id>",
		Short: "Check whether a recipe is craftable right now",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			recipeID, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid recipe id %q", args[0])
			}

			app, err := newApp()
			if err != nil {
				return err
			}
			defer app.Close()

			response, err := app.Mediator.Send(commandContext(), &queries.CraftCheckQuery{
				RecipeID:   recipeID,
				Multiplier: multiplier,
			})
			if err != nil {
				return err
			}
			result := response.(*queries.CraftCheckResult)

			if result.Verdict.OK {
				fmt.Printf("%s x%d: craftable (max batch %d)\n", result.Recipe.Name, multiplier, result.MaxCraftable)
				return nil
			}

			fmt.Printf("%s x%d: not craftable\n", result.Recipe.Name, multiplier)
			for _, reason := range result.Verdict.Reasons {
				fmt.Printf("  - %s\n", reason)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&multiplier, "qty", 1, "Craft quantity")
	return cmd
}
