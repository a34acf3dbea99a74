package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewSyncCommand creates the sync command.
func NewSyncCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "sync",
		Short: "Fetch a fresh snapshot from the backend and cache it locally",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp()
			if err != nil {
				return err
			}
			defer app.Close()

			ctx := commandContext()

			materials, err := app.Client.FetchMaterials(ctx)
			if err != nil {
				return fmt.Errorf("failed to fetch materials: %w", err)
			}
			recipes, err := app.Client.FetchRecipes(ctx)
			if err != nil {
				return fmt.Errorf("failed to fetch recipes: %w", err)
			}
			if err := app.CatalogRepo.ReplaceAll(ctx, materials, recipes); err != nil {
				return fmt.Errorf("failed to cache catalog: %w", err)
			}

			entries, err := app.Client.FetchInventory(ctx)
			if err != nil {
				return fmt.Errorf("failed to fetch inventory: %w", err)
			}
			workstations, err := app.Client.FetchWorkstations(ctx)
			if err != nil {
				return fmt.Errorf("failed to fetch workstations: %w", err)
			}
			state, err := app.Client.FetchPlayerState(ctx)
			if err != nil {
				return fmt.Errorf("failed to fetch player state: %w", err)
			}
			if err := app.InventoryRepo.ReplaceSnapshot(ctx, entries, workstations, state); err != nil {
				return fmt.Errorf("failed to cache snapshot: %w", err)
			}

			fmt.Printf("Synced %d materials, %d recipes, %d inventory entries (energy %d/%d)\n",
				len(materials), len(recipes), len(entries), state.Energy, state.MaxEnergy)
			return nil
		},
	}
}
