package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	configPath string
	verbose    bool
)

// NewRootCommand creates the root command for the CLI.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "craftrules",
		Short: "Craft Rules CLI - inventory, recipes and craftability decisions",
		Long: `Craft Rules answers crafting questions against the last synced snapshot
of your catalog, inventory and player state.

Examples:
  craftrules sync
  craftrules inventory --search pomme --sort quantity
  craftrules recipes --search hache --craftable
  craftrules craft check 42 --qty 3
  craftrules classify "Bûche de bois"`,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		"Path to config file (default: ./config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"Enable verbose output")

	rootCmd.AddCommand(NewSyncCommand())
	rootCmd.AddCommand(NewInventoryCommand())
	rootCmd.AddCommand(NewRecipesCommand())
	rootCmd.AddCommand(NewCraftCommand())
	rootCmd.AddCommand(NewClassifyCommand())

	return rootCmd
}

// Execute runs the root command.
func Execute() {
	rootCmd := NewRootCommand()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
