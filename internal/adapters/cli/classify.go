package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/andrescamacho/craftrules-go/internal/domain/catalog"
)

// NewClassifyCommand creates the classify command.
func NewClassifyCommand() *cobra.Command {
	var isFood bool

	cmd := &cobra.Command{
		Use:   "classify <name>",
		Short: "Classify a material name into its display category",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			material := &catalog.Material{
				Name:   strings.Join(args, " "),
				IsFood: isFood,
			}
			fmt.Println(catalog.Classify(material))
			return nil
		},
	}

	cmd.Flags().BoolVar(&isFood, "food", false, "Treat the material as food")
	return cmd
}
