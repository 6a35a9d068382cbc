package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Eden-Eldith/framescan/pkg/framescan/config"
)

// categoriesCmd prints and validates the active category table
var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "Show the active category table in priority order",
	Long: `Categories prints the active table in priority order and validates every
rule. Order matters: exclusive assignment picks the first matching category,
so specific categories must come before general ones. A malformed rule or
duplicate label fails immediately.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, _ := cmd.Flags().GetString("categories")
		cfg := config.Default()
		if path != "" {
			var err error
			if cfg, err = config.Load(path); err != nil {
				return err
			}
		}

		// Compiling is the validation.
		table, err := cfg.Table()
		if err != nil {
			return err
		}

		for i, spec := range cfg.Categories {
			switch {
			case spec.Pattern != "":
				fmt.Printf("%2d. %s\n    pattern: %s\n", i+1, spec.Label, spec.Pattern)
			default:
				fmt.Printf("%2d. %s\n    terms: %d\n", i+1, spec.Label, len(spec.Terms))
			}
			if len(spec.ExcludeAfter) > 0 {
				fmt.Printf("    excluded when followed by: %v\n", spec.ExcludeAfter)
			}
		}
		fmt.Printf("\n%d categories, all rules valid\n", table.Len())
		return nil
	},
}

func init() {
	categoriesCmd.Flags().String("categories", "", "category table YAML (default: builtin taxonomy)")

	rootCmd.AddCommand(categoriesCmd)
}
