package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Eden-Eldith/framescan/internal/csvsource"
	"github.com/Eden-Eldith/framescan/pkg/framescan"
	"github.com/Eden-Eldith/framescan/pkg/framescan/aggregate"
	"github.com/Eden-Eldith/framescan/pkg/framescan/config"
	"github.com/Eden-Eldith/framescan/pkg/framescan/render"
	"github.com/Eden-Eldith/framescan/pkg/framescan/report"
)

// analyzeCmd classifies a corpus and writes the report and charts
var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Classify a headline corpus and compute framing statistics",
	Long: `Analyze reads headlines from a CSV file, classifies each one against the
category table, aggregates the corpus statistics and writes report.json to
the output directory. With --charts it also renders coverage.png (multi vs
exclusive counts) and cooccurrence.png (category co-occurrence heatmap).`,
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().String("input", "", "CSV corpus file (required)")
	analyzeCmd.Flags().String("column", "headline", "name of the headline column")
	analyzeCmd.Flags().String("categories", "", "category table YAML (default: builtin taxonomy)")
	analyzeCmd.Flags().String("out-dir", ".", "directory for report and charts")
	analyzeCmd.Flags().Bool("charts", false, "render the comparison chart and co-occurrence heatmap")

	_ = viper.BindPFlag("input", analyzeCmd.Flags().Lookup("input"))
	_ = viper.BindPFlag("column", analyzeCmd.Flags().Lookup("column"))
	_ = viper.BindPFlag("categories", analyzeCmd.Flags().Lookup("categories"))
	_ = viper.BindPFlag("out-dir", analyzeCmd.Flags().Lookup("out-dir"))
	_ = viper.BindPFlag("charts", analyzeCmd.Flags().Lookup("charts"))

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	input := viper.GetString("input")
	if input == "" {
		return fmt.Errorf("--input required")
	}

	cfg, err := loadAnalysisConfig()
	if err != nil {
		return err
	}

	table, err := cfg.Table()
	if err != nil {
		return fmt.Errorf("build category table: %w", err)
	}

	headlines, err := csvsource.Load(input, viper.GetString("column"))
	if err != nil {
		return err
	}
	if verbose {
		fmt.Fprintf(os.Stderr, "Loaded %d headlines from %s\n", len(headlines), input)
	}

	engine := framescan.New(table, framescan.Options{
		Aggregate: aggregate.Options{
			IncludeUncategorized: cfg.DistributionTest.IncludeUncategorized,
		},
	})
	run, err := engine.Analyze(headlines)
	if err != nil {
		return err
	}

	rep := report.Build(run, cfg.Groups, cfg.UncategorizedSample)
	report.Render(os.Stdout, rep)

	outDir := viper.GetString("out-dir")
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("create output directory %s: %w", outDir, err)
	}

	reportPath := filepath.Join(outDir, "report.json")
	if err := rep.WriteJSON(reportPath); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "\nReport written to %s\n", reportPath)

	if viper.GetBool("charts") {
		coveragePath := filepath.Join(outDir, "coverage.png")
		if err := render.Comparison(rep, coveragePath); err != nil {
			return err
		}
		heatmapPath := filepath.Join(outDir, "cooccurrence.png")
		if err := render.Heatmap(rep, cfg.HeatmapExclude, heatmapPath); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "Charts written to %s and %s\n", coveragePath, heatmapPath)
	}

	return nil
}

// loadAnalysisConfig returns the configured category table and options,
// falling back to the builtin taxonomy when no file is given.
func loadAnalysisConfig() (*config.File, error) {
	path := viper.GetString("categories")
	if path == "" {
		return config.Default(), nil
	}
	return config.Load(path)
}
