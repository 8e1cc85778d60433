package commands

import (
	"fmt"

	"github.com/callcenter/cancel-advisor/internal/calculation"
	"github.com/callcenter/cancel-advisor/internal/domain"
	"github.com/callcenter/cancel-advisor/internal/output"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	analyzeConfig string
	analyzeType   string
	analyzeID     string
	analyzeFormat string
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze cancelling a single plan, add-on or discount",
	Long: `Analyze the impact of cancelling one catalog item.

Examples:
  # Cancel the current plan
  cancel-advisor analyze --config catalog.yaml --type plan --id 5g-premium

  # Give up a family bundle discount, as JSON
  cancel-advisor analyze --config catalog.yaml --type discount --id discount-family-4 --format json`,
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeConfig, "config", "c", "", "Path to the customer catalog YAML")
	analyzeCmd.Flags().StringVarP(&analyzeType, "type", "t", "", "Target type (plan, addon, discount)")
	analyzeCmd.Flags().StringVar(&analyzeID, "id", "", "Target id")
	analyzeCmd.Flags().StringVarP(&analyzeFormat, "format", "f", "console", "Output format (console, json, csv, cumulative-csv)")
	_ = analyzeCmd.MarkFlagRequired("config")
	_ = analyzeCmd.MarkFlagRequired("type")
	_ = analyzeCmd.MarkFlagRequired("id")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	targetType, err := calculation.ParseTargetType(analyzeType)
	if err != nil {
		return err
	}

	cfg, err := loadConfiguration(analyzeConfig)
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	analysis := newEngine(cfg).AnalyzeCancellation(targetType, analyzeID, &cfg.Catalog)
	if analysis == nil {
		return fmt.Errorf("%s %q not found in catalog", targetType, analyzeID)
	}
	log.WithFields(log.Fields{
		"target":         analysis.TargetID,
		"recommendation": analysis.Recommendation.Type,
	}).Info("analysis complete")

	report := &domain.CancellationReport{
		Customer: cfg.Customer,
		AsOf:     cfg.AsOf,
		Analyses: []domain.CancellationAnalysis{*analysis},
	}
	return output.RenderReport(cmd.OutOrStdout(), report, analyzeFormat)
}
