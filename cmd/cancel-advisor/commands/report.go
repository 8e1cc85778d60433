package commands

import (
	"fmt"

	"github.com/callcenter/cancel-advisor/internal/output"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	reportConfig string
	reportFormat string
	reportOutDir string
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Analyze every active item of a customer",
	Long: `Analyze the selected plan, add-ons and discounts of a customer catalog.

Without --out the report is printed; with --out it is written to a timestamped
file in that directory. Format "all" writes every format.

Examples:
  cancel-advisor report --config catalog.yaml
  cancel-advisor report --config catalog.yaml --format all --out ./reports`,
	RunE: runReport,
}

func init() {
	reportCmd.Flags().StringVarP(&reportConfig, "config", "c", "", "Path to the customer catalog YAML")
	reportCmd.Flags().StringVarP(&reportFormat, "format", "f", "console", "Output format (console, json, csv, cumulative-csv, all)")
	reportCmd.Flags().StringVarP(&reportOutDir, "out", "o", "", "Directory to write report files to")
	_ = reportCmd.MarkFlagRequired("config")
}

func runReport(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfiguration(reportConfig)
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	report := newEngine(cfg).BuildReport(cfg)
	log.WithField("items", len(report.Analyses)).Info("report built")

	if reportOutDir == "" {
		if output.NormalizeFormatName(reportFormat) == "all" {
			return fmt.Errorf("format \"all\" requires --out")
		}
		return output.RenderReport(cmd.OutOrStdout(), report, reportFormat)
	}

	files, err := output.GenerateReport(report, reportFormat, reportOutDir)
	if err != nil {
		return err
	}
	for _, f := range files {
		fmt.Fprintln(cmd.OutOrStdout(), f)
	}
	return nil
}
