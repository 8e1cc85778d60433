package commands

import (
	"github.com/callcenter/cancel-advisor/internal/calculation"
	"github.com/callcenter/cancel-advisor/internal/config"
	"github.com/callcenter/cancel-advisor/internal/domain"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "cancel-advisor",
	Short: "Cancellation impact analysis for telecom subscriptions",
	Long: `Projects the short, medium and long-term financial impact of cancelling a
plan, add-on or discount, including cascade effects on bundles and family lines,
and recommends whether to proceed, wait, or offer an alternative.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			log.SetLevel(log.DebugLevel)
		}
	},
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(exampleCmd)
	rootCmd.AddCommand(parsePriceCmd)
}

// loadConfiguration reads and validates a catalog file
func loadConfiguration(path string) (*domain.Configuration, error) {
	log.WithField("file", path).Debug("loading catalog")
	return config.NewInputParser().LoadFromFile(path)
}

// newEngine builds an engine from the file's tuning, logging through logrus
func newEngine(cfg *domain.Configuration) *calculation.CancellationEngine {
	engine := calculation.NewCancellationEngineWithTuning(cfg.EffectiveTuning())
	engine.SetLogger(calculation.NewLogrusLogger(log.StandardLogger()))
	return engine
}
