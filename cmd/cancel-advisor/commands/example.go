package commands

import (
	"fmt"

	"github.com/callcenter/cancel-advisor/internal/config"
	"github.com/callcenter/cancel-advisor/internal/output"
	"github.com/spf13/cobra"
)

var exampleOut string

var exampleCmd = &cobra.Command{
	Use:   "example",
	Short: "Write an example customer catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		example := config.NewInputParser().CreateExampleConfiguration()
		if err := output.SaveConfiguration(example, exampleOut); err != nil {
			return fmt.Errorf("failed to write example catalog: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Example catalog written to %s\n", exampleOut)
		return nil
	},
}

func init() {
	exampleCmd.Flags().StringVarP(&exampleOut, "out", "o", "example_catalog.yaml", "File to write")
}
